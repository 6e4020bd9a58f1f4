// Package orchestrator drives one conversational turn at a time: it accepts a
// caller utterance, dispatches the handler bound to the current state until a
// handler produces caller-visible text (states may chain silently in between),
// and hands back the updated session plus the reply.
package orchestrator

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
	handlerx "github.com/jacobsplumbing/frontdesk/agent/handlers"
	promptx "github.com/jacobsplumbing/frontdesk/agent/prompt"
	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

// maxSilentTransitions bounds the silent state chain within a single caller
// turn. A cycle of no-reply transitions (a routing defect) surfaces as
// ErrTransitionOverflow instead of hanging the call.
const maxSilentTransitions = 20

var ErrTransitionOverflow = errors.New("silent transition limit exceeded")

// HandlerResolver yields the handler bound to a dialogue state.
type HandlerResolver interface {
	Resolve(st statex.StateName) (handlerx.Func, bool)
}

type Agent struct {
	handlers    HandlerResolver
	graphRunner compose.Runnable[GraphInput, GraphOutput]
}

func New(gen contractx.Generator, booking contractx.Booking, prompts promptx.Set) (*Agent, error) {
	if gen == nil {
		return nil, errors.New("generator is required")
	}
	if booking == nil {
		return nil, errors.New("booking backend is required")
	}
	return newAgent(handlerx.New(gen, booking, prompts))
}

func newAgent(handlers HandlerResolver) (*Agent, error) {
	a := &Agent{handlers: handlers}

	graphRunner, err := a.compileTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

// Process runs one caller turn. A nil session context starts a fresh
/// conversation: the greeting is produced and the utterance is not consumed as
// a caller statement. Otherwise the turn operates on an isolated copy of the
// supplied context, so the caller never observes partial mutation when a
// model or backend call fails mid-turn.
func (a *Agent) Process(ctx context.Context, utterance string, sc *statex.SessionContext) (*statex.SessionContext, string, error) {
	out, err := a.graphRunner.Invoke(ctx, GraphInput{
		Utterance: utterance,
		Context:   sc,
	})
	if err != nil {
		return nil, "", err
	}
	return out.Context, out.Reply, nil
}
