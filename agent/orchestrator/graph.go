package orchestrator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

type GraphInput struct {
	Utterance string
	Context   *statex.SessionContext
}

type GraphOutput struct {
	Context *statex.SessionContext
	Reply   string
}

type turnState struct {
	Utterance    string
	Ctx          *statex.SessionContext
	FirstContact bool
}

func (a *Agent) compileTurnGraph(
	ctx context.Context,
) (compose.Runnable[GraphInput, GraphOutput], error) {
	graph := compose.NewGraph[GraphInput, GraphOutput]()

	if err := graph.AddLambdaNode("prepare_turn",
		compose.InvokableLambda(func(ctx context.Context, in GraphInput) (*turnState, error) {
			return prepareTurn(in), nil
		}),
	); err != nil {
		return nil, fmt.Errorf("add node prepare_turn: %w", err)
	}

	if err := graph.AddLambdaNode("greet",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (GraphOutput, error) {
			return a.greet(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node greet: %w", err)
	}

	if err := graph.AddLambdaNode("run_dialogue",
		compose.InvokableLambda(func(ctx context.Context, in *turnState) (GraphOutput, error) {
			return a.runDialogue(ctx, in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_dialogue: %w", err)
	}

	branch := compose.NewGraphBranch(
		func(ctx context.Context, in *turnState) (string, error) {
			if in.FirstContact {
				return "greet", nil
			}
			return "run_dialogue", nil
		},
		map[string]bool{
			"greet":        true,
			"run_dialogue": true,
		},
	)

	if err := graph.AddEdge(compose.START, "prepare_turn"); err != nil {
		return nil, fmt.Errorf("add edge start->prepare_turn: %w", err)
	}
	if err := graph.AddBranch("prepare_turn", branch); err != nil {
		return nil, fmt.Errorf("add turn branch: %w", err)
	}
	if err := graph.AddEdge("greet", compose.END); err != nil {
		return nil, fmt.Errorf("add edge greet->end: %w", err)
	}
	if err := graph.AddEdge("run_dialogue", compose.END); err != nil {
		return nil, fmt.Errorf("add edge run_dialogue->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("frontdesk.process_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile turn graph: %w", err)
	}
	return runner, nil
}

// prepareTurn isolates the turn: first contact gets a fresh context, every
// later turn works on a deep copy of the caller's context.
func prepareTurn(in GraphInput) *turnState {
	if in.Context == nil {
		return &turnState{
			Utterance:    in.Utterance,
			Ctx:          statex.NewSessionContext(),
			FirstContact: true,
		}
	}
	return &turnState{
		Utterance: in.Utterance,
		Ctx:       in.Context.Clone(),
	}
}

// greet handles the initial null-context call: the greeting handler runs
// without consuming the utterance as a caller statement.
func (a *Agent) greet(ctx context.Context, ts *turnState) (GraphOutput, error) {
	handler, _ := a.handlers.Resolve(statex.StateGreeting)
	next, reply, err := handler(ctx, ts.Ctx, "")
	if err != nil {
		return GraphOutput{}, err
	}
	ts.Ctx.State = next
	ts.Ctx.AppendAssistant(reply)
	return GraphOutput{Context: ts.Ctx, Reply: reply}, nil
}

// runDialogue appends the utterance and dispatches handlers until one yields
// caller-visible text or the terminal state is reached. A state with no bound
// handler is a routing defect: it is logged and routed to LISTEN rather than
// surfaced to the caller.
func (a *Agent) runDialogue(ctx context.Context, ts *turnState) (GraphOutput, error) {
	sc := ts.Ctx
	sc.AppendUser(ts.Utterance)

	reply := ""
	for silent := 0; sc.State != statex.StateEnd; {
		handler, ok := a.handlers.Resolve(sc.State)
		if !ok {
			log.Warn().
				Str("call_id", sc.CallID).
				Str("state", string(sc.State)).
				Msg("no handler bound to dialogue state, falling back to LISTEN")
			sc.State = statex.StateListen
			silent++
			if silent > maxSilentTransitions {
				return GraphOutput{}, fmt.Errorf("%w: call_id=%s state=%s", ErrTransitionOverflow, sc.CallID, sc.State)
			}
			continue
		}

		next, text, err := handler(ctx, sc, ts.Utterance)
		if err != nil {
			return GraphOutput{}, err
		}
		sc.State = next

		if text != "" {
			reply = text
			break
		}
		silent++
		if silent > maxSilentTransitions {
			return GraphOutput{}, fmt.Errorf("%w: call_id=%s state=%s", ErrTransitionOverflow, sc.CallID, sc.State)
		}
	}

	if reply != "" {
		sc.AppendAssistant(reply)
	}
	return GraphOutput{Context: sc, Reply: reply}, nil
}
