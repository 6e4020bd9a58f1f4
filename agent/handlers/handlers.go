// Package handlers implements one dialogue handler per conversation state.
// Each handler consumes the session context (and the raw caller utterance
// where the state needs it) and yields the next state plus reply text. Empty
// reply text tells the orchestrator to keep dispatching within the same
// caller turn; non-empty text ends the turn.
package handlers

import (
	"context"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
	promptx "github.com/jacobsplumbing/frontdesk/agent/prompt"
	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

// Func is the shape shared by every state handler.
type Func func(ctx context.Context, sc *statex.SessionContext, userText string) (statex.StateName, string, error)

// Handlers binds the dialogue states to the language-model and booking
// collaborators. Prompt content is injected, keeping orchestration logic
// independent of prompt wording.
type Handlers struct {
	gen     contractx.Generator
	booking contractx.Booking
	prompts promptx.Set
}

func New(gen contractx.Generator, booking contractx.Booking, prompts promptx.Set) *Handlers {
	return &Handlers{
		gen:     gen,
		booking: booking,
		prompts: prompts,
	}
}

// Resolve returns the handler bound to a state. START has no handler (the
// orchestrator special-cases the first contact into GREETING) and END is
// terminal.
func (h *Handlers) Resolve(st statex.StateName) (Func, bool) {
	switch st {
	case statex.StateGreeting:
		return h.Greeting, true
	case statex.StateListen:
		return h.ListenAndRoute, true
	case statex.StateHandoffToCompletion:
		return h.HandoffToCompletion, true
	case statex.StateCollectInfo:
		return h.CollectInfo, true
	case statex.StateCallAPICheckService:
		return h.CheckService, true
	case statex.StateServiceNotFoundSuggest:
		return h.ServiceNotFoundSuggest, true
	case statex.StateGetAvailability:
		return h.GetAvailability, true
	case statex.StateOfferSlots:
		return h.OfferSlots, true
	case statex.StateNoAvailabilityHandle:
		return h.NoAvailabilityHandle, true
	case statex.StateConfirmSchedule:
		return h.ConfirmSchedule, true
	case statex.StateAnythingElse:
		return h.AnythingElse, true
	case statex.StateEndConversation:
		return h.EndConversation, true
	default:
		return nil, false
	}
}
