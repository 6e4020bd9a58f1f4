package handlers

import (
	"context"
	"strings"

	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

const (
	intentBook  = "book"
	intentOther = "other"

	answerYes   = "yes"
	answerNo    = "no"
	answerOther = "other"
)

// routeExtraction is the JSON shape the model returns for LISTEN.
type routeExtraction struct {
	Intent string           `json:"intent"`
	Slots  statex.SlotPatch `json:"slots"`
}

// answerExtraction is the JSON shape the model returns for ANYTHING_ELSE.
type answerExtraction struct {
	Answer string `json:"answer"`
}

// Greeting produces the opening line and hands control to LISTEN.
func (h *Handlers) Greeting(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	prompt := h.prompts.System + "\n" + h.prompts.Greeting
	reply, err := h.gen.Generate(ctx, strings.TrimSpace(prompt))
	if err != nil {
		return sc.State, "", err
	}
	return statex.StateListen, reply, nil
}

// ListenAndRoute extracts intent and slots from the conversation so far plus
// the latest utterance, merges extracted slots fill-once, and routes silently
// to the booking flow or the one-shot completion path.
func (h *Handlers) ListenAndRoute(ctx context.Context, sc *statex.SessionContext, userText string) (statex.StateName, string, error) {
	var b strings.Builder
	b.WriteString(h.prompts.System)
	b.WriteString("\n")
	b.WriteString(h.prompts.ListenRoute)
	b.WriteString("\n[Conversation history]\n")
	b.WriteString(historyText(sc.Transcript))
	b.WriteString("\n[User utterance]\n")
	b.WriteString(userText)
	b.WriteString("\n")

	raw, err := h.gen.Generate(ctx, b.String())
	if err != nil {
		return sc.State, "", err
	}

	var parsed routeExtraction
	if !decodeLooseJSON(raw, &parsed) {
		parsed = routeExtraction{Intent: fallbackIntent(userText)}
	}
	if parsed.Intent == "" {
		parsed.Intent = intentOther
	}

	sc.Slots.Merge(parsed.Slots)

	if parsed.Intent == intentBook {
		return statex.StateCollectInfo, "", nil
	}
	return statex.StateHandoffToCompletion, "", nil
}

// HandoffToCompletion answers a non-booking question free-form and ends the
// conversation.
func (h *Handlers) HandoffToCompletion(ctx context.Context, sc *statex.SessionContext, userText string) (statex.StateName, string, error) {
	reply, err := h.gen.Generate(ctx, h.prompts.Handoff+": "+userText)
	if err != nil {
		return sc.State, "", err
	}
	return statex.StateEnd, reply, nil
}

// AnythingElse asks whether the caller needs more help. "no" wraps up the
// call; anything else loops back to LISTEN.
func (h *Handlers) AnythingElse(ctx context.Context, sc *statex.SessionContext, userText string) (statex.StateName, string, error) {
	var b strings.Builder
	b.WriteString(h.prompts.System)
	b.WriteString("\n")
	b.WriteString(h.prompts.AnythingElse)
	b.WriteString("\n[Conversation history]\n")
	b.WriteString(historyText(sc.Transcript))
	b.WriteString("\n[User utterance]\n")
	b.WriteString(userText)
	b.WriteString("\n")

	raw, err := h.gen.Generate(ctx, strings.TrimSpace(b.String()))
	if err != nil {
		return sc.State, "", err
	}

	var parsed answerExtraction
	if !decodeLooseJSON(raw, &parsed) {
		parsed = answerExtraction{Answer: fallbackAnswer(userText)}
	}
	if parsed.Answer == "" {
		parsed.Answer = answerOther
	}

	if parsed.Answer == answerNo {
		return statex.StateEndConversation, "", nil
	}
	return statex.StateListen, "Sure! What else can I do for you?", nil
}

// EndConversation produces the farewell and terminates the dialogue.
func (h *Handlers) EndConversation(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	prompt := h.prompts.System + "\n" + h.prompts.Farewell
	reply, err := h.gen.Generate(ctx, strings.TrimSpace(prompt))
	if err != nil {
		return sc.State, "", err
	}
	return statex.StateEnd, reply, nil
}

// fallbackIntent is the keyword heuristic used when extraction JSON does not
// parse.
func fallbackIntent(userText string) string {
	lower := strings.ToLower(userText)
	for _, word := range []string{"book", "appointment", "schedule"} {
		if strings.Contains(lower, word) {
			return intentBook
		}
	}
	return intentOther
}

// fallbackAnswer mirrors fallbackIntent for the yes/no extraction. Negative
// markers are checked first so "no thanks" is not read as a yes.
func fallbackAnswer(userText string) string {
	lower := strings.ToLower(userText)
	for _, word := range []string{"no", "nah"} {
		if strings.Contains(lower, word) {
			return answerNo
		}
	}
	for _, word := range []string{"yes", "yeah"} {
		if strings.Contains(lower, word) {
			return answerYes
		}
	}
	return answerOther
}

func historyText(transcript []statex.Turn) string {
	lines := make([]string, 0, len(transcript))
	for _, turn := range transcript {
		lines = append(lines, turn.Speaker+": "+turn.Text)
	}
	return strings.Join(lines, "\n")
}
