package prompt

import (
	_ "embed"
	"strings"

	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

var (
	//go:embed template/system.txt
	systemRaw string

	//go:embed template/greeting.txt
	greetingRaw string

	//go:embed template/listen_route.txt
	listenRouteRaw string

	//go:embed template/request_info.txt
	requestInfoRaw string

	//go:embed template/handoff.txt
	handoffRaw string

	//go:embed template/anything_else.txt
	anythingElseRaw string

	//go:embed template/farewell.txt
	farewellRaw string
)

// Set holds the loaded prompt content. System is prepended to most task
// prompts by the handlers; the rest are per-state task instructions.
type Set struct {
	System       string
	Greeting     string
	ListenRoute  string
	RequestInfo  string
	Handoff      string
	AnythingElse string
	Farewell     string
}

// Load returns a Set with trimmed prompt strings. The embed is compile-time,
// so this is safe to call concurrently.
func Load() Set {
	return Set{
		System:       strings.TrimSpace(systemRaw),
		Greeting:     strings.TrimSpace(greetingRaw),
		ListenRoute:  strings.TrimSpace(listenRouteRaw),
		RequestInfo:  strings.TrimSpace(requestInfoRaw),
		Handoff:      strings.TrimSpace(handoffRaw),
		AnythingElse: strings.TrimSpace(anythingElseRaw),
		Farewell:     strings.TrimSpace(farewellRaw),
	}
}

// TaskFor returns the task prompt bound to a dialogue state. States that do
// not talk to the model report false.
func (s Set) TaskFor(st statex.StateName) (string, bool) {
	switch st {
	case statex.StateGreeting:
		return s.Greeting, true
	case statex.StateListen:
		return s.ListenRoute, true
	case statex.StateCollectInfo:
		return s.RequestInfo, true
	case statex.StateHandoffToCompletion:
		return s.Handoff, true
	case statex.StateAnythingElse:
		return s.AnythingElse, true
	case statex.StateEndConversation:
		return s.Farewell, true
	default:
		return "", false
	}
}
