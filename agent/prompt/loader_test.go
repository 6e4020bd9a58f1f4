package prompt

import (
	"strings"
	"testing"

	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

func TestLoadTrimsEveryPrompt(t *testing.T) {
	t.Parallel()

	set := Load()
	prompts := map[string]string{
		"system":        set.System,
		"greeting":      set.Greeting,
		"listen_route":  set.ListenRoute,
		"request_info":  set.RequestInfo,
		"handoff":       set.Handoff,
		"anything_else": set.AnythingElse,
		"farewell":      set.Farewell,
	}
	for name, p := range prompts {
		if p == "" {
			t.Errorf("prompt %s is empty", name)
		}
		if p != strings.TrimSpace(p) {
			t.Errorf("prompt %s carries surrounding whitespace", name)
		}
	}
}

func TestTaskFor(t *testing.T) {
	t.Parallel()

	set := Load()
	talking := []statex.StateName{
		statex.StateGreeting,
		statex.StateListen,
		statex.StateCollectInfo,
		statex.StateHandoffToCompletion,
		statex.StateAnythingElse,
		statex.StateEndConversation,
	}
	for _, st := range talking {
		if task, ok := set.TaskFor(st); !ok || task == "" {
			t.Errorf("state %s has no task prompt", st)
		}
	}
	for _, st := range []statex.StateName{statex.StateStart, statex.StateEnd, statex.StateCallAPICheckService} {
		if _, ok := set.TaskFor(st); ok {
			t.Errorf("state %s unexpectedly has a task prompt", st)
		}
	}
}
