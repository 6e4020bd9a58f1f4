package state

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSessionContext(t *testing.T) {
	t.Parallel()

	sc := NewSessionContext()
	if sc.CallID == "" {
		t.Fatal("expected a call id")
	}
	if sc.State != StateStart {
		t.Fatalf("initial state = %s, want %s", sc.State, StateStart)
	}
	if len(sc.Transcript) != 0 {
		t.Fatalf("fresh transcript should be empty, got %d turns", len(sc.Transcript))
	}
}

func TestStateNameValid(t *testing.T) {
	t.Parallel()

	if len(AllStates) != 14 {
		t.Fatalf("expected 14 states, got %d", len(AllStates))
	}
	for _, st := range AllStates {
		if !st.Valid() {
			t.Errorf("state %s should be valid", st)
		}
	}
	if StateName("SOMETHING_ELSE").Valid() {
		t.Error("unknown state should not be valid")
	}
}

func TestCloneIsolation(t *testing.T) {
	t.Parallel()

	sc := NewSessionContext()
	sc.Slots.CustomerName = "Steven Manley"
	sc.AppendUser("hello")
	sc.Metadata[MetaServiceID] = "plumb_000"

	dup := sc.Clone()
	dup.Slots.CustomerName = "Changed"
	dup.AppendAssistant("hi there")
	dup.Metadata[MetaServiceID] = "plumb_001"
	dup.State = StateListen

	if sc.Slots.CustomerName != "Steven Manley" {
		t.Fatalf("clone mutated original slots: %q", sc.Slots.CustomerName)
	}
	if len(sc.Transcript) != 1 {
		t.Fatalf("clone mutated original transcript: %d turns", len(sc.Transcript))
	}
	if sc.Metadata[MetaServiceID] != "plumb_000" {
		t.Fatalf("clone mutated original metadata: %v", sc.Metadata[MetaServiceID])
	}
	if sc.State != StateStart {
		t.Fatalf("clone mutated original state: %s", sc.State)
	}
}

func TestSetMetaOnce(t *testing.T) {
	t.Parallel()

	sc := NewSessionContext()
	sc.SetMetaOnce(MetaServiceCheck, "first")
	sc.SetMetaOnce(MetaServiceCheck, "second")
	if sc.Metadata[MetaServiceCheck] != "first" {
		t.Fatalf("SetMetaOnce overwrote value: %v", sc.Metadata[MetaServiceCheck])
	}
}

func TestWriteTranscriptCSV(t *testing.T) {
	t.Parallel()

	transcript := []Turn{
		{Speaker: SpeakerAssistant, Text: "Hello! How can I help?"},
		{Speaker: SpeakerUser, Text: "I need a plumber, \"urgently\""},
	}

	var buf bytes.Buffer
	if err := WriteTranscriptCSV(&buf, transcript); err != nil {
		t.Fatalf("WriteTranscriptCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "Speaker,Dialogue" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], SpeakerAssistant+",") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}
