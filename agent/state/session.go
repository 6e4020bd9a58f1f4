package state

import (
	"github.com/google/uuid"
)

// StateName identifies the current point in the fixed dialogue flow.
type StateName string

const (
	StateStart                  StateName = "START"
	StateGreeting               StateName = "GREETING"
	StateListen                 StateName = "LISTEN"
	StateHandoffToCompletion    StateName = "HANDOFF_TO_COMPLETION"
	StateCollectInfo            StateName = "COLLECT_INFO"
	StateCallAPICheckService    StateName = "CALL_API_CHECK_SERVICE"
	StateServiceNotFoundSuggest StateName = "SERVICE_NOT_FOUND_SUGGEST"
	StateGetAvailability        StateName = "GET_AVAILABILITY"
	StateOfferSlots             StateName = "OFFER_SLOTS"
	StateNoAvailabilityHandle   StateName = "NO_AVAILABILITY_HANDLE"
	StateConfirmSchedule        StateName = "CONFIRM_SCHEDULE"
	StateAnythingElse           StateName = "ANYTHING_ELSE"
	StateEndConversation        StateName = "END_CONVERSATION"
	StateEnd                    StateName = "END"
)

// AllStates lists every valid state. StateStart is the only initial state and
// StateEnd the only terminal one.
var AllStates = []StateName{
	StateStart,
	StateGreeting,
	StateListen,
	StateHandoffToCompletion,
	StateCollectInfo,
	StateCallAPICheckService,
	StateServiceNotFoundSuggest,
	StateGetAvailability,
	StateOfferSlots,
	StateNoAvailabilityHandle,
	StateConfirmSchedule,
	StateAnythingElse,
	StateEndConversation,
	StateEnd,
}

func (s StateName) Valid() bool {
	for _, known := range AllStates {
		if s == known {
			return true
		}
	}
	return false
}

// Metadata keys used by the dialogue handlers to stash backend results.
const (
	MetaServiceCheck   = "service_check"
	MetaServiceID      = "service_id"
	MetaAvailability   = "availability"
	MetaPresentedSlots = "presented_slots"
	MetaAppointmentID  = "appointment_id"
)

const (
	SpeakerUser      = "user"
	SpeakerAssistant = "assistant"
)

// Turn is one transcript line.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// SessionContext is the full mutable state of one ongoing conversation. It is
// owned by the caller for the lifetime of the call; the orchestrator works on
// an isolated copy per turn (see Clone).
type SessionContext struct {
	CallID     string         `json:"call_id"`
	Slots      Slots          `json:"slots"`
	State      StateName      `json:"state"`
	Transcript []Turn         `json:"transcript,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

func NewSessionContext() *SessionContext {
	return &SessionContext{
		CallID:   uuid.NewString(),
		State:    StateStart,
		Metadata: make(map[string]any, 8),
	}
}

// Clone returns a deep copy. Slots and transcript turns are value types; the
// metadata map is copied shallowly per entry, which is safe because handlers
// only store immutable values (structs and strings) under the Meta* keys.
func (c *SessionContext) Clone() *SessionContext {
	if c == nil {
		return nil
	}
	dup := &SessionContext{
		CallID:   c.CallID,
		Slots:    c.Slots,
		State:    c.State,
		Metadata: make(map[string]any, len(c.Metadata)),
	}
	if len(c.Transcript) > 0 {
		dup.Transcript = append(make([]Turn, 0, len(c.Transcript)), c.Transcript...)
	}
	for k, v := range c.Metadata {
		dup.Metadata[k] = v
	}
	return dup
}

func (c *SessionContext) AppendUser(text string) {
	c.Transcript = append(c.Transcript, Turn{Speaker: SpeakerUser, Text: text})
}

func (c *SessionContext) AppendAssistant(text string) {
	c.Transcript = append(c.Transcript, Turn{Speaker: SpeakerAssistant, Text: text})
}

func (c *SessionContext) EnsureMetadata() {
	if c.Metadata == nil {
		c.Metadata = make(map[string]any, 8)
	}
}

// SetMetaOnce stores val under key only if the key is not already present.
func (c *SessionContext) SetMetaOnce(key string, val any) {
	c.EnsureMetadata()
	if _, ok := c.Metadata[key]; !ok {
		c.Metadata[key] = val
	}
}

// MetaString reads a string metadata value; absent or mistyped entries read
// as empty.
func (c *SessionContext) MetaString(key string) string {
	if c == nil || c.Metadata == nil {
		return ""
	}
	s, _ := c.Metadata[key].(string)
	return s
}
