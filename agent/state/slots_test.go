package state

import (
	"reflect"
	"testing"
)

func TestMergeFillOnce(t *testing.T) {
	t.Parallel()

	s := Slots{CustomerName: "Steven Manley"}
	s.Merge(SlotPatch{
		CustomerName:  "Someone Else",
		ContactNumber: "555-123-4567",
	})

	if s.CustomerName != "Steven Manley" {
		t.Fatalf("filled slot was overwritten: %q", s.CustomerName)
	}
	if s.ContactNumber != "555-123-4567" {
		t.Fatalf("empty slot was not filled: %q", s.ContactNumber)
	}

	// empty patch values never clear a filled slot
	s.Merge(SlotPatch{})
	if s.ContactNumber != "555-123-4567" {
		t.Fatalf("slot cleared by empty patch: %q", s.ContactNumber)
	}
}

func TestMissingSlotsOrder(t *testing.T) {
	t.Parallel()

	var s Slots
	want := []string{
		SlotCustomerName,
		SlotContactAddress,
		SlotContactNumber,
		SlotServiceRequested,
		SlotProblemDescription,
		SlotPreferredDateOrTime,
	}
	if got := s.MissingSlots(); !reflect.DeepEqual(got, want) {
		t.Fatalf("MissingSlots() = %v, want %v", got, want)
	}
}

func TestMissingSlotsEmptyWhenComplete(t *testing.T) {
	t.Parallel()

	s := Slots{
		CustomerName:       "Steven Manley",
		ContactAddress:     "123 Main Street",
		ContactNumber:      "555-123-4567",
		ServiceRequested:   "plumb",
		ProblemDescription: "leaky faucet",
		PreferredTime:      "AM",
	}
	if got := s.MissingSlots(); len(got) != 0 {
		t.Fatalf("MissingSlots() = %v, want none", got)
	}

	// either date or time satisfies the disjunctive requirement
	s.PreferredTime = ""
	s.PreferredDate = "2026-09-01"
	if got := s.MissingSlots(); len(got) != 0 {
		t.Fatalf("MissingSlots() with date only = %v, want none", got)
	}

	s.PreferredDate = ""
	got := s.MissingSlots()
	if len(got) != 1 || got[0] != SlotPreferredDateOrTime {
		t.Fatalf("MissingSlots() without date/time = %v", got)
	}
}

func TestMinimalFilled(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		s    Slots
		want bool
	}{
		{"empty", Slots{}, false},
		{"service only", Slots{ServiceRequested: "plumb"}, false},
		{"time only", Slots{PreferredTime: "AM"}, false},
		{"service and time", Slots{ServiceRequested: "plumb", PreferredTime: "AM"}, true},
		{"service and date", Slots{ServiceRequested: "plumb", PreferredDate: "tomorrow"}, true},
	}
	for _, tc := range cases {
		if got := tc.s.MinimalFilled(); got != tc.want {
			t.Errorf("%s: MinimalFilled() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
