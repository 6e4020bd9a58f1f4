package state

// Slots holds the booking fields extracted from caller speech. Every field is
// optional until filled; once non-empty a field is never overwritten by a
// later extraction (fill-once).
type Slots struct {
	CustomerName       string `json:"customer_name,omitempty"`
	ContactAddress     string `json:"contact_address,omitempty"`
	ContactNumber      string `json:"contact_number,omitempty"`
	ServiceRequested   string `json:"service_requested,omitempty"`
	ProblemDescription string `json:"problem_description,omitempty"`
	PreferredDate      string `json:"preferred_date,omitempty"`
	PreferredTime      string `json:"preferred_time,omitempty"`
	ExtraNotes         string `json:"extra_notes,omitempty"`
}

// Slot field names as they appear in extraction payloads and missing-slot
// questions. MissingSlots appends SlotPreferredDateOrTime when neither the
// date nor the time preference is present.
const (
	SlotCustomerName        = "customer_name"
	SlotContactAddress      = "contact_address"
	SlotContactNumber       = "contact_number"
	SlotServiceRequested    = "service_requested"
	SlotProblemDescription  = "problem_description"
	SlotPreferredDate       = "preferred_date"
	SlotPreferredTime       = "preferred_time"
	SlotExtraNotes          = "extra_notes"
	SlotPreferredDateOrTime = "preferred_date_or_time"
)

// SlotPatch carries extracted slot values to merge into a Slots record.
type SlotPatch struct {
	CustomerName       string `json:"customer_name,omitempty"`
	ContactAddress     string `json:"contact_address,omitempty"`
	ContactNumber      string `json:"contact_number,omitempty"`
	ServiceRequested   string `json:"service_requested,omitempty"`
	ProblemDescription string `json:"problem_description,omitempty"`
	PreferredDate      string `json:"preferred_date,omitempty"`
	PreferredTime      string `json:"preferred_time,omitempty"`
	ExtraNotes         string `json:"extra_notes,omitempty"`
}

// Merge applies the patch field by field, setting only fields that are
// currently empty and skipping empty patch values.
func (s *Slots) Merge(p SlotPatch) {
	fillOnce(&s.CustomerName, p.CustomerName)
	fillOnce(&s.ContactAddress, p.ContactAddress)
	fillOnce(&s.ContactNumber, p.ContactNumber)
	fillOnce(&s.ServiceRequested, p.ServiceRequested)
	fillOnce(&s.ProblemDescription, p.ProblemDescription)
	fillOnce(&s.PreferredDate, p.PreferredDate)
	fillOnce(&s.PreferredTime, p.PreferredTime)
	fillOnce(&s.ExtraNotes, p.ExtraNotes)
}

func fillOnce(dst *string, val string) {
	if *dst == "" && val != "" {
		*dst = val
	}
}

// MinimalFilled reports whether enough is known for a service availability
// check: the requested service plus at least one of date or time preference.
func (s *Slots) MinimalFilled() bool {
	return s.ServiceRequested != "" && (s.PreferredDate != "" || s.PreferredTime != "")
}

// MissingSlots returns the required fields that are still empty, in the fixed
// order the caller should be asked for them.
func (s *Slots) MissingSlots() []string {
	required := []struct {
		name  string
		value string
	}{
		{SlotCustomerName, s.CustomerName},
		{SlotContactAddress, s.ContactAddress},
		{SlotContactNumber, s.ContactNumber},
		{SlotServiceRequested, s.ServiceRequested},
		{SlotProblemDescription, s.ProblemDescription},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if s.PreferredDate == "" && s.PreferredTime == "" {
		missing = append(missing, SlotPreferredDateOrTime)
	}
	return missing
}
