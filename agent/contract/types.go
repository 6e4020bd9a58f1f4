package contract

// Customer identifies the caller on booking-backend calls.
type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// ServiceCheck is the result of a service-catalog lookup.
// When the service is unknown, Suggestions carries alternative service names.
type ServiceCheck struct {
	Exists      bool     `json:"exists"`
	ServiceID   string   `json:"service_id,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// TimeSlot is one bookable appointment window.
type TimeSlot struct {
	SlotID   string `json:"slot_id"`
	StartISO string `json:"start_iso"`
	EndISO   string `json:"end_iso"`
}

type Availability struct {
	Slots []TimeSlot `json:"slots,omitempty"`
}

type AppointmentDetails struct {
	Customer  Customer `json:"customer"`
	ServiceID string   `json:"service_id"`
	SlotID    string   `json:"slot_id"`
	Contact   string   `json:"contact,omitempty"`
}

type Appointment struct {
	Success       bool               `json:"success"`
	AppointmentID string             `json:"appointment_id,omitempty"`
	Details       AppointmentDetails `json:"details"`
}

type WaitlistEntry struct {
	Success    bool   `json:"success"`
	WaitlistID string `json:"waitlist_id,omitempty"`
}
