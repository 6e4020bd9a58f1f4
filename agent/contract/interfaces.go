package contract

import "context"

// Generator is the language-model collaborator: one prompt in, one text
// completion out. Transport and auth failures are returned as-is (wrapped
// with ErrModelInvoke) and must not be swallowed by callers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Booking is the scheduling-backend collaborator. CreateWaitlistEntry is part
// of the backend contract but is not reachable from the dialogue transition
// table.
type Booking interface {
	CheckService(ctx context.Context, serviceName string) (ServiceCheck, error)
	GetAvailability(ctx context.Context, serviceID, dateRange, timePreference string) (Availability, error)
	CreateAppointment(ctx context.Context, customer Customer, serviceID, slotID, contact string) (Appointment, error)
	CreateWaitlistEntry(ctx context.Context, customer Customer, serviceID, preferredWindow string) (WaitlistEntry, error)
}
