package tool

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
)

// knownServices maps the catalog service keys to their backend ids. Order is
// significant: suggestions for an unknown service list the keys in this order.
var knownServices = []struct {
	Name      string
	ServiceID string
}{
	{"plumb", "plumb_000"},
	{"repair", "plumb_001"},
	{"install", "plumb_002"},
	{"clean", "plumb_003"},
	{"jet", "plumb_004"},
	{"re-pipes", "plumb_005"},
}

const slotDuration = 45 * time.Minute

// MockBooking is the in-process synthetic booking backend used for demos and
// tests. Lookups are deterministic; availability is generated relative to the
// injected clock.
type MockBooking struct {
	now func() time.Time
}

var _ contractx.Booking = (*MockBooking)(nil)

func NewMockBooking() *MockBooking {
	return &MockBooking{now: time.Now}
}

// NewMockBookingAt pins the availability clock, for tests.
func NewMockBookingAt(now func() time.Time) *MockBooking {
	if now == nil {
		now = time.Now
	}
	return &MockBooking{now: now}
}

func (m *MockBooking) CheckService(ctx context.Context, serviceName string) (contractx.ServiceCheck, error) {
	lower := strings.ToLower(strings.TrimSpace(serviceName))
	for _, svc := range knownServices {
		if svc.Name == lower {
			return contractx.ServiceCheck{Exists: true, ServiceID: svc.ServiceID}, nil
		}
	}

	suggestions := make([]string, 0, len(knownServices))
	for _, svc := range knownServices {
		suggestions = append(suggestions, svc.Name)
	}
	return contractx.ServiceCheck{Exists: false, Suggestions: suggestions}, nil
}

// GetAvailability generates six slots over the next six days. An "am"
// preference anchors slots at 08:00, "pm" at 13:00, each staggered by up to
// two hours; without a preference the stagger grows with the day offset.
func (m *MockBooking) GetAvailability(ctx context.Context, serviceID, dateRange, timePreference string) (contractx.Availability, error) {
	now := m.now()
	pref := strings.ToLower(strings.TrimSpace(timePreference))

	slots := make([]contractx.TimeSlot, 0, 6)
	for i := 1; i < 7; i++ {
		day := now.AddDate(0, 0, i)
		var start time.Time
		switch pref {
		case "pm":
			start = atHour(day, 13).Add(time.Duration(i%3) * time.Hour)
		case "am":
			start = atHour(day, 8).Add(time.Duration(i%3) * time.Hour)
		default:
			start = atHour(day, 8).Add(time.Duration(i) * time.Hour)
		}
		slots = append(slots, contractx.TimeSlot{
			SlotID:   fmt.Sprintf("slot_%s_%d", serviceID, i),
			StartISO: start.Format(time.RFC3339),
			EndISO:   start.Add(slotDuration).Format(time.RFC3339),
		})
	}
	return contractx.Availability{Slots: slots}, nil
}

func (m *MockBooking) CreateAppointment(ctx context.Context, customer contractx.Customer, serviceID, slotID, contact string) (contractx.Appointment, error) {
	return contractx.Appointment{
		Success:       true,
		AppointmentID: "ap_" + shortID(),
		Details: contractx.AppointmentDetails{
			Customer:  customer,
			ServiceID: serviceID,
			SlotID:    slotID,
			Contact:   contact,
		},
	}, nil
}

func (m *MockBooking) CreateWaitlistEntry(ctx context.Context, customer contractx.Customer, serviceID, preferredWindow string) (contractx.WaitlistEntry, error) {
	return contractx.WaitlistEntry{
		Success:    true,
		WaitlistID: "wait_" + shortID(),
	}, nil
}

func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
