package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/jacobsplumbing/frontdesk/agent/contract"
	statex "github.com/jacobsplumbing/frontdesk/agent/state"
)

const maxPresentedSlots = 3

// CollectInfo asks for the first missing required slot, or proceeds silently
// to the service check once everything is filled.
func (h *Handlers) CollectInfo(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	missing := sc.Slots.MissingSlots()
	if len(missing) == 0 {
		return statex.StateCallAPICheckService, "", nil
	}

	toAsk := missing[0]
	var b strings.Builder
	b.WriteString(h.prompts.System)
	b.WriteString("\n[Conversation history]\n")
	b.WriteString(historyText(sc.Transcript))
	b.WriteString("\n")
	b.WriteString(h.prompts.RequestInfo)
	b.WriteString(" ")
	b.WriteString(strings.ReplaceAll(toAsk, "_", " "))
	b.WriteString("?")

	reply, err := h.gen.Generate(ctx, b.String())
	if err != nil {
		return sc.State, "", err
	}
	return statex.StateListen, reply, nil
}

// CheckService looks the requested service up in the catalog. The raw result
// is stashed set-once so a later re-check cannot clobber the suggestions the
// caller was shown.
func (h *Handlers) CheckService(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	res, err := h.booking.CheckService(ctx, sc.Slots.ServiceRequested)
	if err != nil {
		return sc.State, "", err
	}

	sc.SetMetaOnce(statex.MetaServiceCheck, res)
	if res.Exists {
		sc.EnsureMetadata()
		sc.Metadata[statex.MetaServiceID] = res.ServiceID
		return statex.StateGetAvailability, "", nil
	}
	return statex.StateServiceNotFoundSuggest, "", nil
}

// ServiceNotFoundSuggest offers up to three alternative service names from
// the failed lookup.
func (h *Handlers) ServiceNotFoundSuggest(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	check, _ := sc.Metadata[statex.MetaServiceCheck].(contractx.ServiceCheck)
	if len(check.Suggestions) == 0 {
		return statex.StateListen, "I'm sorry, I couldn't find that service. Could you rephrase?", nil
	}
	opts := check.Suggestions
	if len(opts) > maxPresentedSlots {
		opts = opts[:maxPresentedSlots]
	}
	msg := fmt.Sprintf("I couldn't find that exact service. Did you mean: %s?", strings.Join(opts, ", "))
	return statex.StateListen, msg, nil
}

// GetAvailability fetches open slots for the confirmed service.
func (h *Handlers) GetAvailability(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	serviceID := sc.MetaString(statex.MetaServiceID)
	res, err := h.booking.GetAvailability(ctx, serviceID, sc.Slots.PreferredDate, sc.Slots.PreferredTime)
	if err != nil {
		return sc.State, "", err
	}

	sc.EnsureMetadata()
	sc.Metadata[statex.MetaAvailability] = res
	if len(res.Slots) > 0 {
		return statex.StateOfferSlots, "", nil
	}
	return statex.StateNoAvailabilityHandle, "", nil
}

// OfferSlots presents the first three available slots as numbered options and
// remembers the offered subset for the later free-text selection.
func (h *Handlers) OfferSlots(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	avail, _ := sc.Metadata[statex.MetaAvailability].(contractx.Availability)
	slots := avail.Slots
	if len(slots) > maxPresentedSlots {
		slots = slots[:maxPresentedSlots]
	}
	if len(slots) == 0 {
		return statex.StateNoAvailabilityHandle, "", nil
	}

	options := make([]string, 0, len(slots))
	for i, s := range slots {
		options = append(options, fmt.Sprintf("Option %d: %s", i+1, s.StartISO))
	}
	text := "We have the following available slots: " + strings.Join(options, "; ") + ". Which option would you like?"

	sc.EnsureMetadata()
	sc.Metadata[statex.MetaPresentedSlots] = append([]contractx.TimeSlot(nil), slots...)
	return statex.StateConfirmSchedule, text, nil
}

// NoAvailabilityHandle apologizes and offers alternatives or the waitlist.
func (h *Handlers) NoAvailabilityHandle(ctx context.Context, sc *statex.SessionContext, _ string) (statex.StateName, string, error) {
	return statex.StateListen,
		"Sorry, there are no available slots in your requested window. Would you like me to offer alternatives or join a waitlist?",
		nil
}

// ConfirmSchedule resolves the caller's free text against the presented slots
// and books the chosen one. Unresolvable text re-prompts in place; a failed
// booking offers a retry without leaving the state.
func (h *Handlers) ConfirmSchedule(ctx context.Context, sc *statex.SessionContext, userText string) (statex.StateName, string, error) {
	presented, _ := sc.Metadata[statex.MetaPresentedSlots].([]contractx.TimeSlot)
	selected, ok := resolvePresentedSlot(userText, presented)
	if !ok {
		return statex.StateConfirmSchedule,
			"I didn't catch which slot you preferred. Please say the option number or the date and time.",
			nil
	}

	customer := contractx.Customer{
		Name:    sc.Slots.CustomerName,
		Contact: sc.Slots.ContactNumber,
	}
	serviceID := sc.MetaString(statex.MetaServiceID)
	resp, err := h.booking.CreateAppointment(ctx, customer, serviceID, selected.SlotID, sc.Slots.ContactNumber)
	if err != nil || !resp.Success {
		return statex.StateConfirmSchedule,
			"Sorry, I couldn't create the appointment - would you like me to try a different slot?",
			nil
	}

	sc.EnsureMetadata()
	sc.Metadata[statex.MetaAppointmentID] = resp.AppointmentID
	msg := fmt.Sprintf(
		"Your appointment is confirmed for %s. Reference %s. We'll contact you at %s if anything changes. Can I help you with anything else?",
		selected.StartISO, resp.AppointmentID, sc.Slots.ContactNumber,
	)
	return statex.StateAnythingElse, msg, nil
}

// resolvePresentedSlot maps the caller's selection to one of the offered
// slots: first by "option <n>" (1-based), then by matching a slot's start
// timestamp as a substring of the utterance.
func resolvePresentedSlot(userText string, presented []contractx.TimeSlot) (contractx.TimeSlot, bool) {
	if userText == "" || len(presented) == 0 {
		return contractx.TimeSlot{}, false
	}

	lower := strings.ToLower(userText)
	if strings.Contains(lower, "option") {
		for _, token := range strings.Fields(lower) {
			n, err := strconv.Atoi(token)
			if err != nil {
				continue
			}
			idx := n - 1
			if idx >= 0 && idx < len(presented) {
				return presented[idx], true
			}
		}
	}

	for _, s := range presented {
		if s.StartISO != "" && strings.Contains(userText, s.StartISO) {
			return s, true
		}
	}
	return contractx.TimeSlot{}, false
}
