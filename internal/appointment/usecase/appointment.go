package usecase

import (
	"context"
	"fmt"

	"document-chatbot/internal/appointment"
	"document-chatbot/internal/appointment/repository"
	"document-chatbot/internal/model"
	"document-chatbot/pkg/gcalendar"
)

// Record persists a completed appointment and attempts to create a
// calendar event for it.
func (uc *implUseCase) Record(ctx context.Context, sc model.Scope, input appointment.RecordInput) (appointment.RecordOutput, error) {
	appt := input.Appointment
	if appt.Name == "" || appt.Email == "" || appt.Phone == "" || appt.Date == "" {
		return appointment.RecordOutput{}, appointment.ErrMissingField
	}

	uc.l.Infof(ctx, "%s: user=%s date=%s", LogPrefixRecord, sc.UserID, appt.Date)

	created, err := uc.repo.Create(ctx, appt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.Create: %v", LogPrefixRecord, err)
		return appointment.RecordOutput{}, fmt.Errorf("%w: %v", appointment.ErrStore, err)
	}

	calendarLink := uc.tryCreateCalendarEvent(ctx, created)

	return appointment.RecordOutput{
		Appointment:  created,
		CalendarLink: calendarLink,
	}, nil
}

// ListRecent returns the most recently recorded appointments.
func (uc *implUseCase) ListRecent(ctx context.Context, sc model.Scope, input appointment.ListRecentInput) (appointment.ListRecentOutput, error) {
	uc.l.Debugf(ctx, "%s: user=%s limit=%d", LogPrefixListRecent, sc.UserID, input.Limit)

	items, err := uc.repo.List(ctx, repository.ListOptions{Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.List: %v", LogPrefixListRecent, err)
		return appointment.ListRecentOutput{}, err
	}

	return appointment.ListRecentOutput{
		Appointments: items,
		Total:        len(items),
	}, nil
}

// tryCreateCalendarEvent attempts to create a calendar event for the
// appointment. Returns the event HTML link, or empty string on failure.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, appt model.Appointment) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  "primary",
		Summary:     fmt.Sprintf("Appointment: %s", appt.Name),
		Description: fmt.Sprintf("Email: %s\nPhone: %s", appt.Email, appt.Phone),
		Date:        appt.Date,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: calendar event creation failed (non-fatal): %v", LogPrefixRecord, err)
		return ""
	}

	return event.HtmlLink
}
