package usecase

import (
	"document-chatbot/internal/appointment"
	"document-chatbot/internal/appointment/repository"
	"document-chatbot/pkg/gcalendar"
	pkgLog "document-chatbot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar gcalendar.ICalendar
}

var _ appointment.UseCase = (*implUseCase)(nil)

// New creates a new appointment UseCase instance. The calendar client
// is optional; pass nil to disable calendar event creation.
func New(l pkgLog.Logger, repo repository.Repository, calendar gcalendar.ICalendar) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
	}
}
