package http

import (
	"document-chatbot/internal/appointment"
	pkgLog "document-chatbot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc appointment.UseCase
}

// New creates a new HTTP handler for the appointment domain.
func New(l pkgLog.Logger, uc appointment.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
