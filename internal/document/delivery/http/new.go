package http

import (
	"document-chatbot/internal/document"
	pkgLog "document-chatbot/pkg/log"
)

type handler struct {
	l  pkgLog.Logger
	uc document.UseCase
}

// New creates a new HTTP handler for the document domain.
func New(l pkgLog.Logger, uc document.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
