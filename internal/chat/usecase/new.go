package usecase

import (
	"document-chatbot/internal/appointment"
	"document-chatbot/internal/chat"
	"document-chatbot/internal/document"
	"document-chatbot/internal/form"
	"document-chatbot/internal/router"
	pkgLog "document-chatbot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	router   router.Router
	engine   form.Engine
	docUC    document.UseCase
	apptUC   appointment.UseCase
	sessions *sessionStore
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	rt router.Router,
	engine form.Engine,
	docUC document.UseCase,
	apptUC appointment.UseCase,
) *implUseCase {
	return &implUseCase{
		l:        l,
		router:   rt,
		engine:   engine,
		docUC:    docUC,
		apptUC:   apptUC,
		sessions: newSessionStore(),
	}
}
