package chat

import (
	"context"

	"document-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Respond processes one user message in a conversation: route it to
	// the appointment form or the document QA path and produce a reply.
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)
}
