package appointment

import (
	"context"

	"document-chatbot/internal/model"
)

// UseCase defines the business logic interface for the appointment domain.
type UseCase interface {
	// Record persists a completed appointment and optionally creates a
	// calendar event for it.
	Record(ctx context.Context, sc model.Scope, input RecordInput) (RecordOutput, error)

	// ListRecent returns the most recently recorded appointments.
	ListRecent(ctx context.Context, sc model.Scope, input ListRecentInput) (ListRecentOutput, error)
}
