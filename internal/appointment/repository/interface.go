package repository

import (
	"context"

	"document-chatbot/internal/model"
)

// Repository is the interface for appointment persistence.
type Repository interface {
	Create(ctx context.Context, appt model.Appointment) (model.Appointment, error)
	List(ctx context.Context, opt ListOptions) ([]model.Appointment, error)
}
