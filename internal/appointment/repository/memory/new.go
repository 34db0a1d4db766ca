package memory

import (
	"sync"

	"document-chatbot/internal/appointment/repository"
	"document-chatbot/internal/model"
	pkgLog "document-chatbot/pkg/log"
)

// implRepository stores appointments in process memory. It is safe for
// concurrent use and keeps insertion order.
type implRepository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	items []model.Appointment
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new in-memory appointment repository.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{l: l}
}
