package memory

import (
	"context"

	"document-chatbot/internal/appointment/repository"
	"document-chatbot/internal/model"
)

const defaultListLimit = 20

// Create appends the appointment to the store.
func (r *implRepository) Create(ctx context.Context, appt model.Appointment) (model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, appt)
	r.l.Debugf(ctx, "memory.Create: stored appointment id=%s total=%d", appt.ID, len(r.items))
	return appt, nil
}

// List returns appointments most recent first, capped at opt.Limit.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Appointment, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.items)
	if limit > n {
		limit = n
	}

	out := make([]model.Appointment, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}
