package form

import (
	"context"

	"document-chatbot/internal/model"
)

// Engine drives the conversational appointment form. Implementations
// are stateless; all per-conversation state lives in the Session value
// passed in and returned.
type Engine interface {
	// Begin starts a new form, returning an active session at the name
	// step and the opening prompt.
	Begin() (Session, Reply)

	// Submit processes one user turn for the session's current step.
	// On a valid input the returned session has advanced one step; on
	// an invalid input it is unchanged and the reply re-prompts. The
	// appointment is non-nil exactly once: on an affirmative
	// confirmation, after which the session is inactive and cleared.
	Submit(ctx context.Context, s Session, input string) (Session, Reply, *model.Appointment)
}
