package chat

import (
	"document-chatbot/internal/document"
	"document-chatbot/internal/model"
	"document-chatbot/internal/router"
)

// RespondInput is one user turn in a conversation.
type RespondInput struct {
	ConversationID string
	Message        string
}

// RespondOutput is the bot's reply for one turn.
type RespondOutput struct {
	Reply        string
	Route        router.Route
	FormActive   bool
	Progress     string // form progress label, empty outside a form
	Completed    bool   // true on the turn the appointment was confirmed
	Recovered    bool   // true when inconsistent form state was reset
	Appointment  *model.Appointment
	CalendarLink string
	Sources      []document.Source
}
