package appointment

import "document-chatbot/internal/model"

// RecordInput carries a completed appointment to persist.
type RecordInput struct {
	Appointment model.Appointment
}

// RecordOutput is the result of recording an appointment.
type RecordOutput struct {
	Appointment  model.Appointment
	CalendarLink string
}

// ListRecentInput holds listing parameters.
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput contains the listed appointments, most recent first.
type ListRecentOutput struct {
	Appointments []model.Appointment
	Total        int
}
