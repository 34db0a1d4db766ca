package http

import (
	"time"

	"document-chatbot/internal/appointment"
	"document-chatbot/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (r listReq) toInput() appointment.ListRecentInput {
	return appointment.ListRecentInput{Limit: r.Limit}
}

// --- Response DTOs ---

type appointmentResp struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Date          string    `json:"date"`
	FormattedDate string    `json:"formatted_date"`
	CreatedAt     time.Time `json:"created_at"`
}

func newAppointmentResp(appt model.Appointment) appointmentResp {
	return appointmentResp{
		ID:            appt.ID,
		Name:          appt.Name,
		Email:         appt.Email,
		Phone:         appt.Phone,
		Date:          appt.Date,
		FormattedDate: appt.FormattedDate,
		CreatedAt:     appt.CreatedAt,
	}
}

type listResp struct {
	Appointments []appointmentResp `json:"appointments"`
	Total        int               `json:"total"`
}

func (h *handler) newListResp(out appointment.ListRecentOutput) listResp {
	appointments := make([]appointmentResp, len(out.Appointments))
	for i, appt := range out.Appointments {
		appointments[i] = newAppointmentResp(appt)
	}
	return listResp{
		Appointments: appointments,
		Total:        out.Total,
	}
}
