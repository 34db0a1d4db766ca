package http

import (
	"document-chatbot/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	ConversationID string `json:"conversation_id" binding:"required,min=1,max=128"`
	Message        string `json:"message"         binding:"required,min=1,max=4000"`
}

func (r sendMessageReq) toInput() chat.RespondInput {
	return chat.RespondInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
	}
}

// --- Response DTOs ---

type sourceResp struct {
	Source  string  `json:"source"`
	Score   float64 `json:"score"`
	Excerpt string  `json:"excerpt,omitempty"`
}

type appointmentResp struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	FormattedDate string `json:"formatted_date"`
}

type sendMessageResp struct {
	Reply        string           `json:"reply"`
	Route        string           `json:"route"`
	FormActive   bool             `json:"form_active"`
	Progress     string           `json:"progress,omitempty"`
	Completed    bool             `json:"completed"`
	Recovered    bool             `json:"recovered,omitempty"`
	Appointment  *appointmentResp `json:"appointment,omitempty"`
	CalendarLink string           `json:"calendar_link,omitempty"`
	Sources      []sourceResp     `json:"sources,omitempty"`
}

func (h *handler) newSendMessageResp(out chat.RespondOutput) sendMessageResp {
	resp := sendMessageResp{
		Reply:        out.Reply,
		Route:        string(out.Route),
		FormActive:   out.FormActive,
		Progress:     out.Progress,
		Completed:    out.Completed,
		Recovered:    out.Recovered,
		CalendarLink: out.CalendarLink,
	}

	if out.Appointment != nil {
		resp.Appointment = &appointmentResp{
			ID:            out.Appointment.ID,
			Name:          out.Appointment.Name,
			Email:         out.Appointment.Email,
			Phone:         out.Appointment.Phone,
			Date:          out.Appointment.Date,
			FormattedDate: out.Appointment.FormattedDate,
		}
	}

	for _, s := range out.Sources {
		resp.Sources = append(resp.Sources, sourceResp{
			Source:  s.Source,
			Score:   s.Score,
			Excerpt: s.Excerpt,
		})
	}

	return resp
}
