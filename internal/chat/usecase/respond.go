package usecase

import (
	"context"
	"strings"

	"document-chatbot/internal/appointment"
	"document-chatbot/internal/chat"
	"document-chatbot/internal/document"
	"document-chatbot/internal/model"
	"document-chatbot/internal/router"
)

// Respond processes one user message: route it, run the form engine or
// the QA path, and update the conversation state.
func (uc *implUseCase) Respond(ctx context.Context, sc model.Scope, input chat.RespondInput) (chat.RespondOutput, error) {
	if strings.TrimSpace(input.ConversationID) == "" {
		return chat.RespondOutput{}, chat.ErrEmptyConversationID
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.RespondOutput{}, chat.ErrEmptyMessage
	}

	conv := uc.sessions.get(input.ConversationID)
	decision := uc.router.Route(message, conv.Form.Active)

	uc.l.Infof(ctx, "%s: user=%s conversation=%s route=%s matched=%q",
		LogPrefixRespond, sc.UserID, input.ConversationID, decision.Route, decision.Matched)

	var out chat.RespondOutput
	if decision.Route == router.RouteForm {
		out = uc.respondForm(ctx, sc, &conv, message)
	} else {
		out = uc.respondQA(ctx, sc, conv, message)
	}
	out.Route = decision.Route

	conv.History = append(conv.History,
		model.ChatMessage{Role: model.RoleUser, Content: message},
		model.ChatMessage{Role: model.RoleAssistant, Content: out.Reply},
	)
	uc.sessions.put(input.ConversationID, conv)

	return out, nil
}

// respondForm advances the appointment form by one turn.
func (uc *implUseCase) respondForm(ctx context.Context, sc model.Scope, conv *conversation, message string) chat.RespondOutput {
	var out chat.RespondOutput

	if !conv.Form.Active {
		session, reply := uc.engine.Begin()
		conv.Form = session
		out.Reply = reply.Text
		out.Progress = reply.Progress
		out.FormActive = true
		return out
	}

	session, reply, appt := uc.engine.Submit(ctx, conv.Form, message)
	conv.Form = session

	out.Reply = reply.Text
	out.Progress = reply.Progress
	out.FormActive = session.Active
	out.Completed = reply.Completed
	out.Recovered = reply.Recovered

	if appt != nil {
		out.Appointment = appt
		recorded, err := uc.apptUC.Record(ctx, sc, appointment.RecordInput{Appointment: *appt})
		if err != nil {
			// The user already got their confirmation text; persistence
			// failure is logged but does not change the reply.
			uc.l.Errorf(ctx, "%s: apptUC.Record: %v", LogPrefixRespond, err)
		} else {
			out.CalendarLink = recorded.CalendarLink
		}
	}

	return out
}

// respondQA answers the message over the ingested documents. Failures
// degrade to an apology rather than an error, so the conversation can
// continue.
func (uc *implUseCase) respondQA(ctx context.Context, sc model.Scope, conv conversation, message string) chat.RespondOutput {
	var out chat.RespondOutput

	answer, err := uc.docUC.Ask(ctx, sc, document.AskInput{
		Question: message,
		History:  conv.History,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: docUC.Ask: %v", LogPrefixRespond, err)
		out.Reply = MsgQAFallback
		return out
	}

	out.Reply = answer.Answer
	out.Sources = answer.Sources
	return out
}
