package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"document-chatbot/internal/appointment"
	"document-chatbot/internal/chat"
	"document-chatbot/internal/document"
	"document-chatbot/internal/model"
	"document-chatbot/internal/router"

	formusecase "document-chatbot/internal/form/usecase"
	"document-chatbot/pkg/datemath"
	pkgLog "document-chatbot/pkg/log"
)

type mockDocUC struct {
	lastInput document.AskInput
	answer    string
	err       error
}

func (m *mockDocUC) Ingest(ctx context.Context, sc model.Scope, input document.IngestInput) (document.IngestOutput, error) {
	return document.IngestOutput{}, nil
}

func (m *mockDocUC) Ask(ctx context.Context, sc model.Scope, input document.AskInput) (document.AskOutput, error) {
	m.lastInput = input
	if m.err != nil {
		return document.AskOutput{}, m.err
	}
	return document.AskOutput{
		Answer:  m.answer,
		Sources: []document.Source{{Source: "handbook.txt", Score: 0.9}},
	}, nil
}

func (m *mockDocUC) Stats(ctx context.Context, sc model.Scope) (document.StatsOutput, error) {
	return document.StatsOutput{}, nil
}

type mockApptUC struct {
	recorded []model.Appointment
	err      error
}

func (m *mockApptUC) Record(ctx context.Context, sc model.Scope, input appointment.RecordInput) (appointment.RecordOutput, error) {
	if m.err != nil {
		return appointment.RecordOutput{}, m.err
	}
	m.recorded = append(m.recorded, input.Appointment)
	return appointment.RecordOutput{
		Appointment:  input.Appointment,
		CalendarLink: "https://calendar.google.com/event-1",
	}, nil
}

func (m *mockApptUC) ListRecent(ctx context.Context, sc model.Scope, input appointment.ListRecentInput) (appointment.ListRecentOutput, error) {
	return appointment.ListRecentOutput{}, nil
}

func newTestUseCase(t *testing.T, docUC document.UseCase, apptUC appointment.UseCase) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	engine := formusecase.New(pkgLog.NewNop(), parser)
	return New(pkgLog.NewNop(), router.New(), engine, docUC, apptUC)
}

func TestRespond_QARoute(t *testing.T) {
	docUC := &mockDocUC{answer: "The office opens at 9am."}
	uc := newTestUseCase(t, docUC, &mockApptUC{})

	out, err := uc.Respond(context.Background(), model.Scope{}, chat.RespondInput{
		ConversationID: "c1",
		Message:        "When does the office open?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Route != router.RouteQA {
		t.Errorf("expected QA route, got %s", out.Route)
	}
	if out.Reply != "The office opens at 9am." {
		t.Errorf("unexpected reply: %s", out.Reply)
	}
	if len(out.Sources) != 1 {
		t.Errorf("expected sources, got %v", out.Sources)
	}
}

func TestRespond_QAFailureDegradesToApology(t *testing.T) {
	docUC := &mockDocUC{err: errors.New("llm down")}
	uc := newTestUseCase(t, docUC, &mockApptUC{})

	out, err := uc.Respond(context.Background(), model.Scope{}, chat.RespondInput{
		ConversationID: "c1",
		Message:        "What are your hours?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != MsgQAFallback {
		t.Errorf("expected fallback reply, got %q", out.Reply)
	}
}

func TestRespond_FormFlow(t *testing.T) {
	apptUC := &mockApptUC{}
	uc := newTestUseCase(t, &mockDocUC{answer: "hi"}, apptUC)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	send := func(msg string) chat.RespondOutput {
		out, err := uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: msg})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", msg, err)
		}
		return out
	}

	out := send("I want to book an appointment")
	if out.Route != router.RouteForm || !out.FormActive {
		t.Fatalf("expected active form, got %+v", out)
	}

	send("John Smith")
	send("john@example.com")
	send("123-456-7890")
	send("tomorrow")
	out = send("yes")

	if !out.Completed {
		t.Fatalf("expected completed form, got %+v", out)
	}
	if out.Appointment == nil || out.Appointment.Name != "John Smith" {
		t.Fatalf("unexpected appointment: %+v", out.Appointment)
	}
	if out.CalendarLink == "" {
		t.Errorf("expected calendar link from recording")
	}
	if len(apptUC.recorded) != 1 {
		t.Errorf("expected appointment recorded, got %d", len(apptUC.recorded))
	}
	if out.FormActive {
		t.Errorf("form should be inactive after completion")
	}
}

func TestRespond_FormCapturesAllMessagesWhileActive(t *testing.T) {
	docUC := &mockDocUC{answer: "should not be used"}
	uc := newTestUseCase(t, docUC, &mockApptUC{})
	ctx := context.Background()
	sc := model.Scope{}

	uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "book appointment"})

	// Even a question-like message stays in the form while it is active.
	out, err := uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "What is your refund policy?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Route != router.RouteForm {
		t.Errorf("expected form route while form active, got %s", out.Route)
	}
}

func TestRespond_ConversationsAreIsolated(t *testing.T) {
	uc := newTestUseCase(t, &mockDocUC{answer: "an answer"}, &mockApptUC{})
	ctx := context.Background()
	sc := model.Scope{}

	uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "book appointment"})

	// A second conversation is not affected by the first one's form.
	out, err := uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c2", Message: "What are your hours?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Route != router.RouteQA {
		t.Errorf("expected QA route in fresh conversation, got %s", out.Route)
	}
}

func TestRespond_RecordFailureKeepsReply(t *testing.T) {
	apptUC := &mockApptUC{err: errors.New("store down")}
	uc := newTestUseCase(t, &mockDocUC{}, apptUC)
	ctx := context.Background()
	sc := model.Scope{}

	for _, msg := range []string{"book appointment", "John Smith", "john@example.com", "1234567890", "tomorrow"} {
		uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: msg})
	}
	out, err := uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "yes"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Completed || out.Appointment == nil {
		t.Fatalf("expected completion despite record failure, got %+v", out)
	}
	if out.CalendarLink != "" {
		t.Errorf("expected no calendar link on record failure")
	}
}

func TestRespond_HistoryFlowsIntoQA(t *testing.T) {
	docUC := &mockDocUC{answer: "answer"}
	uc := newTestUseCase(t, docUC, &mockApptUC{})
	ctx := context.Background()
	sc := model.Scope{}

	uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "first question"})
	uc.Respond(ctx, sc, chat.RespondInput{ConversationID: "c1", Message: "second question"})

	if len(docUC.lastInput.History) != 2 {
		t.Fatalf("expected 2 history messages, got %d", len(docUC.lastInput.History))
	}
	if !strings.Contains(docUC.lastInput.History[0].Content, "first question") {
		t.Errorf("unexpected history: %+v", docUC.lastInput.History)
	}
}

func TestRespond_EmptyInputs(t *testing.T) {
	uc := newTestUseCase(t, &mockDocUC{}, &mockApptUC{})
	ctx := context.Background()

	_, err := uc.Respond(ctx, model.Scope{}, chat.RespondInput{ConversationID: "c1", Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}

	_, err = uc.Respond(ctx, model.Scope{}, chat.RespondInput{ConversationID: "", Message: "hello"})
	if !errors.Is(err, chat.ErrEmptyConversationID) {
		t.Errorf("expected ErrEmptyConversationID, got %v", err)
	}
}
