package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"document-chatbot/internal/form"
	"document-chatbot/pkg/datemath"
	"document-chatbot/pkg/log"
)

func newTestEngine(t *testing.T) *implEngine {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	e := New(log.NewNop(), parser)
	// Monday, January 15, 2024
	e.now = func() time.Time { return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC) }
	return e
}

// runValidSequence drives the form through all steps up to (and
// including) the confirmation prompt.
func runValidSequence(t *testing.T, e *implEngine) form.Session {
	t.Helper()
	ctx := context.Background()

	s, _ := e.Begin()

	inputs := []string{"john smith", "John@Example.com", "(123) 456-7890", "tomorrow"}
	for _, in := range inputs {
		var r form.Reply
		s, r, _ = e.Submit(ctx, s, in)
		if r.Recovered {
			t.Fatalf("unexpected recovery on input %q", in)
		}
	}

	if s.CurrentStep != form.StepConfirmation {
		t.Fatalf("expected confirmation step after valid sequence, got %q", s.CurrentStep)
	}
	return s
}

func TestBegin(t *testing.T) {
	e := newTestEngine(t)

	s, r := e.Begin()

	if !s.Active {
		t.Error("Begin should return an active session")
	}
	if s.CurrentStep != form.StepName {
		t.Errorf("expected name step, got %q", s.CurrentStep)
	}
	if len(s.Fields) != 0 {
		t.Errorf("expected no collected fields, got %v", s.Fields)
	}
	if r.Progress != "Step 1/5: Name" {
		t.Errorf("unexpected progress label %q", r.Progress)
	}
	if !strings.Contains(r.Text, "full name") {
		t.Errorf("opening prompt should ask for the name, got %q", r.Text)
	}
}

func TestSubmit_HappyPath(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	s := runValidSequence(t, e)

	if s.Fields[form.FieldName] != "John Smith" {
		t.Errorf("name not title-cased: %q", s.Fields[form.FieldName])
	}
	if s.Fields[form.FieldEmail] != "john@example.com" {
		t.Errorf("email not lower-cased: %q", s.Fields[form.FieldEmail])
	}
	if s.Fields[form.FieldPhone] != "1234567890" {
		t.Errorf("phone not normalized: %q", s.Fields[form.FieldPhone])
	}
	if s.Fields[form.FieldDate] != "2024-01-16" {
		t.Errorf("date not resolved relative to the fixed clock: %q", s.Fields[form.FieldDate])
	}
	if s.Fields[form.FieldFormattedDate] != "Tuesday, January 16, 2024" {
		t.Errorf("unexpected formatted date %q", s.Fields[form.FieldFormattedDate])
	}

	s, r, appt := e.Submit(ctx, s, "yes")

	if appt == nil {
		t.Fatal("affirmative confirmation should produce an appointment")
	}
	if !r.Completed {
		t.Error("terminal reply should be marked completed")
	}
	if s.Active {
		t.Error("session should be inactive after confirmation")
	}
	if len(s.Fields) != 0 {
		t.Errorf("fields should be cleared after confirmation, got %v", s.Fields)
	}
	if appt.Name != "John Smith" || appt.Email != "john@example.com" ||
		appt.Phone != "1234567890" || appt.Date != "2024-01-16" {
		t.Errorf("appointment does not carry the collected fields: %+v", appt)
	}
	if appt.ID == "" {
		t.Error("appointment should have an ID")
	}
	if appt.CreatedAt.IsZero() {
		t.Error("appointment should have a timestamp")
	}
}

func TestSubmit_InvalidInputLeavesStateUnchanged(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		setup []string // valid inputs to reach the step under test
		input string
		step  form.Step
	}{
		{name: "Bad name", setup: nil, input: "x", step: form.StepName},
		{name: "Bad email", setup: []string{"john smith"}, input: "not-an-email", step: form.StepEmail},
		{name: "Bad phone", setup: []string{"john smith", "john@example.com"}, input: "12345", step: form.StepPhone},
		{name: "Bad date", setup: []string{"john smith", "john@example.com", "1234567890"}, input: "whenever", step: form.StepDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := e.Begin()
			for _, in := range tt.setup {
				s, _, _ = e.Submit(ctx, s, in)
			}
			before := len(s.Fields)

			got, r, appt := e.Submit(ctx, s, tt.input)

			if got.CurrentStep != tt.step {
				t.Errorf("step changed on invalid input: %q -> %q", tt.step, got.CurrentStep)
			}
			if len(got.Fields) != before {
				t.Errorf("fields changed on invalid input: %v", got.Fields)
			}
			if appt != nil {
				t.Error("invalid input must not produce an appointment")
			}
			if r.Completed {
				t.Error("invalid input must not complete the form")
			}
		})
	}
}

func TestSubmit_NegativeConfirmationRestarts(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	s := runValidSequence(t, e)

	s, r, appt := e.Submit(ctx, s, "no")

	if appt != nil {
		t.Fatal("negative confirmation must not produce an appointment")
	}
	if s.CurrentStep != form.StepName {
		t.Errorf("expected restart at name step, got %q", s.CurrentStep)
	}
	if len(s.Fields) != 0 {
		t.Errorf("expected all fields discarded, got %v", s.Fields)
	}
	if !s.Active {
		t.Error("session should stay active for the restart")
	}
	if !strings.Contains(r.Text, "start over") {
		t.Errorf("restart reply should say so, got %q", r.Text)
	}
}

func TestSubmit_AmbiguousConfirmationReprompts(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	s := runValidSequence(t, e)
	fieldsBefore := len(s.Fields)

	s, r, appt := e.Submit(ctx, s, "maybe later")

	if appt != nil {
		t.Fatal("ambiguous confirmation must not produce an appointment")
	}
	if s.CurrentStep != form.StepConfirmation {
		t.Errorf("expected to stay on confirmation, got %q", s.CurrentStep)
	}
	if len(s.Fields) != fieldsBefore {
		t.Errorf("fields changed on ambiguous confirmation: %v", s.Fields)
	}
	if !strings.Contains(r.Text, "'yes'") {
		t.Errorf("reply should ask for yes/no, got %q", r.Text)
	}
}

func TestSubmit_ConfirmationTokens(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	tests := []struct {
		input     string
		confirmed bool
		restarted bool
	}{
		{input: "yes", confirmed: true},
		{input: "that is correct", confirmed: true},
		{input: "confirm", confirmed: true},
		{input: "y", confirmed: true},
		{input: "no", restarted: true},
		{input: "wrong", restarted: true},
		{input: "n", restarted: true},
		{input: "hmm", confirmed: false, restarted: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := runValidSequence(t, e)
			s, _, appt := e.Submit(ctx, s, tt.input)

			if tt.confirmed && appt == nil {
				t.Fatalf("%q should confirm", tt.input)
			}
			if !tt.confirmed && appt != nil {
				t.Fatalf("%q should not confirm", tt.input)
			}
			if tt.restarted && s.CurrentStep != form.StepName {
				t.Errorf("%q should restart at name, got %q", tt.input, s.CurrentStep)
			}
		})
	}
}

func TestSubmit_UnknownStepRecovers(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	s := form.Session{CurrentStep: "garbage", Fields: map[form.Field]string{form.FieldName: "Stale"}, Active: true}

	s, r, appt := e.Submit(ctx, s, "anything")

	if appt != nil {
		t.Fatal("recovery must not produce an appointment")
	}
	if !r.Recovered {
		t.Error("recovery must be flagged on the reply")
	}
	if s.CurrentStep != form.StepName {
		t.Errorf("expected recovery to name step, got %q", s.CurrentStep)
	}
	if len(s.Fields) != 0 {
		t.Errorf("expected stale fields cleared, got %v", s.Fields)
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		step form.Step
		want string
	}{
		{form.StepName, "Step 1/5: Name"},
		{form.StepEmail, "Step 2/5: Email"},
		{form.StepPhone, "Step 3/5: Phone"},
		{form.StepDate, "Step 4/5: Date"},
		{form.StepConfirmation, "Step 5/5: Confirmation"},
		{form.StepInactive, ""},
	}

	for _, tt := range tests {
		got := Progress(form.Session{CurrentStep: tt.step})
		if got != tt.want {
			t.Errorf("Progress(%q) = %q, want %q", tt.step, got, tt.want)
		}
	}
}
