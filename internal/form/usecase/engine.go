package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"document-chatbot/internal/form"
	"document-chatbot/internal/model"
	"document-chatbot/pkg/datemath"
	"document-chatbot/pkg/validate"
)

// Begin starts a new form at the name step with cleared fields.
func (e *implEngine) Begin() (form.Session, form.Reply) {
	s := form.Session{
		CurrentStep: form.StepName,
		Fields:      map[form.Field]string{},
		Active:      true,
	}
	return s, e.reply(s, PromptOpening)
}

// Submit processes one user turn. Every transition is driven purely by
// the validity of the current step's input; there is no lookahead or
// skipping.
func (e *implEngine) Submit(ctx context.Context, s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	switch s.CurrentStep {
	case form.StepName:
		return e.submitName(s, input)
	case form.StepEmail:
		return e.submitEmail(s, input)
	case form.StepPhone:
		return e.submitPhone(s, input)
	case form.StepDate:
		return e.submitDate(s, input)
	case form.StepConfirmation:
		return e.submitConfirmation(s, input)
	default:
		// Inconsistent state: restart from the first step rather than
		// failing, and flag the recovery so callers can log it.
		e.l.Warnf(ctx, "%s: unknown step %q, recovering to name", LogPrefixSubmit, s.CurrentStep)
		s.CurrentStep = form.StepName
		s.Fields = map[form.Field]string{}
		s.Active = true
		r := e.reply(s, PromptRecovered)
		r.Recovered = true
		return s, r, nil
	}
}

func (e *implEngine) submitName(s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	res := validate.Name(input)
	if !res.Valid {
		return s, e.reply(s, fmt.Sprintf(PromptNameRetry, res.Message)), nil
	}

	s = withField(s, form.FieldName, res.Normalized)
	s.CurrentStep = form.StepEmail
	return s, e.reply(s, fmt.Sprintf(PromptNameOK, res.Normalized)), nil
}

func (e *implEngine) submitEmail(s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	res := validate.Email(input)
	if !res.Valid {
		return s, e.reply(s, fmt.Sprintf(PromptEmailRetry, res.Message)), nil
	}

	s = withField(s, form.FieldEmail, res.Normalized)
	s.CurrentStep = form.StepPhone
	return s, e.reply(s, PromptEmailOK), nil
}

func (e *implEngine) submitPhone(s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	res := validate.Phone(input)
	if !res.Valid {
		return s, e.reply(s, fmt.Sprintf(PromptPhoneRetry, res.Message)), nil
	}

	s = withField(s, form.FieldPhone, res.Normalized)
	s.CurrentStep = form.StepDate
	return s, e.reply(s, PromptPhoneOK), nil
}

func (e *implEngine) submitDate(s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	extracted, ok := e.dateMath.Extract(input, e.now())
	if !ok {
		return s, e.reply(s, PromptDateRetry), nil
	}

	iso := extracted.Format(datemath.DateFormatISO)
	human := e.dateMath.FormatHuman(extracted)

	s = withField(s, form.FieldDate, iso)
	s = withField(s, form.FieldFormattedDate, human)
	s.CurrentStep = form.StepConfirmation

	text := fmt.Sprintf(PromptConfirm,
		s.Fields[form.FieldName],
		s.Fields[form.FieldEmail],
		s.Fields[form.FieldPhone],
		human,
	)
	return s, e.reply(s, text), nil
}

func (e *implEngine) submitConfirmation(s form.Session, input string) (form.Session, form.Reply, *model.Appointment) {
	normalized := strings.ToLower(strings.TrimSpace(input))

	switch {
	case containsWord(normalized, affirmativeWords):
		appt := &model.Appointment{
			ID:            uuid.NewString(),
			Name:          s.Fields[form.FieldName],
			Email:         s.Fields[form.FieldEmail],
			Phone:         s.Fields[form.FieldPhone],
			Date:          s.Fields[form.FieldDate],
			FormattedDate: s.Fields[form.FieldFormattedDate],
			CreatedAt:     e.now(),
		}

		text := fmt.Sprintf(PromptCompleted,
			appt.Name, appt.Name, appt.Email, appt.Phone, appt.FormattedDate,
			appt.Phone, appt.FormattedDate, appt.Email,
		)

		s = form.NewSession()
		r := form.Reply{Text: text, Completed: true}
		return s, r, appt

	case containsWord(normalized, negativeWords):
		// A "no" restarts the whole sequence from scratch; previously
		// collected fields are discarded, not individually edited.
		s.CurrentStep = form.StepName
		s.Fields = map[form.Field]string{}
		return s, e.reply(s, PromptRestart), nil

	default:
		return s, e.reply(s, PromptConfirmRetry), nil
	}
}

// reply builds a Reply with the progress label for the session's step.
func (e *implEngine) reply(s form.Session, text string) form.Reply {
	return form.Reply{Text: text, Progress: Progress(s)}
}

// Progress renders the display-only progress label, e.g. "Step 2/5: Email".
func Progress(s form.Session) string {
	for i, step := range form.Steps {
		if step == s.CurrentStep {
			return fmt.Sprintf("Step %d/%d: %s", i+1, len(form.Steps), stepNames[string(step)])
		}
	}
	return ""
}

// withField copies the session's field map before writing, so a failed
// later step never leaves partial mutations visible to the caller.
func withField(s form.Session, f form.Field, v string) form.Session {
	fields := make(map[form.Field]string, len(s.Fields)+1)
	for k, val := range s.Fields {
		fields[k] = val
	}
	fields[f] = v
	s.Fields = fields
	return s
}

func containsWord(text string, words []string) bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	for _, w := range fields {
		for _, tok := range words {
			if w == tok {
				return true
			}
		}
	}
	return false
}
