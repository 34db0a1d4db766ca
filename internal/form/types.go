package form

// Step is one stage in the fixed collection sequence.
type Step string

const (
	StepName         Step = "name"
	StepEmail        Step = "email"
	StepPhone        Step = "phone"
	StepDate         Step = "date"
	StepConfirmation Step = "confirmation"
	// StepInactive marks a session with no form in progress.
	StepInactive Step = "inactive"
)

// Steps is the ordered collection sequence.
var Steps = []Step{StepName, StepEmail, StepPhone, StepDate, StepConfirmation}

// Field names a collected value.
type Field string

const (
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldPhone         Field = "phone"
	FieldDate          Field = "date"
	FieldFormattedDate Field = "formatted_date"
)

// Session is the per-conversation form state. It is a value owned by
// the caller: the engine never stores sessions, it takes one in and
// returns the updated one. Fields only ever holds keys for steps that
// have already been passed.
type Session struct {
	CurrentStep Step
	Fields      map[Field]string
	Active      bool
}

// NewSession returns an inactive session with no collected fields.
func NewSession() Session {
	return Session{
		CurrentStep: StepInactive,
		Fields:      map[Field]string{},
	}
}

// Reply is the engine's answer to one user turn.
type Reply struct {
	Text      string
	Completed bool   // true only on the terminal confirmation reply
	Recovered bool   // true when the engine reset an inconsistent step
	Progress  string // display label, e.g. "Step 2/5: Email"
}
