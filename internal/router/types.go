package router

// Route is the destination a user message is dispatched to.
type Route string

const (
	// RouteForm hands the message to the appointment form engine.
	RouteForm Route = "FORM"
	// RouteQA hands the message to the document question-answering path.
	RouteQA Route = "QA"
)

// Decision is the router output for a single message.
type Decision struct {
	Route   Route
	Matched string // keyword or pattern that triggered RouteForm, if any
}
