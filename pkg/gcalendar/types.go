package gcalendar

// CreateEventRequest is the input for creating an all-day calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        string // ISO date, YYYY-MM-DD
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID       string
	Summary  string
	Date     string
	HtmlLink string
}
