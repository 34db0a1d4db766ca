package repository

// ListOptions holds the parameters for listing appointments.
type ListOptions struct {
	Limit int // Max number of results, most recent first (default 20)
}
