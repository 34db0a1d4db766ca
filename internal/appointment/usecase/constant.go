package usecase

const (
	// LogPrefixRecord is the log prefix for the Record operation.
	LogPrefixRecord = "appointment.Record"
	// LogPrefixListRecent is the log prefix for the ListRecent operation.
	LogPrefixListRecent = "appointment.ListRecent"
)
