package model

// Environment is the runtime environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the conversation a request belongs to.
// One scope maps to exactly one conversation session; no state is ever
// shared across scopes.
type Scope struct {
	ConversationID string
	UserID         string
	Username       string
}
