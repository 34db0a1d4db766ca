package model

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
