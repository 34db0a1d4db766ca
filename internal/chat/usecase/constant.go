package usecase

import "time"

const (
	// LogPrefixRespond is the log prefix for the Respond operation.
	LogPrefixRespond = "chat.Respond"

	// sessionCacheSize bounds the number of concurrent conversations held
	// in memory; least recently used conversations are evicted first.
	sessionCacheSize = 1024
	// sessionTTL expires idle conversations.
	sessionTTL = 30 * time.Minute

	// historyLimit caps stored history per conversation (messages, not
	// exchanges).
	historyLimit = 20
)

// MsgQAFallback is sent when the QA path fails.
const MsgQAFallback = "I apologize, but I'm having trouble processing your request right now. Please try again."
