package usecase

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"document-chatbot/internal/form"
	"document-chatbot/internal/model"
)

// conversation is the per-conversation state: the form session and a
// window of recent history.
type conversation struct {
	Form    form.Session
	History []model.ChatMessage
}

// sessionStore keeps conversation state in an expiring LRU cache.
type sessionStore struct {
	cache *expirable.LRU[string, conversation]
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		cache: expirable.NewLRU[string, conversation](sessionCacheSize, nil, sessionTTL),
	}
}

// get returns the conversation for the ID, or a fresh one.
func (s *sessionStore) get(id string) conversation {
	if conv, ok := s.cache.Get(id); ok {
		return conv
	}
	return conversation{Form: form.NewSession()}
}

// put stores the conversation, trimming history to the window.
func (s *sessionStore) put(id string, conv conversation) {
	if len(conv.History) > historyLimit {
		conv.History = conv.History[len(conv.History)-historyLimit:]
	}
	s.cache.Add(id, conv)
}
