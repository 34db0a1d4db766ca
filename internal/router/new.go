package router

import "regexp"

// Router decides whether a message goes to the form engine or to
// document question answering.
type Router interface {
	Route(message string, formActive bool) Decision
}

// KeywordRouter is a deterministic router over a fixed keyword and
// pattern table. It holds no state and is safe for concurrent use.
type KeywordRouter struct {
	patterns []*regexp.Regexp
}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter with the scheduling patterns compiled.
func New() *KeywordRouter {
	compiled := make([]*regexp.Regexp, 0, len(schedulingPatterns))
	for _, p := range schedulingPatterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return &KeywordRouter{patterns: compiled}
}
