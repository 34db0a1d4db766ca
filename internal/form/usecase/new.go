package usecase

import (
	"time"

	"document-chatbot/internal/form"
	"document-chatbot/pkg/datemath"
	pkgLog "document-chatbot/pkg/log"
)

type implEngine struct {
	l        pkgLog.Logger
	dateMath *datemath.Parser
	now      func() time.Time
}

var _ form.Engine = (*implEngine)(nil)

// New creates a new form engine.
func New(l pkgLog.Logger, dateMath *datemath.Parser) *implEngine {
	return &implEngine{
		l:        l,
		dateMath: dateMath,
		now:      time.Now,
	}
}
