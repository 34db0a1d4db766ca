package document

import "errors"

// Domain-specific errors for the document package.
var (
	ErrNoDocuments   = errors.New("no documents provided")
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptyContent  = errors.New("document content is empty")
)
