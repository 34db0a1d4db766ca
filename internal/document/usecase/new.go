package usecase

import (
	"document-chatbot/internal/document"
	"document-chatbot/internal/document/repository"
	"document-chatbot/pkg/groq"
	pkgLog "document-chatbot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        groq.IGroq
	vectorRepo repository.VectorRepository
}

var _ document.UseCase = (*implUseCase)(nil)

// New creates a new document UseCase instance.
func New(l pkgLog.Logger, llm groq.IGroq, vectorRepo repository.VectorRepository) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		vectorRepo: vectorRepo,
	}
}
