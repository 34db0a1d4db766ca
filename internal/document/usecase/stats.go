package usecase

import (
	"context"

	"document-chatbot/internal/document"
	"document-chatbot/internal/model"
)

// Stats reports the number of chunks currently in the vector store.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (document.StatsOutput, error) {
	count, err := uc.vectorRepo.Count(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: vectorRepo.Count: %v", LogPrefixStats, err)
		return document.StatsOutput{}, err
	}

	return document.StatsOutput{ChunkCount: count}, nil
}
