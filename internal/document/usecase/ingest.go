package usecase

import (
	"context"
	"fmt"
	"strings"

	"document-chatbot/internal/document"
	"document-chatbot/internal/document/repository"
	"document-chatbot/internal/model"
)

// Ingest splits the documents into chunks, embeds them and stores them
// in the vector store.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input document.IngestInput) (document.IngestOutput, error) {
	if len(input.Documents) == 0 {
		return document.IngestOutput{}, document.ErrNoDocuments
	}

	uc.l.Infof(ctx, "%s: user=%s documents=%d", LogPrefixIngest, sc.UserID, len(input.Documents))

	var chunks []repository.Chunk
	for _, doc := range input.Documents {
		if strings.TrimSpace(doc.Content) == "" {
			return document.IngestOutput{}, fmt.Errorf("%w: %s", document.ErrEmptyContent, doc.Source)
		}
		for _, text := range splitText(doc.Content, ChunkSize, ChunkOverlap) {
			chunks = append(chunks, repository.Chunk{
				Source: doc.Source,
				Text:   text,
			})
		}
	}

	if err := uc.vectorRepo.UpsertChunks(ctx, chunks); err != nil {
		uc.l.Errorf(ctx, "%s: vectorRepo.UpsertChunks: %v", LogPrefixIngest, err)
		return document.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "%s: stored %d chunks from %d documents", LogPrefixIngest, len(chunks), len(input.Documents))

	return document.IngestOutput{
		DocumentCount: len(input.Documents),
		ChunkCount:    len(chunks),
	}, nil
}
