package repository

import "context"

// Chunk is one piece of a split document ready for the vector store.
type Chunk struct {
	Source string
	Text   string
}

// SearchResult is one retrieved chunk with its similarity score.
type SearchResult struct {
	Source string
	Text   string
	Score  float64
}

// VectorRepository handles embedding and vector search for document chunks.
type VectorRepository interface {
	UpsertChunks(ctx context.Context, chunks []Chunk) error
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	Count(ctx context.Context) (int, error)
}
