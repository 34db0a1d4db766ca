package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"document-chatbot/internal/document/repository"
	pkgLog "document-chatbot/pkg/log"
	pkgQdrant "document-chatbot/pkg/qdrant"
	"document-chatbot/pkg/voyage"
)

type implRepository struct {
	client     pkgQdrant.IQdrant
	embedder   voyage.IVoyage
	collection string
	l          pkgLog.Logger
}

var _ repository.VectorRepository = (*implRepository)(nil)

// New creates a new Qdrant-backed vector repository for document chunks.
func New(client pkgQdrant.IQdrant, embedder voyage.IVoyage, collection string, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:     client,
		embedder:   embedder,
		collection: collection,
		l:          l,
	}
}

// UpsertChunks embeds the chunks and stores them in Qdrant. Chunk IDs
// are deterministic UUIDs derived from source and text, so re-ingesting
// the same document overwrites rather than duplicates.
func (r *implRepository) UpsertChunks(ctx context.Context, chunks []repository.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embeddings: %v", err)
		return fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(chunks))
	}

	points := make([]pkgQdrant.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = pkgQdrant.Point{
			ID:     chunkID(chunk),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"source": chunk.Source,
				"text":   chunk.Text,
			},
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: upserted %d chunks", len(points))
	return nil
}

// Search embeds the query and returns the closest chunks.
func (r *implRepository) Search(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collection, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]repository.SearchResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		text, ok := scored.Payload["text"].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: text missing in payload for point %v", scored.ID)
			continue
		}
		source, _ := scored.Payload["source"].(string)

		results = append(results, repository.SearchResult{
			Source: source,
			Text:   text,
			Score:  scored.Score,
		})
	}

	r.l.Debugf(ctx, "qdrant repository: found %d results", len(results))
	return results, nil
}

// Count returns the number of stored chunks.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	count, err := r.client.CountPoints(ctx, r.collection)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to count points: %v", err)
		return 0, fmt.Errorf("failed to count points: %w", err)
	}
	return count, nil
}

// chunkID derives a deterministic UUID for a chunk. Qdrant requires
// point IDs to be UUIDs or uint64, not arbitrary strings.
func chunkID(chunk repository.Chunk) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(chunk.Source+"\x00"+chunk.Text)).String()
}
