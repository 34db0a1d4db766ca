package qdrant

import (
	"context"
	"errors"
	"testing"

	"document-chatbot/internal/document/repository"
	pkgLog "document-chatbot/pkg/log"
	pkgQdrant "document-chatbot/pkg/qdrant"
)

type mockEmbedder struct {
	err error
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{float32(i), 1.0}
	}
	return out, nil
}

type mockQdrant struct {
	upserted  []pkgQdrant.Point
	searchErr error
}

func (m *mockQdrant) EnsureCollection(ctx context.Context, name string, vectorSize int) error {
	return nil
}

func (m *mockQdrant) UpsertPoints(ctx context.Context, collection string, req pkgQdrant.UpsertPointsRequest) error {
	m.upserted = append(m.upserted, req.Points...)
	return nil
}

func (m *mockQdrant) SearchPoints(ctx context.Context, collection string, req pkgQdrant.SearchRequest) (*pkgQdrant.SearchResponse, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return &pkgQdrant.SearchResponse{
		Result: []pkgQdrant.ScoredPoint{
			{
				ID:    "point-1",
				Score: 0.92,
				Payload: map[string]interface{}{
					"source": "handbook.txt",
					"text":   "Our office opens at 9am.",
				},
			},
			{
				ID:      "point-2",
				Score:   0.5,
				Payload: map[string]interface{}{"source": "broken.txt"},
			},
		},
	}, nil
}

func (m *mockQdrant) DeletePoints(ctx context.Context, collection string, ids []interface{}) error {
	return nil
}

func (m *mockQdrant) CountPoints(ctx context.Context, collection string) (int, error) {
	return len(m.upserted), nil
}

func TestUpsertChunks(t *testing.T) {
	store := &mockQdrant{}
	repo := New(store, &mockEmbedder{}, "documents", pkgLog.NewNop())

	chunks := []repository.Chunk{
		{Source: "handbook.txt", Text: "Our office opens at 9am."},
		{Source: "handbook.txt", Text: "Lunch is at noon."},
	}

	if err := repo.UpsertChunks(context.Background(), chunks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.upserted) != 2 {
		t.Fatalf("expected 2 points, got %d", len(store.upserted))
	}
	if store.upserted[0].Payload["source"] != "handbook.txt" {
		t.Errorf("unexpected payload: %v", store.upserted[0].Payload)
	}
}

func TestUpsertChunks_DeterministicIDs(t *testing.T) {
	store := &mockQdrant{}
	repo := New(store, &mockEmbedder{}, "documents", pkgLog.NewNop())
	ctx := context.Background()

	chunk := []repository.Chunk{{Source: "a.txt", Text: "same text"}}
	repo.UpsertChunks(ctx, chunk)
	repo.UpsertChunks(ctx, chunk)

	if store.upserted[0].ID != store.upserted[1].ID {
		t.Errorf("expected identical IDs for identical chunks, got %v and %v",
			store.upserted[0].ID, store.upserted[1].ID)
	}
}

func TestUpsertChunks_EmbedError(t *testing.T) {
	repo := New(&mockQdrant{}, &mockEmbedder{err: errors.New("quota exceeded")}, "documents", pkgLog.NewNop())

	err := repo.UpsertChunks(context.Background(), []repository.Chunk{{Source: "a.txt", Text: "text"}})
	if err == nil {
		t.Fatal("expected error from embedder")
	}
}

func TestSearch(t *testing.T) {
	repo := New(&mockQdrant{}, &mockEmbedder{}, "documents", pkgLog.NewNop())

	results, err := repo.Search(context.Background(), "when does the office open", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The malformed point without text payload is skipped.
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Source != "handbook.txt" || results[0].Score != 0.92 {
		t.Errorf("unexpected result: %+v", results[0])
	}
}

func TestSearch_Error(t *testing.T) {
	repo := New(&mockQdrant{searchErr: errors.New("unavailable")}, &mockEmbedder{}, "documents", pkgLog.NewNop())

	if _, err := repo.Search(context.Background(), "question", 4); err == nil {
		t.Fatal("expected search error")
	}
}
