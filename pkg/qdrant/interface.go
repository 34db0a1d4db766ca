package qdrant

import "context"

// IQdrant defines the interface for the Qdrant vector store.
type IQdrant interface {
	EnsureCollection(ctx context.Context, name string, vectorSize int) error
	UpsertPoints(ctx context.Context, collection string, req UpsertPointsRequest) error
	SearchPoints(ctx context.Context, collection string, req SearchRequest) (*SearchResponse, error)
	DeletePoints(ctx context.Context, collection string, ids []interface{}) error
	CountPoints(ctx context.Context, collection string) (int, error)
}
