package qdrant

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Vectors VectorConfig `json:"vectors"`
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be a UUID string or uint64, not an arbitrary string.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`
	Limit       int                    `json:"limit"`
	WithPayload bool                   `json:"with_payload"`
	Filter      map[string]interface{} `json:"filter,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      interface{}            `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points by ID.
type DeletePointsRequest struct {
	Points []interface{} `json:"points"`
}

// CountRequest asks for the number of points in a collection.
type CountRequest struct {
	Exact bool `json:"exact"`
}

// CountResponse contains the point count.
type CountResponse struct {
	Result CountResult `json:"result"`
}

// CountResult holds the counted total.
type CountResult struct {
	Count int `json:"count"`
}
