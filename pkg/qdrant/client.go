package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ IQdrant = (*Client)(nil)

// NewClient creates a new Qdrant client. The API key is optional and
// may be empty for unauthenticated local instances.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// EnsureCollection creates the collection when it does not exist yet.
// Vectors use cosine distance, matching normalized embedding models.
func (c *Client) EnsureCollection(ctx context.Context, name string, vectorSize int) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, name)

	status, _, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		return nil
	}

	req := CreateCollectionRequest{
		Vectors: VectorConfig{Size: vectorSize, Distance: "Cosine"},
	}
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	status, _, err = c.do(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return fmt.Errorf("qdrant API error: %d", status)
	}

	return nil
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collection string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points", c.baseURL, collection)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	status, _, err := c.do(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant API error: %d", status)
	}

	return nil
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collection string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collection)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	status, respBody, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant API error: %d", status)
	}

	var result SearchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collection string, ids []interface{}) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collection)

	body, err := json.Marshal(DeletePointsRequest{Points: ids})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	status, _, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant API error: %d", status)
	}

	return nil
}

// CountPoints returns the exact number of points in a collection.
func (c *Client) CountPoints(ctx context.Context, collection string) (int, error) {
	url := fmt.Sprintf("%s/collections/%s/points/count", c.baseURL, collection)

	body, err := json.Marshal(CountRequest{Exact: true})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	status, respBody, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("qdrant API error: %d", status)
	}

	var result CountResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Result.Count, nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, respBody, nil
}
