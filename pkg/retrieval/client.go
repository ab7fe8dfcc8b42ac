// Package retrieval talks to the external ranked-retrieval service that maps
// a free-text query to knowledge base chunks. The service is a collaborator:
// any fault here degrades the answer, never the turn.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// DefaultTopK is how many chunks a search requests when the caller passes no
// limit.
const DefaultTopK = 10

// Chunk is one retrieved knowledge base passage.
type Chunk struct {
	Text string `json:"text"`
}

// Result is a ranked retrieval response. Empty results are valid.
type Result struct {
	Chunks     []Chunk  `json:"chunks"`
	References []string `json:"references"`
	MediaLinks []string `json:"media_links"`
}

// Client is an HTTP client for the retrieval service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type searchRequest struct {
	Query string `json:"query"`
	User  string `json:"user"`
	TopK  int    `json:"top_k"`
}

// Search posts the query and returns the ranked chunks. The response payload
// is parsed tolerantly: chunks may arrive under several keys, as objects or
// as bare strings.
func (c *Client) Search(ctx context.Context, query, userID string, topK int) (Result, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	body, err := json.Marshal(searchRequest{Query: query, User: userID, TopK: topK})
	if err != nil {
		return Result{}, errors.Wrap(err, "encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return Result{}, errors.Wrap(err, "build search request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, errors.Wrap(err, "retrieval request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		return Result{}, fmt.Errorf("retrieval service returned %d: %s", resp.StatusCode, snippet)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, errors.Wrap(err, "read retrieval response")
	}

	result := parsePayload(raw)
	c.logger.Debug("Retrieved chunks", "count", len(result.Chunks))
	return result, nil
}

func parsePayload(raw []byte) Result {
	// Object payload: chunks under one of several keys.
	var obj struct {
		Chunks     json.RawMessage `json:"chunks"`
		Results    json.RawMessage `json:"results"`
		Data       json.RawMessage `json:"data"`
		References []string        `json:"references"`
		MediaLinks []string        `json:"media_links"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		for _, candidate := range []json.RawMessage{obj.Chunks, obj.Results, obj.Data} {
			if len(candidate) == 0 {
				continue
			}
			if chunks := parseChunks(candidate); len(chunks) > 0 {
				return Result{Chunks: chunks, References: obj.References, MediaLinks: obj.MediaLinks}
			}
		}
		return Result{References: obj.References, MediaLinks: obj.MediaLinks}
	}

	// Bare list payload.
	return Result{Chunks: parseChunks(raw)}
}

func parseChunks(raw json.RawMessage) []Chunk {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var chunks []Chunk
	for _, item := range items {
		var chunk Chunk
		if err := json.Unmarshal(item, &chunk); err == nil && chunk.Text != "" {
			chunks = append(chunks, chunk)
			continue
		}
		var text string
		if err := json.Unmarshal(item, &text); err == nil && text != "" {
			chunks = append(chunks, Chunk{Text: text})
		}
	}
	return chunks
}
