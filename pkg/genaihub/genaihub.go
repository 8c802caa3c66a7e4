package genaihub

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newGenAIHubImpl creates a new GenAI Hub implementation
func newGenAIHubImpl(cfg Config) *genAIHubImpl {
	return &genAIHubImpl{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		resourceGroup: cfg.ResourceGroup,
		model:         cfg.Model,
		httpClient:    cfg.HTTPClient,
	}
}

// ChatCompletion sends a chat-completions request to GenAI Hub.
// A single attempt is made; transport errors, timeouts, and non-200
// statuses are returned to the caller.
func (g *genAIHubImpl) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = g.model
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("genaihub: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("genaihub: failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if g.resourceGroup != "" {
		httpReq.Header.Set("AI-Resource-Group", g.resourceGroup)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("genaihub: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("genaihub: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("genaihub: failed to decode response: %w", err)
	}

	return &result, nil
}

// Model returns the model being used
func (g *genAIHubImpl) Model() string {
	return g.model
}
