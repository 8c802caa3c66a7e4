package genaihub

import "context"

// IGenAIHub defines the interface for the SAP GenAI Hub inference client.
// Implementations are safe for concurrent use.
type IGenAIHub interface {
	// ChatCompletion sends a single chat-completions request
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Model returns the model being used
	Model() string
}

// New creates a new GenAI Hub client with the given configuration
func New(cfg Config) (IGenAIHub, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGenAIHubImpl(cfg), nil
}
