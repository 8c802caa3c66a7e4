package genaihub

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Config holds GenAI Hub client configuration. AuthURL, ClientID,
// ClientSecret, ResourceGroup, and BaseURL come from the AICORE_* service
// binding of the deployment platform.
type Config struct {
	AuthURL       string
	ClientID      string
	ClientSecret  string
	ResourceGroup string
	BaseURL       string
	Model         string
	Timeout       time.Duration

	// HTTPClient overrides the OAuth2 client, used by tests.
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults. When HTTPClient
// is unset it builds a client-credentials client that fetches and refreshes
// bearer tokens against the auth URL.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("genaihub: BaseURL is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}

	if c.HTTPClient == nil {
		if c.AuthURL == "" || c.ClientID == "" || c.ClientSecret == "" {
			return fmt.Errorf("genaihub: AuthURL, ClientID and ClientSecret are required")
		}

		cc := clientcredentials.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			TokenURL:     strings.TrimRight(c.AuthURL, "/") + tokenPath,
		}

		// Bound the token exchange with the same timeout as inference calls.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient,
			&http.Client{Timeout: c.Timeout})
		c.HTTPClient = cc.Client(ctx)
		c.HTTPClient.Timeout = c.Timeout
	}

	return nil
}

// genAIHubImpl is the internal implementation of IGenAIHub
type genAIHubImpl struct {
	baseURL       string
	resourceGroup string
	model         string
	httpClient    *http.Client
}

// ChatRequest is a chat-completions request
type ChatRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage is a single conversation message
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the model output shape
type ResponseFormat struct {
	Type       string      `json:"type"`
	JSONSchema *JSONSchema `json:"json_schema,omitempty"`
}

// JSONSchema names a schema the reply must conform to
type JSONSchema struct {
	Name   string                 `json:"name"`
	Strict bool                   `json:"strict,omitempty"`
	Schema map[string]interface{} `json:"schema"`
}

// ChatResponse is a chat-completions response
type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   ChatUsage    `json:"usage"`
}

// ChatChoice is a single response candidate
type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatUsage tracks token consumption
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
