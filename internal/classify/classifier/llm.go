package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tm-intent-classifier/internal/classify"
	"tm-intent-classifier/internal/topics"
	"tm-intent-classifier/pkg/genaihub"
	"tm-intent-classifier/pkg/log"
)

const llmMaxTokens = 200

// llmReply is the structured reply requested from the model.
type llmReply struct {
	IsTalentManagement bool     `json:"is_talent_management"`
	Confidence         *float64 `json:"confidence"`
	Topic              *string  `json:"topic"`
}

// LLMClassifier asks GenAI Hub to classify the query. A single attempt is
// made; every failure mode (transport, timeout, malformed or out-of-range
// reply) surfaces as an error for the fallback decorator to absorb.
type LLMClassifier struct {
	hub genaihub.IGenAIHub
	l   log.Logger
}

// NewLLM creates a GenAI Hub backed classifier.
func NewLLM(hub genaihub.IGenAIHub, l log.Logger) *LLMClassifier {
	return &LLMClassifier{hub: hub, l: l}
}

func (c *LLMClassifier) Name() string {
	return "genaihub/" + c.hub.Model()
}

func (c *LLMClassifier) Classify(ctx context.Context, query string) (classify.Result, error) {
	req := &genaihub.ChatRequest{
		Messages: []genaihub.ChatMessage{
			{Role: "system", Content: fmt.Sprintf(classificationSystemPrompt, topicCatalog)},
			{Role: "user", Content: "Classify this query: " + query},
		},
		MaxTokens: llmMaxTokens,
		ResponseFormat: &genaihub.ResponseFormat{
			Type: "json_schema",
			JSONSchema: &genaihub.JSONSchema{
				Name:   "classification_result",
				Strict: true,
				Schema: classificationSchema,
			},
		},
	}

	resp, err := c.hub.ChatCompletion(ctx, req)
	if err != nil {
		return classify.Result{}, err
	}
	if len(resp.Choices) == 0 {
		return classify.Result{}, fmt.Errorf("%w: empty choices", ErrMalformedReply)
	}

	return parseReply(resp.Choices[0].Message.Content)
}

// parseReply validates the model output against the classification contract:
// confidence in [0,1] and topic one of the eight registry ids or "none".
func parseReply(content string) (classify.Result, error) {
	var reply llmReply
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &reply); err != nil {
		return classify.Result{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	if reply.Confidence == nil {
		return classify.Result{}, fmt.Errorf("%w: missing confidence", ErrMalformedReply)
	}
	confidence := *reply.Confidence
	if confidence < 0 || confidence > 1 {
		return classify.Result{}, fmt.Errorf("%w: %v", ErrConfidenceOutOfRange, confidence)
	}

	topic := topics.TopicNone
	if reply.Topic != nil && *reply.Topic != "" {
		topic = *reply.Topic
	}
	if topic != topics.TopicNone && !topics.IsKnown(topic) {
		return classify.Result{}, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}

	result := classify.Result{
		IsTalentManagement: reply.IsTalentManagement,
		Confidence:         confidence,
		Topic:              topic,
	}

	// Normalize inconsistent verdicts so callers see a coherent pair.
	if !result.IsTalentManagement {
		result.Topic = topics.TopicNone
	} else if result.Topic == topics.TopicNone {
		result.IsTalentManagement = false
	}

	return result, nil
}

// stripCodeFences removes a markdown code fence if the model wrapped its
// JSON reply in one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
