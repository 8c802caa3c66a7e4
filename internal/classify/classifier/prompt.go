package classifier

import (
	"tm-intent-classifier/internal/topics"
)

// classificationSystemPrompt is the system instruction sent to the model.
// The topic catalog is appended at request time from the registry.
const classificationSystemPrompt = `You are an expert at classifying HR and Talent Management queries.
Available Talent Management topics:
%s

Rules:
- If the query is clearly about Talent Management, set is_talent_management to true
- Choose the single most relevant topic id from the list above
- If ambiguous, choose the most likely topic
- If NOT about Talent Management, set is_talent_management to false and topic to "none"
- Confidence should reflect classification certainty (0.0-1.0)
- Reply with a single JSON object of exactly {is_talent_management, confidence, topic}`

// classificationSchema is the JSON schema the reply must conform to.
var classificationSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"is_talent_management": map[string]interface{}{"type": "boolean"},
		"confidence": map[string]interface{}{
			"type":    "number",
			"minimum": 0,
			"maximum": 1,
		},
		"topic": map[string]interface{}{"type": []string{"string", "null"}},
	},
	"required":             []string{"is_talent_management", "confidence", "topic"},
	"additionalProperties": false,
}

// topicCatalog is resolved once; the registry is immutable.
var topicCatalog = topics.PromptCatalog()
