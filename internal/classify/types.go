package classify

import "tm-intent-classifier/internal/topics"

// Result is the classifier verdict for a single query. Topic is one of the
// eight registry ids or topics.TopicNone.
type Result struct {
	IsTalentManagement bool
	Confidence         float64
	Topic              string
}

// --- UseCase Inputs ---

type ClassifyInput struct {
	Query string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Result           Result
	TopicDisplayName string
	Links            []topics.Link
	Summary          string
}
