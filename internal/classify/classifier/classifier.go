// Package classifier provides the classification strategies behind the
// classify use case: a GenAI Hub backed classifier, a deterministic keyword
// mock, and a fallback decorator that degrades to the mock on any failure.
package classifier

import (
	"context"
	"errors"

	"tm-intent-classifier/internal/classify"
)

// Classifier classifies a free-text query into a Talent Management topic.
type Classifier interface {
	// Classify returns the verdict for query. Implementations may fail;
	// wrap with WithFallback to obtain a never-failing classifier.
	Classify(ctx context.Context, query string) (classify.Result, error)

	// Name returns the strategy name for logging
	Name() string
}

var (
	// ErrMalformedReply indicates the model reply could not be parsed
	// into a classification result
	ErrMalformedReply = errors.New("malformed classifier reply")

	// ErrUnknownTopic indicates the model returned a topic outside the registry
	ErrUnknownTopic = errors.New("unknown topic in classifier reply")

	// ErrConfidenceOutOfRange indicates a confidence outside [0,1]
	ErrConfidenceOutOfRange = errors.New("confidence out of range")
)
