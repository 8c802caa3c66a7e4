package classify

import "context"

// UseCase is the request-handling contract for query classification.
type UseCase interface {
	// Classify validates the query, runs the classifier, and resolves the
	// matched topic against the registry.
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}
