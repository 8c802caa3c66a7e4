package usecase

import (
	"context"
	"fmt"
	"strings"

	"tm-intent-classifier/internal/classify"
	"tm-intent-classifier/internal/topics"
)

const (
	summaryUnrelated = "This query doesn't appear to be related to Talent Management."
	summaryGeneric   = "Your question relates to Talent Management, but no specific resources are available for it."
)

// Classify validates the query, obtains a classifier verdict, and resolves
// the topic against the registry. Classifier failures never propagate: the
// classifier is wired with a fallback, and even an unknown topic degrades
// to an empty link list instead of an error.
func (uc *implUseCase) Classify(ctx context.Context, input classify.ClassifyInput) (classify.ClassifyOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return classify.ClassifyOutput{}, classify.ErrEmptyQuery
	}

	result, err := uc.cls.Classify(ctx, query)
	if err != nil {
		// Classifiers are wrapped with a fallback, so this path means a
		// misconfigured wiring. Degrade to a non-verdict rather than 5xx.
		uc.l.Errorf(ctx, "uc.Classify classifier: %v", err)
		result = classify.Result{Topic: topics.TopicNone}
	}

	if !result.IsTalentManagement {
		result.Topic = topics.TopicNone
		return classify.ClassifyOutput{
			Result:  result,
			Links:   []topics.Link{},
			Summary: summaryUnrelated,
		}, nil
	}

	topic, ok := topics.Lookup(result.Topic)
	if !ok {
		uc.l.Warnf(ctx, "uc.Classify: classifier returned unregistered topic %q", result.Topic)
		return classify.ClassifyOutput{
			Result:  result,
			Links:   []topics.Link{},
			Summary: summaryGeneric,
		}, nil
	}

	return classify.ClassifyOutput{
		Result:           result,
		TopicDisplayName: topic.DisplayName,
		Links:            topic.Links,
		Summary: fmt.Sprintf("Your question is about %s. Here are some resources that should help.",
			topic.DisplayName),
	}, nil
}
