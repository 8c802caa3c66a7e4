package classifier

import (
	"context"

	"tm-intent-classifier/internal/classify"
	"tm-intent-classifier/pkg/log"
)

// Fallback decorates a primary classifier with a never-failing fallback.
// A primary failure is logged and recovered locally; Classify on the
// decorator never returns an error, so callers always get a best-effort
// verdict.
type Fallback struct {
	primary  Classifier
	fallback Classifier
	l        log.Logger
}

// WithFallback wraps primary so that any error degrades to fallback.
// The fallback must be infallible (the keyword mock is).
func WithFallback(primary, fallback Classifier, l log.Logger) *Fallback {
	return &Fallback{
		primary:  primary,
		fallback: fallback,
		l:        l,
	}
}

func (f *Fallback) Name() string {
	return f.primary.Name() + "+" + f.fallback.Name()
}

func (f *Fallback) Classify(ctx context.Context, query string) (classify.Result, error) {
	result, err := f.primary.Classify(ctx, query)
	if err == nil {
		return result, nil
	}

	f.l.Warnf(ctx, "classifier %s failed, falling back to %s: %v",
		f.primary.Name(), f.fallback.Name(), err)

	result, err = f.fallback.Classify(ctx, query)
	if err != nil {
		// The keyword mock cannot fail; guard against a misconfigured
		// fallback anyway.
		f.l.Errorf(ctx, "fallback classifier %s failed: %v", f.fallback.Name(), err)
		return notTalentManagement(), nil
	}

	return result, nil
}
