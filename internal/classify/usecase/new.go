package usecase

import (
	"tm-intent-classifier/internal/classify/classifier"
	"tm-intent-classifier/pkg/log"
)

// implUseCase is the private implementation of classify.UseCase.
type implUseCase struct {
	l   log.Logger
	cls classifier.Classifier
}

// New creates a new classify UseCase implementation.
func New(l log.Logger, cls classifier.Classifier) *implUseCase {
	return &implUseCase{
		l:   l,
		cls: cls,
	}
}
