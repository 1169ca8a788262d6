package usecase

import (
	"time"

	"github.com/secmon-lab/gyges/pkg/domain/interfaces"
)

type UseCases struct {
	repo  interfaces.Repository
	clock func() time.Time

	Record *RecordUseCase
	View   *ViewUseCase
}

type Option func(*UseCases)

// WithClock overrides the wall clock, mainly for tests
func WithClock(clock func() time.Time) Option {
	return func(uc *UseCases) {
		uc.clock = clock
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:  repo,
		clock: func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Record = NewRecordUseCase(repo, uc.clock)
	uc.View = NewViewUseCase(repo, uc.clock)

	return uc
}
