package port

import (
	"context"

	"ad-fanout/internal/core/domain"
)

// AttemptRepository is the distribution attempt ledger. It is an outbound
// port; implementations must be concurrency-safe. Save is an upsert keyed by
// Attempt.ID so an attempt can be stored when it starts and again when every
// platform has answered.
type AttemptRepository interface {
	// SaveAttempt stores the attempt and its per-platform results.
	SaveAttempt(ctx context.Context, a domain.Attempt) error
	// GetAttempt returns an attempt by id or domain.ErrAttemptNotFound.
	GetAttempt(ctx context.Context, id string) (*domain.Attempt, error)
	// ListOrphaned returns attempts that left paused remote objects behind,
	// newest first.
	ListOrphaned(ctx context.Context, limit int) ([]domain.Attempt, error)
}
