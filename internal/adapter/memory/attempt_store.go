// Package memory keeps the attempt ledger in process memory. It is used
// when Postgres is disabled and loses everything on restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"ad-fanout/internal/core/domain"
)

// AttemptStore implements port.AttemptRepository.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]domain.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{attempts: make(map[string]domain.Attempt)}
}

func (s *AttemptStore) SaveAttempt(_ context.Context, a domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[a.ID] = clone(a)
	return nil
}

func (s *AttemptStore) GetAttempt(_ context.Context, id string) (*domain.Attempt, error) {
	s.mu.RLock()
	a, ok := s.attempts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrAttemptNotFound
	}
	out := clone(a)
	return &out, nil
}

// ListOrphaned returns attempts with at least one orphaned object, newest
// first. A non-positive limit returns all of them.
func (s *AttemptStore) ListOrphaned(_ context.Context, limit int) ([]domain.Attempt, error) {
	s.mu.RLock()
	var out []domain.Attempt
	for _, a := range s.attempts {
		if hasOrphans(a) {
			out = append(out, clone(a))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.Attempt) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func hasOrphans(a domain.Attempt) bool {
	for _, r := range a.Results {
		if len(r.Orphans) > 0 {
			return true
		}
	}
	return false
}

// clone copies the slices a caller could mutate after Save or Get.
func clone(a domain.Attempt) domain.Attempt {
	a.Platforms = slices.Clone(a.Platforms)
	results := make([]domain.PlatformCampaignResult, len(a.Results))
	for i, r := range a.Results {
		r.AdIDs = slices.Clone(r.AdIDs)
		r.Warnings = slices.Clone(r.Warnings)
		r.Orphans = slices.Clone(r.Orphans)
		if r.Error != nil {
			e := *r.Error
			e.Details = slices.Clone(e.Details)
			r.Error = &e
		}
		results[i] = r
	}
	if a.Results == nil {
		results = nil
	}
	a.Results = results
	if a.CompletedAt != nil {
		t := *a.CompletedAt
		a.CompletedAt = &t
	}
	return a
}
