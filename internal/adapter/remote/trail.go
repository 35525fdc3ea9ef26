package remote

import (
	"slices"

	"ad-fanout/internal/core/domain"
)

// Trail records the remote objects a creation sequence has made so far, so
// a failing step can report what it left behind.
type Trail struct {
	platform domain.Platform
	created  []domain.RemoteObject
}

func NewTrail(p domain.Platform) *Trail {
	return &Trail{platform: p}
}

// Add records a created object.
func (t *Trail) Add(kind, id string) {
	t.created = append(t.created, domain.RemoteObject{Kind: kind, ID: id})
}

// Fail wraps err as the failure of step.
func (t *Trail) Fail(step string, err error) error {
	return &domain.CreationError{
		Platform: t.platform,
		Step:     step,
		Created:  slices.Clone(t.created),
		Err:      err,
	}
}
