package domain

import "time"

// AttemptState is the state of one distribution attempt to one platform:
//
//	pending -> validating -> rejected
//	                      -> connecting -> connection_failed
//	                                    -> creating -> created | failed
//
// There is no retry state; failed attempts are resubmitted as new attempts.
type AttemptState string

const (
	StatePending          AttemptState = "pending"
	StateValidating       AttemptState = "validating"
	StateRejected         AttemptState = "rejected"
	StateConnecting       AttemptState = "connecting"
	StateConnectionFailed AttemptState = "connection_failed"
	StateCreating         AttemptState = "creating"
	StateCreated          AttemptState = "created"
	StateFailed           AttemptState = "failed"
)

var transitions = map[AttemptState][]AttemptState{
	StatePending:    {StateValidating},
	StateValidating: {StateRejected, StateConnecting},
	StateConnecting: {StateConnectionFailed, StateCreating},
	StateCreating:   {StateCreated, StateFailed},
}

// CanTransition reports whether to is a legal successor of s.
func (s AttemptState) CanTransition(to AttemptState) bool {
	for _, v := range transitions[s] {
		if v == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s is one of the final states of an attempt.
func (s AttemptState) Terminal() bool {
	switch s {
	case StateRejected, StateConnectionFailed, StateCreated, StateFailed:
		return true
	}
	return false
}

// Attempt is one fan-out of a campaign to several platforms, kept in the
// attempt ledger so orphaned remote objects can be reconciled later.
type Attempt struct {
	ID           string                   `json:"id"`
	CampaignName string                   `json:"campaignName"`
	Platforms    []Platform               `json:"platforms"`
	Results      []PlatformCampaignResult `json:"results"`
	CreatedAt    time.Time                `json:"createdAt"`
	CompletedAt  *time.Time               `json:"completedAt,omitempty"`
}

// Succeeded counts the platforms that accepted the campaign.
func (a Attempt) Succeeded() int {
	n := 0
	for _, r := range a.Results {
		if r.Success {
			n++
		}
	}
	return n
}
