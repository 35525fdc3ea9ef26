package port

import (
	"context"
	"time"

	"ad-fanout/internal/core/domain"
)

// Distributor publishes a unified campaign to one platform. Implementations
// live under internal/adapter/<platform>.
type Distributor interface {
	Platform() domain.Platform
	// Distribute validates, probes and creates the campaign. It never returns
	// an error: every failure is reported in the result.
	Distribute(ctx context.Context, data domain.UnifiedCampaignData, creds domain.Credentials) domain.PlatformCampaignResult
	// UpdateStatus pauses or activates a previously created campaign.
	UpdateStatus(ctx context.Context, creds domain.Credentials, campaignID string, status domain.CampaignStatus) error
	// Insights reads basic delivery metrics for a campaign.
	Insights(ctx context.Context, creds domain.Credentials, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error)
}

// ReachEstimator is implemented by distributors whose platform can size an
// audience before a campaign exists.
type ReachEstimator interface {
	EstimateReach(ctx context.Context, creds domain.Credentials, targeting domain.UnifiedTargeting) (*domain.ReachEstimate, error)
}

// Clock abstracts time for schedule checks and the ledger.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
