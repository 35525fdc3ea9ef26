package port

import (
	"context"

	"ad-fanout/internal/core/domain"
)

// DistributionUseCase is the primary port of the service. The HTTP adapter
// is its only caller.
type DistributionUseCase interface {
	// Distribute publishes the campaign to every requested platform
	// concurrently and records the attempt. One platform failing never
	// affects another; the error return is reserved for input problems and
	// a ledger that cannot record the attempt before the fan-out starts.
	Distribute(ctx context.Context, req DistributeRequest) (*domain.Attempt, error)

	// UpdateStatus routes a status change to the platform's distributor.
	UpdateStatus(ctx context.Context, p domain.Platform, campaignID string, status domain.CampaignStatus, creds domain.Credentials) error

	// Insights routes an insights read to the platform's distributor.
	Insights(ctx context.Context, p domain.Platform, campaignID string, period domain.DateRange, creds domain.Credentials) (*domain.CampaignInsights, error)

	// EstimateReach sizes an audience on platforms that support it and
	// returns domain.ErrUnsupportedAction otherwise.
	EstimateReach(ctx context.Context, p domain.Platform, targeting domain.UnifiedTargeting, creds domain.Credentials) (*domain.ReachEstimate, error)

	// GetAttempt returns a recorded distribution attempt.
	GetAttempt(ctx context.Context, id string) (*domain.Attempt, error)
	// ListOrphaned returns recent attempts that left paused objects on a
	// platform, for manual cleanup.
	ListOrphaned(ctx context.Context, limit int) ([]domain.Attempt, error)

	// Platforms lists the platforms a distributor is registered for.
	Platforms() []domain.Platform
}

// DistributeRequest is one fan-out request. An empty Platforms list means
// every registered platform.
type DistributeRequest struct {
	Campaign    domain.UnifiedCampaignData
	Platforms   []domain.Platform
	Credentials domain.Credentials
}
