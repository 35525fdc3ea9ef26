package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/port"
)

// DistributionUseCase fans a campaign out to the registered distributors and
// routes follow-up calls to them. It implements port.DistributionUseCase.
type DistributionUseCase struct {
	distributors map[domain.Platform]port.Distributor
	order        []domain.Platform
	attempts     port.AttemptRepository
	clock        port.Clock
	logger       *slog.Logger
}

// NewDistributionUseCase registers distributors in the given order. A later
// distributor for the same platform replaces an earlier one.
func NewDistributionUseCase(attempts port.AttemptRepository, clock port.Clock, logger *slog.Logger, distributors ...port.Distributor) *DistributionUseCase {
	if clock == nil {
		clock = port.SystemClock{}
	}
	u := &DistributionUseCase{
		distributors: make(map[domain.Platform]port.Distributor, len(distributors)),
		attempts:     attempts,
		clock:        clock,
		logger:       remote.OrDiscard(logger),
	}
	for _, d := range distributors {
		if _, ok := u.distributors[d.Platform()]; !ok {
			u.order = append(u.order, d.Platform())
		}
		u.distributors[d.Platform()] = d
	}
	return u
}

func (u *DistributionUseCase) Platforms() []domain.Platform {
	return append([]domain.Platform(nil), u.order...)
}

// Distribute records the attempt, runs every selected distributor in its own
// goroutine and stores the results. Each goroutine writes only its own slot
// of the result slice.
func (u *DistributionUseCase) Distribute(ctx context.Context, req port.DistributeRequest) (*domain.Attempt, error) {
	targets, err := u.resolve(req.Platforms)
	if err != nil {
		return nil, err
	}

	attempt := &domain.Attempt{
		ID:           uuid.NewString(),
		CampaignName: req.Campaign.Name,
		Platforms:    targets,
		CreatedAt:    u.clock.Now(),
	}
	if err = u.attempts.SaveAttempt(ctx, *attempt); err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	results := make([]domain.PlatformCampaignResult, len(targets))
	var g errgroup.Group
	for i, p := range targets {
		d := u.distributors[p]
		g.Go(func() error {
			results[i] = u.settle(ctx, p, d.Distribute(ctx, req.Campaign, req.Credentials))
			return nil
		})
	}
	_ = g.Wait()

	completed := u.clock.Now()
	attempt.Results = results
	attempt.CompletedAt = &completed

	if err = u.attempts.SaveAttempt(context.WithoutCancel(ctx), *attempt); err != nil {
		// Remote objects already exist; the caller still needs their ids.
		u.logger.ErrorContext(ctx, "failed to store distribution results",
			"event", "attempt_save_failed",
			"module", "distribution",
			"layer", "usecase",
			"attempt_id", attempt.ID,
			"error", err,
		)
	}

	u.logger.InfoContext(ctx, "distribution finished",
		"event", "distribution_finished",
		"module", "distribution",
		"layer", "usecase",
		"attempt_id", attempt.ID,
		"platforms", len(targets),
		"succeeded", attempt.Succeeded(),
	)
	return attempt, nil
}

func (u *DistributionUseCase) UpdateStatus(ctx context.Context, p domain.Platform, campaignID string, status domain.CampaignStatus, creds domain.Credentials) error {
	d, err := u.distributor(p)
	if err != nil {
		return err
	}
	if err = requireCredentials(p, creds); err != nil {
		return err
	}
	if !status.Valid() {
		return &domain.ValidationError{Platform: p, Reasons: []string{fmt.Sprintf("status must be active or paused (got %q)", status)}}
	}
	if campaignID == "" {
		return &domain.ValidationError{Platform: p, Reasons: []string{"campaign id is required"}}
	}
	return d.UpdateStatus(ctx, creds, campaignID, status)
}

func (u *DistributionUseCase) Insights(ctx context.Context, p domain.Platform, campaignID string, period domain.DateRange, creds domain.Credentials) (*domain.CampaignInsights, error) {
	d, err := u.distributor(p)
	if err != nil {
		return nil, err
	}
	if err = requireCredentials(p, creds); err != nil {
		return nil, err
	}
	if campaignID == "" {
		return nil, &domain.ValidationError{Platform: p, Reasons: []string{"campaign id is required"}}
	}
	if !period.From.IsZero() && !period.To.IsZero() && period.To.Before(period.From) {
		return nil, &domain.ValidationError{Platform: p, Reasons: []string{"insights period must end after it starts"}}
	}
	return d.Insights(ctx, creds, campaignID, period)
}

func (u *DistributionUseCase) EstimateReach(ctx context.Context, p domain.Platform, targeting domain.UnifiedTargeting, creds domain.Credentials) (*domain.ReachEstimate, error) {
	d, err := u.distributor(p)
	if err != nil {
		return nil, err
	}
	est, ok := d.(port.ReachEstimator)
	if !ok {
		return nil, fmt.Errorf("%w: reach estimate on %s", domain.ErrUnsupportedAction, p.DisplayName())
	}
	if err = requireCredentials(p, creds); err != nil {
		return nil, err
	}
	return est.EstimateReach(ctx, creds, targeting)
}

func (u *DistributionUseCase) GetAttempt(ctx context.Context, id string) (*domain.Attempt, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrAttemptNotFound
	}
	return u.attempts.GetAttempt(ctx, id)
}

// ListOrphaned caps limit at 500; a non-positive limit means 50.
func (u *DistributionUseCase) ListOrphaned(ctx context.Context, limit int) ([]domain.Attempt, error) {
	switch {
	case limit <= 0:
		limit = 50
	case limit > 500:
		limit = 500
	}
	return u.attempts.ListOrphaned(ctx, limit)
}

// settle makes sure a distributor's result ends in a final state for p. A
// result that does not is recorded as failed so the ledger never holds an
// attempt that looks in progress.
func (u *DistributionUseCase) settle(ctx context.Context, p domain.Platform, res domain.PlatformCampaignResult) domain.PlatformCampaignResult {
	res.Platform = p
	if res.State.Terminal() {
		return res
	}
	u.logger.ErrorContext(ctx, "distributor returned a non-final state",
		"event", "distribution_unsettled",
		"module", string(p),
		"layer", "usecase",
		"state", string(res.State),
	)
	if res.Error == nil {
		res.Error = &domain.ResultError{
			Name:    domain.ErrNameUnknown,
			Message: fmt.Sprintf("%s: distribution ended in state %q", p.DisplayName(), res.State),
		}
	}
	res.Success = false
	res.State = domain.StateFailed
	return res
}

func requireCredentials(p domain.Platform, creds domain.Credentials) error {
	if !creds.Has(p) {
		return fmt.Errorf("%w: %s", domain.ErrMissingCredentials, p)
	}
	return nil
}

func (u *DistributionUseCase) distributor(p domain.Platform) (port.Distributor, error) {
	d, ok := u.distributors[p]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlatform, p)
	}
	return d, nil
}

// resolve deduplicates the requested platforms, keeping their order. An
// empty request selects every registered platform.
func (u *DistributionUseCase) resolve(requested []domain.Platform) ([]domain.Platform, error) {
	if len(requested) == 0 {
		if len(u.order) == 0 {
			return nil, fmt.Errorf("%w: no distributor registered", domain.ErrUnknownPlatform)
		}
		return u.Platforms(), nil
	}
	seen := make(map[domain.Platform]struct{}, len(requested))
	out := make([]domain.Platform, 0, len(requested))
	for _, p := range requested {
		if _, err := u.distributor(p); err != nil {
			return nil, err
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
