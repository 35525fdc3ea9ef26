// Package meta distributes unified campaigns to Meta (Facebook and
// Instagram) through the Graph API.
package meta

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"ad-fanout/internal/adapter/pipeline"
	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/port"
	"ad-fanout/internal/core/validation"
)

const (
	maxHeadline    = 255
	maxPrimaryText = 2200
	minDailyBudget = 1.0
)

// API is the part of the Graph API the distributor uses.
type API interface {
	CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
	Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error)
	ReachEstimate(ctx context.Context, t Targeting) (*domain.ReachEstimate, error)
}

// APIFactory builds an API bound to one set of credentials.
type APIFactory func(creds domain.MetaCredentials) API

// ClientFactory returns an APIFactory producing Graph API clients.
func ClientFactory(cfg configs.Meta, httpClient *http.Client, logger *slog.Logger) APIFactory {
	return func(creds domain.MetaCredentials) API {
		return NewClient(cfg, httpClient, creds, logger)
	}
}

// Distributor publishes campaigns to Meta. Meta has no cheap credential
// probe, so invalid credentials surface as a rejection of the first step.
type Distributor struct {
	newAPI      APIFactory
	transformer Transformer
	clock       port.Clock
	logger      *slog.Logger
}

func NewDistributor(newAPI APIFactory, clock port.Clock, logger *slog.Logger) *Distributor {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &Distributor{
		newAPI: newAPI,
		clock:  clock,
		logger: remote.OrDiscard(logger),
	}
}

func (d *Distributor) Platform() domain.Platform { return domain.PlatformMeta }

// Validate runs every local check without touching the network.
func (d *Distributor) Validate(data domain.UnifiedCampaignData, creds domain.Credentials) pipeline.Check {
	var check pipeline.Check
	check.Add(validation.Campaign(data)...)

	if reason, ok := validation.MaxLength("creative.headline", data.Creative.Headline, maxHeadline); !ok {
		check.Add(reason)
	}
	if reason, ok := validation.MaxLength("creative.primaryText", data.Creative.PrimaryText, maxPrimaryText); !ok {
		check.Add(reason)
	}
	if data.Budget.Amount > 0 && data.DailyAmount() < minDailyBudget {
		check.Add(fmt.Sprintf("Meta requires a daily budget of at least $%.2f (got $%.2f)", minDailyBudget, data.DailyAmount()))
	}
	// video_data needs a thumbnail; the first image is sent as image_url
	if _, video := data.Creative.FirstMedia(domain.MediaVideo); video {
		if _, image := data.Creative.FirstMedia(domain.MediaImage); !image {
			check.Add("Meta video ads need an image in creative.media to use as the thumbnail")
		}
	}

	switch {
	case creds.Meta == nil:
		check.Add("Meta credentials are required")
	default:
		if creds.Meta.AccessToken == "" {
			check.Add("Meta access token is required")
		}
		if creds.Meta.AdAccountID == "" {
			check.Add("Meta ad account id is required")
		}
		if creds.Meta.PageID == "" {
			check.Add("Meta page id is required to publish a creative")
		}
	}

	check.Add(d.transformer.Validate(d.transformer.Transform(data.Targeting))...)

	if !data.Schedule.StartDate.IsZero() && !validation.StartsInFuture(data.Schedule, d.clock.Now()) {
		check.Warn("Meta: start date is in the past; delivery starts as soon as the ad set is activated")
	}
	return check
}

// Distribute never fails; see port.Distributor.
func (d *Distributor) Distribute(ctx context.Context, data domain.UnifiedCampaignData, creds domain.Credentials) domain.PlatformCampaignResult {
	return pipeline.Run(ctx, d.logger, pipeline.Steps{
		Platform: domain.PlatformMeta,
		Validate: func() pipeline.Check { return d.Validate(data, creds) },
		Create: func(ctx context.Context, res *domain.PlatformCampaignResult) error {
			created, err := d.newAPI(*creds.Meta).CreateCampaign(ctx, data)
			if err != nil {
				return err
			}
			res.CampaignID = created.CampaignID
			res.AdSetID = created.AdSetID
			res.CreativeID = created.CreativeID
			res.AdID = created.AdID
			return nil
		},
	})
}

func (d *Distributor) UpdateStatus(ctx context.Context, creds domain.Credentials, campaignID string, status domain.CampaignStatus) error {
	if creds.Meta == nil {
		return fmt.Errorf("%w: meta", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.Meta).UpdateStatus(ctx, campaignID, status)
}

func (d *Distributor) Insights(ctx context.Context, creds domain.Credentials, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	if creds.Meta == nil {
		return nil, fmt.Errorf("%w: meta", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.Meta).Insights(ctx, campaignID, period)
}

// EstimateReach sizes the transformed audience. Targeting that fails
// validation is rejected locally.
func (d *Distributor) EstimateReach(ctx context.Context, creds domain.Credentials, targeting domain.UnifiedTargeting) (*domain.ReachEstimate, error) {
	if creds.Meta == nil {
		return nil, fmt.Errorf("%w: meta", domain.ErrMissingCredentials)
	}
	t := d.transformer.Transform(targeting)
	if errs := d.transformer.Validate(t); len(errs) > 0 {
		return nil, &domain.ValidationError{Platform: domain.PlatformMeta, Reasons: errs}
	}
	return d.newAPI(*creds.Meta).ReachEstimate(ctx, t)
}
