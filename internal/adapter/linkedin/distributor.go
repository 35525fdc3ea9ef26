// Package linkedin distributes unified campaigns to LinkedIn through the
// versioned Marketing REST API. A unified campaign becomes a campaign group,
// one campaign carrying budget and targeting, a dark post and a sponsored
// creative.
package linkedin

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
	maxHeadline    = 200
	maxIntroText   = 600
	minDailyBudget = 10.0
)

// API is the part of the Marketing API the distributor uses.
type API interface {
	Ping(ctx context.Context) error
	CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error)
	UpdateStatus(ctx context.Context, campaignGroupID string, status domain.CampaignStatus) error
	Insights(ctx context.Context, campaignGroupID string, period domain.DateRange) (*domain.CampaignInsights, error)
	AudienceCount(ctx context.Context, t Targeting) (*domain.ReachEstimate, error)
}

// APIFactory builds an API bound to one set of credentials.
type APIFactory func(creds domain.LinkedInCredentials) API

// ClientFactory returns an APIFactory producing Marketing API clients.
func ClientFactory(cfg configs.LinkedIn, httpClient *http.Client, logger *slog.Logger) APIFactory {
	return func(creds domain.LinkedInCredentials) API {
		return NewClient(cfg, httpClient, creds, logger)
	}
}

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

func (d *Distributor) Platform() domain.Platform { return domain.PlatformLinkedIn }

func (d *Distributor) Validate(data domain.UnifiedCampaignData, creds domain.Credentials) pipeline.Check {
	var check pipeline.Check
	check.Add(validation.Campaign(data)...)

	if reason, ok := validation.MaxLength("creative.headline", data.Creative.Headline, maxHeadline); !ok {
		check.Add(reason)
	}
	if reason, ok := validation.MaxLength("creative.primaryText", data.Creative.PrimaryText, maxIntroText); !ok {
		check.Add(reason)
	}
	if data.Budget.Amount > 0 && data.DailyAmount() < minDailyBudget {
		check.Add(fmt.Sprintf("LinkedIn requires a daily budget of at least $%.2f (got $%.2f)", minDailyBudget, data.DailyAmount()))
	}

	switch {
	case creds.LinkedIn == nil:
		check.Add("LinkedIn credentials are required")
	default:
		if creds.LinkedIn.AccessToken == "" {
			check.Add("LinkedIn access token is required")
		}
		if AccountID(creds.LinkedIn.AccountID) == "" {
			check.Add("LinkedIn ad account id is required")
		}
		if creds.LinkedIn.OrganizationID == "" {
			check.Add("LinkedIn organization id is required to publish a creative")
		}
	}

	check.Add(d.transformer.Validate(d.transformer.Transform(data.Targeting))...)

	if !data.Schedule.StartDate.IsZero() && !validation.StartsInFuture(data.Schedule, d.clock.Now()) {
		check.Warn("LinkedIn: start date is in the past; the campaign starts once activated")
	}
	return check
}

// Distribute never fails; see port.Distributor.
func (d *Distributor) Distribute(ctx context.Context, data domain.UnifiedCampaignData, creds domain.Credentials) domain.PlatformCampaignResult {
	var api API
	return pipeline.Run(ctx, d.logger, pipeline.Steps{
		Platform: domain.PlatformLinkedIn,
		Validate: func() pipeline.Check { return d.Validate(data, creds) },
		Probe: func(ctx context.Context) error {
			api = d.newAPI(*creds.LinkedIn)
			return remote.Probe(domain.PlatformLinkedIn, api.Ping(ctx))
		},
		Create: func(ctx context.Context, res *domain.PlatformCampaignResult) error {
			created, err := api.CreateCampaign(ctx, data)
			if err != nil {
				return err
			}
			res.CampaignID = created.CampaignGroupID
			res.AdGroupID = created.CampaignID
			res.CreativeID = created.PostURN
			res.AdID = created.CreativeID
			return nil
		},
	})
}

// UpdateStatus acts on the campaign group, whose id is the reported
// campaign id.
func (d *Distributor) UpdateStatus(ctx context.Context, creds domain.Credentials, campaignID string, status domain.CampaignStatus) error {
	if creds.LinkedIn == nil {
		return fmt.Errorf("%w: linkedin", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.LinkedIn).UpdateStatus(ctx, campaignID, status)
}

func (d *Distributor) Insights(ctx context.Context, creds domain.Credentials, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	if creds.LinkedIn == nil {
		return nil, fmt.Errorf("%w: linkedin", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.LinkedIn).Insights(ctx, campaignID, period)
}

func (d *Distributor) EstimateReach(ctx context.Context, creds domain.Credentials, targeting domain.UnifiedTargeting) (*domain.ReachEstimate, error) {
	if creds.LinkedIn == nil {
		return nil, fmt.Errorf("%w: linkedin", domain.ErrMissingCredentials)
	}
	t := d.transformer.Transform(targeting)
	if errs := d.transformer.Validate(t); len(errs) > 0 {
		return nil, &domain.ValidationError{Platform: domain.PlatformLinkedIn, Reasons: errs}
	}
	return d.newAPI(*creds.LinkedIn).AudienceCount(ctx, t)
}
