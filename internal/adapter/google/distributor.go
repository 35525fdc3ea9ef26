// Package google distributes unified campaigns to Google Ads through its
// REST interface.
package google

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"ad-fanout/internal/adapter/pipeline"
	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
	"ad-fanout/internal/core/port"
	"ad-fanout/internal/core/validation"
)

const (
	maxHeadline    = 30
	maxDescription = 90

	// responsive search ad minimums
	minSearchHeadlines    = 3
	minSearchDescriptions = 2
)

// API is the part of the Google Ads API the distributor uses.
type API interface {
	Ping(ctx context.Context) error
	CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
	Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error)
}

// APIFactory builds an API bound to one set of credentials.
type APIFactory func(creds domain.GoogleCredentials) API

// ClientFactory returns an APIFactory producing REST clients.
func ClientFactory(cfg configs.Google, httpClient *http.Client, logger *slog.Logger) APIFactory {
	return func(creds domain.GoogleCredentials) API {
		return NewClient(cfg, httpClient, creds, logger)
	}
}

// Channel returns the advertising channel: the explicit choice of the
// Google extension, else the one implied by the objective.
func Channel(data domain.UnifiedCampaignData) string {
	if ext := data.Targeting.Google; ext != nil {
		switch ext.Channel {
		case domain.ChannelSearch:
			return "SEARCH"
		case domain.ChannelDisplay:
			return "DISPLAY"
		}
	}
	return mapping.GoogleChannel(data.Objective)
}

// Distributor publishes campaigns to Google Ads.
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

func (d *Distributor) Platform() domain.Platform { return domain.PlatformGoogle }

// Validate runs every local check without touching the network. A missing
// developer token is not reported here since the client may fall back to the
// service default.
func (d *Distributor) Validate(data domain.UnifiedCampaignData, creds domain.Credentials) pipeline.Check {
	var check pipeline.Check
	check.Add(validation.Campaign(data)...)

	if reason, ok := validation.MaxLength("creative.headline", data.Creative.Headline, maxHeadline); !ok {
		check.Add(reason)
	}
	if reason, ok := validation.MaxLength("creative.description", data.Creative.Description, maxDescription); !ok {
		check.Add(reason)
	}
	if ext := data.Targeting.Google; ext != nil {
		for i, h := range ext.AdditionalHeadlines {
			if reason, ok := validation.MaxLength(fmt.Sprintf("targeting.google.additionalHeadlines[%d]", i), h, maxHeadline); !ok {
				check.Add(reason)
			}
		}
		for i, desc := range ext.AdditionalDescriptions {
			if reason, ok := validation.MaxLength(fmt.Sprintf("targeting.google.additionalDescriptions[%d]", i), desc, maxDescription); !ok {
				check.Add(reason)
			}
		}
	}
	switch Channel(data) {
	case "DISPLAY":
		if len(data.Creative.MediaOf(domain.MediaImage)) < 2 {
			check.Add("Google Ads display campaigns require a landscape (1.91:1) and a square (1:1) image, in that order")
		}
	case "SEARCH":
		headlines, descriptions := searchTexts(data)
		if len(headlines) < minSearchHeadlines {
			check.Add(fmt.Sprintf("Google Ads search ads need at least %d distinct headlines (got %d); add targeting.google.additionalHeadlines", minSearchHeadlines, len(headlines)))
		}
		if len(descriptions) < minSearchDescriptions {
			check.Add(fmt.Sprintf("Google Ads search ads need at least %d distinct descriptions (got %d); add targeting.google.additionalDescriptions", minSearchDescriptions, len(descriptions)))
		}
	}

	switch {
	case creds.Google == nil:
		check.Add("Google Ads credentials are required")
	default:
		if creds.Google.AccessToken == "" {
			check.Add("Google Ads access token is required")
		}
		if CustomerID(creds.Google.CustomerID) == "" {
			check.Add("Google Ads customer id is required")
		}
	}

	check.Add(d.transformer.Validate(d.transformer.Transform(data.Targeting))...)

	if !data.Schedule.StartDate.IsZero() && !validation.StartsInFuture(data.Schedule, d.clock.Now()) {
		check.Warn("Google Ads: start date is in the past; the campaign starts today once enabled")
	}
	return check
}

// Distribute never fails; see port.Distributor.
func (d *Distributor) Distribute(ctx context.Context, data domain.UnifiedCampaignData, creds domain.Credentials) domain.PlatformCampaignResult {
	var api API
	return pipeline.Run(ctx, d.logger, pipeline.Steps{
		Platform: domain.PlatformGoogle,
		Validate: func() pipeline.Check { return d.Validate(data, creds) },
		Probe: func(ctx context.Context) error {
			api = d.newAPI(*creds.Google)
			return remote.Probe(domain.PlatformGoogle, api.Ping(ctx))
		},
		Create: func(ctx context.Context, res *domain.PlatformCampaignResult) error {
			created, err := api.CreateCampaign(ctx, data)
			if err != nil {
				return err
			}
			res.CampaignID = created.CampaignID
			res.AdGroupID = created.AdGroupID
			if len(created.AssetIDs) > 0 {
				res.CreativeID = created.AssetIDs[0]
			}
			res.AdIDs = created.AdIDs
			if len(created.AdIDs) > 0 {
				res.AdID = created.AdIDs[0]
			}
			return nil
		},
	})
}

func (d *Distributor) UpdateStatus(ctx context.Context, creds domain.Credentials, campaignID string, status domain.CampaignStatus) error {
	if creds.Google == nil {
		return fmt.Errorf("%w: google", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.Google).UpdateStatus(ctx, campaignID, status)
}

func (d *Distributor) Insights(ctx context.Context, creds domain.Credentials, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	if creds.Google == nil {
		return nil, fmt.Errorf("%w: google", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.Google).Insights(ctx, campaignID, period)
}
