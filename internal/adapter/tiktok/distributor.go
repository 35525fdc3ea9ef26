// Package tiktok distributes unified campaigns through the TikTok Business
// API. Media is uploaded first, then a campaign, one ad group carrying the
// budget, schedule and targeting, and one ad.
package tiktok

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"ad-fanout/internal/adapter/pipeline"
	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/port"
	"ad-fanout/internal/core/validation"
)

const (
	maxAdText         = 100
	suggestedDailyMin = 20.0
)

// API is the part of the Business API the distributor uses.
type API interface {
	Ping(ctx context.Context) error
	CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error)
	UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error
	Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error)
}

// APIFactory builds an API bound to one set of credentials.
type APIFactory func(creds domain.TikTokCredentials) API

// ClientFactory returns an APIFactory producing Business API clients.
func ClientFactory(cfg configs.TikTok, httpClient *http.Client, logger *slog.Logger) APIFactory {
	return func(creds domain.TikTokCredentials) API {
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

func (d *Distributor) Platform() domain.Platform { return domain.PlatformTikTok }

// Validate applies the shared checks and TikTok's own rules. Unlike the
// other platforms a start date that is not in the future is an error, since
// TikTok rejects such ad groups.
func (d *Distributor) Validate(data domain.UnifiedCampaignData, creds domain.Credentials) pipeline.Check {
	var check pipeline.Check
	check.Add(validation.Campaign(data)...)

	if n := utf8.RuneCountInString(AdText(data.Creative)); n > maxAdText {
		check.Add(fmt.Sprintf("TikTok ad text (headline + primary text) must be at most %d characters (got %d)", maxAdText, n))
	}
	if data.Budget.Amount > 0 && data.DailyAmount() < suggestedDailyMin {
		check.Warn(fmt.Sprintf("TikTok recommends a daily budget of at least $%.2f (got $%.2f)", suggestedDailyMin, data.DailyAmount()))
	}
	if !data.Schedule.StartDate.IsZero() && !validation.StartsInFuture(data.Schedule, d.clock.Now()) {
		check.Add("schedule.startDate must be in the future for TikTok")
	}

	switch {
	case creds.TikTok == nil:
		check.Add("TikTok credentials are required")
	default:
		if creds.TikTok.AccessToken == "" {
			check.Add("TikTok access token is required")
		}
		if creds.TikTok.AdvertiserID == "" {
			check.Add("TikTok advertiser id is required")
		}
	}

	check.Add(d.transformer.Validate(d.transformer.Transform(data.Targeting))...)
	return check
}

// Distribute never fails; see port.Distributor.
func (d *Distributor) Distribute(ctx context.Context, data domain.UnifiedCampaignData, creds domain.Credentials) domain.PlatformCampaignResult {
	var api API
	return pipeline.Run(ctx, d.logger, pipeline.Steps{
		Platform: domain.PlatformTikTok,
		Validate: func() pipeline.Check { return d.Validate(data, creds) },
		Probe: func(ctx context.Context) error {
			api = d.newAPI(*creds.TikTok)
			return remote.Probe(domain.PlatformTikTok, api.Ping(ctx))
		},
		Create: func(ctx context.Context, res *domain.PlatformCampaignResult) error {
			created, err := api.CreateCampaign(ctx, data)
			if err != nil {
				return err
			}
			res.CampaignID = created.CampaignID
			res.AdGroupID = created.AdGroupID
			res.CreativeID = created.VideoID
			if res.CreativeID == "" {
				res.CreativeID = created.ImageID
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
	if creds.TikTok == nil {
		return fmt.Errorf("%w: tiktok", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.TikTok).UpdateStatus(ctx, campaignID, status)
}

func (d *Distributor) Insights(ctx context.Context, creds domain.Credentials, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	if creds.TikTok == nil {
		return nil, fmt.Errorf("%w: tiktok", domain.ErrMissingCredentials)
	}
	return d.newAPI(*creds.TikTok).Insights(ctx, campaignID, period)
}
