// Package domaintest builds campaigns for tests across the adapters.
package domaintest

import (
	"time"

	"ad-fanout/internal/core/domain"
)

// Campaign returns a campaign that passes every platform's validation when
// distributed at now: a $25 daily budget starting tomorrow for 30 days,
// United States, ages 25-44, one image and enough search ad copy for Google.
func Campaign(now time.Time) domain.UnifiedCampaignData {
	start := now.Add(24 * time.Hour).Truncate(time.Hour)
	return domain.UnifiedCampaignData{
		Name:      "Spring Sale",
		Objective: domain.ObjectiveTraffic,
		Budget:    domain.Budget{Amount: 25, Type: domain.BudgetDaily},
		Schedule:  domain.Schedule{StartDate: start, EndDate: start.Add(30 * 24 * time.Hour)},
		Targeting: domain.UnifiedTargeting{
			AgeMin:    25,
			AgeMax:    44,
			Genders:   []domain.Gender{domain.GenderAll},
			Locations: []domain.Location{{Type: domain.LocationCountry, Name: "United States"}},
			Languages: []string{"english"},
			Interests: []string{"technology"},
			Google: &domain.GoogleTargeting{
				AdditionalHeadlines: []string{"Up to 40% Off", "Shop New Arrivals"},
			},
		},
		Creative: domain.Creative{
			Headline:       "Spring Sale",
			PrimaryText:    "Up to 40% off",
			Description:    "Limited time",
			DestinationURL: "https://shop.example.com/spring",
			CallToAction:   domain.CTAShopNow,
			Media:          []domain.MediaItem{{Type: domain.MediaImage, URL: "https://cdn.example.com/banner.jpg"}},
		},
	}
}

// FixedClock is a Clock that always returns T.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }
