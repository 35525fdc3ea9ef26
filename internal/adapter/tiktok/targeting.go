package tiktok

import (
	"fmt"
	"strings"

	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const maxHashtags = 10

type ageGroup struct {
	enum   string
	lo, hi int
}

var ageGroups = []ageGroup{
	{"AGE_13_17", 13, 17},
	{"AGE_18_24", 18, 24},
	{"AGE_25_34", 25, 34},
	{"AGE_35_44", 35, 44},
	{"AGE_45_54", 45, 54},
	{"AGE_55_100", 55, 100},
}

// Targeting holds the ad group targeting fields. TikTok takes them inline
// in the ad group body.
type Targeting struct {
	LocationIDs         []string `json:"location_ids"`
	AgeGroups           []string `json:"age_groups,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	Languages           []string `json:"languages,omitempty"`
	InterestCategoryIDs []string `json:"interest_category_ids,omitempty"`
	InterestKeywords    []string `json:"interest_keywords,omitempty"`
	OperatingSystems    []string `json:"operating_systems,omitempty"`
	DevicePriceRanges   []int    `json:"device_price_ranges,omitempty"`
	NetworkTypes        []string `json:"network_types,omitempty"`
}

// Transformer converts unified targeting into TikTok ad group targeting.
type Transformer struct{}

// Transform selects every age group overlapping the requested range and
// leaves gender unset unless exactly one sex is requested.
func (Transformer) Transform(t domain.UnifiedTargeting) Targeting {
	var out Targeting
	for _, g := range ageGroups {
		if g.lo <= t.AgeMax && g.hi >= t.AgeMin {
			out.AgeGroups = append(out.AgeGroups, g.enum)
		}
	}

	if !t.Unrestricted() {
		if t.HasGender(domain.GenderMale) {
			out.Gender = "GENDER_MALE"
		} else {
			out.Gender = "GENDER_FEMALE"
		}
	}

	seen := make(map[string]struct{})
	for _, loc := range t.Locations {
		ref, ok := mapping.Location(domain.PlatformTikTok, loc.Type, loc.Name)
		if !ok {
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		out.LocationIDs = append(out.LocationIDs, ref.ID)
	}

	for _, lang := range t.Languages {
		if code, ok := mapping.Language(domain.PlatformTikTok, lang); ok {
			out.Languages = append(out.Languages, code)
		}
	}
	for _, ref := range mapping.Interests(domain.PlatformTikTok, t.Interests) {
		out.InterestCategoryIDs = append(out.InterestCategoryIDs, ref.ID)
	}

	if ext := t.TikTok; ext != nil {
		for _, h := range ext.Hashtags {
			if h = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(h), "#")); h != "" {
				out.InterestKeywords = append(out.InterestKeywords, h)
			}
		}
		for _, os := range ext.OperatingSystems {
			out.OperatingSystems = append(out.OperatingSystems, strings.ToUpper(os))
		}
		out.DevicePriceRanges = ext.DevicePriceRanges
		for _, n := range ext.NetworkTypes {
			out.NetworkTypes = append(out.NetworkTypes, strings.ToUpper(n))
		}
	}
	return out
}

// Validate checks the targeting before anything is created.
func (Transformer) Validate(t Targeting) []string {
	var errs []string
	if len(t.LocationIDs) == 0 {
		errs = append(errs, "TikTok targeting: none of the requested locations could be resolved")
	}
	if len(t.AgeGroups) == 0 {
		errs = append(errs, "TikTok targeting: the age range matches no age group")
	}
	if n := len(t.InterestKeywords); n > maxHashtags {
		errs = append(errs, fmt.Sprintf("TikTok targeting: at most %d hashtags (got %d)", maxHashtags, n))
	}
	for _, os := range t.OperatingSystems {
		if os != "ANDROID" && os != "IOS" {
			errs = append(errs, fmt.Sprintf("TikTok targeting: unknown operating system %q", os))
		}
	}
	return errs
}
