package google

import (
	"fmt"
	"slices"
	"strings"

	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const (
	maxKeywordLength = 80
	maxKeywordWords  = 10
)

// ageBucket is a Google Ads AgeRangeType. hi is inclusive; the last bucket
// is open-ended.
type ageBucket struct {
	enum   string
	lo, hi int
}

var ageBuckets = []ageBucket{
	{"AGE_RANGE_18_24", 18, 24},
	{"AGE_RANGE_25_34", 25, 34},
	{"AGE_RANGE_35_44", 35, 44},
	{"AGE_RANGE_45_54", 45, 54},
	{"AGE_RANGE_55_64", 55, 64},
	{"AGE_RANGE_65_UP", 65, 200},
}

// Keyword is a keyword criterion.
type Keyword struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

// Targeting is the set of Google Ads criteria derived from unified
// targeting. Campaign-level criteria (locations, languages, negatives,
// devices) and ad-group-level criteria are created in separate steps.
type Targeting struct {
	AgeRanges        []string
	Genders          []string
	GeoTargets       []string
	Languages        []string
	UserInterests    []string
	Keywords         []Keyword
	NegativeKeywords []Keyword
	Topics           []string
	Devices          []string
}

// Transformer converts unified targeting into Google Ads criteria.
type Transformer struct{}

// Transform selects every age bucket that overlaps the requested range.
// Ages under 18 cannot be addressed on Google Ads; unresolved locations,
// languages and interests are dropped.
func (Transformer) Transform(t domain.UnifiedTargeting) Targeting {
	var out Targeting
	for _, b := range ageBuckets {
		if b.lo <= t.AgeMax && b.hi >= t.AgeMin {
			out.AgeRanges = append(out.AgeRanges, b.enum)
		}
	}

	if !t.Unrestricted() {
		if t.HasGender(domain.GenderMale) {
			out.Genders = []string{"MALE"}
		} else {
			out.Genders = []string{"FEMALE"}
		}
	}

	seen := make(map[string]struct{})
	for _, loc := range t.Locations {
		if loc.Type == domain.LocationZip {
			continue
		}
		ref, ok := mapping.Location(domain.PlatformGoogle, loc.Type, loc.Name)
		if !ok {
			continue
		}
		rn := "geoTargetConstants/" + ref.ID
		if _, dup := seen[rn]; dup {
			continue
		}
		seen[rn] = struct{}{}
		out.GeoTargets = append(out.GeoTargets, rn)
	}

	for _, lang := range t.Languages {
		if id, ok := mapping.Language(domain.PlatformGoogle, lang); ok {
			out.Languages = append(out.Languages, "languageConstants/"+id)
		}
	}

	for _, ref := range mapping.Interests(domain.PlatformGoogle, t.Interests) {
		out.UserInterests = append(out.UserInterests, ref.ID)
	}

	if ext := t.Google; ext != nil {
		for _, k := range ext.Keywords {
			if text := strings.TrimSpace(k.Text); text != "" {
				out.Keywords = append(out.Keywords, Keyword{Text: text, MatchType: matchType(k.MatchType)})
			}
		}
		for _, k := range ext.NegativeKeywords {
			if text := strings.TrimSpace(k); text != "" {
				out.NegativeKeywords = append(out.NegativeKeywords, Keyword{Text: text, MatchType: "BROAD"})
			}
		}
		out.Topics = ext.Topics
		for _, d := range ext.DeviceTypes {
			out.Devices = append(out.Devices, strings.ToUpper(d))
		}
	}
	return out
}

// Validate checks the criteria before anything is created.
func (Transformer) Validate(t Targeting) []string {
	var errs []string
	if len(t.GeoTargets) == 0 {
		errs = append(errs, "Google Ads targeting: none of the requested locations could be resolved")
	}
	if len(t.AgeRanges) == 0 {
		errs = append(errs, "Google Ads targeting: the age range has no addressable bucket (minimum age is 18)")
	}
	for _, k := range slices.Concat(t.Keywords, t.NegativeKeywords) {
		if n := len([]rune(k.Text)); n > maxKeywordLength {
			errs = append(errs, fmt.Sprintf("Google Ads keyword %q exceeds %d characters", k.Text, maxKeywordLength))
		}
		if n := len(strings.Fields(k.Text)); n > maxKeywordWords {
			errs = append(errs, fmt.Sprintf("Google Ads keyword %q exceeds %d words", k.Text, maxKeywordWords))
		}
	}
	for _, d := range t.Devices {
		switch d {
		case "MOBILE", "DESKTOP", "TABLET":
		default:
			errs = append(errs, fmt.Sprintf("Google Ads targeting: unknown device type %q", d))
		}
	}
	return errs
}

func matchType(m domain.KeywordMatch) string {
	switch m {
	case domain.MatchExact:
		return "EXACT"
	case domain.MatchPhrase:
		return "PHRASE"
	default:
		return "BROAD"
	}
}
