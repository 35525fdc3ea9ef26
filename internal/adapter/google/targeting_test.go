package google

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ad-fanout/internal/core/domain"
)

func baseTargeting() domain.UnifiedTargeting {
	return domain.UnifiedTargeting{
		AgeMin:    25,
		AgeMax:    44,
		Locations: []domain.Location{{Type: domain.LocationCountry, Name: "United States"}},
	}
}

func TestTransformAgeBuckets(t *testing.T) {
	in := baseTargeting()
	assert.Equal(t, []string{"AGE_RANGE_25_34", "AGE_RANGE_35_44"}, Transformer{}.Transform(in).AgeRanges)

	in.AgeMin, in.AgeMax = 30, 50
	assert.Equal(t, []string{"AGE_RANGE_25_34", "AGE_RANGE_35_44", "AGE_RANGE_45_54"}, Transformer{}.Transform(in).AgeRanges)

	in.AgeMin, in.AgeMax = 60, 65
	assert.Equal(t, []string{"AGE_RANGE_55_64", "AGE_RANGE_65_UP"}, Transformer{}.Transform(in).AgeRanges)
}

// Every addressable age of the requested range lies in a selected bucket and
// every selected bucket overlaps the range.
func TestAgeBucketsCoverRequestedRange(t *testing.T) {
	byEnum := make(map[string]ageBucket)
	for _, b := range ageBuckets {
		byEnum[b.enum] = b
	}

	for lo := 13; lo <= 65; lo++ {
		for hi := lo + 1; hi <= 65; hi++ {
			in := baseTargeting()
			in.AgeMin, in.AgeMax = lo, hi
			ranges := Transformer{}.Transform(in).AgeRanges

			if hi < 18 {
				assert.Empty(t, ranges, "%d-%d", lo, hi)
				continue
			}
			for _, enum := range ranges {
				b := byEnum[enum]
				assert.True(t, b.lo <= hi && b.hi >= lo, "%s does not overlap %d-%d", enum, lo, hi)
			}
			for age := max(lo, 18); age <= hi; age++ {
				covered := false
				for _, enum := range ranges {
					if b := byEnum[enum]; age >= b.lo && age <= b.hi {
						covered = true
					}
				}
				assert.True(t, covered, "age %d of %d-%d not covered", age, lo, hi)
			}
		}
	}
}

func TestValidateRejectsMinorsOnlyRange(t *testing.T) {
	in := baseTargeting()
	in.AgeMin, in.AgeMax = 13, 17
	errs := Transformer{}.Validate(Transformer{}.Transform(in))
	assert.Contains(t, errs, "Google Ads targeting: the age range has no addressable bucket (minimum age is 18)")
}

func TestTransformGender(t *testing.T) {
	in := baseTargeting()
	in.Genders = []domain.Gender{domain.GenderAll}
	assert.Nil(t, Transformer{}.Transform(in).Genders)

	in.Genders = []domain.Gender{domain.GenderFemale}
	assert.Equal(t, []string{"FEMALE"}, Transformer{}.Transform(in).Genders)

	in.Genders = []domain.Gender{domain.GenderMale}
	assert.Equal(t, []string{"MALE"}, Transformer{}.Transform(in).Genders)
}

func TestTransformLocationsAndLanguages(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{
		{Type: domain.LocationCountry, Name: "US"},
		{Type: domain.LocationCountry, Name: "United States"},
		{Type: domain.LocationCity, Name: "London", Radius: &domain.Radius{Value: 5, Unit: domain.DistanceMile}},
		{Type: domain.LocationZip, Name: "94105", Country: "US"},
		{Type: domain.LocationCity, Name: "Atlantis"},
	}
	in.Languages = []string{"english", "klingon"}

	out := Transformer{}.Transform(in)
	assert.Equal(t, []string{"geoTargetConstants/2840", "geoTargetConstants/1006886"}, out.GeoTargets)
	assert.Equal(t, []string{"languageConstants/1000"}, out.Languages)
}

func TestValidateRejectsUnresolvedLocations(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{{Type: domain.LocationZip, Name: "94105", Country: "US"}}
	errs := Transformer{}.Validate(Transformer{}.Transform(in))
	assert.Contains(t, errs, "Google Ads targeting: none of the requested locations could be resolved")
}

func TestKeywords(t *testing.T) {
	in := baseTargeting()
	in.Google = &domain.GoogleTargeting{
		Keywords: []domain.Keyword{
			{Text: "running shoes", MatchType: domain.MatchExact},
			{Text: "  trail  "},
			{Text: strings.Repeat("word ", 11)},
		},
		NegativeKeywords: []string{"free"},
		DeviceTypes:      []string{"mobile", "smartwatch"},
	}

	out := Transformer{}.Transform(in)
	assert.Equal(t, Keyword{Text: "running shoes", MatchType: "EXACT"}, out.Keywords[0])
	assert.Equal(t, Keyword{Text: "trail", MatchType: "BROAD"}, out.Keywords[1])
	assert.Equal(t, []Keyword{{Text: "free", MatchType: "BROAD"}}, out.NegativeKeywords)

	errs := Transformer{}.Validate(out)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, `Google Ads targeting: unknown device type "SMARTWATCH"`)
}
