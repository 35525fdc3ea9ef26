package tiktok

import (
	"fmt"
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

func TestAgeGroupsOverlap(t *testing.T) {
	cases := []struct {
		lo, hi int
		want   []string
	}{
		{25, 44, []string{"AGE_25_34", "AGE_35_44"}},
		{18, 65, []string{"AGE_18_24", "AGE_25_34", "AGE_35_44", "AGE_45_54", "AGE_55_100"}},
		{13, 17, []string{"AGE_13_17"}},
		{30, 40, []string{"AGE_25_34", "AGE_35_44"}},
		{54, 55, []string{"AGE_45_54", "AGE_55_100"}},
	}
	for _, tc := range cases {
		in := baseTargeting()
		in.AgeMin, in.AgeMax = tc.lo, tc.hi
		assert.Equal(t, tc.want, Transformer{}.Transform(in).AgeGroups, "%d-%d", tc.lo, tc.hi)
	}
}

// Every selected group overlaps the range and every age in the range is
// covered by a selected group.
func TestAgeGroupsCoverRange(t *testing.T) {
	bounds := make(map[string][2]int, len(ageGroups))
	for _, g := range ageGroups {
		bounds[g.enum] = [2]int{g.lo, g.hi}
	}
	for lo := 13; lo <= 65; lo++ {
		for hi := lo + 1; hi <= 65; hi++ {
			in := baseTargeting()
			in.AgeMin, in.AgeMax = lo, hi
			groups := Transformer{}.Transform(in).AgeGroups
			name := fmt.Sprintf("%d-%d", lo, hi)

			for _, g := range groups {
				b := bounds[g]
				assert.True(t, b[0] <= hi && b[1] >= lo, name)
			}
			for age := lo; age <= hi; age++ {
				covered := false
				for _, g := range groups {
					if b := bounds[g]; age >= b[0] && age <= b[1] {
						covered = true
					}
				}
				assert.True(t, covered, "%s: age %d", name, age)
			}
		}
	}
}

func TestGender(t *testing.T) {
	in := baseTargeting()
	assert.Empty(t, Transformer{}.Transform(in).Gender)

	in.Genders = []domain.Gender{domain.GenderAll}
	assert.Empty(t, Transformer{}.Transform(in).Gender)

	in.Genders = []domain.Gender{domain.GenderMale, domain.GenderFemale}
	assert.Empty(t, Transformer{}.Transform(in).Gender)

	in.Genders = []domain.Gender{domain.GenderFemale}
	assert.Equal(t, "GENDER_FEMALE", Transformer{}.Transform(in).Gender)

	in.Genders = []domain.Gender{domain.GenderMale}
	assert.Equal(t, "GENDER_MALE", Transformer{}.Transform(in).Gender)
}

func TestTransformLookupsAndExtension(t *testing.T) {
	in := baseTargeting()
	in.Locations = append(in.Locations,
		domain.Location{Type: domain.LocationCity, Name: "London"},
		domain.Location{Type: domain.LocationCountry, Name: "USA"},
		domain.Location{Type: domain.LocationCity, Name: "Austin"},
	)
	in.Languages = []string{"english", "klingon"}
	in.Interests = []string{"technology"}
	in.TikTok = &domain.TikTokTargeting{
		Hashtags:          []string{"#springsale", " fashion ", "#"},
		OperatingSystems:  []string{"ios", "android"},
		DevicePriceRanges: []int{0, 250},
		NetworkTypes:      []string{"wifi"},
	}

	out := Transformer{}.Transform(in)
	assert.Equal(t, []string{"6252001", "2643743"}, out.LocationIDs)
	assert.Equal(t, []string{"en"}, out.Languages)
	assert.Equal(t, []string{"27000000000"}, out.InterestCategoryIDs)
	assert.Equal(t, []string{"springsale", "fashion"}, out.InterestKeywords)
	assert.Equal(t, []string{"IOS", "ANDROID"}, out.OperatingSystems)
	assert.Equal(t, []int{0, 250}, out.DevicePriceRanges)
	assert.Equal(t, []string{"WIFI"}, out.NetworkTypes)
	assert.Empty(t, Transformer{}.Validate(out))
}

func TestValidateTargeting(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{{Type: domain.LocationCity, Name: "Austin"}}
	in.TikTok = &domain.TikTokTargeting{OperatingSystems: []string{"symbian"}}
	for i := 0; i < 11; i++ {
		in.TikTok.Hashtags = append(in.TikTok.Hashtags, fmt.Sprintf("#tag%d", i))
	}

	errs := Transformer{}.Validate(Transformer{}.Transform(in))
	assert.Equal(t, []string{
		"TikTok targeting: none of the requested locations could be resolved",
		"TikTok targeting: at most 10 hashtags (got 11)",
		`TikTok targeting: unknown operating system "SYMBIAN"`,
	}, errs)
}
