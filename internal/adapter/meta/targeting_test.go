package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-fanout/internal/core/domain"
)

func baseTargeting() domain.UnifiedTargeting {
	return domain.UnifiedTargeting{
		AgeMin:    25,
		AgeMax:    44,
		Locations: []domain.Location{{Type: domain.LocationCountry, Name: "United States"}},
	}
}

func TestTransformKeepsRawAges(t *testing.T) {
	out := Transformer{}.Transform(baseTargeting())
	assert.Equal(t, 25, out.AgeMin)
	assert.Equal(t, 44, out.AgeMax)
}

func TestTransformOmitsGenderWhenUnrestricted(t *testing.T) {
	for _, genders := range [][]domain.Gender{
		nil,
		{domain.GenderAll},
		{domain.GenderAll, domain.GenderMale},
		{domain.GenderMale, domain.GenderFemale},
	} {
		in := baseTargeting()
		in.Genders = genders
		assert.Nil(t, Transformer{}.Transform(in).Genders, "genders=%v", genders)
	}

	in := baseTargeting()
	in.Genders = []domain.Gender{domain.GenderFemale}
	assert.Equal(t, []int{2}, Transformer{}.Transform(in).Genders)

	in.Genders = []domain.Gender{domain.GenderMale}
	assert.Equal(t, []int{1}, Transformer{}.Transform(in).Genders)
}

func TestTransformLocationBuckets(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{
		{Type: domain.LocationCountry, Name: "Germany"},
		{Type: domain.LocationCity, Name: "Berlin", Radius: &domain.Radius{Value: 10, Unit: domain.DistanceKilometer}},
		{Type: domain.LocationRegion, Name: "California"},
		{Type: domain.LocationZip, Name: "94105", Country: "US"},
		{Type: domain.LocationCity, Name: "Atlantis"},
	}
	geo := Transformer{}.Transform(in).GeoLocations

	assert.Equal(t, []string{"DE"}, geo.Countries)
	require.Len(t, geo.Cities, 1)
	assert.Equal(t, CityKey{Key: "531441", Radius: 10, DistanceUnit: "kilometer"}, geo.Cities[0])
	assert.Equal(t, []GeoKey{{Key: "3847"}}, geo.Regions)
	assert.Equal(t, []GeoKey{{Key: "US:94105"}}, geo.Zips)
}

func TestTransformRoundTrip(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{{Type: domain.LocationCity, Name: "London"}}
	out := Transformer{}.Transform(in)
	require.Len(t, out.GeoLocations.Cities, 1)
	assert.Equal(t, "2202479", out.GeoLocations.Cities[0].Key)
	assert.Empty(t, out.GeoLocations.Countries)

	in.Locations = []domain.Location{{Type: domain.LocationCountry, Name: "United Kingdom"}}
	out = Transformer{}.Transform(in)
	assert.Equal(t, []string{"GB"}, out.GeoLocations.Countries)
	assert.Empty(t, out.GeoLocations.Cities)
}

func TestValidateRejectsUnresolvedLocations(t *testing.T) {
	in := baseTargeting()
	in.Locations = []domain.Location{
		{Type: domain.LocationCity, Name: "Atlantis"},
		{Type: domain.LocationCountry, Name: "Narnia"},
	}
	tr := Transformer{}
	errs := tr.Validate(tr.Transform(in))
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "none of the requested locations")
}

func TestValidateCityCap(t *testing.T) {
	tg := Targeting{AgeMin: 18, AgeMax: 65}
	for i := 0; i < maxCities+1; i++ {
		tg.GeoLocations.Cities = append(tg.GeoLocations.Cities, CityKey{Key: "1"})
	}
	errs := Transformer{}.Validate(tg)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at most 200 cities")
}

func TestTransformInterestsLanguagesAndExtension(t *testing.T) {
	in := baseTargeting()
	in.Interests = []string{"technology", "unknown hobby"}
	in.Languages = []string{"english", "klingon"}
	in.Facebook = &domain.FacebookTargeting{
		PublisherPlatforms: []string{"facebook", "instagram"},
		CustomAudiences:    []string{"2380", " "},
	}
	out := Transformer{}.Transform(in)

	require.Len(t, out.FlexibleSpec, 1)
	require.Len(t, out.FlexibleSpec[0].Interests, 1)
	assert.Equal(t, "Technology", out.FlexibleSpec[0].Interests[0].Name)
	assert.Equal(t, []int{6}, out.Locales)
	assert.Equal(t, []string{"facebook", "instagram"}, out.PublisherPlatforms)
	assert.Equal(t, []IDRef{{ID: "2380"}}, out.CustomAudiences)
}
