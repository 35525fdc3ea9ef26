package meta

import (
	"fmt"
	"strconv"
	"strings"

	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const maxCities = 200

// Graph API gender codes.
const (
	genderMale   = 1
	genderFemale = 2
)

// Targeting is the Graph API targeting spec of an ad set.
type Targeting struct {
	AgeMin       int            `json:"age_min"`
	AgeMax       int            `json:"age_max"`
	Genders      []int          `json:"genders,omitempty"`
	GeoLocations GeoLocations   `json:"geo_locations"`
	Locales      []int          `json:"locales,omitempty"`
	FlexibleSpec []FlexibleSpec `json:"flexible_spec,omitempty"`

	PublisherPlatforms      []string `json:"publisher_platforms,omitempty"`
	FacebookPositions       []string `json:"facebook_positions,omitempty"`
	DevicePlatforms         []string `json:"device_platforms,omitempty"`
	CustomAudiences         []IDRef  `json:"custom_audiences,omitempty"`
	ExcludedCustomAudiences []IDRef  `json:"excluded_custom_audiences,omitempty"`
}

type GeoLocations struct {
	Countries []string  `json:"countries,omitempty"`
	Regions   []GeoKey  `json:"regions,omitempty"`
	Cities    []CityKey `json:"cities,omitempty"`
	Zips      []GeoKey  `json:"zips,omitempty"`
}

// Empty reports whether no bucket holds a location.
func (g GeoLocations) Empty() bool {
	return len(g.Countries) == 0 && len(g.Regions) == 0 && len(g.Cities) == 0 && len(g.Zips) == 0
}

type GeoKey struct {
	Key string `json:"key"`
}

type CityKey struct {
	Key          string `json:"key"`
	Radius       int    `json:"radius,omitempty"`
	DistanceUnit string `json:"distance_unit,omitempty"`
}

type FlexibleSpec struct {
	Interests []IDName `json:"interests,omitempty"`
}

type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type IDRef struct {
	ID string `json:"id"`
}

// Transformer converts unified targeting into a Graph API targeting spec.
type Transformer struct{}

// Transform never fails; entries that do not resolve are dropped and left
// for Validate to catch.
func (Transformer) Transform(t domain.UnifiedTargeting) Targeting {
	out := Targeting{AgeMin: t.AgeMin, AgeMax: t.AgeMax}

	if !t.Unrestricted() {
		if t.HasGender(domain.GenderMale) {
			out.Genders = []int{genderMale}
		} else {
			out.Genders = []int{genderFemale}
		}
	}

	seen := make(map[string]struct{})
	for _, loc := range t.Locations {
		switch loc.Type {
		case domain.LocationZip:
			key, ok := mapping.ZipKey(loc.Country, loc.Name)
			if !ok || dup(seen, "zip:"+key) {
				continue
			}
			out.GeoLocations.Zips = append(out.GeoLocations.Zips, GeoKey{Key: key})
			continue
		}

		ref, ok := mapping.Location(domain.PlatformMeta, loc.Type, loc.Name)
		if !ok || dup(seen, string(loc.Type)+":"+ref.ID) {
			continue
		}
		switch loc.Type {
		case domain.LocationCountry:
			out.GeoLocations.Countries = append(out.GeoLocations.Countries, ref.ID)
		case domain.LocationRegion:
			out.GeoLocations.Regions = append(out.GeoLocations.Regions, GeoKey{Key: ref.ID})
		case domain.LocationCity:
			city := CityKey{Key: ref.ID}
			if loc.Radius != nil {
				city.Radius = loc.Radius.Value
				city.DistanceUnit = string(loc.Radius.Unit)
			}
			out.GeoLocations.Cities = append(out.GeoLocations.Cities, city)
		}
	}

	for _, lang := range t.Languages {
		id, ok := mapping.Language(domain.PlatformMeta, lang)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(id)
		if err != nil || dup(seen, "locale:"+id) {
			continue
		}
		out.Locales = append(out.Locales, n)
	}

	if refs := mapping.Interests(domain.PlatformMeta, t.Interests); len(refs) > 0 {
		spec := FlexibleSpec{}
		for _, r := range refs {
			spec.Interests = append(spec.Interests, IDName{ID: r.ID, Name: r.Name})
		}
		out.FlexibleSpec = []FlexibleSpec{spec}
	}

	if ext := t.Facebook; ext != nil {
		out.PublisherPlatforms = ext.PublisherPlatforms
		out.FacebookPositions = ext.FacebookPositions
		out.DevicePlatforms = ext.DevicePlatforms
		out.CustomAudiences = idRefs(ext.CustomAudiences)
		out.ExcludedCustomAudiences = idRefs(ext.ExcludedCustomAudiences)
	}
	return out
}

// Validate checks a transformed spec against Graph API constraints.
func (Transformer) Validate(t Targeting) []string {
	var errs []string
	if t.GeoLocations.Empty() {
		errs = append(errs, "Meta targeting: none of the requested locations could be resolved")
	}
	if n := len(t.GeoLocations.Cities); n > maxCities {
		errs = append(errs, fmt.Sprintf("Meta targeting: at most %d cities per ad set (got %d)", maxCities, n))
	}
	if t.AgeMin < 13 || t.AgeMax > 65 || t.AgeMin > t.AgeMax {
		errs = append(errs, fmt.Sprintf("Meta targeting: invalid age range %d-%d", t.AgeMin, t.AgeMax))
	}
	for _, c := range t.GeoLocations.Cities {
		if c.Radius > 0 && c.DistanceUnit == "" {
			errs = append(errs, "Meta targeting: city radius requires a distance unit")
			break
		}
	}
	return errs
}

func idRefs(ids []string) []IDRef {
	var out []IDRef
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, IDRef{ID: id})
		}
	}
	return out
}

func dup(seen map[string]struct{}, key string) bool {
	if _, ok := seen[key]; ok {
		return true
	}
	seen[key] = struct{}{}
	return false
}
