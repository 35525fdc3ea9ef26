package mapping

import (
	"strings"

	"ad-fanout/internal/core/domain"
)

// LocationRef is a location resolved in one platform namespace. CountryCode
// is the ISO 3166-1 alpha-2 code of the country the location belongs to.
type LocationRef struct {
	ID          string
	Name        string
	CountryCode string
}

type locationRow struct {
	kind    domain.LocationType
	name    string
	aliases []string
	country string
	// platform ids: Meta geo keys (ISO code for countries), Google geo target
	// constants, LinkedIn geo ids, TikTok geoname ids.
	meta     string
	google   string
	linkedIn string
	tiktok   string
}

var locations = []locationRow{
	// countries
	{kind: domain.LocationCountry, name: "United States", aliases: []string{"us", "usa", "united states of america"}, country: "US", meta: "US", google: "2840", linkedIn: "103644278", tiktok: "6252001"},
	{kind: domain.LocationCountry, name: "Canada", aliases: []string{"ca"}, country: "CA", meta: "CA", google: "2124", linkedIn: "101174742", tiktok: "6251999"},
	{kind: domain.LocationCountry, name: "United Kingdom", aliases: []string{"uk", "gb", "great britain"}, country: "GB", meta: "GB", google: "2826", linkedIn: "101165590", tiktok: "2635167"},
	{kind: domain.LocationCountry, name: "Germany", aliases: []string{"de"}, country: "DE", meta: "DE", google: "2276", linkedIn: "101282230", tiktok: "2921044"},
	{kind: domain.LocationCountry, name: "France", aliases: []string{"fr"}, country: "FR", meta: "FR", google: "2250", linkedIn: "105015875", tiktok: "3017382"},
	{kind: domain.LocationCountry, name: "Spain", aliases: []string{"es"}, country: "ES", meta: "ES", google: "2724", linkedIn: "105646813", tiktok: "2510769"},
	{kind: domain.LocationCountry, name: "Italy", aliases: []string{"it"}, country: "IT", meta: "IT", google: "2380", linkedIn: "103350119", tiktok: "3175395"},
	{kind: domain.LocationCountry, name: "Netherlands", aliases: []string{"nl", "holland"}, country: "NL", meta: "NL", google: "2528", linkedIn: "102890719", tiktok: "2750405"},
	{kind: domain.LocationCountry, name: "Australia", aliases: []string{"au"}, country: "AU", meta: "AU", google: "2036", linkedIn: "101452733", tiktok: "2077456"},
	{kind: domain.LocationCountry, name: "Brazil", aliases: []string{"br", "brasil"}, country: "BR", meta: "BR", google: "2076", linkedIn: "106057199", tiktok: "3469034"},
	{kind: domain.LocationCountry, name: "Mexico", aliases: []string{"mx"}, country: "MX", meta: "MX", google: "2484", linkedIn: "103323778", tiktok: "3996063"},
	{kind: domain.LocationCountry, name: "India", aliases: []string{"in"}, country: "IN", meta: "IN", google: "2356", linkedIn: "102713980", tiktok: "1269750"},
	{kind: domain.LocationCountry, name: "Japan", aliases: []string{"jp"}, country: "JP", meta: "JP", google: "2392", linkedIn: "101355337", tiktok: "1861060"},

	// regions
	{kind: domain.LocationRegion, name: "California", country: "US", meta: "3847", google: "21137", linkedIn: "102095887", tiktok: "5332921"},
	{kind: domain.LocationRegion, name: "New York", aliases: []string{"new york state"}, country: "US", meta: "3875", google: "21167", linkedIn: "105763813", tiktok: "5128638"},
	{kind: domain.LocationRegion, name: "Texas", country: "US", meta: "3886", google: "21176", linkedIn: "102748797", tiktok: "4736286"},
	{kind: domain.LocationRegion, name: "Florida", country: "US", meta: "3851", google: "21142", linkedIn: "101318387", tiktok: "4155751"},
	{kind: domain.LocationRegion, name: "Ontario", country: "CA", meta: "536", google: "20121", linkedIn: "105149290", tiktok: "6093943"},
	{kind: domain.LocationRegion, name: "England", country: "GB", meta: "1188", google: "20339", linkedIn: "102299470", tiktok: "6269131"},
	{kind: domain.LocationRegion, name: "Bavaria", aliases: []string{"bayern"}, country: "DE", meta: "1561", google: "20228", linkedIn: "", tiktok: "2951839"},

	// cities
	{kind: domain.LocationCity, name: "New York", aliases: []string{"new york city", "nyc"}, country: "US", meta: "2490299", google: "1023191", linkedIn: "105080838", tiktok: "5128581"},
	{kind: domain.LocationCity, name: "Los Angeles", aliases: []string{"la"}, country: "US", meta: "2420379", google: "1013962", linkedIn: "102448103", tiktok: "5368361"},
	{kind: domain.LocationCity, name: "San Francisco", aliases: []string{"sf"}, country: "US", meta: "2421836", google: "1014221", linkedIn: "102277331", tiktok: "5391959"},
	{kind: domain.LocationCity, name: "Chicago", country: "US", meta: "2438754", google: "1016367", linkedIn: "103112676", tiktok: "4887398"},
	{kind: domain.LocationCity, name: "Austin", country: "US", meta: "2514815", google: "1026201", linkedIn: "104472866", tiktok: ""},
	{kind: domain.LocationCity, name: "London", country: "GB", meta: "2202479", google: "1006886", linkedIn: "102257491", tiktok: "2643743"},
	{kind: domain.LocationCity, name: "Toronto", country: "CA", meta: "296875", google: "1002451", linkedIn: "100025096", tiktok: "6167865"},
	{kind: domain.LocationCity, name: "Berlin", country: "DE", meta: "531441", google: "1003854", linkedIn: "106967730", tiktok: "2950159"},
	{kind: domain.LocationCity, name: "Paris", country: "FR", meta: "799095", google: "1006094", linkedIn: "101240143", tiktok: "2988507"},
	{kind: domain.LocationCity, name: "Sydney", country: "AU", meta: "1093016", google: "1000286", linkedIn: "104769905", tiktok: "2147714"},
}

type locationKey struct {
	kind domain.LocationType
	name string
}

var locationIndex = func() map[locationKey]locationRow {
	idx := make(map[locationKey]locationRow, len(locations)*2)
	for _, row := range locations {
		idx[locationKey{row.kind, normalize(row.name)}] = row
		for _, a := range row.aliases {
			idx[locationKey{row.kind, normalize(a)}] = row
		}
	}
	return idx
}()

// Location resolves a typed location in the namespace of p. Postal codes are
// not part of the table; see ZipKey.
func Location(p domain.Platform, kind domain.LocationType, name string) (LocationRef, bool) {
	row, ok := locationIndex[locationKey{kind, normalize(name)}]
	if !ok {
		return LocationRef{}, false
	}
	var id string
	switch p {
	case domain.PlatformMeta:
		id = row.meta
	case domain.PlatformGoogle:
		id = row.google
	case domain.PlatformLinkedIn:
		id = row.linkedIn
	case domain.PlatformTikTok:
		id = row.tiktok
	}
	if id == "" {
		return LocationRef{}, false
	}
	return LocationRef{ID: id, Name: row.name, CountryCode: row.country}, true
}

// CountryCode resolves a country name, alias or ISO code to its ISO code.
func CountryCode(name string) (string, bool) {
	row, ok := locationIndex[locationKey{domain.LocationCountry, normalize(name)}]
	if !ok {
		return "", false
	}
	return row.country, true
}

// ZipKey builds the Meta postal code key ("US:94105"). The country hint may
// be a name or ISO code; without a resolvable country the zip is dropped.
func ZipKey(country, zip string) (string, bool) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return "", false
	}
	code, ok := CountryCode(country)
	if !ok {
		return "", false
	}
	return code + ":" + zip, true
}
