package mapping

import (
	"strings"

	"ad-fanout/internal/core/domain"
)

// InterestRef is an interest resolved in one platform namespace.
type InterestRef struct {
	ID   string
	Name string
}

type interestRow struct {
	name     string
	meta     string
	google   string
	linkedIn string
	tiktok   string
}

// An empty id means the platform has no equivalent category.
var interests = []interestRow{
	{name: "Technology", meta: "6003985771306", google: "80432", linkedIn: "urn:li:interest:643", tiktok: "27000000000"},
	{name: "Fitness", meta: "6003384248805", google: "80548", linkedIn: "urn:li:interest:1180", tiktok: "21000000000"},
	{name: "Travel", meta: "6004160395895", google: "80158", linkedIn: "urn:li:interest:2212", tiktok: "24000000000"},
	{name: "Fashion", meta: "6003348604581", google: "80421", linkedIn: "", tiktok: "11000000000"},
	{name: "Food and Drink", meta: "6003107902433", google: "80217", linkedIn: "", tiktok: "13000000000"},
	{name: "Gaming", meta: "6003940339466", google: "80533", linkedIn: "", tiktok: "19000000000"},
	{name: "Music", meta: "6003020834693", google: "80544", linkedIn: "", tiktok: "20000000000"},
	{name: "Sports", meta: "6003269553527", google: "80547", linkedIn: "urn:li:interest:2106", tiktok: "23000000000"},
	{name: "Business", meta: "6003402305839", google: "80276", linkedIn: "urn:li:interest:117", tiktok: "16000000000"},
	{name: "Finance", meta: "6003022269556", google: "80463", linkedIn: "urn:li:interest:604", tiktok: "17000000000"},
	{name: "Education", meta: "6003327847662", google: "80266", linkedIn: "urn:li:interest:451", tiktok: "10000000000"},
	{name: "Parenting", meta: "6003232518610", google: "80520", linkedIn: "", tiktok: "22000000000"},
	{name: "Pets", meta: "6003159378782", google: "80155", linkedIn: "", tiktok: "14000000000"},
	{name: "Beauty", meta: "6002867432822", google: "80456", linkedIn: "", tiktok: "12000000000"},
	{name: "Automotive", meta: "6003176678152", google: "80101", linkedIn: "urn:li:interest:75", tiktok: "15000000000"},
	{name: "Real Estate", meta: "6003578086487", google: "80585", linkedIn: "urn:li:interest:1796", tiktok: ""},
	{name: "Health", meta: "6003277229526", google: "80551", linkedIn: "urn:li:interest:1043", tiktok: "18000000000"},
	{name: "Marketing", meta: "6003127206524", google: "", linkedIn: "urn:li:interest:1385", tiktok: ""},
	{name: "Software Development", meta: "6003473077165", google: "80435", linkedIn: "urn:li:interest:1950", tiktok: ""},
	{name: "Outdoors", meta: "6003257757682", google: "80159", linkedIn: "", tiktok: "25000000000"},
}

var interestAliases = map[string]string{
	"tech":         "technology",
	"food":         "food and drink",
	"food & drink": "food and drink",
	"games":        "gaming",
	"video games":  "gaming",
	"cars":         "automotive",
	"wellness":     "health",
	"software":     "software development",
	"property":     "real estate",
	"investing":    "finance",
	"gym":          "fitness",
}

var interestIndex = func() map[string]interestRow {
	idx := make(map[string]interestRow, len(interests))
	for _, row := range interests {
		idx[normalize(row.name)] = row
	}
	return idx
}()

// Interest resolves a free-text interest name in the namespace of p.
// ok is false when the name is unknown or the platform has no equivalent.
func Interest(p domain.Platform, name string) (InterestRef, bool) {
	key := normalize(name)
	if alias, ok := interestAliases[key]; ok {
		key = alias
	}
	row, ok := interestIndex[key]
	if !ok {
		return InterestRef{}, false
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
		return InterestRef{}, false
	}
	return InterestRef{ID: id, Name: row.name}, true
}

// Interests resolves every name and silently drops unresolved ones. Duplicate
// ids are emitted once.
func Interests(p domain.Platform, names []string) []InterestRef {
	var (
		out  []InterestRef
		seen = make(map[string]struct{}, len(names))
	)
	for _, n := range names {
		ref, ok := Interest(p, n)
		if !ok {
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		out = append(out, ref)
	}
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
