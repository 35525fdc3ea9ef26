package domain

// Gender is a unified gender selector. GenderAll means "no restriction".
type Gender string

const (
	GenderAll    Gender = "all"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// LocationType selects which platform bucket a location lands in.
type LocationType string

const (
	LocationCountry LocationType = "country"
	LocationRegion  LocationType = "region"
	LocationCity    LocationType = "city"
	LocationZip     LocationType = "zip"
)

// DistanceUnit of a radius around a city.
type DistanceUnit string

const (
	DistanceMile      DistanceUnit = "mile"
	DistanceKilometer DistanceUnit = "kilometer"
)

// Radius widens a city location.
type Radius struct {
	Value int          `json:"value" validate:"gt=0"`
	Unit  DistanceUnit `json:"unit" validate:"oneof=mile kilometer"`
}

// Location is one typed targeting location. Name is resolved through the
// location table of each platform; Country is an optional ISO code hint used
// for postal codes.
type Location struct {
	Type    LocationType `json:"type" validate:"oneof=country region city zip"`
	Name    string       `json:"name" validate:"required"`
	Country string       `json:"country,omitempty"`
	Radius  *Radius      `json:"radius,omitempty"`
}

// UnifiedTargeting describes who a campaign should reach, plus one extension
// bag per platform for fields that have no cross-platform meaning.
type UnifiedTargeting struct {
	AgeMin    int        `json:"ageMin" validate:"gte=13,lte=65"`
	AgeMax    int        `json:"ageMax" validate:"gte=13,lte=65,gtfield=AgeMin"`
	Genders   []Gender   `json:"genders" validate:"dive,oneof=all male female"`
	Locations []Location `json:"locations" validate:"min=1,dive"`
	Languages []string   `json:"languages,omitempty"`
	Interests []string   `json:"interests,omitempty"`

	Facebook *FacebookTargeting `json:"facebook,omitempty"`
	Google   *GoogleTargeting   `json:"google,omitempty"`
	LinkedIn *LinkedInTargeting `json:"linkedin,omitempty"`
	TikTok   *TikTokTargeting   `json:"tiktok,omitempty"`
}

// Unrestricted reports whether the gender selection allows everyone: it is
// empty, contains GenderAll, or lists both sexes.
func (t UnifiedTargeting) Unrestricted() bool {
	var male, female bool
	for _, g := range t.Genders {
		switch g {
		case GenderAll:
			return true
		case GenderMale:
			male = true
		case GenderFemale:
			female = true
		}
	}
	return !male && !female || male && female
}

// HasGender reports whether g is explicitly selected.
func (t UnifiedTargeting) HasGender(g Gender) bool {
	for _, v := range t.Genders {
		if v == g {
			return true
		}
	}
	return false
}

// FacebookTargeting carries Meta-only placement and audience fields.
type FacebookTargeting struct {
	PublisherPlatforms      []string `json:"publisherPlatforms,omitempty"`
	FacebookPositions       []string `json:"facebookPositions,omitempty"`
	DevicePlatforms         []string `json:"devicePlatforms,omitempty"`
	CustomAudiences         []string `json:"customAudiences,omitempty"`
	ExcludedCustomAudiences []string `json:"excludedCustomAudiences,omitempty"`
}

// KeywordMatch is the Google keyword match type.
type KeywordMatch string

const (
	MatchExact  KeywordMatch = "exact"
	MatchPhrase KeywordMatch = "phrase"
	MatchBroad  KeywordMatch = "broad"
)

// Keyword is a Google search keyword.
type Keyword struct {
	Text      string       `json:"text"`
	MatchType KeywordMatch `json:"matchType,omitempty"`
}

// GoogleChannel selects the Google advertising channel.
type GoogleChannel string

const (
	ChannelSearch  GoogleChannel = "search"
	ChannelDisplay GoogleChannel = "display"
)

// GoogleTargeting carries Google-only fields.
type GoogleTargeting struct {
	Keywords               []Keyword     `json:"keywords,omitempty"`
	NegativeKeywords       []string      `json:"negativeKeywords,omitempty"`
	Topics                 []string      `json:"topics,omitempty"`
	DeviceTypes            []string      `json:"deviceTypes,omitempty"`
	Channel                GoogleChannel `json:"channel,omitempty"`
	AdditionalHeadlines    []string      `json:"additionalHeadlines,omitempty"`
	AdditionalDescriptions []string      `json:"additionalDescriptions,omitempty"`
	BusinessName           string        `json:"businessName,omitempty"`
}

// LinkedInTargeting carries LinkedIn-only professional targeting.
type LinkedInTargeting struct {
	JobTitles    []string `json:"jobTitles,omitempty"`
	Industries   []string `json:"industries,omitempty"`
	Seniorities  []string `json:"seniorities,omitempty"`
	CompanySizes []string `json:"companySizes,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// TikTokTargeting carries TikTok-only device and hashtag filters.
type TikTokTargeting struct {
	Hashtags          []string `json:"hashtags,omitempty"`
	OperatingSystems  []string `json:"operatingSystems,omitempty"`
	DevicePriceRanges []int    `json:"devicePriceRanges,omitempty"`
	NetworkTypes      []string `json:"networkTypes,omitempty"`
	Placements        []string `json:"placements,omitempty"`
	DisplayName       string   `json:"displayName,omitempty"`
}
