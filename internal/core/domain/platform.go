package domain

import "fmt"

// Platform identifies an ad-serving platform.
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformGoogle   Platform = "google"
	PlatformLinkedIn Platform = "linkedin"
	PlatformTikTok   Platform = "tiktok"
)

// Platforms lists every supported platform.
var Platforms = []Platform{PlatformMeta, PlatformGoogle, PlatformLinkedIn, PlatformTikTok}

// ParsePlatform accepts the platform name, plus "facebook" as an alias of meta.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "meta", "facebook":
		return PlatformMeta, nil
	case "google":
		return PlatformGoogle, nil
	case "linkedin":
		return PlatformLinkedIn, nil
	case "tiktok":
		return PlatformTikTok, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// DisplayName is the human readable platform name used in messages.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformMeta:
		return "Meta"
	case PlatformGoogle:
		return "Google Ads"
	case PlatformLinkedIn:
		return "LinkedIn"
	case PlatformTikTok:
		return "TikTok"
	}
	return string(p)
}

// MetaCredentials authorise calls to the Graph API.
type MetaCredentials struct {
	AccessToken string `json:"accessToken"`
	AdAccountID string `json:"adAccountId"`
	PageID      string `json:"pageId"`
	PixelID     string `json:"pixelId,omitempty"`
}

// GoogleCredentials authorise calls to the Google Ads API.
// When RefreshToken is set and the service has an OAuth client configured,
// expired access tokens are refreshed transparently.
type GoogleCredentials struct {
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken,omitempty"`
	DeveloperToken  string `json:"developerToken"`
	CustomerID      string `json:"customerId"`
	LoginCustomerID string `json:"loginCustomerId,omitempty"`
}

// LinkedInCredentials authorise calls to the LinkedIn Marketing API.
type LinkedInCredentials struct {
	AccessToken    string `json:"accessToken"`
	AccountID      string `json:"accountId"`
	OrganizationID string `json:"organizationId"`
	Currency       string `json:"currency,omitempty"`
}

// TikTokCredentials authorise calls to the TikTok Business API.
type TikTokCredentials struct {
	AccessToken  string `json:"accessToken"`
	AdvertiserID string `json:"advertiserId"`
	IdentityID   string `json:"identityId,omitempty"`
}

// Credentials holds the per-call credentials of each platform. Only the
// member of the targeted platform needs to be set. Credentials are passed per
// call and never cached.
type Credentials struct {
	Meta     *MetaCredentials     `json:"meta,omitempty"`
	Google   *GoogleCredentials   `json:"google,omitempty"`
	LinkedIn *LinkedInCredentials `json:"linkedin,omitempty"`
	TikTok   *TikTokCredentials   `json:"tiktok,omitempty"`
}

// Has reports whether credentials for p are present.
func (c Credentials) Has(p Platform) bool {
	switch p {
	case PlatformMeta:
		return c.Meta != nil
	case PlatformGoogle:
		return c.Google != nil
	case PlatformLinkedIn:
		return c.LinkedIn != nil
	case PlatformTikTok:
		return c.TikTok != nil
	}
	return false
}
