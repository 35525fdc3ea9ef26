package configs

import "time"

// Meta configures the Graph API client. Per-advertiser credentials are not
// configuration; they arrive with every request.
type Meta struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
	APIVersion string        `env:"API_VERSION" envDefault:"v19.0"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Google configures the Google Ads REST client. DeveloperToken is used when
// the caller does not send one with its credentials. ClientID and
// ClientSecret enable refreshing of caller-supplied refresh tokens.
type Google struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"https://googleads.googleapis.com"`
	APIVersion     string        `env:"API_VERSION" envDefault:"v16"`
	DeveloperToken string        `env:"DEVELOPER_TOKEN"`
	ClientID       string        `env:"CLIENT_ID"`
	ClientSecret   string        `env:"CLIENT_SECRET"`
	TokenURL       string        `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// LinkedIn configures the Marketing API client. APIVersion is sent as the
// LinkedIn-Version header (YYYYMM).
type LinkedIn struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://api.linkedin.com"`
	APIVersion string        `env:"API_VERSION" envDefault:"202401"`
	Currency   string        `env:"CURRENCY" envDefault:"USD"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// TikTok configures the Business API client.
type TikTok struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://business-api.tiktok.com/open_api"`
	APIVersion string        `env:"API_VERSION" envDefault:"v1.3"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
