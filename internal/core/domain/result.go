package domain

import "time"

// RemoteObject is an object created on a platform, identified by an opaque id.
type RemoteObject struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// ResultError is the error half of PlatformCampaignResult. Name is one of
// ValidationError, ConnectionError, RemoteRejection or UnknownError.
type ResultError struct {
	Name    string   `json:"name"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// PlatformCampaignResult is the uniform outcome of one distribution to one
// platform. It is the only structure callers outside the core observe.
type PlatformCampaignResult struct {
	Platform   Platform       `json:"platform"`
	Success    bool           `json:"success"`
	CampaignID string         `json:"campaignId,omitempty"`
	AdSetID    string         `json:"adSetId,omitempty"`
	AdGroupID  string         `json:"adGroupId,omitempty"`
	CreativeID string         `json:"creativeId,omitempty"`
	AdID       string         `json:"adId,omitempty"`
	AdIDs      []string       `json:"adIds,omitempty"`
	State      AttemptState   `json:"state"`
	Warnings   []string       `json:"warnings,omitempty"`
	Orphans    []RemoteObject `json:"orphans,omitempty"`
	Error      *ResultError   `json:"error,omitempty"`
}

// CampaignStatus is the status a caller may switch a campaign to.
type CampaignStatus string

const (
	StatusActive CampaignStatus = "active"
	StatusPaused CampaignStatus = "paused"
)

// Valid reports whether s is a supported status.
func (s CampaignStatus) Valid() bool {
	return s == StatusActive || s == StatusPaused
}

// DateRange bounds an insights query. Zero values let the platform default.
type DateRange struct {
	From time.Time
	To   time.Time
}

// CampaignInsights are basic delivery metrics read back from a platform.
// Spend is in major currency units.
type CampaignInsights struct {
	Platform    Platform  `json:"platform"`
	CampaignID  string    `json:"campaignId"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Reach       int64     `json:"reach"`
	Spend       float64   `json:"spend"`
	CTR         float64   `json:"ctr"`
	CPC         float64   `json:"cpc"`
	CPM         float64   `json:"cpm"`
	From        time.Time `json:"from,omitzero"`
	To          time.Time `json:"to,omitzero"`
}

// Derive fills CTR, CPC and CPM from the raw counters when the platform does
// not report them.
func (i *CampaignInsights) Derive() {
	if i.CTR == 0 && i.Impressions > 0 {
		i.CTR = float64(i.Clicks) / float64(i.Impressions) * 100
	}
	if i.CPC == 0 && i.Clicks > 0 {
		i.CPC = i.Spend / float64(i.Clicks)
	}
	if i.CPM == 0 && i.Impressions > 0 {
		i.CPM = i.Spend / float64(i.Impressions) * 1000
	}
}

// ReachEstimate is an audience size range.
type ReachEstimate struct {
	Platform Platform `json:"platform"`
	Lower    int64    `json:"lower"`
	Upper    int64    `json:"upper"`
}
