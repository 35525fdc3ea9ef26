package tiktok

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const (
	statusDisable = "DISABLE"
	statusEnable  = "ENABLE"

	timeLayout = "2006-01-02 15:04:05"
)

// Created holds the ids made by CreateCampaign.
type Created struct {
	ImageID    string
	VideoID    string
	CampaignID string
	AdGroupID  string
	AdIDs      []string
}

// Client talks to the TikTok Business API on behalf of one advertiser.
type Client struct {
	caller      *remote.Caller
	creds       domain.TikTokCredentials
	transformer Transformer
}

// NewClient builds a client for creds. httpClient may be nil.
func NewClient(cfg configs.TikTok, httpClient *http.Client, creds domain.TikTokCredentials, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient(cfg.Timeout)
	}
	base := strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion
	return &Client{
		caller: remote.New(domain.PlatformTikTok, base,
			remote.WithHTTPClient(httpClient),
			remote.WithHeader("Access-Token", creds.AccessToken),
			remote.WithErrorDecoder(decodeError),
			remote.WithLogger(logger),
		),
		creds: creds,
	}
}

// envelope wraps every TikTok response, including rejections sent with a
// 200 status.
type envelope struct {
	Code      int             `json:"code"`
	Message   string          `json:"message"`
	RequestID string          `json:"request_id"`
	Data      json.RawMessage `json:"data"`
}

func decodeError(_ int, body []byte) *domain.RemoteError {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil || env.Code == 0 {
		return nil
	}
	return &domain.RemoteError{Code: strconv.Itoa(env.Code), Message: env.Message}
}

// call sends one request and decodes the data member of the envelope into
// out. A non-zero code is a rejection.
func (c *Client) call(ctx context.Context, req remote.Request, out any) error {
	var env envelope
	if _, err := c.caller.Do(ctx, req, &env); err != nil {
		return err
	}
	if env.Code != 0 {
		msg := env.Message
		if env.RequestID != "" {
			msg += " (request_id=" + env.RequestID + ")"
		}
		return c.caller.RemoteError(req.Step, strconv.Itoa(env.Code), msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("tiktok %s decode data: %w", req.Step, err)
		}
	}
	return nil
}

func (c *Client) post(ctx context.Context, endpoint, step string, body, out any) error {
	return c.call(ctx, remote.Request{Method: http.MethodPost, Path: endpoint, Step: step, Body: body}, out)
}

type adGroupRequest struct {
	AdvertiserID      string   `json:"advertiser_id"`
	CampaignID        string   `json:"campaign_id"`
	AdGroupName       string   `json:"adgroup_name"`
	PromotionType     string   `json:"promotion_type"`
	PlacementType     string   `json:"placement_type"`
	Placements        []string `json:"placements,omitempty"`
	BudgetMode        string   `json:"budget_mode"`
	Budget            float64  `json:"budget"`
	ScheduleType      string   `json:"schedule_type"`
	ScheduleStartTime string   `json:"schedule_start_time"`
	ScheduleEndTime   string   `json:"schedule_end_time"`
	OptimizationGoal  string   `json:"optimization_goal"`
	BillingEvent      string   `json:"billing_event"`
	BidType           string   `json:"bid_type"`
	BidPrice          float64  `json:"bid_price,omitempty"`
	Pacing            string   `json:"pacing"`
	OperationStatus   string   `json:"operation_status"`
	Targeting
}

type adCreative struct {
	AdName         string   `json:"ad_name"`
	AdFormat       string   `json:"ad_format"`
	AdText         string   `json:"ad_text"`
	CallToAction   string   `json:"call_to_action"`
	LandingPageURL string   `json:"landing_page_url"`
	ImageIDs       []string `json:"image_ids,omitempty"`
	VideoID        string   `json:"video_id,omitempty"`
	DisplayName    string   `json:"display_name,omitempty"`
	IdentityID     string   `json:"identity_id,omitempty"`
	IdentityType   string   `json:"identity_type,omitempty"`
}

// CreateCampaign uploads the media first, then runs campaign -> ad group ->
// ad. Every object is created disabled. A failing step returns
// *domain.CreationError listing what was already created; nothing is rolled
// back.
func (c *Client) CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error) {
	trail := remote.NewTrail(domain.PlatformTikTok)
	out := &Created{}
	var err error

	if video, ok := data.Creative.FirstMedia(domain.MediaVideo); ok {
		if out.VideoID, err = c.uploadVideo(ctx, video.URL); err != nil {
			return nil, trail.Fail("video", err)
		}
		trail.Add("video", out.VideoID)
	}
	if image, ok := data.Creative.FirstMedia(domain.MediaImage); ok {
		if out.ImageID, err = c.uploadImage(ctx, image.URL); err != nil {
			return nil, trail.Fail("image", err)
		}
	}

	var camp struct {
		CampaignID string `json:"campaign_id"`
	}
	if err = c.post(ctx, "campaign/create/", "campaign", map[string]any{
		"advertiser_id":    c.creds.AdvertiserID,
		"campaign_name":    data.Name,
		"objective_type":   mapping.TikTokObjective(data.Objective),
		"budget_mode":      "BUDGET_MODE_INFINITE",
		"operation_status": statusDisable,
	}, &camp); err != nil {
		return nil, trail.Fail("campaign", err)
	}
	out.CampaignID = camp.CampaignID
	trail.Add("campaign", out.CampaignID)

	goal, billing := mapping.TikTokOptimization(data.Objective)
	group := adGroupRequest{
		AdvertiserID:      c.creds.AdvertiserID,
		CampaignID:        out.CampaignID,
		AdGroupName:       data.Name + " - Ad Group",
		PromotionType:     "WEBSITE",
		PlacementType:     "PLACEMENT_TYPE_AUTOMATIC",
		BudgetMode:        "BUDGET_MODE_DAY",
		Budget:            Amount(data.Budget.Amount),
		ScheduleType:      "SCHEDULE_START_END",
		ScheduleStartTime: data.Schedule.StartDate.UTC().Format(timeLayout),
		ScheduleEndTime:   data.Schedule.EndDate.UTC().Format(timeLayout),
		OptimizationGoal:  goal,
		BillingEvent:      billing,
		BidType:           "BID_TYPE_NO_BID",
		Pacing:            "PACING_MODE_SMOOTH",
		OperationStatus:   statusDisable,
		Targeting:         c.transformer.Transform(data.Targeting),
	}
	if data.Budget.Type == domain.BudgetLifetime {
		group.BudgetMode = "BUDGET_MODE_TOTAL"
	}
	if b := data.Bidding; b != nil && b.BidCap != nil {
		group.BidType = "BID_TYPE_CUSTOM"
		group.BidPrice = Amount(*b.BidCap)
	}
	if ext := data.Targeting.TikTok; ext != nil && len(ext.Placements) > 0 {
		group.PlacementType = "PLACEMENT_TYPE_NORMAL"
		for _, p := range ext.Placements {
			group.Placements = append(group.Placements, strings.ToUpper(p))
		}
	}

	var ag struct {
		AdGroupID string `json:"adgroup_id"`
	}
	if err = c.post(ctx, "adgroup/create/", "adgroup", group, &ag); err != nil {
		return nil, trail.Fail("adgroup", err)
	}
	out.AdGroupID = ag.AdGroupID
	trail.Add("adgroup", out.AdGroupID)

	var ad struct {
		AdIDs []string `json:"ad_ids"`
	}
	if err = c.post(ctx, "ad/create/", "ad", map[string]any{
		"advertiser_id":    c.creds.AdvertiserID,
		"adgroup_id":       out.AdGroupID,
		"operation_status": statusDisable,
		"creatives":        []adCreative{c.creative(data, out)},
	}, &ad); err != nil {
		return nil, trail.Fail("ad", err)
	}
	out.AdIDs = ad.AdIDs
	return out, nil
}

func (c *Client) creative(data domain.UnifiedCampaignData, media *Created) adCreative {
	cr := adCreative{
		AdName:         data.Name + " - Ad",
		AdText:         AdText(data.Creative),
		CallToAction:   mapping.TikTokCallToAction(data.Creative.CallToAction),
		LandingPageURL: data.Creative.DestinationURL,
	}
	if media.VideoID != "" {
		cr.AdFormat = "SINGLE_VIDEO"
		cr.VideoID = media.VideoID
		if media.ImageID != "" {
			// cover image
			cr.ImageIDs = []string{media.ImageID}
		}
	} else {
		cr.AdFormat = "SINGLE_IMAGE"
		cr.ImageIDs = []string{media.ImageID}
	}
	if c.creds.IdentityID != "" {
		cr.IdentityID = c.creds.IdentityID
		cr.IdentityType = "CUSTOMIZED_USER"
	} else {
		cr.DisplayName = data.Name
		if ext := data.Targeting.TikTok; ext != nil && ext.DisplayName != "" {
			cr.DisplayName = ext.DisplayName
		}
	}
	return cr
}

func (c *Client) uploadImage(ctx context.Context, imageURL string) (string, error) {
	var resp struct {
		ImageID string `json:"image_id"`
	}
	if err := c.post(ctx, "file/image/ad/upload/", "image", map[string]string{
		"advertiser_id": c.creds.AdvertiserID,
		"upload_type":   "UPLOAD_BY_URL",
		"image_url":     imageURL,
		"file_name":     fileName(imageURL),
	}, &resp); err != nil {
		return "", err
	}
	return resp.ImageID, nil
}

func (c *Client) uploadVideo(ctx context.Context, videoURL string) (string, error) {
	// data is a list of uploaded videos.
	var resp []struct {
		VideoID string `json:"video_id"`
	}
	if err := c.post(ctx, "file/video/ad/upload/", "video", map[string]string{
		"advertiser_id": c.creds.AdvertiserID,
		"upload_type":   "UPLOAD_BY_URL",
		"video_url":     videoURL,
		"file_name":     fileName(videoURL),
	}, &resp); err != nil {
		return "", err
	}
	if len(resp) == 0 || resp[0].VideoID == "" {
		return "", c.caller.RemoteError("video", "", "video upload returned no id")
	}
	return resp[0].VideoID, nil
}

// UpdateStatus switches a campaign between ENABLE and DISABLE.
func (c *Client) UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	s := statusDisable
	if status == domain.StatusActive {
		s = statusEnable
	}
	return c.post(ctx, "campaign/status/update/", "status", map[string]any{
		"advertiser_id":    c.creds.AdvertiserID,
		"campaign_ids":     []string{campaignID},
		"operation_status": s,
	}, nil)
}

type reportRow struct {
	Metrics struct {
		Spend       string `json:"spend"`
		Impressions string `json:"impressions"`
		Clicks      string `json:"clicks"`
		Reach       string `json:"reach"`
		CTR         string `json:"ctr"`
		CPC         string `json:"cpc"`
		CPM         string `json:"cpm"`
	} `json:"metrics"`
}

// Insights reads a basic campaign report. Without a period the campaign
// lifetime is queried.
func (c *Client) Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	filter, _ := json.Marshal([]map[string]string{{
		"field_name":   "campaign_ids",
		"filter_type":  "IN",
		"filter_value": jsonList(campaignID),
	}})
	q := url.Values{
		"advertiser_id": {c.creds.AdvertiserID},
		"report_type":   {"BASIC"},
		"data_level":    {"AUCTION_CAMPAIGN"},
		"dimensions":    {`["campaign_id"]`},
		"metrics":       {`["spend","impressions","clicks","reach","ctr","cpc","cpm"]`},
		"filtering":     {string(filter)},
	}
	if !period.From.IsZero() && !period.To.IsZero() {
		q.Set("start_date", period.From.Format("2006-01-02"))
		q.Set("end_date", period.To.Format("2006-01-02"))
	} else {
		q.Set("query_lifetime", "true")
	}

	var resp struct {
		List []reportRow `json:"list"`
	}
	if err := c.call(ctx, remote.Request{Path: "report/integrated/get/", Query: q, Step: "insights"}, &resp); err != nil {
		return nil, err
	}
	out := &domain.CampaignInsights{Platform: domain.PlatformTikTok, CampaignID: campaignID, From: period.From, To: period.To}
	for _, row := range resp.List {
		out.Impressions += parseInt(row.Metrics.Impressions)
		out.Clicks += parseInt(row.Metrics.Clicks)
		out.Reach += parseInt(row.Metrics.Reach)
		out.Spend += parseFloat(row.Metrics.Spend)
		if len(resp.List) == 1 {
			out.CTR = parseFloat(row.Metrics.CTR)
			out.CPC = parseFloat(row.Metrics.CPC)
			out.CPM = parseFloat(row.Metrics.CPM)
		}
	}
	out.Derive()
	return out, nil
}

// Ping reads the advertiser; it checks the token and advertiser access.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, remote.Request{
		Path:  "advertiser/info/",
		Query: url.Values{"advertiser_ids": {jsonList(c.creds.AdvertiserID)}},
		Step:  "probe",
	}, nil)
}

// jsonList encodes ids as the JSON array string TikTok expects in list
// parameters.
func jsonList(ids ...string) string {
	raw, _ := json.Marshal(ids)
	return string(raw)
}

// AdText is the single text line of a TikTok ad: headline and primary text
// joined by a space.
func AdText(c domain.Creative) string {
	return strings.TrimSpace(strings.TrimSpace(c.Headline) + " " + strings.TrimSpace(c.PrimaryText))
}

// Amount rounds a major-unit amount to cents, half away from zero. TikTok
// takes budgets in currency units.
func Amount(v float64) float64 {
	return math.Round(v*100) / 100
}

func fileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Base(u.Path)
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
