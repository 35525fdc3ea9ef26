package meta

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const (
	statusPaused = "PAUSED"
	statusActive = "ACTIVE"
)

// Created holds the ids of every object made by CreateCampaign.
type Created struct {
	CampaignID string
	AdSetID    string
	CreativeID string
	AdID       string
	ImageHash  string
	VideoID    string
}

// Client talks to the Graph API on behalf of one ad account.
type Client struct {
	caller      *remote.Caller
	creds       domain.MetaCredentials
	transformer Transformer
}

// NewClient builds a client for creds. httpClient may be nil.
func NewClient(cfg configs.Meta, httpClient *http.Client, creds domain.MetaCredentials, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient(cfg.Timeout)
	}
	base := strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion
	return &Client{
		caller: remote.New(domain.PlatformMeta, base,
			remote.WithHTTPClient(httpClient),
			remote.WithBearer(creds.AccessToken),
			remote.WithErrorDecoder(decodeError),
			remote.WithLogger(logger),
		),
		creds: creds,
	}
}

// graphError is the Graph API error envelope.
type graphError struct {
	Error *struct {
		Message     string `json:"message"`
		Type        string `json:"type"`
		Code        int    `json:"code"`
		SubCode     int    `json:"error_subcode"`
		UserTitle   string `json:"error_user_title"`
		UserMessage string `json:"error_user_msg"`
		TraceID     string `json:"fbtrace_id"`
	} `json:"error"`
}

func decodeError(_ int, body []byte) *domain.RemoteError {
	var env graphError
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return nil
	}
	msg := env.Error.Message
	if env.Error.UserMessage != "" {
		msg = env.Error.UserMessage
		if env.Error.UserTitle != "" {
			msg = env.Error.UserTitle + ": " + msg
		}
	}
	code := strconv.Itoa(env.Error.Code)
	if env.Error.SubCode != 0 {
		code += "/" + strconv.Itoa(env.Error.SubCode)
	}
	return &domain.RemoteError{Code: code, Message: msg}
}

func (c *Client) account() string {
	return "act_" + strings.TrimPrefix(c.creds.AdAccountID, "act_")
}

type idResponse struct {
	ID string `json:"id"`
}

type campaignRequest struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

type promotedObject struct {
	PageID  string `json:"page_id,omitempty"`
	PixelID string `json:"pixel_id,omitempty"`
}

type adSetRequest struct {
	Name             string          `json:"name"`
	CampaignID       string          `json:"campaign_id"`
	DailyBudget      int64           `json:"daily_budget,omitempty"`
	LifetimeBudget   int64           `json:"lifetime_budget,omitempty"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	BillingEvent     string          `json:"billing_event"`
	OptimizationGoal string          `json:"optimization_goal"`
	BidStrategy      string          `json:"bid_strategy,omitempty"`
	BidAmount        int64           `json:"bid_amount,omitempty"`
	Targeting        Targeting       `json:"targeting"`
	PromotedObject   *promotedObject `json:"promoted_object,omitempty"`
	Status           string          `json:"status"`
}

type callToAction struct {
	Type  string `json:"type"`
	Value struct {
		Link string `json:"link"`
	} `json:"value"`
}

type linkData struct {
	ImageHash    string       `json:"image_hash,omitempty"`
	Link         string       `json:"link"`
	Message      string       `json:"message,omitempty"`
	Name         string       `json:"name,omitempty"`
	Description  string       `json:"description,omitempty"`
	CallToAction callToAction `json:"call_to_action"`
}

type videoData struct {
	VideoID      string       `json:"video_id"`
	ImageURL     string       `json:"image_url,omitempty"`
	Title        string       `json:"title,omitempty"`
	Message      string       `json:"message,omitempty"`
	LinkDesc     string       `json:"link_description,omitempty"`
	CallToAction callToAction `json:"call_to_action"`
}

type objectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *linkData  `json:"link_data,omitempty"`
	VideoData *videoData `json:"video_data,omitempty"`
}

type creativeRequest struct {
	Name            string          `json:"name"`
	ObjectStorySpec objectStorySpec `json:"object_story_spec"`
}

type adRequest struct {
	Name     string `json:"name"`
	AdSetID  string `json:"adset_id"`
	Creative struct {
		CreativeID string `json:"creative_id"`
	} `json:"creative"`
	Status string `json:"status"`
}

// CreateCampaign runs campaign -> ad set -> media -> creative -> ad. Every
// object is created paused. A failing step returns *domain.CreationError
// listing what was already created; nothing is rolled back.
func (c *Client) CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error) {
	trail := remote.NewTrail(domain.PlatformMeta)
	out := &Created{}

	var camp idResponse
	_, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/campaigns",
		Step:   "campaign",
		Body: campaignRequest{
			Name:                data.Name,
			Objective:           mapping.MetaObjective(data.Objective),
			Status:              statusPaused,
			SpecialAdCategories: []string{},
		},
	}, &camp)
	if err != nil {
		return nil, trail.Fail("campaign", err)
	}
	out.CampaignID = camp.ID
	trail.Add("campaign", camp.ID)

	adSet := adSetRequest{
		Name:             data.Name + " - Ad Set",
		CampaignID:       camp.ID,
		StartTime:        data.Schedule.StartDate.UTC().Format(time.RFC3339),
		EndTime:          data.Schedule.EndDate.UTC().Format(time.RFC3339),
		BillingEvent:     "IMPRESSIONS",
		OptimizationGoal: mapping.MetaOptimizationGoal(data.Objective),
		Targeting:        c.transformer.Transform(data.Targeting),
		Status:           statusPaused,
	}
	if data.Budget.Type == domain.BudgetLifetime {
		adSet.LifetimeBudget = Cents(data.Budget.Amount)
	} else {
		adSet.DailyBudget = Cents(data.Budget.Amount)
	}
	adSet.BidStrategy, adSet.BidAmount = bidStrategy(data.Bidding)
	if data.Objective == domain.ObjectiveConversions && c.creds.PixelID != "" {
		adSet.PromotedObject = &promotedObject{PixelID: c.creds.PixelID}
	} else if data.Objective == domain.ObjectiveEngagement && c.creds.PageID != "" {
		adSet.PromotedObject = &promotedObject{PageID: c.creds.PageID}
	}

	var set idResponse
	if _, err = c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/adsets",
		Step:   "adset",
		Body:   adSet,
	}, &set); err != nil {
		return nil, trail.Fail("adset", err)
	}
	out.AdSetID = set.ID
	trail.Add("adset", set.ID)

	if video, ok := data.Creative.FirstMedia(domain.MediaVideo); ok {
		if out.VideoID, err = c.uploadVideo(ctx, video.URL); err != nil {
			return nil, trail.Fail("video", err)
		}
		trail.Add("video", out.VideoID)
	} else if image, ok := data.Creative.FirstMedia(domain.MediaImage); ok {
		if out.ImageHash, err = c.uploadImage(ctx, image.URL); err != nil {
			return nil, trail.Fail("image", err)
		}
	}

	var cr idResponse
	if _, err = c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/adcreatives",
		Step:   "creative",
		Body:   c.creative(data, out),
	}, &cr); err != nil {
		return nil, trail.Fail("creative", err)
	}
	out.CreativeID = cr.ID
	trail.Add("creative", cr.ID)

	ad := adRequest{Name: data.Name + " - Ad", AdSetID: set.ID, Status: statusPaused}
	ad.Creative.CreativeID = cr.ID
	var adResp idResponse
	if _, err = c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/ads",
		Step:   "ad",
		Body:   ad,
	}, &adResp); err != nil {
		return nil, trail.Fail("ad", err)
	}
	out.AdID = adResp.ID
	return out, nil
}

func (c *Client) creative(data domain.UnifiedCampaignData, media *Created) creativeRequest {
	cta := callToAction{Type: mapping.MetaCallToAction(data.Creative.CallToAction)}
	cta.Value.Link = data.Creative.DestinationURL

	spec := objectStorySpec{PageID: c.creds.PageID}
	if media.VideoID != "" {
		thumb, _ := data.Creative.FirstMedia(domain.MediaImage)
		spec.VideoData = &videoData{
			VideoID:      media.VideoID,
			ImageURL:     thumb.URL,
			Title:        data.Creative.Headline,
			Message:      data.Creative.PrimaryText,
			LinkDesc:     data.Creative.Description,
			CallToAction: cta,
		}
	} else {
		spec.LinkData = &linkData{
			ImageHash:    media.ImageHash,
			Link:         data.Creative.DestinationURL,
			Message:      data.Creative.PrimaryText,
			Name:         data.Creative.Headline,
			Description:  data.Creative.Description,
			CallToAction: cta,
		}
	}
	return creativeRequest{Name: data.Name + " - Creative", ObjectStorySpec: spec}
}

func (c *Client) uploadImage(ctx context.Context, imageURL string) (string, error) {
	raw, _, err := c.caller.Fetch(ctx, imageURL)
	if err != nil {
		return "", err
	}
	name := uuid.NewString() + path.Ext(strings.SplitN(imageURL, "?", 2)[0])

	var resp struct {
		Images map[string]struct {
			Hash string `json:"hash"`
		} `json:"images"`
	}
	if _, err = c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/adimages",
		Step:   "image",
		Body:   map[string]string{"bytes": base64.StdEncoding.EncodeToString(raw), "name": name},
	}, &resp); err != nil {
		return "", err
	}
	for _, img := range resp.Images {
		if img.Hash != "" {
			return img.Hash, nil
		}
	}
	return "", fmt.Errorf("meta image upload returned no hash")
}

func (c *Client) uploadVideo(ctx context.Context, videoURL string) (string, error) {
	var resp idResponse
	if _, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.account() + "/advideos",
		Step:   "video",
		Body:   map[string]string{"file_url": videoURL},
	}, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// UpdateStatus switches a campaign between ACTIVE and PAUSED.
func (c *Client) UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	s := statusPaused
	if status == domain.StatusActive {
		s = statusActive
	}
	var resp struct {
		Success bool `json:"success"`
	}
	if _, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   campaignID,
		Step:   "status",
		Body:   map[string]string{"status": s},
	}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return c.caller.RemoteError("status", "", "status update not acknowledged")
	}
	return nil
}

type insightsRow struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Reach       string `json:"reach"`
	Spend       string `json:"spend"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

// Insights reads lifetime or ranged metrics of a campaign.
func (c *Client) Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	q := url.Values{"fields": {"impressions,clicks,reach,spend,ctr,cpc,cpm"}}
	if !period.From.IsZero() && !period.To.IsZero() {
		tr, _ := json.Marshal(map[string]string{
			"since": period.From.Format(time.DateOnly),
			"until": period.To.Format(time.DateOnly),
		})
		q.Set("time_range", string(tr))
	} else {
		q.Set("date_preset", "maximum")
	}

	var resp struct {
		Data []insightsRow `json:"data"`
	}
	if _, err := c.caller.Do(ctx, remote.Request{
		Path:  campaignID + "/insights",
		Query: q,
		Step:  "insights",
	}, &resp); err != nil {
		return nil, err
	}

	out := &domain.CampaignInsights{Platform: domain.PlatformMeta, CampaignID: campaignID, From: period.From, To: period.To}
	for _, row := range resp.Data {
		out.Impressions += parseInt(row.Impressions)
		out.Clicks += parseInt(row.Clicks)
		out.Reach += parseInt(row.Reach)
		out.Spend += parseFloat(row.Spend)
		if len(resp.Data) == 1 {
			out.CTR = parseFloat(row.CTR)
			out.CPC = parseFloat(row.CPC)
			out.CPM = parseFloat(row.CPM)
		}
	}
	out.Derive()
	return out, nil
}

// ReachEstimate sizes the audience of a targeting spec.
func (c *Client) ReachEstimate(ctx context.Context, t Targeting) (*domain.ReachEstimate, error) {
	spec, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("meta reach estimate: %w", err)
	}
	var resp struct {
		Data struct {
			Lower int64 `json:"users_lower_bound"`
			Upper int64 `json:"users_upper_bound"`
		} `json:"data"`
	}
	if _, err = c.caller.Do(ctx, remote.Request{
		Path:  c.account() + "/reachestimate",
		Query: url.Values{"targeting_spec": {string(spec)}},
		Step:  "reach",
	}, &resp); err != nil {
		return nil, err
	}
	return &domain.ReachEstimate{Platform: domain.PlatformMeta, Lower: resp.Data.Lower, Upper: resp.Data.Upper}, nil
}

// Cents converts a major-unit amount to the integer minor unit the Graph
// API expects, rounding half away from zero.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func bidStrategy(b *domain.Bidding) (string, int64) {
	if b == nil {
		return "LOWEST_COST_WITHOUT_CAP", 0
	}
	switch b.Strategy {
	case domain.BidCostCap, domain.BidTargetCPA:
		if b.BidCap != nil {
			return "COST_CAP", Cents(*b.BidCap)
		}
	case domain.BidCap, domain.BidManualCPC:
		if b.BidCap != nil {
			return "LOWEST_COST_WITH_BID_CAP", Cents(*b.BidCap)
		}
	}
	return "LOWEST_COST_WITHOUT_CAP", 0
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
