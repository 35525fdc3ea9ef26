package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/oauth2"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const (
	statusPaused  = "PAUSED"
	statusEnabled = "ENABLED"
)

// Created holds the resource ids made by CreateCampaign.
type Created struct {
	BudgetID   string
	CampaignID string
	AdGroupID  string
	AssetIDs   []string
	AdIDs      []string
}

// Client talks to the Google Ads REST API on behalf of one customer.
type Client struct {
	caller      *remote.Caller
	fetcher     *remote.Caller
	customerID  string
	transformer Transformer
}

// NewClient builds a client for creds. The bearer token is attached by an
// oauth2 transport wrapping httpClient, which may be nil. When creds carry a
// refresh token and cfg has an OAuth client, expired tokens are refreshed.
func NewClient(cfg configs.Google, httpClient *http.Client, creds domain.GoogleCredentials, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient(cfg.Timeout)
	}
	devToken := creds.DeveloperToken
	if devToken == "" {
		devToken = cfg.DeveloperToken
	}
	base := strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion
	return &Client{
		caller: remote.New(domain.PlatformGoogle, base,
			remote.WithHTTPClient(authClient(cfg, httpClient, creds)),
			remote.WithHeader("developer-token", devToken),
			remote.WithHeader("login-customer-id", CustomerID(creds.LoginCustomerID)),
			remote.WithErrorDecoder(decodeError),
			remote.WithLogger(logger),
		),
		// Media is downloaded without the Google token.
		fetcher:    remote.New(domain.PlatformGoogle, "", remote.WithHTTPClient(httpClient), remote.WithLogger(logger)),
		customerID: CustomerID(creds.CustomerID),
	}
}

func authClient(cfg configs.Google, base *http.Client, creds domain.GoogleCredentials) *http.Client {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	token := &oauth2.Token{AccessToken: creds.AccessToken, TokenType: "Bearer"}

	var src oauth2.TokenSource
	if creds.RefreshToken != "" && cfg.ClientID != "" {
		token.RefreshToken = creds.RefreshToken
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL, AuthStyle: oauth2.AuthStyleInParams},
		}
		src = oc.TokenSource(ctx, token)
	} else {
		src = oauth2.StaticTokenSource(token)
	}
	c := oauth2.NewClient(ctx, src)
	c.Timeout = base.Timeout
	return c
}

// CustomerID strips the dashes of the "123-456-7890" display form.
func CustomerID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), "-", "")
}

type apiError struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Errors []struct {
				ErrorCode map[string]string `json:"errorCode"`
				Message   string            `json:"message"`
			} `json:"errors"`
		} `json:"details"`
	} `json:"error"`
}

func decodeError(_ int, body []byte) *domain.RemoteError {
	var env apiError
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		return nil
	}
	out := &domain.RemoteError{Code: env.Error.Status, Message: env.Error.Message}
	for _, d := range env.Error.Details {
		for _, e := range d.Errors {
			for kind, code := range e.ErrorCode {
				out.Code = kind + "." + code
			}
			if e.Message != "" {
				out.Message = e.Message
			}
			return out
		}
	}
	return out
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

// mutate creates operations under resource and returns their resource names.
func (c *Client) mutate(ctx context.Context, resource, step string, creates []any) ([]string, error) {
	ops := make([]map[string]any, 0, len(creates))
	for _, cr := range creates {
		ops = append(ops, map[string]any{"create": cr})
	}
	var resp mutateResponse
	if _, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "customers/" + c.customerID + "/" + resource + ":mutate",
		Step:   step,
		Body:   map[string]any{"operations": ops},
	}, &resp); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(resp.Results))
	for _, r := range resp.Results {
		names = append(names, r.ResourceName)
	}
	if len(names) == 0 {
		return nil, c.caller.RemoteError(step, "", "mutate returned no resource")
	}
	return names, nil
}

// ResourceID returns the trailing id of a resource name. Ad group ads are
// keyed "adGroupId~adId"; the ad id is returned.
func ResourceID(resourceName string) string {
	id := resourceName[strings.LastIndex(resourceName, "/")+1:]
	if i := strings.LastIndex(id, "~"); i >= 0 {
		id = id[i+1:]
	}
	return id
}

func (c *Client) resource(kind, id string) string {
	return "customers/" + c.customerID + "/" + kind + "/" + id
}

// CreateCampaign runs budget -> campaign -> campaign criteria -> ad group ->
// ad group criteria -> ad. Search campaigns get one responsive search ad.
// Display campaigns first upload a landscape and a square image asset and
// get one responsive display ad. Campaign and ad group are created paused.
// A failing step returns *domain.CreationError listing what was already
// created; nothing is rolled back.
func (c *Client) CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error) {
	trail := remote.NewTrail(domain.PlatformGoogle)
	out := &Created{}
	t := c.transformer.Transform(data.Targeting)
	channel := Channel(data)

	names, err := c.mutate(ctx, "campaignBudgets", "budget", []any{map[string]any{
		"name":             fmt.Sprintf("%s budget %d", data.Name, time.Now().UnixNano()),
		"amountMicros":     strconv.FormatInt(Micros(data.DailyAmount()), 10),
		"deliveryMethod":   "STANDARD",
		"explicitlyShared": false,
	}})
	if err != nil {
		return nil, trail.Fail("budget", err)
	}
	out.BudgetID = ResourceID(names[0])
	trail.Add("budget", out.BudgetID)

	campaign := map[string]any{
		"name":                   data.Name,
		"status":                 statusPaused,
		"advertisingChannelType": channel,
		"campaignBudget":         names[0],
		"startDate":              data.Schedule.StartDate.UTC().Format(time.DateOnly),
		"endDate":                data.Schedule.EndDate.UTC().Format(time.DateOnly),
	}
	for k, v := range biddingFields(data.Bidding) {
		campaign[k] = v
	}
	if channel == "SEARCH" {
		campaign["networkSettings"] = map[string]bool{
			"targetGoogleSearch":  true,
			"targetSearchNetwork": true,
		}
	}
	if names, err = c.mutate(ctx, "campaigns", "campaign", []any{campaign}); err != nil {
		return nil, trail.Fail("campaign", err)
	}
	campaignRN := names[0]
	out.CampaignID = ResourceID(campaignRN)
	trail.Add("campaign", out.CampaignID)

	if crit := campaignCriteria(campaignRN, t); len(crit) > 0 {
		if _, err = c.mutate(ctx, "campaignCriteria", "campaign_criteria", crit); err != nil {
			return nil, trail.Fail("campaign_criteria", err)
		}
	}

	adGroupType := "SEARCH_STANDARD"
	if channel == "DISPLAY" {
		adGroupType = "DISPLAY_STANDARD"
	}
	if names, err = c.mutate(ctx, "adGroups", "ad_group", []any{map[string]any{
		"name":     data.Name + " - Ad Group",
		"campaign": campaignRN,
		"status":   statusPaused,
		"type":     adGroupType,
	}}); err != nil {
		return nil, trail.Fail("ad_group", err)
	}
	adGroupRN := names[0]
	out.AdGroupID = ResourceID(adGroupRN)
	trail.Add("ad_group", out.AdGroupID)

	if crit := c.adGroupCriteria(adGroupRN, t); len(crit) > 0 {
		if _, err = c.mutate(ctx, "adGroupCriteria", "ad_group_criteria", crit); err != nil {
			return nil, trail.Fail("ad_group_criteria", err)
		}
	}

	var ad map[string]any
	if channel == "DISPLAY" {
		images := data.Creative.MediaOf(domain.MediaImage)
		if len(images) < 2 {
			return nil, trail.Fail("asset", fmt.Errorf("google: display ads need a landscape and a square image (got %d images)", len(images)))
		}
		var assets [2]string
		for i, img := range images[:2] {
			if assets[i], err = c.uploadImage(ctx, data.Name, img.URL); err != nil {
				return nil, trail.Fail("asset", err)
			}
			out.AssetIDs = append(out.AssetIDs, ResourceID(assets[i]))
			trail.Add("asset", ResourceID(assets[i]))
		}
		ad = displayAd(data, assets[0], assets[1])
	} else {
		ad = searchAd(data)
	}

	if names, err = c.mutate(ctx, "adGroupAds", "ad", []any{adGroupAd(adGroupRN, ad)}); err != nil {
		return nil, trail.Fail("ad", err)
	}
	for _, rn := range names {
		out.AdIDs = append(out.AdIDs, ResourceID(rn))
	}
	return out, nil
}

func campaignCriteria(campaignRN string, t Targeting) []any {
	var out []any
	for _, g := range t.GeoTargets {
		out = append(out, map[string]any{"campaign": campaignRN, "location": map[string]string{"geoTargetConstant": g}})
	}
	for _, l := range t.Languages {
		out = append(out, map[string]any{"campaign": campaignRN, "language": map[string]string{"languageConstant": l}})
	}
	for _, k := range t.NegativeKeywords {
		out = append(out, map[string]any{"campaign": campaignRN, "negative": true, "keyword": k})
	}
	for _, d := range t.Devices {
		// Device criteria are bid modifiers; only the listed devices keep
		// their default weight.
		out = append(out, map[string]any{"campaign": campaignRN, "device": map[string]string{"type": d}, "bidModifier": 1.0})
	}
	return out
}

func (c *Client) adGroupCriteria(adGroupRN string, t Targeting) []any {
	var out []any
	for _, a := range t.AgeRanges {
		out = append(out, map[string]any{"adGroup": adGroupRN, "ageRange": map[string]string{"type": a}})
	}
	for _, g := range t.Genders {
		out = append(out, map[string]any{"adGroup": adGroupRN, "gender": map[string]string{"type": g}})
	}
	for _, k := range t.Keywords {
		out = append(out, map[string]any{"adGroup": adGroupRN, "keyword": k})
	}
	for _, i := range t.UserInterests {
		out = append(out, map[string]any{"adGroup": adGroupRN, "userInterest": map[string]string{"userInterestCategory": c.resource("userInterests", i)}})
	}
	for _, topic := range t.Topics {
		out = append(out, map[string]any{"adGroup": adGroupRN, "topic": map[string]string{"topicConstant": "topicConstants/" + topic}})
	}
	return out
}

type textAsset struct {
	Text string `json:"text"`
}

func texts(values ...string) []textAsset {
	var out []textAsset
	seen := make(map[string]struct{})
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, textAsset{Text: v})
	}
	return out
}

func adGroupAd(adGroupRN string, ad map[string]any) map[string]any {
	return map[string]any{"adGroup": adGroupRN, "status": statusPaused, "ad": ad}
}

// searchTexts returns the distinct headlines and descriptions of a
// responsive search ad. Primary text is used as a description when it fits.
func searchTexts(data domain.UnifiedCampaignData) (headlines, descriptions []textAsset) {
	h := []string{data.Creative.Headline}
	d := []string{data.Creative.Description}
	if utf8.RuneCountInString(data.Creative.PrimaryText) <= maxDescription {
		d = append(d, data.Creative.PrimaryText)
	}
	if ext := data.Targeting.Google; ext != nil {
		h = append(h, ext.AdditionalHeadlines...)
		d = append(d, ext.AdditionalDescriptions...)
	}
	return texts(h...), texts(d...)
}

func searchAd(data domain.UnifiedCampaignData) map[string]any {
	headlines, descriptions := searchTexts(data)
	return map[string]any{
		"finalUrls": []string{data.Creative.DestinationURL},
		"responsiveSearchAd": map[string]any{
			"headlines":    headlines,
			"descriptions": descriptions,
		},
	}
}

func displayAd(data domain.UnifiedCampaignData, landscapeRN, squareRN string) map[string]any {
	business := data.Name
	if ext := data.Targeting.Google; ext != nil && ext.BusinessName != "" {
		business = ext.BusinessName
	}
	description := data.Creative.Description
	if description == "" && utf8.RuneCountInString(data.Creative.PrimaryText) <= maxDescription {
		description = data.Creative.PrimaryText
	}
	return map[string]any{
		"finalUrls": []string{data.Creative.DestinationURL},
		"responsiveDisplayAd": map[string]any{
			"headlines":             texts(data.Creative.Headline),
			"longHeadline":          textAsset{Text: data.Creative.Headline},
			"descriptions":          texts(description),
			"businessName":          business,
			"callToActionText":      mapping.CallToActionLabel(data.Creative.CallToAction),
			"marketingImages":       []map[string]string{{"asset": landscapeRN}},
			"squareMarketingImages": []map[string]string{{"asset": squareRN}},
		},
	}
}

func (c *Client) uploadImage(ctx context.Context, name, imageURL string) (string, error) {
	raw, _, err := c.fetcher.Fetch(ctx, imageURL)
	if err != nil {
		return "", err
	}
	names, err := c.mutate(ctx, "assets", "asset", []any{map[string]any{
		"name": fmt.Sprintf("%s image %d", name, time.Now().UnixNano()),
		"type": "IMAGE",
		"imageAsset": map[string]string{
			"data": base64.StdEncoding.EncodeToString(raw),
		},
	}})
	if err != nil {
		return "", err
	}
	return names[0], nil
}

// UpdateStatus switches a campaign between ENABLED and PAUSED.
func (c *Client) UpdateStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	s := statusPaused
	if status == domain.StatusActive {
		s = statusEnabled
	}
	_, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "customers/" + c.customerID + "/campaigns:mutate",
		Step:   "status",
		Body: map[string]any{"operations": []map[string]any{{
			"update":     map[string]string{"resourceName": c.resource("campaigns", campaignID), "status": s},
			"updateMask": "status",
		}}},
	}, nil)
	return err
}

type searchRow struct {
	Metrics struct {
		Impressions string  `json:"impressions"`
		Clicks      string  `json:"clicks"`
		CostMicros  string  `json:"costMicros"`
		CTR         float64 `json:"ctr"`
		AverageCPC  float64 `json:"averageCpc"`
	} `json:"metrics"`
}

// Insights reads campaign metrics with a GAQL query. Without a period the
// whole campaign lifetime is reported.
func (c *Client) Insights(ctx context.Context, campaignID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	if _, err := strconv.ParseInt(campaignID, 10, 64); err != nil {
		return nil, fmt.Errorf("google insights: campaign id %q is not numeric", campaignID)
	}
	query := "SELECT metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.ctr, metrics.average_cpc " +
		"FROM campaign WHERE campaign.id = " + campaignID
	if !period.From.IsZero() && !period.To.IsZero() {
		query += fmt.Sprintf(" AND segments.date BETWEEN '%s' AND '%s'",
			period.From.Format(time.DateOnly), period.To.Format(time.DateOnly))
	}

	var resp struct {
		Results []searchRow `json:"results"`
	}
	if _, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   "customers/" + c.customerID + "/googleAds:search",
		Step:   "insights",
		Body:   map[string]string{"query": query},
	}, &resp); err != nil {
		return nil, err
	}

	out := &domain.CampaignInsights{Platform: domain.PlatformGoogle, CampaignID: campaignID, From: period.From, To: period.To}
	for _, row := range resp.Results {
		out.Impressions += parseInt(row.Metrics.Impressions)
		out.Clicks += parseInt(row.Metrics.Clicks)
		out.Spend += FromMicros(parseInt(row.Metrics.CostMicros))
		if len(resp.Results) == 1 {
			out.CTR = row.Metrics.CTR * 100
			out.CPC = FromMicros(int64(row.Metrics.AverageCPC))
		}
	}
	out.Derive()
	return out, nil
}

// Ping lists the customers reachable with the token; it checks the token
// and the developer token without touching the account.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.caller.Do(ctx, remote.Request{
		Path: "customers:listAccessibleCustomers",
		Step: "probe",
	}, nil)
	return err
}

// Micros converts a major-unit amount to Google's micro units.
func Micros(amount float64) int64 {
	return int64(math.Round(amount * 1_000_000))
}

// FromMicros converts micro units back to major units.
func FromMicros(m int64) float64 {
	return float64(m) / 1_000_000
}

// biddingFields returns the campaign's bidding strategy. Without bidding
// the campaign maximizes clicks, which Google models as targetSpend.
func biddingFields(b *domain.Bidding) map[string]any {
	if b == nil {
		return map[string]any{"targetSpend": map[string]any{}}
	}
	switch b.Strategy {
	case domain.BidTargetCPA:
		if b.BidCap != nil {
			return map[string]any{"targetCpa": map[string]string{"targetCpaMicros": strconv.FormatInt(Micros(*b.BidCap), 10)}}
		}
		return map[string]any{"maximizeConversions": map[string]any{}}
	case domain.BidMaximizeConversions:
		return map[string]any{"maximizeConversions": map[string]any{}}
	case domain.BidManualCPC:
		return map[string]any{"manualCpc": map[string]bool{"enhancedCpcEnabled": false}}
	case domain.BidCap, domain.BidCostCap:
		if b.BidCap != nil {
			return map[string]any{"targetSpend": map[string]string{"cpcBidCeilingMicros": strconv.FormatInt(Micros(*b.BidCap), 10)}}
		}
	}
	return map[string]any{"targetSpend": map[string]any{}}
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
