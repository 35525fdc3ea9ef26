package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ad-fanout/internal/adapter/remote"
	"ad-fanout/internal/config/configs"
	"ad-fanout/internal/core/domain"
	"ad-fanout/internal/core/mapping"
)

const (
	statusPaused = "PAUSED"
	statusActive = "ACTIVE"

	restliProtocol = "2.0.0"
)

// Created holds the ids made by CreateCampaign. PostURN is the dark post
// carrying the creative copy.
type Created struct {
	CampaignGroupID string
	CampaignID      string
	PostURN         string
	CreativeID      string
}

// Client talks to the LinkedIn Marketing API on behalf of one ad account.
type Client struct {
	caller      *remote.Caller
	creds       domain.LinkedInCredentials
	currency    string
	transformer Transformer
}

// NewClient builds a client for creds. httpClient may be nil.
func NewClient(cfg configs.LinkedIn, httpClient *http.Client, creds domain.LinkedInCredentials, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = remote.NewHTTPClient(cfg.Timeout)
	}
	currency := creds.Currency
	if currency == "" {
		currency = cfg.Currency
	}
	return &Client{
		caller: remote.New(domain.PlatformLinkedIn, strings.TrimRight(cfg.BaseURL, "/")+"/rest",
			remote.WithHTTPClient(httpClient),
			remote.WithBearer(creds.AccessToken),
			remote.WithHeader("LinkedIn-Version", cfg.APIVersion),
			remote.WithHeader("X-Restli-Protocol-Version", restliProtocol),
			remote.WithErrorDecoder(decodeError),
			remote.WithLogger(logger),
		),
		creds:    creds,
		currency: currency,
	}
}

type apiError struct {
	Status           int    `json:"status"`
	ServiceErrorCode int    `json:"serviceErrorCode"`
	Code             string `json:"code"`
	Message          string `json:"message"`
	ErrorDetails     *struct {
		InputErrors []struct {
			Description string `json:"description"`
			Input       struct {
				InputPath struct {
					FieldPath string `json:"fieldPath"`
				} `json:"inputPath"`
			} `json:"input"`
		} `json:"inputErrors"`
	} `json:"errorDetails"`
}

func decodeError(_ int, body []byte) *domain.RemoteError {
	var e apiError
	if err := json.Unmarshal(body, &e); err != nil || e.Message == "" {
		return nil
	}
	out := &domain.RemoteError{Code: e.Code, Message: e.Message}
	if out.Code == "" && e.ServiceErrorCode != 0 {
		out.Code = strconv.Itoa(e.ServiceErrorCode)
	}
	if e.ErrorDetails != nil {
		for _, in := range e.ErrorDetails.InputErrors {
			if in.Input.InputPath.FieldPath != "" {
				out.Message += fmt.Sprintf(" (%s: %s)", in.Input.InputPath.FieldPath, in.Description)
			}
		}
	}
	return out
}

func (c *Client) accountURN() string {
	return "urn:li:sponsoredAccount:" + AccountID(c.creds.AccountID)
}

func (c *Client) accountPath(rest string) string {
	return "adAccounts/" + AccountID(c.creds.AccountID) + "/" + rest
}

// AccountID accepts a bare id or a sponsoredAccount URN.
func AccountID(id string) string {
	return strings.TrimPrefix(strings.TrimSpace(id), "urn:li:sponsoredAccount:")
}

func (c *Client) orgURN() string {
	org := strings.TrimSpace(c.creds.OrganizationID)
	if strings.HasPrefix(org, "urn:li:") {
		return org
	}
	return "urn:li:organization:" + org
}

// create posts body and returns the entity id from the x-restli-id header.
func (c *Client) create(ctx context.Context, path, step string, body any) (string, error) {
	resp, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   path,
		Step:   step,
		Body:   body,
	}, nil)
	if err != nil {
		return "", err
	}
	id := resp.Header.Get("x-restli-id")
	if id == "" {
		id = resp.Header.Get("x-linkedin-id")
	}
	if id == "" {
		return "", c.caller.RemoteError(step, "", "response carries no x-restli-id")
	}
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	return id, nil
}

// EntityID returns the numeric tail of a sponsored entity URN.
func EntityID(urn string) string {
	return urn[strings.LastIndex(urn, ":")+1:]
}

type money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type runSchedule struct {
	Start int64 `json:"start"`
	End   int64 `json:"end,omitempty"`
}

type locale struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

type campaignGroupRequest struct {
	Account     string      `json:"account"`
	Name        string      `json:"name"`
	Status      string      `json:"status"`
	RunSchedule runSchedule `json:"runSchedule"`
}

type campaignRequest struct {
	Account                string      `json:"account"`
	CampaignGroup          string      `json:"campaignGroup"`
	Name                   string      `json:"name"`
	Type                   string      `json:"type"`
	CostType               string      `json:"costType"`
	ObjectiveType          string      `json:"objectiveType"`
	DailyBudget            *money      `json:"dailyBudget,omitempty"`
	TotalBudget            *money      `json:"totalBudget,omitempty"`
	UnitCost               *money      `json:"unitCost,omitempty"`
	RunSchedule            runSchedule `json:"runSchedule"`
	TargetingCriteria      Targeting   `json:"targetingCriteria"`
	Locale                 locale      `json:"locale"`
	OffsiteDeliveryEnabled bool        `json:"offsiteDeliveryEnabled"`
	PoliticalIntent        string      `json:"politicalIntent"`
	Status                 string      `json:"status"`
}

type postRequest struct {
	Author       string `json:"author"`
	Commentary   string `json:"commentary"`
	Visibility   string `json:"visibility"`
	Distribution struct {
		FeedDistribution               string   `json:"feedDistribution"`
		TargetEntities                 []string `json:"targetEntities"`
		ThirdPartyDistributionChannels []string `json:"thirdPartyDistributionChannels"`
	} `json:"distribution"`
	Content struct {
		Article struct {
			Source      string `json:"source"`
			Title       string `json:"title"`
			Description string `json:"description,omitempty"`
		} `json:"article"`
	} `json:"content"`
	ContentLandingPage       string `json:"contentLandingPage"`
	ContentCallToActionLabel string `json:"contentCallToActionLabel"`
	LifecycleState           string `json:"lifecycleState"`
	AdContext                struct {
		DscAdAccount string `json:"dscAdAccount"`
		DscStatus    string `json:"dscStatus"`
	} `json:"adContext"`
}

type creativeRequest struct {
	Content struct {
		Reference string `json:"reference"`
	} `json:"content"`
	Campaign       string `json:"campaign"`
	IntendedStatus string `json:"intendedStatus"`
}

// CreateCampaign runs campaign group -> campaign -> dark post -> creative.
// Group, campaign and creative are created paused. A failing step returns
// *domain.CreationError listing what was already created; nothing is rolled
// back.
func (c *Client) CreateCampaign(ctx context.Context, data domain.UnifiedCampaignData) (*Created, error) {
	trail := remote.NewTrail(domain.PlatformLinkedIn)
	out := &Created{}
	schedule := runSchedule{
		Start: data.Schedule.StartDate.UnixMilli(),
		End:   data.Schedule.EndDate.UnixMilli(),
	}

	groupURN, err := c.create(ctx, c.accountPath("adCampaignGroups"), "campaign_group", campaignGroupRequest{
		Account:     c.accountURN(),
		Name:        data.Name,
		Status:      statusPaused,
		RunSchedule: schedule,
	})
	if err != nil {
		return nil, trail.Fail("campaign_group", err)
	}
	out.CampaignGroupID = EntityID(groupURN)
	trail.Add("campaign_group", out.CampaignGroupID)

	camp := campaignRequest{
		Account:           c.accountURN(),
		CampaignGroup:     "urn:li:sponsoredCampaignGroup:" + out.CampaignGroupID,
		Name:              data.Name + " - Campaign",
		Type:              "SPONSORED_UPDATES",
		CostType:          costType(data.Objective),
		ObjectiveType:     mapping.LinkedInObjective(data.Objective),
		RunSchedule:       schedule,
		TargetingCriteria: c.transformer.Transform(data.Targeting),
		Locale:            campaignLocale(data.Targeting),
		PoliticalIntent:   "NOT_POLITICAL",
		Status:            statusPaused,
	}
	budget := &money{Amount: Amount(data.Budget.Amount), CurrencyCode: c.currency}
	if data.Budget.Type == domain.BudgetLifetime {
		camp.TotalBudget = budget
	} else {
		camp.DailyBudget = budget
	}
	if b := data.Bidding; b != nil && b.BidCap != nil {
		camp.UnitCost = &money{Amount: Amount(*b.BidCap), CurrencyCode: c.currency}
	}

	campURN, err := c.create(ctx, c.accountPath("adCampaigns"), "campaign", camp)
	if err != nil {
		return nil, trail.Fail("campaign", err)
	}
	out.CampaignID = EntityID(campURN)
	trail.Add("campaign", out.CampaignID)

	post := postRequest{
		Author:                   c.orgURN(),
		Commentary:               data.Creative.PrimaryText,
		Visibility:               "PUBLIC",
		ContentLandingPage:       data.Creative.DestinationURL,
		ContentCallToActionLabel: mapping.LinkedInCallToAction(data.Creative.CallToAction),
		LifecycleState:           "PUBLISHED",
	}
	post.Distribution.FeedDistribution = "NONE"
	post.Distribution.TargetEntities = []string{}
	post.Distribution.ThirdPartyDistributionChannels = []string{}
	post.Content.Article.Source = data.Creative.DestinationURL
	post.Content.Article.Title = data.Creative.Headline
	post.Content.Article.Description = data.Creative.Description
	post.AdContext.DscAdAccount = c.accountURN()
	post.AdContext.DscStatus = statusActive

	if out.PostURN, err = c.create(ctx, "posts", "post", post); err != nil {
		return nil, trail.Fail("post", err)
	}
	trail.Add("post", out.PostURN)

	cr := creativeRequest{Campaign: "urn:li:sponsoredCampaign:" + out.CampaignID, IntendedStatus: statusPaused}
	cr.Content.Reference = out.PostURN
	creativeURN, err := c.create(ctx, c.accountPath("creatives"), "creative", cr)
	if err != nil {
		return nil, trail.Fail("creative", err)
	}
	out.CreativeID = EntityID(creativeURN)
	return out, nil
}

// UpdateStatus switches a campaign group between ACTIVE and PAUSED with a
// Rest.li partial update.
func (c *Client) UpdateStatus(ctx context.Context, campaignGroupID string, status domain.CampaignStatus) error {
	s := statusPaused
	if status == domain.StatusActive {
		s = statusActive
	}
	_, err := c.caller.Do(ctx, remote.Request{
		Method: http.MethodPost,
		Path:   c.accountPath("adCampaignGroups/" + campaignGroupID),
		Header: http.Header{"X-Restli-Method": {"PARTIAL_UPDATE"}},
		Step:   "status",
		Body:   map[string]any{"patch": map[string]any{"$set": map[string]string{"status": s}}},
	}, nil)
	return err
}

type analyticsRow struct {
	Impressions         int64  `json:"impressions"`
	Clicks              int64  `json:"clicks"`
	CostInLocalCurrency string `json:"costInLocalCurrency"`
	UniqueImpressions   int64  `json:"approximateUniqueImpressions"`
}

// Insights reads campaign group analytics. Without a period everything since
// the start of 2020 is reported.
func (c *Client) Insights(ctx context.Context, campaignGroupID string, period domain.DateRange) (*domain.CampaignInsights, error) {
	from, to := period.From, period.To
	rng := "(start:(year:2020,month:1,day:1))"
	if !from.IsZero() && !to.IsZero() {
		rng = fmt.Sprintf("(start:(year:%d,month:%d,day:%d),end:(year:%d,month:%d,day:%d))",
			from.Year(), from.Month(), from.Day(), to.Year(), to.Month(), to.Day())
	}
	// Rest.li values must not pass through url.Values, which would escape
	// the structural parentheses.
	q := "adAnalytics?q=analytics&pivot=CAMPAIGN_GROUP&timeGranularity=ALL" +
		"&dateRange=" + rng +
		"&campaignGroups=List(" + restliEscape("urn:li:sponsoredCampaignGroup:"+campaignGroupID) + ")" +
		"&fields=impressions,clicks,costInLocalCurrency,approximateUniqueImpressions"

	var resp struct {
		Elements []analyticsRow `json:"elements"`
	}
	if _, err := c.caller.Do(ctx, remote.Request{Path: q, Step: "insights"}, &resp); err != nil {
		return nil, err
	}
	out := &domain.CampaignInsights{Platform: domain.PlatformLinkedIn, CampaignID: campaignGroupID, From: from, To: to}
	for _, row := range resp.Elements {
		out.Impressions += row.Impressions
		out.Clicks += row.Clicks
		out.Reach += row.UniqueImpressions
		spend, _ := strconv.ParseFloat(row.CostInLocalCurrency, 64)
		out.Spend += spend
	}
	out.Derive()
	return out, nil
}

// AudienceCount sizes the audience of a targeting criteria.
func (c *Client) AudienceCount(ctx context.Context, t Targeting) (*domain.ReachEstimate, error) {
	var resp struct {
		Elements []struct {
			Active int64 `json:"active"`
			Total  int64 `json:"total"`
		} `json:"elements"`
	}
	if _, err := c.caller.Do(ctx, remote.Request{
		Path: "audienceCounts?q=targetingCriteriaV2&targetingCriteria=" + t.Restli(),
		Step: "reach",
	}, &resp); err != nil {
		return nil, err
	}
	out := &domain.ReachEstimate{Platform: domain.PlatformLinkedIn}
	if len(resp.Elements) > 0 {
		out.Lower = resp.Elements[0].Active
		out.Upper = resp.Elements[0].Total
	}
	return out, nil
}

// Ping reads the ad account; it checks the token and account access.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.caller.Do(ctx, remote.Request{
		Path: "adAccounts/" + AccountID(c.creds.AccountID),
		Step: "probe",
	}, nil)
	return err
}

// Amount renders a major-unit amount as the decimal string LinkedIn expects,
// rounding half away from zero to cents.
func Amount(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

func costType(o domain.Objective) string {
	if o == domain.ObjectiveAwareness {
		return "CPM"
	}
	return "CPC"
}

// campaignLocale derives the campaign locale from the first resolvable
// language and country, defaulting to en_US.
func campaignLocale(t domain.UnifiedTargeting) locale {
	out := locale{Country: "US", Language: "en"}
	for _, lang := range t.Languages {
		if l, ok := mapping.Language(domain.PlatformLinkedIn, lang); ok {
			language, country, _ := strings.Cut(l, "_")
			out = locale{Country: country, Language: language}
			break
		}
	}
	for _, loc := range t.Locations {
		if ref, ok := mapping.Location(domain.PlatformLinkedIn, loc.Type, loc.Name); ok && ref.CountryCode != "" {
			out.Country = ref.CountryCode
			break
		}
	}
	return out
}
