package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/domain"
)

const adsScope = "https://www.googleapis.com/auth/adwords"

const (
	defaultCPCMicros    = 1_000_000
	fallbackHeadline    = "New Campaign Offer"
	fallbackDescription = "Check out our latest offers."
	fallbackFinalURL    = "http://www.example.com"
)

// REST publishes campaigns through the Google Ads REST interface. Requests
// are authorised with an OAuth2 refresh token.
type REST struct {
	client     *http.Client
	endpoint   string
	customerID string
	devToken   string
	loginID    string
	logger     *slog.Logger
	now        func() time.Time
}

// NewREST builds a provider from cfg. cfg must be Configured.
func NewREST(ctx context.Context, cfg configs.GoogleAds, logger *slog.Logger) *REST {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{adsScope},
	}
	src := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	return newREST(oauth2.NewClient(ctx, src), cfg, logger)
}

func newREST(client *http.Client, cfg configs.GoogleAds, logger *slog.Logger) *REST {
	return &REST{
		client:     client,
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		customerID: digits(cfg.CustomerID),
		devToken:   cfg.DeveloperToken,
		loginID:    digits(cfg.LoginCustomerID),
		logger:     logger,
		now:        time.Now,
	}
}

type operation struct {
	Create     any    `json:"create,omitempty"`
	Update     any    `json:"update,omitempty"`
	UpdateMask string `json:"updateMask,omitempty"`
}

type mutateRequest struct {
	Operations []operation `json:"operations"`
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// PublishCampaign creates budget, campaign, ad groups and one responsive
// search ad per ad group. The campaign and its ads are created PAUSED. It
// returns the numeric campaign id.
func (r *REST) PublishCampaign(ctx context.Context, c domain.Campaign, groups []domain.AdGroup) (string, error) {
	stamp := r.now()
	budget, err := r.mutate(ctx, "campaignBudgets", operation{Create: map[string]any{
		"name":           "Budget " + stamp.Format("20060102150405"),
		"amountMicros":   micros(c.DailyBudget),
		"deliveryMethod": "STANDARD",
	}})
	if err != nil {
		return "", fmt.Errorf("create budget: %w", err)
	}

	campaign := map[string]any{
		"name":                   c.Name + " - " + stamp.Format("2006-01-02 15:04:05"),
		"status":                 "PAUSED",
		"advertisingChannelType": "SEARCH",
		"campaignBudget":         budget,
		"manualCpc":              map[string]any{},
		"networkSettings": map[string]any{
			"targetGoogleSearch":   true,
			"targetContentNetwork": true,
		},
	}
	if !c.StartDate.IsZero() {
		campaign["startDate"] = c.StartDate.Format("20060102")
	}
	if !c.EndDate.IsZero() {
		campaign["endDate"] = c.EndDate.Format("20060102")
	}
	campaignRes, err := r.mutate(ctx, "campaigns", operation{Create: campaign})
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}

	for _, g := range groups {
		groupRes, err := r.mutate(ctx, "adGroups", operation{Create: map[string]any{
			"name":         g.Name,
			"campaign":     campaignRes,
			"status":       "ENABLED",
			"type":         "SEARCH_STANDARD",
			"cpcBidMicros": cpcMicros(g.CPCBid),
		}})
		if err != nil {
			return "", fmt.Errorf("create ad group %q: %w", g.Name, err)
		}
		if _, err = r.mutate(ctx, "adGroupAds", operation{Create: adFor(groupRes, g)}); err != nil {
			return "", fmt.Errorf("create ad for %q: %w", g.Name, err)
		}
		if ops := keywordOps(groupRes, g.KeywordList()); len(ops) > 0 {
			if _, err = r.mutate(ctx, "adGroupCriteria", ops...); err != nil {
				return "", fmt.Errorf("add keywords to %q: %w", g.Name, err)
			}
		}
	}

	id := campaignRes[strings.LastIndex(campaignRes, "/")+1:]
	r.logger.Info("campaign published",
		slog.String("campaign_id", c.ID),
		slog.String("google_campaign_id", id),
		slog.Int("ad_groups", len(groups)))
	return id, nil
}

// PauseCampaign sets the remote campaign status to PAUSED.
func (r *REST) PauseCampaign(ctx context.Context, googleCampaignID string) error {
	_, err := r.mutate(ctx, "campaigns", operation{
		Update: map[string]any{
			"resourceName": fmt.Sprintf("customers/%s/campaigns/%s", r.customerID, googleCampaignID),
			"status":       "PAUSED",
		},
		UpdateMask: "status",
	})
	if err != nil {
		return fmt.Errorf("pause campaign %s: %w", googleCampaignID, err)
	}
	return nil
}

// mutate posts ops in one request and returns the resource name of the
// first result.
func (r *REST) mutate(ctx context.Context, resource string, ops ...operation) (string, error) {
	body, err := json.Marshal(mutateRequest{Operations: ops})
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s/customers/%s/%s:mutate", r.endpoint, r.customerID, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", r.devToken)
	if r.loginID != "" {
		req.Header.Set("login-customer-id", r.loginID)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode/100 != 2 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%s (%s)", apiErr.Error.Message, apiErr.Error.Status)
		}
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out mutateResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode %s response: %w", resource, err)
	}
	if len(out.Results) == 0 || out.Results[0].ResourceName == "" {
		return "", fmt.Errorf("%s: empty mutate response", resource)
	}
	return out.Results[0].ResourceName, nil
}

func adFor(adGroup string, g domain.AdGroup) map[string]any {
	headlines := g.Headlines()
	if len(headlines) == 0 {
		headlines = []string{fallbackHeadline}
	}
	// responsive search ads need at least three headlines and two descriptions
	for _, h := range []string{"Shop Now", "Best Deals"} {
		if len(headlines) >= 3 {
			break
		}
		headlines = append(headlines, h)
	}
	descriptions := g.Descriptions()
	if len(descriptions) == 0 {
		descriptions = []string{fallbackDescription}
	}
	if len(descriptions) < 2 {
		descriptions = append(descriptions, "Limited time only.")
	}
	finalURL := g.FinalURL
	if finalURL == "" {
		finalURL = fallbackFinalURL
	}

	rsa := map[string]any{
		"headlines":    textAssets(headlines),
		"descriptions": textAssets(descriptions),
	}
	if p := displayPath(g.DisplayURL); p != "" {
		rsa["path1"] = p
	}
	return map[string]any{
		"adGroup": adGroup,
		"status":  "PAUSED",
		"ad": map[string]any{
			"finalUrls":          []string{finalURL},
			"responsiveSearchAd": rsa,
		},
	}
}

// keywordOps creates one broad match keyword criterion per keyword.
func keywordOps(adGroup string, keywords []string) []operation {
	ops := make([]operation, 0, len(keywords))
	for _, k := range keywords {
		ops = append(ops, operation{Create: map[string]any{
			"adGroup": adGroup,
			"status":  "ENABLED",
			"keyword": map[string]any{"text": k, "matchType": "BROAD"},
		}})
	}
	return ops
}

func textAssets(texts []string) []map[string]string {
	out := make([]map[string]string, len(texts))
	for i, t := range texts {
		out[i] = map[string]string{"text": t}
	}
	return out
}

// displayPath returns the first path segment of a display URL, at most 15
// characters as the API requires.
func displayPath(u string) string {
	u = strings.TrimPrefix(strings.TrimPrefix(u, "https://"), "http://")
	parts := strings.Split(u, "/")
	if len(parts) < 2 {
		return ""
	}
	p := parts[1]
	if r := []rune(p); len(r) > 15 {
		p = string(r[:15])
	}
	return p
}

// micros converts a currency amount to the API's integer micros.
func micros(v float64) int64 {
	return int64(math.Round(v * 1_000_000))
}

func cpcMicros(bid *float64) int64 {
	if bid == nil || *bid <= 0 {
		return defaultCPCMicros
	}
	return micros(*bid)
}

// digits strips the dashes customer ids are usually written with.
func digits(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
