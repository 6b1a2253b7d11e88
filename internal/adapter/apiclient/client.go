package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/domain"
)

// fallbackMessage is used when an error response carries no message.
const fallbackMessage = "request failed"

// Client talks to the campaign manager HTTP API. It implements
// port.Gateway.
type Client struct {
	httpc   *http.Client
	baseURL string
	backoff Backoff
	logger  *slog.Logger
}

func New(cfg configs.API, logger *slog.Logger) *Client {
	return &Client{
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		backoff: NewBackoff(cfg.RetryBase, cfg.ReadRetries),
		logger:  logger,
	}
}

func (c *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := c.get(ctx, "/campaigns", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := c.get(ctx, "/campaigns/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCampaign(ctx context.Context, f domain.CampaignFormData) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := c.send(ctx, http.MethodPost, "/campaigns", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PublishCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return c.campaignAction(ctx, id, "publish")
}

func (c *Client) PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return c.campaignAction(ctx, id, "pause")
}

func (c *Client) ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error) {
	var out []domain.AdGroup
	if err := c.get(ctx, "/campaigns/"+url.PathEscape(campaignID)+"/ad-groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	var out domain.AdGroup
	if err := c.get(ctx, "/ad-groups/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAdGroup(ctx context.Context, campaignID string, f domain.AdGroupFormData) (*domain.AdGroup, error) {
	var out domain.AdGroup
	if err := c.send(ctx, http.MethodPost, "/campaigns/"+url.PathEscape(campaignID)+"/ad-groups", f, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAdGroup(ctx context.Context, id string, p domain.AdGroupPatch) (*domain.AdGroup, error) {
	var out domain.AdGroup
	if err := c.send(ctx, http.MethodPut, "/ad-groups/"+url.PathEscape(id), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	var out domain.AdGroup
	if err := c.send(ctx, http.MethodDelete, "/ad-groups/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PauseAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return c.adGroupAction(ctx, id, "pause")
}

func (c *Client) EnableAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return c.adGroupAction(ctx, id, "enable")
}

func (c *Client) campaignAction(ctx context.Context, id, action string) (*domain.Campaign, error) {
	var out domain.Campaign
	if err := c.send(ctx, http.MethodPost, "/campaigns/"+url.PathEscape(id)+"/"+action, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) adGroupAction(ctx context.Context, id, action string) (*domain.AdGroup, error) {
	var out domain.AdGroup
	if err := c.send(ctx, http.MethodPost, "/ad-groups/"+url.PathEscape(id)+"/"+action, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs an idempotent read, retrying network errors and 5xx
// answers.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.backoff.Do(ctx, domain.Retryable, func(attempt int) error {
		if attempt > 0 {
			c.logger.Debug("retrying read", slog.String("path", path), slog.Int("attempt", attempt))
		}
		return c.do(ctx, http.MethodGet, path, nil, out)
	})
}

// send performs a mutation exactly once.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	return c.do(ctx, method, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := method + " " + path
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}
	switch {
	case resp.StatusCode >= 500:
		return &domain.ServerFaultError{Status: resp.StatusCode, Message: remoteMessage(raw)}
	case resp.StatusCode >= 400:
		return &domain.RejectedError{Status: resp.StatusCode, Message: remoteMessage(raw)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return &domain.ServerFaultError{Status: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}
	return nil
}

// remoteMessage extracts the {"error": "..."} message of an error body.
func remoteMessage(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		return body.Error
	}
	return fallbackMessage
}
