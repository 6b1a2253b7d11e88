package googleads

import (
	"context"
	"log/slog"
	"time"

	"campaign-manager/internal/core/domain"
)

// Mock stands in for the ads platform when no credentials are configured.
// Publishing returns a synthetic campaign id and pausing always succeeds.
type Mock struct {
	logger *slog.Logger
	now    func() time.Time
}

func NewMock(logger *slog.Logger) *Mock {
	return &Mock{logger: logger, now: time.Now}
}

func (m *Mock) PublishCampaign(_ context.Context, c domain.Campaign, groups []domain.AdGroup) (string, error) {
	id := "MOCK_CAMPAIGN_ID_" + m.now().Format("20060102150405")
	m.logger.Info("mock publish",
		slog.String("campaign_id", c.ID),
		slog.String("name", c.Name),
		slog.Int("ad_groups", len(groups)),
		slog.String("google_campaign_id", id))
	return id, nil
}

func (m *Mock) PauseCampaign(_ context.Context, googleCampaignID string) error {
	m.logger.Info("mock pause", slog.String("google_campaign_id", googleCampaignID))
	return nil
}
