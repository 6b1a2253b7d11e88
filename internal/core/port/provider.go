package port

import (
	"context"
	"errors"

	"campaign-manager/internal/core/domain"
)

// ErrProvider wraps every failure reported by the ads platform.
var ErrProvider = errors.New("Google Ads API Error")

// AdsProvider is the advertising platform campaigns are published to.
type AdsProvider interface {
	// PublishCampaign creates the campaign with its ad groups on the
	// platform and returns the platform's campaign id.
	PublishCampaign(ctx context.Context, c domain.Campaign, groups []domain.AdGroup) (string, error)
	// PauseCampaign pauses a campaign previously returned by PublishCampaign.
	PauseCampaign(ctx context.Context, googleCampaignID string) error
}
