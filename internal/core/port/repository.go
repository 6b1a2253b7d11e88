package port

import (
	"context"

	"campaign-manager/internal/core/domain"
)

// CampaignRepository defines persistence for campaigns. It is an outbound
// port in hexagonal architecture. Get methods return domain.ErrNotFound
// when no row matches.
type CampaignRepository interface {
	// ListCampaigns returns campaigns ordered by creation time, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// UpdateCampaignStatus stores a new status and, when not nil, the
	// external campaign id assigned by the ads platform.
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, googleID *string) error
}

// AdGroupRepository defines persistence for ad groups.
type AdGroupRepository interface {
	// ListAdGroups returns the non-removed ad groups of a campaign, oldest
	// first.
	ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error)
	GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	CreateAdGroup(ctx context.Context, g domain.AdGroup) error
	// UpdateAdGroup overwrites the editable fields and status of g.
	UpdateAdGroup(ctx context.Context, g domain.AdGroup) error
}
