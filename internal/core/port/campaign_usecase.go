package port

import (
	"context"

	"campaign-manager/internal/core/domain"
)

// CampaignUseCase defines the operations exposed by the system of record.
// This interface is the primary port into the application domain; the HTTP
// adapter is its only caller. Every mutation returns the entity as stored
// after the change.
type CampaignUseCase interface {
	// ListCampaigns returns all campaigns, newest first, with performance.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// GetCampaign returns a campaign together with its ad groups.
	// REMOVED ad groups are omitted.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// CreateCampaign validates the draft and stores a DRAFT campaign.
	CreateCampaign(ctx context.Context, f domain.CampaignFormData) (*domain.Campaign, error)

	// PublishCampaign pushes a DRAFT campaign to the ads platform and marks
	// it PUBLISHED.
	PublishCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// PauseCampaign pauses a PUBLISHED campaign on the ads platform. It
	// serves both the pause and the disable routes.
	PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error)
	GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	CreateAdGroup(ctx context.Context, campaignID string, f domain.AdGroupFormData) (*domain.AdGroup, error)
	UpdateAdGroup(ctx context.Context, id string, p domain.AdGroupPatch) (*domain.AdGroup, error)

	// DeleteAdGroup marks the ad group REMOVED. It is no longer listed.
	DeleteAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)

	PauseAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	EnableAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
}
