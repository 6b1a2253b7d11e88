package port

import (
	"context"

	"campaign-manager/internal/core/domain"
)

// Gateway is the client's only channel to the system of record. Every
// mutation returns the authoritative entity; callers replace their copy
// with it instead of patching fields.
//
// Failures are *domain.NetworkError (no response), *domain.RejectedError
// (4xx) or *domain.ServerFaultError (5xx).
type Gateway interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, f domain.CampaignFormData) (*domain.Campaign, error)
	PublishCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// PauseCampaign is also what the UI calls "disable".
	PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error)
	GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	CreateAdGroup(ctx context.Context, campaignID string, f domain.AdGroupFormData) (*domain.AdGroup, error)
	UpdateAdGroup(ctx context.Context, id string, p domain.AdGroupPatch) (*domain.AdGroup, error)
	DeleteAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	PauseAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
	EnableAdGroup(ctx context.Context, id string) (*domain.AdGroup, error)
}
