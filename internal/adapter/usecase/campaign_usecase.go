package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

var transitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "campaign_manager_transitions_total",
	Help: "Status transitions requested on the system of record, by outcome.",
}, []string{"entity", "verb", "outcome"})

// CampaignUseCase implements port.CampaignUseCase. It owns the status
// state machine on the server side: every transition is checked against
// the stored status while holding a per-entity lock, so two clients can't
// publish the same campaign twice.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	adGroups  port.AdGroupRepository
	provider  port.AdsProvider
	locker    port.Locker
	logger    *slog.Logger

	// lockTTL bounds how long a crashed request can block transitions of
	// one entity.
	lockTTL time.Duration
	now     func() time.Time
	newID   func() string
}

// NewCampaignUseCase wires the use case to its outbound ports.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	adGroups port.AdGroupRepository,
	provider port.AdsProvider,
	locker port.Locker,
	logger *slog.Logger,
) *CampaignUseCase {
	return &CampaignUseCase{
		campaigns: campaigns,
		adGroups:  adGroups,
		provider:  provider,
		locker:    locker,
		logger:    logger,
		lockTTL:   30 * time.Second,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// ListCampaigns returns all campaigns, newest first.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaigns(ctx)
}

// GetCampaign returns the campaign with its live ad groups.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	groups, err := u.adGroups.ListAdGroups(ctx, id)
	if err != nil {
		return nil, err
	}
	c.AdGroups = groups
	return c, nil
}

// CreateCampaign validates the draft and stores it as DRAFT.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, f domain.CampaignFormData) (*domain.Campaign, error) {
	f, err := domain.ValidateCampaignDraft(f)
	if err != nil {
		return nil, err
	}
	c := domain.NewCampaign(u.newID(), f, u.now())
	if err = u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return u.campaigns.GetCampaign(ctx, c.ID)
}

// PublishCampaign sends a DRAFT campaign and its enabled ad groups to the
// ads platform, then stores the platform id and PUBLISHED status.
func (u *CampaignUseCase) PublishCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.transitionCampaign(ctx, id, domain.VerbPublish, func(ctx context.Context, c domain.Campaign) (*string, error) {
		groups, err := u.adGroups.ListAdGroups(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		enabled := groups[:0]
		for _, g := range groups {
			if g.Status == domain.AdGroupEnabled {
				enabled = append(enabled, g)
			}
		}
		googleID, err := u.provider.PublishCampaign(ctx, c, enabled)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrProvider, err)
		}
		u.logger.Info("campaign published",
			slog.String("campaign_id", c.ID),
			slog.String("google_campaign_id", googleID),
			slog.Int("ad_groups", len(enabled)))
		return &googleID, nil
	})
}

// PauseCampaign pauses a PUBLISHED campaign on the ads platform.
func (u *CampaignUseCase) PauseCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.transitionCampaign(ctx, id, domain.VerbPause, func(ctx context.Context, c domain.Campaign) (*string, error) {
		if c.GoogleCampaignID == nil {
			u.logger.Warn("pausing campaign without platform id", slog.String("campaign_id", c.ID))
			return nil, nil
		}
		if err := u.provider.PauseCampaign(ctx, *c.GoogleCampaignID); err != nil {
			return nil, fmt.Errorf("%w: %v", port.ErrProvider, err)
		}
		return nil, nil
	})
}

// transitionCampaign applies verb to the stored campaign. apply runs the
// platform side effect and may return a platform id to store.
func (u *CampaignUseCase) transitionCampaign(
	ctx context.Context,
	id string,
	verb domain.Verb,
	apply func(ctx context.Context, c domain.Campaign) (*string, error),
) (c *domain.Campaign, err error) {
	defer func() { observe("campaign", verb, err) }()

	unlock, err := u.locker.TryLock(ctx, "campaign:"+id, u.lockTTL)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, err = u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := c.Status.Next(verb)
	if err != nil {
		return nil, err
	}
	googleID, err := apply(ctx, *c)
	if err != nil {
		return nil, err
	}
	// the platform already changed; a cancelled request must not skip the write
	if err = u.campaigns.UpdateCampaignStatus(context.WithoutCancel(ctx), id, next, googleID); err != nil {
		attrs := []any{
			slog.String("campaign_id", id),
			slog.String("verb", string(verb)),
			slog.String("status", string(next)),
			slog.Any("error", err),
		}
		if googleID != nil {
			attrs = append(attrs, slog.String("google_campaign_id", *googleID))
		}
		u.logger.Error("platform changed but status was not stored, reconcile manually", attrs...)
		return nil, fmt.Errorf("update campaign status: %w", err)
	}
	return u.campaigns.GetCampaign(ctx, id)
}

// ListAdGroups returns the live ad groups of an existing campaign.
func (u *CampaignUseCase) ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.adGroups.ListAdGroups(ctx, campaignID)
}

// GetAdGroup returns one ad group, including REMOVED ones.
func (u *CampaignUseCase) GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return u.adGroups.GetAdGroup(ctx, id)
}

// CreateAdGroup stores an ENABLED ad group under an existing campaign.
func (u *CampaignUseCase) CreateAdGroup(ctx context.Context, campaignID string, f domain.AdGroupFormData) (*domain.AdGroup, error) {
	f, err := validateAdGroup(f)
	if err != nil {
		return nil, err
	}
	if _, err = u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	g := domain.NewAdGroup(u.newID(), campaignID, f, u.now())
	if err = u.adGroups.CreateAdGroup(ctx, g); err != nil {
		return nil, fmt.Errorf("create ad group: %w", err)
	}
	return u.adGroups.GetAdGroup(ctx, g.ID)
}

// UpdateAdGroup applies a partial update. The owning campaign can't change.
func (u *CampaignUseCase) UpdateAdGroup(ctx context.Context, id string, p domain.AdGroupPatch) (*domain.AdGroup, error) {
	return u.mutateAdGroup(ctx, id, "update", func(g *domain.AdGroup) error {
		if g.Status == domain.AdGroupRemoved {
			return &domain.InvalidTransitionError{Entity: "ad group", From: string(g.Status), Verb: "update"}
		}
		f, err := validateAdGroup(p.Apply(g.FormData()))
		if err != nil {
			return err
		}
		g.Name, g.Targeting, g.Bidding, g.Creative = f.Name, f.Targeting, f.Bidding, f.Creative
		return nil
	})
}

// DeleteAdGroup marks the ad group REMOVED.
func (u *CampaignUseCase) DeleteAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return u.transitionAdGroup(ctx, id, domain.VerbRemove)
}

// PauseAdGroup moves an ENABLED ad group to PAUSED.
func (u *CampaignUseCase) PauseAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return u.transitionAdGroup(ctx, id, domain.VerbPause)
}

// EnableAdGroup moves a PAUSED ad group to ENABLED.
func (u *CampaignUseCase) EnableAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	return u.transitionAdGroup(ctx, id, domain.VerbEnable)
}

func (u *CampaignUseCase) transitionAdGroup(ctx context.Context, id string, verb domain.Verb) (g *domain.AdGroup, err error) {
	defer func() { observe("ad_group", verb, err) }()

	return u.mutateAdGroup(ctx, id, verb, func(g *domain.AdGroup) error {
		next, err := g.Status.Next(verb)
		if err != nil {
			return err
		}
		g.Status = next
		return nil
	})
}

// mutateAdGroup loads the ad group under its lock, lets change modify it
// and stores the result. Unchanged ad groups are not written.
func (u *CampaignUseCase) mutateAdGroup(ctx context.Context, id string, verb domain.Verb, change func(g *domain.AdGroup) error) (*domain.AdGroup, error) {
	unlock, err := u.locker.TryLock(ctx, "ad_group:"+id, u.lockTTL)
	if err != nil {
		return nil, err
	}
	defer unlock()

	g, err := u.adGroups.GetAdGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	before := *g
	if err = change(g); err != nil {
		return nil, err
	}
	if sameAdGroup(before, *g) {
		u.logger.Debug("ad group unchanged", slog.String("ad_group_id", id), slog.String("verb", string(verb)))
		return g, nil
	}
	g.UpdatedAt = u.now().UTC()
	if err = u.adGroups.UpdateAdGroup(ctx, *g); err != nil {
		return nil, fmt.Errorf("update ad group: %w", err)
	}
	return u.adGroups.GetAdGroup(ctx, id)
}

// validateAdGroup applies the client checks plus the creative limits that
// clients only hint at.
func validateAdGroup(f domain.AdGroupFormData) (domain.AdGroupFormData, error) {
	f, err := domain.ValidateAdGroupDraft(f)
	if err != nil {
		return f, err
	}
	if issues := domain.CreativeLimits(f); len(issues) > 0 {
		return f, &issues[0]
	}
	return f, nil
}

func sameAdGroup(a, b domain.AdGroup) bool {
	return a.Name == b.Name &&
		a.Status == b.Status &&
		a.Targeting == b.Targeting &&
		a.Creative == b.Creative &&
		sameBid(a.CPCBid, b.CPCBid) &&
		sameBid(a.CPMBid, b.CPMBid)
}

func sameBid(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func observe(entity string, verb domain.Verb, err error) {
	outcome := "ok"
	var transitionErr *domain.InvalidTransitionError
	switch {
	case err == nil:
	case errors.As(err, &transitionErr):
		outcome = "invalid_transition"
	case errors.Is(err, port.ErrTransitionInProgress):
		outcome = "in_progress"
	case errors.Is(err, port.ErrProvider):
		outcome = "provider_error"
	default:
		outcome = "error"
	}
	transitionsTotal.WithLabelValues(entity, string(verb), outcome).Inc()
}
