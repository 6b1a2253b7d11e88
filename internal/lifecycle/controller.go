// Package lifecycle guards campaign and ad group mutations on the client.
// It checks the status machine before anything is sent and allows at most
// one outstanding mutation per entity id.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller forwards mutations to a port.Gateway. Every successful call
// returns the entity exactly as the gateway reported it.
type Controller struct {
	gw     port.Gateway
	logger *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewController(gw port.Gateway, logger *slog.Logger) *Controller {
	return &Controller{
		gw:       gw,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

// InProgress reports whether a mutation for id is outstanding.
func (c *Controller) InProgress(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[id]
	return ok
}

// acquire claims id or fails with domain.ErrAlreadyInProgress. The returned
// func releases the claim.
func (c *Controller) acquire(id string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inflight[id]; ok {
		return nil, domain.ErrAlreadyInProgress
	}
	c.inflight[id] = struct{}{}
	return func() {
		c.mu.Lock()
		delete(c.inflight, id)
		c.mu.Unlock()
	}, nil
}

// CreateCampaign validates the draft and creates it. Invalid drafts fail
// with *domain.ValidationError without a network call.
func (c *Controller) CreateCampaign(ctx context.Context, f domain.CampaignFormData) (*domain.Campaign, error) {
	f, err := domain.ValidateCampaignDraft(f)
	if err != nil {
		return nil, err
	}
	created, err := c.gw.CreateCampaign(ctx, f)
	c.log("campaign", "create", "", err)
	return created, err
}

// PublishCampaign moves a DRAFT campaign to PUBLISHED.
func (c *Controller) PublishCampaign(ctx context.Context, cmp domain.Campaign) (*domain.Campaign, error) {
	return c.transitionCampaign(ctx, cmp, domain.VerbPublish, c.gw.PublishCampaign)
}

// PauseCampaign moves a PUBLISHED campaign to PAUSED. It backs both the
// "Pause" and the "Disable" labels.
func (c *Controller) PauseCampaign(ctx context.Context, cmp domain.Campaign) (*domain.Campaign, error) {
	return c.transitionCampaign(ctx, cmp, domain.VerbPause, c.gw.PauseCampaign)
}

func (c *Controller) transitionCampaign(
	ctx context.Context,
	cmp domain.Campaign,
	verb domain.Verb,
	call func(context.Context, string) (*domain.Campaign, error),
) (*domain.Campaign, error) {
	if _, err := cmp.Status.Next(verb); err != nil {
		return nil, err
	}
	release, err := c.acquire(cmp.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := call(ctx, cmp.ID)
	c.log("campaign", string(verb), cmp.ID, err)
	return updated, err
}

// CreateAdGroup validates the draft and creates it under campaignID.
func (c *Controller) CreateAdGroup(ctx context.Context, campaignID string, f domain.AdGroupFormData) (*domain.AdGroup, error) {
	f, err := domain.ValidateAdGroupDraft(f)
	if err != nil {
		return nil, err
	}
	created, err := c.gw.CreateAdGroup(ctx, campaignID, f)
	c.log("ad group", "create", "", err)
	return created, err
}

// UpdateAdGroup replaces the editable fields of g with f.
func (c *Controller) UpdateAdGroup(ctx context.Context, g domain.AdGroup, f domain.AdGroupFormData) (*domain.AdGroup, error) {
	if g.Status == domain.AdGroupRemoved {
		return nil, &domain.InvalidTransitionError{Entity: "ad group", From: string(g.Status), Verb: "update"}
	}
	f, err := domain.ValidateAdGroupDraft(f)
	if err != nil {
		return nil, err
	}
	release, err := c.acquire(g.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := c.gw.UpdateAdGroup(ctx, g.ID, domain.PatchFrom(f))
	c.log("ad group", "update", g.ID, err)
	return updated, err
}

// PauseAdGroup pauses g. Pausing a PAUSED ad group returns it unchanged
// without a network call.
func (c *Controller) PauseAdGroup(ctx context.Context, g domain.AdGroup) (*domain.AdGroup, error) {
	return c.transitionAdGroup(ctx, g, domain.VerbPause, c.gw.PauseAdGroup)
}

// EnableAdGroup enables g. Enabling an ENABLED ad group returns it
// unchanged without a network call.
func (c *Controller) EnableAdGroup(ctx context.Context, g domain.AdGroup) (*domain.AdGroup, error) {
	return c.transitionAdGroup(ctx, g, domain.VerbEnable, c.gw.EnableAdGroup)
}

// ToggleAdGroup flips g between ENABLED and PAUSED.
func (c *Controller) ToggleAdGroup(ctx context.Context, g domain.AdGroup) (*domain.AdGroup, error) {
	if g.Status.Toggle() == domain.VerbPause {
		return c.PauseAdGroup(ctx, g)
	}
	return c.EnableAdGroup(ctx, g)
}

func (c *Controller) transitionAdGroup(
	ctx context.Context,
	g domain.AdGroup,
	verb domain.Verb,
	call func(context.Context, string) (*domain.AdGroup, error),
) (*domain.AdGroup, error) {
	next, err := g.Status.Next(verb)
	if err != nil {
		return nil, err
	}
	if next == g.Status {
		return &g, nil
	}
	release, err := c.acquire(g.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	updated, err := call(ctx, g.ID)
	c.log("ad group", string(verb), g.ID, err)
	return updated, err
}

// DeleteAdGroup removes g after confirm approves. A declined confirmation
// returns false and a nil error.
func (c *Controller) DeleteAdGroup(ctx context.Context, g domain.AdGroup, confirm Confirmer) (bool, error) {
	if _, err := g.Status.Next(domain.VerbRemove); err != nil {
		return false, err
	}
	if c.InProgress(g.ID) {
		return false, domain.ErrAlreadyInProgress
	}
	if !confirm.Confirm(fmt.Sprintf("Delete ad group %q? This cannot be undone.", g.Name)) {
		return false, nil
	}
	release, err := c.acquire(g.ID)
	if err != nil {
		return false, err
	}
	defer release()

	_, err = c.gw.DeleteAdGroup(ctx, g.ID)
	c.log("ad group", string(domain.VerbRemove), g.ID, err)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *Controller) log(entity, verb, id string, err error) {
	if err != nil {
		c.logger.Warn("mutation failed",
			slog.String("entity", entity),
			slog.String("verb", verb),
			slog.String("id", id),
			slog.Any("error", err))
		return
	}
	c.logger.Info("mutation applied",
		slog.String("entity", entity),
		slog.String("verb", verb),
		slog.String("id", id))
}
