package view

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/lifecycle"
)

const (
	fallbackLoad   = "Failed to load data"
	fallbackAction = "Action failed, please try again"
)

// Coordinator owns the view state and the lists on display. Lists are only
// ever replaced by a fresh fetch; mutations never patch them in place.
//
// Every action reports failures through the Notifier and also returns
// them, so a caller without a notifier can still react.
type Coordinator struct {
	gw       port.Gateway
	ctrl     *lifecycle.Controller
	notifier Notifier
	logger   *slog.Logger

	mu        sync.Mutex
	state     State
	wizard    *AdGroupWizard
	campaigns []domain.Campaign
	adGroups  []domain.AdGroup
	// seq orders list fetches so a slow older response never overwrites a
	// newer one.
	campaignSeq uint64
	adGroupSeq  uint64
}

func NewCoordinator(gw port.Gateway, ctrl *lifecycle.Controller, notifier Notifier, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		gw:       gw,
		ctrl:     ctrl,
		notifier: notifier,
		logger:   logger,
		state:    State{Screen: ScreenCampaignList},
	}
}

// State returns a copy of the current view state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Campaigns returns the campaign list as last fetched.
func (c *Coordinator) Campaigns() []domain.Campaign {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.campaigns)
}

// AdGroups returns the ad group list of the selected campaign as last
// fetched.
func (c *Coordinator) AdGroups() []domain.AdGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.adGroups)
}

// Wizard returns the ad group wizard while the ad group form is shown.
func (c *Coordinator) Wizard() *AdGroupWizard {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wizard
}

// Processing reports whether a mutation for the entity id is outstanding.
// Its controls must be disabled until it resolves.
func (c *Coordinator) Processing(id string) bool {
	return c.ctrl.InProgress(id)
}

// ShowCampaigns switches to the campaign list and fetches it.
func (c *Coordinator) ShowCampaigns(ctx context.Context) error {
	c.mu.Lock()
	c.state = State{Screen: ScreenCampaignList}
	c.wizard = nil
	c.adGroups = nil
	c.mu.Unlock()
	return c.refreshCampaigns(ctx)
}

// BackToCampaigns leaves the ad group screens.
func (c *Coordinator) BackToCampaigns(ctx context.Context) error {
	return c.ShowCampaigns(ctx)
}

// NewCampaign opens the campaign form.
func (c *Coordinator) NewCampaign() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = State{Screen: ScreenCampaignForm}
	c.wizard = nil
}

// SubmitCampaign creates a campaign from the form. On success the view
// returns to the campaign list; on failure the form stays open.
func (c *Coordinator) SubmitCampaign(ctx context.Context, f domain.CampaignFormData) error {
	created, err := c.ctrl.CreateCampaign(ctx, f)
	if err != nil {
		c.fail(err, fallbackAction)
		return err
	}
	c.succeed("Campaign " + created.Name + " created")
	return c.ShowCampaigns(ctx)
}

// Publish publishes cmp.
func (c *Coordinator) Publish(ctx context.Context, cmp domain.Campaign) error {
	_, err := c.ctrl.PublishCampaign(ctx, cmp)
	return c.afterCampaignMutation(ctx, err, "Campaign published")
}

// Pause pauses cmp. The campaign list labels this action "Disable".
func (c *Coordinator) Pause(ctx context.Context, cmp domain.Campaign) error {
	_, err := c.ctrl.PauseCampaign(ctx, cmp)
	return c.afterCampaignMutation(ctx, err, "Campaign disabled")
}

// ViewAdGroups selects cmp and shows its ad groups.
func (c *Coordinator) ViewAdGroups(ctx context.Context, cmp domain.Campaign) error {
	c.mu.Lock()
	c.state = State{Screen: ScreenAdGroupList, Campaign: &cmp}
	c.wizard = nil
	c.adGroups = nil
	c.mu.Unlock()
	return c.refreshAdGroups(ctx)
}

// BackToAdGroups returns from the ad group form to the list.
func (c *Coordinator) BackToAdGroups(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Campaign == nil {
		c.mu.Unlock()
		return ErrNoCampaign
	}
	c.state = State{Screen: ScreenAdGroupList, Campaign: c.state.Campaign}
	c.wizard = nil
	c.mu.Unlock()
	return c.refreshAdGroups(ctx)
}

// NewAdGroup opens an empty wizard for the selected campaign.
func (c *Coordinator) NewAdGroup() error {
	return c.openAdGroupForm(nil)
}

// EditAdGroup opens the wizard pre-filled from g.
func (c *Coordinator) EditAdGroup(g domain.AdGroup) error {
	return c.openAdGroupForm(&g)
}

func (c *Coordinator) openAdGroupForm(g *domain.AdGroup) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Campaign == nil {
		return ErrNoCampaign
	}
	c.state = State{Screen: ScreenAdGroupForm, Campaign: c.state.Campaign, AdGroup: g}
	c.wizard = NewAdGroupWizard(g)
	return nil
}

// SubmitAdGroup sends the wizard's draft as one create or update. On
// success the view returns to the ad group list.
func (c *Coordinator) SubmitAdGroup(ctx context.Context) error {
	c.mu.Lock()
	st, w := c.state, c.wizard
	c.mu.Unlock()
	if st.Screen != ScreenAdGroupForm || st.Campaign == nil || w == nil {
		return ErrNoCampaign
	}

	var (
		draft = w.Data()
		saved *domain.AdGroup
		err   error
		msg   string
	)
	if st.AdGroup != nil {
		saved, err = c.ctrl.UpdateAdGroup(ctx, *st.AdGroup, draft)
		msg = "Ad group updated"
	} else {
		saved, err = c.ctrl.CreateAdGroup(ctx, st.Campaign.ID, draft)
		msg = "Ad group created"
	}
	if err != nil {
		c.fail(err, fallbackAction)
		return err
	}
	c.logger.Debug("ad group saved", slog.String("id", saved.ID))
	c.succeed(msg)
	return c.BackToAdGroups(ctx)
}

// ToggleAdGroup flips g between ENABLED and PAUSED.
func (c *Coordinator) ToggleAdGroup(ctx context.Context, g domain.AdGroup) error {
	updated, err := c.ctrl.ToggleAdGroup(ctx, g)
	msg := ""
	if err == nil {
		msg = "Ad group " + string(updated.Status)
	}
	return c.afterAdGroupMutation(ctx, err, msg)
}

// DeleteAdGroup removes g once confirm approves. Declining is not an
// error and leaves everything as it was.
func (c *Coordinator) DeleteAdGroup(ctx context.Context, g domain.AdGroup, confirm lifecycle.Confirmer) error {
	deleted, err := c.ctrl.DeleteAdGroup(ctx, g, confirm)
	if err == nil && !deleted {
		return nil
	}
	return c.afterAdGroupMutation(ctx, err, "Ad group deleted")
}

func (c *Coordinator) afterCampaignMutation(ctx context.Context, err error, success string) error {
	if err != nil {
		c.fail(err, fallbackAction)
		if remote(err) {
			_ = c.refreshCampaigns(ctx)
		}
		return err
	}
	c.succeed(success)
	return c.refreshCampaigns(ctx)
}

func (c *Coordinator) afterAdGroupMutation(ctx context.Context, err error, success string) error {
	if err != nil {
		c.fail(err, fallbackAction)
		if remote(err) {
			_ = c.refreshAdGroups(ctx)
		}
		return err
	}
	c.succeed(success)
	return c.refreshAdGroups(ctx)
}

// remote reports whether the system of record answered with a rejection,
// meaning the local copy may be stale.
func remote(err error) bool {
	var rejected *domain.RejectedError
	return errors.As(err, &rejected)
}

func (c *Coordinator) refreshCampaigns(ctx context.Context) error {
	c.mu.Lock()
	c.campaignSeq++
	seq := c.campaignSeq
	c.mu.Unlock()

	list, err := c.gw.ListCampaigns(ctx)
	if err != nil {
		c.fail(err, fallbackLoad)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq == c.campaignSeq {
		c.campaigns = list
	}
	return nil
}

func (c *Coordinator) refreshAdGroups(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Campaign == nil {
		c.mu.Unlock()
		return ErrNoCampaign
	}
	campaignID := c.state.Campaign.ID
	c.adGroupSeq++
	seq := c.adGroupSeq
	c.mu.Unlock()

	list, err := c.gw.ListAdGroups(ctx, campaignID)
	if err != nil {
		c.fail(err, fallbackLoad)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq == c.adGroupSeq && c.state.Campaign != nil && c.state.Campaign.ID == campaignID {
		c.adGroups = list
	}
	return nil
}

func (c *Coordinator) succeed(msg string) {
	c.notifier.Notify(Notification{Kind: KindSuccess, Message: msg})
}

func (c *Coordinator) fail(err error, fallback string) {
	c.logger.Warn("action failed", slog.Any("error", err))
	c.notifier.Notify(Notification{Kind: KindError, Message: domain.UserMessage(err, fallback)})
}
