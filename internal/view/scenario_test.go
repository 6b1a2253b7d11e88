package view_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/apiclient"
	"campaign-manager/internal/adapter/googleads"
	httpadapter "campaign-manager/internal/adapter/http"
	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/lifecycle"
	"campaign-manager/internal/logging"
	"campaign-manager/internal/view"
)

// stack runs the real server in-process and wires the client core to it.
type stack struct {
	gw    *apiclient.Client
	ctrl  *lifecycle.Controller
	coord *view.Coordinator
	notes []view.Notification
}

func newStack(t *testing.T) *stack {
	logger := logging.Discard()
	store := memory.NewStore()
	svc := usecase.NewCampaignUseCase(store, store, googleads.NewMock(logger), memory.NewLocker(), logger)
	srv := httptest.NewServer(httpadapter.NewHandler(svc, logger, httpadapter.Options{}).Router())
	t.Cleanup(srv.Close)

	s := &stack{}
	s.gw = apiclient.New(configs.API{
		BaseURL:     srv.URL + "/api",
		Timeout:     5 * time.Second,
		ReadRetries: 1,
		RetryBase:   time.Millisecond,
	}, logger)
	s.ctrl = lifecycle.NewController(s.gw, logger)
	s.coord = view.NewCoordinator(s.gw, s.ctrl, view.NotifierFunc(func(n view.Notification) {
		s.notes = append(s.notes, n)
	}), logger)
	return s
}

func date(t *testing.T, s string) domain.Date {
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCampaignLifecycleScenario(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	c, err := s.ctrl.CreateCampaign(ctx, domain.CampaignFormData{
		Name:        "Spring Sale",
		Objective:   "Sales",
		DailyBudget: 50,
		StartDate:   date(t, "2024-03-01"),
		EndDate:     date(t, "2024-03-31"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, c.Status)
	assert.Equal(t, domain.DefaultCampaignType, c.CampaignType)

	c, err = s.ctrl.PublishCampaign(ctx, *c)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPublished, c.Status)
	require.NotNil(t, c.GoogleCampaignID)
	assert.Contains(t, *c.GoogleCampaignID, "MOCK_CAMPAIGN_ID_")

	// a stale DRAFT copy passes the local guard; the server refuses
	_, err = s.ctrl.PublishCampaign(ctx, domain.Campaign{ID: c.ID, Status: domain.CampaignDraft})
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 409, rejected.Status)

	c, err = s.ctrl.PauseCampaign(ctx, *c)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, c.Status)

	_, err = s.ctrl.PublishCampaign(ctx, *c)
	var invalid *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}

func TestAdGroupLifecycleScenario(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	c, err := s.ctrl.CreateCampaign(ctx, domain.CampaignFormData{
		Name: "Spring Sale", Objective: "Sales", DailyBudget: 50,
		StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-31"),
	})
	require.NoError(t, err)

	bid := 2.5
	g, err := s.ctrl.CreateAdGroup(ctx, c.ID, domain.AdGroupFormData{
		Name: "Brand Terms", Bidding: domain.Bidding{CPCBid: &bid},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, g.Status)

	g, err = s.ctrl.EnableAdGroup(ctx, *g)
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, g.Status)

	g, err = s.ctrl.PauseAdGroup(ctx, *g)
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupPaused, g.Status)

	g, err = s.ctrl.EnableAdGroup(ctx, *g)
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, g.Status)

	deleted, err := s.ctrl.DeleteAdGroup(ctx, *g, lifecycle.ConfirmFunc(func(string) bool { return true }))
	require.NoError(t, err)
	assert.True(t, deleted)

	groups, err := s.gw.ListAdGroups(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestServerEnforcesCreativeLimits(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	c, err := s.ctrl.CreateCampaign(ctx, domain.CampaignFormData{
		Name: "Spring Sale", Objective: "Sales", DailyBudget: 50,
		StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-31"),
	})
	require.NoError(t, err)

	_, err = s.ctrl.CreateAdGroup(ctx, c.ID, domain.AdGroupFormData{
		Name:     "Brand Terms",
		Creative: domain.Creative{AdHeadline: "A headline well over thirty characters"},
	})
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 400, rejected.Status)
	assert.Contains(t, rejected.Message, "ad_headline")
}

func TestCoordinatorScenario(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	require.NoError(t, s.coord.ShowCampaigns(ctx))
	assert.Empty(t, s.coord.Campaigns())

	s.coord.NewCampaign()
	require.NoError(t, s.coord.SubmitCampaign(ctx, domain.CampaignFormData{
		Name: "Spring Sale", Objective: "Sales", DailyBudget: 50,
		StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-31"),
	}))
	require.Len(t, s.coord.Campaigns(), 1)
	c := s.coord.Campaigns()[0]
	assert.Equal(t, view.ScreenCampaignList, s.coord.State().Screen)

	require.NoError(t, s.coord.Publish(ctx, c))
	c = s.coord.Campaigns()[0]
	assert.Equal(t, domain.CampaignPublished, c.Status)
	assert.Equal(t, "Disable", view.CampaignActions(c.Status)[0].Label)

	require.NoError(t, s.coord.ViewAdGroups(ctx, c))
	require.NoError(t, s.coord.NewAdGroup())
	w := s.coord.Wizard()
	require.NoError(t, w.Set(view.FieldName, "Brand Terms"))
	w.GoTo(view.StepBidding)
	require.NoError(t, w.Set(view.FieldCPCBid, "2.5"))
	require.NoError(t, s.coord.SubmitAdGroup(ctx))

	groups := s.coord.AdGroups()
	require.Len(t, groups, 1)
	require.NoError(t, s.coord.ToggleAdGroup(ctx, groups[0]))
	assert.Equal(t, domain.AdGroupPaused, s.coord.AdGroups()[0].Status)

	require.NoError(t, s.coord.BackToCampaigns(ctx))
	require.NoError(t, s.coord.Pause(ctx, s.coord.Campaigns()[0]))
	assert.Equal(t, domain.CampaignPaused, s.coord.Campaigns()[0].Status)
	assert.Equal(t, view.KindSuccess, s.notes[len(s.notes)-1].Kind)
}

func TestEditClearsBid(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	c, err := s.ctrl.CreateCampaign(ctx, domain.CampaignFormData{
		Name: "Spring Sale", Objective: "Sales", DailyBudget: 50,
		StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-31"),
	})
	require.NoError(t, err)
	bid := 2.5
	g, err := s.ctrl.CreateAdGroup(ctx, c.ID, domain.AdGroupFormData{
		Name: "Brand Terms", Bidding: domain.Bidding{CPCBid: &bid},
	})
	require.NoError(t, err)

	require.NoError(t, s.coord.ViewAdGroups(ctx, *c))
	require.NoError(t, s.coord.EditAdGroup(*g))
	w := s.coord.Wizard()
	assert.Equal(t, "2.5", w.Field(view.FieldCPCBid))
	require.NoError(t, w.Set(view.FieldCPCBid, ""))
	require.NoError(t, w.Set(view.FieldCPMBid, "4"))
	require.NoError(t, s.coord.SubmitAdGroup(ctx))

	got, err := s.gw.GetAdGroup(ctx, g.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CPCBid)
	require.NotNil(t, got.CPMBid)
	assert.Equal(t, 4.0, *got.CPMBid)
	assert.Equal(t, view.KindSuccess, s.notes[len(s.notes)-1].Kind)
}

func TestGetCampaignCarriesEmptyAdGroups(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	c, err := s.ctrl.CreateCampaign(ctx, domain.CampaignFormData{
		Name: "Spring Sale", Objective: "Sales", DailyBudget: 50,
		StartDate: date(t, "2024-03-01"), EndDate: date(t, "2024-03-31"),
	})
	require.NoError(t, err)

	got, err := s.gw.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.AdGroups)
	assert.Empty(t, got.AdGroups)
}
