package lifecycle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestController(t *testing.T) (*mocks.MockGateway, *Controller) {
	gw := mocks.NewMockGateway(t)
	return gw, NewController(gw, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishOnlyFromDraft(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.CampaignPublished, domain.CampaignPaused} {
		gw, c := newTestController(t)

		_, err := c.PublishCampaign(context.Background(), domain.Campaign{ID: "c1", Status: status})
		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid, status)
		gw.AssertNotCalled(t, "PublishCampaign", mock.Anything, mock.Anything)
	}
}

func TestPublishReturnsAuthoritativeEntity(t *testing.T) {
	gw, c := newTestController(t)
	gw.EXPECT().PublishCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPublished, Name: "Normalized"}, nil)

	got, err := c.PublishCampaign(context.Background(), domain.Campaign{ID: "c1", Name: "local", Status: domain.CampaignDraft})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPublished, got.Status)
	assert.Equal(t, "Normalized", got.Name)
	assert.False(t, c.InProgress("c1"))
}

func TestPauseOnlyFromPublished(t *testing.T) {
	gw, c := newTestController(t)
	gw.EXPECT().PauseCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPaused}, nil).Once()

	for _, status := range []domain.CampaignStatus{domain.CampaignDraft, domain.CampaignPaused} {
		_, err := c.PauseCampaign(context.Background(), domain.Campaign{ID: "c1", Status: status})
		var invalid *domain.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
	}

	got, err := c.PauseCampaign(context.Background(), domain.Campaign{ID: "c1", Status: domain.CampaignPublished})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, got.Status)
}

// TestConcurrentPublishSingleFlight holds the first publish inside the
// gateway while a second one for the same id is attempted.
func TestConcurrentPublishSingleFlight(t *testing.T) {
	gw, c := newTestController(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	gw.EXPECT().PublishCampaign(mock.Anything, "c1").
		RunAndReturn(func(context.Context, string) (*domain.Campaign, error) {
			calls.Add(1)
			close(entered)
			<-release
			return &domain.Campaign{ID: "c1", Status: domain.CampaignPublished}, nil
		}).Once()

	draft := domain.Campaign{ID: "c1", Status: domain.CampaignDraft}
	var published, rejected atomic.Int32
	publish := func() error {
		got, err := c.PublishCampaign(context.Background(), draft)
		switch {
		case errors.Is(err, domain.ErrAlreadyInProgress):
			rejected.Add(1)
			return nil
		case err != nil:
			return err
		}
		if got.Status == domain.CampaignPublished {
			published.Add(1)
		}
		return nil
	}

	var g errgroup.Group
	g.Go(publish)
	<-entered
	assert.True(t, c.InProgress("c1"))
	g.Go(func() error {
		err := publish()
		close(release)
		return err
	})
	require.NoError(t, g.Wait())

	assert.EqualValues(t, 1, calls.Load())
	assert.EqualValues(t, 1, published.Load())
	assert.EqualValues(t, 1, rejected.Load())
	assert.False(t, c.InProgress("c1"))
}

func TestDifferentIDsIndependent(t *testing.T) {
	gw, c := newTestController(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	gw.EXPECT().PublishCampaign(mock.Anything, "c1").
		RunAndReturn(func(context.Context, string) (*domain.Campaign, error) {
			close(entered)
			<-release
			return &domain.Campaign{ID: "c1", Status: domain.CampaignPublished}, nil
		})
	gw.EXPECT().PauseAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupPaused}, nil)

	var g errgroup.Group
	g.Go(func() error {
		_, err := c.PublishCampaign(context.Background(), domain.Campaign{ID: "c1", Status: domain.CampaignDraft})
		return err
	})
	<-entered

	got, err := c.PauseAdGroup(context.Background(), domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled})
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupPaused, got.Status)

	close(release)
	require.NoError(t, g.Wait())
}

func TestReleasedAfterFailure(t *testing.T) {
	gw, c := newTestController(t)
	fault := &domain.ServerFaultError{Status: 502, Message: "Google Ads API Error: quota"}
	gw.EXPECT().PublishCampaign(mock.Anything, "c1").Return(nil, fault).Once()
	gw.EXPECT().PublishCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPublished}, nil).Once()

	draft := domain.Campaign{ID: "c1", Status: domain.CampaignDraft}
	_, err := c.PublishCampaign(context.Background(), draft)
	require.ErrorIs(t, err, fault)

	got, err := c.PublishCampaign(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPublished, got.Status)
}

func TestAdGroupSameStateIsNoop(t *testing.T) {
	gw, c := newTestController(t)

	g := domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled}
	got, err := c.EnableAdGroup(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, g, *got)

	g.Status = domain.AdGroupPaused
	got, err = c.PauseAdGroup(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupPaused, got.Status)

	gw.AssertNotCalled(t, "EnableAdGroup", mock.Anything, mock.Anything)
	gw.AssertNotCalled(t, "PauseAdGroup", mock.Anything, mock.Anything)
}

func TestToggleAdGroup(t *testing.T) {
	gw, c := newTestController(t)
	gw.EXPECT().PauseAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupPaused}, nil)
	gw.EXPECT().EnableAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled}, nil)

	got, err := c.ToggleAdGroup(context.Background(), domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled})
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupPaused, got.Status)

	got, err = c.ToggleAdGroup(context.Background(), *got)
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, got.Status)
}

func TestRemovedIsTerminal(t *testing.T) {
	gw, c := newTestController(t)
	removed := domain.AdGroup{ID: "g1", Status: domain.AdGroupRemoved}
	var invalid *domain.InvalidTransitionError

	_, err := c.EnableAdGroup(context.Background(), removed)
	assert.ErrorAs(t, err, &invalid)
	_, err = c.PauseAdGroup(context.Background(), removed)
	assert.ErrorAs(t, err, &invalid)
	_, err = c.UpdateAdGroup(context.Background(), removed, domain.AdGroupFormData{Name: "x"})
	assert.ErrorAs(t, err, &invalid)
	_, err = c.DeleteAdGroup(context.Background(), removed, ConfirmFunc(func(string) bool { return true }))
	assert.ErrorAs(t, err, &invalid)

	assert.Empty(t, gw.Calls)
}

func TestDeleteAdGroupConfirmation(t *testing.T) {
	gw, c := newTestController(t)
	g := domain.AdGroup{ID: "g1", Name: "Brand Terms", Status: domain.AdGroupEnabled}

	var prompt string
	deleted, err := c.DeleteAdGroup(context.Background(), g, ConfirmFunc(func(p string) bool {
		prompt = p
		return false
	}))
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Contains(t, prompt, "Brand Terms")
	gw.AssertNotCalled(t, "DeleteAdGroup", mock.Anything, mock.Anything)

	gw.EXPECT().DeleteAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupRemoved}, nil)
	deleted, err = c.DeleteAdGroup(context.Background(), g, ConfirmFunc(func(string) bool { return true }))
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestCreateValidatesFirst(t *testing.T) {
	gw, c := newTestController(t)

	_, err := c.CreateCampaign(context.Background(), domain.CampaignFormData{Name: "  "})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)

	_, err = c.CreateAdGroup(context.Background(), "c1", domain.AdGroupFormData{Name: ""})
	require.ErrorAs(t, err, &validation)

	assert.Empty(t, gw.Calls)
}

func TestCreateCampaignSendsTrimmedDraft(t *testing.T) {
	gw, c := newTestController(t)
	start, _ := domain.ParseDate("2024-03-01")
	end, _ := domain.ParseDate("2024-03-31")
	gw.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(f domain.CampaignFormData) bool {
		return f.Name == "Spring Sale"
	})).Return(&domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}, nil)

	got, err := c.CreateCampaign(context.Background(), domain.CampaignFormData{
		Name: " Spring Sale ", Objective: "Sales", DailyBudget: 50, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

func TestUpdateAdGroupSendsFullPatch(t *testing.T) {
	gw, c := newTestController(t)
	bid := 2.5
	gw.EXPECT().UpdateAdGroup(mock.Anything, "g1", mock.MatchedBy(func(p domain.AdGroupPatch) bool {
		return p.Name != nil && *p.Name == "Brand" && p.Keywords != nil && p.CPCBid != nil && *p.CPCBid == 2.5
	})).Return(&domain.AdGroup{ID: "g1", Name: "Brand", Status: domain.AdGroupEnabled}, nil)

	got, err := c.UpdateAdGroup(context.Background(),
		domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled},
		domain.AdGroupFormData{Name: "Brand", Bidding: domain.Bidding{CPCBid: &bid}})
	require.NoError(t, err)
	assert.Equal(t, "Brand", got.Name)
}

func TestConcurrentUpdateSingleFlight(t *testing.T) {
	gw, c := newTestController(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	gw.EXPECT().UpdateAdGroup(mock.Anything, "g1", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.AdGroupPatch) (*domain.AdGroup, error) {
			calls.Add(1)
			close(entered)
			<-release
			return &domain.AdGroup{ID: "g1", Name: "Brand", Status: domain.AdGroupEnabled}, nil
		}).Once()

	g := domain.AdGroup{ID: "g1", Name: "Brand Terms", Status: domain.AdGroupEnabled}
	var eg errgroup.Group
	eg.Go(func() error {
		_, err := c.UpdateAdGroup(context.Background(), g, domain.AdGroupFormData{Name: "Brand"})
		return err
	})
	<-entered

	_, err := c.UpdateAdGroup(context.Background(), g, domain.AdGroupFormData{Name: "Other"})
	assert.ErrorIs(t, err, domain.ErrAlreadyInProgress)

	var asked bool
	deleted, err := c.DeleteAdGroup(context.Background(), g, ConfirmFunc(func(string) bool {
		asked = true
		return true
	}))
	assert.ErrorIs(t, err, domain.ErrAlreadyInProgress)
	assert.False(t, deleted)
	assert.False(t, asked, "no confirmation while a mutation is outstanding")

	close(release)
	require.NoError(t, eg.Wait())
	assert.EqualValues(t, 1, calls.Load())
	gw.AssertNotCalled(t, "DeleteAdGroup", mock.Anything, mock.Anything)
	assert.False(t, c.InProgress("g1"))
}

func TestConcurrentDeleteSingleFlight(t *testing.T) {
	gw, c := newTestController(t)
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	gw.EXPECT().DeleteAdGroup(mock.Anything, "g1").
		RunAndReturn(func(context.Context, string) (*domain.AdGroup, error) {
			calls.Add(1)
			close(entered)
			<-release
			return &domain.AdGroup{ID: "g1", Status: domain.AdGroupRemoved}, nil
		}).Once()

	g := domain.AdGroup{ID: "g1", Name: "Brand Terms", Status: domain.AdGroupEnabled}
	yes := ConfirmFunc(func(string) bool { return true })

	var eg errgroup.Group
	eg.Go(func() error {
		_, err := c.DeleteAdGroup(context.Background(), g, yes)
		return err
	})
	<-entered

	deleted, err := c.DeleteAdGroup(context.Background(), g, yes)
	assert.ErrorIs(t, err, domain.ErrAlreadyInProgress)
	assert.False(t, deleted)

	_, err = c.PauseAdGroup(context.Background(), g)
	assert.ErrorIs(t, err, domain.ErrAlreadyInProgress)

	close(release)
	require.NoError(t, eg.Wait())
	assert.EqualValues(t, 1, calls.Load())
	gw.AssertNotCalled(t, "PauseAdGroup", mock.Anything, mock.Anything)
	assert.False(t, c.InProgress("g1"))
}

func TestUpdateAdGroupClearsBids(t *testing.T) {
	gw, c := newTestController(t)
	gw.EXPECT().UpdateAdGroup(mock.Anything, "g1", mock.MatchedBy(func(p domain.AdGroupPatch) bool {
		return p.CPCBid == nil && p.ClearCPCBid && p.CPMBid == nil && p.ClearCPMBid
	})).Return(&domain.AdGroup{ID: "g1", Name: "Brand", Status: domain.AdGroupEnabled}, nil)

	bid := 2.5
	_, err := c.UpdateAdGroup(context.Background(),
		domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled, Bidding: domain.Bidding{CPCBid: &bid}},
		domain.AdGroupFormData{Name: "Brand"})
	require.NoError(t, err)
}
