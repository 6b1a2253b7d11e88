package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
	"campaign-manager/internal/core/port/mocks"
)

type fixture struct {
	campaigns *mocks.MockCampaignRepository
	adGroups  *mocks.MockAdGroupRepository
	provider  *mocks.MockAdsProvider
	svc       *CampaignUseCase
}

func newFixture(t *testing.T) fixture {
	f := fixture{
		campaigns: mocks.NewMockCampaignRepository(t),
		adGroups:  mocks.NewMockAdGroupRepository(t),
		provider:  mocks.NewMockAdsProvider(t),
	}
	f.svc = NewCampaignUseCase(f.campaigns, f.adGroups, f.provider, memory.NewLocker(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc.now = func() time.Time { return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC) }
	f.svc.newID = func() string { return "new-id" }
	return f
}

func ptr[T any](v T) *T { return &v }

// TestPublishCampaign ensures only enabled ad groups are sent to the
// provider and the platform id is stored with the new status.
func TestPublishCampaign(t *testing.T) {
	f := newFixture(t)
	draft := &domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}
	groups := []domain.AdGroup{
		{ID: "g1", CampaignID: "c1", Status: domain.AdGroupEnabled},
		{ID: "g2", CampaignID: "c1", Status: domain.AdGroupPaused},
	}

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft, nil).Once()
	f.adGroups.EXPECT().ListAdGroups(mock.Anything, "c1").Return(groups, nil)
	f.provider.EXPECT().
		PublishCampaign(mock.Anything, *draft, mock.MatchedBy(func(gs []domain.AdGroup) bool {
			return len(gs) == 1 && gs[0].ID == "g1"
		})).
		Return("G-100", nil)
	f.campaigns.EXPECT().
		UpdateCampaignStatus(mock.Anything, "c1", domain.CampaignPublished, ptr("G-100")).
		Return(nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPublished, GoogleCampaignID: ptr("G-100")}, nil).Once()

	got, err := f.svc.PublishCampaign(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPublished, got.Status)
	assert.Equal(t, "G-100", *got.GoogleCampaignID)
}

func TestPublishCampaignStatusWriteFails(t *testing.T) {
	f := newFixture(t)
	var logs bytes.Buffer
	f.svc.logger = slog.New(slog.NewTextHandler(&logs, nil))
	draft := &domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(draft, nil).Once()
	f.adGroups.EXPECT().ListAdGroups(mock.Anything, "c1").Return(nil, nil)
	f.provider.EXPECT().PublishCampaign(mock.Anything, *draft, mock.Anything).
		RunAndReturn(func(context.Context, domain.Campaign, []domain.AdGroup) (string, error) {
			cancel()
			return "G-100", nil
		})
	dbErr := errors.New("connection reset")
	f.campaigns.EXPECT().
		UpdateCampaignStatus(mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil }),
			"c1", domain.CampaignPublished, ptr("G-100")).
		Return(dbErr)

	_, err := f.svc.PublishCampaign(ctx, "c1")
	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "google_campaign_id=G-100")
}

func TestPublishCampaignRejectsNonDraft(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.CampaignPublished, domain.CampaignPaused} {
		f := newFixture(t)
		f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Status: status}, nil)

		_, err := f.svc.PublishCampaign(context.Background(), "c1")
		var tErr *domain.InvalidTransitionError
		require.ErrorAs(t, err, &tErr, "status %s", status)
	}
}

func TestPublishCampaignProviderError(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.CampaignDraft}, nil)
	f.adGroups.EXPECT().ListAdGroups(mock.Anything, "c1").Return(nil, nil)
	f.provider.EXPECT().PublishCampaign(mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := f.svc.PublishCampaign(context.Background(), "c1")
	require.ErrorIs(t, err, port.ErrProvider)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestPauseCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPublished, GoogleCampaignID: ptr("G-1")}, nil).Once()
	f.provider.EXPECT().PauseCampaign(mock.Anything, "G-1").Return(nil)
	f.campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, "c1", domain.CampaignPaused, (*string)(nil)).Return(nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").
		Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPaused}, nil).Once()

	got, err := f.svc.PauseCampaign(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, got.Status)
}

func TestPauseCampaignRequiresPublished(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.CampaignDraft}, nil)

	_, err := f.svc.PauseCampaign(context.Background(), "c1")
	var tErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &tErr)
}

// TestConcurrentPublish ensures a second publish of the same campaign is
// rejected while the first one is talking to the provider.
func TestConcurrentPublish(t *testing.T) {
	f := newFixture(t)
	entered := make(chan struct{})
	release := make(chan struct{})

	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.CampaignDraft}, nil).Once()
	f.adGroups.EXPECT().ListAdGroups(mock.Anything, "c1").Return(nil, nil)
	f.provider.EXPECT().PublishCampaign(mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, domain.Campaign, []domain.AdGroup) {
			close(entered)
			<-release
		}).
		Return("G-1", nil).Once()
	f.campaigns.EXPECT().UpdateCampaignStatus(mock.Anything, "c1", domain.CampaignPublished, ptr("G-1")).Return(nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Status: domain.CampaignPublished}, nil).Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.svc.PublishCampaign(context.Background(), "c1")
	}()

	<-entered
	_, err := f.svc.PublishCampaign(context.Background(), "c1")
	require.ErrorIs(t, err, port.ErrTransitionInProgress)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestCreateCampaign(t *testing.T) {
	f := newFixture(t)
	start, _ := domain.ParseDate("2024-03-01")
	end, _ := domain.ParseDate("2024-03-31")

	f.campaigns.EXPECT().
		CreateCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.ID == "new-id" && c.Status == domain.CampaignDraft &&
				c.CampaignType == domain.DefaultCampaignType && c.Name == "Spring Sale"
		})).
		Return(nil)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "new-id").
		Return(&domain.Campaign{ID: "new-id", Name: "Spring Sale", Status: domain.CampaignDraft}, nil)

	got, err := f.svc.CreateCampaign(context.Background(), domain.CampaignFormData{
		Name: " Spring Sale ", Objective: "Sales", DailyBudget: 50, StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignDraft, got.Status)
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateCampaign(context.Background(), domain.CampaignFormData{Name: ""})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreateAdGroup(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1"}, nil)
	f.adGroups.EXPECT().
		CreateAdGroup(mock.Anything, mock.MatchedBy(func(g domain.AdGroup) bool {
			return g.CampaignID == "c1" && g.Status == domain.AdGroupEnabled && *g.CPCBid == 2.5
		})).
		Return(nil)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "new-id").
		Return(&domain.AdGroup{ID: "new-id", CampaignID: "c1", Status: domain.AdGroupEnabled}, nil)

	got, err := f.svc.CreateAdGroup(context.Background(), "c1", domain.AdGroupFormData{
		Name: "Brand Terms", Bidding: domain.Bidding{CPCBid: ptr(2.5)},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, got.Status)
}

func TestCreateAdGroupEnforcesCreativeLimits(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateAdGroup(context.Background(), "c1", domain.AdGroupFormData{
		Name:     "Brand",
		Creative: domain.Creative{AdHeadline: "a headline that is well over thirty characters"},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ad_headline", vErr.Field)
}

func TestCreateAdGroupUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	f.campaigns.EXPECT().GetCampaign(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	_, err := f.svc.CreateAdGroup(context.Background(), "nope", domain.AdGroupFormData{Name: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdGroupTransitions(t *testing.T) {
	f := newFixture(t)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled}, nil).Once()
	f.adGroups.EXPECT().
		UpdateAdGroup(mock.Anything, mock.MatchedBy(func(g domain.AdGroup) bool { return g.Status == domain.AdGroupPaused })).
		Return(nil).Once()
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupPaused}, nil).Once()

	got, err := f.svc.PauseAdGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupPaused, got.Status)
}

func TestEnableEnabledAdGroupIsNoop(t *testing.T) {
	f := newFixture(t)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupEnabled}, nil)

	got, err := f.svc.EnableAdGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupEnabled, got.Status)
	f.adGroups.AssertNotCalled(t, "UpdateAdGroup", mock.Anything, mock.Anything)
}

func TestDeleteAdGroup(t *testing.T) {
	f := newFixture(t)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupPaused}, nil).Once()
	f.adGroups.EXPECT().
		UpdateAdGroup(mock.Anything, mock.MatchedBy(func(g domain.AdGroup) bool { return g.Status == domain.AdGroupRemoved })).
		Return(nil)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupRemoved}, nil).Once()

	got, err := f.svc.DeleteAdGroup(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, domain.AdGroupRemoved, got.Status)
}

func TestRemovedAdGroupIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", Name: "x", Status: domain.AdGroupRemoved}, nil)

	var tErr *domain.InvalidTransitionError
	_, err := f.svc.EnableAdGroup(context.Background(), "g1")
	require.ErrorAs(t, err, &tErr)
	_, err = f.svc.DeleteAdGroup(context.Background(), "g1")
	require.ErrorAs(t, err, &tErr)
	_, err = f.svc.UpdateAdGroup(context.Background(), "g1", domain.AdGroupPatch{Name: ptr("y")})
	require.ErrorAs(t, err, &tErr)
}

func TestUpdateAdGroup(t *testing.T) {
	f := newFixture(t)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", CampaignID: "c1", Name: "Old", Status: domain.AdGroupEnabled,
			Targeting: domain.Targeting{Keywords: "a"}}, nil).Once()
	f.adGroups.EXPECT().
		UpdateAdGroup(mock.Anything, mock.MatchedBy(func(g domain.AdGroup) bool {
			return g.Name == "New" && g.Keywords == "a" && g.CampaignID == "c1" && *g.CPMBid == 4
		})).
		Return(nil)
	f.adGroups.EXPECT().GetAdGroup(mock.Anything, "g1").
		Return(&domain.AdGroup{ID: "g1", CampaignID: "c1", Name: "New"}, nil).Once()

	got, err := f.svc.UpdateAdGroup(context.Background(), "g1", domain.AdGroupPatch{Name: ptr(" New "), CPMBid: ptr(4.0)})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}
