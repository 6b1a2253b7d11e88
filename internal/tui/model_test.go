package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port/mocks"
	"campaign-manager/internal/lifecycle"
	"campaign-manager/internal/logging"
	"campaign-manager/internal/view"
)

func newTestModel(t *testing.T) (*mocks.MockGateway, tea.Model) {
	gw := mocks.NewMockGateway(t)
	logger := logging.Discard()
	inbox := &Inbox{}
	coord := view.NewCoordinator(gw, lifecycle.NewController(gw, logger), inbox, logger)
	return gw, New(context.Background(), coord, inbox)
}

// drive feeds msg to m and runs the resulting command chain while it
// produces action results.
func drive(m tea.Model, msg tea.Msg) tea.Model {
	next, cmd := m.Update(msg)
	for cmd != nil {
		done, ok := cmd().(doneMsg)
		if !ok {
			break
		}
		next, cmd = next.Update(done)
	}
	return next
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func start(m tea.Model) tea.Model {
	done := m.Init()().(doneMsg)
	next, _ := m.Update(done)
	return next
}

func TestCampaignListAndPublish(t *testing.T) {
	gw, m := newTestModel(t)
	draft := domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft, DailyBudget: 50}
	published := draft
	published.Status = domain.CampaignPublished

	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{draft}, nil).Once()
	m = start(m)
	out := m.View()
	assert.Contains(t, out, "Spring Sale")
	assert.Contains(t, out, "Publish")

	gw.EXPECT().PublishCampaign(mock.Anything, "c1").Return(&published, nil)
	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{published}, nil).Once()
	m = drive(m, key("p"))
	out = m.View()
	assert.Contains(t, out, "Disable")
	assert.Contains(t, out, "Campaign published")
}

func TestPublishRejectedShowsServerMessage(t *testing.T) {
	gw, m := newTestModel(t)
	draft := domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}
	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{draft}, nil)
	gw.EXPECT().PublishCampaign(mock.Anything, "c1").
		Return(nil, &domain.ServerFaultError{Status: 502, Message: "Google Ads API Error: quota"})

	m = start(m)
	m = drive(m, key("p"))
	assert.Contains(t, m.View(), "Google Ads API Error: quota")
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	gw, m := newTestModel(t)
	c := domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}
	g := domain.AdGroup{ID: "g1", CampaignID: "c1", Name: "Brand Terms", Status: domain.AdGroupEnabled}

	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{c}, nil)
	gw.EXPECT().ListAdGroups(mock.Anything, "c1").Return([]domain.AdGroup{g}, nil).Once()
	m = start(m)
	m = drive(m, key("enter"))
	require.Contains(t, m.View(), "Ad groups of Spring Sale")
	assert.Contains(t, m.View(), "Pause Delete")

	m = drive(m, key("x"))
	assert.Contains(t, m.View(), `Delete ad group "Brand Terms"?`)
	m = drive(m, key("n"))
	assert.NotContains(t, m.View(), "Delete ad group")
	gw.AssertNotCalled(t, "DeleteAdGroup", mock.Anything, mock.Anything)

	gw.EXPECT().DeleteAdGroup(mock.Anything, "g1").Return(&domain.AdGroup{ID: "g1", Status: domain.AdGroupRemoved}, nil)
	gw.EXPECT().ListAdGroups(mock.Anything, "c1").Return(nil, nil).Once()
	m = drive(m, key("x"))
	m = drive(m, key("y"))
	out := m.View()
	assert.Contains(t, out, "Ad group deleted")
	assert.Contains(t, out, "No ad groups yet")
}

func TestCampaignForm(t *testing.T) {
	gw, m := newTestModel(t)
	gw.EXPECT().ListCampaigns(mock.Anything).Return(nil, nil).Once()
	m = start(m)

	m = drive(m, key("n"))
	require.Contains(t, m.View(), "New campaign")
	for _, v := range []string{"Spring Sale", "Sales", "50", "2024-03-01", "2024-03-31"} {
		m = drive(m, key(v))
		m = drive(m, key("tab"))
	}

	created := domain.Campaign{ID: "c1", Name: "Spring Sale", Status: domain.CampaignDraft}
	gw.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(f domain.CampaignFormData) bool {
		return f.Name == "Spring Sale" && f.DailyBudget == 50 && f.EndDate.String() == "2024-03-31" && f.TargetCPA == nil
	})).Return(&created, nil)
	gw.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{created}, nil).Once()
	m = drive(m, key("enter"))

	out := m.View()
	assert.True(t, strings.Contains(out, "Campaign Spring Sale created"), out)
	assert.Contains(t, out, "Campaigns")
}
