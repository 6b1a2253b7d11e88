// Package tui is the interactive terminal front end of adsctl. It renders
// the view coordinator's state and turns key presses into its actions.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"campaign-manager/internal/core/domain"
)

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6b7280")
	colorError   = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
	colorInfo    = lipgloss.Color("#2196F3")
)

// Styles groups the lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Label    lipgloss.Style
	Box      lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorInfo),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Success:  lipgloss.NewStyle().Foreground(colorAccent),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Warning:  lipgloss.NewStyle().Foreground(colorWarning),
		Label:    lipgloss.NewStyle().Width(18),
		Box:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
	}
}

func (s Styles) campaignStatus(st domain.CampaignStatus) lipgloss.Style {
	switch st {
	case domain.CampaignPublished:
		return s.Success
	case domain.CampaignPaused:
		return s.Warning
	}
	return s.Muted
}

func (s Styles) adGroupStatus(st domain.AdGroupStatus) lipgloss.Style {
	switch st {
	case domain.AdGroupEnabled:
		return s.Success
	case domain.AdGroupPaused:
		return s.Warning
	}
	return s.Error
}
