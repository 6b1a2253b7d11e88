package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/view"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCampaigns(w io.Writer, campaigns []domain.Campaign) error {
	if jsonOut {
		return printJSON(w, campaigns)
	}
	t := table.New().Headers("ID", "NAME", "STATUS", "BUDGET/DAY", "START", "END", "ACTIONS")
	for _, c := range campaigns {
		t.Row(c.ID, c.Name, string(c.Status), strconv.FormatFloat(c.DailyBudget, 'f', 2, 64),
			c.StartDate.String(), c.EndDate.String(), strings.Join(view.Labels(view.CampaignActions(c.Status)), ", "))
	}
	sum := domain.Summarize(campaigns)
	_, err := fmt.Fprintf(w, "%s\n%d campaigns, %d active, %.2f daily budget, avg ROAS %.2f\n",
		t.Render(), sum.Total, sum.Active, sum.TotalDailyBudget, sum.AvgROAS)
	return err
}

func printCampaign(w io.Writer, c *domain.Campaign) error {
	if jsonOut {
		return printJSON(w, c)
	}
	if err := printCampaigns(w, []domain.Campaign{*c}); err != nil {
		return err
	}
	if c.GoogleCampaignID != nil {
		fmt.Fprintf(w, "Google Ads campaign: %s\n", *c.GoogleCampaignID)
	}
	if len(c.AdGroups) > 0 {
		return printAdGroups(w, c.AdGroups)
	}
	return nil
}

func printAdGroups(w io.Writer, groups []domain.AdGroup) error {
	if jsonOut {
		return printJSON(w, groups)
	}
	t := table.New().Headers("ID", "NAME", "STATUS", "CPC", "CPM", "KEYWORDS", "ACTIONS")
	for _, g := range groups {
		t.Row(g.ID, g.Name, string(g.Status), bid(g.CPCBid), bid(g.CPMBid), g.Keywords,
			strings.Join(view.Labels(view.AdGroupActions(g.Status)), ", "))
	}
	enabled, paused := domain.AdGroupCounts(groups)
	_, err := fmt.Fprintf(w, "%s\n%d enabled, %d paused\n", t.Render(), enabled, paused)
	return err
}

func printAdGroup(w io.Writer, g *domain.AdGroup) error {
	if jsonOut {
		return printJSON(w, g)
	}
	return printAdGroups(w, []domain.AdGroup{*g})
}

func bid(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
