package domain

// Summary is the dashboard aggregation over a campaign list.
type Summary struct {
	Total            int
	Active           int
	TotalDailyBudget float64
	AvgROAS          float64
}

// Summarize aggregates campaigns for display. AvgROAS averages only the
// campaigns that report a positive ROAS.
func Summarize(campaigns []Campaign) Summary {
	var (
		s        = Summary{Total: len(campaigns)}
		roasSum  float64
		roasSeen int
	)
	for _, c := range campaigns {
		s.TotalDailyBudget += c.DailyBudget
		if c.Status == CampaignPublished {
			s.Active++
		}
		if c.Performance != nil && c.ROAS > 0 {
			roasSum += c.ROAS
			roasSeen++
		}
	}
	if roasSeen > 0 {
		s.AvgROAS = roasSum / float64(roasSeen)
	}
	return s
}

// AdGroupCounts returns how many ad groups are enabled and paused.
func AdGroupCounts(groups []AdGroup) (enabled, paused int) {
	for _, g := range groups {
		switch g.Status {
		case AdGroupEnabled:
			enabled++
		case AdGroupPaused:
			paused++
		}
	}
	return enabled, paused
}
