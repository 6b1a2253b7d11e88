package domain

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ValidateCampaignDraft checks a campaign draft before it is sent to the
// system of record. The returned draft has its text fields trimmed.
func ValidateCampaignDraft(f CampaignFormData) (CampaignFormData, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Objective = strings.TrimSpace(f.Objective)
	f.CampaignType = strings.TrimSpace(f.CampaignType)

	if f.Name == "" {
		return f, &ValidationError{Field: "name", Reason: "is required"}
	}
	if f.Objective == "" {
		return f, &ValidationError{Field: "objective", Reason: "is required"}
	}
	if math.IsNaN(f.DailyBudget) || math.IsInf(f.DailyBudget, 0) {
		return f, &ValidationError{Field: "daily_budget", Reason: "must be a number"}
	}
	if f.DailyBudget < 0 {
		return f, &ValidationError{Field: "daily_budget", Reason: "must not be negative"}
	}
	if f.TargetCPA != nil && (*f.TargetCPA < 0 || math.IsNaN(*f.TargetCPA)) {
		return f, &ValidationError{Field: "target_cpa", Reason: "must not be negative"}
	}
	if f.StartDate.IsZero() {
		return f, &ValidationError{Field: "start_date", Reason: "is required"}
	}
	if f.EndDate.IsZero() {
		return f, &ValidationError{Field: "end_date", Reason: "is required"}
	}
	if f.StartDate.After(f.EndDate.Time) {
		return f, &ValidationError{Field: "start_date", Reason: "must not be after end_date"}
	}
	return f, nil
}

// ValidateAdGroupDraft checks an ad group draft. Creative lengths are not
// checked here, see CreativeLimits.
func ValidateAdGroupDraft(f AdGroupFormData) (AdGroupFormData, error) {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return f, &ValidationError{Field: "name", Reason: "is required"}
	}
	if err := checkBid("cpc_bid", f.CPCBid); err != nil {
		return f, err
	}
	if err := checkBid("cpm_bid", f.CPMBid); err != nil {
		return f, err
	}
	return f, nil
}

func checkBid(field string, bid *float64) error {
	if bid == nil {
		return nil
	}
	if math.IsNaN(*bid) || math.IsInf(*bid, 0) {
		return &ValidationError{Field: field, Reason: "must be a number"}
	}
	if *bid < 0 {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

// CreativeLimits reports every headline or description that is longer
// than allowed. Clients use it as a hint; the server rejects the draft.
func CreativeLimits(f AdGroupFormData) []ValidationError {
	var out []ValidationError
	check := func(field, v string, limit int) {
		if n := utf8.RuneCountInString(v); n > limit {
			out = append(out, ValidationError{
				Field:  field,
				Reason: fmt.Sprintf("is %d characters, at most %d allowed", n, limit),
			})
		}
	}
	check("ad_headline", f.AdHeadline, MaxHeadlineLen)
	check("ad_headline_2", f.AdHeadline2, MaxHeadlineLen)
	check("ad_headline_3", f.AdHeadline3, MaxHeadlineLen)
	check("ad_description", f.AdDescription, MaxDescriptionLen)
	check("ad_description_2", f.AdDescription2, MaxDescriptionLen)
	return out
}
