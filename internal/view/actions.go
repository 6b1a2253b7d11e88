package view

import "campaign-manager/internal/core/domain"

// Action is a button offered for an entity row.
type Action struct {
	Label string
	Verb  domain.Verb
}

// CampaignActions lists the transitions offered for a campaign. A
// published campaign is paused through the "Disable" label.
func CampaignActions(s domain.CampaignStatus) []Action {
	switch s {
	case domain.CampaignDraft:
		return []Action{{Label: "Publish", Verb: domain.VerbPublish}}
	case domain.CampaignPublished:
		return []Action{{Label: "Disable", Verb: domain.VerbPause}}
	}
	return nil
}

// AdGroupActions lists the transitions offered for an ad group.
func AdGroupActions(s domain.AdGroupStatus) []Action {
	switch s {
	case domain.AdGroupEnabled:
		return []Action{{Label: "Pause", Verb: domain.VerbPause}, {Label: "Delete", Verb: domain.VerbRemove}}
	case domain.AdGroupPaused:
		return []Action{{Label: "Enable", Verb: domain.VerbEnable}, {Label: "Delete", Verb: domain.VerbRemove}}
	}
	return nil
}

// Labels returns the labels of actions, in order.
func Labels(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Label
	}
	return out
}
