package domain

// Verb names a requested status transition.
type Verb string

const (
	VerbPublish Verb = "publish"
	VerbPause   Verb = "pause"
	VerbEnable  Verb = "enable"
	VerbRemove  Verb = "remove"
)

// campaignTransitions lists the allowed campaign transitions. PAUSED has no
// way out.
var campaignTransitions = map[CampaignStatus]map[Verb]CampaignStatus{
	CampaignDraft:     {VerbPublish: CampaignPublished},
	CampaignPublished: {VerbPause: CampaignPaused},
}

var adGroupTransitions = map[AdGroupStatus]map[Verb]AdGroupStatus{
	AdGroupEnabled: {VerbPause: AdGroupPaused, VerbEnable: AdGroupEnabled, VerbRemove: AdGroupRemoved},
	AdGroupPaused:  {VerbEnable: AdGroupEnabled, VerbPause: AdGroupPaused, VerbRemove: AdGroupRemoved},
}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignDraft, CampaignPublished, CampaignPaused:
		return true
	}
	return false
}

// Next returns the status reached by applying v, or an
// *InvalidTransitionError.
func (s CampaignStatus) Next(v Verb) (CampaignStatus, error) {
	if next, ok := campaignTransitions[s][v]; ok {
		return next, nil
	}
	return s, &InvalidTransitionError{Entity: "campaign", From: string(s), Verb: v}
}

// Valid reports whether s is a known ad group status.
func (s AdGroupStatus) Valid() bool {
	switch s {
	case AdGroupEnabled, AdGroupPaused, AdGroupRemoved:
		return true
	}
	return false
}

// Next returns the status reached by applying v. Enable on ENABLED and
// pause on PAUSED are allowed and leave the status as is.
func (s AdGroupStatus) Next(v Verb) (AdGroupStatus, error) {
	if next, ok := adGroupTransitions[s][v]; ok {
		return next, nil
	}
	return s, &InvalidTransitionError{Entity: "ad group", From: string(s), Verb: v}
}

// Toggle returns the verb that flips an ad group between ENABLED and PAUSED.
func (s AdGroupStatus) Toggle() Verb {
	if s == AdGroupEnabled {
		return VerbPause
	}
	return VerbEnable
}
