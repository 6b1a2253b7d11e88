// Package view coordinates what the admin client shows: the current
// screen, the selected campaign and ad group, and the lists on display.
package view

import (
	"errors"

	"campaign-manager/internal/core/domain"
)

// Screen is one of the four mutually exclusive screens.
type Screen string

const (
	ScreenCampaignList Screen = "campaign-list"
	ScreenCampaignForm Screen = "campaign-form"
	ScreenAdGroupList  Screen = "adgroup-list"
	ScreenAdGroupForm  Screen = "adgroup-form"
)

// ErrNoCampaign is returned by ad group actions while no campaign is
// selected.
var ErrNoCampaign = errors.New("no campaign selected")

// State is the serializable view state. AdGroupList and AdGroupForm always
// carry a Campaign; AdGroup is set only while an ad group is being edited.
type State struct {
	Screen   Screen           `json:"screen"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
	AdGroup  *domain.AdGroup  `json:"ad_group,omitempty"`
}

// Editing reports whether the ad group form edits an existing ad group.
func (s State) Editing() bool {
	return s.Screen == ScreenAdGroupForm && s.AdGroup != nil
}

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a transient message for the user.
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier shows notifications. Implementations must not block.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
