package domain

import (
	"strings"
	"time"
)

// AdGroupStatus is the lifecycle state of an ad group. REMOVED is terminal.
type AdGroupStatus string

const (
	AdGroupEnabled AdGroupStatus = "ENABLED"
	AdGroupPaused  AdGroupStatus = "PAUSED"
	AdGroupRemoved AdGroupStatus = "REMOVED"
)

// Creative field limits, in characters.
const (
	MaxHeadlineLen    = 30
	MaxDescriptionLen = 90
)

// Targeting describes who an ad group is shown to. Keywords is a comma
// separated list as entered by the user.
type Targeting struct {
	TargetAudience string `json:"target_audience,omitempty"`
	Keywords       string `json:"keywords,omitempty"`
}

// KeywordList splits Keywords on commas, dropping blanks.
func (t Targeting) KeywordList() []string {
	var out []string
	for _, k := range strings.Split(t.Keywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Bidding holds optional manual bids. Both may be set; the system of record
// decides which one applies.
type Bidding struct {
	CPCBid *float64 `json:"cpc_bid,omitempty"`
	CPMBid *float64 `json:"cpm_bid,omitempty"`
}

// Creative is the text ad attached to an ad group.
type Creative struct {
	AdHeadline     string `json:"ad_headline,omitempty"`
	AdHeadline2    string `json:"ad_headline_2,omitempty"`
	AdHeadline3    string `json:"ad_headline_3,omitempty"`
	AdDescription  string `json:"ad_description,omitempty"`
	AdDescription2 string `json:"ad_description_2,omitempty"`
	FinalURL       string `json:"final_url,omitempty"`
	DisplayURL     string `json:"display_url,omitempty"`
}

// Headlines returns the non-empty headlines in order.
func (c Creative) Headlines() []string {
	return nonEmpty(c.AdHeadline, c.AdHeadline2, c.AdHeadline3)
}

// Descriptions returns the non-empty descriptions in order.
func (c Creative) Descriptions() []string {
	return nonEmpty(c.AdDescription, c.AdDescription2)
}

func nonEmpty(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// AdGroup is a targeting and creative unit owned by exactly one campaign.
// CampaignID never changes after creation.
type AdGroup struct {
	ID         string        `json:"id"`
	CampaignID string        `json:"campaign_id"`
	Name       string        `json:"name"`
	Status     AdGroupStatus `json:"status"`
	Targeting
	Bidding
	Creative
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdGroupFormData is the full draft submitted by the ad group wizard.
type AdGroupFormData struct {
	Name string `json:"name"`
	Targeting
	Bidding
	Creative
}

// FormData returns the editable fields of the ad group, used to pre-fill
// an edit form.
func (g AdGroup) FormData() AdGroupFormData {
	return AdGroupFormData{
		Name:      g.Name,
		Targeting: g.Targeting,
		Bidding:   g.Bidding,
		Creative:  g.Creative,
	}
}

// NewAdGroup builds an ENABLED ad group under campaignID.
func NewAdGroup(id, campaignID string, f AdGroupFormData, now time.Time) AdGroup {
	now = now.UTC()
	return AdGroup{
		ID:         id,
		CampaignID: campaignID,
		Name:       f.Name,
		Status:     AdGroupEnabled,
		Targeting:  f.Targeting,
		Bidding:    f.Bidding,
		Creative:   f.Creative,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AdGroupPatch is a partial update. Nil fields are left untouched. A bid is
// removed only when its Clear flag is set, since an absent and a null bid
// decode the same.
type AdGroupPatch struct {
	Name           *string  `json:"name,omitempty"`
	TargetAudience *string  `json:"target_audience,omitempty"`
	Keywords       *string  `json:"keywords,omitempty"`
	CPCBid         *float64 `json:"cpc_bid,omitempty"`
	CPMBid         *float64 `json:"cpm_bid,omitempty"`
	AdHeadline     *string  `json:"ad_headline,omitempty"`
	AdHeadline2    *string  `json:"ad_headline_2,omitempty"`
	AdHeadline3    *string  `json:"ad_headline_3,omitempty"`
	AdDescription  *string  `json:"ad_description,omitempty"`
	AdDescription2 *string  `json:"ad_description_2,omitempty"`
	FinalURL       *string  `json:"final_url,omitempty"`
	DisplayURL     *string  `json:"display_url,omitempty"`

	ClearCPCBid bool `json:"clear_cpc_bid,omitempty"`
	ClearCPMBid bool `json:"clear_cpm_bid,omitempty"`
}

// PatchFrom returns a patch that sets every field of f. Missing bids are
// cleared.
func PatchFrom(f AdGroupFormData) AdGroupPatch {
	return AdGroupPatch{
		Name:           &f.Name,
		TargetAudience: &f.TargetAudience,
		Keywords:       &f.Keywords,
		CPCBid:         f.CPCBid,
		CPMBid:         f.CPMBid,
		AdHeadline:     &f.AdHeadline,
		AdHeadline2:    &f.AdHeadline2,
		AdHeadline3:    &f.AdHeadline3,
		AdDescription:  &f.AdDescription,
		AdDescription2: &f.AdDescription2,
		FinalURL:       &f.FinalURL,
		DisplayURL:     &f.DisplayURL,
		ClearCPCBid:    f.CPCBid == nil,
		ClearCPMBid:    f.CPMBid == nil,
	}
}

// Apply returns f with the patch applied.
func (p AdGroupPatch) Apply(f AdGroupFormData) AdGroupFormData {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&f.Name, p.Name)
	set(&f.TargetAudience, p.TargetAudience)
	set(&f.Keywords, p.Keywords)
	set(&f.AdHeadline, p.AdHeadline)
	set(&f.AdHeadline2, p.AdHeadline2)
	set(&f.AdHeadline3, p.AdHeadline3)
	set(&f.AdDescription, p.AdDescription)
	set(&f.AdDescription2, p.AdDescription2)
	set(&f.FinalURL, p.FinalURL)
	set(&f.DisplayURL, p.DisplayURL)
	applyBid(&f.CPCBid, p.CPCBid, p.ClearCPCBid)
	applyBid(&f.CPMBid, p.CPMBid, p.ClearCPMBid)
	return f
}

func applyBid(dst **float64, v *float64, drop bool) {
	switch {
	case v != nil:
		*dst = v
	case drop:
		*dst = nil
	}
}
