package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign. Only the system of
// record changes it; clients request transitions.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "DRAFT"
	CampaignPublished CampaignStatus = "PUBLISHED"
	CampaignPaused    CampaignStatus = "PAUSED"
)

// Defaults applied by the system of record when the draft leaves them empty.
const (
	DefaultCampaignType    = "Demand Gen"
	DefaultBiddingStrategy = "MAXIMIZE_CONVERSIONS"
)

// Campaign represents an advertising campaign. It is the aggregate root
// for ad groups.
type Campaign struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Objective        string         `json:"objective"`
	CampaignType     string         `json:"campaign_type"`
	DailyBudget      float64        `json:"daily_budget"`
	TargetCPA        *float64       `json:"target_cpa,omitempty"`
	BiddingStrategy  string         `json:"bidding_strategy,omitempty"`
	StartDate        Date           `json:"start_date"`
	EndDate          Date           `json:"end_date"`
	Status           CampaignStatus `json:"status"`
	GoogleCampaignID *string        `json:"google_campaign_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`

	// Performance is read-only and filled in by the system of record.
	*Performance

	// AdGroups is only populated when a single campaign is read. List
	// responses leave it out.
	AdGroups []AdGroup `json:"ad_groups,omitempty"`
}

// Performance holds delivery metrics reported for a campaign.
type Performance struct {
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Cost            float64 `json:"cost"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	ROAS            float64 `json:"roas"`
}

// CampaignFormData is the user-submitted draft of a new campaign.
type CampaignFormData struct {
	Name            string   `json:"name"`
	Objective       string   `json:"objective"`
	CampaignType    string   `json:"campaign_type,omitempty"`
	DailyBudget     float64  `json:"daily_budget"`
	StartDate       Date     `json:"start_date"`
	EndDate         Date     `json:"end_date"`
	TargetCPA       *float64 `json:"target_cpa,omitempty"`
	BiddingStrategy string   `json:"bidding_strategy,omitempty"`
}

// NewCampaign builds a DRAFT campaign from a validated draft.
func NewCampaign(id string, f CampaignFormData, now time.Time) Campaign {
	c := Campaign{
		ID:              id,
		Name:            f.Name,
		Objective:       f.Objective,
		CampaignType:    f.CampaignType,
		DailyBudget:     f.DailyBudget,
		TargetCPA:       f.TargetCPA,
		BiddingStrategy: f.BiddingStrategy,
		StartDate:       f.StartDate,
		EndDate:         f.EndDate,
		Status:          CampaignDraft,
		CreatedAt:       now.UTC(),
	}
	if c.CampaignType == "" {
		c.CampaignType = DefaultCampaignType
	}
	if c.BiddingStrategy == "" {
		c.BiddingStrategy = DefaultBiddingStrategy
	}
	return c
}
