package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/core/port"
)

// CampaignSeeder is a campaign repository that also accepts reported
// metrics.
type CampaignSeeder interface {
	port.CampaignRepository
	UpsertPerformance(ctx context.Context, id string, p domain.Performance) error
}

// Seed inserts demo campaigns, ad groups and performance numbers. It is
// meant for empty development stores and does nothing when campaigns
// already exist.
func Seed(ctx context.Context, campaigns CampaignSeeder, adGroups port.AdGroupRepository) error {
	existing, err := campaigns.ListCampaigns(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	objectives := []string{"Sales", "Leads", "Website traffic", "Brand awareness"}
	statuses := []domain.CampaignStatus{domain.CampaignDraft, domain.CampaignPublished, domain.CampaignPublished, domain.CampaignPaused}
	now := time.Now().UTC()

	for i := 1; i <= 5; i++ {
		status := statuses[r.Intn(len(statuses))]
		start := now.AddDate(0, 0, -r.Intn(20)).Truncate(24 * time.Hour)
		c := domain.NewCampaign(uuid.NewString(), domain.CampaignFormData{
			Name:        fmt.Sprintf("Campaign %d", i),
			Objective:   objectives[r.Intn(len(objectives))],
			DailyBudget: float64(20 + r.Intn(200)),
			StartDate:   domain.Date{Time: start},
			EndDate:     domain.Date{Time: start.AddDate(0, 1, 0)},
		}, now.Add(-time.Duration(i)*time.Hour))
		c.Status = status
		if status != domain.CampaignDraft {
			googleID := fmt.Sprintf("MOCK_CAMPAIGN_ID_SEED_%d", i)
			c.GoogleCampaignID = &googleID
		}
		if err = campaigns.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}

		// only campaigns that reached the platform report metrics
		if status != domain.CampaignDraft {
			if err = campaigns.UpsertPerformance(ctx, c.ID, demoPerformance(r)); err != nil {
				return fmt.Errorf("seed performance %d: %w", i, err)
			}
		}

		for j := 1; j <= 3; j++ {
			cpc := 0.5 + float64(r.Intn(300))/100
			g := domain.NewAdGroup(uuid.NewString(), c.ID, domain.AdGroupFormData{
				Name:      fmt.Sprintf("Ad group %d.%d", i, j),
				Targeting: domain.Targeting{TargetAudience: "Returning visitors", Keywords: "running shoes, trail shoes"},
				Bidding:   domain.Bidding{CPCBid: &cpc},
				Creative: domain.Creative{
					AdHeadline:    fmt.Sprintf("Offer %d", j),
					AdDescription: "Check out our latest offers.",
					FinalURL:      fmt.Sprintf("https://example.com/landing/%d/%d", i, j),
				},
			}, now)
			g.Status = []domain.AdGroupStatus{domain.AdGroupEnabled, domain.AdGroupPaused}[r.Intn(2)]
			if err = adGroups.CreateAdGroup(ctx, g); err != nil {
				return fmt.Errorf("seed ad group %d.%d: %w", i, j, err)
			}
		}
	}
	return nil
}

func demoPerformance(r *rand.Rand) domain.Performance {
	p := domain.Performance{Impressions: int64(1000 + r.Intn(50000))}
	p.Clicks = p.Impressions / int64(20+r.Intn(80))
	p.Cost = float64(p.Clicks) * (0.2 + r.Float64())
	p.Conversions = float64(p.Clicks) * (0.01 + r.Float64()*0.05)
	p.ConversionValue = p.Conversions * float64(20+r.Intn(80))
	if p.Cost > 0 {
		p.ROAS = p.ConversionValue / p.Cost
	}
	return p
}
