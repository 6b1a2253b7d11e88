package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-manager/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
    c.id::text,
    c.name,
    c.objective,
    c.campaign_type,
    c.daily_budget::float8,
    c.target_cpa,
    c.bidding_strategy,
    c.start_date,
    c.end_date,
    c.status,
    c.google_campaign_id,
    c.created_at,
    p.impressions,
    p.clicks,
    p.cost,
    p.conversions,
    p.conversion_value,
    p.roas`

const campaignFrom = `
FROM campaigns c
LEFT JOIN campaign_performance p ON p.campaign_id = c.id`

// ListCampaigns returns all campaigns, newest first.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT`+campaignColumns+campaignFrom+` ORDER BY c.created_at DESC, c.id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if !validID(id) {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	row := r.pool.QueryRow(ctx, `SELECT`+campaignColumns+campaignFrom+` WHERE c.id = $1::uuid`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a new campaign.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns
            (id, name, objective, campaign_type, daily_budget, target_cpa, bidding_strategy,
             start_date, end_date, status, google_campaign_id, created_at)
        VALUES ($1::uuid,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Objective, c.CampaignType, c.DailyBudget, c.TargetCPA, c.BiddingStrategy,
		c.StartDate.Time, c.EndDate.Time, string(c.Status), c.GoogleCampaignID, c.CreatedAt)
	return err
}

// UpdateCampaignStatus stores a new status and, if given, the platform id.
func (r *CampaignRepository) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, googleID *string) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET status = $2, google_campaign_id = COALESCE($3, google_campaign_id)
        WHERE id = $1::uuid`,
		id, string(status), googleID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpsertPerformance stores the latest reported metrics of a campaign.
func (r *CampaignRepository) UpsertPerformance(ctx context.Context, id string, p domain.Performance) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaign_performance
            (campaign_id, impressions, clicks, cost, conversions, conversion_value, roas, updated_at)
        VALUES ($1::uuid,$2,$3,$4,$5,$6,$7,now())
        ON CONFLICT (campaign_id) DO UPDATE SET
            impressions = EXCLUDED.impressions,
            clicks = EXCLUDED.clicks,
            cost = EXCLUDED.cost,
            conversions = EXCLUDED.conversions,
            conversion_value = EXCLUDED.conversion_value,
            roas = EXCLUDED.roas,
            updated_at = now()`,
		id, p.Impressions, p.Clicks, p.Cost, p.Conversions, p.ConversionValue, p.ROAS)
	return err
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
		// performance columns are NULL when no metrics were reported
		impressions, clicks                      *int64
		cost, conversions, conversionValue, roas *float64
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Objective,
		&c.CampaignType,
		&c.DailyBudget,
		&c.TargetCPA,
		&c.BiddingStrategy,
		&c.StartDate.Time,
		&c.EndDate.Time,
		&status,
		&c.GoogleCampaignID,
		&c.CreatedAt,
		&impressions,
		&clicks,
		&cost,
		&conversions,
		&conversionValue,
		&roas,
	)
	if err != nil {
		return c, err
	}
	c.Status = domain.CampaignStatus(status)
	if !c.Status.Valid() {
		return c, fmt.Errorf("campaign %s: unknown status %q", c.ID, status)
	}
	if impressions != nil {
		c.Performance = &domain.Performance{
			Impressions:     *impressions,
			Clicks:          deref(clicks),
			Cost:            deref(cost),
			Conversions:     deref(conversions),
			ConversionValue: deref(conversionValue),
			ROAS:            deref(roas),
		}
	}
	return c, nil
}

// validID reports whether id can be a primary key. Anything else can't
// match a row, and postgres would reject the cast.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
