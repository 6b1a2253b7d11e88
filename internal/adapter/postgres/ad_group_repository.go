package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-manager/internal/core/domain"
)

// AdGroupRepository implements port.AdGroupRepository using pgxpool.
type AdGroupRepository struct {
	pool *pgxpool.Pool
}

// NewAdGroupRepository returns a new repository instance.
func NewAdGroupRepository(pool *pgxpool.Pool) *AdGroupRepository {
	return &AdGroupRepository{pool: pool}
}

const adGroupColumns = `
    id::text,
    campaign_id::text,
    name,
    status,
    target_audience,
    keywords,
    cpc_bid,
    cpm_bid,
    ad_headline,
    ad_headline_2,
    ad_headline_3,
    ad_description,
    ad_description_2,
    final_url,
    display_url,
    created_at,
    updated_at`

// ListAdGroups returns the non-removed ad groups of a campaign.
func (r *AdGroupRepository) ListAdGroups(ctx context.Context, campaignID string) ([]domain.AdGroup, error) {
	if !validID(campaignID) {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT`+adGroupColumns+`
        FROM ad_groups
        WHERE campaign_id = $1::uuid AND status <> 'REMOVED'
        ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdGroup, error) {
		return scanAdGroup(row)
	})
}

// GetAdGroup returns an ad group by id.
func (r *AdGroupRepository) GetAdGroup(ctx context.Context, id string) (*domain.AdGroup, error) {
	if !validID(id) {
		return nil, fmt.Errorf("ad group %s: %w", id, domain.ErrNotFound)
	}
	g, err := scanAdGroup(r.pool.QueryRow(ctx, `SELECT`+adGroupColumns+` FROM ad_groups WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("ad group %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// CreateAdGroup inserts a new ad group.
func (r *AdGroupRepository) CreateAdGroup(ctx context.Context, g domain.AdGroup) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO ad_groups
            (id, campaign_id, name, status, target_audience, keywords, cpc_bid, cpm_bid,
             ad_headline, ad_headline_2, ad_headline_3, ad_description, ad_description_2,
             final_url, display_url, created_at, updated_at)
        VALUES ($1::uuid,$2::uuid,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		g.ID, g.CampaignID, g.Name, string(g.Status), g.TargetAudience, g.Keywords, g.CPCBid, g.CPMBid,
		g.AdHeadline, g.AdHeadline2, g.AdHeadline3, g.AdDescription, g.AdDescription2,
		g.FinalURL, g.DisplayURL, g.CreatedAt, g.UpdatedAt)
	return err
}

// UpdateAdGroup overwrites the editable fields and the status. The owning
// campaign is never changed.
func (r *AdGroupRepository) UpdateAdGroup(ctx context.Context, g domain.AdGroup) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE ad_groups SET
            name = $2, status = $3, target_audience = $4, keywords = $5, cpc_bid = $6, cpm_bid = $7,
            ad_headline = $8, ad_headline_2 = $9, ad_headline_3 = $10,
            ad_description = $11, ad_description_2 = $12,
            final_url = $13, display_url = $14, updated_at = $15
        WHERE id = $1::uuid`,
		g.ID, g.Name, string(g.Status), g.TargetAudience, g.Keywords, g.CPCBid, g.CPMBid,
		g.AdHeadline, g.AdHeadline2, g.AdHeadline3, g.AdDescription, g.AdDescription2,
		g.FinalURL, g.DisplayURL, g.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ad group %s: %w", g.ID, domain.ErrNotFound)
	}
	return nil
}

func scanAdGroup(row pgx.Row) (domain.AdGroup, error) {
	var (
		g      domain.AdGroup
		status string
	)
	err := row.Scan(
		&g.ID,
		&g.CampaignID,
		&g.Name,
		&status,
		&g.TargetAudience,
		&g.Keywords,
		&g.CPCBid,
		&g.CPMBid,
		&g.AdHeadline,
		&g.AdHeadline2,
		&g.AdHeadline3,
		&g.AdDescription,
		&g.AdDescription2,
		&g.FinalURL,
		&g.DisplayURL,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return g, err
	}
	g.Status = domain.AdGroupStatus(status)
	if !g.Status.Valid() {
		return g, fmt.Errorf("ad group %s: unknown status %q", g.ID, status)
	}
	return g, nil
}
