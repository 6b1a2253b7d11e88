package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/db"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, db.Seed(ctx, store, store))

	campaigns, err := store.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 5)
	for _, c := range campaigns {
		assert.True(t, c.Status.Valid(), c.Status)
		if c.Status == domain.CampaignDraft {
			assert.Nil(t, c.Performance, c.Name)
			assert.Nil(t, c.GoogleCampaignID, c.Name)
		} else {
			require.NotNil(t, c.Performance, c.Name)
			assert.Positive(t, c.Impressions, c.Name)
			require.NotNil(t, c.GoogleCampaignID, c.Name)
		}

		groups, err := store.ListAdGroups(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, groups, 3)
	}

	// a second run leaves existing data alone
	require.NoError(t, db.Seed(ctx, store, store))
	campaigns, err = store.ListCampaigns(ctx)
	require.NoError(t, err)
	assert.Len(t, campaigns, 5)
}
