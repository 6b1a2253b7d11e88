package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-manager/internal/adapter/googleads"
	httpadapter "campaign-manager/internal/adapter/http"
	"campaign-manager/internal/adapter/memory"
	"campaign-manager/internal/adapter/usecase"
	"campaign-manager/internal/core/domain"
	"campaign-manager/internal/logging"
)

func TestPromptConfirmer(t *testing.T) {
	cases := map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "": false}
	for in, want := range cases {
		var out bytes.Buffer
		got := promptConfirmer{in: strings.NewReader(in), out: &out}.Confirm("Delete?")
		assert.Equal(t, want, got, "%q", in)
		assert.Equal(t, "Delete? [y/N] ", out.String())
	}
}

func TestChangedFields(t *testing.T) {
	cpc := 1.0
	base := domain.AdGroupFormData{Name: "Old", Targeting: domain.Targeting{Keywords: "a,b"}, Bidding: domain.Bidding{CPCBid: &cpc}}
	require.NoError(t, adGroupsUpdateCmd.ParseFlags([]string{"--name", "New", "--cpm", "3"}))

	got := changedFields(adGroupsUpdateCmd.Flags(), base)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "a,b", got.Keywords)
	assert.Equal(t, 1.0, *got.CPCBid)
	require.NotNil(t, got.CPMBid)
	assert.Equal(t, 3.0, *got.CPMBid)
}

// TestCommands runs adsctl against an in-process server.
func TestCommands(t *testing.T) {
	logger := logging.Discard()
	store := memory.NewStore()
	svc := usecase.NewCampaignUseCase(store, store, googleads.NewMock(logger), memory.NewLocker(), logger)
	srv := httptest.NewServer(httpadapter.NewHandler(svc, logger, httpadapter.Options{}).Router())
	defer srv.Close()

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(append([]string{"--api", srv.URL + "/api", "--json"}, args...))
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("campaigns", "create", "--name", "Spring Sale", "--objective", "Sales",
		"--budget", "50", "--start", "2024-03-01", "--end", "2024-03-31")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"status": "DRAFT"`)

	campaigns, err := store.ListCampaigns(t.Context())
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	id := campaigns[0].ID

	out, err = run("campaigns", "publish", id)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"status": "PUBLISHED"`)

	out, err = run("campaigns", "disable", id)
	require.NoError(t, err, out)
	assert.Contains(t, out, `"status": "PAUSED"`)

	_, err = run("campaigns", "publish", id)
	var invalid *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)

	_, err = run("campaigns", "get", "missing")
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusNotFound, rejected.Status)
}
