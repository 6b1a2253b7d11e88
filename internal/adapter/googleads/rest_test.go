package googleads

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"campaign-manager/internal/config/configs"
	"campaign-manager/internal/core/domain"
)

type recorded struct {
	path   string
	header http.Header
	body   mutateRequest
}

type fakeAds struct {
	mu   sync.Mutex
	reqs []recorded
	fail string
}

func (f *fakeAds) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body mutateRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.mu.Lock()
	f.reqs = append(f.reqs, recorded{path: r.URL.Path, header: r.Header.Clone(), body: body})
	f.mu.Unlock()

	if f.fail != "" && strings.Contains(r.URL.Path, f.fail) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"Request contains an invalid argument.","status":"INVALID_ARGUMENT"}}`)
		return
	}

	resource := strings.TrimSuffix(r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:], ":mutate")
	name := map[string]string{
		"campaignBudgets": "customers/1234567890/campaignBudgets/11",
		"campaigns":       "customers/1234567890/campaigns/987",
		"adGroups":        "customers/1234567890/adGroups/55",
		"adGroupAds":      "customers/1234567890/adGroupAds/55~66",
		"adGroupCriteria": "customers/1234567890/adGroupCriteria/55~77",
	}[resource]
	_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]string{{"resourceName": name}}})
}

func newTestREST(t *testing.T, fake *fakeAds) *REST {
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "access-1", TokenType: "Bearer"})
	client := oauth2.NewClient(context.Background(), src)
	r := newREST(client, configs.GoogleAds{
		DeveloperToken:  "dev-token",
		LoginCustomerID: "111-222-3333",
		CustomerID:      "123-456-7890",
		Endpoint:        srv.URL + "/v17/",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return r
}

func TestPublishCampaign(t *testing.T) {
	fake := &fakeAds{}
	r := newTestREST(t, fake)
	cpc := 1.25
	start, _ := domain.ParseDate("2024-03-01")

	id, err := r.PublishCampaign(context.Background(),
		domain.Campaign{ID: "c1", Name: "Spring", DailyBudget: 50.5, StartDate: start},
		[]domain.AdGroup{{
			Name:     "Shoes",
			Bidding:  domain.Bidding{CPCBid: &cpc},
			Creative: domain.Creative{AdHeadline: "Buy shoes", FinalURL: "https://shop.example.com"},
		}})
	require.NoError(t, err)
	assert.Equal(t, "987", id)

	require.Len(t, fake.reqs, 4)
	paths := []string{
		"/v17/customers/1234567890/campaignBudgets:mutate",
		"/v17/customers/1234567890/campaigns:mutate",
		"/v17/customers/1234567890/adGroups:mutate",
		"/v17/customers/1234567890/adGroupAds:mutate",
	}
	for i, p := range paths {
		assert.Equal(t, p, fake.reqs[i].path)
		assert.Equal(t, "Bearer access-1", fake.reqs[i].header.Get("Authorization"))
		assert.Equal(t, "dev-token", fake.reqs[i].header.Get("developer-token"))
		assert.Equal(t, "1112223333", fake.reqs[i].header.Get("login-customer-id"))
	}

	budget := fake.reqs[0].body.Operations[0].Create.(map[string]any)
	assert.EqualValues(t, 50_500_000, budget["amountMicros"])

	campaign := fake.reqs[1].body.Operations[0].Create.(map[string]any)
	assert.Equal(t, "PAUSED", campaign["status"])
	assert.Equal(t, "20240301", campaign["startDate"])
	assert.Equal(t, "customers/1234567890/campaignBudgets/11", campaign["campaignBudget"])

	group := fake.reqs[2].body.Operations[0].Create.(map[string]any)
	assert.EqualValues(t, 1_250_000, group["cpcBidMicros"])

	ad := fake.reqs[3].body.Operations[0].Create.(map[string]any)
	rsa := ad["ad"].(map[string]any)["responsiveSearchAd"].(map[string]any)
	assert.Len(t, rsa["headlines"], 3)
	assert.Len(t, rsa["descriptions"], 2)
}

func TestPublishCampaignKeywords(t *testing.T) {
	fake := &fakeAds{}
	r := newTestREST(t, fake)

	_, err := r.PublishCampaign(context.Background(), domain.Campaign{ID: "c1", Name: "Spring", DailyBudget: 10},
		[]domain.AdGroup{{
			Name:      "Shoes",
			Targeting: domain.Targeting{Keywords: "running shoes, , trail shoes"},
		}})
	require.NoError(t, err)

	require.Len(t, fake.reqs, 5)
	criteria := fake.reqs[4]
	assert.Equal(t, "/v17/customers/1234567890/adGroupCriteria:mutate", criteria.path)
	require.Len(t, criteria.body.Operations, 2)
	first := criteria.body.Operations[0].Create.(map[string]any)
	assert.Equal(t, "customers/1234567890/adGroups/55", first["adGroup"])
	keyword := first["keyword"].(map[string]any)
	assert.Equal(t, "running shoes", keyword["text"])
	assert.Equal(t, "BROAD", keyword["matchType"])
	second := criteria.body.Operations[1].Create.(map[string]any)
	assert.Equal(t, "trail shoes", second["keyword"].(map[string]any)["text"])
}

func TestPublishCampaignAPIError(t *testing.T) {
	fake := &fakeAds{fail: "campaigns:mutate"}
	r := newTestREST(t, fake)

	_, err := r.PublishCampaign(context.Background(), domain.Campaign{Name: "Spring"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create campaign")
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
}

func TestPauseCampaign(t *testing.T) {
	fake := &fakeAds{}
	r := newTestREST(t, fake)

	require.NoError(t, r.PauseCampaign(context.Background(), "987"))
	require.Len(t, fake.reqs, 1)
	op := fake.reqs[0].body.Operations[0]
	assert.Equal(t, "status", op.UpdateMask)
	update := op.Update.(map[string]any)
	assert.Equal(t, "customers/1234567890/campaigns/987", update["resourceName"])
	assert.Equal(t, "PAUSED", update["status"])
}

func TestMockPublish(t *testing.T) {
	m := NewMock(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.now = func() time.Time { return time.Date(2024, 3, 1, 10, 4, 5, 0, time.UTC) }

	id, err := m.PublishCampaign(context.Background(), domain.Campaign{Name: "Spring"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "MOCK_CAMPAIGN_ID_20240301100405", id)
	assert.NoError(t, m.PauseCampaign(context.Background(), id))
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "shoes", displayPath("www.example.com/shoes"))
	assert.Equal(t, "", displayPath("www.example.com"))
	assert.Equal(t, "averyveryverylo", displayPath("https://x.com/averyveryverylongpath"))
}
