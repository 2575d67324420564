package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriotech/marketing-intel/internal/ai"
	"github.com/patriotech/marketing-intel/internal/handler"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

type testEnv struct {
	router       http.Handler
	orgRepo      *mockOrgRepo
	campaignRepo *mockCampaignRepo
	channelRepo  *mockChannelRepo
	benchRepo    *mockBenchmarkRepo
	chatRepo     *mockChatRepo
	queue        *mockQueue
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		orgRepo:      &mockOrgRepo{},
		campaignRepo: &mockCampaignRepo{Campaigns: map[string]*model.Campaign{}},
		channelRepo:  &mockChannelRepo{},
		benchRepo:    &mockBenchmarkRepo{},
		chatRepo:     &mockChatRepo{},
		queue:        &mockQueue{},
	}
	metricsRepo := &mockMetricsRepo{}
	contentRepo := &mockContentRepo{}

	chatService := service.NewChatService(
		env.chatRepo, env.orgRepo, env.campaignRepo, env.channelRepo,
		metricsRepo, env.benchRepo,
		ai.NewChatEngine(ai.NewClient(ai.ClientConfig{})),
	)
	dashboard := service.NewDashboardService(env.channelRepo, env.campaignRepo, metricsRepo)

	env.router = handler.NewRouter(handler.Handlers{
		Organizations: &handler.OrganizationHandler{Repo: env.orgRepo},
		Campaigns:     &handler.CampaignHandler{Service: service.NewCampaignService(env.campaignRepo)},
		Channels:      &handler.ChannelHandler{Service: service.NewChannelService(env.channelRepo)},
		Content:       &handler.ContentHandler{Service: service.NewContentService(contentRepo)},
		Metrics:       &handler.MetricsHandler{Repo: metricsRepo},
		Benchmarks:    &handler.BenchmarkHandler{Service: service.NewBenchmarkService(env.benchRepo, metricsRepo, env.queue)},
		Analysis:      handler.NewAnalysisHandler(dashboard),
		Chat:          &handler.ChatHandler{Service: chatService},
	})
	return env
}

func (env *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["ai_enabled"])
}

func TestOrganizationLifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/organizations", `{"name":"Acme","industry":"Technology"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var org model.Organization
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &org))
	assert.NotEmpty(t, org.ID)

	rec = env.do(t, http.MethodGet, "/api/organizations/"+org.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/organizations/org-missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")

	rec = env.do(t, http.MethodDelete, "/api/organizations/"+org.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateOrganizationValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/organizations", `{"industry":"Retail"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/organizations", `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoreCampaignEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.campaignRepo.Campaigns["cmp-1"] = &model.Campaign{
		ID:          "cmp-1",
		Name:        "Summer Sale",
		Status:      "active",
		Impressions: 100000,
		Clicks:      3000,
		Conversions: 150,
		Leads:       300,
		Spend:       3000,
		Revenue:     9000,
	}

	rec := env.do(t, http.MethodPost, "/api/campaigns/cmp-1/score", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.campaignRepo.Scored)

	var score map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, "Summer Sale", score["campaign_name"])
	assert.InDelta(t, 80.5, score["overall_score"].(float64), 0.001)

	rec = env.do(t, http.MethodPost, "/api/campaigns/cmp-missing/score", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFunnelAnalyzeEndpoint(t *testing.T) {
	env := newTestEnv(t)

	body := `{"stages":{
		"Awareness":{"visitors":10000,"conversions":3000},
		"Interest":{"visitors":3000,"conversions":1500}
	}}`
	rec := env.do(t, http.MethodPost, "/api/organizations/org-1/funnel/analyze", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Contains(t, analysis, "overall_conversion_rate")

	rec = env.do(t, http.MethodPost, "/api/organizations/org-1/funnel/analyze", `{"stages":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBenchmarkAsyncEnqueues(t *testing.T) {
	env := newTestEnv(t)

	body := `{"benchmark_type":"marketing","metrics":{"roas":400},"async":true}`
	rec := env.do(t, http.MethodPost, "/api/organizations/org-1/benchmark", body)
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Len(t, env.queue.Published, 1)
}

func TestBenchmarkSyncRuns(t *testing.T) {
	env := newTestEnv(t)

	body := `{"benchmark_type":"marketing","metrics":{"roas":400,"cac":50}}`
	rec := env.do(t, http.MethodPost, "/api/organizations/org-1/benchmark", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.benchRepo.Created)
	assert.Equal(t, "A", env.benchRepo.Created.Grade)
}

func TestChatRequires503WithoutKey(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/chat/sessions", `{"mode":"general"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var session model.ChatSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))

	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+session.ID+"/messages", `{"message":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/chat/sessions/"+session.ID+"/stream", `{"message":"hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatModesAndPrompts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/chat/modes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Modes []map[string]string `json:"modes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Modes, 8)

	rec = env.do(t, http.MethodGet, "/api/chat/prompts/roi_review", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "prompts")

	rec = env.do(t, http.MethodGet, "/api/chat/prompts/bogus", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.channelRepo.Channels = []model.Channel{
		{ID: "chn-1", Name: "Display", ChannelType: "Display Ads", Spend: 4000, Revenue: 1500},
	}

	rec := env.do(t, http.MethodGet, "/api/organizations/org-1/alerts", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Alerts []map[string]any `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Alerts, 2)

	rec = env.do(t, http.MethodGet, "/api/organizations/org-1/alerts?summary=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "summary")
}

func TestReportCSVEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.channelRepo.Channels = []model.Channel{
		{ID: "chn-1", Name: "Email", ChannelType: "Email", Spend: 1000, Revenue: 3000, Conversions: 50},
	}

	rec := env.do(t, http.MethodGet, "/api/organizations/org-1/report.csv?type=channels", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Email")
}
