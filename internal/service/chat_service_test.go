package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patriotech/marketing-intel/internal/ai"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/service"
)

func newChatService(t *testing.T, handler http.HandlerFunc, orgRepo *MockOrgRepo, chatRepo *MockChatRepo, metricsRepo *MockMetricsRepo) *service.ChatService {
	t.Helper()

	var client *ai.Client
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		client = ai.NewClient(ai.ClientConfig{APIKey: "test-key", BaseURL: server.URL})
	} else {
		client = ai.NewClient(ai.ClientConfig{})
	}

	return service.NewChatService(
		chatRepo,
		orgRepo,
		&MockCampaignRepo{},
		&MockChannelRepo{},
		metricsRepo,
		&MockBenchmarkRepo{},
		ai.NewChatEngine(client),
	)
}

func TestCreateSessionDefaults(t *testing.T) {
	chatRepo := &MockChatRepo{}
	svc := newChatService(t, nil, &MockOrgRepo{}, chatRepo, &MockMetricsRepo{})

	session, err := svc.CreateSession(nil, "", "")
	require.NoError(t, err)
	assert.Equal(t, ai.ModeGeneral, session.Mode)
	assert.Equal(t, ai.ModeDescriptions[ai.ModeGeneral], session.Title)

	_, err = svc.CreateSession(nil, "bogus_mode", "")
	assert.Error(t, err)
}

func TestSendMessagePersistsBothSides(t *testing.T) {
	var gotSystem string
	handler := func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			System   string       `json:"system"`
			Messages []ai.Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotSystem = req.System

		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "Cut display spend."}},
		})
	}

	orgID := "org-1"
	cac := 42.5
	chatRepo := &MockChatRepo{}
	orgRepo := &MockOrgRepo{Org: &model.Organization{ID: orgID, Name: "Acme Corp", Industry: "Technology"}}
	metricsRepo := &MockMetricsRepo{Latest: &model.MarketingMetrics{CAC: &cac}}
	svc := newChatService(t, handler, orgRepo, chatRepo, metricsRepo)

	session, err := svc.CreateSession(&orgID, ai.ModeChannelOptimization, "Budget review")
	require.NoError(t, err)

	reply, err := svc.SendMessage(context.Background(), session.ID, "Where should I cut spend?")
	require.NoError(t, err)
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "Cut display spend.", reply.Content)

	// Org context made it into the system prompt.
	assert.Contains(t, gotSystem, "Acme Corp")
	assert.Contains(t, gotSystem, "$42.50")

	stored := chatRepo.Messages[session.ID]
	require.Len(t, stored, 2)
	assert.Equal(t, "user", stored[0].Role)
	assert.Equal(t, "assistant", stored[1].Role)
}

func TestSendMessageEmpty(t *testing.T) {
	chatRepo := &MockChatRepo{}
	svc := newChatService(t, nil, &MockOrgRepo{}, chatRepo, &MockMetricsRepo{})

	session, err := svc.CreateSession(nil, ai.ModeGeneral, "")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), session.ID, "   ")
	assert.Error(t, err)
}

func TestSuggestUsesSessionContext(t *testing.T) {
	orgID := "org-1"
	roas := 120.0
	chatRepo := &MockChatRepo{}
	metricsRepo := &MockMetricsRepo{Latest: &model.MarketingMetrics{ROAS: &roas}}
	svc := newChatService(t, nil, &MockOrgRepo{}, chatRepo, metricsRepo)

	session, err := svc.CreateSession(&orgID, ai.ModeROIReview, "")
	require.NoError(t, err)

	suggestions, err := svc.Suggest(context.Background(), session.ID, nil, 4)
	require.NoError(t, err)
	require.NotEmpty(t, suggestions)

	// The low-ROAS trigger outranks the canned mode prompts.
	assert.Contains(t, suggestions[0].Prompt, "ROAS is 120%")
}

func TestConfigured(t *testing.T) {
	svc := newChatService(t, nil, &MockOrgRepo{}, &MockChatRepo{}, &MockMetricsRepo{})
	assert.False(t, svc.Configured())
}
