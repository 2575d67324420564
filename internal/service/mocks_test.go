package service_test

import (
	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/model"
)

// Hand-rolled mock repositories.

type MockCampaignRepo struct {
	Campaigns map[string]*model.Campaign
	ByOrg     []model.Campaign

	ScoredID     string
	ScoredPerf   float64
	ScoredROI    float64
	ScoredTotal  float64
	ScoredRating string
}

func (m *MockCampaignRepo) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = "cmp-test"
	}
	return nil
}

func (m *MockCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	if c, ok := m.Campaigns[id]; ok {
		return c, nil
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (m *MockCampaignRepo) ListByOrganization(orgID string) ([]model.Campaign, error) {
	return m.ByOrg, nil
}

func (m *MockCampaignRepo) ListActive(orgID string) ([]model.Campaign, error) {
	active := []model.Campaign{}
	for _, c := range m.ByOrg {
		if c.Status == "active" {
			active = append(active, c)
		}
	}
	return active, nil
}

func (m *MockCampaignRepo) Update(c *model.Campaign) error { return nil }
func (m *MockCampaignRepo) Delete(id string) error         { return nil }

func (m *MockCampaignRepo) UpdateScores(id string, performance, roi, overall float64, rating string) error {
	m.ScoredID = id
	m.ScoredPerf = performance
	m.ScoredROI = roi
	m.ScoredTotal = overall
	m.ScoredRating = rating
	return nil
}

type MockChannelRepo struct {
	ByOrg       []model.Channel
	KPIsUpdated []string
}

func (m *MockChannelRepo) Create(c *model.Channel) error {
	if c.ID == "" {
		c.ID = "chn-test"
	}
	return nil
}

func (m *MockChannelRepo) GetByID(id string) (*model.Channel, error) {
	for i := range m.ByOrg {
		if m.ByOrg[i].ID == id {
			return &m.ByOrg[i], nil
		}
	}
	return nil, appErrors.NewChannelNotFound(id)
}

func (m *MockChannelRepo) ListByOrganization(orgID string) ([]model.Channel, error) {
	return m.ByOrg, nil
}

func (m *MockChannelRepo) Update(c *model.Channel) error { return nil }

func (m *MockChannelRepo) UpdateKPIs(c *model.Channel) error {
	m.KPIsUpdated = append(m.KPIsUpdated, c.ID)
	return nil
}

type MockContentRepo struct {
	ByOrg  []model.Content
	Scored map[string]float64
}

func (m *MockContentRepo) Create(c *model.Content) error { return nil }

func (m *MockContentRepo) GetByID(id string) (*model.Content, error) {
	return nil, appErrors.NewContentNotFound(id)
}

func (m *MockContentRepo) ListByOrganization(orgID string) ([]model.Content, error) {
	return m.ByOrg, nil
}

func (m *MockContentRepo) ListByFunnelStage(orgID, stage string) ([]model.Content, error) {
	return nil, nil
}

func (m *MockContentRepo) UpdateScores(id string, engagement, conversion, overall float64, rating string) error {
	if m.Scored == nil {
		m.Scored = map[string]float64{}
	}
	m.Scored[id] = overall
	return nil
}

type MockMetricsRepo struct {
	Latest *model.MarketingMetrics
}

func (m *MockMetricsRepo) Create(mm *model.MarketingMetrics) error { return nil }

func (m *MockMetricsRepo) GetLatest(orgID string) (*model.MarketingMetrics, error) {
	if m.Latest == nil {
		return nil, &appErrors.ErrNotFound{Entity: "metrics", ID: orgID}
	}
	return m.Latest, nil
}

func (m *MockMetricsRepo) ListByPeriod(orgID, period string) ([]model.MarketingMetrics, error) {
	return nil, nil
}

type MockBenchmarkRepo struct {
	Created *model.BenchmarkResult
	Latest  *model.BenchmarkResult
}

func (m *MockBenchmarkRepo) Create(b *model.BenchmarkResult) error {
	if b.ID == "" {
		b.ID = "bmk-test"
	}
	m.Created = b
	return nil
}

func (m *MockBenchmarkRepo) GetLatest(orgID, benchmarkType string) (*model.BenchmarkResult, error) {
	if m.Latest == nil {
		return nil, &appErrors.ErrNotFound{Entity: "benchmark", ID: orgID}
	}
	return m.Latest, nil
}

func (m *MockBenchmarkRepo) ListByOrganization(orgID string, limit int) ([]model.BenchmarkResult, error) {
	return nil, nil
}

type MockOrgRepo struct {
	Org *model.Organization
}

func (m *MockOrgRepo) Create(o *model.Organization) error { return nil }

func (m *MockOrgRepo) GetByID(id string) (*model.Organization, error) {
	if m.Org == nil {
		return nil, appErrors.NewOrganizationNotFound(id)
	}
	return m.Org, nil
}

func (m *MockOrgRepo) ListAll() ([]model.Organization, error) { return nil, nil }
func (m *MockOrgRepo) Update(o *model.Organization) error     { return nil }
func (m *MockOrgRepo) Delete(id string) error                 { return nil }

type MockChatRepo struct {
	Sessions map[string]*model.ChatSession
	Messages map[string][]model.ChatMessage
}

func (m *MockChatRepo) CreateSession(s *model.ChatSession) error {
	if s.ID == "" {
		s.ID = "chat-test"
	}
	if m.Sessions == nil {
		m.Sessions = map[string]*model.ChatSession{}
	}
	m.Sessions[s.ID] = s
	return nil
}

func (m *MockChatRepo) GetSession(id string) (*model.ChatSession, error) {
	if s, ok := m.Sessions[id]; ok {
		return s, nil
	}
	return nil, appErrors.NewChatSessionNotFound(id)
}

func (m *MockChatRepo) ListSessions(orgID string, limit int) ([]model.ChatSession, error) {
	return nil, nil
}

func (m *MockChatRepo) DeleteSession(id string) error {
	delete(m.Sessions, id)
	return nil
}

func (m *MockChatRepo) AddMessage(msg *model.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = "msg-test"
	}
	if m.Messages == nil {
		m.Messages = map[string][]model.ChatMessage{}
	}
	m.Messages[msg.SessionID] = append(m.Messages[msg.SessionID], *msg)
	return nil
}

func (m *MockChatRepo) ListMessages(sessionID string) ([]model.ChatMessage, error) {
	return m.Messages[sessionID], nil
}

type MockQueue struct {
	Published []any
	Topic     string
}

func (m *MockQueue) Publish(topic string, payload any) error {
	m.Topic = topic
	m.Published = append(m.Published, payload)
	return nil
}

func (m *MockQueue) Subscribe(topic string, handler func(payload any) error) error {
	return nil
}
