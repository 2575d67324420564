package handler_test

import (
	appErrors "github.com/patriotech/marketing-intel/internal/errors"
	"github.com/patriotech/marketing-intel/internal/model"
)

type mockOrgRepo struct {
	Orgs map[string]*model.Organization
}

func (m *mockOrgRepo) Create(o *model.Organization) error {
	if o.ID == "" {
		o.ID = "org-test"
	}
	if m.Orgs == nil {
		m.Orgs = map[string]*model.Organization{}
	}
	m.Orgs[o.ID] = o
	return nil
}

func (m *mockOrgRepo) GetByID(id string) (*model.Organization, error) {
	if o, ok := m.Orgs[id]; ok {
		return o, nil
	}
	return nil, appErrors.NewOrganizationNotFound(id)
}

func (m *mockOrgRepo) ListAll() ([]model.Organization, error) {
	out := []model.Organization{}
	for _, o := range m.Orgs {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrgRepo) Update(o *model.Organization) error { return nil }

func (m *mockOrgRepo) Delete(id string) error {
	if _, ok := m.Orgs[id]; !ok {
		return appErrors.NewOrganizationNotFound(id)
	}
	delete(m.Orgs, id)
	return nil
}

type mockCampaignRepo struct {
	Campaigns map[string]*model.Campaign
	Scored    bool
}

func (m *mockCampaignRepo) Create(c *model.Campaign) error {
	if c.ID == "" {
		c.ID = "cmp-test"
	}
	return nil
}

func (m *mockCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	if c, ok := m.Campaigns[id]; ok {
		return c, nil
	}
	return nil, appErrors.NewCampaignNotFound(id)
}

func (m *mockCampaignRepo) ListByOrganization(orgID string) ([]model.Campaign, error) {
	out := []model.Campaign{}
	for _, c := range m.Campaigns {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockCampaignRepo) ListActive(orgID string) ([]model.Campaign, error) { return nil, nil }
func (m *mockCampaignRepo) Update(c *model.Campaign) error                    { return nil }
func (m *mockCampaignRepo) Delete(id string) error                            { return nil }

func (m *mockCampaignRepo) UpdateScores(id string, performance, roi, overall float64, rating string) error {
	m.Scored = true
	return nil
}

type mockChannelRepo struct {
	Channels []model.Channel
}

func (m *mockChannelRepo) Create(c *model.Channel) error { return nil }

func (m *mockChannelRepo) GetByID(id string) (*model.Channel, error) {
	return nil, appErrors.NewChannelNotFound(id)
}

func (m *mockChannelRepo) ListByOrganization(orgID string) ([]model.Channel, error) {
	return m.Channels, nil
}

func (m *mockChannelRepo) Update(c *model.Channel) error     { return nil }
func (m *mockChannelRepo) UpdateKPIs(c *model.Channel) error { return nil }

type mockContentRepo struct{}

func (m *mockContentRepo) Create(c *model.Content) error { return nil }
func (m *mockContentRepo) GetByID(id string) (*model.Content, error) {
	return nil, appErrors.NewContentNotFound(id)
}
func (m *mockContentRepo) ListByOrganization(orgID string) ([]model.Content, error) {
	return nil, nil
}
func (m *mockContentRepo) ListByFunnelStage(orgID, stage string) ([]model.Content, error) {
	return nil, nil
}
func (m *mockContentRepo) UpdateScores(id string, engagement, conversion, overall float64, rating string) error {
	return nil
}

type mockMetricsRepo struct {
	Latest *model.MarketingMetrics
}

func (m *mockMetricsRepo) Create(mm *model.MarketingMetrics) error { return nil }

func (m *mockMetricsRepo) GetLatest(orgID string) (*model.MarketingMetrics, error) {
	if m.Latest == nil {
		return nil, &appErrors.ErrNotFound{Entity: "metrics", ID: orgID}
	}
	return m.Latest, nil
}

func (m *mockMetricsRepo) ListByPeriod(orgID, period string) ([]model.MarketingMetrics, error) {
	return nil, nil
}

type mockBenchmarkRepo struct {
	Created *model.BenchmarkResult
}

func (m *mockBenchmarkRepo) Create(b *model.BenchmarkResult) error {
	if b.ID == "" {
		b.ID = "bmk-test"
	}
	m.Created = b
	return nil
}

func (m *mockBenchmarkRepo) GetLatest(orgID, benchmarkType string) (*model.BenchmarkResult, error) {
	return nil, &appErrors.ErrNotFound{Entity: "benchmark", ID: orgID}
}

func (m *mockBenchmarkRepo) ListByOrganization(orgID string, limit int) ([]model.BenchmarkResult, error) {
	return nil, nil
}

type mockChatRepo struct {
	Sessions map[string]*model.ChatSession
	Messages map[string][]model.ChatMessage
}

func (m *mockChatRepo) CreateSession(s *model.ChatSession) error {
	if s.ID == "" {
		s.ID = "chat-test"
	}
	if m.Sessions == nil {
		m.Sessions = map[string]*model.ChatSession{}
	}
	m.Sessions[s.ID] = s
	return nil
}

func (m *mockChatRepo) GetSession(id string) (*model.ChatSession, error) {
	if s, ok := m.Sessions[id]; ok {
		return s, nil
	}
	return nil, appErrors.NewChatSessionNotFound(id)
}

func (m *mockChatRepo) ListSessions(orgID string, limit int) ([]model.ChatSession, error) {
	return nil, nil
}

func (m *mockChatRepo) DeleteSession(id string) error {
	delete(m.Sessions, id)
	return nil
}

func (m *mockChatRepo) AddMessage(msg *model.ChatMessage) error {
	if msg.ID == "" {
		msg.ID = "msg-test"
	}
	if m.Messages == nil {
		m.Messages = map[string][]model.ChatMessage{}
	}
	m.Messages[msg.SessionID] = append(m.Messages[msg.SessionID], *msg)
	return nil
}

func (m *mockChatRepo) ListMessages(sessionID string) ([]model.ChatMessage, error) {
	return m.Messages[sessionID], nil
}

type mockQueue struct {
	Published []any
}

func (m *mockQueue) Publish(topic string, payload any) error {
	m.Published = append(m.Published, payload)
	return nil
}

func (m *mockQueue) Subscribe(topic string, handler func(payload any) error) error { return nil }
