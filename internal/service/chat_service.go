package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/patriotech/marketing-intel/internal/ai"
	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/repository"
)

type ChatService struct {
	ChatRepo      repository.ChatRepositoryInterface
	OrgRepo       repository.OrganizationRepositoryInterface
	CampaignRepo  repository.CampaignRepositoryInterface
	ChannelRepo   repository.ChannelRepositoryInterface
	MetricsRepo   repository.MetricsRepositoryInterface
	BenchmarkRepo repository.BenchmarkRepositoryInterface
	Engine        *ai.ChatEngine
	Suggestions   *ai.SuggestionEngine
}

func NewChatService(
	chats repository.ChatRepositoryInterface,
	orgs repository.OrganizationRepositoryInterface,
	campaigns repository.CampaignRepositoryInterface,
	channels repository.ChannelRepositoryInterface,
	metrics repository.MetricsRepositoryInterface,
	benchmarks repository.BenchmarkRepositoryInterface,
	engine *ai.ChatEngine,
) *ChatService {
	return &ChatService{
		ChatRepo:      chats,
		OrgRepo:       orgs,
		CampaignRepo:  campaigns,
		ChannelRepo:   channels,
		MetricsRepo:   metrics,
		BenchmarkRepo: benchmarks,
		Engine:        engine,
		Suggestions:   ai.NewSuggestionEngine(),
	}
}

// Configured reports whether the AI backend has an API key.
func (s *ChatService) Configured() bool {
	return s.Engine.Configured()
}

// CreateSession starts a conversation in the given mode.
func (s *ChatService) CreateSession(orgID *string, mode, title string) (*model.ChatSession, error) {
	if mode == "" {
		mode = ai.ModeGeneral
	}
	if !ai.ValidMode(mode) {
		return nil, fmt.Errorf("unknown chat mode %q", mode)
	}
	if title == "" {
		title = ai.ModeDescriptions[mode]
	}

	session := &model.ChatSession{
		OrganizationID: orgID,
		Mode:           mode,
		Title:          title,
	}
	if err := s.ChatRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *ChatService) GetSession(id string) (*model.ChatSession, error) {
	return s.ChatRepo.GetSession(id)
}

func (s *ChatService) ListSessions(orgID string, limit int) ([]model.ChatSession, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.ChatRepo.ListSessions(orgID, limit)
}

func (s *ChatService) DeleteSession(id string) error {
	return s.ChatRepo.DeleteSession(id)
}

func (s *ChatService) ListMessages(sessionID string) ([]model.ChatMessage, error) {
	return s.ChatRepo.ListMessages(sessionID)
}

// SendMessage persists the user message, asks the model with the
// session's history and org context, and persists the reply.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
	session, history, chatCtx, err := s.prepare(ctx, sessionID, message)
	if err != nil {
		return nil, err
	}

	reply, err := s.Engine.Chat(ctx, message, session.Mode, history, chatCtx)
	if err != nil {
		return nil, err
	}

	assistant := &model.ChatMessage{SessionID: sessionID, Role: "assistant", Content: reply}
	if err := s.ChatRepo.AddMessage(assistant); err != nil {
		return nil, fmt.Errorf("persist assistant message: %w", err)
	}
	return assistant, nil
}

// StreamMessage is SendMessage with a streaming reply. The full reply
// is persisted once the stream completes.
func (s *ChatService) StreamMessage(ctx context.Context, sessionID, message string) (<-chan string, <-chan error, error) {
	session, history, chatCtx, err := s.prepare(ctx, sessionID, message)
	if err != nil {
		return nil, nil, err
	}

	chunks, errs := s.Engine.ChatStream(ctx, message, session.Mode, history, chatCtx)

	out := make(chan string, 100)
	outErrs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(outErrs)

		var full strings.Builder
		for chunk := range chunks {
			full.WriteString(chunk)
			out <- chunk
		}
		if err := <-errs; err != nil {
			outErrs <- err
			return
		}

		assistant := &model.ChatMessage{SessionID: sessionID, Role: "assistant", Content: full.String()}
		if err := s.ChatRepo.AddMessage(assistant); err != nil {
			log.Printf("⚠️ Failed to persist streamed reply for session %s: %v\n", sessionID, err)
		}
	}()

	return out, outErrs, nil
}

// Suggest returns ranked follow-up prompts for a session.
func (s *ChatService) Suggest(ctx context.Context, sessionID string, dismissed []string, max int) ([]ai.Suggestion, error) {
	session, err := s.ChatRepo.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	stored, err := s.ChatRepo.ListMessages(sessionID)
	if err != nil {
		return nil, err
	}
	history := toAIMessages(stored)

	discussed := []string{}
	for _, m := range stored {
		if m.Role == "user" {
			discussed = append(discussed, s.Suggestions.ExtractTopics(m.Content)...)
		}
	}

	chatCtx := s.buildContext(session.OrganizationID)
	return s.Suggestions.Suggest(session.Mode, chatCtx, history, discussed, dismissed, max), nil
}

func (s *ChatService) prepare(ctx context.Context, sessionID, message string) (*model.ChatSession, []ai.Message, *ai.ChatContext, error) {
	if strings.TrimSpace(message) == "" {
		return nil, nil, nil, fmt.Errorf("message cannot be empty")
	}

	session, err := s.ChatRepo.GetSession(sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	stored, err := s.ChatRepo.ListMessages(sessionID)
	if err != nil {
		return nil, nil, nil, err
	}

	user := &model.ChatMessage{SessionID: sessionID, Role: "user", Content: message}
	if err := s.ChatRepo.AddMessage(user); err != nil {
		return nil, nil, nil, fmt.Errorf("persist user message: %w", err)
	}

	return session, toAIMessages(stored), s.buildContext(session.OrganizationID), nil
}

// buildContext assembles the business context for the system prompt.
// Missing pieces are simply left out; a session without an organization
// gets no context at all.
func (s *ChatService) buildContext(orgID *string) *ai.ChatContext {
	if orgID == nil || *orgID == "" {
		return nil
	}

	chatCtx := &ai.ChatContext{}

	if org, err := s.OrgRepo.GetByID(*orgID); err == nil {
		chatCtx.Organization = &ai.OrganizationContext{
			Name:                  org.Name,
			Industry:              org.Industry,
			AnnualMarketingBudget: org.AnnualMarketingBudget,
		}
	}

	if campaigns, err := s.CampaignRepo.ListActive(*orgID); err == nil {
		for _, c := range campaigns {
			chatCtx.Campaigns = append(chatCtx.Campaigns, ai.CampaignContext{
				Name:         c.Name,
				Status:       c.Status,
				OverallScore: c.OverallScore,
			})
		}
	}

	if channels, err := s.ChannelRepo.ListByOrganization(*orgID); err == nil {
		for _, c := range channels {
			roas := 0.0
			if c.ROAS != nil {
				roas = *c.ROAS
			} else if c.Spend > 0 {
				roas = c.Revenue / c.Spend * 100
			}
			chatCtx.Channels = append(chatCtx.Channels, ai.ChannelContext{
				Name:            c.Name,
				ROAS:            roas,
				EfficiencyScore: c.EfficiencyScore,
			})
		}
	}

	if m, err := s.MetricsRepo.GetLatest(*orgID); err == nil && m != nil {
		chatCtx.Metrics = &ai.MetricsContext{
			CAC:                  deref(m.CAC),
			CLV:                  deref(m.CLV),
			ROAS:                 deref(m.ROAS),
			MarketingROI:         deref(m.MarketingROI),
			ConversionRate:       deref(m.ConversionRate),
			ChurnRate:            deref(m.ChurnRate),
			SocialEngagementRate: m.SocialEngagementRate,
		}
	}

	if b, err := s.BenchmarkRepo.GetLatest(*orgID, BenchmarkMarketing); err == nil && b != nil {
		chatCtx.Benchmark = &ai.BenchmarkContext{
			OverallScore: b.OverallScore,
			Grade:        b.Grade,
			Strengths:    b.Strengths,
		}
	}

	return chatCtx
}

func toAIMessages(stored []model.ChatMessage) []ai.Message {
	history := make([]ai.Message, 0, len(stored))
	for _, m := range stored {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}
	return history
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
