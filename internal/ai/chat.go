package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CMO conversation modes.
const (
	ModeGeneral             = "general"
	ModeCampaignAnalysis    = "campaign_analysis"
	ModeChannelOptimization = "channel_optimization"
	ModeContentStrategy     = "content_strategy"
	ModeFunnelAnalysis      = "funnel_analysis"
	ModeROIReview           = "roi_review"
	ModeBenchmarkDiscussion = "benchmark_discussion"
	ModeMarketingPlanning   = "marketing_planning"
)

// Modes lists every conversation mode in display order.
var Modes = []string{
	ModeGeneral, ModeCampaignAnalysis, ModeChannelOptimization,
	ModeContentStrategy, ModeFunnelAnalysis, ModeROIReview,
	ModeBenchmarkDiscussion, ModeMarketingPlanning,
}

// ModeDescriptions maps each mode to its short description.
var ModeDescriptions = map[string]string{
	ModeGeneral:             "General marketing questions and guidance",
	ModeCampaignAnalysis:    "Analyze campaign performance and optimize",
	ModeChannelOptimization: "Optimize marketing channel mix and budget",
	ModeContentStrategy:     "Content marketing strategy and performance",
	ModeFunnelAnalysis:      "Marketing funnel optimization",
	ModeROIReview:           "Marketing ROI and spend efficiency",
	ModeBenchmarkDiscussion: "Industry benchmarks and competitive analysis",
	ModeMarketingPlanning:   "Strategic marketing planning and roadmaps",
}

// SuggestedPrompts are the canned starter prompts per mode.
var SuggestedPrompts = map[string][]string{
	ModeGeneral: {
		"What marketing metrics should I track for a B2B SaaS company?",
		"How can I improve our marketing team's efficiency?",
		"What's the best approach to marketing attribution?",
	},
	ModeCampaignAnalysis: {
		"Analyze our campaign performance and identify improvement areas",
		"Which campaigns are underperforming and why?",
		"How should we adjust our campaign strategy?",
	},
	ModeChannelOptimization: {
		"Which marketing channels are most effective for us?",
		"How should we reallocate our channel budget?",
		"Compare our channel performance to industry benchmarks",
	},
	ModeContentStrategy: {
		"What content types are driving the most leads?",
		"How can we improve our content marketing ROI?",
		"What content gaps exist in our funnel?",
	},
	ModeFunnelAnalysis: {
		"Where are the biggest leaks in our marketing funnel?",
		"How can we improve our conversion rates?",
		"What's causing drop-off at the consideration stage?",
	},
	ModeROIReview: {
		"What's our marketing ROI by channel?",
		"How can we reduce customer acquisition cost?",
		"Are we spending efficiently on marketing?",
	},
	ModeBenchmarkDiscussion: {
		"How do our marketing KPIs compare to industry standards?",
		"Where are we underperforming vs benchmarks?",
		"What metrics should we prioritize improving?",
	},
	ModeMarketingPlanning: {
		"Help me build a Q1 marketing plan",
		"What should be our top marketing priorities?",
		"How should we allocate next year's marketing budget?",
	},
}

var systemPrompts = map[string]string{
	ModeGeneral: `You are a Fractional CMO (Chief Marketing Officer) - an expert marketing executive providing strategic guidance to SMB companies. You help with all aspects of marketing strategy, from brand building to demand generation.

Your expertise includes:
- Marketing strategy and planning
- Brand development and positioning
- Demand generation and lead nurturing
- Digital marketing and analytics
- Content marketing strategy
- Marketing team building and operations

Provide actionable, practical advice tailored to resource-constrained organizations. Be strategic but pragmatic.`,

	ModeCampaignAnalysis: `You are a Fractional CMO specializing in campaign performance analysis. You help organizations understand what's working and what's not in their marketing campaigns.

For campaign analysis, you focus on:
- Performance metrics: impressions, clicks, conversions, ROAS
- Creative effectiveness and messaging resonance
- Audience targeting and segmentation
- A/B testing insights
- Budget efficiency and optimization opportunities

Analyze campaigns objectively, identify root causes of underperformance, and provide specific optimization recommendations.`,

	ModeChannelOptimization: `You are a Fractional CMO specializing in marketing channel strategy and optimization. You help organizations build an effective marketing mix.

For channel optimization, you focus on:
- Channel performance comparison (organic, paid, social, email, etc.)
- Budget allocation across channels
- Channel synergies and attribution
- Emerging channel opportunities
- Cost efficiency (CPC, CPA, ROAS by channel)

Recommend data-driven budget shifts and channel strategies that maximize ROI.`,

	ModeContentStrategy: `You are a Fractional CMO specializing in content marketing strategy. You help organizations create and optimize content that drives business results.

For content strategy, you focus on:
- Content performance analysis by type and topic
- Content mapping to buyer journey stages
- SEO and organic visibility
- Lead generation and conversion from content
- Content repurposing and distribution

Recommend content strategies that build audience, generate leads, and support sales.`,

	ModeFunnelAnalysis: `You are a Fractional CMO specializing in marketing funnel optimization. You help organizations improve conversion rates at every stage.

For funnel analysis, you focus on:
- Stage-by-stage conversion rates
- Drop-off points and friction analysis
- Lead scoring and qualification
- Nurture sequence effectiveness
- Sales and marketing alignment

Identify funnel leaks and recommend specific interventions to improve flow.`,

	ModeROIReview: `You are a Fractional CMO specializing in marketing ROI and financial performance. You help organizations maximize the return on their marketing investment.

For ROI review, you focus on:
- Marketing ROI calculation and tracking
- Customer acquisition cost (CAC) analysis
- Customer lifetime value (CLV) optimization
- Attribution modeling
- Budget efficiency and waste reduction

Provide clear financial analysis and recommendations to improve marketing profitability.`,

	ModeBenchmarkDiscussion: `You are a Fractional CMO specializing in marketing benchmarking and competitive analysis. You help organizations understand their performance relative to industry standards.

For benchmarking, you focus on:
- KPI comparison to industry standards
- Competitive positioning analysis
- Best practice identification
- Performance gap analysis
- Improvement prioritization

Provide context on where the organization stands and what "good" looks like in their industry.`,

	ModeMarketingPlanning: `You are a Fractional CMO specializing in strategic marketing planning. You help organizations build effective marketing plans and roadmaps.

For marketing planning, you focus on:
- Goal setting and OKRs
- Budget planning and allocation
- Campaign calendars and timing
- Resource planning and team structure
- Success metrics and tracking

Create actionable plans that align marketing activities with business objectives.`,
}

// ValidMode reports whether mode is a known conversation mode.
func ValidMode(mode string) bool {
	_, ok := ModeDescriptions[mode]
	return ok
}

// OrganizationContext describes the organization for the system prompt.
type OrganizationContext struct {
	Name                  string
	Industry              string
	AnnualMarketingBudget float64
}

// CampaignContext is a campaign summary for the system prompt.
type CampaignContext struct {
	Name         string
	Status       string
	OverallScore *float64
}

// ChannelContext is a channel summary for the system prompt.
type ChannelContext struct {
	Name            string
	ROAS            float64
	EfficiencyScore *float64
}

// MetricsContext carries the headline metrics for the system prompt.
type MetricsContext struct {
	CAC                  float64
	CLV                  float64
	ROAS                 float64
	MarketingROI         float64
	ConversionRate       float64
	ChurnRate            float64
	SocialEngagementRate *float64
}

// BenchmarkContext summarizes the latest benchmark run.
type BenchmarkContext struct {
	OverallScore float64
	Grade        string
	Strengths    []string
}

// ChatContext is the business context injected into the system prompt.
type ChatContext struct {
	Organization *OrganizationContext
	Campaigns    []CampaignContext
	Channels     []ChannelContext
	Metrics      *MetricsContext
	Benchmark    *BenchmarkContext
}

// Empty reports whether the context carries no data at all.
func (c *ChatContext) Empty() bool {
	return c == nil || (c.Organization == nil && len(c.Campaigns) == 0 &&
		len(c.Channels) == 0 && c.Metrics == nil && c.Benchmark == nil)
}

// ChatEngine drives CMO conversations against the Claude client.
type ChatEngine struct {
	client *Client
}

func NewChatEngine(client *Client) *ChatEngine {
	return &ChatEngine{client: client}
}

// Configured reports whether the underlying client has an API key.
func (e *ChatEngine) Configured() bool {
	return e.client.Configured()
}

// Chat sends a message in the given mode and returns the reply. History
// is truncated to the last 10 messages.
func (e *ChatEngine) Chat(ctx context.Context, message, mode string, history []Message, chatCtx *ChatContext) (string, error) {
	return e.client.Chat(ctx, buildMessages(message, history), e.buildSystemPrompt(mode, chatCtx))
}

// ChatStream is the streaming variant of Chat.
func (e *ChatEngine) ChatStream(ctx context.Context, message, mode string, history []Message, chatCtx *ChatContext) (<-chan string, <-chan error) {
	return e.client.ChatStream(ctx, buildMessages(message, history), e.buildSystemPrompt(mode, chatCtx))
}

// Analyze runs a one-shot AI analysis over arbitrary marketing data.
func (e *ChatEngine) Analyze(ctx context.Context, data any, analysisType string) (string, error) {
	prompts := map[string]string{
		"campaign_performance":  "Analyze this campaign performance data and provide insights on what's working, what's not, and specific recommendations for improvement.",
		"channel_mix":           "Analyze this channel performance data and recommend an optimized budget allocation strategy.",
		"content_effectiveness": "Analyze this content performance data and recommend a content strategy to improve results.",
		"funnel_optimization":   "Analyze this funnel data and identify the biggest opportunities to improve conversion rates.",
		"roi_analysis":          "Analyze this marketing ROI data and recommend ways to improve marketing efficiency.",
	}
	prompt, ok := prompts[analysisType]
	if !ok {
		prompt = "Analyze this marketing data and provide actionable insights."
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis data: %w", err)
	}

	messages := []Message{{
		Role:    "user",
		Content: fmt.Sprintf("%s\n\nData for analysis:\n```json\n%s\n```", prompt, encoded),
	}}
	return e.client.Chat(ctx, messages, systemPrompts[ModeGeneral])
}

func (e *ChatEngine) buildSystemPrompt(mode string, chatCtx *ChatContext) string {
	base, ok := systemPrompts[mode]
	if !ok {
		base = systemPrompts[ModeGeneral]
	}
	if chatCtx.Empty() {
		return base
	}
	return base + "\n\n## Current Context\n" + formatContext(chatCtx)
}

func buildMessages(message string, history []Message) []Message {
	messages := []Message{}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: message})
	return messages
}

func formatContext(c *ChatContext) string {
	parts := []string{}

	if c.Organization != nil {
		parts = append(parts, "**Organization**: "+orDefault(c.Organization.Name, "Unknown"))
		if c.Organization.Industry != "" {
			parts = append(parts, "**Industry**: "+c.Organization.Industry)
		}
		if c.Organization.AnnualMarketingBudget > 0 {
			parts = append(parts, fmt.Sprintf("**Annual Marketing Budget**: $%.0f", c.Organization.AnnualMarketingBudget))
		}
	}

	if len(c.Campaigns) > 0 {
		parts = append(parts, fmt.Sprintf("\n**Active Campaigns**: %d", len(c.Campaigns)))
		for i, cmp := range c.Campaigns {
			if i == 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: %s (Score: %s)", cmp.Name, cmp.Status, scoreOrNA(cmp.OverallScore)))
		}
	}

	if len(c.Channels) > 0 {
		parts = append(parts, fmt.Sprintf("\n**Marketing Channels**: %d", len(c.Channels)))
		for i, ch := range c.Channels {
			if i == 5 {
				break
			}
			parts = append(parts, fmt.Sprintf("- %s: ROAS %.0f%%, Score: %s", ch.Name, ch.ROAS, scoreOrNA(ch.EfficiencyScore)))
		}
	}

	if c.Metrics != nil {
		parts = append(parts, "\n**Key Metrics**:")
		if c.Metrics.CAC > 0 {
			parts = append(parts, fmt.Sprintf("- CAC: $%.2f", c.Metrics.CAC))
		}
		if c.Metrics.CLV > 0 {
			parts = append(parts, fmt.Sprintf("- CLV: $%.2f", c.Metrics.CLV))
		}
		if c.Metrics.ROAS > 0 {
			parts = append(parts, fmt.Sprintf("- ROAS: %.0f%%", c.Metrics.ROAS))
		}
		if c.Metrics.MarketingROI != 0 {
			parts = append(parts, fmt.Sprintf("- Marketing ROI: %.0f%%", c.Metrics.MarketingROI))
		}
	}

	if c.Benchmark != nil {
		parts = append(parts, "\n**Benchmark Summary**:")
		parts = append(parts, fmt.Sprintf("- Overall Score: %.1f", c.Benchmark.OverallScore))
		parts = append(parts, "- Grade: "+orDefault(c.Benchmark.Grade, "N/A"))
		if len(c.Benchmark.Strengths) > 0 {
			strengths := c.Benchmark.Strengths
			if len(strengths) > 3 {
				strengths = strengths[:3]
			}
			parts = append(parts, "- Strengths: "+strings.Join(strengths, ", "))
		}
	}

	if len(parts) == 0 {
		return "No additional context available."
	}
	return strings.Join(parts, "\n")
}

func scoreOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
