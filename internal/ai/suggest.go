package ai

import (
	"fmt"
	"sort"
	"strings"
)

// Suggestion categories.
const (
	SuggestionUrgent      = "urgent"
	SuggestionOpportunity = "opportunity"
	SuggestionFollowUp    = "follow_up"
	SuggestionGeneral     = "general"
)

// Suggestion is one ranked prompt suggestion.
type Suggestion struct {
	Prompt    string   `json:"prompt"`
	Relevance float64  `json:"relevance"`
	Category  string   `json:"category"`
	Rationale string   `json:"rationale"`
	Tags      []string `json:"tags"`
}

type basePrompt struct {
	text string
	tags []string
}

var basePrompts = map[string][]basePrompt{
	ModeGeneral: {
		{"What are the top marketing priorities I should focus on?", []string{"priorities", "strategy"}},
		{"How is our overall marketing performance?", []string{"performance", "overview"}},
		{"What quick wins can we achieve this quarter?", []string{"quick-wins", "tactics"}},
	},
	ModeCampaignAnalysis: {
		{"Which campaigns are underperforming and why?", []string{"campaigns", "performance"}},
		{"What's the ROI breakdown by campaign type?", []string{"campaigns", "roi"}},
		{"How do our campaigns compare to benchmarks?", []string{"campaigns", "benchmarks"}},
	},
	ModeChannelOptimization: {
		{"Which channels should we invest more in?", []string{"channels", "investment"}},
		{"Where are we wasting marketing spend?", []string{"channels", "waste", "efficiency"}},
		{"How should we reallocate our channel budget?", []string{"channels", "budget"}},
	},
	ModeROIReview: {
		{"What's our overall marketing ROI?", []string{"roi", "overview"}},
		{"Which activities have the best cost-per-acquisition?", []string{"roi", "cpa"}},
		{"How can we improve our return on ad spend?", []string{"roi", "roas"}},
	},
	ModeContentStrategy: {
		{"What content is driving the most engagement?", []string{"content", "engagement"}},
		{"Where are the gaps in our content funnel?", []string{"content", "funnel"}},
		{"Which content types should we produce more of?", []string{"content", "strategy"}},
	},
	ModeFunnelAnalysis: {
		{"Where are prospects dropping off in our funnel?", []string{"funnel", "dropoff"}},
		{"How can we improve conversion rates?", []string{"funnel", "conversion"}},
		{"What's causing cart abandonment?", []string{"funnel", "abandonment"}},
	},
	ModeBenchmarkDiscussion: {
		{"How do we compare to industry benchmarks?", []string{"benchmarks", "comparison"}},
		{"Where are we behind competitors?", []string{"benchmarks", "competitors"}},
		{"What KPIs should we prioritize improving?", []string{"benchmarks", "kpis"}},
	},
	ModeMarketingPlanning: {
		{"Help me plan next quarter's marketing strategy", []string{"planning", "strategy"}},
		{"What should our marketing goals be?", []string{"planning", "goals"}},
		{"How should we allocate our marketing budget?", []string{"planning", "budget"}},
	},
}

type contextTrigger struct {
	name      string
	condition func(*ChatContext) bool
	prompt    func(*ChatContext) string
	category  string
	relevance float64
	tags      []string
}

var contextTriggers = []contextTrigger{
	{
		name: "negative roi",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.MarketingROI < 0
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Marketing ROI is negative (%.0f%%). Let's identify the problem areas.", c.Metrics.MarketingROI)
		},
		category:  SuggestionUrgent,
		relevance: 98,
		tags:      []string{"roi", "urgent", "loss"},
	},
	{
		name: "low roas",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.ROAS > 0 && c.Metrics.ROAS < 150
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Your ROAS is %.0f%%, below the 150%% threshold. What's driving the low return?", c.Metrics.ROAS)
		},
		category:  SuggestionUrgent,
		relevance: 95,
		tags:      []string{"roi", "roas", "urgent"},
	},
	{
		name: "high churn",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.ChurnRate > 10
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Churn rate is %.1f%%, above healthy levels. Let's discuss retention strategies.", c.Metrics.ChurnRate)
		},
		category:  SuggestionUrgent,
		relevance: 92,
		tags:      []string{"retention", "churn", "customers"},
	},
	{
		name: "high cac",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.CAC > 0 && c.Metrics.CLV > 0 &&
				c.Metrics.CAC > c.Metrics.CLV*0.3
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Your CAC ($%.0f) is high relative to CLV. Should we discuss acquisition efficiency?", c.Metrics.CAC)
		},
		category:  SuggestionUrgent,
		relevance: 90,
		tags:      []string{"cac", "clv", "efficiency"},
	},
	{
		name: "campaigns below benchmark",
		condition: func(c *ChatContext) bool {
			below := 0
			for _, cmp := range c.Campaigns {
				if cmp.OverallScore != nil && *cmp.OverallScore < 60 {
					below++
				}
			}
			return below >= 2
		},
		prompt: func(c *ChatContext) string {
			return "Multiple campaigns are below benchmark. Let's analyze what's not working."
		},
		category:  SuggestionUrgent,
		relevance: 88,
		tags:      []string{"campaigns", "performance", "analysis"},
	},
	{
		name: "underperforming channel",
		condition: func(c *ChatContext) bool {
			for _, ch := range c.Channels {
				if ch.EfficiencyScore != nil && *ch.EfficiencyScore < 50 {
					return true
				}
			}
			return false
		},
		prompt: func(c *ChatContext) string {
			return "Some channels are underperforming. Should we review channel efficiency?"
		},
		category:  SuggestionOpportunity,
		relevance: 85,
		tags:      []string{"channels", "efficiency", "optimization"},
	},
	{
		name: "low conversion",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.ConversionRate > 0 && c.Metrics.ConversionRate < 2
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Conversion rate is only %.1f%%. What's blocking conversions?", c.Metrics.ConversionRate)
		},
		category:  SuggestionOpportunity,
		relevance: 85,
		tags:      []string{"conversion", "funnel", "optimization"},
	},
	{
		name: "below industry average",
		condition: func(c *ChatContext) bool {
			return c.Benchmark != nil && c.Benchmark.OverallScore < 70
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Your benchmark score (%.0f) is below industry average. Where should we focus?", c.Benchmark.OverallScore)
		},
		category:  SuggestionOpportunity,
		relevance: 82,
		tags:      []string{"benchmarks", "improvement", "strategy"},
	},
	{
		name: "high performing channel",
		condition: func(c *ChatContext) bool {
			for _, ch := range c.Channels {
				if ch.ROAS > 400 {
					return true
				}
			}
			return false
		},
		prompt: func(c *ChatContext) string {
			return "You have high-performing channels (ROAS > 400%). Ready to scale them?"
		},
		category:  SuggestionOpportunity,
		relevance: 80,
		tags:      []string{"channels", "scaling", "growth"},
	},
	{
		name: "low engagement",
		condition: func(c *ChatContext) bool {
			return c.Metrics != nil && c.Metrics.SocialEngagementRate != nil &&
				*c.Metrics.SocialEngagementRate < 1
		},
		prompt: func(c *ChatContext) string {
			return fmt.Sprintf("Social engagement is low (%.1f%%). How can we boost it?", *c.Metrics.SocialEngagementRate)
		},
		category:  SuggestionOpportunity,
		relevance: 75,
		tags:      []string{"content", "engagement", "social"},
	},
}

type followUpTrigger struct {
	keywords []string
	prompt   string
	tags     []string
}

var followUpTriggers = []followUpTrigger{
	{
		keywords: []string{"recommend", "suggest", "should consider"},
		prompt:   "Can you elaborate on those recommendations?",
		tags:     []string{"follow-up", "recommendations"},
	},
	{
		keywords: []string{"campaign", "campaigns"},
		prompt:   "Which specific campaign should we focus on first?",
		tags:     []string{"follow-up", "campaigns"},
	},
	{
		keywords: []string{"budget", "spend", "investment"},
		prompt:   "How should we reallocate budget based on this?",
		tags:     []string{"follow-up", "budget"},
	},
	{
		keywords: []string{"roi", "return", "roas"},
		prompt:   "What's the fastest way to improve our ROI?",
		tags:     []string{"follow-up", "roi"},
	},
}

var topicKeywords = map[string][]string{
	"roi":        {"roi", "return", "roas", "profitability"},
	"campaigns":  {"campaign", "campaigns", "ads", "advertising"},
	"channels":   {"channel", "channels", "paid", "organic", "social"},
	"content":    {"content", "blog", "video", "article"},
	"conversion": {"conversion", "convert", "funnel", "leads"},
	"budget":     {"budget", "spend", "investment", "cost"},
	"benchmarks": {"benchmark", "compare", "industry", "competitors"},
	"retention":  {"retention", "churn", "loyalty", "customer lifetime"},
	"engagement": {"engagement", "engagement rate", "interaction"},
}

// SuggestionEngine generates context-aware prompt suggestions.
type SuggestionEngine struct{}

func NewSuggestionEngine() *SuggestionEngine {
	return &SuggestionEngine{}
}

// Suggest ranks prompt suggestions for the mode and context. Triggered
// prompts come first, then mode base prompts, then follow-ups derived
// from conversation history. Dismissed prompts and already-discussed
// topics are filtered out.
func (e *SuggestionEngine) Suggest(mode string, chatCtx *ChatContext, history []Message, discussedTopics, dismissedPrompts []string, maxSuggestions int) []Suggestion {
	if maxSuggestions <= 0 {
		maxSuggestions = 4
	}
	if chatCtx == nil {
		chatCtx = &ChatContext{}
	}

	suggestions := []Suggestion{}

	for _, trigger := range contextTriggers {
		if !trigger.condition(chatCtx) {
			continue
		}
		text := trigger.prompt(chatCtx)
		if topicDiscussed(trigger.tags, discussedTopics) || contains(dismissedPrompts, text) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Prompt:    text,
			Relevance: trigger.relevance,
			Category:  trigger.category,
			Rationale: fmt.Sprintf("Based on your current %s metrics", trigger.name),
			Tags:      trigger.tags,
		})
	}

	base, ok := basePrompts[mode]
	if !ok {
		base = basePrompts[ModeGeneral]
	}
	for _, bp := range base {
		if topicDiscussed(bp.tags, discussedTopics) || contains(dismissedPrompts, bp.text) {
			continue
		}
		relevance := 50 - float64(len(suggestions))*5
		if relevance < 20 {
			relevance = 20
		}
		suggestions = append(suggestions, Suggestion{
			Prompt:    bp.text,
			Relevance: relevance,
			Category:  SuggestionGeneral,
			Rationale: fmt.Sprintf("Common question for %s", strings.ReplaceAll(mode, "_", " ")),
			Tags:      bp.tags,
		})
	}

	suggestions = append(suggestions, e.followUps(history, discussedTopics)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Relevance > suggestions[j].Relevance
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// ExtractTopics derives topic tags from a message via keyword matching.
func (e *SuggestionEngine) ExtractTopics(message string) []string {
	topics := []string{}
	lower := strings.ToLower(message)
	// Iterate in a stable order so repeated calls agree.
	names := make([]string, 0, len(topicKeywords))
	for name := range topicKeywords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, kw := range topicKeywords[name] {
			if strings.Contains(lower, kw) {
				topics = append(topics, name)
				break
			}
		}
	}
	return topics
}

func (e *SuggestionEngine) followUps(history []Message, discussed []string) []Suggestion {
	if len(history) == 0 {
		return nil
	}

	start := len(history) - 4
	if start < 0 {
		start = 0
	}
	lastResponse := ""
	for _, m := range history[start:] {
		if m.Role == "assistant" {
			lastResponse = strings.ToLower(m.Content)
		}
	}
	if lastResponse == "" {
		return nil
	}

	followUps := []Suggestion{}
	for _, trigger := range followUpTriggers {
		matched := false
		for _, kw := range trigger.keywords {
			if strings.Contains(lastResponse, kw) {
				matched = true
				break
			}
		}
		if !matched || topicDiscussed(trigger.tags, discussed) {
			continue
		}
		followUps = append(followUps, Suggestion{
			Prompt:    trigger.prompt,
			Relevance: 70,
			Category:  SuggestionFollowUp,
			Rationale: "Follow up on our previous discussion",
			Tags:      trigger.tags,
		})
		if len(followUps) == 2 {
			break
		}
	}
	return followUps
}

func topicDiscussed(tags, discussed []string) bool {
	for _, tag := range tags {
		if contains(discussed, tag) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
