// Package analyzer provides channel mix, content library and funnel analysis.
package analyzer

import (
	"fmt"
	"sort"

	"github.com/patriotech/marketing-intel/internal/scoring"
)

// Channel type labels used across the API and demo data.
const (
	ChannelOrganicSearch = "Organic Search"
	ChannelPaidSearch    = "Paid Search"
	ChannelSocialOrganic = "Social (Organic)"
	ChannelSocialPaid    = "Social (Paid)"
	ChannelEmail         = "Email"
	ChannelDisplay       = "Display Ads"
	ChannelAffiliate     = "Affiliate"
	ChannelReferral      = "Referral"
	ChannelDirect        = "Direct"
	ChannelVideo         = "Video"
	ChannelContent       = "Content Marketing"
)

// ChannelTypes lists every supported channel type.
var ChannelTypes = []string{
	ChannelOrganicSearch, ChannelPaidSearch, ChannelSocialOrganic,
	ChannelSocialPaid, ChannelEmail, ChannelDisplay, ChannelAffiliate,
	ChannelReferral, ChannelDirect, ChannelVideo, ChannelContent,
}

type channelBenchmark struct {
	ctr            float64
	conversionRate float64
	cpa            float64
}

var channelBenchmarks = map[string]channelBenchmark{
	ChannelOrganicSearch: {ctr: 3.0, conversionRate: 3.0, cpa: 30},
	ChannelPaidSearch:    {ctr: 2.0, conversionRate: 2.5, cpa: 50},
	ChannelSocialOrganic: {ctr: 1.0, conversionRate: 1.5, cpa: 0},
	ChannelSocialPaid:    {ctr: 1.5, conversionRate: 1.0, cpa: 40},
	ChannelEmail:         {ctr: 3.5, conversionRate: 4.0, cpa: 10},
	ChannelDisplay:       {ctr: 0.5, conversionRate: 0.5, cpa: 60},
	ChannelAffiliate:     {ctr: 1.0, conversionRate: 2.0, cpa: 35},
	ChannelReferral:      {ctr: 2.5, conversionRate: 3.5, cpa: 20},
	ChannelDirect:        {ctr: 0.0, conversionRate: 5.0, cpa: 0},
	ChannelVideo:         {ctr: 1.2, conversionRate: 1.0, cpa: 45},
	ChannelContent:       {ctr: 2.0, conversionRate: 2.5, cpa: 25},
}

// ChannelMetrics are the raw counters for one channel.
type ChannelMetrics struct {
	Impressions  int     `json:"impressions"`
	Clicks       int     `json:"clicks"`
	Conversions  int     `json:"conversions"`
	Spend        float64 `json:"spend"`
	Revenue      float64 `json:"revenue"`
	Leads        int     `json:"leads"`
	NewCustomers int     `json:"new_customers"`
}

// ChannelPerformance is the derived KPI view of one channel.
type ChannelPerformance struct {
	Channel             string         `json:"channel"`
	Metrics             ChannelMetrics `json:"metrics"`
	CTR                 float64        `json:"ctr"`
	ConversionRate      float64        `json:"conversion_rate"`
	CPC                 float64        `json:"cpc"`
	CPA                 float64        `json:"cpa"`
	ROAS                float64        `json:"roas"`
	ContributionPercent float64        `json:"contribution_percent"`
	EfficiencyScore     float64        `json:"efficiency_score"`
	Rating              string         `json:"rating"`
	Recommendations     []string       `json:"recommendations"`
}

// ChannelMix is the full channel mix analysis.
type ChannelMix struct {
	TotalSpend                float64              `json:"total_spend"`
	TotalRevenue              float64              `json:"total_revenue"`
	TotalConversions          int                  `json:"total_conversions"`
	OverallROAS               float64              `json:"overall_roas"`
	ChannelPerformances       []ChannelPerformance `json:"channel_performances"`
	TopPerformers             []string             `json:"top_performers"`
	Underperformers           []string             `json:"underperformers"`
	OptimizationOpportunities []string             `json:"optimization_opportunities"`
	RecommendedBudgetShifts   map[string]float64   `json:"recommended_budget_shifts"`
}

// ChannelAnalyzer scores channels against per-type benchmarks and
// recommends budget reallocation across the mix.
type ChannelAnalyzer struct {
	TargetROAS float64
}

func NewChannelAnalyzer() *ChannelAnalyzer {
	return &ChannelAnalyzer{TargetROAS: 400}
}

// AnalyzeChannel computes the KPI view for one channel. totalRevenue may
// be zero when the channel is analyzed in isolation.
func (a *ChannelAnalyzer) AnalyzeChannel(channel string, metrics ChannelMetrics, totalRevenue float64) ChannelPerformance {
	ctr := 0.0
	if metrics.Impressions > 0 {
		ctr = float64(metrics.Clicks) / float64(metrics.Impressions) * 100
	}
	conversionRate := 0.0
	cpc := 0.0
	if metrics.Clicks > 0 {
		conversionRate = float64(metrics.Conversions) / float64(metrics.Clicks) * 100
		cpc = metrics.Spend / float64(metrics.Clicks)
	}
	cpa := 0.0
	if metrics.Conversions > 0 {
		cpa = metrics.Spend / float64(metrics.Conversions)
	}
	roas := 0.0
	if metrics.Spend > 0 {
		roas = metrics.Revenue / metrics.Spend * 100
	}
	contribution := 0.0
	if totalRevenue > 0 {
		contribution = metrics.Revenue / totalRevenue * 100
	}

	efficiency := a.efficiency(channel, ctr, conversionRate, cpa, roas)

	return ChannelPerformance{
		Channel:             channel,
		Metrics:             metrics,
		CTR:                 ctr,
		ConversionRate:      conversionRate,
		CPC:                 cpc,
		CPA:                 cpa,
		ROAS:                roas,
		ContributionPercent: contribution,
		EfficiencyScore:     efficiency,
		Rating:              scoring.Rating(efficiency),
		Recommendations:     a.channelRecommendations(channel, ctr, conversionRate, cpa, roas, efficiency),
	}
}

// AnalyzeMix analyzes the whole channel mix and recommends budget shifts.
func (a *ChannelAnalyzer) AnalyzeMix(channels map[string]ChannelMetrics) ChannelMix {
	totalSpend := 0.0
	totalRevenue := 0.0
	totalConversions := 0
	for _, m := range channels {
		totalSpend += m.Spend
		totalRevenue += m.Revenue
		totalConversions += m.Conversions
	}
	overallROAS := 0.0
	if totalSpend > 0 {
		overallROAS = totalRevenue / totalSpend * 100
	}

	performances := make([]ChannelPerformance, 0, len(channels))
	for channel, metrics := range channels {
		performances = append(performances, a.AnalyzeChannel(channel, metrics, totalRevenue))
	}
	sort.Slice(performances, func(i, j int) bool {
		return performances[i].EfficiencyScore > performances[j].EfficiencyScore
	})

	top := []string{}
	for i := 0; i < len(performances) && i < 3; i++ {
		if performances[i].EfficiencyScore >= 70 {
			top = append(top, performances[i].Channel)
		}
	}
	under := []string{}
	for _, p := range performances {
		if p.EfficiencyScore < 50 {
			under = append(under, p.Channel)
		}
	}

	return ChannelMix{
		TotalSpend:                totalSpend,
		TotalRevenue:              totalRevenue,
		TotalConversions:          totalConversions,
		OverallROAS:               overallROAS,
		ChannelPerformances:       performances,
		TopPerformers:             top,
		Underperformers:           under,
		OptimizationOpportunities: a.opportunities(performances, totalSpend),
		RecommendedBudgetShifts:   a.budgetShifts(performances, totalSpend),
	}
}

func (a *ChannelAnalyzer) efficiency(channel string, ctr, conversionRate, cpa, roas float64) float64 {
	benchmarks := channelBenchmarks[channel]
	total := 0.0
	scored := false

	if benchmarks.ctr > 0 {
		total += minFloat(100, ctr/benchmarks.ctr*100) * 0.2
		scored = true
	}
	if benchmarks.conversionRate > 0 {
		total += minFloat(100, conversionRate/benchmarks.conversionRate*100) * 0.3
		scored = true
	}
	if benchmarks.cpa > 0 && cpa > 0 {
		total += minFloat(100, benchmarks.cpa/cpa*100) * 0.25
		scored = true
	}
	total += minFloat(100, roas/a.TargetROAS*100) * 0.25
	scored = true

	if !scored {
		return 50
	}
	return total
}

func (a *ChannelAnalyzer) channelRecommendations(channel string, ctr, conversionRate, cpa, roas, score float64) []string {
	recs := []string{}
	benchmarks := channelBenchmarks[channel]

	if ctr < benchmarks.ctr*0.8 {
		recs = append(recs, fmt.Sprintf("Improve %s CTR - test new ad creative and targeting", channel))
	}
	if conversionRate < benchmarks.conversionRate*0.8 {
		recs = append(recs, fmt.Sprintf("Optimize %s landing pages for better conversion", channel))
	}
	if benchmarks.cpa > 0 && cpa > benchmarks.cpa*1.2 {
		recs = append(recs, fmt.Sprintf("Reduce %s CPA through audience refinement", channel))
	}
	if roas < a.TargetROAS*0.8 {
		recs = append(recs, fmt.Sprintf("Review %s targeting and bid strategy", channel))
	}
	if score >= 80 {
		recs = append(recs, fmt.Sprintf("Consider increasing %s budget - strong performer", channel))
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func (a *ChannelAnalyzer) opportunities(performances []ChannelPerformance, totalSpend float64) []string {
	opportunities := []string{}
	for _, p := range performances {
		share := spendShare(p.Metrics.Spend, totalSpend)
		if p.EfficiencyScore > 75 && share < 15 {
			opportunities = append(opportunities, fmt.Sprintf(
				"Scale %s - high efficiency (%.0f) but low budget share (%.1f%%)",
				p.Channel, p.EfficiencyScore, share))
		}
	}
	for _, p := range performances {
		share := spendShare(p.Metrics.Spend, totalSpend)
		if p.EfficiencyScore < 50 && share > 20 {
			opportunities = append(opportunities, fmt.Sprintf(
				"Reduce %s spend - poor efficiency (%.0f) with high budget (%.1f%%)",
				p.Channel, p.EfficiencyScore, share))
		}
	}
	if len(opportunities) > 5 {
		opportunities = opportunities[:5]
	}
	return opportunities
}

// budgetShifts returns recommended share changes in percentage points.
// No channel is pushed above a 40% share and shifts under 2 points are
// dropped as noise.
func (a *ChannelAnalyzer) budgetShifts(performances []ChannelPerformance, totalSpend float64) map[string]float64 {
	shifts := map[string]float64{}
	for _, p := range performances {
		currentShare := spendShare(p.Metrics.Spend, totalSpend)

		var shift float64
		switch {
		case p.EfficiencyScore >= 80:
			recommended := minFloat(currentShare*1.3, 40)
			shift = recommended - currentShare
		case p.EfficiencyScore >= 60:
			shift = 0
		case p.EfficiencyScore >= 40:
			shift = -currentShare * 0.2
		default:
			shift = -currentShare * 0.4
		}

		if shift > 2 || shift < -2 {
			shifts[p.Channel] = shift
		}
	}
	return shifts
}

func spendShare(spend, totalSpend float64) float64 {
	if totalSpend <= 0 {
		return 0
	}
	return spend / totalSpend * 100
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
