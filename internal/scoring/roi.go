package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// ROI status labels.
const (
	ROIHighlyProfitable   = "Highly Profitable"
	ROIProfitable         = "Profitable"
	ROIBreakEven          = "Break Even"
	ROIUnprofitable       = "Unprofitable"
	ROIHighlyUnprofitable = "Highly Unprofitable"

	maxPaybackMonths = 99.0
)

// ChannelROI is the per-channel financial analysis.
type ChannelROI struct {
	Channel               string   `json:"channel"`
	Investment            float64  `json:"investment"`
	Revenue               float64  `json:"revenue"`
	ROIPercentage         float64  `json:"roi_percentage"`
	Status                string   `json:"status"`
	CostPerAcquisition    float64  `json:"cost_per_acquisition"`
	CustomerLifetimeValue float64  `json:"customer_lifetime_value"`
	PaybackPeriod         float64  `json:"payback_period"`
	Recommendations       []string `json:"recommendations"`
}

// ROIReport aggregates channel analyses for an organization.
type ROIReport struct {
	ReportID                  string       `json:"report_id"`
	OrganizationID            string       `json:"organization_id"`
	TotalInvestment           float64      `json:"total_investment"`
	TotalRevenue              float64      `json:"total_revenue"`
	OverallROI                float64      `json:"overall_roi"`
	OverallStatus             string       `json:"overall_status"`
	ChannelAnalysis           []ChannelROI `json:"channel_analysis"`
	TopPerformers             []string     `json:"top_performers"`
	Underperformers           []string     `json:"underperformers"`
	OptimizationOpportunities []string     `json:"optimization_opportunities"`
	Recommendations           []string     `json:"recommendations"`
}

// ChannelROIInput is one channel's raw spend figures.
type ChannelROIInput struct {
	Channel     string
	Investment  float64
	Revenue     float64
	Conversions int
}

// ROIAnalyzer evaluates marketing spend against revenue.
type ROIAnalyzer struct {
	TargetROI float64
	TargetCPA float64
	AvgCLV    float64
}

func NewROIAnalyzer() *ROIAnalyzer {
	return &ROIAnalyzer{TargetROI: 100, TargetCPA: 50, AvgCLV: 500}
}

// AnalyzeChannel computes ROI metrics for a single channel.
func (a *ROIAnalyzer) AnalyzeChannel(channel string, investment, revenue float64, conversions int) ChannelROI {
	roi := 0.0
	if investment > 0 {
		roi = (revenue - investment) / investment * 100
	}
	status := a.status(roi)

	cpa := investment
	clv := 0.0
	if conversions > 0 {
		cpa = investment / float64(conversions)
		clv = revenue / float64(conversions)
	}

	payback := maxPaybackMonths
	if revenue > 0 {
		payback = investment / (revenue / 12)
	}

	return ChannelROI{
		Channel:               channel,
		Investment:            investment,
		Revenue:               revenue,
		ROIPercentage:         roi,
		Status:                status,
		CostPerAcquisition:    cpa,
		CustomerLifetimeValue: clv,
		PaybackPeriod:         payback,
		Recommendations:       a.channelRecommendations(channel, cpa, status),
	}
}

// CreateReport runs the channel analysis across an organization's channels
// and aggregates totals, top performers and recommendations.
func (a *ROIAnalyzer) CreateReport(reportID, organizationID string, channels []ChannelROIInput) ROIReport {
	analysis := make([]ChannelROI, 0, len(channels))
	totalInv := 0.0
	totalRev := 0.0
	for _, c := range channels {
		conversions := c.Conversions
		if conversions == 0 {
			conversions = 1
		}
		ch := a.AnalyzeChannel(c.Channel, c.Investment, c.Revenue, conversions)
		analysis = append(analysis, ch)
		totalInv += ch.Investment
		totalRev += ch.Revenue
	}

	overallROI := 0.0
	if totalInv > 0 {
		overallROI = (totalRev - totalInv) / totalInv * 100
	}

	sorted := append([]ChannelROI{}, analysis...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ROIPercentage > sorted[j].ROIPercentage })

	top := []string{}
	for i := 0; i < len(sorted) && i < 3; i++ {
		if sorted[i].ROIPercentage > 50 {
			top = append(top, sorted[i].Channel)
		}
	}
	under := []string{}
	start := len(sorted) - 3
	if start < 0 {
		start = 0
	}
	for _, c := range sorted[start:] {
		if c.ROIPercentage < 0 {
			under = append(under, c.Channel)
		}
	}

	opportunities := []string{}
	for _, c := range analysis {
		if c.ROIPercentage > 100 {
			opportunities = append(opportunities, fmt.Sprintf("Scale %s - high ROI potential", c.Channel))
		} else if c.ROIPercentage < 0 {
			opportunities = append(opportunities, fmt.Sprintf("Optimize or reduce %s spend", c.Channel))
		}
	}
	if len(opportunities) > 5 {
		opportunities = opportunities[:5]
	}

	return ROIReport{
		ReportID:                  reportID,
		OrganizationID:            organizationID,
		TotalInvestment:           totalInv,
		TotalRevenue:              totalRev,
		OverallROI:                overallROI,
		OverallStatus:             a.status(overallROI),
		ChannelAnalysis:           analysis,
		TopPerformers:             top,
		Underperformers:           under,
		OptimizationOpportunities: opportunities,
		Recommendations:           a.reportRecommendations(overallROI, analysis),
	}
}

func (a *ROIAnalyzer) status(roi float64) string {
	switch {
	case roi >= 200:
		return ROIHighlyProfitable
	case roi >= 50:
		return ROIProfitable
	case roi >= 0:
		return ROIBreakEven
	case roi >= -50:
		return ROIUnprofitable
	default:
		return ROIHighlyUnprofitable
	}
}

func (a *ROIAnalyzer) channelRecommendations(channel string, cpa float64, status string) []string {
	recs := []string{}
	switch status {
	case ROIHighlyProfitable:
		recs = append(recs, fmt.Sprintf("Increase %s budget allocation", channel))
	case ROIUnprofitable, ROIHighlyUnprofitable:
		recs = append(recs, fmt.Sprintf("Review %s targeting and creative", channel))
		recs = append(recs, fmt.Sprintf("Consider reducing %s spend", channel))
	}
	if cpa > a.TargetCPA {
		recs = append(recs, fmt.Sprintf("Optimize %s to reduce CPA", channel))
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func (a *ROIAnalyzer) reportRecommendations(overallROI float64, channels []ChannelROI) []string {
	recs := []string{}
	if overallROI < a.TargetROI {
		recs = append(recs, fmt.Sprintf("Overall ROI (%.0f%%) below target (%.0f%%)", overallROI, a.TargetROI))
	}
	profitable := []string{}
	unprofitable := []string{}
	for _, c := range channels {
		if c.ROIPercentage > 100 {
			profitable = append(profitable, c.Channel)
		} else if c.ROIPercentage < 0 {
			unprofitable = append(unprofitable, c.Channel)
		}
	}
	if len(profitable) > 0 {
		if len(profitable) > 2 {
			profitable = profitable[:2]
		}
		recs = append(recs, "Reallocate budget to top performers: "+strings.Join(profitable, ", "))
	}
	if len(unprofitable) > 0 {
		if len(unprofitable) > 2 {
			unprofitable = unprofitable[:2]
		}
		recs = append(recs, "Reduce spend on underperformers: "+strings.Join(unprofitable, ", "))
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
