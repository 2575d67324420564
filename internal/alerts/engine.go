// Package alerts evaluates threshold rules over dashboard metrics and
// produces severity-ranked alerts.
package alerts

import (
	"fmt"
	"sort"
	"time"
)

// Alert severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert categories.
const (
	CategoryROI     = "roi"
	CategorySpend   = "spend"
	CategoryChannel = "channel"
)

// Alert is one triggered threshold rule.
type Alert struct {
	ID             string    `json:"id"`
	Severity       string    `json:"severity"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	MetricName     string    `json:"metric_name"`
	CurrentValue   float64   `json:"current_value"`
	ThresholdValue float64   `json:"threshold_value"`
	Recommendation string    `json:"recommendation"`
	CreatedAt      time.Time `json:"created_at"`
}

// Summary counts alerts by severity and category.
type Summary struct {
	Total      int            `json:"total"`
	Critical   int            `json:"critical"`
	Warning    int            `json:"warning"`
	Info       int            `json:"info"`
	Categories map[string]int `json:"categories"`
}

// ChannelSnapshot is the per-channel input for alert checks.
type ChannelSnapshot struct {
	Name string
	ROI  float64
}

// CampaignSnapshot is the per-campaign input for alert checks.
type CampaignSnapshot struct {
	Name   string
	Budget float64
	Spent  float64
	Status string
}

// Snapshot is the dashboard state the engine evaluates.
type Snapshot struct {
	ROAS      float64
	Channels  []ChannelSnapshot
	Campaigns []CampaignSnapshot
}

// Thresholds are the tunable alert limits.
type Thresholds struct {
	ROASCritical         float64
	ROASWarning          float64
	ROICritical          float64
	ROIWarning           float64
	SpendUtilizationLow  float64
	SpendUtilizationHigh float64
}

// DefaultThresholds returns the standard alert limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ROASCritical:         1.0,
		ROASWarning:          2.0,
		ROICritical:          0,
		ROIWarning:           50,
		SpendUtilizationLow:  50,
		SpendUtilizationHigh: 95,
	}
}

// Engine generates alerts from dashboard snapshots.
type Engine struct {
	thresholds Thresholds
	counter    int
	now        func() time.Time
}

func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds, now: time.Now}
}

// Check evaluates every rule against the snapshot. The result is sorted
// critical first.
func (e *Engine) Check(snapshot Snapshot) []Alert {
	alerts := []Alert{}

	if snapshot.ROAS > 0 {
		if snapshot.ROAS < e.thresholds.ROASCritical {
			alerts = append(alerts, e.alert(SeverityCritical, CategoryROI,
				"Critical: ROAS Below Break-Even",
				fmt.Sprintf("Your ROAS is %.2fx, which means you're losing money on marketing spend.", snapshot.ROAS),
				"ROAS", snapshot.ROAS, e.thresholds.ROASCritical,
				"Immediately pause underperforming campaigns and reallocate budget to high-performing channels."))
		} else if snapshot.ROAS < e.thresholds.ROASWarning {
			alerts = append(alerts, e.alert(SeverityWarning, CategoryROI,
				"Warning: ROAS Needs Improvement",
				fmt.Sprintf("Your ROAS is %.2fx, below the recommended %.0fx target.", snapshot.ROAS, e.thresholds.ROASWarning),
				"ROAS", snapshot.ROAS, e.thresholds.ROASWarning,
				"Review campaign targeting and creative assets. Consider A/B testing to improve conversion rates."))
		}
	}

	for _, channel := range snapshot.Channels {
		if channel.ROI < e.thresholds.ROICritical {
			alerts = append(alerts, e.alert(SeverityCritical, CategoryChannel,
				fmt.Sprintf("Critical: %s Has Negative ROI", channel.Name),
				fmt.Sprintf("%s is showing %.1f%% ROI - you're losing money on this channel.", channel.Name, channel.ROI),
				channel.Name+" ROI", channel.ROI, 0,
				fmt.Sprintf("Pause %s campaigns immediately and investigate targeting, creative, and landing pages.", channel.Name)))
		} else if channel.ROI < e.thresholds.ROIWarning {
			alerts = append(alerts, e.alert(SeverityWarning, CategoryChannel,
				fmt.Sprintf("Warning: %s Underperforming", channel.Name),
				fmt.Sprintf("%s ROI is %.1f%%, below the %.0f%% target.", channel.Name, channel.ROI, e.thresholds.ROIWarning),
				channel.Name+" ROI", channel.ROI, e.thresholds.ROIWarning,
				fmt.Sprintf("Optimize %s targeting and bid strategies. Consider reducing budget if performance doesn't improve.", channel.Name)))
		}
	}

	for _, campaign := range snapshot.Campaigns {
		if campaign.Budget <= 0 || campaign.Status != "active" {
			continue
		}
		utilization := campaign.Spent / campaign.Budget * 100

		if utilization > e.thresholds.SpendUtilizationHigh {
			alerts = append(alerts, e.alert(SeverityWarning, CategorySpend,
				"Budget Nearly Exhausted: "+campaign.Name,
				fmt.Sprintf("Campaign '%s' has used %.1f%% of its budget.", campaign.Name, utilization),
				"Budget Utilization", utilization, e.thresholds.SpendUtilizationHigh,
				"Review campaign performance. If performing well, consider increasing budget to capture more conversions."))
		} else if utilization < e.thresholds.SpendUtilizationLow {
			alerts = append(alerts, e.alert(SeverityInfo, CategorySpend,
				"Low Budget Utilization: "+campaign.Name,
				fmt.Sprintf("Campaign '%s' has only used %.1f%% of its budget.", campaign.Name, utilization),
				"Budget Utilization", utilization, e.thresholds.SpendUtilizationLow,
				"Check if targeting is too narrow or bids are too low. Consider broadening audience or increasing bids."))
		}
	}

	order := map[string]int{SeverityCritical: 0, SeverityWarning: 1, SeverityInfo: 2}
	sort.SliceStable(alerts, func(i, j int) bool {
		return order[alerts[i].Severity] < order[alerts[j].Severity]
	})
	return alerts
}

// Summarize counts alerts by severity and category.
func (e *Engine) Summarize(alerts []Alert) Summary {
	summary := Summary{Total: len(alerts), Categories: map[string]int{}}
	for _, a := range alerts {
		switch a.Severity {
		case SeverityCritical:
			summary.Critical++
		case SeverityWarning:
			summary.Warning++
		case SeverityInfo:
			summary.Info++
		}
		summary.Categories[a.Category]++
	}
	return summary
}

func (e *Engine) alert(severity, category, title, message, metric string, current, threshold float64, recommendation string) Alert {
	e.counter++
	now := e.now()
	return Alert{
		ID:             fmt.Sprintf("mkt-alert-%s-%d", now.Format("20060102150405"), e.counter),
		Severity:       severity,
		Category:       category,
		Title:          title,
		Message:        message,
		MetricName:     metric,
		CurrentValue:   current,
		ThresholdValue: threshold,
		Recommendation: recommendation,
		CreatedAt:      now,
	}
}
