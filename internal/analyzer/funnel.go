package analyzer

import (
	"fmt"
	"sort"
)

// Funnel stage labels.
const (
	FunnelAwareness     = "Awareness"
	FunnelInterest      = "Interest"
	FunnelConsideration = "Consideration"
	FunnelIntent        = "Intent"
	FunnelEvaluation    = "Evaluation"
	FunnelPurchase      = "Purchase"
	FunnelRetention     = "Retention"
	FunnelAdvocacy      = "Advocacy"
)

// DefaultFunnelStages is the standard five-stage funnel.
var DefaultFunnelStages = []string{
	FunnelAwareness, FunnelInterest, FunnelConsideration, FunnelIntent, FunnelPurchase,
}

type stageBenchmark struct {
	conversion float64
	timeHours  float64
}

var stageBenchmarks = map[string]stageBenchmark{
	FunnelAwareness:     {conversion: 30, timeHours: 24},
	FunnelInterest:      {conversion: 50, timeHours: 48},
	FunnelConsideration: {conversion: 40, timeHours: 72},
	FunnelIntent:        {conversion: 60, timeHours: 48},
	FunnelEvaluation:    {conversion: 50, timeHours: 96},
	FunnelPurchase:      {conversion: 70, timeHours: 24},
	FunnelRetention:     {conversion: 85, timeHours: 720},
	FunnelAdvocacy:      {conversion: 30, timeHours: 2160},
}

// StageInput is the raw data for one funnel stage.
type StageInput struct {
	Visitors    int     `json:"visitors"`
	Conversions int     `json:"conversions"`
	AvgTime     float64 `json:"avg_time"`
	Cost        float64 `json:"cost"`
}

// StageMetrics is the analyzed view of one funnel stage.
type StageMetrics struct {
	Stage          string  `json:"stage"`
	Visitors       int     `json:"visitors"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	DropOffRate    float64 `json:"drop_off_rate"`
	AvgTimeInStage float64 `json:"avg_time_in_stage"`
	CostPerStage   float64 `json:"cost_per_stage"`
}

// FunnelAnalysis is the complete funnel analysis result.
type FunnelAnalysis struct {
	Stages                 []StageMetrics `json:"stages"`
	OverallConversionRate  float64        `json:"overall_conversion_rate"`
	TotalVisitors          int            `json:"total_visitors"`
	TotalConversions       int            `json:"total_conversions"`
	TotalCost              float64        `json:"total_cost"`
	CostPerConversion      float64        `json:"cost_per_conversion"`
	BiggestLeaks           []string       `json:"biggest_leaks"`
	OptimizationPriorities []string       `json:"optimization_priorities"`
	ProjectedLift          float64        `json:"projected_lift"`
}

// SimulationResult compares the funnel before and after proposed
// per-stage conversion improvements.
type SimulationResult struct {
	OriginalConversionRate  float64 `json:"original_conversion_rate"`
	SimulatedConversionRate float64 `json:"simulated_conversion_rate"`
	ImprovementPercent      float64 `json:"improvement_percent"`
	OriginalConversions     int     `json:"original_conversions"`
	SimulatedConversions    int     `json:"simulated_conversions"`
	AdditionalConversions   int     `json:"additional_conversions"`
}

// FunnelOptimizer analyzes stage-to-stage funnel performance.
type FunnelOptimizer struct {
	stages []string
}

func NewFunnelOptimizer(stages []string) *FunnelOptimizer {
	if len(stages) == 0 {
		stages = DefaultFunnelStages
	}
	return &FunnelOptimizer{stages: stages}
}

// Analyze walks the funnel in stage order. Each stage's entrants are the
// previous stage's conversions, so drop-off measures leakage between
// stages rather than within them.
func (f *FunnelOptimizer) Analyze(stageData map[string]StageInput) FunnelAnalysis {
	metrics := make([]StageMetrics, 0, len(f.stages))
	previousConversions := -1

	for _, stage := range f.stages {
		data := stageData[stage]

		conversionRate := 0.0
		if data.Visitors > 0 {
			conversionRate = float64(data.Conversions) / float64(data.Visitors) * 100
		}
		dropOff := 100 - conversionRate
		if previousConversions > 0 {
			entryRate := float64(data.Visitors) / float64(previousConversions) * 100
			dropOff = 100 - entryRate
		}

		metrics = append(metrics, StageMetrics{
			Stage:          stage,
			Visitors:       data.Visitors,
			Conversions:    data.Conversions,
			ConversionRate: conversionRate,
			DropOffRate:    dropOff,
			AvgTimeInStage: data.AvgTime,
			CostPerStage:   data.Cost,
		})
		previousConversions = data.Conversions
	}

	totalVisitors := 0
	totalConversions := 0
	if len(metrics) > 0 {
		totalVisitors = metrics[0].Visitors
		totalConversions = metrics[len(metrics)-1].Conversions
	}
	overallRate := 0.0
	if totalVisitors > 0 {
		overallRate = float64(totalConversions) / float64(totalVisitors) * 100
	}
	totalCost := 0.0
	for _, m := range metrics {
		totalCost += m.CostPerStage
	}
	costPerConversion := 0.0
	if totalConversions > 0 {
		costPerConversion = totalCost / float64(totalConversions)
	}

	return FunnelAnalysis{
		Stages:                 metrics,
		OverallConversionRate:  overallRate,
		TotalVisitors:          totalVisitors,
		TotalConversions:       totalConversions,
		TotalCost:              totalCost,
		CostPerConversion:      costPerConversion,
		BiggestLeaks:           f.identifyLeaks(metrics),
		OptimizationPriorities: f.priorities(metrics),
		ProjectedLift:          f.projectedLift(metrics),
	}
}

// Simulate applies per-stage conversion rate improvements (in percentage
// points) and cascades the resulting volumes through the funnel.
func (f *FunnelOptimizer) Simulate(stageData map[string]StageInput, improvements map[string]float64) SimulationResult {
	modified := map[string]StageInput{}
	for stage, data := range stageData {
		m := data
		if imp, ok := improvements[stage]; ok {
			rate := 0.0
			if data.Visitors > 0 {
				rate = float64(data.Conversions) / float64(data.Visitors)
			}
			newRate := minFloat(1.0, rate+imp/100)
			m.Conversions = int(float64(data.Visitors) * newRate)
		}
		modified[stage] = m
	}

	prevConversions := -1
	for _, stage := range f.stages {
		m, ok := modified[stage]
		if !ok {
			continue
		}
		if prevConversions >= 0 {
			m.Visitors = prevConversions
			orig := stageData[stage]
			rate := 0.0
			if orig.Visitors > 0 {
				rate = float64(orig.Conversions) / float64(orig.Visitors)
			}
			if imp, ok := improvements[stage]; ok {
				rate = minFloat(1.0, rate+imp/100)
			}
			m.Conversions = int(float64(prevConversions) * rate)
			modified[stage] = m
		}
		prevConversions = m.Conversions
	}

	simulated := f.Analyze(modified)
	original := f.Analyze(stageData)

	return SimulationResult{
		OriginalConversionRate:  original.OverallConversionRate,
		SimulatedConversionRate: simulated.OverallConversionRate,
		ImprovementPercent:      simulated.OverallConversionRate - original.OverallConversionRate,
		OriginalConversions:     original.TotalConversions,
		SimulatedConversions:    simulated.TotalConversions,
		AdditionalConversions:   simulated.TotalConversions - original.TotalConversions,
	}
}

func (f *FunnelOptimizer) identifyLeaks(stages []StageMetrics) []string {
	type leak struct {
		text    string
		dropOff float64
	}
	leaks := []leak{}

	for _, stage := range stages {
		expected := benchmarkConversion(stage.Stage)
		if stage.ConversionRate < expected*0.7 {
			leaks = append(leaks, leak{
				text: fmt.Sprintf("%s: %.1f%% drop-off (benchmark: %.1f%%)",
					stage.Stage, stage.DropOffRate, 100-expected),
				dropOff: stage.DropOffRate,
			})
		}
	}

	sort.Slice(leaks, func(i, j int) bool { return leaks[i].dropOff > leaks[j].dropOff })

	out := []string{}
	for i := 0; i < len(leaks) && i < 5; i++ {
		out = append(out, leaks[i].text)
	}
	return out
}

func (f *FunnelOptimizer) priorities(stages []StageMetrics) []string {
	type opportunity struct {
		stage          string
		improvementPct float64
		potentialGain  float64
	}
	priorities := []string{}
	opportunities := []opportunity{}

	for _, stage := range stages {
		bench, ok := stageBenchmarks[stage.Stage]
		if !ok {
			bench = stageBenchmark{conversion: 50, timeHours: 48}
		}

		if stage.ConversionRate < bench.conversion {
			improvement := bench.conversion - stage.ConversionRate
			opportunities = append(opportunities, opportunity{
				stage:          stage.Stage,
				improvementPct: improvement,
				potentialGain:  float64(stage.Visitors) * improvement / 100,
			})
		}
		if stage.AvgTimeInStage > bench.timeHours*1.5 {
			priorities = append(priorities, fmt.Sprintf(
				"Reduce time in %s stage - currently %.0fh vs %.0fh benchmark",
				stage.Stage, stage.AvgTimeInStage, bench.timeHours))
		}
	}

	sort.Slice(opportunities, func(i, j int) bool {
		return opportunities[i].potentialGain > opportunities[j].potentialGain
	})
	for i := len(opportunities) - 1; i >= 0; i-- {
		if i > 2 {
			continue
		}
		opp := opportunities[i]
		priorities = append([]string{fmt.Sprintf(
			"Optimize %s: +%.1f%% could add %.0f conversions",
			opp.stage, opp.improvementPct, opp.potentialGain)}, priorities...)
	}

	if len(priorities) > 5 {
		priorities = priorities[:5]
	}
	return priorities
}

func (f *FunnelOptimizer) projectedLift(stages []StageMetrics) float64 {
	if len(stages) == 0 {
		return 0
	}
	currentRate := 1.0
	potentialRate := 1.0
	for _, stage := range stages {
		expected := benchmarkConversion(stage.Stage) / 100
		current := stage.ConversionRate / 100
		currentRate *= current
		if current > expected {
			potentialRate *= current
		} else {
			potentialRate *= expected
		}
	}
	if currentRate > 0 {
		return (potentialRate/currentRate - 1) * 100
	}
	return 0
}

func benchmarkConversion(stage string) float64 {
	if bench, ok := stageBenchmarks[stage]; ok {
		return bench.conversion
	}
	return 50
}
