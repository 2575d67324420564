package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// KPI categories.
const (
	CategoryAcquisition = "Acquisition"
	CategoryEngagement  = "Engagement"
	CategoryConversion  = "Conversion"
	CategoryRetention   = "Retention"
	CategoryRevenue     = "Revenue"
	CategoryBrand       = "Brand"
)

// KPIDefinition describes one benchmarkable metric.
type KPIDefinition struct {
	ID             string
	Name           string
	BenchmarkValue float64
	HigherIsBetter bool
	Category       string
	Unit           string
	Weight         float64
}

// KPIScore is a single KPI compared against its benchmark.
type KPIScore struct {
	KPIID          string  `json:"kpi_id"`
	KPIName        string  `json:"kpi_name"`
	ActualValue    float64 `json:"actual_value"`
	BenchmarkValue float64 `json:"benchmark_value"`
	Score          float64 `json:"score"`
	Gap            float64 `json:"gap"`
	GapPercent     float64 `json:"gap_percent"`
	Rating         string  `json:"rating"`
	Recommendation string  `json:"recommendation"`
}

// BenchmarkReport holds the full benchmark analysis for one entity.
type BenchmarkReport struct {
	EntityID        string             `json:"entity_id"`
	OverallScore    float64            `json:"overall_score"`
	OverallRating   string             `json:"overall_rating"`
	Grade           string             `json:"grade"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	KPIScores       []KPIScore         `json:"kpi_scores"`
	Strengths       []string           `json:"strengths"`
	Improvements    []string           `json:"improvements"`
	Recommendations []string           `json:"recommendations"`
}

// BenchmarkEngine scores actual KPI values against a benchmark set.
type BenchmarkEngine struct {
	kpis            []KPIDefinition
	categoryWeights map[string]float64
}

func NewBenchmarkEngine(kpis []KPIDefinition, categoryWeights map[string]float64) *BenchmarkEngine {
	if categoryWeights == nil {
		categoryWeights = map[string]float64{}
	}
	return &BenchmarkEngine{kpis: kpis, categoryWeights: categoryWeights}
}

// NewMarketingBenchmarks builds the standard marketing KPI set.
func NewMarketingBenchmarks() *BenchmarkEngine {
	kpis := []KPIDefinition{
		{ID: "cac", Name: "Customer Acquisition Cost", BenchmarkValue: 50, HigherIsBetter: false, Category: CategoryAcquisition, Unit: "$", Weight: 1},
		{ID: "cpl", Name: "Cost per Lead", BenchmarkValue: 25, HigherIsBetter: false, Category: CategoryAcquisition, Unit: "$", Weight: 1},
		{ID: "conversion_rate", Name: "Conversion Rate", BenchmarkValue: 3, HigherIsBetter: true, Category: CategoryConversion, Unit: "%", Weight: 1},
		{ID: "lead_to_customer", Name: "Lead to Customer Rate", BenchmarkValue: 20, HigherIsBetter: true, Category: CategoryConversion, Unit: "%", Weight: 1},
		{ID: "email_open_rate", Name: "Email Open Rate", BenchmarkValue: 25, HigherIsBetter: true, Category: CategoryEngagement, Unit: "%", Weight: 1},
		{ID: "email_ctr", Name: "Email Click-Through Rate", BenchmarkValue: 3, HigherIsBetter: true, Category: CategoryEngagement, Unit: "%", Weight: 1},
		{ID: "social_engagement", Name: "Social Engagement Rate", BenchmarkValue: 2, HigherIsBetter: true, Category: CategoryEngagement, Unit: "%", Weight: 1},
		{ID: "customer_retention", Name: "Customer Retention Rate", BenchmarkValue: 85, HigherIsBetter: true, Category: CategoryRetention, Unit: "%", Weight: 1},
		{ID: "churn_rate", Name: "Churn Rate", BenchmarkValue: 5, HigherIsBetter: false, Category: CategoryRetention, Unit: "%", Weight: 1},
		{ID: "clv", Name: "Customer Lifetime Value", BenchmarkValue: 500, HigherIsBetter: true, Category: CategoryRevenue, Unit: "$", Weight: 1},
		{ID: "roas", Name: "Return on Ad Spend", BenchmarkValue: 400, HigherIsBetter: true, Category: CategoryRevenue, Unit: "%", Weight: 1},
		{ID: "marketing_roi", Name: "Marketing ROI", BenchmarkValue: 100, HigherIsBetter: true, Category: CategoryRevenue, Unit: "%", Weight: 1},
		{ID: "brand_awareness", Name: "Brand Awareness", BenchmarkValue: 30, HigherIsBetter: true, Category: CategoryBrand, Unit: "%", Weight: 1},
		{ID: "nps", Name: "Net Promoter Score", BenchmarkValue: 50, HigherIsBetter: true, Category: CategoryBrand, Weight: 1},
	}
	weights := map[string]float64{
		CategoryAcquisition: 1.2,
		CategoryConversion:  1.2,
		CategoryRevenue:     1.1,
		CategoryEngagement:  1.0,
		CategoryRetention:   1.0,
		CategoryBrand:       0.9,
	}
	return NewBenchmarkEngine(kpis, weights)
}

// NewDigitalBenchmarks builds the digital marketing KPI set.
func NewDigitalBenchmarks() *BenchmarkEngine {
	kpis := []KPIDefinition{
		{ID: "website_traffic", Name: "Monthly Website Traffic", BenchmarkValue: 10000, HigherIsBetter: true, Category: CategoryAcquisition, Weight: 1},
		{ID: "bounce_rate", Name: "Bounce Rate", BenchmarkValue: 50, HigherIsBetter: false, Category: CategoryEngagement, Unit: "%", Weight: 1},
		{ID: "pages_per_session", Name: "Pages per Session", BenchmarkValue: 3, HigherIsBetter: true, Category: CategoryEngagement, Weight: 1},
		{ID: "session_duration", Name: "Avg Session Duration", BenchmarkValue: 180, HigherIsBetter: true, Category: CategoryEngagement, Unit: "sec", Weight: 1},
		{ID: "organic_traffic", Name: "Organic Traffic %", BenchmarkValue: 40, HigherIsBetter: true, Category: CategoryAcquisition, Unit: "%", Weight: 1},
		{ID: "paid_ctr", Name: "Paid Ads CTR", BenchmarkValue: 2, HigherIsBetter: true, Category: CategoryConversion, Unit: "%", Weight: 1},
		{ID: "landing_conversion", Name: "Landing Page Conversion", BenchmarkValue: 5, HigherIsBetter: true, Category: CategoryConversion, Unit: "%", Weight: 1},
		{ID: "cart_abandonment", Name: "Cart Abandonment Rate", BenchmarkValue: 70, HigherIsBetter: false, Category: CategoryConversion, Unit: "%", Weight: 1},
	}
	return NewBenchmarkEngine(kpis, nil)
}

// Analyze scores the provided actual values against the engine's KPI set.
// KPIs without an actual value are skipped.
func (e *BenchmarkEngine) Analyze(actual map[string]float64, entityID string) BenchmarkReport {
	kpiScores := []KPIScore{}
	categoryTotals := map[string][]float64{}

	for _, kpi := range e.kpis {
		value, ok := actual[kpi.ID]
		if !ok {
			continue
		}
		score := e.scoreKPI(kpi, value)
		kpiScores = append(kpiScores, score)
		categoryTotals[kpi.Category] = append(categoryTotals[kpi.Category], score.Score)
	}

	categoryScores := map[string]float64{}
	for cat, scores := range categoryTotals {
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		categoryScores[cat] = sum / float64(len(scores))
	}

	overall := 0.0
	if len(categoryScores) > 0 {
		weightedSum := 0.0
		weightSum := 0.0
		for cat, score := range categoryScores {
			w := e.categoryWeight(cat)
			weightedSum += score * w
			weightSum += w
		}
		overall = weightedSum / weightSum
	}

	sorted := append([]KPIScore{}, kpiScores...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	strengths := []string{}
	for i := 0; i < len(sorted) && i < 3; i++ {
		if sorted[i].Score >= 75 {
			strengths = append(strengths, e.describe(sorted[i]))
		}
	}
	improvements := []string{}
	start := len(sorted) - 3
	if start < 0 {
		start = 0
	}
	for _, k := range sorted[start:] {
		if k.Score < 60 {
			improvements = append(improvements, e.describe(k))
		}
	}

	recommendations := []string{}
	for _, k := range kpiScores {
		if k.Rating == StatusPoor || k.Rating == StatusCritical {
			recommendations = append(recommendations, k.Recommendation)
		}
	}
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}

	return BenchmarkReport{
		EntityID:        entityID,
		OverallScore:    overall,
		OverallRating:   Rating(overall),
		Grade:           Grade(overall),
		CategoryScores:  categoryScores,
		KPIScores:       kpiScores,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: recommendations,
	}
}

func (e *BenchmarkEngine) scoreKPI(kpi KPIDefinition, actual float64) KPIScore {
	benchmark := kpi.BenchmarkValue
	gap := actual - benchmark
	gapPct := 0.0
	if benchmark != 0 {
		gapPct = gap / benchmark * 100
	}

	var score float64
	if kpi.HigherIsBetter {
		if benchmark > 0 {
			score = minFloat(120, actual/benchmark*100)
		} else {
			score = 100
		}
	} else {
		if actual > 0 {
			score = minFloat(120, benchmark/actual*100)
		} else {
			score = 100
		}
	}

	rating := Rating(score)
	rec := "Maintain " + kpi.Name
	if rating != StatusExcellent && rating != StatusGood {
		if kpi.HigherIsBetter {
			rec = "Increase " + kpi.Name
		} else {
			rec = "Decrease " + kpi.Name
		}
	}

	return KPIScore{
		KPIID:          kpi.ID,
		KPIName:        kpi.Name,
		ActualValue:    actual,
		BenchmarkValue: benchmark,
		Score:          score,
		Gap:            gap,
		GapPercent:     gapPct,
		Rating:         rating,
		Recommendation: rec,
	}
}

func (e *BenchmarkEngine) categoryWeight(category string) float64 {
	if w, ok := e.categoryWeights[category]; ok {
		return w
	}
	return 1
}

func (e *BenchmarkEngine) describe(k KPIScore) string {
	unit := ""
	for _, kpi := range e.kpis {
		if kpi.ID == k.KPIID {
			unit = kpi.Unit
			break
		}
	}
	return fmt.Sprintf("%s: %s%s", k.KPIName, strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", k.ActualValue), "0"), "."), unit)
}

// Grade maps a benchmark score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
