// Package scoring holds the campaign scoring, ROI and benchmark engines.
package scoring

import (
	"fmt"
	"sort"
)

// Status buckets for an overall campaign score.
const (
	StatusExcellent = "Excellent"
	StatusGood      = "Good"
	StatusFair      = "Fair"
	StatusPoor      = "Poor"
	StatusCritical  = "Critical"
)

// Rating maps a 0-100 score to its bucket. Shared by every engine in here.
func Rating(score float64) string {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 60:
		return StatusFair
	case score >= 40:
		return StatusPoor
	default:
		return StatusCritical
	}
}

// Component is one weighted input of the campaign score.
type Component struct {
	ID             string
	Name           string
	Weight         float64
	HigherIsBetter bool
	Min            float64
	Max            float64
}

// ComponentScore is the scored form of a Component.
type ComponentScore struct {
	ComponentID     string  `json:"component_id"`
	Name            string  `json:"name"`
	RawValue        float64 `json:"raw_value"`
	NormalizedScore float64 `json:"normalized_score"`
	WeightedScore   float64 `json:"weighted_score"`
	Rating          string  `json:"rating"`
}

// CampaignScore is the full scoring result for one campaign.
type CampaignScore struct {
	CampaignID      string           `json:"campaign_id"`
	CampaignName    string           `json:"campaign_name"`
	OverallScore    float64          `json:"overall_score"`
	Status          string           `json:"status"`
	ComponentScores []ComponentScore `json:"component_scores"`
	Strengths       []string         `json:"strengths"`
	Improvements    []string         `json:"improvements"`
	Recommendations []string         `json:"recommendations"`
}

// CampaignScoringEngine normalizes raw metric values against component
// ranges and combines them into a weighted overall score.
type CampaignScoringEngine struct {
	components  []Component
	totalWeight float64
}

func NewCampaignScoringEngine(components []Component) *CampaignScoringEngine {
	total := 0.0
	for _, c := range components {
		total += c.Weight
	}
	return &CampaignScoringEngine{components: components, totalWeight: total}
}

// NewCampaignPerformanceEngine is the default engine used for campaign rows.
func NewCampaignPerformanceEngine() *CampaignScoringEngine {
	return NewCampaignScoringEngine([]Component{
		{ID: "conversion_rate", Name: "Conversion Rate", Weight: 25, HigherIsBetter: true, Min: 0, Max: 10},
		{ID: "click_through_rate", Name: "Click-Through Rate", Weight: 20, HigherIsBetter: true, Min: 0, Max: 5},
		{ID: "cost_per_acquisition", Name: "Cost per Acquisition", Weight: 20, HigherIsBetter: false, Min: 0, Max: 100},
		{ID: "return_on_ad_spend", Name: "Return on Ad Spend", Weight: 20, HigherIsBetter: true, Min: 0, Max: 500},
		{ID: "engagement_rate", Name: "Engagement Rate", Weight: 15, HigherIsBetter: true, Min: 0, Max: 10},
	})
}

// Score computes the weighted campaign score from raw metric values.
// Components with no value present are skipped and the remaining weight
// is rescaled.
func (e *CampaignScoringEngine) Score(campaignID, campaignName string, values map[string]float64) CampaignScore {
	componentScores := []ComponentScore{}
	totalWeighted := 0.0
	totalWeightUsed := 0.0

	for _, comp := range e.components {
		raw, ok := values[comp.ID]
		if !ok {
			continue
		}
		normalized := e.normalize(raw, comp)
		weighted := normalized * (comp.Weight / e.totalWeight)
		componentScores = append(componentScores, ComponentScore{
			ComponentID:     comp.ID,
			Name:            comp.Name,
			RawValue:        raw,
			NormalizedScore: normalized,
			WeightedScore:   weighted,
			Rating:          Rating(normalized),
		})
		totalWeighted += weighted
		totalWeightUsed += comp.Weight / e.totalWeight
	}

	overall := 0.0
	if totalWeightUsed > 0 {
		overall = totalWeighted / totalWeightUsed
	}
	status := Rating(overall)

	sorted := append([]ComponentScore{}, componentScores...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].NormalizedScore > sorted[j].NormalizedScore })

	strengths := []string{}
	for i := 0; i < len(sorted) && i < 3; i++ {
		if sorted[i].NormalizedScore >= 70 {
			strengths = append(strengths, sorted[i].Name)
		}
	}

	improvements := []string{}
	start := len(sorted) - 3
	if start < 0 {
		start = 0
	}
	for _, s := range sorted[start:] {
		if s.NormalizedScore < 60 {
			improvements = append(improvements, s.Name)
		}
	}

	return CampaignScore{
		CampaignID:      campaignID,
		CampaignName:    campaignName,
		OverallScore:    overall,
		Status:          status,
		ComponentScores: componentScores,
		Strengths:       strengths,
		Improvements:    improvements,
		Recommendations: e.recommendations(status, componentScores),
	}
}

func (e *CampaignScoringEngine) normalize(value float64, comp Component) float64 {
	rangeSize := comp.Max - comp.Min
	if rangeSize == 0 {
		return 50
	}
	var score float64
	if comp.HigherIsBetter {
		score = (value - comp.Min) / rangeSize * 100
	} else {
		score = (comp.Max - value) / rangeSize * 100
	}
	return clamp(score, 0, 100)
}

func (e *CampaignScoringEngine) recommendations(status string, scores []ComponentScore) []string {
	recs := []string{}
	weak := []ComponentScore{}
	for _, s := range scores {
		if s.NormalizedScore < 60 {
			weak = append(weak, s)
		}
	}
	for i := 0; i < len(weak) && i < 3; i++ {
		recs = append(recs, fmt.Sprintf("Improve %s performance", weak[i].Name))
	}
	if status == StatusCritical {
		recs = append([]string{"Consider pausing campaign for optimization"}, recs...)
	} else if status == StatusExcellent {
		recs = append(recs, "Scale successful tactics to other campaigns")
	}
	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
