package analyzer

import (
	"fmt"
	"sort"

	"github.com/patriotech/marketing-intel/internal/scoring"
)

// Content type labels.
const (
	ContentBlogPost    = "Blog Post"
	ContentVideo       = "Video"
	ContentPodcast     = "Podcast"
	ContentInfographic = "Infographic"
	ContentEbook       = "eBook"
	ContentWhitepaper  = "Whitepaper"
	ContentCaseStudy   = "Case Study"
	ContentWebinar     = "Webinar"
	ContentSocialPost  = "Social Post"
	ContentEmail       = "Email"
	ContentLandingPage = "Landing Page"
)

// Funnel stages.
const (
	StageTOFU = "TOFU"
	StageMOFU = "MOFU"
	StageBOFU = "BOFU"
)

// ContentTypes lists every supported content type.
var ContentTypes = []string{
	ContentBlogPost, ContentVideo, ContentPodcast, ContentInfographic,
	ContentEbook, ContentWhitepaper, ContentCaseStudy, ContentWebinar,
	ContentSocialPost, ContentEmail, ContentLandingPage,
}

type contentBenchmark struct {
	timeOnPage     float64
	bounceRate     float64
	engagementRate float64
}

var contentBenchmarks = map[string]contentBenchmark{
	ContentBlogPost:    {timeOnPage: 180, bounceRate: 60, engagementRate: 2},
	ContentVideo:       {timeOnPage: 120, bounceRate: 45, engagementRate: 4},
	ContentPodcast:     {timeOnPage: 900, bounceRate: 30, engagementRate: 3},
	ContentInfographic: {timeOnPage: 60, bounceRate: 50, engagementRate: 5},
	ContentEbook:       {timeOnPage: 300, bounceRate: 40, engagementRate: 8},
	ContentWhitepaper:  {timeOnPage: 360, bounceRate: 35, engagementRate: 10},
	ContentCaseStudy:   {timeOnPage: 240, bounceRate: 40, engagementRate: 6},
	ContentWebinar:     {timeOnPage: 2400, bounceRate: 25, engagementRate: 12},
	ContentSocialPost:  {timeOnPage: 15, bounceRate: 70, engagementRate: 3},
	ContentEmail:       {timeOnPage: 30, bounceRate: 0, engagementRate: 3},
	ContentLandingPage: {timeOnPage: 90, bounceRate: 50, engagementRate: 5},
}

var expectedLeadRate = map[string]float64{StageTOFU: 2, StageMOFU: 5, StageBOFU: 10}
var expectedConvRate = map[string]float64{StageTOFU: 0.5, StageMOFU: 2, StageBOFU: 5}

// ContentMetrics are the raw counters for one content piece.
type ContentMetrics struct {
	Views          int     `json:"views"`
	UniqueVisitors int     `json:"unique_visitors"`
	TimeOnPage     float64 `json:"time_on_page"`
	BounceRate     float64 `json:"bounce_rate"`
	Shares         int     `json:"shares"`
	Comments       int     `json:"comments"`
	Downloads      int     `json:"downloads"`
	LeadsGenerated int     `json:"leads_generated"`
	Conversions    int     `json:"conversions"`
}

// ContentPerformance scores a single content piece.
type ContentPerformance struct {
	ContentID       string         `json:"content_id"`
	Title           string         `json:"title"`
	ContentType     string         `json:"content_type"`
	Stage           string         `json:"stage"`
	Metrics         ContentMetrics `json:"metrics"`
	EngagementScore float64        `json:"engagement_score"`
	ConversionScore float64        `json:"conversion_score"`
	OverallScore    float64        `json:"overall_score"`
	Rating          string         `json:"rating"`
	Recommendations []string       `json:"recommendations"`
}

// ContentLibraryReport is the aggregated analysis of a content library.
type ContentLibraryReport struct {
	TotalContentPieces int                  `json:"total_content_pieces"`
	TotalViews         int                  `json:"total_views"`
	TotalLeads         int                  `json:"total_leads"`
	TotalConversions   int                  `json:"total_conversions"`
	AvgEngagementScore float64              `json:"avg_engagement_score"`
	TopPerformers      []ContentPerformance `json:"top_performers"`
	Underperformers    []ContentPerformance `json:"underperformers"`
	ContentByType      map[string]int       `json:"content_by_type"`
	ContentByStage     map[string]int       `json:"content_by_stage"`
	ContentGaps        []string             `json:"content_gaps"`
	Recommendations    []string             `json:"recommendations"`
}

// ContentAnalyzer scores content against per-type engagement benchmarks
// and per-stage conversion expectations.
type ContentAnalyzer struct{}

func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{}
}

// AnalyzeContent scores one content piece. The funnel stage weights how
// engagement and conversion combine into the overall score.
func (a *ContentAnalyzer) AnalyzeContent(contentID, title, contentType, stage string, metrics ContentMetrics) ContentPerformance {
	engagement := a.engagementScore(contentType, metrics)
	conversion := a.conversionScore(stage, metrics)

	var overall float64
	switch stage {
	case StageTOFU:
		overall = engagement*0.7 + conversion*0.3
	case StageMOFU:
		overall = engagement*0.5 + conversion*0.5
	default:
		overall = engagement*0.3 + conversion*0.7
	}

	return ContentPerformance{
		ContentID:       contentID,
		Title:           title,
		ContentType:     contentType,
		Stage:           stage,
		Metrics:         metrics,
		EngagementScore: engagement,
		ConversionScore: conversion,
		OverallScore:    overall,
		Rating:          scoring.Rating(overall),
		Recommendations: a.contentRecommendations(contentType, stage, metrics, engagement, conversion),
	}
}

// ContentInput is one library entry for AnalyzeLibrary.
type ContentInput struct {
	ID      string
	Title   string
	Type    string
	Stage   string
	Metrics ContentMetrics
}

// AnalyzeLibrary analyzes a whole content library.
func (a *ContentAnalyzer) AnalyzeLibrary(items []ContentInput) ContentLibraryReport {
	performances := make([]ContentPerformance, 0, len(items))
	totalViews := 0
	totalLeads := 0
	totalConversions := 0
	engagementSum := 0.0

	byType := map[string]int{}
	byStage := map[string]int{}

	for _, item := range items {
		perf := a.AnalyzeContent(item.ID, item.Title, item.Type, item.Stage, item.Metrics)
		performances = append(performances, perf)
		totalViews += perf.Metrics.Views
		totalLeads += perf.Metrics.LeadsGenerated
		totalConversions += perf.Metrics.Conversions
		engagementSum += perf.EngagementScore
		byType[perf.ContentType]++
		byStage[perf.Stage]++
	}

	avgEngagement := 0.0
	if len(performances) > 0 {
		avgEngagement = engagementSum / float64(len(performances))
	}

	sorted := append([]ContentPerformance{}, performances...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].OverallScore > sorted[j].OverallScore })

	top := []ContentPerformance{}
	for i := 0; i < len(sorted) && i < 5; i++ {
		if sorted[i].OverallScore >= 70 {
			top = append(top, sorted[i])
		}
	}
	under := []ContentPerformance{}
	for _, p := range sorted {
		if p.OverallScore < 50 {
			under = append(under, p)
		}
	}
	if len(under) > 5 {
		under = under[len(under)-5:]
	}

	return ContentLibraryReport{
		TotalContentPieces: len(performances),
		TotalViews:         totalViews,
		TotalLeads:         totalLeads,
		TotalConversions:   totalConversions,
		AvgEngagementScore: avgEngagement,
		TopPerformers:      top,
		Underperformers:    under,
		ContentByType:      byType,
		ContentByStage:     byStage,
		ContentGaps:        a.contentGaps(byType, byStage),
		Recommendations:    a.libraryRecommendations(performances, totalLeads),
	}
}

func (a *ContentAnalyzer) engagementScore(contentType string, metrics ContentMetrics) float64 {
	benchmarks, ok := contentBenchmarks[contentType]
	if !ok {
		benchmarks = contentBenchmark{timeOnPage: 120, bounceRate: 50, engagementRate: 2}
	}

	total := 0.0
	scored := false

	if benchmarks.timeOnPage > 0 {
		total += minFloat(100, metrics.TimeOnPage/benchmarks.timeOnPage*100) * 0.3
		scored = true
	}
	if benchmarks.bounceRate > 0 {
		bounce := metrics.BounceRate
		if bounce < 1 {
			bounce = 1
		}
		total += minFloat(100, benchmarks.bounceRate/bounce*100) * 0.3
		scored = true
	}
	if metrics.Views > 0 {
		engagementRate := float64(metrics.Shares+metrics.Comments) / float64(metrics.Views) * 100
		total += minFloat(100, engagementRate/benchmarks.engagementRate*100) * 0.4
		scored = true
	}

	if !scored {
		return 50
	}
	return total
}

func (a *ContentAnalyzer) conversionScore(stage string, metrics ContentMetrics) float64 {
	if metrics.UniqueVisitors == 0 {
		return 0
	}
	leadRate := float64(metrics.LeadsGenerated) / float64(metrics.UniqueVisitors) * 100
	convRate := float64(metrics.Conversions) / float64(metrics.UniqueVisitors) * 100

	expLeads, ok := expectedLeadRate[stage]
	if !ok {
		expLeads = 5
	}
	expConv, ok := expectedConvRate[stage]
	if !ok {
		expConv = 2
	}

	leadScore := minFloat(100, leadRate/expLeads*100)
	convScore := minFloat(100, convRate/expConv*100)
	return leadScore*0.4 + convScore*0.6
}

func (a *ContentAnalyzer) contentRecommendations(contentType, stage string, metrics ContentMetrics, engagement, conversion float64) []string {
	recs := []string{}
	benchmarks, ok := contentBenchmarks[contentType]
	if !ok {
		benchmarks = contentBenchmark{timeOnPage: 120, bounceRate: 50, engagementRate: 2}
	}

	if metrics.TimeOnPage < benchmarks.timeOnPage*0.7 {
		recs = append(recs, "Improve content depth and engagement to increase time on page")
	}
	if metrics.BounceRate > benchmarks.bounceRate*1.3 {
		recs = append(recs, "Add internal links and CTAs to reduce bounce rate")
	}
	if engagement < 50 {
		recs = append(recs, "Promote content more actively on social channels")
	}
	if conversion < 40 && stage != StageTOFU {
		recs = append(recs, "Add stronger calls-to-action and lead capture forms")
	}
	if metrics.LeadsGenerated == 0 && metrics.Views > 100 {
		recs = append(recs, "Add lead magnets or gated content upgrades")
	}
	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

func (a *ContentAnalyzer) contentGaps(byType, byStage map[string]int) []string {
	gaps := []string{}

	total := byStage[StageTOFU] + byStage[StageMOFU] + byStage[StageBOFU]
	if total > 0 {
		if float64(byStage[StageMOFU])/float64(total) < 0.2 {
			gaps = append(gaps, "Need more middle-of-funnel content for lead nurturing")
		}
		if float64(byStage[StageBOFU])/float64(total) < 0.1 {
			gaps = append(gaps, "Need more bottom-of-funnel content for conversions")
		}
	}

	for _, ct := range []string{ContentCaseStudy, ContentWhitepaper, ContentWebinar} {
		if byType[ct] == 0 {
			gaps = append(gaps, fmt.Sprintf("No %s content - high-value format for lead generation", ct))
		}
	}

	if len(gaps) > 5 {
		gaps = gaps[:5]
	}
	return gaps
}

func (a *ContentAnalyzer) libraryRecommendations(performances []ContentPerformance, totalLeads int) []string {
	recs := []string{}

	for _, p := range performances {
		if p.OverallScore >= 80 {
			recs = append(recs, fmt.Sprintf("Repurpose top-performing content: %s into other formats", p.Title))
			break
		}
	}

	poor := 0
	for _, p := range performances {
		if p.OverallScore < 40 {
			poor++
		}
	}
	if poor > 0 {
		recs = append(recs, fmt.Sprintf("Update or retire %d underperforming content pieces", poor))
	}

	if totalLeads == 0 {
		recs = append(recs, "Add lead capture mechanisms to existing content")
	}
	if len(performances) < 20 {
		recs = append(recs, "Increase content production frequency")
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
