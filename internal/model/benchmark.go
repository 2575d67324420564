// internal/model/benchmark.go
package model

import "time"

// BenchmarkResult is a persisted benchmark engine run.
// The JSON columns are stored as JSONB and (un)marshalled in the repository.
type BenchmarkResult struct {
	ID             string             `db:"id" json:"id"`
	OrganizationID string             `db:"organization_id" json:"organization_id"`
	BenchmarkType  string             `db:"benchmark_type" json:"benchmark_type"` // marketing, digital
	OverallScore   float64            `db:"overall_score" json:"overall_score"`
	OverallRating  string             `db:"overall_rating" json:"overall_rating"`
	Grade          string             `db:"grade" json:"grade"`
	CategoryScores map[string]float64 `db:"category_scores" json:"category_scores"`
	Strengths      []string           `db:"strengths" json:"strengths"`
	Improvements   []string           `db:"improvements" json:"improvements"`
	Recommendations []string          `db:"recommendations" json:"recommendations"`
	CreatedAt      time.Time          `db:"created_at" json:"created_at"`
}
