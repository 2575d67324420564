package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/patriotech/marketing-intel/internal/idgen"
	"github.com/patriotech/marketing-intel/internal/model"
)

type BenchmarkRepositoryInterface interface {
	Create(b *model.BenchmarkResult) error
	GetLatest(orgID, benchmarkType string) (*model.BenchmarkResult, error)
	ListByOrganization(orgID string, limit int) ([]model.BenchmarkResult, error)
}

type BenchmarkRepository struct {
	DB *sql.DB
}

func (r *BenchmarkRepository) Create(b *model.BenchmarkResult) error {
	if b.ID == "" {
		id, err := idgen.New(idgen.PrefixBenchmark)
		if err != nil {
			return err
		}
		b.ID = id
	}
	b.CreatedAt = time.Now()

	categories, err := json.Marshal(orEmptyMap(b.CategoryScores))
	if err != nil {
		return fmt.Errorf("marshal category_scores: %w", err)
	}
	strengths, err := json.Marshal(orEmptySlice(b.Strengths))
	if err != nil {
		return fmt.Errorf("marshal strengths: %w", err)
	}
	improvements, err := json.Marshal(orEmptySlice(b.Improvements))
	if err != nil {
		return fmt.Errorf("marshal improvements: %w", err)
	}
	recommendations, err := json.Marshal(orEmptySlice(b.Recommendations))
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	query := `
        INSERT INTO benchmark_results (id, organization_id, benchmark_type, overall_score,
            overall_rating, grade, category_scores, strengths, improvements, recommendations, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err = r.DB.Exec(query,
		b.ID, b.OrganizationID, b.BenchmarkType, b.OverallScore,
		b.OverallRating, b.Grade, categories, strengths, improvements, recommendations, b.CreatedAt,
	)
	return err
}

const benchmarkColumns = `id, organization_id, benchmark_type, overall_score, overall_rating, grade,
        category_scores, strengths, improvements, recommendations, created_at`

func scanBenchmark(row interface{ Scan(...any) error }) (*model.BenchmarkResult, error) {
	var b model.BenchmarkResult
	var categories, strengths, improvements, recommendations []byte
	err := row.Scan(
		&b.ID, &b.OrganizationID, &b.BenchmarkType, &b.OverallScore, &b.OverallRating, &b.Grade,
		&categories, &strengths, &improvements, &recommendations, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(categories, &b.CategoryScores); err != nil {
		return nil, fmt.Errorf("unmarshal category_scores: %w", err)
	}
	if err := json.Unmarshal(strengths, &b.Strengths); err != nil {
		return nil, fmt.Errorf("unmarshal strengths: %w", err)
	}
	if err := json.Unmarshal(improvements, &b.Improvements); err != nil {
		return nil, fmt.Errorf("unmarshal improvements: %w", err)
	}
	if err := json.Unmarshal(recommendations, &b.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	return &b, nil
}

// GetLatest returns the most recent result, optionally filtered by type.
// Returns nil when the org has no benchmark runs yet.
func (r *BenchmarkRepository) GetLatest(orgID, benchmarkType string) (*model.BenchmarkResult, error) {
	query := `SELECT ` + benchmarkColumns + ` FROM benchmark_results WHERE organization_id=$1`
	args := []any{orgID}
	if benchmarkType != "" {
		query += ` AND benchmark_type=$2`
		args = append(args, benchmarkType)
	}
	query += ` ORDER BY created_at DESC LIMIT 1`

	b, err := scanBenchmark(r.DB.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BenchmarkRepository) ListByOrganization(orgID string, limit int) ([]model.BenchmarkResult, error) {
	if limit < 1 {
		limit = 20
	}
	query := `SELECT ` + benchmarkColumns + ` FROM benchmark_results WHERE organization_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.DB.Query(query, orgID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []model.BenchmarkResult{}
	for rows.Next() {
		b, err := scanBenchmark(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *b)
	}
	return results, rows.Err()
}

func orEmptyMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var _ BenchmarkRepositoryInterface = (*BenchmarkRepository)(nil)
