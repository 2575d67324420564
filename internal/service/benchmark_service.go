package service

import (
	"fmt"
	"log"

	"github.com/patriotech/marketing-intel/internal/model"
	"github.com/patriotech/marketing-intel/internal/queue"
	"github.com/patriotech/marketing-intel/internal/repository"
	"github.com/patriotech/marketing-intel/internal/scoring"
)

// Benchmark set names.
const (
	BenchmarkMarketing = "marketing"
	BenchmarkDigital   = "digital"
)

type BenchmarkService struct {
	BenchmarkRepo repository.BenchmarkRepositoryInterface
	MetricsRepo   repository.MetricsRepositoryInterface
	Queue         queue.Queue
}

func NewBenchmarkService(benchmarks repository.BenchmarkRepositoryInterface, metrics repository.MetricsRepositoryInterface, q queue.Queue) *BenchmarkService {
	return &BenchmarkService{
		BenchmarkRepo: benchmarks,
		MetricsRepo:   metrics,
		Queue:         q,
	}
}

func engineFor(benchmarkType string) (*scoring.BenchmarkEngine, error) {
	switch benchmarkType {
	case BenchmarkMarketing, "":
		return scoring.NewMarketingBenchmarks(), nil
	case BenchmarkDigital:
		return scoring.NewDigitalBenchmarks(), nil
	default:
		return nil, fmt.Errorf("unknown benchmark type %q", benchmarkType)
	}
}

// Run executes a benchmark synchronously against the supplied metrics
// and persists the result. When metrics is empty the organization's
// latest stored snapshot is used.
func (s *BenchmarkService) Run(orgID, benchmarkType string, metrics map[string]float64) (*model.BenchmarkResult, error) {
	engine, err := engineFor(benchmarkType)
	if err != nil {
		return nil, err
	}
	if benchmarkType == "" {
		benchmarkType = BenchmarkMarketing
	}

	if len(metrics) == 0 {
		snapshot, err := s.MetricsRepo.GetLatest(orgID)
		if err != nil {
			return nil, fmt.Errorf("load metrics for benchmark: %w", err)
		}
		if snapshot == nil {
			return nil, fmt.Errorf("organization %s has no metrics to benchmark", orgID)
		}
		metrics = snapshot.BenchmarkValues()
	}

	report := engine.Analyze(metrics, orgID)

	result := &model.BenchmarkResult{
		OrganizationID:  orgID,
		BenchmarkType:   benchmarkType,
		OverallScore:    report.OverallScore,
		OverallRating:   report.OverallRating,
		Grade:           report.Grade,
		CategoryScores:  report.CategoryScores,
		Strengths:       report.Strengths,
		Improvements:    report.Improvements,
		Recommendations: report.Recommendations,
	}
	if err := s.BenchmarkRepo.Create(result); err != nil {
		return nil, fmt.Errorf("persist benchmark result: %w", err)
	}

	log.Printf("✅ Benchmark (%s) for org %s: %.1f grade %s\n", benchmarkType, orgID, result.OverallScore, result.Grade)
	return result, nil
}

// Enqueue publishes a benchmark run for the worker to pick up.
func (s *BenchmarkService) Enqueue(orgID, benchmarkType string, metrics map[string]float64) error {
	if s.Queue == nil {
		return fmt.Errorf("no queue configured for async benchmarks")
	}
	if _, err := engineFor(benchmarkType); err != nil {
		return err
	}
	if benchmarkType == "" {
		benchmarkType = BenchmarkMarketing
	}

	job := queue.BenchmarkJob{
		OrganizationID: orgID,
		BenchmarkType:  benchmarkType,
		Metrics:        metrics,
	}
	if err := s.Queue.Publish(queue.BenchmarkQueueName, job); err != nil {
		return fmt.Errorf("enqueue benchmark run: %w", err)
	}

	log.Printf("📩 Queued %s benchmark for org %s\n", benchmarkType, orgID)
	return nil
}

// Latest returns the most recent stored result of the given type.
func (s *BenchmarkService) Latest(orgID, benchmarkType string) (*model.BenchmarkResult, error) {
	if benchmarkType == "" {
		benchmarkType = BenchmarkMarketing
	}
	return s.BenchmarkRepo.GetLatest(orgID, benchmarkType)
}
