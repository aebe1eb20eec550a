package app

import (
	"context"
	"sync"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/models"
	"gobayes/ports"

	"golang.org/x/sync/semaphore"
)

// AnalysisService orchestrates prior resolution, the Bayes factor engine,
// and result persistence.
type AnalysisService struct {
	repo ports.ResultRepository // nil disables persistence
	sem  *semaphore.Weighted
}

// BatchItem is the outcome of one scenario within a batch. Exactly one of
// Analysis and Err is set.
type BatchItem struct {
	Label    string           `json:"label,omitempty"`
	Analysis *models.Analysis `json:"analysis,omitempty"`
	Err      error            `json:"-"`
}

// NewAnalysisService creates an analysis service. batchConcurrency bounds
// how many computations a batch runs at once.
func NewAnalysisService(repo ports.ResultRepository, batchConcurrency int64) *AnalysisService {
	if batchConcurrency < 1 {
		batchConcurrency = 1
	}
	return &AnalysisService{
		repo: repo,
		sem:  semaphore.NewWeighted(batchConcurrency),
	}
}

// Compute runs one Bayes factor computation and persists the result when
// a repository is configured.
func (s *AnalysisService) Compute(ctx context.Context, label string, req bayes.Request) (*models.Analysis, error) {
	res, err := bayes.Compute(req)
	if err != nil {
		return nil, err
	}

	analysis := models.NewAnalysis(label, req, res)
	if s.repo != nil {
		if err := s.repo.SaveAnalysis(ctx, analysis); err != nil {
			return nil, err
		}
	}
	return analysis, nil
}

// ComputeBatch runs independent computations with bounded concurrency.
// Results are returned in input order; a failing scenario records its
// error without affecting siblings.
func (s *AnalysisService) ComputeBatch(ctx context.Context, scenarios []models.Scenario) []BatchItem {
	items := make([]BatchItem, len(scenarios))

	var wg sync.WaitGroup
	for i, scenario := range scenarios {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			items[i] = BatchItem{Label: scenario.Label, Err: err}
			continue
		}
		wg.Add(1)
		go func(i int, scenario models.Scenario) {
			defer wg.Done()
			defer s.sem.Release(1)
			analysis, err := s.Compute(ctx, scenario.Label, scenario.Request)
			items[i] = BatchItem{Label: scenario.Label, Analysis: analysis, Err: err}
		}(i, scenario)
	}
	wg.Wait()

	return items
}

// ComputeFromDataset reads scenarios from a dataset source and batch
// computes them.
func (s *AnalysisService) ComputeFromDataset(ctx context.Context, reader ports.DatasetReader) ([]BatchItem, error) {
	scenarios, err := reader.ReadScenarios(ctx)
	if err != nil {
		return nil, err
	}
	return s.ComputeBatch(ctx, scenarios), nil
}

// Get returns a stored analysis by ID
func (s *AnalysisService) Get(ctx context.Context, id core.AnalysisID) (*models.Analysis, error) {
	if s.repo == nil {
		return nil, core.ErrAnalysisNotFound
	}
	return s.repo.GetAnalysis(ctx, id)
}

// List returns the most recent stored analyses
func (s *AnalysisService) List(ctx context.Context, limit int) ([]*models.Analysis, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.ListAnalyses(ctx, limit)
}
