package testkit

import (
	"context"
	"sort"
	"sync"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/models"
)

// MemoryRepository is an in-memory ResultRepository used by tests and as
// the fallback store when no database is configured.
type MemoryRepository struct {
	mu       sync.RWMutex
	analyses map[core.AnalysisID]*models.Analysis
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{analyses: make(map[core.AnalysisID]*models.Analysis)}
}

// SaveAnalysis stores an analysis, replacing any record with the same ID
func (r *MemoryRepository) SaveAnalysis(ctx context.Context, analysis *models.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *analysis
	r.analyses[analysis.ID] = &copied
	return nil
}

// GetAnalysis returns a stored analysis or core.ErrAnalysisNotFound
func (r *MemoryRepository) GetAnalysis(ctx context.Context, id core.AnalysisID) (*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.analyses[id]
	if !ok {
		return nil, core.ErrAnalysisNotFound
	}
	copied := *analysis
	return &copied, nil
}

// ListAnalyses returns stored analyses, newest first
func (r *MemoryRepository) ListAnalyses(ctx context.Context, limit int) ([]*models.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	analyses := make([]*models.Analysis, 0, len(r.analyses))
	for _, analysis := range r.analyses {
		copied := *analysis
		analyses = append(analyses, &copied)
	}
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[j].CreatedAt.Before(analyses[i].CreatedAt)
	})
	if limit > 0 && len(analyses) > limit {
		analyses = analyses[:limit]
	}
	return analyses, nil
}

// Len returns the number of stored analyses
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.analyses)
}

// DemoScenarios returns a small set of scenarios exercising every prior
// family, usable as batch input in tests and demos.
func DemoScenarios() []models.Scenario {
	h1 := 2.0
	return []models.Scenario{
		{
			Label: "uniform-prior",
			Request: bayes.Request{
				DataMean: 0.5, DataSE: 0.2,
				Distribution: bayes.PriorUniform, H1Value: &h1,
			},
		},
		{
			Label: "normal-prior",
			Request: bayes.Request{
				DataMean: 0.5, DataSE: 0.2,
				Distribution: bayes.PriorNormal, H1Value: &h1,
			},
		},
		{
			Label: "half-normal-prior",
			Request: bayes.Request{
				DataMean: 0.5, DataSE: 0.2,
				Distribution: bayes.PriorHalfNormal, H1Value: &h1,
			},
		},
	}
}
