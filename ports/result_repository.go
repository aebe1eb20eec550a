package ports

import (
	"context"

	"gobayes/domain/core"
	"gobayes/models"
)

// ResultRepository stores completed analyses
type ResultRepository interface {
	// SaveAnalysis persists an analysis, replacing any existing record
	// with the same ID.
	SaveAnalysis(ctx context.Context, analysis *models.Analysis) error

	// GetAnalysis returns the analysis with the given ID, or
	// core.ErrAnalysisNotFound.
	GetAnalysis(ctx context.Context, id core.AnalysisID) (*models.Analysis, error)

	// ListAnalyses returns the most recent analyses, newest first.
	ListAnalyses(ctx context.Context, limit int) ([]*models.Analysis, error)
}
