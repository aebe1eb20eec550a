package ports

import (
	"context"

	"gobayes/models"
)

// DatasetReader supplies labeled computation requests from an external
// source, one scenario per row.
type DatasetReader interface {
	ReadScenarios(ctx context.Context) ([]models.Scenario, error)
}
