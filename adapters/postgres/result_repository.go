package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"gobayes/domain/bayes"
	"gobayes/domain/core"
	"gobayes/models"
	"gobayes/ports"

	"github.com/jmoiron/sqlx"
)

// ResultRepositoryImpl implements ResultRepository for PostgreSQL
type ResultRepositoryImpl struct {
	db *sqlx.DB
}

// NewResultRepository creates a new PostgreSQL result repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &ResultRepositoryImpl{db: db}
}

// SaveAnalysis persists an analysis, upserting on ID
func (r *ResultRepositoryImpl) SaveAnalysis(ctx context.Context, analysis *models.Analysis) error {
	priorJSON, err := json.Marshal(analysis.Prior)
	if err != nil {
		return fmt.Errorf("failed to encode prior: %w", err)
	}
	likelihoodCurveJSON, _ := json.Marshal(analysis.LikelihoodCurve)
	priorCurveJSON, _ := json.Marshal(analysis.PriorCurve)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO bayes_analyses (
			id, label, data_mean, data_se, h0_value, prior,
			bf, likelihood_h0, marginal_h1, strength, supported,
			likelihood_curve, prior_curve, fingerprint, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			label = EXCLUDED.label,
			data_mean = EXCLUDED.data_mean,
			data_se = EXCLUDED.data_se,
			h0_value = EXCLUDED.h0_value,
			prior = EXCLUDED.prior,
			bf = EXCLUDED.bf,
			likelihood_h0 = EXCLUDED.likelihood_h0,
			marginal_h1 = EXCLUDED.marginal_h1,
			strength = EXCLUDED.strength,
			supported = EXCLUDED.supported,
			likelihood_curve = EXCLUDED.likelihood_curve,
			prior_curve = EXCLUDED.prior_curve,
			fingerprint = EXCLUDED.fingerprint`,
		analysis.ID.String(), analysis.Label, analysis.DataMean, analysis.DataSE,
		analysis.H0Value, priorJSON, analysis.BF, analysis.LikelihoodH0,
		analysis.MarginalH1, string(analysis.Strength), string(analysis.Supported),
		likelihoodCurveJSON, priorCurveJSON, analysis.Fingerprint.String(),
		analysis.CreatedAt.Time())

	return err
}

// GetAnalysis retrieves an analysis by ID
func (r *ResultRepositoryImpl) GetAnalysis(ctx context.Context, id core.AnalysisID) (*models.Analysis, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, label, data_mean, data_se, h0_value, prior,
			   bf, likelihood_h0, marginal_h1, strength, supported,
			   likelihood_curve, prior_curve, fingerprint, created_at
		FROM bayes_analyses
		WHERE id = $1`, id.String())

	analysis, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, core.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return analysis, nil
}

// ListAnalyses retrieves the most recent analyses, newest first
func (r *ResultRepositoryImpl) ListAnalyses(ctx context.Context, limit int) ([]*models.Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, label, data_mean, data_se, h0_value, prior,
			   bf, likelihood_h0, marginal_h1, strength, supported,
			   likelihood_curve, prior_curve, fingerprint, created_at
		FROM bayes_analyses
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*models.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}
	return analyses, rows.Err()
}

// rowScanner abstracts sql.Row and sql.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(row rowScanner) (*models.Analysis, error) {
	var analysis models.Analysis
	var id, strength, supported, fingerprint string
	var priorJSON, likelihoodCurveJSON, priorCurveJSON []byte
	var createdAt sql.NullTime

	err := row.Scan(&id, &analysis.Label, &analysis.DataMean, &analysis.DataSE,
		&analysis.H0Value, &priorJSON, &analysis.BF, &analysis.LikelihoodH0,
		&analysis.MarginalH1, &strength, &supported,
		&likelihoodCurveJSON, &priorCurveJSON, &fingerprint, &createdAt)
	if err != nil {
		return nil, err
	}

	analysis.ID = core.AnalysisID(id)
	analysis.Strength = bayes.EvidenceStrength(strength)
	analysis.Supported = bayes.SupportedHypothesis(supported)
	analysis.Fingerprint = core.Hash(fingerprint)
	if createdAt.Valid {
		analysis.CreatedAt = core.NewTimestamp(createdAt.Time)
	}

	if err := json.Unmarshal(priorJSON, &analysis.Prior); err != nil {
		return nil, fmt.Errorf("failed to decode prior: %w", err)
	}
	if len(likelihoodCurveJSON) > 0 {
		if err := json.Unmarshal(likelihoodCurveJSON, &analysis.LikelihoodCurve); err != nil {
			return nil, fmt.Errorf("failed to decode likelihood curve: %w", err)
		}
	}
	if len(priorCurveJSON) > 0 {
		if err := json.Unmarshal(priorCurveJSON, &analysis.PriorCurve); err != nil {
			return nil, fmt.Errorf("failed to decode prior curve: %w", err)
		}
	}
	return &analysis, nil
}
