// Package repositories contains the pgx-backed implementations of the
// application-layer repository interfaces.
package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	appErrors "github.com/clauselens/clauselens/pkg/errors"
	"github.com/clauselens/clauselens/pkg/types/common"
)

type analysisRepo struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewAnalysisRepository creates the PostgreSQL-backed analysis repository.
// Clause details and the entity summary are stored as JSONB; the risk
// counters are plain columns so listings never deserialize clause payloads.
func NewAnalysisRepository(pool *pgxpool.Pool, logger logging.Logger) analysis.Repository {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &analysisRepo{pool: pool, logger: logger.Named("analysis_repo")}
}

func (r *analysisRepo) Save(ctx context.Context, a *analysis.Analysis) error {
	entities, err := json.Marshal(a.Entities)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeSerialization, "failed to serialize entity summary")
	}
	clauses, err := json.Marshal(a.Clauses)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeSerialization, "failed to serialize clauses")
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO analyses (
			id, contract_type, created_at,
			total_clauses, high_risk_clauses, medium_risk_clauses, low_risk_clauses,
			entities, clauses
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID.String(), a.ContractType, a.CreatedAt.Time(),
		a.TotalClauses, a.HighRiskClauses, a.MediumRiskClauses, a.LowRiskClauses,
		entities, clauses,
	)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to insert analysis")
	}

	r.logger.Debug("analysis saved", logging.String("id", a.ID.String()))
	return nil
}

func (r *analysisRepo) FindByID(ctx context.Context, id string) (*analysis.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, contract_type, created_at,
		       total_clauses, high_risk_clauses, medium_risk_clauses, low_risk_clauses,
		       entities, clauses
		FROM analyses
		WHERE id = $1`, id)

	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, appErrors.New(appErrors.ErrCodeAnalysisNotFound, "analysis not found: "+id)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to query analysis")
	}
	return a, nil
}

func (r *analysisRepo) List(ctx context.Context, offset, limit int) ([]*analysis.Analysis, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&total); err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to count analyses")
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, contract_type, created_at,
		       total_clauses, high_risk_clauses, medium_risk_clauses, low_risk_clauses,
		       entities, clauses
		FROM analyses
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to list analyses")
	}
	defer rows.Close()

	var analyses []*analysis.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, 0, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to scan analysis row")
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to iterate analyses")
	}
	return analyses, total, nil
}

func (r *analysisRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrCodeDatabaseError, "failed to delete analysis")
	}
	if tag.RowsAffected() == 0 {
		return appErrors.New(appErrors.ErrCodeAnalysisNotFound, "analysis not found: "+id)
	}
	return nil
}

// scanAnalysis reads one analyses row. Works for both QueryRow and Query
// results via the pgx.Row interface.
func scanAnalysis(row pgx.Row) (*analysis.Analysis, error) {
	var (
		a         analysis.Analysis
		id        string
		createdAt time.Time
		entities  []byte
		clauses   []byte
	)
	if err := row.Scan(&id, &a.ContractType, &createdAt,
		&a.TotalClauses, &a.HighRiskClauses, &a.MediumRiskClauses, &a.LowRiskClauses,
		&entities, &clauses); err != nil {
		return nil, err
	}

	a.ID = common.ID(id)
	a.CreatedAt = common.Timestamp(createdAt)
	if err := json.Unmarshal(entities, &a.Entities); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(clauses, &a.Clauses); err != nil {
		return nil, err
	}
	return &a, nil
}
