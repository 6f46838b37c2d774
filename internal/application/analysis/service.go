// Package analysis provides the application-level service orchestrating the
// full document analysis pipeline: clause extraction, per-clause risk
// scoring, plain-English explanation, jurisdiction checks, and rewriting.
// This package sits between the HTTP/CLI handlers and the domain packages.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"

	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/domain/ambiguity"
	"github.com/clauselens/clauselens/internal/domain/clause"
	"github.com/clauselens/clauselens/internal/domain/explain"
	"github.com/clauselens/clauselens/internal/domain/lawcheck"
	"github.com/clauselens/clauselens/internal/domain/rewrite"
	"github.com/clauselens/clauselens/internal/domain/risk"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	"github.com/clauselens/clauselens/pkg/errors"
	"github.com/clauselens/clauselens/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregate types
// ─────────────────────────────────────────────────────────────────────────────

// ClauseAnalysis pairs one extracted clause with its enrichment.  Clauses
// shorter than the configured render threshold are extracted and counted but
// carry no enrichment (all pointers nil).
type ClauseAnalysis struct {
	Clause      clause.Clause        `json:"clause"`
	Risk        *risk.Assessment     `json:"risk,omitempty"`
	Explanation *explain.Explanation `json:"explanation,omitempty"`
	LawIssues   []string             `json:"law_issues,omitempty"`
	Rewrite     *rewrite.Result      `json:"rewrite,omitempty"`
}

// Analysis is the aggregate result of one document analysis run.
type Analysis struct {
	ID                common.ID        `json:"id"`
	ContractType      string           `json:"contract_type,omitempty"`
	CreatedAt         common.Timestamp `json:"created_at"`
	TotalClauses      int              `json:"total_clauses"`
	HighRiskClauses   int              `json:"high_risk_clauses"`
	MediumRiskClauses int              `json:"medium_risk_clauses"`
	LowRiskClauses    int              `json:"low_risk_clauses"`
	Entities          Entities         `json:"entities"`
	Clauses           []ClauseAnalysis `json:"clauses"`
}

// AnalyzeInput is the request for a full document analysis.
type AnalyzeInput struct {
	Text         string
	ContractType string
}

// RewriteInput is the request for a standalone clause rewrite.
type RewriteInput struct {
	Text      string
	RiskLevel string
	Type      string
}

// ListInput contains pagination parameters for listing stored analyses.
type ListInput struct {
	Page     int
	PageSize int
}

// ListResult is a page of stored analyses.
type ListResult struct {
	Analyses   []*Analysis `json:"analyses"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Collaborator seams
// ─────────────────────────────────────────────────────────────────────────────

// Repository persists analysis runs.  Implemented by the postgres adapter;
// nil when persistence is disabled.
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	FindByID(ctx context.Context, id string) (*Analysis, error)
	List(ctx context.Context, offset, limit int) ([]*Analysis, int64, error)
	Delete(ctx context.Context, id string) error
}

// Cache is the read-through cache seam used for clause risk assessments.
// Implemented by the redis adapter; nil when caching is disabled.
type Cache interface {
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration,
		loader func(ctx context.Context) (interface{}, error)) error
}

// ─────────────────────────────────────────────────────────────────────────────
// Service
// ─────────────────────────────────────────────────────────────────────────────

// Service defines the analysis application operations exposed to the
// interface layers.
type Service interface {
	Analyze(ctx context.Context, input *AnalyzeInput) (*Analysis, error)
	Get(ctx context.Context, id string) (*Analysis, error)
	List(ctx context.Context, input *ListInput) (*ListResult, error)
	Delete(ctx context.Context, id string) error

	AssessClause(ctx context.Context, clauseText string) (*risk.Assessment, error)
	AnalyzeAmbiguity(clauseText string) ambiguity.Analysis
	RewriteClause(input *RewriteInput) (*rewrite.Result, error)
}

type serviceImpl struct {
	repo     Repository
	cache    Cache
	rewriter *rewrite.Rewriter
	logger   logging.Logger
	cfg      config.AnalysisConfig
}

// NewService creates the analysis service.  repo and cache may be nil, in
// which case analyses are not persisted and assessments are recomputed per
// request.
func NewService(repo Repository, cache Cache, rewriter *rewrite.Rewriter, logger logging.Logger, cfg config.AnalysisConfig) Service {
	if rewriter == nil {
		rewriter = rewrite.New(nil)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{
		repo:     repo,
		cache:    cache,
		rewriter: rewriter,
		logger:   logger.Named("analysis"),
		cfg:      cfg,
	}
}

func (s *serviceImpl) Analyze(ctx context.Context, input *AnalyzeInput) (*Analysis, error) {
	if input == nil || clause.Normalize(input.Text) == "" {
		return nil, errors.New(errors.ErrCodeEmptyDocument, "document text must not be empty")
	}

	clauses := clause.ExtractClauses(input.Text)
	if len(clauses) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDocument, "no clauses detected in document")
	}

	result := &Analysis{
		ID:           common.GenerateID("ana"),
		ContractType: input.ContractType,
		CreatedAt:    common.Now(),
		TotalClauses: len(clauses),
		Entities:     ExtractEntities(input.Text),
		Clauses:      make([]ClauseAnalysis, 0, len(clauses)),
	}

	for _, c := range clauses {
		ca := ClauseAnalysis{Clause: c}

		if utf8.RuneCountInString(c.Text) >= s.cfg.MinRenderChars {
			assessment := risk.Assess(c.Text)
			explanation := explain.Explain(c.Text, string(c.TypeHint), assessment.RiskLevel)
			ca.Risk = &assessment
			ca.Explanation = &explanation
			ca.LawIssues = lawcheck.CheckIndia(c.Text, input.ContractType)

			switch assessment.RiskLevel {
			case "High":
				result.HighRiskClauses++
			case "Medium":
				result.MediumRiskClauses++
			default:
				result.LowRiskClauses++
			}

			if assessment.RiskLevel == "Medium" || assessment.RiskLevel == "High" {
				rw := s.rewriter.Rewrite(assessment.RiskLevel, assessment.Type,
					ambiguity.Detect(c.Text), ca.LawIssues)
				ca.Rewrite = &rw
			}
		}

		result.Clauses = append(result.Clauses, ca)
	}

	s.logger.Info("document analyzed",
		logging.String("analysis_id", result.ID.String()),
		logging.Int("clauses", result.TotalClauses),
		logging.Int("high_risk", result.HighRiskClauses),
	)

	if s.repo != nil {
		if err := s.repo.Save(ctx, result); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeAnalysisPersist, "failed to persist analysis")
		}
	}

	return result, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (*Analysis, error) {
	if s.repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "analysis persistence is not configured")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *serviceImpl) List(ctx context.Context, input *ListInput) (*ListResult, error) {
	if s.repo == nil {
		return nil, errors.New(errors.ErrCodeServiceUnavailable, "analysis persistence is not configured")
	}

	page, pageSize := 1, 20
	if input != nil {
		if input.Page > 0 {
			page = input.Page
		}
		if input.PageSize > 0 {
			pageSize = input.PageSize
		}
		if pageSize > 100 {
			pageSize = 100
		}
	}

	analyses, total, err := s.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ListResult{
		Analyses:   analyses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return errors.New(errors.ErrCodeServiceUnavailable, "analysis persistence is not configured")
	}
	return s.repo.Delete(ctx, id)
}

// AssessClause scores a single clause, serving from the assessment cache
// when one is configured.  Cache keys are derived from the clause text hash
// so identical clauses across documents share an entry.
func (s *serviceImpl) AssessClause(ctx context.Context, clauseText string) (*risk.Assessment, error) {
	if clauseText == "" {
		return nil, errors.InvalidParam("clause text must not be empty")
	}

	if s.cache == nil {
		a := risk.Assess(clauseText)
		return &a, nil
	}

	var cached risk.Assessment
	err := s.cache.GetOrSet(ctx, assessmentKey(clauseText), &cached, s.cfg.AssessmentCacheTTL,
		func(context.Context) (interface{}, error) {
			a := risk.Assess(clauseText)
			return &a, nil
		})
	if err != nil {
		// Cache trouble must not take the endpoint down; fall back to a
		// direct computation.
		s.logger.Warn("assessment cache unavailable", logging.Err(err))
		a := risk.Assess(clauseText)
		return &a, nil
	}
	return &cached, nil
}

func (s *serviceImpl) AnalyzeAmbiguity(clauseText string) ambiguity.Analysis {
	return ambiguity.Analyze(clauseText)
}

// RewriteClause produces replacement wording for a clause.  The clause type
// defaults to the risk-time classification of the text when not supplied.
func (s *serviceImpl) RewriteClause(input *RewriteInput) (*rewrite.Result, error) {
	if input == nil || input.Text == "" {
		return nil, errors.InvalidParam("clause text must not be empty")
	}

	switch input.RiskLevel {
	case "Low", "Medium", "High":
	default:
		return nil, errors.New(errors.ErrCodeUnknownRiskLevel, "risk_level must be Low, Medium, or High")
	}

	clauseType := risk.Type(input.Type)
	if clauseType == "" {
		clauseType = risk.Classify(input.Text)
	}

	res := s.rewriter.Rewrite(input.RiskLevel, clauseType,
		ambiguity.Detect(input.Text),
		lawcheck.CheckIndia(input.Text, ""))
	return &res, nil
}

func assessmentKey(clauseText string) string {
	sum := sha256.Sum256([]byte(clauseText))
	return "assessment:" + hex.EncodeToString(sum[:])
}
