package handlers

import (
	"net/http"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
)

// ClauseHandler serves the single-clause endpoints: risk assessment,
// ambiguity analysis, and rewriting.
type ClauseHandler struct {
	service analysis.Service
	logger  logging.Logger
}

// NewClauseHandler creates a ClauseHandler.
func NewClauseHandler(service analysis.Service, logger logging.Logger) *ClauseHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &ClauseHandler{service: service, logger: logger.Named("clause_handler")}
}

type clauseRequest struct {
	ClauseText string `json:"clause_text"`
}

type rewriteRequest struct {
	ClauseText string `json:"clause_text"`
	RiskLevel  string `json:"risk_level"`
	ClauseType string `json:"clause_type"`
}

// Assess handles POST /api/v1/clauses/assess.
func (h *ClauseHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req clauseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	assessment, err := h.service.AssessClause(r.Context(), req.ClauseText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, assessment)
}

// Ambiguity handles POST /api/v1/clauses/ambiguity.
func (h *ClauseHandler) Ambiguity(w http.ResponseWriter, r *http.Request) {
	var req clauseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, h.service.AnalyzeAmbiguity(req.ClauseText))
}

// Rewrite handles POST /api/v1/clauses/rewrite.
func (h *ClauseHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.RewriteClause(&analysis.RewriteInput{
		Text:      req.ClauseText,
		RiskLevel: req.RiskLevel,
		Type:      req.ClauseType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, result)
}
