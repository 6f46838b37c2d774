package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/prometheus"
)

// AnalysisHandler serves the document analysis endpoints.
type AnalysisHandler struct {
	service analysis.Service
	metrics *prometheus.AppMetrics
	logger  logging.Logger
}

// NewAnalysisHandler creates an AnalysisHandler. metrics may be nil.
func NewAnalysisHandler(service analysis.Service, metrics *prometheus.AppMetrics, logger logging.Logger) *AnalysisHandler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &AnalysisHandler{
		service: service,
		metrics: metrics,
		logger:  logger.Named("analysis_handler"),
	}
}

type analyzeRequest struct {
	Text         string `json:"text"`
	ContractType string `json:"contract_type"`
}

// Create handles POST /api/v1/analyses: runs the full pipeline on the
// submitted document and returns the analysis.
func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	result, err := h.service.Analyze(r.Context(), &analysis.AnalyzeInput{
		Text:         req.Text,
		ContractType: req.ContractType,
	})
	if err != nil {
		prometheus.RecordAnalysis(h.metrics, req.ContractType, false, 0, 0, 0, 0, 0)
		h.logger.Warn("analysis failed", logging.Err(err))
		writeError(w, err)
		return
	}

	prometheus.RecordAnalysis(h.metrics, req.ContractType, true,
		result.TotalClauses, result.HighRiskClauses, result.MediumRiskClauses, result.LowRiskClauses,
		time.Since(start))
	writeData(w, http.StatusCreated, result)
}

// Get handles GET /api/v1/analyses/{analysisID}.
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), chi.URLParam(r, "analysisID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, result)
}

// List handles GET /api/v1/analyses with page/page_size query parameters.
func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	result, err := h.service.List(r.Context(), &analysis.ListInput{Page: page, PageSize: pageSize})
	if err != nil {
		writeError(w, err)
		return
	}
	writePage(w, result.Analyses, result.Page, result.PageSize, result.Total)
}

// Delete handles DELETE /api/v1/analyses/{analysisID}.
func (h *AnalysisHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "analysisID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
