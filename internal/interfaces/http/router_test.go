package http

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/config"
	"github.com/clauselens/clauselens/internal/domain/rewrite"
	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/prometheus"
	"github.com/clauselens/clauselens/internal/interfaces/http/handlers"
	appErrors "github.com/clauselens/clauselens/pkg/errors"
)

// memRepo is a minimal in-memory analysis.Repository for handler tests.
type memRepo struct {
	saved map[string]*analysis.Analysis
	order []string
}

func newMemRepo() *memRepo {
	return &memRepo{saved: map[string]*analysis.Analysis{}}
}

func (m *memRepo) Save(_ context.Context, a *analysis.Analysis) error {
	m.saved[a.ID.String()] = a
	m.order = append(m.order, a.ID.String())
	return nil
}

func (m *memRepo) FindByID(_ context.Context, id string) (*analysis.Analysis, error) {
	a, ok := m.saved[id]
	if !ok {
		return nil, appErrors.New(appErrors.ErrCodeAnalysisNotFound, "analysis not found: "+id)
	}
	return a, nil
}

func (m *memRepo) List(_ context.Context, offset, limit int) ([]*analysis.Analysis, int64, error) {
	total := int64(len(m.order))
	if offset >= len(m.order) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(m.order) {
		end = len(m.order)
	}
	var out []*analysis.Analysis
	for _, id := range m.order[offset:end] {
		out = append(out, m.saved[id])
	}
	return out, total, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.saved[id]; !ok {
		return appErrors.New(appErrors.ErrCodeAnalysisNotFound, "analysis not found: "+id)
	}
	delete(m.saved, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := analysis.NewService(newMemRepo(), nil,
		rewrite.New(rand.New(rand.NewSource(1))), nil,
		config.AnalysisConfig{MinRenderChars: 30, AssessmentCacheTTL: time.Minute})

	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "clauselens"}, nil)
	require.NoError(t, err)
	metrics := prometheus.NewAppMetrics(collector)

	return NewRouter(RouterConfig{
		AnalysisHandler:  handlers.NewAnalysisHandler(svc, metrics, nil),
		ClauseHandler:    handlers.NewClauseHandler(svc, nil),
		HealthHandler:    handlers.NewHealthHandler("test"),
		MetricsCollector: collector,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Pagination *struct {
		Page     int   `json:"page"`
		PageSize int   `json:"page_size"`
		Total    int64 `json:"total"`
	} `json:"pagination"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

const testContract = "1. The company may terminate this agreement at any time without notice.\n" +
	"2. The employee shall receive a monthly salary of ₹50,000 payable monthly."

func TestAnalyses_CreateGetDelete(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/v1/analyses",
		map[string]string{"text": testContract, "contract_type": "employment agreement"})
	require.Equal(t, http.StatusCreated, rec.Code)

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success)

	var created analysis.Analysis
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 2, created.TotalClauses)
	assert.Equal(t, 1, created.HighRiskClauses)

	rec = doJSON(t, router, "GET", "/api/v1/analyses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "DELETE", "/api/v1/analyses/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/api/v1/analyses/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "ANA_001", env.Error.Code)
}

func TestAnalyses_EmptyTextIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/v1/analyses", map[string]string{"text": "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "CLS_001", env.Error.Code)
}

func TestAnalyses_MalformedBodyIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest("POST", "/api/v1/analyses", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyses_ListPagination(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 3; i++ {
		rec := doJSON(t, router, "POST", "/api/v1/analyses", map[string]string{"text": testContract})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, "GET", "/api/v1/analyses?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(3), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.PageSize)
}

func TestClauses_Assess(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/v1/clauses/assess",
		map[string]string{"clause_text": "The company may terminate at any time without notice."})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"risk_level":"High"`)
}

func TestClauses_Ambiguity(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/v1/clauses/ambiguity",
		map[string]string{"clause_text": "The vendor shall use best efforts to deliver."})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "best efforts")
}

func TestClauses_RewriteValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "POST", "/api/v1/clauses/rewrite",
		map[string]string{"clause_text": "x", "risk_level": "Extreme"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "CLS_003", env.Error.Code)

	rec = doJSON(t, router, "POST", "/api/v1/clauses/rewrite", map[string]string{
		"clause_text": "The company may terminate at any time without notice.",
		"risk_level":  "High",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "minimum written notice")
}

func TestProbesAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, "GET", "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Exercise an API call, then confirm it shows up in the scrape.
	doJSON(t, router, "POST", "/api/v1/analyses", map[string]string{"text": testContract})
	rec = doJSON(t, router, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "clauselens_analyses_total")
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, "GET", "/api/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
