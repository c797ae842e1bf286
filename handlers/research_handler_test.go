package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"legalresearch-backend/corpus"
	"legalresearch-backend/models"
	"legalresearch-backend/observability"
	"legalresearch-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, store *corpus.Store) *gin.Engine {
	t.Helper()

	reg := prometheus.NewRegistry()
	metrics := observability.NewResearchMetrics(reg)
	opts := []service.ResearchServiceOption{service.WithMetrics(metrics)}
	if store != nil {
		opts = append(opts, service.WithCorpus(store))
	}
	svc := service.NewResearchService(opts...)

	router := gin.New()
	SetupRoutes(router, NewResearchHandler(svc, zaptest.NewLogger(t)), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return router
}

func defaultStore() *corpus.Store {
	return corpus.NewStore(
		[]models.StatuteRecord{
			{DocID: "S-1", Title: models.String("Cal. Code Civ. Proc. § 337"), Citation: models.String("CCP 337"), Jurisdiction: models.String("California"), CaseType: models.String("contract dispute"), URL: models.String("https://law.example/s1")},
			{DocID: "S-2", Title: models.String("Tex. Civ. Prac. & Rem. Code § 16.004"), Jurisdiction: models.String("Texas"), CaseType: models.String("contract dispute")},
			{DocID: "S-3", Title: models.String("Cal. Civ. Code § 3300"), Citation: models.String("Civ. 3300"), Jurisdiction: models.String("California"), CaseType: models.String("contract dispute")},
		},
		[]models.CaseRecord{
			{DocID: "C-1", Title: models.String("Foley v. Interactive Data"), Jurisdiction: models.String("California"), CaseType: models.String("contract dispute")},
			{DocID: "C-2", Title: models.String("Hadley v. Baxendale"), Jurisdiction: models.String("Federal"), CaseType: models.String("sales contracts"), URL: models.String("https://cases.example/c2")},
		},
	)
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestResearch_ResponseShape(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/api/research?jurisdiction=CALIFORNIA")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, map[string]any{"jurisdiction": "CALIFORNIA", "case_type": nil}, body["query_used"])

	statutes := body["statutes"].([]any)
	require.Len(t, statutes, 2)
	assert.Equal(t, "S-1", statutes[0].(map[string]any)["doc_id"])
	assert.Equal(t, "S-3", statutes[1].(map[string]any)["doc_id"])
	assert.NotContains(t, statutes[0], "case_type")

	// one California case only, so cases fall back to corpus order
	cases := body["similar_cases"].([]any)
	require.Len(t, cases, 2)
	assert.Equal(t, "C-1", cases[0].(map[string]any)["doc_id"])
	assert.Equal(t, "sales contracts", cases[1].(map[string]any)["case_type"])

	arguments := body["arguments"].([]any)
	require.Len(t, arguments, 2)
	first := arguments[0].(map[string]any)
	assert.Contains(t, first["point"], "Cal. Code Civ. Proc. § 337")
	support := first["support"].([]any)
	require.Len(t, support, 2)
	assert.Equal(t, map[string]any{"type": "statute", "ref": "S-1", "citation": "CCP 337", "url": "https://law.example/s1"}, support[0])
	assert.Equal(t, map[string]any{"type": "case", "ref": "C-1", "title": "Foley v. Interactive Data", "url": nil}, support[1])

	assert.Len(t, body["next_steps"], 4)
}

func TestResearch_EmptyParamsAreAbsent(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/api/research?jurisdiction=&case_type=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"query_used":{"jurisdiction":null,"case_type":null}`)
}

func TestResearch_IdenticalQueriesAreByteIdentical(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	first := doGet(router, "/api/research?case_type=maritime").Body.String()
	second := doGet(router, "/api/research?case_type=maritime").Body.String()
	assert.Equal(t, first, second)
}

func TestResearch_ParamTooLong(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/api/research?jurisdiction="+strings.Repeat("x", 300))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "INVALID_REQUEST", body["error"].(map[string]any)["code"])
}

func TestResearch_WithoutCorpus(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doGet(router, "/api/research")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "CORPUS_UNAVAILABLE")
}

func TestRoot_SanityMessage(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, RootMessage, w.Body.String())
}

func TestHealth_ReturnsOK(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response["status"])
}

func TestMetrics_CountsQueries(t *testing.T) {
	router := newTestRouter(t, defaultStore())
	doGet(router, "/api/research?case_type=maritime")

	w := doGet(router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `legalresearch_research_queries_total{status="success"} 1`)
	assert.Contains(t, w.Body.String(), `legalresearch_research_selection_fallbacks_total{collection="cases"} 1`)
}

func TestRequestID(t *testing.T) {
	router := newTestRouter(t, defaultStore())

	w := doGet(router, "/health")
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}
