package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/sentinel/internal/core"
	"github.com/agenthands/sentinel/internal/core/model"
	"github.com/agenthands/sentinel/internal/dataset"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := core.NewEngine()
	s := NewServerWith(engine, dataset.Synthetic())
	return s.SetupRouter()
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "operational", body["status"])
}

func TestStats(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/stats")

	require.Equal(t, http.StatusOK, w.Code)
	var stats model.DashboardStats
	decode(t, w, &stats)

	assert.Equal(t, 20, stats.TotalTenders)
	assert.Equal(t, 1, stats.HighRiskCount)
	assert.Equal(t, 20, stats.HighRiskCount+stats.MediumRiskCount+stats.LowRiskCount)
	// 5 open + 3 in evaluation
	assert.Equal(t, 8, stats.PendingReview)
	assert.Greater(t, stats.TotalValue, 0.0)
}

func TestListTenders_SortedByRisk(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders")

	require.Equal(t, http.StatusOK, w.Code)
	var results []model.TenderWithRisk
	decode(t, w, &results)

	require.Len(t, results, 20)
	assert.Equal(t, "tender-002", results[0].Tender.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Risk.Overall, results[i].Risk.Overall)
	}
}

func TestListTenders_RiskFilter(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders?risk_level=HIGH")

	require.Equal(t, http.StatusOK, w.Code)
	var results []model.TenderWithRisk
	decode(t, w, &results)

	require.Len(t, results, 1)
	assert.Equal(t, "tender-002", results[0].Tender.ID)
	assert.Equal(t, model.RiskHigh, results[0].Risk.Category)
}

func TestListTenders_StatusFilterAndLimit(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders?status=OPEN&limit=3")

	require.Equal(t, http.StatusOK, w.Code)
	var results []model.TenderWithRisk
	decode(t, w, &results)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, model.StatusOpen, r.Tender.Status)
	}
}

func TestListTenders_SortByValue(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders?sort_by=value")

	require.Equal(t, http.StatusOK, w.Code)
	var results []model.TenderWithRisk
	decode(t, w, &results)

	require.NotEmpty(t, results)
	// tender-001 carries the largest estimate.
	assert.Equal(t, "tender-001", results[0].Tender.ID)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Tender.EstimatedValue, results[i].Tender.EstimatedValue)
	}
}

func TestListTenders_InvalidLimit(t *testing.T) {
	router := newTestRouter(t)

	for _, q := range []string{"limit=0", "limit=101", "limit=abc"} {
		w := doRequest(t, router, "GET", "/api/tenders?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestTenderDetail(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders/tender-002")

	require.Equal(t, http.StatusOK, w.Code)
	var detail model.TenderDetail
	decode(t, w, &detail)

	assert.Equal(t, "tender-002", detail.Tender.ID)
	assert.Equal(t, model.RiskHigh, detail.Risk.Category)
	assert.Len(t, detail.Bids, 2)
	require.NotNil(t, detail.WinningCompany)
	assert.Equal(t, "comp-005", detail.WinningCompany.ID)
}

func TestTenderDetail_NotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenderGraph(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/tenders/tender-001/graph?depth=1")

	require.Equal(t, http.StatusOK, w.Code)
	var data model.GraphData
	decode(t, w, &data)

	// tender-001 plus its five bidders and the procurement officer.
	assert.Len(t, data.Nodes, 7)
	ids := make(map[string]bool)
	for _, n := range data.Nodes {
		ids[n.ID] = true
	}
	assert.True(t, ids["tender-001"])
	assert.True(t, ids["comp-001"])
	assert.True(t, ids["off-002"])
}

func TestTenderGraph_Validation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, "GET", "/api/tenders/nope/graph")
	assert.Equal(t, http.StatusNotFound, w.Code)

	for _, q := range []string{"depth=0", "depth=4", "depth=x"} {
		w := doRequest(t, router, "GET", "/api/tenders/tender-001/graph?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestExploreGraph(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/graph/explore")

	require.Equal(t, http.StatusOK, w.Code)
	var data model.GraphData
	decode(t, w, &data)

	assert.Len(t, data.Nodes, 52)
	assert.NotEmpty(t, data.Edges)

	var suspicious int
	for _, e := range data.Edges {
		if e.Suspicious {
			suspicious++
		}
	}
	assert.Greater(t, suspicious, 0)
}

func TestCartels(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/graph/cartels")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Cartels []struct {
			CompanyIDs   []string `json:"company_ids"`
			CompanyNames []string `json:"company_names"`
			Size         int      `json:"size"`
		} `json:"cartels"`
		Total int `json:"total"`
	}
	decode(t, w, &body)

	require.Equal(t, 1, body.Total)
	cluster := body.Cartels[0]
	assert.Equal(t, 4, cluster.Size)
	assert.Equal(t, []string{"comp-001", "comp-002", "comp-003", "comp-004"}, cluster.CompanyIDs)
	assert.Contains(t, cluster.CompanyNames, "Wanjiku Construction Ltd")
}

func TestCompany(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/companies/comp-001")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Company   model.Company    `json:"company"`
		Directors []model.Director `json:"directors"`
	}
	decode(t, w, &body)

	assert.Equal(t, "Wanjiku Construction Ltd", body.Company.Name)
	require.Len(t, body.Directors, 2)
	assert.Equal(t, "Peter Wanjiku Kamau", body.Directors[0].Name)
}

func TestCompany_NotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doRequest(t, router, "GET", "/api/companies/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRefresh_SwapsSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ids := []string{"snap-1", "snap-2"}
	engine := core.NewEngine()
	engine.UUIDGenerator = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}
	s := NewServerWith(engine, dataset.Synthetic())
	router := s.SetupRouter()

	assert.Equal(t, "snap-1", s.Snapshot().ID)

	w := doRequest(t, router, "POST", "/api/refresh")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SnapshotID string `json:"snapshot_id"`
		Tenders    int    `json:"tenders"`
	}
	decode(t, w, &body)
	assert.Equal(t, "snap-2", body.SnapshotID)
	assert.Equal(t, 20, body.Tenders)
	assert.Equal(t, "snap-2", s.Snapshot().ID)

	// Scores are equivalent after a rebuild of the same dataset.
	w = doRequest(t, router, "GET", "/api/tenders/tender-002")
	require.Equal(t, http.StatusOK, w.Code)
	var detail model.TenderDetail
	decode(t, w, &detail)
	assert.Equal(t, 50, detail.Risk.Overall)
}
