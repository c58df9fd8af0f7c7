package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/handler"
	mw "github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/api/middleware"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/cache"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/catalog"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/metrics"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/internal/store/storetest"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─── test fixtures ───────────────────────────────────────────────────────────

var testOrgID = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")

func minimalJob(title string) map[string]any {
	return map[string]any{"title": title, "organizationId": testOrgID.String()}
}

// ─── mock cache ──────────────────────────────────────────────────────────────

type mockCache struct {
	mu       sync.Mutex
	values   map[string][]byte
	counters map[string]int64
	pingErr  error
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string][]byte), counters: make(map[string]int64)}
}

func (c *mockCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *mockCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	return v, ok, nil
}

func (c *mockCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *mockCache) Ping(_ context.Context) error { return c.pingErr }

func (c *mockCache) IncrWithExpiry(_ context.Context, key string, _ time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[key]++
	return c.counters[key], nil
}

func (c *mockCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

var _ cache.Cache = (*mockCache)(nil)

// ─── test harness ────────────────────────────────────────────────────────────

type testServer struct {
	router  http.Handler
	server  *httptest.Server
	store   *storetest.Memory
	cache   *mockCache
	metrics *metrics.Collectors
}

func newTestServer(t *testing.T, rateLimit int) *testServer {
	t.Helper()

	ms := storetest.NewMemory()
	mc := newMockCache()
	m := metrics.New()
	svc := catalog.New(ms, mc, catalog.WithMetrics(m))

	jobs := api.NewResourceHandlers[models.Job](svc.Jobs(), handler.PresentJob)
	jobs = api.WithSlugLookup[models.Job](jobs, svc.Jobs(), handler.PresentJob)

	router := api.NewRouter(api.Dependencies{
		RateLimit:     mw.NewRateLimit(mc, rateLimit),
		Metrics:       m,
		HealthHandler: handler.NewHealthHandler(ms, mc),
		Jobs:          jobs,
		AdmitCards:    api.NewResourceHandlers[models.AdmitCard](svc.AdmitCards(), handler.PresentAdmitCard),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{router: router, server: srv, store: ms, cache: mc, metrics: m}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req, err := http.NewRequest(method, ts.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func parseBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return parseBody(t, resp)["error"].(map[string]any)["code"].(string)
}

func (ts *testServer) createJob(t *testing.T, title string) map[string]any {
	t.Helper()
	resp := ts.do(t, "POST", "/api/v1/jobs", minimalJob(title))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return parseBody(t, resp)["data"].(map[string]any)
}

// ─── health ──────────────────────────────────────────────────────────────────

func TestContract_Health(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", parseBody(t, resp)["data"].(map[string]any)["status"])
}

func TestContract_Health_Degraded(t *testing.T) {
	ts := newTestServer(t, 100)
	ts.cache.pingErr = fmt.Errorf("redis down")

	resp := ts.do(t, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	errObj := parseBody(t, resp)["error"].(map[string]any)
	assert.Equal(t, "DEGRADED", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Equal(t, "ok", details["database"])
	assert.Equal(t, "degraded", details["cache"])
}

// ─── validate ────────────────────────────────────────────────────────────────

func TestContract_ValidateJob_Success(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "POST", "/api/v1/jobs/validate", minimalJob("SSC CGL 2024"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := parseBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "SSC CGL 2024", data["title"])
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, float64(0), data["totalVacancies"])
	assert.Equal(t, false, data["isFeatured"])
	assert.NotContains(t, data, "createdAt")
	assert.Equal(t, 0, ts.store.CallCount("CreateJob"))
}

func TestContract_ValidateJob_ReportsEveryIssue(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "POST", "/api/v1/jobs/validate", map[string]any{
		"status":     "archived",
		"bogusField": true,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	errObj := parseBody(t, resp)["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])

	var got []string
	for _, d := range errObj["details"].([]any) {
		issue := d.(map[string]any)
		got = append(got, issue["path"].(string)+"="+issue["code"].(string))
	}
	assert.Equal(t, []string{
		"title=MISSING_REQUIRED_FIELD",
		"status=INVALID_ENUM_VALUE",
		"organizationId=MISSING_REQUIRED_FIELD",
		"bogusField=UNKNOWN_FIELD",
	}, got)
}

func TestContract_ValidateJob_UpdateMode(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "POST", "/api/v1/jobs/validate?mode=update", minimalJob("No ID"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = ts.do(t, "POST", "/api/v1/jobs/validate?mode=upsert", minimalJob("No ID"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestContract_ValidateAdmitCard_DynamicFields(t *testing.T) {
	ts := newTestServer(t, 100)

	body := `{
		"title": "Admit Card",
		"organizationId": "` + testOrgID.String() + `",
		"dynamicFields": [
			{"label": "Centres", "type": "table", "columns": ["City", "Code"], "rows": [["Delhi", "DL01"], ["Pune"]]}
		]
	}`
	resp := ts.do(t, "POST", "/api/v1/admit-cards/validate", body)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	details := parseBody(t, resp)["error"].(map[string]any)["details"].([]any)
	require.Len(t, details, 1)
	issue := details[0].(map[string]any)
	assert.Equal(t, "dynamicFields[0].rows[1]", issue["path"])
	assert.Equal(t, "INVALID_DYNAMIC_FIELD_SHAPE", issue["code"])
}

func TestContract_OpaquePayloadKeepsKeyOrder(t *testing.T) {
	ts := newTestServer(t, 100)

	body := `{"title": "Ordered", "organizationId": "` + testOrgID.String() + `",
		"applicationFee": {"general": 100, "obc": 100, "sc": 0, "female": 0}}`
	resp := ts.do(t, "POST", "/api/v1/jobs/validate", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw bytes.Buffer
	_, err := raw.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), `"applicationFee":{"general":100,"obc":100,"sc":0,"female":0}`)
}

// ─── create / read / update / delete ─────────────────────────────────────────

func TestContract_CreateJob(t *testing.T) {
	ts := newTestServer(t, 100)

	data := ts.createJob(t, "RRB NTPC 2024")
	assert.Equal(t, "rrb-ntpc-2024", data["slug"])
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["createdAt"])
	assert.NotEmpty(t, data["updatedAt"])
}

func TestContract_CreateJob_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "POST", "/api/v1/jobs", `{"title": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, resp))
}

func TestContract_CreateJob_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t, 100)

	big := `{"title": "` + strings.Repeat("x", handler.MaxBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/api/v1/jobs", strings.NewReader(big))
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, ts.store.CallCount("CreateJob"))
}

func TestContract_CreateJob_NonObjectBody(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "POST", "/api/v1/jobs", `[1, 2]`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestContract_CreateJob_DuplicateSlug(t *testing.T) {
	ts := newTestServer(t, 100)
	ts.createJob(t, "Duplicate Me")

	resp := ts.do(t, "POST", "/api/v1/jobs", minimalJob("Duplicate Me"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorCode(t, resp))
}

func TestContract_GetJob(t *testing.T) {
	ts := newTestServer(t, 100)
	created := ts.createJob(t, "Get Me")
	id := created["id"].(string)

	resp := ts.do(t, "GET", "/api/v1/jobs/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := parseBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Get Me", data["title"])
	assert.Equal(t, created["createdAt"], data["createdAt"])
	assert.True(t, ts.cache.has(cache.JobKey(uuid.MustParse(id))))
}

func TestContract_GetJob_Errors(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "GET", "/api/v1/jobs/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", errorCode(t, resp))

	resp = ts.do(t, "GET", "/api/v1/jobs/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestContract_GetJobBySlug(t *testing.T) {
	ts := newTestServer(t, 100)
	created := ts.createJob(t, "SSC CHSL 2025")

	resp := ts.do(t, "GET", "/api/v1/jobs/by-slug/ssc-chsl-2025", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := parseBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, created["id"], data["id"])
	assert.Equal(t, created["createdAt"], data["createdAt"])
	assert.Equal(t, 1, ts.store.CallCount("GetJobBySlug"))

	resp = ts.do(t, "GET", "/api/v1/jobs/by-slug/missing-job", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))

	resp = ts.do(t, "GET", "/api/v1/jobs/by-slug/Not_A_Slug", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SLUG", errorCode(t, resp))

	// admit cards have no slug lookup mounted.
	resp = ts.do(t, "GET", "/api/v1/admit-cards/by-slug/anything", nil)
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)
}

func TestContract_UpdateJob(t *testing.T) {
	ts := newTestServer(t, 100)
	created := ts.createJob(t, "Update Me")
	id := created["id"].(string)

	// Prime the cache.
	ts.do(t, "GET", "/api/v1/jobs/"+id, nil)

	body := minimalJob("Update Me Again")
	body["id"] = id
	body["minAge"] = 18
	body["maxAge"] = 27
	resp := ts.do(t, "PUT", "/api/v1/jobs/"+id, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := parseBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "update-me", data["slug"])
	assert.Equal(t, float64(27), data["maxAge"])
	assert.False(t, ts.cache.has(cache.JobKey(uuid.MustParse(id))))

	resp = ts.do(t, "GET", "/api/v1/jobs/"+id, nil)
	assert.Equal(t, "Update Me Again", parseBody(t, resp)["data"].(map[string]any)["title"])
}

func TestContract_UpdateJob_Errors(t *testing.T) {
	ts := newTestServer(t, 100)
	created := ts.createJob(t, "Guarded")
	id := created["id"].(string)

	body := minimalJob("Guarded")
	body["id"] = uuid.NewString()
	resp := ts.do(t, "PUT", "/api/v1/jobs/"+id, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, resp))

	body["id"] = id
	body["minAge"] = 30
	body["maxAge"] = 21
	resp = ts.do(t, "PUT", "/api/v1/jobs/"+id, body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	missing := uuid.NewString()
	body = minimalJob("Missing")
	body["id"] = missing
	body["slug"] = "missing"
	resp = ts.do(t, "PUT", "/api/v1/jobs/"+missing, body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContract_DeleteJob(t *testing.T) {
	ts := newTestServer(t, 100)
	id := ts.createJob(t, "Delete Me")["id"].(string)

	resp := ts.do(t, "DELETE", "/api/v1/jobs/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(t, "DELETE", "/api/v1/jobs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestContract_ListJobs(t *testing.T) {
	ts := newTestServer(t, 100)
	for i := 0; i < 5; i++ {
		ts.createJob(t, fmt.Sprintf("Listed %d", i))
	}

	resp := ts.do(t, "GET", "/api/v1/jobs?page=2&limit=2&status=active", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)

	assert.Len(t, body["data"].([]any), 2)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(2), meta["limit"])
	assert.Equal(t, float64(5), meta["total"])
	assert.Equal(t, true, meta["hasNext"])
}

func TestContract_ListJobs_LeadingZerosAreDecimal(t *testing.T) {
	ts := newTestServer(t, 100)
	for i := 0; i < 3; i++ {
		ts.createJob(t, fmt.Sprintf("Padded %d", i))
	}

	resp := ts.do(t, "GET", "/api/v1/jobs?page=010&limit=08", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	meta := parseBody(t, resp)["meta"].(map[string]any)
	assert.Equal(t, float64(10), meta["page"])
	assert.Equal(t, float64(8), meta["limit"])

	resp = ts.do(t, "GET", "/api/v1/jobs?page=00&limit=02", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := parseBody(t, resp)
	assert.Len(t, body["data"].([]any), 2)
	assert.Equal(t, float64(1), body["meta"].(map[string]any)["page"])
}

func TestContract_ListJobs_BadQuery(t *testing.T) {
	ts := newTestServer(t, 100)

	for _, q := range []string{"page=abc", "limit=-1", "page=0x10", "page=+1", "organizationId=nope"} {
		resp := ts.do(t, "GET", "/api/v1/jobs?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestContract_AdmitCardLifecycle(t *testing.T) {
	ts := newTestServer(t, 100)
	job := ts.createJob(t, "Parent")

	body := map[string]any{
		"title":          "Parent Admit Card",
		"organizationId": testOrgID.String(),
		"jobId":          job["id"],
		"examDate":       "2025-02-10",
		"importantLinks": []any{
			map[string]any{"label": "Download", "url": "https://example.gov.in/admit"},
		},
	}
	resp := ts.do(t, "POST", "/api/v1/admit-cards", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	card := parseBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "draft", card["reviewStatus"])
	assert.Equal(t, "2025-02-10T00:00:00Z", card["examDate"])
	id := card["id"].(string)

	resp = ts.do(t, "GET", "/api/v1/admit-cards?jobId="+job["id"].(string), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, parseBody(t, resp)["data"].([]any), 1)

	body["id"] = id
	body["reviewStatus"] = "published"
	resp = ts.do(t, "PUT", "/api/v1/admit-cards/"+id, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "published", parseBody(t, resp)["data"].(map[string]any)["reviewStatus"])

	resp = ts.do(t, "DELETE", "/api/v1/admit-cards/"+id, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ─── cross-cutting ───────────────────────────────────────────────────────────

func TestContract_RateLimited(t *testing.T) {
	ts := newTestServer(t, 2)

	for i := 0; i < 2; i++ {
		resp := ts.do(t, "GET", "/api/v1/jobs", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := ts.do(t, "GET", "/api/v1/jobs", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// Health is outside the limited group.
	resp = ts.do(t, "GET", "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestContract_MetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, 100)
	ts.do(t, "POST", "/api/v1/jobs/validate", map[string]any{})

	resp := ts.do(t, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw bytes.Buffer
	_, err := raw.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), `admin_validations_total{entity="job",result="invalid"} 1`)
	assert.Contains(t, raw.String(), `admin_validation_issues_total{code="MISSING_REQUIRED_FIELD",entity="job"} 2`)
}

func TestContract_RequestIDEchoed(t *testing.T) {
	ts := newTestServer(t, 100)

	resp := ts.do(t, "GET", "/api/v1/health", nil)
	assert.NotEmpty(t, resp.Header.Get(mw.RequestIDHeader))
}
