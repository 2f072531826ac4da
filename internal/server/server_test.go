package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestServer(evaluator contract.Evaluator) *Server {
	return New(evaluator, nil, prometheus.NewRegistry(), 2)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer(core.NewService()).Handler(), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"status":"success","data":{"status":"ok"}}`, rec.Body.String())
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestServer(core.NewService()).Handler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestListMetrics(t *testing.T) {
	h := newTestServer(core.NewService()).Handler()

	tests := []struct {
		query  string
		status int
		count  int
	}{
		{"", http.StatusOK, 13},
		{"?group=common", http.StatusOK, 10},
		{"?group=ADVANCED", http.StatusOK, 3},
		{"?group=weird", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/v1/metrics"+tt.query, "")
			assert.Equal(t, tt.status, rec.Code)
			env := decode(t, rec)
			if tt.status != http.StatusOK {
				assert.Equal(t, "INVALID_GROUP", env.Code)
				return
			}
			var summaries []schema.Summary
			require.NoError(t, json.Unmarshal(env.Data, &summaries))
			assert.Len(t, summaries, tt.count)
		})
	}
}

func TestDescribeMetric(t *testing.T) {
	h := newTestServer(core.NewService()).Handler()

	rec := do(t, h, http.MethodGet, "/v1/metrics/netPromoterScore", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var desc schema.MetricDescription
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &desc))
	assert.Equal(t, "netPromoterScore", desc.ID)
	assert.NotEmpty(t, desc.Tiers)

	rec = do(t, h, http.MethodGet, "/v1/metrics/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "METRIC_NOT_FOUND", decode(t, rec).Code)
}

func TestEvaluateMetric(t *testing.T) {
	s := newTestServer(core.NewService())
	h := s.Handler()

	tests := []struct {
		name   string
		target string
		body   string
		status int
		code   string
	}{
		{"ok", "/v1/metrics/ctr/evaluate", `{"values":{"clicks":20,"impressions":1000}}`, http.StatusOK, ""},
		{"unknown metric", "/v1/metrics/nope/evaluate", `{"values":{}}`, http.StatusNotFound, "METRIC_NOT_FOUND"},
		{"malformed body", "/v1/metrics/ctr/evaluate", `{"values":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"non-numeric value", "/v1/metrics/ctr/evaluate", `{"values":{"clicks":"20"}}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"out of range value", "/v1/metrics/ctr/evaluate", `{"values":{"clicks":1e400}}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", "/v1/metrics/ctr/evaluate", `{"vals":{}}`, http.StatusBadRequest, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			env := decode(t, rec)
			if tt.code != "" {
				assert.Equal(t, "error", env.Status)
				assert.Equal(t, tt.code, env.Code)
				return
			}
			var result map[string]any
			require.NoError(t, json.Unmarshal(env.Data, &result))
			assert.Equal(t, "2.00%", result["formatted"])
			assert.Equal(t, "excellent", result["level"])
		})
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Evaluations.WithLabelValues("ctr", "excellent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Requests.WithLabelValues("/v1/metrics/{id}/evaluate", http.MethodPost, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Requests.WithLabelValues("/v1/metrics/{id}/evaluate", http.MethodPost, "404")))
}

func TestEvaluateMetricMissingValuesYieldsNaN(t *testing.T) {
	rec := do(t, newTestServer(core.NewService()).Handler(), http.MethodPost, "/v1/metrics/cpc/evaluate", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"NaN"`)
	assert.Contains(t, rec.Body.String(), `"formatted":"R$ NaN"`)
}

func TestEvaluateBatch(t *testing.T) {
	s := newTestServer(core.NewService())
	h := s.Handler()

	body := `{"requests":[
		{"metric":"roi","values":{"revenue":15000,"cost":5000}},
		{"metric":"nope","values":{}}
	]}`
	rec := do(t, h, http.MethodPost, "/v1/batch", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []schema.BatchResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "200.00%", rows[0].Result.Formatted)
	assert.Contains(t, rows[1].Error, "metric not found")
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Evaluations.WithLabelValues("roi", "excellent")))

	rec = do(t, h, http.MethodPost, "/v1/batch", `{"requests":[{"values":{}}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEvaluatorFailureIsInternalError(t *testing.T) {
	m := &contract.MockEvaluator{}
	m.On("Describe", "ctr").Return(schema.MetricDescription{}, fmt.Errorf("boom")).Once()

	rec := do(t, newTestServer(m).Handler(), http.MethodGet, "/v1/metrics/ctr", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Code)
	m.AssertExpectations(t)
}

func TestBatchWorkersAreCapped(t *testing.T) {
	m := &contract.MockEvaluator{}
	m.On("EvaluateBatch", mock.Anything, mock.Anything, 2).Return([]schema.BatchResult{}).Once()

	rec := do(t, newTestServer(m).Handler(), http.MethodPost, "/v1/batch", `{"requests":[],"workers":64}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	m.AssertExpectations(t)
}

func TestRecoverMiddleware(t *testing.T) {
	m := &contract.MockEvaluator{}
	m.On("ListMetrics", mock.Anything).Run(func(mock.Arguments) { panic("kaboom") })

	s := newTestServer(m)
	rec := do(t, s.Handler(), http.MethodGet, "/v1/metrics", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Requests.WithLabelValues("/v1/metrics", http.MethodGet, "500")))
	assert.Equal(t, 1, testutil.CollectAndCount(s.metrics.Duration))
}

func TestPrometheusEndpoint(t *testing.T) {
	h := newTestServer(core.NewService()).Handler()
	_ = do(t, h, http.MethodGet, "/healthz", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mktcalc_http_requests_total")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- newTestServer(core.NewService()).Run(ctx, "127.0.0.1:0")
	}()
	cancel()
	assert.NoError(t, <-done)
}
