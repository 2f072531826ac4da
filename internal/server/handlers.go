package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/inputs"
	"github.com/huangsam/mktcalc/schema"
	"go.uber.org/zap"
)

type evaluateRequest struct {
	Values schema.Values `json:"values"`
}

type batchRequest struct {
	Requests []schema.BatchRequest `json:"requests"`
	Workers  int                   `json:"workers,omitempty"`
}

func (s *Server) listMetrics(w http.ResponseWriter, r *http.Request) {
	group := schema.Group(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("group"))))
	summaries, err := s.evaluator.ListMetrics(group)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_GROUP", err.Error())
		return
	}
	writeSuccess(w, http.StatusOK, summaries)
}

func (s *Server) describeMetric(w http.ResponseWriter, r *http.Request) {
	desc, err := s.evaluator.Describe(chi.URLParam(r, "id"))
	if err != nil {
		s.writeEvaluatorError(w, r, err)
		return
	}
	writeSuccess(w, http.StatusOK, desc)
}

func (s *Server) evaluateMetric(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	result, err := s.evaluator.Evaluate(chi.URLParam(r, "id"), req.Values)
	if err != nil {
		s.writeEvaluatorError(w, r, err)
		return
	}
	s.metrics.Evaluations.WithLabelValues(result.MetricID, string(result.Level)).Inc()
	writeSuccess(w, http.StatusOK, result)
}

func (s *Server) evaluateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	if err := inputs.Validate(req.Requests); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}

	workers := s.workers
	if req.Workers > 0 && req.Workers < workers {
		workers = req.Workers
	}
	results := s.evaluator.EvaluateBatch(r.Context(), req.Requests, workers)
	for _, row := range results {
		if row.OK() {
			s.metrics.Evaluations.WithLabelValues(row.Result.MetricID, string(row.Result.Level)).Inc()
		}
	}
	writeSuccess(w, http.StatusOK, results)
}

func (s *Server) writeEvaluatorError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, core.ErrMetricNotFound) {
		writeError(w, http.StatusNotFound, "METRIC_NOT_FOUND", err.Error())
		return
	}
	s.log.Error("evaluator failed",
		zap.String("request_id", requestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// decodeBody reads a single JSON document. Out-of-range numbers fail to decode,
// so values are always finite.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("invalid json body: %w", err)
	}
	return nil
}
