package core

import (
	"context"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"
)

// Service exposes the catalog operations through contract.Evaluator.
type Service struct{}

var _ contract.Evaluator = Service{} // Compile-time check

// NewService returns the evaluator backed by the built-in catalog.
func NewService() Service {
	return Service{}
}

// ListMetrics implements contract.Evaluator.
func (Service) ListMetrics(group schema.Group) ([]schema.Summary, error) {
	return ListMetrics(group)
}

// Describe implements contract.Evaluator.
func (Service) Describe(id string) (schema.MetricDescription, error) {
	return Describe(id)
}

// Evaluate implements contract.Evaluator.
func (Service) Evaluate(id string, values schema.Values) (schema.Result, error) {
	return Evaluate(id, values)
}

// EvaluateBatch implements contract.Evaluator.
func (Service) EvaluateBatch(ctx context.Context, reqs []schema.BatchRequest, workers int) []schema.BatchResult {
	return EvaluateBatch(ctx, reqs, workers)
}
