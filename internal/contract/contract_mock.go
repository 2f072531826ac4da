package contract

import (
	"context"

	"github.com/huangsam/mktcalc/schema"
	"github.com/stretchr/testify/mock"
)

// MockEvaluator is a mock implementation of Evaluator for testing.
type MockEvaluator struct {
	mock.Mock
}

var _ Evaluator = &MockEvaluator{} // Compile-time check

// ListMetrics implements the Evaluator interface.
func (m *MockEvaluator) ListMetrics(group schema.Group) ([]schema.Summary, error) {
	args := m.Called(group)
	summaries, _ := args.Get(0).([]schema.Summary)
	return summaries, args.Error(1)
}

// Describe implements the Evaluator interface.
func (m *MockEvaluator) Describe(id string) (schema.MetricDescription, error) {
	args := m.Called(id)
	desc, _ := args.Get(0).(schema.MetricDescription)
	return desc, args.Error(1)
}

// Evaluate implements the Evaluator interface.
func (m *MockEvaluator) Evaluate(id string, values schema.Values) (schema.Result, error) {
	args := m.Called(id, values)
	result, _ := args.Get(0).(schema.Result)
	return result, args.Error(1)
}

// EvaluateBatch implements the Evaluator interface.
func (m *MockEvaluator) EvaluateBatch(ctx context.Context, reqs []schema.BatchRequest, workers int) []schema.BatchResult {
	args := m.Called(ctx, reqs, workers)
	results, _ := args.Get(0).([]schema.BatchResult)
	return results
}
