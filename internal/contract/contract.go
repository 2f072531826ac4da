// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/mktcalc/schema"
)

// Evaluator defines the metric operations exposed to the outer surfaces.
// This allows the HTTP and MCP layers to be tested without the real catalog.
type Evaluator interface {
	// ListMetrics returns the summary cards of a catalog group.
	ListMetrics(group schema.Group) ([]schema.Summary, error)

	// Describe returns the full printable definition of a metric.
	Describe(id string) (schema.MetricDescription, error)

	// Evaluate computes, formats, classifies and analyzes a metric.
	Evaluate(id string, values schema.Values) (schema.Result, error)

	// EvaluateBatch evaluates many requests, keeping their order.
	EvaluateBatch(ctx context.Context, reqs []schema.BatchRequest, workers int) []schema.BatchResult
}
