// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteMetricList prints the metric catalog using the configured output format.
func (ow *OutWriter) WriteMetricList(summaries []schema.Summary, cfg *contract.Config) error {
	return PrintMetricList(summaries, cfg)
}

// WriteDescription prints a metric definition using the configured output format.
func (ow *OutWriter) WriteDescription(desc schema.MetricDescription, cfg *contract.Config) error {
	return PrintDescription(desc, cfg)
}

// WriteResult prints a single evaluation using the configured output format.
func (ow *OutWriter) WriteResult(result schema.Result, cfg *contract.Config) error {
	return PrintResult(result, cfg)
}

// WriteBatch prints batch evaluation results using the configured output format.
func (ow *OutWriter) WriteBatch(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return PrintBatchResults(results, cfg, duration)
}
