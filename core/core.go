// Package core has core logic for evaluating, describing and gating marketing metrics.
package core

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/mktcalc/core/catalog"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/internal/inputs"
	"github.com/huangsam/mktcalc/internal/outwriter"
	"github.com/huangsam/mktcalc/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteList prints the metric catalog for the configured group.
func ExecuteList(_ context.Context, cfg *contract.Config) error {
	summaries, err := ListMetrics(cfg.Group)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteMetricList(summaries, cfg)
}

// ExecuteDescribe prints the full definition of the configured metric.
func ExecuteDescribe(_ context.Context, cfg *contract.Config) error {
	desc, err := Describe(cfg.MetricID)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteDescription(desc, cfg)
}

// ExecuteEvaluate evaluates the configured metric against the configured values.
func ExecuteEvaluate(_ context.Context, cfg *contract.Config) error {
	m, ok := catalog.FindByID(cfg.MetricID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrMetricNotFound, cfg.MetricID)
	}
	if missing := MissingFields(m, cfg.Values); len(missing) > 0 {
		contract.LogWarn("Incomplete values", fmt.Errorf("missing %s, result is NaN", strings.Join(missing, ", ")))
	}
	return outwriter.NewOutWriter().WriteResult(EvaluateMetric(m, cfg.Values), cfg)
}

// ExecuteBatch evaluates every row of the input file and prints the results.
func ExecuteBatch(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	results, err := runBatch(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteBatch(results, cfg, time.Since(start))
}

// ExecuteCheck evaluates the input file and fails when any row is below
// the minimum level. It serves as the entry point for CI gates.
func ExecuteCheck(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	results, err := runBatch(withSuppressHeader(ctx), cfg)
	if err != nil {
		return err
	}

	result := Check(results, cfg.MinLevel)
	printCheckResult(os.Stdout, result, time.Since(start))
	if !result.Passed {
		return fmt.Errorf("%d row(s) below %s", len(result.Failures), result.MinLevel)
	}
	return nil
}

// runBatch reads the batch input and evaluates it on the worker pool.
func runBatch(ctx context.Context, cfg *contract.Config) ([]schema.BatchResult, error) {
	if cfg.InputFile == "" {
		return nil, fmt.Errorf("--input is required")
	}
	reqs, err := inputs.ReadBatch(cfg.InputFile)
	if err != nil {
		return nil, err
	}
	if !shouldSuppressHeader(ctx) && cfg.Output == schema.TextOut {
		_, _ = fmt.Fprintf(os.Stderr, "Evaluating %d rows from %s with %d workers\n", len(reqs), cfg.InputFile, cfg.Workers)
	}
	return EvaluateBatch(ctx, reqs, cfg.Workers), nil
}
