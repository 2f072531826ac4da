package core

import (
	"context"
	"sync"

	"github.com/huangsam/mktcalc/schema"
)

// EvaluateBatch evaluates every request on a pool of workers.
// Results keep the order of reqs. A request naming an unknown metric, or one
// left unprocessed when ctx is cancelled, is reported on its own row.
func EvaluateBatch(ctx context.Context, reqs []schema.BatchRequest, workers int) []schema.BatchResult {
	results := make([]schema.BatchResult, len(reqs))
	if len(reqs) == 0 {
		return results
	}
	workers = max(1, min(workers, len(reqs)))

	indexCh := make(chan int, len(reqs))
	var wg sync.WaitGroup

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for i := range indexCh {
				// Each worker writes only its own slot
				results[i] = evaluateRow(ctx, i, reqs[i])
			}
		})
	}

	// Send row indexes to worker channel
	for i := range reqs {
		indexCh <- i
	}
	close(indexCh)

	// Wait for all workers to finish processing
	wg.Wait()

	return results
}

// evaluateRow evaluates one batch row. Row numbers are 1-based.
func evaluateRow(ctx context.Context, i int, req schema.BatchRequest) schema.BatchResult {
	row := schema.BatchResult{Row: i + 1, Request: req}
	if err := ctx.Err(); err != nil {
		row.Error = err.Error()
		return row
	}
	result, err := Evaluate(req.MetricID, req.Values)
	if err != nil {
		row.Error = err.Error()
		return row
	}
	row.Result = &result
	return row
}
