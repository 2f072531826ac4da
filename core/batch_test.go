package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/huangsam/mktcalc/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateBatchPreservesOrder(t *testing.T) {
	reqs := make([]schema.BatchRequest, 0, 100)
	for i := range 100 {
		reqs = append(reqs, schema.BatchRequest{
			MetricID: "ctr",
			Values:   schema.Values{"clicks": float64(i), "impressions": 100},
		})
	}

	results := EvaluateBatch(context.Background(), reqs, 8)
	require.Len(t, results, len(reqs))
	for i, r := range results {
		require.True(t, r.OK(), "row %d", i+1)
		assert.Equal(t, i+1, r.Row)
		assert.Equal(t, fmt.Sprintf("%d.00%%", i), r.Result.Formatted)
	}
}

func TestEvaluateBatchMarksUnknownMetrics(t *testing.T) {
	reqs := []schema.BatchRequest{
		{MetricID: "cpc", Values: schema.Values{"cost": 1000, "clicks": 500}},
		{MetricID: "missing", Values: schema.Values{"x": 1}},
		{MetricID: "netPromoterScore", Values: schema.Values{"promoters": 70, "detractors": 20, "total": 100}},
	}

	results := EvaluateBatch(context.Background(), reqs, 2)
	require.Len(t, results, 3)

	assert.True(t, results[0].OK())
	assert.Equal(t, "R$ 2.00", results[0].Result.Formatted)

	assert.False(t, results[1].OK())
	assert.Nil(t, results[1].Result)
	assert.Contains(t, results[1].Error, ErrMetricNotFound.Error())
	assert.Equal(t, "missing", results[1].Request.MetricID)

	assert.True(t, results[2].OK())
	assert.Equal(t, "50", results[2].Result.Formatted)
}

func TestEvaluateBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reqs := []schema.BatchRequest{
		{MetricID: "ctr", Values: schema.Values{"clicks": 1, "impressions": 10}},
		{MetricID: "cpc", Values: schema.Values{"cost": 1, "clicks": 1}},
	}
	results := EvaluateBatch(ctx, reqs, 2)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.False(t, r.OK())
		assert.Equal(t, context.Canceled.Error(), r.Error)
	}
}

func TestEvaluateBatchEdgeCases(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		results := EvaluateBatch(context.Background(), nil, 4)
		assert.Empty(t, results)
	})

	t.Run("non-positive workers still run", func(t *testing.T) {
		reqs := []schema.BatchRequest{{MetricID: "roi", Values: schema.Values{"revenue": 15000, "cost": 5000}}}
		results := EvaluateBatch(context.Background(), reqs, 0)
		require.Len(t, results, 1)
		assert.Equal(t, schema.ExcellentLevel, results[0].Result.Level)
	})
}

func TestServiceMatchesPackageFunctions(t *testing.T) {
	svc := NewService()

	summaries, err := svc.ListMetrics(schema.CommonGroup)
	require.NoError(t, err)
	assert.Len(t, summaries, 10)

	desc, err := svc.Describe("roi")
	require.NoError(t, err)
	assert.Equal(t, "roi", desc.ID)

	result, err := svc.Evaluate("roi", schema.Values{"revenue": 15000, "cost": 5000})
	require.NoError(t, err)
	assert.Equal(t, "200.00%", result.Formatted)

	rows := svc.EvaluateBatch(context.Background(), []schema.BatchRequest{{MetricID: "roi", Values: result.Values}}, 1)
	require.Len(t, rows, 1)
	assert.Equal(t, result, *rows[0].Result)
}
