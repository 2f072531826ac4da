package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/mktcalc/core"
	"github.com/huangsam/mktcalc/internal/contract"
	mcp_internal "github.com/huangsam/mktcalc/internal/mcp"
	"github.com/huangsam/mktcalc/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, evaluator contract.Evaluator, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(&contract.Config{Group: schema.AllGroup, Workers: 2}, evaluator)

	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "Content should be text")
	return text.Text
}

func TestMCPServerHandlers(t *testing.T) {
	svc := core.NewService()

	t.Run("list_metrics by group", func(t *testing.T) {
		res := callTool(t, svc, "list_metrics", map[string]any{"group": "advanced"})
		require.False(t, res.IsError)

		var got []schema.Summary
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		require.Len(t, got, 3)
		assert.Equal(t, "customerAcquisitionCost", got[0].ID)
	})

	t.Run("list_metrics defaults to all", func(t *testing.T) {
		res := callTool(t, svc, "list_metrics", map[string]any{})
		var got []schema.Summary
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Len(t, got, 13)
	})

	t.Run("describe_metric", func(t *testing.T) {
		res := callTool(t, svc, "describe_metric", map[string]any{"metric_id": "cpc"})
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"formula"`)
	})

	t.Run("evaluate_metric with object values", func(t *testing.T) {
		res := callTool(t, svc, "evaluate_metric", map[string]any{
			"metric_id": "ctr",
			"values":    map[string]any{"clicks": 20.0, "impressions": 1000.0},
		})
		require.False(t, res.IsError)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		assert.Equal(t, "2.00%", got["formatted"])
		assert.Equal(t, "excellent", got["level"])
	})

	t.Run("evaluate_metric with string values", func(t *testing.T) {
		res := callTool(t, svc, "evaluate_metric", map[string]any{
			"metric_id": "roi",
			"values":    "revenue=15000,cost=5000",
		})
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"formatted": "200.00%"`)
	})

	t.Run("evaluate_metric division by zero encodes infinity", func(t *testing.T) {
		res := callTool(t, svc, "evaluate_metric", map[string]any{
			"metric_id": "cpc",
			"values":    map[string]any{"cost": 100.0, "clicks": 0.0},
		})
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"value": "Infinity"`)
	})

	t.Run("evaluate_batch keeps row errors", func(t *testing.T) {
		res := callTool(t, svc, "evaluate_batch", map[string]any{
			"requests": []any{
				map[string]any{"metric": "cpl", "values": map[string]any{"cost": 3000.0, "leads": 200.0}},
				map[string]any{"metric": "unknown", "values": map[string]any{}},
			},
		})
		require.False(t, res.IsError)

		var got []schema.BatchResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "R$ 15.00", got[0].Result.Formatted)
		assert.Contains(t, got[1].Error, "metric not found")
	})
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	svc := core.NewService()

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		contains string
	}{
		{"describe missing id", "describe_metric", map[string]any{}, "metric_id"},
		{"describe unknown id", "describe_metric", map[string]any{"metric_id": "nope"}, "metric not found"},
		{"evaluate unknown id", "evaluate_metric", map[string]any{"metric_id": "nope", "values": map[string]any{}}, "metric not found"},
		{"evaluate missing values", "evaluate_metric", map[string]any{"metric_id": "ctr"}, "values are required"},
		{"evaluate non-numeric value", "evaluate_metric", map[string]any{"metric_id": "ctr", "values": map[string]any{"clicks": "many"}}, "must be a number"},
		{"evaluate malformed string", "evaluate_metric", map[string]any{"metric_id": "ctr", "values": "clicks"}, "expected key=value"},
		{"list unknown group", "list_metrics", map[string]any{"group": "weird"}, "listing failed"},
		{"batch missing requests", "evaluate_batch", map[string]any{}, "requests"},
		{"batch row without metric", "evaluate_batch", map[string]any{"requests": []any{map[string]any{"values": map[string]any{}}}}, "metric is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, svc, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.contains)
		})
	}
}

func TestMCPServerUsesEvaluator(t *testing.T) {
	m := &contract.MockEvaluator{}
	m.On("Evaluate", "ctr", schema.Values{"clicks": 1, "impressions": 10}).
		Return(schema.Result{MetricID: "ctr", Formatted: "10.00%"}, nil).Once()
	m.On("ListMetrics", schema.AllGroup).Return([]schema.Summary{{ID: "ctr"}}, nil).Once()

	res := callTool(t, m, "evaluate_metric", map[string]any{
		"metric_id": "ctr",
		"values":    map[string]any{"clicks": 1.0, "impressions": 10.0},
	})
	assert.Contains(t, resultText(t, res), "10.00%")

	res = callTool(t, m, "list_metrics", nil)
	assert.Contains(t, resultText(t, res), `"id": "ctr"`)

	m.AssertExpectations(t)
	m.AssertNotCalled(t, "EvaluateBatch", mock.Anything, mock.Anything, mock.Anything)
}

func TestMCPEvaluateBatchWorkers(t *testing.T) {
	reqs := []schema.BatchRequest{{MetricID: "ctr", Values: schema.Values{"clicks": 1, "impressions": 10}}}
	args := func(workers float64) map[string]any {
		return map[string]any{
			"requests": []any{map[string]any{"metric": "ctr", "values": map[string]any{"clicks": 1.0, "impressions": 10.0}}},
			"workers":  workers,
		}
	}

	tests := []struct {
		name    string
		workers float64
		want    int
	}{
		{"lower than configured", 1, 1},
		{"capped at configured", 10, 2},
		{"non-positive uses configured", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &contract.MockEvaluator{}
			m.On("EvaluateBatch", mock.Anything, reqs, tt.want).Return([]schema.BatchResult{{Row: 1}}).Once()

			res := callTool(t, m, "evaluate_batch", args(tt.workers))
			assert.False(t, res.IsError)
			m.AssertExpectations(t)
		})
	}
}

func TestMCPMetricIDEnum(t *testing.T) {
	s := mcp_internal.NewMCPServer(&contract.Config{Group: schema.AllGroup, Workers: 2}, core.NewService())

	for _, name := range []string{"describe_metric", "evaluate_metric"} {
		t.Run(name, func(t *testing.T) {
			tool := s.GetTool(name)
			require.NotNil(t, tool)

			prop, ok := tool.Tool.InputSchema.Properties["metric_id"].(map[string]any)
			require.True(t, ok)
			ids, ok := prop["enum"].([]string)
			require.True(t, ok)
			assert.Len(t, ids, 13)
			assert.Contains(t, ids, "netPromoterScore")
		})
	}
}
