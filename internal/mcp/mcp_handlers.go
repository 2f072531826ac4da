package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/internal/inputs"
	"github.com/huangsam/mktcalc/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	evaluator contract.Evaluator
}

func (h *toolHandler) handleListMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if group := request.GetString("group", ""); group != "" {
		cfg.Group = schema.Group(strings.ToLower(group))
	}

	summaries, err := h.evaluator.ListMetrics(cfg.Group)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing failed: %v", err)), nil
	}
	return jsonResult(summaries)
}

func (h *toolHandler) handleDescribeMetric(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("metric_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	desc, err := h.evaluator.Describe(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("describe failed: %v", err)), nil
	}
	return jsonResult(desc)
}

func (h *toolHandler) handleEvaluateMetric(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("metric_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	values, err := parseValuesArgument(request.GetArguments()["values"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid values: %v", err)), nil
	}

	result, err := h.evaluator.Evaluate(id, values)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleEvaluateBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.GetArguments()["requests"]
	if !ok {
		return mcp.NewToolResultError("required argument \"requests\" not found"), nil
	}

	// Round-trip through JSON to reuse the batch request decoding
	data, err := json.Marshal(raw)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid requests: %v", err)), nil
	}
	var reqs []schema.BatchRequest
	if err := json.Unmarshal(data, &reqs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid requests: %v", err)), nil
	}
	if err := inputs.Validate(reqs); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid requests: %v", err)), nil
	}

	// Callers may lower the worker count but never exceed the server's
	cfg := h.baseCfg.Clone()
	if workers := request.GetInt("workers", 0); workers > 0 && workers < cfg.Workers {
		cfg.Workers = workers
	}

	results := h.evaluator.EvaluateBatch(ctx, reqs, cfg.Workers)
	return jsonResult(results)
}

// parseValuesArgument accepts either an object of numbers or a "k=v,k=v" string.
func parseValuesArgument(raw any) (schema.Values, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("values are required")
	case string:
		return contract.ParseValues(v)
	case map[string]any:
		values := make(schema.Values, len(v))
		for k, item := range v {
			f, ok := item.(float64)
			if !ok {
				return nil, fmt.Errorf("field %s must be a number (received %T)", k, item)
			}
			if err := contract.CheckFinite(f); err != nil {
				return nil, fmt.Errorf("field %s: %w", k, err)
			}
			values[k] = f
		}
		return values, nil
	default:
		return nil, fmt.Errorf("expected an object of numbers, got %T", raw)
	}
}

func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
