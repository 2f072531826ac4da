// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/mktcalc/core/catalog"
	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the mktcalc MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, evaluator contract.Evaluator) *server.MCPServer {
	s := server.NewMCPServer(
		"Marketing Metrics Server",
		"1.0.0",
		server.WithLogging(),
	)

	metricIDs := catalog.IDs()

	h := &toolHandler{
		baseCfg:   baseCfg,
		evaluator: evaluator,
	}

	// --- 1. Tool: list_metrics ---
	s.AddTool(mcp.NewTool("list_metrics",
		mcp.WithDescription("List the marketing metrics this server can calculate."),
		mcp.WithString("group", mcp.Description("Catalog group (common, advanced, all). Defaults to 'all'."), mcp.Enum("common", "advanced", "all")),
	), h.handleListMetrics)

	// --- 2. Tool: describe_metric ---
	s.AddTool(mcp.NewTool("describe_metric",
		mcp.WithDescription("Describe a metric: its input fields, formula, display format and classification tiers."),
		mcp.WithString("metric_id", mcp.Description("Metric identifier, e.g. 'ctr' or 'netPromoterScore'."), mcp.Required(), mcp.Enum(metricIDs...)),
	), h.handleDescribeMetric)

	// --- 3. Tool: evaluate_metric ---
	s.AddTool(mcp.NewTool("evaluate_metric",
		mcp.WithDescription("Calculate a metric and return its formatted result, level, comment and detailed analysis."),
		mcp.WithString("metric_id", mcp.Description("Metric identifier, e.g. 'ctr'."), mcp.Required(), mcp.Enum(metricIDs...)),
		mcp.WithObject("values", mcp.Description("Input values keyed by field id, e.g. {\"clicks\": 20, \"impressions\": 1000}."), mcp.Required()),
	), h.handleEvaluateMetric)

	// --- 4. Tool: evaluate_batch ---
	s.AddTool(mcp.NewTool("evaluate_batch",
		mcp.WithDescription("Calculate many metrics at once. Rows that fail carry an error instead of a result."),
		mcp.WithArray("requests",
			mcp.Description("List of {\"metric\": id, \"values\": {...}} objects."),
			mcp.Items(map[string]any{"type": "object"}),
			mcp.Required(),
		),
		mcp.WithNumber("workers", mcp.Description("Optional worker count, capped at the server's configured workers.")),
	), h.handleEvaluateBatch)

	return s
}

// StartMCPServer starts the mktcalc MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, evaluator contract.Evaluator) error {
	s := NewMCPServer(baseCfg, evaluator)
	return server.ServeStdio(s)
}
