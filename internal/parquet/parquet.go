// Package parquet provides data structures and functions for exporting metric
// evaluations to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/mktcalc/schema"
	"github.com/parquet-go/parquet-go"
)

// EvaluationRow is one evaluated batch row in columnar form.
type EvaluationRow struct {
	// Row is the 1-based position of the request in its batch
	Row int32 `parquet:"row,snappy"`

	// MetricID is the requested metric
	MetricID string `parquet:"metric_id,snappy"`

	// Name is the display name of the metric (nullable when the row failed)
	Name *string `parquet:"name,optional,snappy"`

	// Value is the raw computed value, which may be NaN or infinite (nullable when the row failed)
	Value *float64 `parquet:"value,optional,snappy"`

	// Formatted is the value rendered with the metric's format (nullable when the row failed)
	Formatted *string `parquet:"formatted,optional,snappy"`

	// Level is the performance level of the value (nullable when the row failed)
	Level *string `parquet:"level,optional,snappy"`

	// Comment is the short interpretation of the value (nullable when the row failed)
	Comment *string `parquet:"comment,optional,snappy"`

	// ValuesJSON contains the JSON-encoded input values
	ValuesJSON string `parquet:"values_json,snappy"`

	// Error is the failure message for rows that could not be evaluated (nullable)
	Error *string `parquet:"error,optional,snappy"`
}

// FromBatchResults converts batch results into Parquet rows.
func FromBatchResults(results []schema.BatchResult) ([]EvaluationRow, error) {
	rows := make([]EvaluationRow, 0, len(results))
	for _, r := range results {
		values, err := json.Marshal(r.Request.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to encode values of row %d: %w", r.Row, err)
		}
		row := EvaluationRow{
			Row:        int32(r.Row),
			MetricID:   r.Request.MetricID,
			ValuesJSON: string(values),
		}
		if r.Error != "" {
			row.Error = &r.Error
		}
		if res := r.Result; res != nil {
			value := res.Value.Float()
			level := string(res.Level)
			row.Name = &res.Name
			row.Value = &value
			row.Formatted = &res.Formatted
			row.Level = &level
			row.Comment = &res.Comment
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteEvaluations writes rows to w as a single Parquet file.
func WriteEvaluations(w io.Writer, data []EvaluationRow) error {
	// The schema is automatically derived from the EvaluationRow struct tags
	writer := parquet.NewGenericWriter[EvaluationRow](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteEvaluationsParquet writes a slice of EvaluationRow structs to a Parquet file.
func WriteEvaluationsParquet(data []EvaluationRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteEvaluations(file, data)
}
