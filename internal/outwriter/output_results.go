package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// resultCSVHeader is shared by single and batch CSV output.
var resultCSVHeader = []string{"row", "metric_id", "name", "value", "formatted", "level", "comment", "values", "error"}

// PrintResult outputs a single evaluation, dispatching based on the output format configured.
func PrintResult(result schema.Result, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut, schema.ParquetOut:
		// A single result is written as a one-row batch
		return PrintBatchResults([]schema.BatchResult{singleRow(result)}, cfg, 0)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultText(w, result, cfg)
		}, "Wrote text")
	}
}

// PrintBatchResults outputs batch results, dispatching based on the output format configured.
func PrintBatchResults(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResults(w, results)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeParquetResults(w, results)
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, results, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

func singleRow(result schema.Result) schema.BatchResult {
	return schema.BatchResult{
		Row:     1,
		Request: schema.BatchRequest{MetricID: result.MetricID, Values: result.Values},
		Result:  &result,
	}
}

// writeResultText writes one evaluation as a key/value table, followed by
// the detailed analysis when requested.
func writeResultText(w io.Writer, result schema.Result, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := [][]string{
		{"Metric", result.Name},
		{"Result", result.Formatted},
		{"Level", levelLabel(result.Level, cfg)},
		{"Comment", result.Comment},
	}
	for _, k := range sortedKeys(result.Values) {
		data = append(data, []string{k, schema.JSNumber(result.Values[k])})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if !cfg.Detail {
		return nil
	}
	return writeAnalysisText(w, result.Analysis)
}

// writeAnalysisText writes the overview, insights and recommendations of an analysis.
func writeAnalysisText(w io.Writer, analysis schema.Analysis) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", analysis.Overview); err != nil {
		return err
	}
	sections := []struct {
		title string
		lines []string
	}{
		{"Insights:", analysis.Insights},
		{"Recommendations:", analysis.Recommendations},
	}
	for _, s := range sections {
		if len(s.lines) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n%s\n", s.title); err != nil {
			return err
		}
		for _, line := range s.lines {
			if _, err := fmt.Fprintf(w, "  - %s\n", line); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeBatchTable generates and writes the human-readable batch table.
func writeBatchTable(w io.Writer, results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Row", "Metric", "Result", "Level", "Comment"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableTextWidth(cfg, 60) // Row + Metric + Result + Level
	var data [][]string
	failed := 0
	for _, r := range results {
		row := []string{strconv.Itoa(r.Row), r.Request.MetricID}
		if r.OK() {
			row = append(row,
				r.Result.Formatted,
				levelLabel(r.Result.Level, cfg),
				contract.TruncateText(r.Result.Comment, maxWidth),
			)
		} else {
			failed++
			row = append(row, "-", "Error", contract.TruncateText(r.Error, maxWidth))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Evaluated %d rows (%d failed)\n", len(results), failed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Batch completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeCSVResults writes batch results in CSV format.
func writeCSVResults(w io.Writer, results []schema.BatchResult) error {
	return writeCSVWithHeader(w, resultCSVHeader, func(csvWriter *csv.Writer) error {
		for _, r := range results {
			rec := []string{
				strconv.Itoa(r.Row),
				r.Request.MetricID,
				"", "", "", "", "",
				formatValues(r.Request.Values, "|"),
				r.Error,
			}
			if res := r.Result; res != nil {
				rec[2] = res.Name
				rec[3] = schema.JSNumber(res.Value.Float())
				rec[4] = res.Formatted
				rec[5] = contract.GetPlainLabel(res.Level)
				rec[6] = res.Comment
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
