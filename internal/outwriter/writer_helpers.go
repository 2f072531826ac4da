package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/internal/parquet"
	"github.com/huangsam/mktcalc/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// writeParquetResults converts batch results to Parquet rows and writes them.
func writeParquetResults(w io.Writer, results []schema.BatchResult) error {
	rows, err := parquet.FromBatchResults(results)
	if err != nil {
		return err
	}
	return parquet.WriteEvaluations(w, rows)
}

// levelLabel picks the coloured or plain label for table output.
func levelLabel(level schema.Level, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(level)
	}
	return contract.GetPlainLabel(level)
}

// sortedKeys returns the field ids of values in lexical order.
func sortedKeys(values schema.Values) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// formatValues renders values as "k=v" pairs sorted by key and joined by sep.
func formatValues(values schema.Values, sep string) string {
	keys := sortedKeys(values)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + schema.JSNumber(values[k])
	}
	return strings.Join(parts, sep)
}
