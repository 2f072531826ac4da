// Package inputs reads batch evaluation requests from CSV, JSON and YAML files.
package inputs

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"
	"gopkg.in/yaml.v3"
)

// MetricColumn is the CSV header naming the metric of each row.
const MetricColumn = "metric"

// Format is a batch file encoding.
type Format string

// Supported batch file encodings.
const (
	CSVFormat  Format = "csv"
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// DetectFormat picks the encoding from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSVFormat, nil
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return "", fmt.Errorf("unsupported input file '%s'. must end in .csv, .json, .yaml, .yml", path)
	}
}

// ReadBatch opens path and decodes the batch requests it holds.
func ReadBatch(path string) ([]schema.BatchRequest, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, format)
}

// Decode reads batch requests in the given format and validates them.
func Decode(r io.Reader, format Format) ([]schema.BatchRequest, error) {
	var (
		reqs []schema.BatchRequest
		err  error
	)
	switch format {
	case CSVFormat:
		reqs, err = decodeCSV(r)
	case JSONFormat:
		err = json.NewDecoder(r).Decode(&reqs)
		if err != nil {
			err = fmt.Errorf("failed to decode JSON input: %w", err)
		}
	case YAMLFormat:
		err = yaml.NewDecoder(r).Decode(&reqs)
		if errors.Is(err, io.EOF) {
			err = nil // empty document
		} else if err != nil {
			err = fmt.Errorf("failed to decode YAML input: %w", err)
		}
	default:
		err = fmt.Errorf("unsupported input format '%s'", format)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// decodeCSV reads a header row with a metric column followed by field columns.
// Empty cells are skipped so one file can mix metrics with different fields.
func decodeCSV(r io.Reader) ([]schema.BatchRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	metricIdx := -1
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
		if header[i] == MetricColumn {
			metricIdx = i
		}
	}
	if metricIdx < 0 {
		return nil, fmt.Errorf("CSV header must include a '%s' column", MetricColumn)
	}

	var reqs []schema.BatchRequest
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		req := schema.BatchRequest{
			MetricID: strings.TrimSpace(record[metricIdx]),
			Values:   schema.Values{},
		}
		for i, cell := range record {
			if i == metricIdx || strings.TrimSpace(cell) == "" {
				continue
			}
			v, err := contract.ParseNumber(cell)
			if err != nil {
				return nil, fmt.Errorf("CSV line %d, column %s: %w", line, header[i], err)
			}
			req.Values[header[i]] = v
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Validate enforces numeric well-formedness and a metric on every row.
func Validate(reqs []schema.BatchRequest) error {
	for i, req := range reqs {
		if strings.TrimSpace(req.MetricID) == "" {
			return fmt.Errorf("row %d: metric is required", i+1)
		}
		for k, v := range req.Values {
			if err := contract.CheckFinite(v); err != nil {
				return fmt.Errorf("row %d, field %s: %w", i+1, k, err)
			}
		}
	}
	return nil
}
