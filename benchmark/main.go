// Package main provides a performance benchmarking tool for the mktcalc CLI.
// It generates batch input files of increasing size, times the batch command
// across worker counts, treating the first successful run as cold and averaging
// the rest as warm, and writes CSV output for performance analysis.
//
// Prerequisites:
// - mktcalc binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory where generated inputs and outputs are written
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Rows     int
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir  string
	Timeout  time.Duration
	Runs     int
	RowSizes []int
	Workers  []int
}

// sampleRows cycles through a few metrics so every row shape is exercised.
var sampleRows = [][]string{
	{"ctr", "20", "1000", "", "", "", ""},
	{"cpc", "500", "", "1000", "", "", ""},
	{"roi", "", "", "5000", "15000", "", ""},
	{"bounceRate", "", "", "", "", "300", "1000"},
}

var sampleHeader = []string{"metric", "clicks", "impressions", "cost", "revenue", "bounces", "sessions"}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:  os.Args[1],
		Timeout:  2 * time.Minute,
		Runs:     4,
		RowSizes: []int{1_000, 10_000, 100_000},
		Workers:  []int{1, 4, 14},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the mktcalc binary and work directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("mktcalc"); err != nil {
		return fmt.Errorf("mktcalc binary not found in PATH")
	}
	if info, err := os.Stat(config.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("work dir %s not found", config.WorkDir)
	}
	return nil
}

// generateInput writes a batch CSV with the requested number of rows.
func generateInput(dir string, rows int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("batch_%d.csv", rows))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.Write(sampleHeader); err != nil {
		return "", err
	}
	for i := range rows {
		if err := writer.Write(sampleRows[i%len(sampleRows)]); err != nil {
			return "", err
		}
	}
	writer.Flush()
	return path, writer.Error()
}

// runBenchmarks executes the batch command for every input size and worker count
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d sizes, %d worker counts, %v timeout, %d runs\n",
		len(config.RowSizes), len(config.Workers), config.Timeout, config.Runs)

	for _, rows := range config.RowSizes {
		input, err := generateInput(config.WorkDir, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %d rows: %w", rows, err)
		}
		for _, workers := range config.Workers {
			fmt.Printf("Benchmarking %d rows with %d workers\n", rows, workers)
			cold, warm := runBenchmark(config, input, workers)

			coldStr := "TIMEOUT"
			if cold > 0 {
				coldStr = fmt.Sprintf("%.3fs", cold)
			}
			warmStr := "TIMEOUT"
			if len(warm) > 0 {
				var sum float64
				for _, t := range warm {
					sum += t
				}
				warmStr = fmt.Sprintf("%.3fs", sum/float64(len(warm)))
			}
			fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmStr)

			results = append(results, BenchmarkResult{Rows: rows, Workers: workers, ColdTime: coldStr, WarmTime: warmStr})
		}
	}

	return results, nil
}

// runBenchmark executes the batch command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, input string, workers int) (coldTime float64, warmTimes []float64) {
	output := strings.TrimSuffix(input, ".csv") + "_out.csv"
	args := []string{"batch", "--input", input, "--output", "csv", "--output-file", output, "--workers", strconv.Itoa(workers)}

	var times []float64
	for range config.Runs {
		start := time.Now()

		cmd := exec.Command("mktcalc", args...)
		done := make(chan bool)
		var out []byte
		var cmdErr error

		go func() {
			out, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(out) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	return strings.Contains(string(output), "Wrote CSV")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/mktcalc_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"rows", "workers", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		rec := []string{strconv.Itoa(result.Rows), strconv.Itoa(result.Workers), result.ColdTime, result.WarmTime}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %7d rows, %2d workers: Cold: %s, Warm: %s\n", result.Rows, result.Workers, result.ColdTime, result.WarmTime)
	}
}
