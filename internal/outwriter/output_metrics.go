package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/mktcalc/internal/contract"
	"github.com/huangsam/mktcalc/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// errParquetCatalog is returned when catalog output is requested as Parquet.
var errParquetCatalog = errors.New("parquet output is only supported for evaluation results")

// PrintMetricList outputs the metric catalog, dispatching based on the output format configured.
func PrintMetricList(summaries []schema.Summary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summaries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVMetricList(w, summaries)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetCatalog
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricListTable(w, summaries, cfg)
		}, "Wrote table")
	}
}

// PrintDescription outputs one metric definition, dispatching based on the output format configured.
func PrintDescription(desc schema.MetricDescription, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, desc)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVDescription(w, desc)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetCatalog
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDescriptionText(w, desc, cfg)
		}, "Wrote text")
	}
}

// writeMetricListTable generates and writes the human-readable catalog table.
func writeMetricListTable(w io.Writer, summaries []schema.Summary, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "ID", "Name", "Group", "Description"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	maxWidth := getMaxTableTextWidth(cfg, 75) // # + ID + Name + Group
	var data [][]string
	for i, s := range summaries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.ID,
			s.Name,
			string(s.Group),
			contract.TruncateText(s.Description, maxWidth),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d metrics\n", len(summaries))
	return err
}

// writeCSVMetricList writes the catalog in CSV format.
func writeCSVMetricList(w io.Writer, summaries []schema.Summary) error {
	header := []string{"id", "name", "group", "description"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, s := range summaries {
			if err := csvWriter.Write([]string{s.ID, s.Name, string(s.Group), s.Description}); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCSVDescription writes the tier tables of a metric, one row per tier.
func writeCSVDescription(w io.Writer, desc schema.MetricDescription) error {
	header := []string{"metric_id", "table", "position", "condition", "level", "text"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		write := func(table string, rows []schema.TierRow) error {
			for i, r := range rows {
				rec := []string{desc.ID, table, strconv.Itoa(i + 1), r.Condition, string(r.Level), r.Text}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		}
		if err := write("comment", desc.Tiers); err != nil {
			return err
		}
		return write("analysis", desc.AnalysisTiers)
	})
}

// writeDescriptionText writes the full definition of a metric as text and tables.
func writeDescriptionText(w io.Writer, desc schema.MetricDescription, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s (%s, %s)\n%s\n\n%s\n\n", desc.Name, desc.ID, desc.Group, desc.Description, desc.Explanation); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Formula: %s\nFormat:  %s\n\n", desc.Formula, desc.Format.Render(0)); err != nil {
		return err
	}

	fields := tablewriter.NewWriter(w)
	fields.Header([]string{"Field", "Label", "Example"})
	var fieldRows [][]string
	for _, f := range desc.Fields {
		fieldRows = append(fieldRows, []string{f.ID, f.Label, f.Placeholder})
	}
	if err := fields.Bulk(fieldRows); err != nil {
		return err
	}
	if err := fields.Render(); err != nil {
		return err
	}

	if err := writeTierTable(w, "Comment tiers:", "Comment", desc.Tiers, cfg); err != nil {
		return err
	}
	if len(desc.AnalysisTiers) > 0 {
		if err := writeTierTable(w, "Analysis tiers:", "Label", desc.AnalysisTiers, cfg); err != nil {
			return err
		}
	}

	if len(desc.Recommendations) > 0 {
		if _, err := fmt.Fprintln(w, "\nRecommendations:"); err != nil {
			return err
		}
		for _, r := range desc.Recommendations {
			if _, err := fmt.Fprintf(w, "  - %s\n", r); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeTierTable renders an ordered tier table under a title.
func writeTierTable(w io.Writer, title, textHeader string, rows []schema.TierRow, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Condition", "Level", textHeader})

	maxWidth := getMaxTableTextWidth(cfg, 30) // Condition + Level
	var data [][]string
	for _, r := range rows {
		data = append(data, []string{r.Condition, levelLabel(r.Level, cfg), contract.TruncateText(r.Text, maxWidth)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
