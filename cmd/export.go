package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"worksvis/config"
	"worksvis/output"
	"worksvis/storage"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
	exportSource sourceFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export normalized works to CSV/Excel/SQLite",
	Long: `Load the works dataset and export it.

Modes:
- raw: export each normalized row (work id, author id, short author id, country, field, year)
- yearly: export per-year aggregates (rows, distinct works, authors, countries, fields)

Output format can be selected explicitly via --output-format or inferred from --output extension.
SQLite output is only available for raw mode.`,
	Example: `
  # Export raw rows to CSV
  worksvis export --mode raw --output ./works.csv

  # Export raw rows to Excel from a local file
  worksvis export --mode raw --file ./static/works_with_authors.csv --output ./works.xlsx

  # Write a SQLite snapshot
  worksvis export --mode raw --output ./works.db

  # Export yearly summary, forcing Excel independent of extension
  worksvis export --mode yearly --output-format excel --output ./yearly-summary.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		mode, err := normalizeExportMode(exportMode)
		if err != nil {
			return err
		}

		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		works, _, err := newWorksLoader(*cfg, exportSource)
		if err != nil {
			return err
		}
		rows, err := works.LoadWorks(cmd.Context())
		if err != nil {
			return err
		}

		switch mode {
		case "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, rows); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %s, Mode: raw, Format: %s, File: %s\n", humanize.Comma(int64(len(rows))), format, exportOutput)
			if normalizeOutputFormat(format) == "sqlite" {
				years, err := snapshotYearCounts(exportOutput)
				if err != nil {
					return err
				}
				fmt.Printf("Snapshot rows per year: %s\n", years)
			}
		case "yearly":
			summaries := output.BuildYearSummaries(rows)
			if err := output.WriteYearSummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Years: %d, Mode: yearly, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		}
		return nil
	},
}

func normalizeExportMode(mode string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "raw":
		return "raw", nil
	case "yearly", "year":
		return "yearly", nil
	default:
		return "", fmt.Errorf("unsupported export mode: %s (supported: raw, yearly)", mode)
	}
}

func normalizeOutputFormat(format string) string {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "sqlite", "db":
		return "sqlite"
	default:
		return strings.TrimSpace(strings.ToLower(format))
	}
}

// snapshotYearCounts reads the written snapshot back and renders its rows per year.
func snapshotYearCounts(path string) (string, error) {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return "", err
	}
	defer store.Close()

	counts, err := store.CountByYear()
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "none", nil
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	parts := make([]string, 0, len(years))
	for _, year := range years {
		parts = append(parts, fmt.Sprintf("%d=%s", year, humanize.Comma(int64(counts[year]))))
	}
	return strings.Join(parts, ", "), nil
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|yearly")
	exportCmd.Flags().StringVar(&exportFormat, "output-format", "", "Output format: csv|excel|sqlite (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportSource.register(exportCmd)

	_ = exportCmd.MarkFlagRequired("output")
}
