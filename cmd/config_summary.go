package cmd

import (
	"fmt"
	"os"
	"strings"

	"worksvis/config"
	"worksvis/importer"
)

// validateConfigFile reads path and validates it as worksvis YAML.
func validateConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config failed: %w", err)
	}
	cfg, err := config.ValidateYAMLContent(content)
	if err != nil {
		return nil, fmt.Errorf("config validation failed in %s: %w", path, err)
	}
	return cfg, nil
}

func printConfigSummary(cfg config.Config) {
	fmt.Printf("Dataset source: %s\n", describeSource(cfg.Source))
	if err := checkSourceFile(cfg.Source); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Println("Column policy (candidates tried in order):")
	for _, line := range columnPolicyLines(cfg.Columns) {
		fmt.Printf("  %s\n", line)
	}
	if len(cfg.Countries) > 0 {
		fmt.Printf("Country overrides: %d\n", len(cfg.Countries))
	}
}

func describeSource(source config.SourceConfig) string {
	if strings.TrimSpace(source.File) != "" {
		return "file " + source.File
	}
	return strings.TrimRight(source.URL, "/") + source.Path
}

// checkSourceFile reports a configured source.file that cannot be read.
// URL sources are not contacted.
func checkSourceFile(source config.SourceConfig) error {
	file := strings.TrimSpace(source.File)
	if file == "" {
		return nil
	}
	info, err := os.Stat(file)
	if err != nil {
		return fmt.Errorf("source.file %s is not readable: %w", file, err)
	}
	if info.IsDir() {
		return fmt.Errorf("source.file %s is a directory", file)
	}
	if _, err := importer.InferFormat(file, source.Format); err != nil {
		return fmt.Errorf("source.file %s: %w (set source.format)", file, err)
	}
	return nil
}

// columnPolicyLines renders the effective candidate lists, filling unset
// fields with the built-in defaults.
func columnPolicyLines(columns config.ColumnsConfig) []string {
	effective := importer.Columns{
		WorkID:    columns.WorkID,
		AuthorID:  columns.AuthorID,
		Countries: columns.Countries,
		Field:     columns.Field,
		Year:      columns.Year,
	}.Merge(importer.DefaultColumns())

	return []string{
		"work_id: " + strings.Join(effective.WorkID, " -> "),
		"author_id: " + strings.Join(effective.AuthorID, " -> "),
		"countries: " + strings.Join(effective.Countries, " -> "),
		"field: " + strings.Join(effective.Field, " -> "),
		"year: " + strings.Join(effective.Year, " -> "),
	}
}
