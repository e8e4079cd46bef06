package cmd

import (
	"fmt"
	"strings"

	"worksvis/config"
	"worksvis/importer"
	"worksvis/loader"

	"github.com/spf13/cobra"
)

const userAgent = "worksvis/1.0"

// sourceFlags are the per-run overrides shared by load, export and serve.
type sourceFlags struct {
	url    string
	file   string
	format string
	path   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.url, "url", "", "Base URL serving the dataset (overrides source.url)")
	cmd.Flags().StringVar(&f.file, "file", "", "Local dataset file (overrides source.file and --url)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Input format: csv|excel|tsv (optional, inferred from file extension)")
	cmd.Flags().StringVar(&f.path, "path", "", "Resource path below the base URL (default: source.path)")
}

// resolveSource picks the dataset source. Precedence: --file, --url, source.file, source.url.
func resolveSource(cfg config.Config, flags sourceFlags) (loader.Source, error) {
	format := strings.TrimSpace(flags.format)
	if format == "" {
		format = cfg.Source.Format
	}

	file := strings.TrimSpace(flags.file)
	baseURL := strings.TrimSpace(flags.url)
	if file == "" && baseURL == "" {
		file = strings.TrimSpace(cfg.Source.File)
		baseURL = strings.TrimSpace(cfg.Source.URL)
	}

	if file != "" {
		return loader.NewFileSource(file, format)
	}
	if baseURL == "" {
		return nil, fmt.Errorf("no dataset source configured (use --url, --file or source.url in config)")
	}

	path := strings.TrimSpace(flags.path)
	if path == "" {
		path = cfg.Source.Path
	}
	return loader.NewHTTPSource(loader.HTTPSourceConfig{
		BaseURL:   baseURL,
		Path:      path,
		UserAgent: userAgent,
		Timeout:   cfg.Source.Timeout(),
	})
}

func newWorksMapper(cfg config.Config) *importer.WorksMapper {
	columns := importer.Columns{
		WorkID:    cfg.Columns.WorkID,
		AuthorID:  cfg.Columns.AuthorID,
		Countries: cfg.Columns.Countries,
		Field:     cfg.Columns.Field,
		Year:      cfg.Columns.Year,
	}
	countries := importer.NewCountryResolver(importer.WithOverrides(importer.DefaultCountryNames, cfg.Countries))
	return importer.NewWorksMapper(columns, countries)
}

func newWorksLoader(cfg config.Config, flags sourceFlags) (*loader.Loader, loader.Source, error) {
	source, err := resolveSource(cfg, flags)
	if err != nil {
		return nil, nil, err
	}
	works, err := loader.New(source, loader.Options{Mapper: newWorksMapper(cfg)})
	if err != nil {
		return nil, nil, err
	}
	return works, source, nil
}
