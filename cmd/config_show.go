package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"worksvis/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  worksvis config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("source.url: %s\n", cfg.Source.URL)
		fmt.Printf("source.path: %s\n", cfg.Source.Path)
		fmt.Printf("source.file: %s\n", cfg.Source.File)
		fmt.Printf("source.format: %s\n", cfg.Source.Format)
		fmt.Printf("source.timeout_seconds: %d\n", cfg.Source.TimeoutSeconds)
		fmt.Printf("columns.work_id: %s\n", formatColumnList(cfg.Columns.WorkID))
		fmt.Printf("columns.author_id: %s\n", formatColumnList(cfg.Columns.AuthorID))
		fmt.Printf("columns.countries: %s\n", formatColumnList(cfg.Columns.Countries))
		fmt.Printf("columns.field: %s\n", formatColumnList(cfg.Columns.Field))
		fmt.Printf("columns.year: %s\n", formatColumnList(cfg.Columns.Year))
		fmt.Printf("countries: %d\n", len(cfg.Countries))
		codes := make([]string, 0, len(cfg.Countries))
		for code := range cfg.Countries {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("countries[%s]: %s\n", strings.ToUpper(code), cfg.Countries[code])
		}
		fmt.Printf("serve.port: %d\n", cfg.Serve.Port)
		fmt.Printf("serve.asset_file: %s\n", cfg.Serve.AssetFile)
	},
}

// formatColumnList renders an empty candidate list as the built-in default marker.
func formatColumnList(columns []string) string {
	if len(columns) == 0 {
		return "(default)"
	}
	return strings.Join(columns, ", ")
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
