package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage worksvis configuration file values.",
	Long: `Create, edit, and display the worksvis configuration file.

The configuration stores the dataset source and normalization settings:
- source.url / source.path / source.file / source.format / source.timeout_seconds
- columns.work_id / author_id / countries / field / year (candidate column names)
- countries (extra ISO2 code to display name entries)
- serve.port / serve.asset_file`,
	Example: `
  # Create default config in $HOME/.worksvis.yaml
  worksvis config create

  # Show active config and source file
  worksvis config show

  # Open active config in editor (creates example if missing)
  worksvis config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
