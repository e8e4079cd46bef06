/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"worksvis/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worksvis",
	Short: "Load, explore, and export the works-with-authors dataset.",
	Long: `
**********************************************
*               WORKS VIS                    *
**********************************************

This CLI fetches the works_with_authors dataset (CSV or Excel), normalizes every
row into work id, author id, country, field and publication year, and either
prints a summary, exports the rows, or serves them to a local visualization.

Supported input formats:
- CSV: .csv
- Excel: .xlsx, .xlsm, .xls
`,
	Example: `
  # Create configuration file
  worksvis config create

  # Load from the configured dev server and print a summary
  worksvis load

  # Load a local file instead
  worksvis load --file ./static/works_with_authors.csv

  # Export normalized rows
  worksvis export --mode raw --output ./works.xlsx

  # Export per-year summary
  worksvis export --mode yearly --output ./yearly-summary.csv

  # Serve the JSON API and the raw asset
  worksvis serve --file ./static/works_with_authors.csv --port 9090
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.worksvis.yaml, then ./.worksvis.yaml)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	switch cmd.Name() {
	case "load", "export", "serve":
		return true
	default:
		return false
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".worksvis" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".worksvis")
	}

	// WORKSVIS_SOURCE_URL maps to source.url.
	viper.SetEnvPrefix("WORKSVIS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found, using defaults. Create one with: worksvis config create")
	}
}
