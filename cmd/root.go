/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/internal/iofs"
	"github.com/icarusdb/icdb/internal/iologger"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/icarusdb/icdb/pkg/icdb"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", icdb.Version, icdb.Build),
		Use:     "icdb",
		Short:   "icdb summarizes Icarus game data for the wiki",
		Long: `icdb reads raw data table exports of the Icarus game, joins items,
crafters, recipes and resources into one summarized dataset and writes it
as summarized-data.json together with a run log.

Commands:
  - summarize: build the dataset from raw data tables
  - export: save the dataset into a SQLite database
  - icons: list icon paths used by the dataset
  - config: show the effective configuration

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (ICDB_*), also read from a .env file
  3. Config file (~/.config/icdb/config.yaml)
  4. Built-in defaults

Environment Variables:
    ICDB_DATA_GAME_DATA_DIR     Root of raw data tables
    ICDB_DATA_OUTPUT_DIR        Directory for the dataset and the run log
    ICDB_DATA_DB_PATH           SQLite file for export
    ICDB_LOG_LEVEL              Log level (debug/info/warn/error)
    ICDB_LOG_FORMAT             Log format (json/text)
    ICDB_LOG_DESTINATION        Log destination (file/stderr/stdout)
    ICDB_JOBS_NUMBER            Number of tables loaded concurrently`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "icdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for icdb")

	rootCmd.AddCommand(
		getSummarizeCmd(),
		getExportCmd(),
		getIconsCmd(),
		getConfigCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = loadEnvFile(".env"); err != nil {
		gn.Warn("Skipping <em>.env</em>: %v", err)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// loadEnvFile reads variables from a dotenv file. Values never override
// variables already set in the environment. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("ICDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data configuration
	_ = v.BindEnv("data.game_data_dir", "ICDB_DATA_GAME_DATA_DIR")
	_ = v.BindEnv("data.output_dir", "ICDB_DATA_OUTPUT_DIR")
	_ = v.BindEnv("data.db_path", "ICDB_DATA_DB_PATH")

	// Log configuration
	_ = v.BindEnv("log.level", "ICDB_LOG_LEVEL")
	_ = v.BindEnv("log.format", "ICDB_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "ICDB_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "ICDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
