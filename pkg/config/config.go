// Package config provides configuration management for icdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars (and .env file) >
// config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Data: game_data_dir, output_dir, db_path
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Data.WithFood (summarize command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use ICDB_ prefix with underscores for nesting:
//
//	ICDB_DATA_GAME_DATA_DIR=/games/icarus/data_pak
//	ICDB_DATA_OUTPUT_DIR=./tools/summarize
//	ICDB_LOG_LEVEL=info
//	ICDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete icdb configuration.
type Config struct {
	// Data contains locations of raw tables and produced files.
	Data DataConfig `mapstructure:"data" yaml:"data"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of raw tables loaded concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// DataConfig contains input and output locations.
type DataConfig struct {
	// GameDataDir is the root of raw data table exports. It contains
	// subsystem directories such as Items, Traits and Crafting.
	GameDataDir string `mapstructure:"game_data_dir" yaml:"game_data_dir"`

	// OutputDir receives the summarized dataset, the run log and the
	// optional food table.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// DBPath is the SQLite file created by the export command.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// WithFood enables the tab-separated food table.
	WithFood bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Data: DataConfig{
			GameDataDir: "gamedata/data_pak",
			OutputDir:   ".",
			DBPath:      "summarized-data.sqlite",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
