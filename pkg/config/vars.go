package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "icdb"
)

// Names of files created in the output directory.
const (
	DataFile = "summarized-data.json"
	LogFile  = "summarized-data.log"
	FoodFile = "food.tsv"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/icdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/icdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/icdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DataPath returns the path of the summarized dataset.
func (c *Config) DataPath() string {
	return filepath.Join(c.Data.OutputDir, DataFile)
}

// LogPath returns the path of the run log.
func (c *Config) LogPath() string {
	return filepath.Join(c.Data.OutputDir, LogFile)
}

// FoodPath returns the path of the food table.
func (c *Config) FoodPath() string {
	return filepath.Join(c.Data.OutputDir, FoodFile)
}
