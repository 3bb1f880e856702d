package cmd

import (
	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after the config file, environment
variables and .env file are applied. The output has the format of
config.yaml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runConfig(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return configCmd
}

func runConfig(cmd *cobra.Command) error {
	gn.Info("Config file: <em>%s</em>", config.ConfigFilePath(cfg.HomeDir))
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
