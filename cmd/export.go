package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/internal/ioexport"
	"github.com/icarusdb/icdb/internal/iogamedata"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Save the summarized dataset into a SQLite database",
		Long: `Read summarized-data.json from the output directory and write it
into a SQLite file. An existing file is replaced only after the whole
dataset is written.

Examples:
  icdb export
  icdb export --db /tmp/icarus.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExport(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	exportCmd.Flags().String("db", "", "SQLite file to create")
	exportCmd.Flags().StringP(
		"output-dir", "o", "",
		"directory with summarized-data.json",
	)

	return exportCmd
}

func runExport(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd,
		stringFlag("db", config.OptDBPath),
		stringFlag("output-dir", config.OptOutputDir),
	))

	gd, err := iogamedata.Load(cfg.DataPath())
	if err != nil {
		return err
	}

	return ioexport.New(cfg).Export(context.Background(), gd)
}
