package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/internal/iogamedata"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/spf13/cobra"
)

// getIconsCmd returns the icons command.
func getIconsCmd() *cobra.Command {
	iconsCmd := &cobra.Command{
		Use:   "icons",
		Short: "List icon paths used by the summarized dataset",
		Long: `Print every icon used by items, crafters and resources of
summarized-data.json, one per line in sorted order. The list also
contains the site logo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runIcons(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	iconsCmd.Flags().StringP(
		"output-dir", "o", "",
		"directory with summarized-data.json",
	)

	return iconsCmd
}

func runIcons(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd,
		stringFlag("output-dir", config.OptOutputDir),
	))

	gd, err := iogamedata.Load(cfg.DataPath())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, v := range gd.Icons() {
		fmt.Fprintln(out, v)
	}
	return nil
}
