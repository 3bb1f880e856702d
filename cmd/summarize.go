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
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/icarusdb/icdb/internal/iofs"
	"github.com/icarusdb/icdb/internal/iologger"
	"github.com/icarusdb/icdb/internal/ioload"
	"github.com/icarusdb/icdb/internal/iosummary"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/icarusdb/icdb/pkg/summarize"
	"github.com/spf13/cobra"
)

// getSummarizeCmd returns the summarize command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSummarizeCmd() *cobra.Command {
	summarizeCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Build the summarized dataset from raw data tables",
		Long: `Join raw data table exports into summarized-data.json.

This command:
  1. Loads raw tables from the game data directory
  2. Extracts stats, items, resources, crafters and recipes
  3. Excludes entities that fail business rules and reports why
  4. Flags items that take no part in crafting
  5. Writes summarized-data.json and summarized-data.log

A structural problem in raw data stops the run. The last line of
summarized-data.log then starts with [FATAL] and no dataset is written.

Examples:
  # Use directories from the configuration
  icdb summarize

  # Read tables from a different export and write the food table
  icdb summarize -d ~/icarus/data_pak -o ./tools/summarize --food`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSummarize(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	summarizeCmd.Flags().StringP(
		"data-dir", "d", "",
		"root directory of raw data tables",
	)
	summarizeCmd.Flags().StringP(
		"output-dir", "o", "",
		"directory for the dataset and the run log",
	)
	summarizeCmd.Flags().BoolP(
		"food", "f", false,
		"also write food.tsv with consumable stats",
	)
	summarizeCmd.Flags().IntP(
		"jobs", "j", 0,
		"number of tables loaded concurrently",
	)

	return summarizeCmd
}

func runSummarize(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd,
		stringFlag("data-dir", config.OptGameDataDir),
		stringFlag("output-dir", config.OptOutputDir),
		boolFlag("food", config.OptWithFood),
		intFlag("jobs", config.OptJobsNumber),
	))

	gn.Info("Reading raw tables from <em>%s</em>", cfg.Data.GameDataDir)

	if err := iofs.EnsureDir(cfg.Data.OutputDir); err != nil {
		return err
	}
	lw, err := iologger.NewLogWriter(cfg.LogPath(), os.Stdout)
	if err != nil {
		return err
	}

	s := iosummary.New(cfg, ioload.New(cfg), lw)
	if _, err = s.Summarize(context.Background()); err != nil {
		gn.PrintErrorMessage(err)
		lw.Fatal(summarize.ErrorText(err))
	}

	return lw.Close()
}
