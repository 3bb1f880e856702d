// Package iosummary runs the summarization pipeline and writes its
// results: the dataset, the run log and the optional food table.
package iosummary

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/icarusdb/icdb/internal/iofs"
	"github.com/icarusdb/icdb/internal/iologger"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/icdb"
	"github.com/icarusdb/icdb/pkg/summarize"
)

type summarizer struct {
	cfg    *config.Config
	loader icdb.Loader
	log    *iologger.LogWriter
}

// New creates a Summarizer. The run report goes to log, the caller
// owns it and decides what to do with a fatal error.
func New(
	cfg *config.Config,
	loader icdb.Loader,
	log *iologger.LogWriter,
) icdb.Summarizer {
	return &summarizer{cfg: cfg, loader: loader, log: log}
}

// Summarize loads raw tables, builds the dataset and writes it. Nothing
// is written to the output directory, except the run log, if any step
// fails.
func (s *summarizer) Summarize(ctx context.Context) (*gamedata.GameData, error) {
	start := time.Now()

	tables, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	gd, report, err := summarize.Summarize(tables)
	if report != nil {
		s.log.PrintLines(report.Lines())
	}
	if err != nil {
		return nil, err
	}

	data, err := Encode(gd)
	if err != nil {
		return nil, err
	}
	if err = iofs.WriteFile(s.cfg.DataPath(), data); err != nil {
		return nil, err
	}

	if s.cfg.Data.WithFood {
		food := summarize.FoodTable(gd)
		if err = iofs.WriteFile(s.cfg.FoodPath(), []byte(food+"\n")); err != nil {
			return nil, err
		}
		slog.Info("Food table written", "path", s.cfg.FoodPath())
	}

	dur := time.Since(start).Seconds()
	slog.Info("Dataset written",
		"path", s.cfg.DataPath(),
		"items", len(gd.Items),
		"recipes", len(gd.Recipes),
		"excluded_items", len(report.ExcludedItems),
		"excluded_recipes", len(report.ExcludedRecipes),
		"warnings", len(report.Warnings),
		"duration", gnfmt.TimeString(dur),
	)
	gn.Info(
		"Summarized <em>%s</em> items and <em>%s</em> recipes into <em>%s</em>",
		humanize.Comma(int64(len(gd.Items))),
		humanize.Comma(int64(len(gd.Recipes))),
		s.cfg.DataPath(),
	)
	if n := len(report.Warnings); n > 0 {
		gn.Warn("There were <em>%d</em> warnings, see <em>%s</em>",
			n, s.cfg.LogPath())
	}
	return gd, nil
}

// Encode renders the dataset as JSON with 4-space indentation. Map keys
// are sorted, so the same dataset always gives the same bytes.
func Encode(gd *gamedata.GameData) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(gd); err != nil {
		return nil, EncodeError(err)
	}
	return buf.Bytes(), nil
}
