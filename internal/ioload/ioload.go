// Package ioload reads raw data table exports from the game data
// directory into rawdata.Tables.
package ioload

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/icarusdb/icdb/internal/iofs"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/icarusdb/icdb/pkg/datatable"
	"github.com/icarusdb/icdb/pkg/icdb"
	"github.com/icarusdb/icdb/pkg/rawdata"
	"golang.org/x/sync/errgroup"
)

type loader struct {
	cfg *config.Config
}

// New creates a Loader that reads tables from cfg.Data.GameDataDir.
func New(cfg *config.Config) icdb.Loader {
	return &loader{cfg: cfg}
}

// Load reads every table listed in rawdata.Sources. Tables are read
// concurrently, the first failure cancels the rest.
func (l *loader) Load(ctx context.Context) (*rawdata.Tables, error) {
	start := time.Now()
	res := &rawdata.Tables{}
	decoders := tableDecoders(res)

	bar := newProgressBar(len(rawdata.Sources), "Loading tables: ")
	defer bar.Finish()

	var rows atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.JobsNumber)
	for _, src := range rawdata.Sources {
		decode := decoders[src.Table]
		path := filepath.Join(l.cfg.Data.GameDataDir, src.Path)
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return iofs.ReadFileError(path, err)
			}
			n, err := decode(path, data)
			if err != nil {
				return err
			}
			rows.Add(int64(n))
			slog.Debug("Loaded table", "table", src.Table, "rows", n)
			bar.Increment()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dur := time.Since(start).Seconds()
	slog.Info("Raw tables loaded",
		"tables", len(rawdata.Sources),
		"rows", rows.Load(),
		"duration", gnfmt.TimeString(dur),
	)
	gn.Info(
		"Loaded <em>%d</em> tables with <em>%s</em> rows in %s",
		len(rawdata.Sources),
		humanize.Comma(rows.Load()),
		gnfmt.TimeString(dur),
	)
	return res, nil
}

// decodeFn decodes a document and stores the table. It returns the
// number of rows.
type decodeFn func(path string, data []byte) (int, error)

func tableDecoders(t *rawdata.Tables) map[string]decodeFn {
	return map[string]decodeFn{
		rawdata.TableItemsStatic:      assign(rawdata.TableItemsStatic, &t.ItemsStatic),
		rawdata.TableItemTemplate:     assign(rawdata.TableItemTemplate, &t.ItemTemplates),
		rawdata.TableItemable:         assign(rawdata.TableItemable, &t.Itemables),
		rawdata.TableConsumable:       assign(rawdata.TableConsumable, &t.Consumables),
		rawdata.TableDurable:          assign(rawdata.TableDurable, &t.Durables),
		rawdata.TableProcessing:       assign(rawdata.TableProcessing, &t.Processing),
		rawdata.TableProcessorRecipes: assign(rawdata.TableProcessorRecipes, &t.ProcessorRecipes),
		rawdata.TableRecipeSets:       assign(rawdata.TableRecipeSets, &t.RecipeSets),
		rawdata.TableStats:            assign(rawdata.TableStats, &t.Stats),
		rawdata.TableResources:        assign(rawdata.TableResources, &t.Resources),
		rawdata.TableModifierStates:   assign(rawdata.TableModifierStates, &t.ModifierStates),
		rawdata.TableTalents:          assign(rawdata.TableTalents, &t.Talents),
		rawdata.TableWorkshopItems:    assign(rawdata.TableWorkshopItems, &t.WorkshopItems),
	}
}

func assign[T datatable.Row](name string, dst **datatable.Table[T]) decodeFn {
	return func(path string, data []byte) (int, error) {
		rows, err := decodeRows[T](path, data)
		if err != nil {
			return 0, err
		}
		tbl, err := datatable.New(name, rows)
		if err != nil {
			return 0, err
		}
		*dst = tbl
		return tbl.Len(), nil
	}
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
