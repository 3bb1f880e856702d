// Package ioexport saves a summarized dataset into a SQLite file.
//
// Entities get UUIDv5 identifiers computed from their kind and name, so
// the same dataset always produces the same keys. The database is built
// next to the target and renamed over it only after the transaction is
// committed.
package ioexport

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
	"github.com/icarusdb/icdb/pkg/config"
	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/icdb"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Entity kinds used in identifiers.
const (
	KindItem     = "item"
	KindResource = "resource"
	KindCrafter  = "crafter"
	KindRecipe   = "recipe"
	KindStat     = "stat"
)

type exporter struct {
	cfg *config.Config
}

// New creates an Exporter that writes to cfg.Data.DBPath.
func New(cfg *config.Config) icdb.Exporter {
	return &exporter{cfg: cfg}
}

// EntityID returns the identifier of an entity in the exported database.
func EntityID(kind, name string) uuid.UUID {
	return gnuuid.New(kind + ":" + name)
}

// Export writes gd into a fresh database file.
func (e *exporter) Export(ctx context.Context, gd *gamedata.GameData) error {
	start := time.Now()
	path := e.cfg.Data.DBPath
	tmp := path + ".part"

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportOpenError(path, err)
		}
	}
	if err := removeFile(tmp); err != nil {
		return ExportOpenError(tmp, err)
	}

	db, err := sql.Open("sqlite", tmp)
	if err != nil {
		return ExportOpenError(tmp, err)
	}
	db.SetMaxOpenConns(1)

	err = e.write(ctx, db, gd)
	if cerr := db.Close(); err == nil && cerr != nil {
		err = ExportOpenError(tmp, cerr)
	}
	if err != nil {
		_ = removeFile(tmp)
		return err
	}

	if err = os.Rename(tmp, path); err != nil {
		_ = removeFile(tmp)
		return ExportOpenError(path, err)
	}

	dur := time.Since(start).Seconds()
	slog.Info("Dataset exported",
		"path", path,
		"items", len(gd.Items),
		"recipes", len(gd.Recipes),
		"duration", gnfmt.TimeString(dur),
	)
	gn.Info(
		"Exported <em>%s</em> items and <em>%s</em> recipes to <em>%s</em> in %s",
		humanize.Comma(int64(len(gd.Items))),
		humanize.Comma(int64(len(gd.Recipes))),
		path,
		gnfmt.TimeString(dur),
	)
	return nil
}

func (e *exporter) write(
	ctx context.Context,
	db *sql.DB,
	gd *gamedata.GameData,
) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return ExportSchemaError(err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return ExportSchemaError(err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExportInsertError("transaction", err)
	}

	steps := []struct {
		table string
		fn    func(context.Context, *sql.Tx, *gamedata.GameData) error
	}{
		{"stats", insertStats},
		{"items", insertItems},
		{"resources", insertResources},
		{"crafters", insertCrafters},
		{"recipes", insertRecipes},
	}
	for _, v := range steps {
		if err = v.fn(ctx, tx, gd); err != nil {
			_ = tx.Rollback()
			return err
		}
		slog.Debug("Exported table", "table", v.table)
	}

	if err = tx.Commit(); err != nil {
		return ExportInsertError("transaction", err)
	}
	return nil
}

func removeFile(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
