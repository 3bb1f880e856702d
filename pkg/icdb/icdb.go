// Package icdb declares the interfaces of the summarization pipeline.
// Implementations that touch the file system live in internal packages.
package icdb

import (
	"context"

	"github.com/icarusdb/icdb/pkg/gamedata"
	"github.com/icarusdb/icdb/pkg/rawdata"
)

// Loader reads raw data table exports.
type Loader interface {
	// Load reads every raw table required by the summarizer. Tables are
	// read concurrently, the first failure cancels the rest.
	Load(ctx context.Context) (*rawdata.Tables, error)
}

// Summarizer runs the whole pipeline, from raw tables to the written
// dataset and run log.
type Summarizer interface {
	Summarize(ctx context.Context) (*gamedata.GameData, error)
}

// Exporter saves a finished dataset into a relational database.
type Exporter interface {
	Export(ctx context.Context, gd *gamedata.GameData) error
}
