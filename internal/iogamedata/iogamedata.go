// Package iogamedata reads a summarized dataset from disk. Every path is
// read once per process, later calls return the cached dataset.
package iogamedata

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/gnames/gnfmt"
	"github.com/icarusdb/icdb/pkg/gamedata"
)

var (
	mu    sync.Mutex
	cache = make(map[string]*gamedata.GameData)
)

// Load returns the dataset stored at path.
func Load(path string) (*gamedata.GameData, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	mu.Lock()
	defer mu.Unlock()
	if gd, ok := cache[key]; ok {
		return gd, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DatasetReadError(path, err)
	}

	enc := gnfmt.GNjson{}
	gd := gamedata.New()
	if err = enc.Decode(data, gd); err != nil {
		return nil, DatasetReadError(path, err)
	}

	cache[key] = gd
	return gd, nil
}
