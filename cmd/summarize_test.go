package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/icarusdb/icdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestGetSummarizeCmd_Flags verifies summarize flags exist.
func TestGetSummarizeCmd_Flags(t *testing.T) {
	cmd := getSummarizeCmd()
	assert.Equal(t, "summarize", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	tests := []struct {
		name      string
		shorthand string
	}{
		{"data-dir", "d"},
		{"output-dir", "o"},
		{"food", "f"},
		{"jobs", "j"},
	}
	for _, v := range tests {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.shorthand, flag.Shorthand, v.name)
	}
}

// TestFlagOptions verifies only changed flags become options.
func TestFlagOptions(t *testing.T) {
	cmd := getSummarizeCmd()
	require.NoError(t, cmd.Flags().Set("output-dir", "out"))
	require.NoError(t, cmd.Flags().Set("jobs", "3"))

	opts := flagOptions(cmd,
		stringFlag("data-dir", config.OptGameDataDir),
		stringFlag("output-dir", config.OptOutputDir),
		boolFlag("food", config.OptWithFood),
		intFlag("jobs", config.OptJobsNumber),
	)
	assert.Len(t, opts, 2)

	c := config.New()
	c.Update(opts)
	assert.Equal(t, "out", c.Data.OutputDir)
	assert.Equal(t, 3, c.JobsNumber)
	assert.Equal(t, "gamedata/data_pak", c.Data.GameDataDir)
	assert.False(t, c.Data.WithFood)
}

// TestRunSummarizeExportIcons runs the pipeline on the test data
// and reads the result back.
func TestRunSummarizeExportIcons(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	out := t.TempDir()
	cfg = config.New()

	cmd := getSummarizeCmd()
	require.NoError(t, cmd.Flags().Set("data-dir", "../testdata/data_pak"))
	require.NoError(t, cmd.Flags().Set("output-dir", out))
	require.NoError(t, cmd.Flags().Set("food", "true"))
	require.NoError(t, runSummarize(cmd))

	for _, v := range []string{
		"summarized-data.json", "summarized-data.log", "food.tsv",
	} {
		_, err := os.Stat(filepath.Join(out, v))
		assert.NoError(t, err, v)
	}

	t.Run("icons", func(t *testing.T) {
		cmd := getIconsCmd()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		require.NoError(t, runIcons(cmd))

		icons := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Contains(t, icons, "Logos/Icon_Icarus")
		assert.Contains(t, icons, "Icons/Icon_Water")
		assert.Contains(t, icons, "Items/Item_Icons/Resources/ITEM_Rope")
		assert.IsIncreasing(t, icons)
	})

	t.Run("export", func(t *testing.T) {
		cmd := getExportCmd()
		db := filepath.Join(out, "icarus.sqlite")
		require.NoError(t, cmd.Flags().Set("db", db))
		require.NoError(t, runExport(cmd))

		info, err := os.Stat(db)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("config", func(t *testing.T) {
		cmd := getConfigCmd()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		require.NoError(t, runConfig(cmd))

		var c config.Config
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &c))
		assert.Equal(t, out, c.Data.OutputDir)
		assert.Equal(t, "../testdata/data_pak", c.Data.GameDataDir)
	})
}

// TestRunExport_NoDataset verifies the error when summarize
// did not run.
func TestRunExport_NoDataset(t *testing.T) {
	cfg = config.New()
	cmd := getExportCmd()
	require.NoError(t, cmd.Flags().Set("output-dir", t.TempDir()))

	err := runExport(cmd)
	assert.Error(t, err)
}
