package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/icarusdb/icdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.input), v.input)
	}
}

func TestInitFile(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "warn", Destination: "file"}
	err := Init(dir, cfg)
	require.NoError(t, err)

	slog.Info("hidden")
	slog.Warn("shown", "table", "D_ItemsStatic")

	content, err := os.ReadFile(filepath.Join(dir, "icdb.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), `"table":"D_ItemsStatic"`)
}

func TestInitBadDir(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	dir := filepath.Join(t.TempDir(), "missing")
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	err := Init(dir, cfg)
	assert.Error(t, err)
}

func TestNewHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, config.LogConfig{Format: "text", Level: "info"})
	slog.New(h).Info("loaded", "rows", 3)
	assert.Contains(t, buf.String(), "msg=loaded rows=3")
}

func TestLogWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summarized-data.log")
	var console bytes.Buffer

	lw, err := NewLogWriter(path, &console)
	require.NoError(t, err)

	lw.Print("Excluded items:")
	lw.Printf("- %s: %s", "Item_Stick", "Blacklisted")
	lw.PrintLines([]string{"Warnings:", "- none"})
	require.NoError(t, lw.Close())

	exp := "Excluded items:\n- Item_Stick: Blacklisted\nWarnings:\n- none\n"
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, exp, string(content))
	assert.Equal(t, exp, console.String())
}

func TestLogWriterFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summarized-data.log")

	lw, err := NewLogWriter(path, nil)
	require.NoError(t, err)

	var code int
	lw.exit = func(c int) { code = c }

	lw.Print("Warnings:")
	lw.Fatal("Unknown workshop currency Gold for Workshop_Knife")

	assert.Equal(t, 1, code)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Equal(t,
		"[FATAL] Unknown workshop currency Gold for Workshop_Knife",
		lines[len(lines)-1])
}

func TestLogWriterBadPath(t *testing.T) {
	_, err := NewLogWriter(filepath.Join(t.TempDir(), "no", "file.log"), nil)
	assert.Error(t, err)
}
