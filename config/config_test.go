package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keymaze/config"
	"github.com/katalvlaran/keymaze/internal/mazes"
	"github.com/katalvlaran/keymaze/solver"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "keys", cfg.Variant)
	assert.Equal(t, "depth-first", cfg.Search.Strategy)
	assert.Equal(t, 3, cfg.Search.RepeatCeiling)
	assert.True(t, cfg.Search.Exhaustive)
	assert.Equal(t, 1<<16, cfg.Search.QueueCapacity)

	got, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

// TestLoad overrides a few fields and keeps the rest at their defaults.
func TestLoad(t *testing.T) {
	path := write(t, `
variant: portals
timeout: 1m30s
propagate:
  mode: parallel
  workers: 4
search:
  strategy: best-first
  queue_capacity: 1024
portal:
  recursive: true
  max_depth: 10
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "portals", cfg.Variant)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.Equal(t, "parallel", cfg.Propagate.Mode)
	assert.Equal(t, 4, cfg.Propagate.Workers)
	assert.Equal(t, "best-first", cfg.Search.Strategy)
	assert.Equal(t, 1024, cfg.Search.QueueCapacity)
	assert.Equal(t, 3, cfg.Search.RepeatCeiling, "untouched default")
	assert.True(t, cfg.Search.LowerBound, "untouched default")
	assert.True(t, cfg.Portal.Recursive)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "search: [not, a, map]"))
	assert.Error(t, err)

	bad := []string{
		"variant: hex",
		"timeout: -1s",
		"propagate: {mode: sideways}",
		"propagate: {workers: -2}",
		"search: {strategy: random}",
		"search: {repeat_ceiling: -1}",
		"search: {queue_capacity: 0}",
		"portal: {max_depth: -1}",
		"log: {level: loud}",
		"log: {format: xml}",
	}
	for _, body := range bad {
		_, err := config.Load(write(t, body))
		assert.ErrorIs(t, err, config.ErrInvalid, body)
	}
}

// TestSolverOptions runs the solver with the translated options.
func TestSolverOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Propagate.Mode = "parallel"
	cfg.Propagate.Workers = 2
	cfg.Search.Strategy = "best-first"
	require.NoError(t, cfg.Validate())

	rep, err := solver.SolveKeys(context.Background(), strings.NewReader(mazes.Gated15), cfg.SolverOptions())
	require.NoError(t, err)
	assert.Equal(t, 15, rep.Distance)
	assert.Equal(t, 2, rep.Propagation.Workers)

	cfg.Variant = "portals"
	cfg.Portal.Recursive = true
	rep, err = solver.SolvePortals(context.Background(), strings.NewReader(mazes.Donut), cfg.SolverOptions())
	require.NoError(t, err)
	assert.Equal(t, 28, rep.Distance)
}
