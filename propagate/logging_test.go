package propagate_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/keymaze/internal/mazes"
	"github.com/katalvlaran/keymaze/propagate"
)

func TestWithLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	calls := 0
	_, p := run(t, mazes.Line8,
		propagate.WithOnSweep(func(int, int) { calls++ }),
		propagate.WithLogger(logrus.NewEntry(logger)),
	)

	sweeps := p.Stats().Sweeps
	assert.Equal(t, sweeps, calls)
	assert.Len(t, hook.AllEntries(), sweeps)
	last := hook.LastEntry()
	assert.Equal(t, "propagation sweep", last.Message)
	assert.Equal(t, 0, last.Data["changed"], "the final sweep is quiet")
}
