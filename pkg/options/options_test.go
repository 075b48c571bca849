package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 1e-6, DefaultOptions.FloorProbability)
	assert.False(t, DefaultOptions.FilterShortWords)
	assert.True(t, DefaultOptions.PreserveCase)
}

func TestApply(t *testing.T) {
	cfg := DefaultOptions
	for _, o := range []Option{
		WithFloorProbability(1e-9),
		WithMaxWorkers(16),
		WithShortWordFilter(3),
		WithoutCaseRestore(),
	} {
		o.Apply(&cfg)
	}

	assert.Equal(t, 1e-9, cfg.FloorProbability)
	assert.Equal(t, 16, cfg.MaxWorkers)
	assert.True(t, cfg.FilterShortWords)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.False(t, cfg.PreserveCase)
}

func TestInvalidValuesIgnored(t *testing.T) {
	cfg := DefaultOptions
	WithFloorProbability(0).Apply(&cfg)
	WithMaxWorkers(-1).Apply(&cfg)

	assert.Equal(t, DefaultOptions.FloorProbability, cfg.FloorProbability)
	assert.Equal(t, DefaultOptions.MaxWorkers, cfg.MaxWorkers)
}
