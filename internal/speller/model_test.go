package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speller/internal/corpus"
)

func TestTrainRowsSumToOne(t *testing.T) {
	pairs := []corpus.Pair{
		{Correct: "the", Typed: "teh"},
		{Correct: "the", Typed: "thw"},
		{Correct: "cat", Typed: "kat"},
		{Correct: "spelling", Typed: "speling"},
	}
	m := Train(pairs)

	for c, row := range m.Emissions {
		sum := 0.0
		for _, p := range row {
			assert.Greater(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "emission row %q", string(c))
	}
	for a, row := range m.Transitions {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "transition row %q", string(a))
	}
}

func TestTrainTruncatingAlignment(t *testing.T) {
	// "spelling" vs "speling": only the first 7 positions align, so the
	// trailing 'g' of the correct word contributes no emission count.
	m := Train([]corpus.Pair{{Correct: "spelling", Typed: "speling"}})

	require.Contains(t, m.Emissions, byte('s'))
	assert.NotContains(t, m.Emissions, byte('g'))

	// Positions 0-3 match; position 4 pairs l/i, 5 pairs i/n, 6 pairs n/g.
	assert.Equal(t, 0.5, m.Emissions['l']['l'])
	assert.Equal(t, 0.5, m.Emissions['l']['i'])
	assert.Equal(t, 1.0, m.Emissions['i']['n'])
	assert.Equal(t, 1.0, m.Emissions['n']['g'])
}

func TestTrainSentinelTransitions(t *testing.T) {
	m := Train([]corpus.Pair{
		{Correct: "cat", Typed: "cat"},
		{Correct: "car", Typed: "car"},
	})

	require.Contains(t, m.Transitions, startSentinel)
	assert.Equal(t, 1.0, m.Transitions[startSentinel]['c'])
	assert.Equal(t, 1.0, m.Transitions['t'][endSentinel])
	assert.Equal(t, 1.0, m.Transitions['r'][endSentinel])
	assert.Equal(t, 0.5, m.Transitions['a']['t'])
	assert.Equal(t, 0.5, m.Transitions['a']['r'])

	// The end sentinel is only ever a destination.
	assert.NotContains(t, m.Transitions, endSentinel)
}

func TestTrainAbsentRowsStayAbsent(t *testing.T) {
	m := Train([]corpus.Pair{{Correct: "cat", Typed: "cat"}})

	assert.NotContains(t, m.Emissions, byte('z'))
	assert.NotContains(t, m.Transitions, byte('z'))
	assert.Equal(t, 1e-6, prob(m.Emissions, 'z', 'z', 1e-6))
	assert.Equal(t, 1e-6, prob(m.Emissions, 'c', 'z', 1e-6))
}

func TestTrainEmpty(t *testing.T) {
	m := Train(nil)
	assert.Empty(t, m.Emissions)
	assert.Empty(t, m.Transitions)
}
