package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"speller/internal/corpus"
)

const testFloor = 1e-6

func identityPairs(words ...string) []corpus.Pair {
	pairs := make([]corpus.Pair, len(words))
	for i, w := range words {
		pairs[i] = corpus.Pair{Correct: w, Typed: w}
	}
	return pairs
}

func TestDecodeIdentity(t *testing.T) {
	m := Train(identityPairs("cat"))
	assert.Equal(t, "cat", m.Decode("cat", testFloor))
}

func TestDecodeKeepsLength(t *testing.T) {
	m := Train([]corpus.Pair{
		{Correct: "the", Typed: "teh"},
		{Correct: "cat", Typed: "kat"},
		{Correct: "spelling", Typed: "speling"},
	})
	for _, w := range []string{"a", "teh", "kat", "speling", "zzzzzzzzzz"} {
		assert.Len(t, m.Decode(w, testFloor), len(w))
	}
}

func TestDecodeCorrectsTrainedError(t *testing.T) {
	m := Train([]corpus.Pair{
		{Correct: "the", Typed: "teh"},
		{Correct: "cat", Typed: "cat"},
	})
	// Trained on the swapped pair, the channel strongly prefers
	// emitting "teh" from the intended "the".
	assert.Equal(t, "the", m.Decode("teh", testFloor))
	assert.Equal(t, "cat", m.Decode("cat", testFloor))
}

func TestDecodeEmptyWord(t *testing.T) {
	m := Train(identityPairs("cat"))
	assert.Equal(t, "", m.Decode("", testFloor))
}

func TestDecodeTieBreakIsAlphabetical(t *testing.T) {
	// With no training data every lookup hits the floor, all states
	// score identically, and the first alphabet letter must win at
	// every step.
	m := Train(nil)
	assert.Equal(t, "aa", m.Decode("zz", testFloor))
	assert.Equal(t, "aaaa", m.Decode("qwrt", testFloor))
}

func TestDecodeUnseenCharactersFloored(t *testing.T) {
	m := Train(identityPairs("cat"))
	// '7' never appears in any table; the floor keeps the decode
	// finite and the output stays on the alphabet.
	got := m.Decode("c7t", testFloor)
	assert.Len(t, got, 3)
	for i := 0; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], byte('a'))
		assert.LessOrEqual(t, got[i], byte('z'))
	}
}

func TestDecodeOrderIndependent(t *testing.T) {
	m := Train([]corpus.Pair{
		{Correct: "abc", Typed: "abc"},
		{Correct: "xyz", Typed: "xyz"},
	})
	first := []string{m.Decode("abc", testFloor), m.Decode("xyz", testFloor)}
	second := []string{m.Decode("xyz", testFloor), m.Decode("abc", testFloor)}
	assert.Equal(t, first[0], second[1])
	assert.Equal(t, first[1], second[0])
}

func TestDecodeDeterministic(t *testing.T) {
	m := Train([]corpus.Pair{
		{Correct: "the", Typed: "teh"},
		{Correct: "poetry", Typed: "peotry"},
	})
	want := m.Decode("peotry", testFloor)
	for i := 0; i < 10; i++ {
		assert.Equal(t, want, m.Decode("peotry", testFloor))
	}
}

func TestDecodeFallbackOnUnreachableStates(t *testing.T) {
	// Trained tables never hold a zero, so every state stays finite
	// under the floor. Hand-build a model with explicit zero emissions
	// for the observed character: every path scores minus infinity,
	// no state wins termination, and the observed word comes back
	// unchanged.
	m := &Model{
		Emissions:   make(map[byte]map[byte]float64),
		Transitions: make(map[byte]map[byte]float64),
	}
	for i := 0; i < len(alphabet); i++ {
		m.Emissions[alphabet[i]] = map[byte]float64{'z': 0}
	}

	assert.Equal(t, "z", m.Decode("z", testFloor))
}

func TestDecodeZeroFloorFallsBackToDefault(t *testing.T) {
	m := Train(identityPairs("cat"))
	assert.Equal(t, "cat", m.Decode("cat", 0))
}
