package speller

import "speller/internal/corpus"

// Sentinels pad every correct word as "^word$" so first- and last-letter
// transitions are counted like interior ones. They are transition-table
// keys only, never decoder states.
const (
	startSentinel byte = '^'
	endSentinel   byte = '$'
)

// Model holds the trained noisy-channel tables.
//
// Emissions[c][t] is P(typed t | intended c); Transitions[a][b] is
// P(next b | previous a), with sentinels on the transition side. Rows
// exist only for characters actually observed in training; an absent
// row means "no data", not zero probability. Both tables are read-only
// after Train.
type Model struct {
	Emissions   map[byte]map[byte]float64
	Transitions map[byte]map[byte]float64
}

// Train estimates both tables from the full training set in one pass
// over the pairs plus a normalization sweep. Counts are integers, so
// the resulting probabilities are exactly reproducible.
func Train(pairs []corpus.Pair) *Model {
	emissions := make(map[byte]map[byte]int)
	transitions := make(map[byte]map[byte]int)

	for _, p := range pairs {
		// Index-aligned over the shorter word; trailing characters of
		// the longer one are dropped, not modeled as insertions or
		// deletions. Reference probabilities depend on this.
		n := min(len(p.Correct), len(p.Typed))
		for i := 0; i < n; i++ {
			bump(emissions, p.Correct[i], p.Typed[i])
		}

		padded := string(startSentinel) + p.Correct + string(endSentinel)
		for i := 0; i+1 < len(padded); i++ {
			bump(transitions, padded[i], padded[i+1])
		}
	}

	return &Model{
		Emissions:   normalize(emissions),
		Transitions: normalize(transitions),
	}
}

func bump(counts map[byte]map[byte]int, a, b byte) {
	row, ok := counts[a]
	if !ok {
		row = make(map[byte]int)
		counts[a] = row
	}
	row[b]++
}

func normalize(counts map[byte]map[byte]int) map[byte]map[byte]float64 {
	probs := make(map[byte]map[byte]float64, len(counts))
	for a, row := range counts {
		total := 0
		for _, c := range row {
			total += c
		}
		out := make(map[byte]float64, len(row))
		for b, c := range row {
			out[b] = float64(c) / float64(total)
		}
		probs[a] = out
	}
	return probs
}

// prob looks up table[a][b], substituting floor when either the row or
// the entry is missing. The decoder calls this at exactly two sites:
// the transition lookup and the emission lookup.
func prob(table map[byte]map[byte]float64, a, b byte, floor float64) float64 {
	if row, ok := table[a]; ok {
		if p, ok := row[b]; ok {
			return p
		}
	}
	return floor
}
