package speller

import (
	"math"

	"speller/pkg/options"
)

// alphabet is the decoder's entire state space, spelled out rather than
// derived so the 26 states are auditable.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Decode recovers the most probable intended letter sequence for one
// observed word via Viterbi over the alphabet states, in log space to
// avoid underflow. The result always has the same length as observed.
// floor stands in for any missing table entry; see options.
//
// The inner kernel is O(len(observed) * 26^2).
func (m *Model) Decode(observed string, floor float64) string {
	n := len(observed)
	if n == 0 {
		return ""
	}
	if floor <= 0 {
		floor = options.DefaultOptions.FloorProbability
	}

	k := len(alphabet)
	prev := make([]float64, k)
	curr := make([]float64, k)
	back := make([][]int, n)

	for si := 0; si < k; si++ {
		s := alphabet[si]
		prev[si] = math.Log(prob(m.Transitions, startSentinel, s, floor)) +
			math.Log(prob(m.Emissions, s, observed[0], floor))
	}

	for t := 1; t < n; t++ {
		back[t] = make([]int, k)
		for si := 0; si < k; si++ {
			s := alphabet[si]
			best := math.Inf(-1)
			bestPrev := -1
			for pi := 0; pi < k; pi++ {
				p := prev[pi] +
					math.Log(prob(m.Transitions, alphabet[pi], s, floor)) +
					math.Log(prob(m.Emissions, s, observed[t], floor))
				// Strict comparison: on ties the earliest letter in
				// alphabet order wins. Keep it that way; results are
				// reproducible only under this tie-break.
				if p > best {
					best = p
					bestPrev = pi
				}
			}
			curr[si] = best
			back[t][si] = bestPrev
		}
		prev, curr = curr, prev
	}

	bestState := -1
	bestScore := math.Inf(-1)
	for si := 0; si < k; si++ {
		total := prev[si] + math.Log(prob(m.Transitions, alphabet[si], endSentinel, floor))
		if total > bestScore {
			bestScore = total
			bestState = si
		}
	}
	// Unreachable while floor > 0, but a decoder that indexes with -1
	// on bad input is worse than one that gives the word back.
	if bestState < 0 {
		return observed
	}

	out := make([]byte, n)
	s := bestState
	for t := n - 1; t > 0; t-- {
		out[t] = alphabet[s]
		s = back[t][s]
	}
	out[0] = alphabet[s]
	return string(out)
}
