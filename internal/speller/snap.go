package speller

import (
	"math"
	"sync"

	"speller/internal/corpus"
)

// Vocabulary is the set of words the snapper may output, kept in first
// appearance order so ties resolve the same way on every run. The lock
// only matters once custom words start arriving while the service is
// already decoding.
type Vocabulary struct {
	mu    sync.RWMutex
	words []string
	seen  map[string]bool
}

// NewVocabulary collects the distinct correct words of the training
// set, in order of first appearance.
func NewVocabulary(pairs []corpus.Pair) *Vocabulary {
	v := &Vocabulary{seen: make(map[string]bool)}
	for _, p := range pairs {
		v.Add(p.Correct)
	}
	return v
}

// Add appends word unless it is already present.
func (v *Vocabulary) Add(word string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.seen[word] {
		return
	}
	v.seen[word] = true
	v.words = append(v.words, word)
}

// Remove deletes word, preserving the order of the rest.
func (v *Vocabulary) Remove(word string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.seen[word] {
		return
	}
	delete(v.seen, word)
	for i, w := range v.words {
		if w == word {
			v.words = append(v.words[:i], v.words[i+1:]...)
			break
		}
	}
}

func (v *Vocabulary) Contains(word string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.seen[word]
}

func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.words)
}

// Words returns a copy of the vocabulary in iteration order.
func (v *Vocabulary) Words() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Snap maps candidate onto the nearest vocabulary word. An exact hit
// returns immediately; otherwise a linear scan picks the first word
// with the minimum distance. With an empty vocabulary there is nothing
// to compare against and the candidate comes back unchanged.
func (v *Vocabulary) Snap(candidate string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.seen[candidate] {
		return candidate
	}
	best := candidate
	bestScore := math.MaxInt
	for _, w := range v.words {
		if d := positionalDistance(w, candidate); d < bestScore {
			bestScore = d
			best = w
		}
	}
	return best
}

// positionalDistance is length difference plus mismatches at the same
// index over the shared prefix length. Deliberately not an edit
// distance: a shifted suffix counts every position, and outputs depend
// on that.
func positionalDistance(word, candidate string) int {
	dist := len(word) - len(candidate)
	if dist < 0 {
		dist = -dist
	}
	n := min(len(word), len(candidate))
	for i := 0; i < n; i++ {
		if word[i] != candidate[i] {
			dist++
		}
	}
	return dist
}
