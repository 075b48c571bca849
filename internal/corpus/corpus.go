// Package corpus loads (correct, typed) training pairs from aspell-style
// word lists: one "correct: typed1 typed2 ..." entry per line.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// Pair is one observed spelling of a correct word.
type Pair struct {
	Correct string
	Typed   string
}

// Load reads training pairs from the file at path. The file is mapped
// read-only rather than copied; corpora run to tens of megabytes.
func Load(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if fi.Size() == 0 {
		return nil, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping corpus: %w", err)
	}
	defer data.Unmap()

	return Parse(bytes.NewReader(data))
}

// Parse reads training pairs from r. Lines without a colon are skipped.
// Every typed variant on a line yields its own pair, in line order.
func Parse(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	s := bufio.NewScanner(r)
	for s.Scan() {
		correct, rest, ok := strings.Cut(s.Text(), ":")
		if !ok {
			continue
		}
		correct = strings.ToLower(strings.TrimSpace(correct))
		if correct == "" {
			continue
		}
		for _, typed := range strings.Fields(rest) {
			pairs = append(pairs, Pair{Correct: correct, Typed: strings.ToLower(typed)})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return pairs, nil
}
