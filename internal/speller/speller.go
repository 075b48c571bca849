// Package speller corrects misspelled words with a character-level
// noisy-channel model: per-letter transition and emission probabilities
// estimated from (correct, typed) pairs, Viterbi decoding of each
// observed word, and a final snap onto the known vocabulary.
package speller

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"speller/internal/corpus"
	"speller/internal/customvocab"
	"speller/pkg/options"
)

// =====================

// SpellCorrector ties the trained model and vocabulary together. The
// model and vocabulary are built once in New and only the custom-word
// surface mutates anything afterwards, so decoding different words
// concurrently needs no coordination.
type SpellCorrector struct {
	config options.SpellerOptions
	model  *Model
	vocab  *Vocabulary
	store  *customvocab.Store
}

// New trains the model on pairs and builds the snap vocabulary. store
// may be nil; when present its words are merged into the vocabulary
// and kept in sync by AddCustomWord/RemoveCustomWord.
func New(pairs []corpus.Pair, store *customvocab.Store, opts ...options.Option) *SpellCorrector {
	cfg := options.DefaultOptions
	for _, o := range opts {
		o.Apply(&cfg)
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	sc := &SpellCorrector{
		config: cfg,
		model:  Train(pairs),
		vocab:  NewVocabulary(pairs),
		store:  store,
	}
	sc.loadCustomWords()
	return sc
}

func (sc *SpellCorrector) loadCustomWords() {
	if sc.store == nil {
		return
	}
	words, err := sc.store.All(context.Background())
	if err != nil {
		slog.Warn("loading custom words", "error", err)
		return
	}
	// SMembers order is unspecified; sort so the merged vocabulary is
	// identical across runs.
	sort.Strings(words)
	for _, w := range words {
		sc.vocab.Add(strings.ToLower(w))
	}
}

// Correct decodes one word and snaps it onto the vocabulary. It never
// fails: unseen statistics are floored, the decode keeps the input
// length, and an empty vocabulary hands the decoded word back as is.
func (sc *SpellCorrector) Correct(word string) string {
	lw := strings.ToLower(word)
	if lw == "" {
		return ""
	}
	decoded := sc.model.Decode(lw, sc.config.FloorProbability)
	return sc.vocab.Snap(decoded)
}

// CorrectWords corrects a batch of independent words, at most
// MaxWorkers at a time. Only context cancellation can produce an
// error; each word's result lands at its own index.
func (sc *SpellCorrector) CorrectWords(ctx context.Context, words []string) ([]string, error) {
	out := make([]string, len(words))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.config.MaxWorkers)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = sc.Correct(w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// CorrectText corrects every word token of text in place, leaving
// whitespace, digits and punctuation untouched and restoring the
// original token's Title/UPPER casing on replacements.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	tokens := tokenize(text)
	out := make([]string, len(tokens))
	copy(out, tokens)
	var words []CorrectedWord

	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		lw := strings.ToLower(tok)
		if sc.config.FilterShortWords && len(lw) <= sc.config.MinWordLength {
			continue
		}
		fixed := sc.Correct(lw)
		if fixed == lw {
			continue
		}
		repl := fixed
		if sc.config.PreserveCase {
			if isTitle(tok) {
				repl = title(fixed)
			} else if isUpper(tok) {
				repl = strings.ToUpper(fixed)
			}
		}
		out[i] = repl
		words = append(words, CorrectedWord{Token: tok, Corrected: repl, Position: i})
	}

	return CorrectionResult{
		Original:  text,
		Corrected: strings.Join(out, ""),
		Words:     words,
	}
}

// AddCustomWord adds a word to the snap vocabulary and, when a store
// is configured, persists it there. Safe for concurrent use; the
// vocabulary carries its own lock.
func (sc *SpellCorrector) AddCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if sc.store != nil {
		if err := sc.store.Add(ctx, lw); err != nil {
			return err
		}
	}
	sc.vocab.Add(lw)
	return nil
}

// RemoveCustomWord removes a word from the vocabulary and the store.
func (sc *SpellCorrector) RemoveCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if sc.store != nil {
		if err := sc.store.Remove(ctx, lw); err != nil {
			return err
		}
	}
	sc.vocab.Remove(lw)
	return nil
}

// Vocabulary exposes the snap vocabulary.
func (sc *SpellCorrector) Vocabulary() *Vocabulary { return sc.vocab }

// =====================
// Tokenization
// =====================

var (
	tokenRe = regexp.MustCompile(`[A-Za-z]+|\d+|\s+|[^\sA-Za-z0-9]`)
	wordRe  = regexp.MustCompile(`^[A-Za-z]+$`)
)

func tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool { return wordRe.MatchString(tok) }

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	return strings.ToUpper(s[:1]) == s[:1] && strings.ToLower(s[1:]) == s[1:]
}

func isUpper(s string) bool { return strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
