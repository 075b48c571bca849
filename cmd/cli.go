package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"speller/internal/corpus"
	"speller/internal/customvocab"
	"speller/internal/speller"
	"speller/pkg/options"
)

var (
	configPath string
	config     Config

	rootCmd = &cobra.Command{
		Use:   "speller",
		Short: "Noisy-channel spelling corrector",
		Long: "Trains per-character transition and emission probabilities from a\n" +
			"corpus of (correct, typed) pairs and corrects words by Viterbi\n" +
			"decoding plus a nearest-vocabulary snap.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config = loadConfig(configPath)
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP correction service",
		RunE:  runServe,
	}

	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Correct typed text interactively",
		RunE:  runREPL,
	}

	correctCmd = &cobra.Command{
		Use:   "correct [text]...",
		Short: "Correct the given text and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCorrect,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "speller.yaml", "path to yaml config file")
	rootCmd.AddCommand(serveCmd, replCmd, correctCmd)
}

// newCorrector loads the corpus and trains the model once; everything
// the commands do afterwards is read-only apart from custom words.
func newCorrector() (*speller.SpellCorrector, error) {
	start := time.Now()
	pairs, err := corpus.Load(config.CorpusPath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	var store *customvocab.Store
	if config.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Addr,
			Password: config.Redis.Password,
			DB:       config.Redis.DB,
		})
		store = customvocab.New(client)
	}

	opts := []options.Option{options.WithMaxWorkers(config.Workers)}
	if config.FilterShortWords {
		opts = append(opts, options.WithShortWordFilter(config.MinWordLength))
	}

	sc := speller.New(pairs, store, opts...)
	slog.Info("model trained",
		"pairs", len(pairs),
		"vocabulary", sc.Vocabulary().Len(),
		"duration", time.Since(start),
	)
	return sc, nil
}

func runCorrect(cmd *cobra.Command, args []string) error {
	sc, err := newCorrector()
	if err != nil {
		return err
	}
	res := sc.CorrectText(strings.Join(args, " "))
	fmt.Println(res.Corrected)
	return nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	sc, err := newCorrector()
	if err != nil {
		return err
	}
	fmt.Println("Model ready. Type text to correct (blank line to quit).")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		fmt.Println(sc.CorrectText(line).Corrected)
	}
	return scanner.Err()
}
