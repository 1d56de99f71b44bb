package app

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/blackwell-systems/textmine/internal/config"
	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/store"
	"github.com/blackwell-systems/textmine/internal/tokenizer"
)

// openStore opens the database at the configured path. Schema creation is
// left to the commands that write; read-only commands surface
// store.ErrNotInitialized on a fresh database.
func openStore() (*store.Store, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}

	st, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// tokenizerOptions assembles tokenizer options from the config directory's
// stopword file and the command-line flags.
func tokenizerOptions(minTokenLen int, noStopwords bool) (tokenizer.Options, error) {
	opts := tokenizer.Options{MinTokenLen: minTokenLen}
	if noStopwords {
		return opts, nil
	}

	dir, err := config.Dir()
	if err != nil {
		return opts, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	cfg, err := config.LoadStopwords(dir)
	if err != nil {
		return opts, fmt.Errorf("failed to load stopwords: %w", err)
	}
	opts.Stopwords = cfg.Stopwords
	return opts, nil
}

// ingestFile tokenizes the corpus file (one record per line) and stores the
// resulting transactions. Returns the number of transactions kept and the
// number of records dropped because nothing survived tokenization.
func ingestFile(st *store.Store, path string, opts tokenizer.Options, appendMode bool) (kept, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer f.Close()

	now := time.Now().UTC()
	var records []store.Transaction

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		tx := tokenizer.Tokenize(line, opts)
		if len(tx) == 0 {
			// Blank or punctuation-only records carry no items.
			if len(line) > 0 {
				skipped++
			}
			continue
		}
		records = append(records, store.Transaction{
			Source:     line,
			Tokens:     tx,
			IngestedAt: now,
		})
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	if len(records) == 0 {
		return 0, skipped, fmt.Errorf("corpus %s contains no usable records", path)
	}

	if appendMode {
		err = st.AppendTransactions(records)
	} else {
		err = st.ReplaceTransactions(records)
	}
	if err != nil {
		return 0, 0, err
	}

	return len(records), skipped, nil
}

// loadTransactionSet rebuilds the in-memory transaction set from the
// stored corpus.
func loadTransactionSet(st *store.Store) (*mining.TransactionSet, error) {
	records, err := st.ListTransactions()
	if err != nil {
		return nil, err
	}

	itemsets := make([]mining.Itemset, len(records))
	for i, rec := range records {
		itemsets[i] = mining.NewItemset(rec.Tokens...)
	}

	ts, err := mining.NewTransactionSet(itemsets)
	if err != nil {
		return nil, fmt.Errorf("stored corpus is unusable: %w", err)
	}
	return ts, nil
}

// mineStored runs the full pipeline over the stored corpus: mine frequent
// itemsets, generate rules, and persist both along with the run parameters.
func mineStored(st *store.Store, cfg mining.Config) ([]mining.FrequentItemset, []mining.Rule, error) {
	ts, err := loadTransactionSet(st)
	if err != nil {
		return nil, nil, err
	}

	frequent, err := mining.Mine(ts, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("mining failed: %w", err)
	}

	rules, err := mining.GenerateRules(frequent, cfg.MinConfidence)
	if err != nil {
		return nil, nil, fmt.Errorf("rule generation failed: %w", err)
	}

	run := store.Run{
		MinedAt:          time.Now().UTC(),
		MinSupport:       cfg.MinSupport,
		MinConfidence:    cfg.MinConfidence,
		MaxItemsetSize:   cfg.MaxItemsetSize,
		TransactionCount: ts.Len(),
	}
	if err := st.SaveRun(run, frequent, rules); err != nil {
		return nil, nil, fmt.Errorf("failed to save mining results: %w", err)
	}

	return frequent, rules, nil
}
