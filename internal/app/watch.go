package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/output"
	"github.com/blackwell-systems/textmine/internal/watcher"
)

var (
	watchMinSupport    float64
	watchMinConfidence float64
	watchMaxSize       int
	watchMinTokenLen   int
	watchNoStopwords   bool

	watchCmd = &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-mine automatically whenever the corpus file changes",
		Long: `Watch a corpus file and re-run the full pipeline (ingest, mine, rule
generation) each time the file is saved. Useful while curating a corpus:
edit the file in one terminal and watch the rules shift in another.

The pipeline runs once on startup, then again after every change, with a
short debounce so editor save bursts trigger a single run. Each run
replaces the stored corpus and results. Press Ctrl+C to stop.`,
		Example: `  # Watch with default thresholds
  textmine watch corpus.txt

  # Watch with stricter thresholds
  textmine watch corpus.txt --min-support 0.4 --min-confidence 0.8`,
		Args: cobra.ExactArgs(1),
		RunE: runWatch,
	}
)

func init() {
	defaults := mining.DefaultConfig()
	watchCmd.Flags().Float64Var(&watchMinSupport, "min-support", defaults.MinSupport, "minimum itemset support in (0,1]")
	watchCmd.Flags().Float64Var(&watchMinConfidence, "min-confidence", defaults.MinConfidence, "minimum rule confidence in (0,1]")
	watchCmd.Flags().IntVar(&watchMaxSize, "max-size", defaults.MaxItemsetSize, "maximum itemset size")
	watchCmd.Flags().IntVar(&watchMinTokenLen, "min-token-len", 1, "drop tokens shorter than this many characters")
	watchCmd.Flags().BoolVar(&watchNoStopwords, "no-stopwords", false, "ignore the stopword file")

	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	corpusPath := args[0]

	cfg := mining.Config{
		MinSupport:     watchMinSupport,
		MinConfidence:  watchMinConfidence,
		MaxItemsetSize: watchMaxSize,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if watchMinTokenLen < 1 {
		return fmt.Errorf("invalid min-token-len: %d (must be at least 1)", watchMinTokenLen)
	}

	opts, err := tokenizerOptions(watchMinTokenLen, watchNoStopwords)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	runPipeline := func() {
		start := time.Now()
		kept, _, err := ingestFile(st, corpusPath, opts, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: ingest failed: %v\n", err)
			return
		}
		frequent, rules, err := mineStored(st, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: mining failed: %v\n", err)
			return
		}
		fmt.Printf("[%s] %d transactions -> %d itemsets, %d rules (%.0fms)\n",
			time.Now().Format("15:04:05"), kept, len(frequent), len(rules),
			float64(time.Since(start).Microseconds())/1000)
		if len(rules) > 0 {
			fmt.Print(output.RenderRuleTable(rules))
		}
	}

	// Initial pass before waiting for changes.
	runPipeline()

	w, err := watcher.New(corpusPath, runPipeline)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", corpusPath)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStopping watch.")
	return w.Stop()
}
