package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// RootCmd is the root command for textmine
	RootCmd = &cobra.Command{
		Use:   "textmine",
		Short: "Association rule mining over small text corpora",
		Long: `textmine converts text records into itemset transactions, mines frequent
itemsets with a level-wise Apriori pass, and derives association rules with
support, confidence, and lift.

Quick Start:
  1. textmine ingest corpus.txt     # one record per line
  2. textmine mine                  # mine itemsets and rules
  3. textmine rules --sort lift     # inspect the results

Features:
  • Tokenization with stopword and token-length filtering
  • Frequent-itemset mining with anti-monotone pruning
  • Rule generation with confidence and lift metrics
  • Results cached in SQLite for instant re-display
  • Watch mode that re-mines whenever the corpus file changes

Examples:
  # Ingest a corpus and mine with custom thresholds
  textmine ingest corpus.txt
  textmine mine --min-support 0.3 --min-confidence 0.7

  # Show the strongest correlations
  textmine rules --sort lift --limit 10

  # Re-mine automatically while editing the corpus
  textmine watch corpus.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, _ := getDBPath()
			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Println("textmine: association rule mining over text corpora")
				fmt.Println()
				fmt.Println("Run 'textmine ingest <file>' to get started.")
				fmt.Println("Run 'textmine --help' for the full reference.")
			} else {
				fmt.Println("textmine: association rule mining over text corpora")
				fmt.Println()
				fmt.Println("Tip: Run 'textmine status' to check the current corpus.")
				fmt.Println("     Run 'textmine rules' to view mined rules.")
				fmt.Println("     Run 'textmine --help' for all commands.")
			}
			return nil
		},
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (default: ~/.textmine/textmine.db)")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// getDBPath returns the database path, using the flag value or default
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	textmineDir := filepath.Join(home, ".textmine")
	if err := os.MkdirAll(textmineDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create textmine directory: %w", err)
	}

	return filepath.Join(textmineDir, "textmine.db"), nil
}
