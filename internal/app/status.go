package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/output"
	"github.com/blackwell-systems/textmine/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show corpus and mining run statistics",
	Long: `Display the current state of the textmine database.

Shows:
  • Database location
  • Number of ingested transactions and distinct items
  • Parameters and result counts of the last mining run
  • Whether stored results are stale relative to the corpus`,
	Example: `  # Check status
  textmine status`,
	RunE: runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No database found. Run 'textmine ingest <file>' to get started.")
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListTransactions()
	if err != nil {
		if errors.Is(err, store.ErrNotInitialized) {
			fmt.Println("Database is empty. Run 'textmine ingest <file>' to get started.")
			return nil
		}
		return err
	}

	var allTokens []string
	for _, rec := range records {
		allTokens = append(allTokens, rec.Tokens...)
	}
	distinctItems := len(mining.NewItemset(allTokens...))

	fmt.Printf("Database:     %s\n", path)
	fmt.Printf("Transactions: %d\n", len(records))
	fmt.Printf("Items:        %d distinct\n", distinctItems)
	fmt.Println()

	run, err := st.LatestRun()
	if err != nil {
		return err
	}
	if run == nil {
		fmt.Println("No mining run recorded. Run 'textmine mine' to analyze the corpus.")
		return nil
	}

	fmt.Printf("Last run:     %s\n", output.FormatRelativeTime(run.MinedAt))
	fmt.Printf("Thresholds:   support >= %.2f, confidence >= %.2f, max size %d\n",
		run.MinSupport, run.MinConfidence, run.MaxItemsetSize)
	fmt.Printf("Results:      %d frequent itemsets, %d rules\n", run.ItemsetCount, run.RuleCount)

	if run.TransactionCount != len(records) {
		fmt.Println()
		fmt.Printf("⚠ Corpus has changed since the last run (%d transactions then, %d now).\n",
			run.TransactionCount, len(records))
		fmt.Println("  Run 'textmine mine' to refresh the stored results.")
	}

	return nil
}
