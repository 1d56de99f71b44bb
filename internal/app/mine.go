package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/output"
)

var (
	mineMinSupport    float64
	mineMinConfidence float64
	mineMaxSize       int
	mineQuiet         bool

	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "Mine frequent itemsets and association rules",
		Long: `Run the mining pipeline over the ingested corpus: enumerate frequent
itemsets level by level (Apriori with anti-monotone pruning), then derive
association rules from every non-trivial split of each frequent itemset.

Thresholds:
  --min-support     minimum fraction of transactions an itemset must appear
                    in, in (0,1]
  --min-confidence  minimum conditional likelihood a rule must reach, in (0,1]
  --max-size        largest itemset size to enumerate

Results are stored in the database, replacing any previous run, and
printed as tables. Lift above 1 indicates the antecedent and consequent
occur together more often than independence predicts.`,
		Example: `  # Mine with the default thresholds (support 0.25, confidence 0.6)
  textmine mine

  # Ask for stronger evidence
  textmine mine --min-support 0.4 --min-confidence 0.8

  # Allow larger itemsets
  textmine mine --max-size 4

  # Store results without printing tables
  textmine mine --quiet`,
		RunE: runMine,
	}
)

func init() {
	defaults := mining.DefaultConfig()
	mineCmd.Flags().Float64Var(&mineMinSupport, "min-support", defaults.MinSupport, "minimum itemset support in (0,1]")
	mineCmd.Flags().Float64Var(&mineMinConfidence, "min-confidence", defaults.MinConfidence, "minimum rule confidence in (0,1]")
	mineCmd.Flags().IntVar(&mineMaxSize, "max-size", defaults.MaxItemsetSize, "maximum itemset size")
	mineCmd.Flags().BoolVar(&mineQuiet, "quiet", false, "suppress table output")

	RootCmd.AddCommand(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg := mining.Config{
		MinSupport:     mineMinSupport,
		MinConfidence:  mineMinConfidence,
		MaxItemsetSize: mineMaxSize,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var spinner *output.Spinner
	if !mineQuiet && isatty.IsTerminal(os.Stdout.Fd()) {
		spinner = output.NewSpinner("Mining frequent itemsets")
		spinner.Start()
	}

	frequent, rules, err := mineStored(st, cfg)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if mineQuiet {
		return nil
	}

	fmt.Printf("Frequent itemsets (support >= %.2f, up to size %d):\n\n", cfg.MinSupport, cfg.MaxItemsetSize)
	fmt.Print(output.RenderItemsetTable(frequent))

	fmt.Printf("\nAssociation rules (confidence >= %.2f):\n\n", cfg.MinConfidence)
	fmt.Print(output.RenderRuleTable(rules))

	fmt.Printf("\n%d frequent itemsets, %d rules stored.\n", len(frequent), len(rules))

	return nil
}
