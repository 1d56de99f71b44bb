package app

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/output"
)

var (
	rulesSort  string
	rulesLimit int
	rulesItem  string

	rulesCmd = &cobra.Command{
		Use:   "rules",
		Short: "List the association rules from the last mining run",
		Long: `Display the association rules stored by the most recent 'textmine mine'.

Sort orders:
  confidence  by confidence, then lift, highest first (default)
  lift        by lift, then confidence, highest first
  support     by support, highest first

Use --item to keep only rules mentioning a specific token on either side.`,
		Example: `  # All stored rules
  textmine rules

  # The strongest correlations
  textmine rules --sort lift --limit 10

  # Rules involving "mining"
  textmine rules --item mining`,
		RunE: runRules,
	}
)

func init() {
	rulesCmd.Flags().StringVar(&rulesSort, "sort", "confidence", "sort by: confidence, lift, support")
	rulesCmd.Flags().IntVar(&rulesLimit, "limit", 0, "show at most this many rules (0 = all)")
	rulesCmd.Flags().StringVar(&rulesItem, "item", "", "only rules whose antecedent or consequent contains this item")

	RootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	if rulesSort != "confidence" && rulesSort != "lift" && rulesSort != "support" {
		return fmt.Errorf("invalid sort: %s (must be confidence, lift, or support)", rulesSort)
	}
	if rulesLimit < 0 {
		return fmt.Errorf("invalid limit: %d (must be non-negative)", rulesLimit)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rules, err := st.ListRules()
	if err != nil {
		return err
	}

	if rulesItem != "" {
		rules = filterRulesByItem(rules, rulesItem)
	}

	if len(rules) == 0 {
		if rulesItem != "" {
			fmt.Printf("No stored rules mention %q.\n", rulesItem)
		} else {
			fmt.Println("No rules stored. Run 'textmine mine' first.")
		}
		return nil
	}

	sortRules(rules, rulesSort)
	if rulesLimit > 0 && len(rules) > rulesLimit {
		rules = rules[:rulesLimit]
	}

	fmt.Print(output.RenderRuleTable(rules))
	return nil
}

// filterRulesByItem keeps rules that mention the item on either side.
func filterRulesByItem(rules []mining.Rule, item string) []mining.Rule {
	var filtered []mining.Rule
	for _, r := range rules {
		if r.Antecedent.Contains(item) || r.Consequent.Contains(item) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// sortRules orders rules by the chosen criterion with the antecedent key
// as the stable tie-break.
func sortRules(rules []mining.Rule, sortBy string) {
	switch sortBy {
	case "confidence":
		sort.SliceStable(rules, func(i, j int) bool {
			if rules[i].Confidence != rules[j].Confidence {
				return rules[i].Confidence > rules[j].Confidence
			}
			if rules[i].Lift != rules[j].Lift {
				return rules[i].Lift > rules[j].Lift
			}
			return rules[i].Antecedent.Key() < rules[j].Antecedent.Key()
		})
	case "lift":
		sort.SliceStable(rules, func(i, j int) bool {
			if rules[i].Lift != rules[j].Lift {
				return rules[i].Lift > rules[j].Lift
			}
			if rules[i].Confidence != rules[j].Confidence {
				return rules[i].Confidence > rules[j].Confidence
			}
			return rules[i].Antecedent.Key() < rules[j].Antecedent.Key()
		})
	case "support":
		sort.SliceStable(rules, func(i, j int) bool {
			if rules[i].Support != rules[j].Support {
				return rules[i].Support > rules[j].Support
			}
			return rules[i].Antecedent.Key() < rules[j].Antecedent.Key()
		})
	}
}
