package app

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/textmine/internal/mining"
	"github.com/blackwell-systems/textmine/internal/output"
)

var (
	itemsetsSort  string
	itemsetsLimit int

	itemsetsCmd = &cobra.Command{
		Use:   "itemsets",
		Short: "List the frequent itemsets from the last mining run",
		Long: `Display the frequent itemsets stored by the most recent 'textmine mine'.

Sort orders:
  items    by size, then alphabetically (default)
  support  by support, highest first
  size     by itemset size, largest first`,
		Example: `  # All stored itemsets
  textmine itemsets

  # The ten best-supported itemsets
  textmine itemsets --sort support --limit 10`,
		RunE: runItemsets,
	}
)

func init() {
	itemsetsCmd.Flags().StringVar(&itemsetsSort, "sort", "items", "sort by: items, support, size")
	itemsetsCmd.Flags().IntVar(&itemsetsLimit, "limit", 0, "show at most this many itemsets (0 = all)")

	RootCmd.AddCommand(itemsetsCmd)
}

func runItemsets(cmd *cobra.Command, args []string) error {
	if itemsetsSort != "items" && itemsetsSort != "support" && itemsetsSort != "size" {
		return fmt.Errorf("invalid sort: %s (must be items, support, or size)", itemsetsSort)
	}
	if itemsetsLimit < 0 {
		return fmt.Errorf("invalid limit: %d (must be non-negative)", itemsetsLimit)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	itemsets, err := st.ListItemsets()
	if err != nil {
		return err
	}

	if len(itemsets) == 0 {
		fmt.Println("No frequent itemsets stored. Run 'textmine mine' first.")
		return nil
	}

	sortItemsets(itemsets, itemsetsSort)
	if itemsetsLimit > 0 && len(itemsets) > itemsetsLimit {
		itemsets = itemsets[:itemsetsLimit]
	}

	fmt.Print(output.RenderItemsetTable(itemsets))
	return nil
}

// sortItemsets orders itemsets by the chosen criterion with the canonical
// key as the stable tie-break.
func sortItemsets(itemsets []mining.FrequentItemset, sortBy string) {
	switch sortBy {
	case "support":
		sort.SliceStable(itemsets, func(i, j int) bool {
			if itemsets[i].Support != itemsets[j].Support {
				return itemsets[i].Support > itemsets[j].Support
			}
			return itemsets[i].Items.Key() < itemsets[j].Items.Key()
		})
	case "size":
		sort.SliceStable(itemsets, func(i, j int) bool {
			if len(itemsets[i].Items) != len(itemsets[j].Items) {
				return len(itemsets[i].Items) > len(itemsets[j].Items)
			}
			return itemsets[i].Items.Key() < itemsets[j].Items.Key()
		})
	case "items":
		sort.SliceStable(itemsets, func(i, j int) bool {
			if len(itemsets[i].Items) != len(itemsets[j].Items) {
				return len(itemsets[i].Items) < len(itemsets[j].Items)
			}
			return itemsets[i].Items.Key() < itemsets[j].Items.Key()
		})
	}
}
