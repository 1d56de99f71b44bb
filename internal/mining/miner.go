package mining

import (
	"fmt"
	"sort"
)

// A FrequentItemset pairs an itemset with its support at mining time. Its
// support is always >= the MinSupport it was mined with; it is a plain
// value object with no lifecycle beyond creation and reporting.
type FrequentItemset struct {
	Items   Itemset
	Support float64
}

// Mine enumerates frequent itemsets over the transaction set using
// level-wise Apriori generation:
//
//	level 1: every distinct item is a candidate
//	level k+1: extend each frequent size-k itemset by one absent item,
//	skipping any candidate with a size-k subset not already known frequent
//	(support never grows with set size, so such candidates cannot qualify)
//
// Enumeration stops when a level yields no frequent itemsets or when
// MaxItemsetSize is reached. The result is sorted by size, then
// lexicographically, so repeated runs over the same input are identical.
func Mine(ts *TransactionSet, cfg Config) ([]FrequentItemset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if ts == nil || ts.Len() == 0 {
		return nil, ErrEmptyTransactionSet
	}

	items := ts.Items()

	var frequent []FrequentItemset
	frequentKeys := make(map[string]struct{})

	// Level 1: every distinct item.
	var frontier []Itemset
	for _, item := range items {
		candidate := Itemset{item}
		sup, err := ts.Support(candidate)
		if err != nil {
			return nil, fmt.Errorf("support of %s: %w", candidate, err)
		}
		if sup >= cfg.MinSupport {
			frequent = append(frequent, FrequentItemset{Items: candidate, Support: sup})
			frequentKeys[candidate.Key()] = struct{}{}
			frontier = append(frontier, candidate)
		}
	}

	for size := 2; size <= cfg.MaxItemsetSize && len(frontier) > 0; size++ {
		candidates := candidatesFor(frontier, items, frequentKeys)

		var next []Itemset
		for _, candidate := range candidates {
			sup, err := ts.Support(candidate)
			if err != nil {
				return nil, fmt.Errorf("support of %s: %w", candidate, err)
			}
			if sup >= cfg.MinSupport {
				frequent = append(frequent, FrequentItemset{Items: candidate, Support: sup})
				frequentKeys[candidate.Key()] = struct{}{}
				next = append(next, candidate)
			}
		}

		frontier = next
	}

	sort.Slice(frequent, func(i, j int) bool {
		if len(frequent[i].Items) != len(frequent[j].Items) {
			return len(frequent[i].Items) < len(frequent[j].Items)
		}
		return frequent[i].Items.Key() < frequent[j].Items.Key()
	})

	return frequent, nil
}

// candidatesFor builds the next level's deduplicated candidate list by
// extending each frequent itemset with every absent item, then applying
// anti-monotone pruning: a candidate survives only if all of its
// one-smaller subsets are known frequent. The same candidate can be
// reached via different extension paths, so dedup runs on canonical keys
// before any support is computed.
func candidatesFor(frontier []Itemset, items []string, frequentKeys map[string]struct{}) []Itemset {
	seen := make(map[string]struct{})
	var candidates []Itemset

	for _, base := range frontier {
		for _, item := range items {
			if base.Contains(item) {
				continue
			}

			candidate := base.Extend(item)
			key := candidate.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			if !allSubsetsFrequent(candidate, frequentKeys) {
				continue
			}
			candidates = append(candidates, candidate)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key() < candidates[j].Key()
	})

	return candidates
}

// allSubsetsFrequent reports whether every one-smaller subset of the
// candidate appears in the frequent key set.
func allSubsetsFrequent(candidate Itemset, frequentKeys map[string]struct{}) bool {
	for _, sub := range candidate.subsetsWithout() {
		if _, ok := frequentKeys[sub.Key()]; !ok {
			return false
		}
	}
	return true
}
