// Package mining implements frequent-itemset mining and association rule
// generation over small in-memory transaction sets.
//
// The pipeline is: build a TransactionSet from tokenized records, run Mine
// to obtain frequent itemsets via level-wise Apriori enumeration, then run
// GenerateRules to derive rules with support, confidence, and lift. All
// types are immutable value objects once constructed and every function is
// a pure computation; the package does no I/O and holds no global state.
package mining

import (
	"sort"
	"strings"
)

// An Itemset is a set of unique string tokens held in a canonical form:
// sorted ascending with duplicates removed. Two itemsets built from the
// same tokens in any order compare equal via Key. The zero value is the
// empty itemset.
type Itemset []string

// NewItemset builds a canonical itemset from the given items. Duplicates
// are dropped and the result is sorted, so construction order never leaks
// into identity.
func NewItemset(items ...string) Itemset {
	if len(items) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(items))
	set := make(Itemset, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		set = append(set, item)
	}

	sort.Strings(set)
	return set
}

// Key returns a canonical string identity for the itemset, suitable for use
// as a map key and for stable lexicographic ordering. Items are joined with
// the ASCII unit separator, which cannot appear in tokenized input.
func (s Itemset) Key() string {
	return strings.Join(s, "\x1f")
}

// String renders the itemset as "{a, b, c}" for display and error messages.
func (s Itemset) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}

// Contains reports whether the itemset includes the given item. Runs a
// binary search over the canonical ordering.
func (s Itemset) Contains(item string) bool {
	i := sort.SearchStrings(s, item)
	return i < len(s) && s[i] == item
}

// SubsetOf reports whether every item in s is present in other. Both sets
// are sorted, so this is a single merge pass.
func (s Itemset) SubsetOf(other Itemset) bool {
	if len(s) > len(other) {
		return false
	}

	j := 0
	for _, item := range s {
		for j < len(other) && other[j] < item {
			j++
		}
		if j >= len(other) || other[j] != item {
			return false
		}
		j++
	}
	return true
}

// Union returns the canonical union of s and other.
func (s Itemset) Union(other Itemset) Itemset {
	merged := make([]string, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return NewItemset(merged...)
}

// Difference returns the canonical set of items in s that are not in other.
func (s Itemset) Difference(other Itemset) Itemset {
	diff := make(Itemset, 0, len(s))
	for _, item := range s {
		if !other.Contains(item) {
			diff = append(diff, item)
		}
	}
	if len(diff) == 0 {
		return nil
	}
	return diff
}

// Extend returns a new canonical itemset with one additional item. If the
// item is already present the original set is returned unchanged.
func (s Itemset) Extend(item string) Itemset {
	if s.Contains(item) {
		return s
	}
	extended := make([]string, 0, len(s)+1)
	extended = append(extended, s...)
	extended = append(extended, item)
	return NewItemset(extended...)
}

// subsetsWithout returns all size-(n-1) sub-itemsets of s, each formed by
// leaving out one item. Used for anti-monotone pruning and rule splits.
func (s Itemset) subsetsWithout() []Itemset {
	subs := make([]Itemset, 0, len(s))
	for i := range s {
		sub := make(Itemset, 0, len(s)-1)
		sub = append(sub, s[:i]...)
		sub = append(sub, s[i+1:]...)
		subs = append(subs, sub)
	}
	return subs
}
