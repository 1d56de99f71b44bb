package mining

import (
	"fmt"
	"sort"
)

// A Rule is a directed association A → C between two disjoint, non-empty
// itemsets whose union was mined as frequent. Support is the support of
// the union; Confidence is support(A∪C)/support(A); Lift is
// Confidence/support(C), where 1 means statistical independence and values
// above 1 positive correlation.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Support    float64
	Confidence float64
	Lift       float64
}

// String renders the rule as "{a} -> {b, c}".
func (r Rule) String() string {
	return r.Antecedent.String() + " -> " + r.Consequent.String()
}

// GenerateRules derives association rules from the mined frequent itemsets.
// For every frequent itemset of size >= 2, each non-empty proper subset
// becomes an antecedent with the remainder as consequent; the rule is
// retained when its confidence meets minConfidence.
//
// Subset supports are looked up exclusively from the frequent itemsets
// passed in, never recomputed against the corpus. Under correct mining
// every subset of a frequent itemset is itself frequent, so the lookup
// always succeeds; if a caller passes a truncated list the affected rule is
// skipped rather than scored against inconsistent supports.
//
// Results are sorted by confidence, then lift, both descending, with the
// antecedent's lexicographic key ascending as the final tie-break.
func GenerateRules(frequentItemsets []FrequentItemset, minConfidence float64) ([]Rule, error) {
	if minConfidence <= 0 || minConfidence > 1 {
		return nil, fmt.Errorf("%w: min confidence %v must be in (0,1]", ErrInvalidThreshold, minConfidence)
	}

	supportByKey := make(map[string]float64, len(frequentItemsets))
	for _, fi := range frequentItemsets {
		supportByKey[fi.Items.Key()] = fi.Support
	}

	var rules []Rule
	for _, fi := range frequentItemsets {
		if len(fi.Items) < 2 {
			continue
		}

		for _, antecedent := range properSubsets(fi.Items) {
			consequent := fi.Items.Difference(antecedent)

			antSupport, ok := supportByKey[antecedent.Key()]
			if !ok {
				continue
			}
			conSupport, ok := supportByKey[consequent.Key()]
			if !ok {
				continue
			}

			// Unreachable when the inputs came from Mine: frequent
			// itemsets always have support >= MinSupport > 0.
			if antSupport == 0 || conSupport == 0 {
				return nil, fmt.Errorf("%w: rule %s -> %s", ErrZeroSupport, antecedent, consequent)
			}

			confidence := fi.Support / antSupport
			if confidence < minConfidence {
				continue
			}

			rules = append(rules, Rule{
				Antecedent: antecedent,
				Consequent: consequent,
				Support:    fi.Support,
				Confidence: confidence,
				Lift:       confidence / conSupport,
			})
		}
	}

	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Confidence != rules[j].Confidence {
			return rules[i].Confidence > rules[j].Confidence
		}
		if rules[i].Lift != rules[j].Lift {
			return rules[i].Lift > rules[j].Lift
		}
		return rules[i].Antecedent.Key() < rules[j].Antecedent.Key()
	})

	return rules, nil
}

// properSubsets enumerates every non-empty proper subset of the itemset in
// deterministic order. Itemsets are capped at MaxItemsetSize, so the 2^n
// enumeration stays tiny; a bitmask over the canonical ordering keeps the
// output reproducible.
func properSubsets(set Itemset) []Itemset {
	n := len(set)
	subsets := make([]Itemset, 0, (1<<n)-2)

	for mask := 1; mask < (1<<n)-1; mask++ {
		sub := make(Itemset, 0, n-1)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sub = append(sub, set[i])
			}
		}
		subsets = append(subsets, sub)
	}

	return subsets
}
