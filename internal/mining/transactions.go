package mining

// A TransactionSet is an ordered, read-only collection of transactions, one
// itemset per input record. It is the sole input boundary of the mining
// core: tokenization happens upstream, reporting happens downstream.
type TransactionSet struct {
	transactions []Itemset
}

// NewTransactionSet builds a TransactionSet from the given itemsets. Each
// itemset is re-canonicalized so callers cannot smuggle in unsorted or
// duplicated tokens. Returns ErrEmptyTransactionSet when no transactions
// are supplied; mining over an empty corpus is undefined and must fail
// loudly rather than produce empty results without signal.
func NewTransactionSet(itemsets []Itemset) (*TransactionSet, error) {
	if len(itemsets) == 0 {
		return nil, ErrEmptyTransactionSet
	}

	transactions := make([]Itemset, len(itemsets))
	for i, set := range itemsets {
		transactions[i] = NewItemset(set...)
	}

	return &TransactionSet{transactions: transactions}, nil
}

// Len returns the number of transactions.
func (ts *TransactionSet) Len() int {
	return len(ts.transactions)
}

// Transaction returns the i-th transaction.
func (ts *TransactionSet) Transaction(i int) Itemset {
	return ts.transactions[i]
}

// Items returns every distinct item appearing in any transaction, sorted.
// These are the size-1 candidates for the first mining level.
func (ts *TransactionSet) Items() []string {
	var all []string
	for _, tx := range ts.transactions {
		all = append(all, tx...)
	}
	return NewItemset(all...)
}

// Support returns the fraction of transactions that contain the given
// itemset, in [0,1]. The empty itemset is rejected with ErrEmptyItemset:
// its support is trivially 1 and asking for it is always a caller bug.
//
// The scan is O(len(ts) * len(itemset)) per call. At the corpus sizes this
// package targets no caching is needed; Mine caches across levels itself.
func (ts *TransactionSet) Support(itemset Itemset) (float64, error) {
	if len(itemset) == 0 {
		return 0, ErrEmptyItemset
	}

	count := 0
	for _, tx := range ts.transactions {
		if itemset.SubsetOf(tx) {
			count++
		}
	}

	return float64(count) / float64(len(ts.transactions)), nil
}
