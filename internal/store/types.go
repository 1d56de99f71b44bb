package store

import "time"

// Transaction is one ingested corpus record: the original line plus its
// tokenized itemset.
type Transaction struct {
	ID         int64
	Source     string
	Tokens     []string
	IngestedAt time.Time
}

// Run records the parameters and result counts of a mining run. The
// itemsets and rules tables always hold the output of the latest run.
type Run struct {
	ID               int64
	MinedAt          time.Time
	MinSupport       float64
	MinConfidence    float64
	MaxItemsetSize   int
	TransactionCount int
	ItemsetCount     int
	RuleCount        int
}
