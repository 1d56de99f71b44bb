package mining

import "errors"

// Sentinel errors returned by the mining core. Callers should test for them
// with errors.Is; all of them indicate invalid input rather than a runtime
// failure, so there is nothing to retry.
var (
	// ErrEmptyItemset is returned when an empty itemset is passed where a
	// non-empty one is required (support queries, rule splits).
	ErrEmptyItemset = errors.New("mining: itemset must not be empty")

	// ErrEmptyTransactionSet is returned when a transaction set is built
	// from zero transactions. Support over an empty corpus is undefined,
	// so construction fails instead of letting later stages divide by zero.
	ErrEmptyTransactionSet = errors.New("mining: transaction set must not be empty")

	// ErrInvalidThreshold is returned when MinSupport or MinConfidence is
	// outside (0,1], or MaxItemsetSize is less than 1.
	ErrInvalidThreshold = errors.New("mining: threshold out of range")

	// ErrZeroSupport guards the confidence and lift divisions. A frequent
	// antecedent or consequent always has support > 0, so hitting this
	// means the caller bypassed the miner and handed in inconsistent data.
	ErrZeroSupport = errors.New("mining: subset has zero support")
)
