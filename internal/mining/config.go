package mining

import "fmt"

// Config holds the mining thresholds. It is passed explicitly to Mine so
// the core stays pure and independently testable; there is no ambient or
// global configuration.
type Config struct {
	// MinSupport is the minimum fraction of transactions an itemset must
	// appear in to be considered frequent. Must be in (0,1].
	MinSupport float64

	// MinConfidence is the minimum confidence a rule must reach to be
	// retained. Must be in (0,1].
	MinConfidence float64

	// MaxItemsetSize caps the size of enumerated itemsets. Must be >= 1.
	MaxItemsetSize int
}

// DefaultConfig returns the thresholds used when the caller specifies none:
// support 0.25, confidence 0.6, itemsets up to size 3.
func DefaultConfig() Config {
	return Config{
		MinSupport:     0.25,
		MinConfidence:  0.6,
		MaxItemsetSize: 3,
	}
}

// Validate checks the thresholds and returns an error wrapping
// ErrInvalidThreshold naming the offending field.
func (c Config) Validate() error {
	if c.MinSupport <= 0 || c.MinSupport > 1 {
		return fmt.Errorf("%w: min support %v must be in (0,1]", ErrInvalidThreshold, c.MinSupport)
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: min confidence %v must be in (0,1]", ErrInvalidThreshold, c.MinConfidence)
	}
	if c.MaxItemsetSize < 1 {
		return fmt.Errorf("%w: max itemset size %d must be at least 1", ErrInvalidThreshold, c.MaxItemsetSize)
	}
	return nil
}
