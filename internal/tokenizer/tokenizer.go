// Package tokenizer converts raw text records into itemset transactions.
// Each record (typically one sentence per line) becomes the set of its
// distinct normalized words.
package tokenizer

import (
	"strings"

	"github.com/blackwell-systems/textmine/internal/mining"
)

// punctuation stripped from token edges. Interior punctuation is kept so
// tokens like "don't" and "e.g" survive.
const punctuation = ".,!?;:"

// Options controls token normalization. The zero value keeps every
// normalized token.
type Options struct {
	// Stopwords are dropped after lowercasing. Keys must be lowercase.
	Stopwords map[string]struct{}

	// MinTokenLen drops tokens shorter than this many bytes. Zero or one
	// keeps everything.
	MinTokenLen int
}

// Tokenize splits a record on whitespace, lowercases each token, trims
// leading and trailing punctuation, applies the options, and returns the
// distinct surviving tokens as a canonical itemset. Records with no
// surviving tokens yield an empty itemset; callers decide whether to keep
// or drop those transactions.
func Tokenize(text string, opts Options) mining.Itemset {
	var tokens []string
	for _, field := range strings.Fields(text) {
		token := strings.ToLower(strings.Trim(field, punctuation))
		if token == "" {
			continue
		}
		if opts.MinTokenLen > 1 && len(token) < opts.MinTokenLen {
			continue
		}
		if _, ok := opts.Stopwords[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return mining.NewItemset(tokens...)
}

// TokenizeAll converts a sequence of records into transactions, dropping
// records that normalize to nothing so downstream support math never sees
// an empty transaction row.
func TokenizeAll(records []string, opts Options) []mining.Itemset {
	transactions := make([]mining.Itemset, 0, len(records))
	for _, record := range records {
		tx := Tokenize(record, opts)
		if len(tx) == 0 {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions
}
