package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blackwell-systems/textmine/internal/mining"
)

// Transaction operations

// ReplaceTransactions clears the corpus and inserts the given transactions
// in order, in a single database transaction. Stale mining results from a
// previous corpus are cleared alongside.
func (s *Store) ReplaceTransactions(records []Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"transactions", "itemsets", "rules", "runs"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return mapSchemaErr(fmt.Errorf("failed to clear %s: %w", table, err))
		}
	}

	if err := insertTransactions(tx, records); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit corpus replacement: %w", err)
	}
	return nil
}

// AppendTransactions adds transactions to the existing corpus without
// touching stored mining results (which become stale until the next run).
func (s *Store) AppendTransactions(records []Transaction) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTransactions(tx, records); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit corpus append: %w", err)
	}
	return nil
}

func insertTransactions(tx *sql.Tx, records []Transaction) error {
	stmt, err := tx.Prepare(`
		INSERT INTO transactions (source, tokens, ingested_at)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return mapSchemaErr(fmt.Errorf("failed to prepare transaction insert: %w", err))
	}
	defer stmt.Close()

	for _, rec := range records {
		tokensJSON, err := json.Marshal(rec.Tokens)
		if err != nil {
			return fmt.Errorf("failed to marshal tokens: %w", err)
		}
		if _, err := stmt.Exec(rec.Source, string(tokensJSON), rec.IngestedAt.Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to insert transaction %q: %w", rec.Source, err)
		}
	}
	return nil
}

// ListTransactions returns the corpus in ingestion order.
func (s *Store) ListTransactions() ([]Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, source, tokens, ingested_at
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, mapSchemaErr(fmt.Errorf("failed to list transactions: %w", err))
	}
	defer rows.Close()

	var records []Transaction
	for rows.Next() {
		var rec Transaction
		var tokensJSON, ingestedAt string
		if err := rows.Scan(&rec.ID, &rec.Source, &tokensJSON, &ingestedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if err := json.Unmarshal([]byte(tokensJSON), &rec.Tokens); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tokens for transaction %d: %w", rec.ID, err)
		}
		rec.IngestedAt, err = time.Parse(time.RFC3339, ingestedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ingested_at for transaction %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}

// CountTransactions returns the number of ingested transactions.
func (s *Store) CountTransactions() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&count)
	if err != nil {
		return 0, mapSchemaErr(fmt.Errorf("failed to count transactions: %w", err))
	}
	return count, nil
}

// Mining result operations

// SaveRun replaces the stored mining results with the given itemsets and
// rules and records the run's parameters, all in one database transaction.
func (s *Store) SaveRun(run Run, itemsets []mining.FrequentItemset, rules []mining.Rule) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"itemsets", "rules"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return mapSchemaErr(fmt.Errorf("failed to clear %s: %w", table, err))
		}
	}

	for _, fi := range itemsets {
		itemsJSON, err := json.Marshal(fi.Items)
		if err != nil {
			return fmt.Errorf("failed to marshal itemset %s: %w", fi.Items, err)
		}
		_, err = tx.Exec(`
			INSERT INTO itemsets (items, size, support)
			VALUES (?, ?, ?)
		`, string(itemsJSON), len(fi.Items), fi.Support)
		if err != nil {
			return fmt.Errorf("failed to insert itemset %s: %w", fi.Items, err)
		}
	}

	for _, r := range rules {
		antJSON, err := json.Marshal(r.Antecedent)
		if err != nil {
			return fmt.Errorf("failed to marshal antecedent of %s: %w", r, err)
		}
		conJSON, err := json.Marshal(r.Consequent)
		if err != nil {
			return fmt.Errorf("failed to marshal consequent of %s: %w", r, err)
		}
		_, err = tx.Exec(`
			INSERT INTO rules (antecedent, consequent, support, confidence, lift)
			VALUES (?, ?, ?, ?, ?)
		`, string(antJSON), string(conJSON), r.Support, r.Confidence, r.Lift)
		if err != nil {
			return fmt.Errorf("failed to insert rule %s: %w", r, err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO runs (mined_at, min_support, min_confidence, max_itemset_size,
			transaction_count, itemset_count, rule_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.MinedAt.Format(time.RFC3339), run.MinSupport, run.MinConfidence,
		run.MaxItemsetSize, run.TransactionCount, len(itemsets), len(rules))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit mining results: %w", err)
	}
	return nil
}

// ListItemsets returns the stored frequent itemsets ordered by size, then
// canonical item order.
func (s *Store) ListItemsets() ([]mining.FrequentItemset, error) {
	rows, err := s.db.Query(`
		SELECT items, support
		FROM itemsets
		ORDER BY size, items
	`)
	if err != nil {
		return nil, mapSchemaErr(fmt.Errorf("failed to list itemsets: %w", err))
	}
	defer rows.Close()

	var itemsets []mining.FrequentItemset
	for rows.Next() {
		var itemsJSON string
		var fi mining.FrequentItemset
		if err := rows.Scan(&itemsJSON, &fi.Support); err != nil {
			return nil, fmt.Errorf("failed to scan itemset: %w", err)
		}
		var items []string
		if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal itemset %q: %w", itemsJSON, err)
		}
		fi.Items = mining.NewItemset(items...)
		itemsets = append(itemsets, fi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate itemsets: %w", err)
	}

	return itemsets, nil
}

// ListRules returns the stored rules ordered by confidence, then lift,
// both descending.
func (s *Store) ListRules() ([]mining.Rule, error) {
	rows, err := s.db.Query(`
		SELECT antecedent, consequent, support, confidence, lift
		FROM rules
		ORDER BY confidence DESC, lift DESC, antecedent
	`)
	if err != nil {
		return nil, mapSchemaErr(fmt.Errorf("failed to list rules: %w", err))
	}
	defer rows.Close()

	var rules []mining.Rule
	for rows.Next() {
		var antJSON, conJSON string
		var r mining.Rule
		if err := rows.Scan(&antJSON, &conJSON, &r.Support, &r.Confidence, &r.Lift); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		var ant, con []string
		if err := json.Unmarshal([]byte(antJSON), &ant); err != nil {
			return nil, fmt.Errorf("failed to unmarshal antecedent %q: %w", antJSON, err)
		}
		if err := json.Unmarshal([]byte(conJSON), &con); err != nil {
			return nil, fmt.Errorf("failed to unmarshal consequent %q: %w", conJSON, err)
		}
		r.Antecedent = mining.NewItemset(ant...)
		r.Consequent = mining.NewItemset(con...)
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}

	return rules, nil
}

// LatestRun returns the most recent mining run, or nil if no run has been
// recorded yet.
func (s *Store) LatestRun() (*Run, error) {
	var run Run
	var minedAt string
	err := s.db.QueryRow(`
		SELECT id, mined_at, min_support, min_confidence, max_itemset_size,
			transaction_count, itemset_count, rule_count
		FROM runs
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&run.ID, &minedAt, &run.MinSupport, &run.MinConfidence,
		&run.MaxItemsetSize, &run.TransactionCount, &run.ItemsetCount, &run.RuleCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, mapSchemaErr(fmt.Errorf("failed to get latest run: %w", err))
	}

	run.MinedAt, err = time.Parse(time.RFC3339, minedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mined_at: %w", err)
	}

	return &run, nil
}
