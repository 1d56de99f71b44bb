package store

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    tokens TEXT NOT NULL,
    ingested_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS itemsets (
    items TEXT PRIMARY KEY,
    size INTEGER NOT NULL,
    support REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS rules (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    antecedent TEXT NOT NULL,
    consequent TEXT NOT NULL,
    support REAL NOT NULL,
    confidence REAL NOT NULL,
    lift REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mined_at TIMESTAMP NOT NULL,
    min_support REAL NOT NULL,
    min_confidence REAL NOT NULL,
    max_itemset_size INTEGER NOT NULL,
    transaction_count INTEGER NOT NULL,
    itemset_count INTEGER NOT NULL,
    rule_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_itemsets_size ON itemsets(size);
CREATE INDEX IF NOT EXISTS idx_itemsets_support ON itemsets(support);
CREATE INDEX IF NOT EXISTS idx_rules_confidence ON rules(confidence);
CREATE INDEX IF NOT EXISTS idx_rules_lift ON rules(lift);
`
