package mining

import (
	"errors"
	"math"
	"testing"
)

func TestMine_WorkedExample(t *testing.T) {
	ts := sampleTransactions(t)

	frequent, err := Mine(ts, Config{MinSupport: 0.5, MinConfidence: 0.8, MaxItemsetSize: 2})
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	// Expected: {a} 0.75, {b} 0.75, {c} 0.5, {a,b} 0.5, {b,c} 0.5.
	// {a,c} sits at 0.25 and must be excluded.
	want := map[string]float64{
		NewItemset("a").Key():      0.75,
		NewItemset("b").Key():      0.75,
		NewItemset("c").Key():      0.5,
		NewItemset("a", "b").Key(): 0.5,
		NewItemset("b", "c").Key(): 0.5,
	}

	if len(frequent) != len(want) {
		t.Fatalf("expected %d frequent itemsets, got %d: %v", len(want), len(frequent), frequent)
	}

	for _, fi := range frequent {
		wantSup, ok := want[fi.Items.Key()]
		if !ok {
			t.Errorf("unexpected frequent itemset %v (support %v)", fi.Items, fi.Support)
			continue
		}
		if math.Abs(fi.Support-wantSup) > 1e-9 {
			t.Errorf("support of %v = %v, want %v", fi.Items, fi.Support, wantSup)
		}
	}
}

func TestMine_ResultOrder_SizeThenLexicographic(t *testing.T) {
	ts := sampleTransactions(t)

	frequent, err := Mine(ts, Config{MinSupport: 0.5, MinConfidence: 0.8, MaxItemsetSize: 2})
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	for i := 1; i < len(frequent); i++ {
		prev, cur := frequent[i-1], frequent[i]
		if len(prev.Items) > len(cur.Items) {
			t.Fatalf("result not ordered by size: %v before %v", prev.Items, cur.Items)
		}
		if len(prev.Items) == len(cur.Items) && prev.Items.Key() >= cur.Items.Key() {
			t.Fatalf("result not ordered lexicographically: %v before %v", prev.Items, cur.Items)
		}
	}
}

func TestMine_RespectsMaxItemsetSize(t *testing.T) {
	ts := sampleTransactions(t)

	frequent, err := Mine(ts, Config{MinSupport: 0.25, MinConfidence: 0.6, MaxItemsetSize: 1})
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	for _, fi := range frequent {
		if len(fi.Items) > 1 {
			t.Errorf("itemset %v exceeds max size 1", fi.Items)
		}
	}
}

func TestMine_FrequentSubsetClosure(t *testing.T) {
	ts, err := NewTransactionSet([]Itemset{
		NewItemset("python", "data", "mining"),
		NewItemset("python", "machine", "learning", "data", "mining"),
		NewItemset("data", "mining", "rules", "python"),
		NewItemset("machine", "learning", "python"),
		NewItemset("rules", "data", "mining"),
	})
	if err != nil {
		t.Fatalf("NewTransactionSet failed: %v", err)
	}

	frequent, err := Mine(ts, Config{MinSupport: 0.4, MinConfidence: 0.6, MaxItemsetSize: 3})
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	keys := make(map[string]struct{}, len(frequent))
	for _, fi := range frequent {
		keys[fi.Items.Key()] = struct{}{}
	}

	// Every one-smaller subset of a frequent itemset must itself be
	// frequent; a gap here means broken pruning.
	for _, fi := range frequent {
		if len(fi.Items) < 2 {
			continue
		}
		for _, sub := range fi.Items.subsetsWithout() {
			if _, ok := keys[sub.Key()]; !ok {
				t.Errorf("subset %v of frequent %v missing from result", sub, fi.Items)
			}
		}
	}
}

func TestMine_MinedSupportMeetsThreshold(t *testing.T) {
	ts := sampleTransactions(t)

	cfg := Config{MinSupport: 0.5, MinConfidence: 0.8, MaxItemsetSize: 3}
	frequent, err := Mine(ts, cfg)
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	for _, fi := range frequent {
		if fi.Support < cfg.MinSupport {
			t.Errorf("itemset %v has support %v below threshold %v", fi.Items, fi.Support, cfg.MinSupport)
		}
	}
}

func TestMine_Idempotent(t *testing.T) {
	ts := sampleTransactions(t)
	cfg := Config{MinSupport: 0.25, MinConfidence: 0.6, MaxItemsetSize: 3}

	first, err := Mine(ts, cfg)
	if err != nil {
		t.Fatalf("first Mine failed: %v", err)
	}
	second, err := Mine(ts, cfg)
	if err != nil {
		t.Fatalf("second Mine failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result sizes differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Items.Key() != second[i].Items.Key() {
			t.Errorf("result %d differs: %v vs %v", i, first[i].Items, second[i].Items)
		}
		if first[i].Support != second[i].Support {
			t.Errorf("support of %v differs: %v vs %v", first[i].Items, first[i].Support, second[i].Support)
		}
	}
}

func TestMine_InvalidThresholds(t *testing.T) {
	ts := sampleTransactions(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero min support", Config{MinSupport: 0, MinConfidence: 0.5, MaxItemsetSize: 2}},
		{"negative min support", Config{MinSupport: -0.1, MinConfidence: 0.5, MaxItemsetSize: 2}},
		{"min support above one", Config{MinSupport: 1.5, MinConfidence: 0.5, MaxItemsetSize: 2}},
		{"zero min confidence", Config{MinSupport: 0.5, MinConfidence: 0, MaxItemsetSize: 2}},
		{"min confidence above one", Config{MinSupport: 0.5, MinConfidence: 1.1, MaxItemsetSize: 2}},
		{"zero max size", Config{MinSupport: 0.5, MinConfidence: 0.5, MaxItemsetSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mine(ts, tt.cfg)
			if err == nil {
				t.Fatal("expected error for invalid config")
			}
			if !errors.Is(err, ErrInvalidThreshold) {
				t.Errorf("error = %v; want errors.Is(err, ErrInvalidThreshold)", err)
			}
		})
	}
}

func TestMine_NilTransactionSet_ReturnsError(t *testing.T) {
	_, err := Mine(nil, DefaultConfig())
	if err == nil {
		t.Fatal("expected error for nil transaction set")
	}
	if !errors.Is(err, ErrEmptyTransactionSet) {
		t.Errorf("error = %v; want errors.Is(err, ErrEmptyTransactionSet)", err)
	}
}

func TestMine_MinSupportOfOne_KeepsUniversalItemsOnly(t *testing.T) {
	ts, err := NewTransactionSet([]Itemset{
		NewItemset("a", "b"),
		NewItemset("a", "c"),
		NewItemset("a"),
	})
	if err != nil {
		t.Fatalf("NewTransactionSet failed: %v", err)
	}

	frequent, err := Mine(ts, Config{MinSupport: 1, MinConfidence: 1, MaxItemsetSize: 2})
	if err != nil {
		t.Fatalf("Mine failed: %v", err)
	}

	if len(frequent) != 1 || frequent[0].Items.Key() != NewItemset("a").Key() {
		t.Errorf("expected only {a} at support 1.0, got %v", frequent)
	}
}

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got %v", err)
	}
}
