package mining

import "testing"

func TestNewItemset_SortsAndDeduplicates(t *testing.T) {
	set := NewItemset("banana", "apple", "banana", "cherry", "apple")

	want := []string{"apple", "banana", "cherry"}
	if len(set) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(set), set)
	}
	for i, item := range want {
		if set[i] != item {
			t.Errorf("item %d: expected %q, got %q", i, item, set[i])
		}
	}
}

func TestItemsetKey_OrderIndependent(t *testing.T) {
	a := NewItemset("x", "y", "z")
	b := NewItemset("z", "x", "y")

	if a.Key() != b.Key() {
		t.Errorf("keys differ for equal itemsets: %q vs %q", a.Key(), b.Key())
	}
}

func TestItemsetKey_DistinguishesJoinedTokens(t *testing.T) {
	// {"ab"} and {"a","b"} must not collide.
	a := NewItemset("ab")
	b := NewItemset("a", "b")

	if a.Key() == b.Key() {
		t.Errorf("distinct itemsets share key %q", a.Key())
	}
}

func TestSubsetOf(t *testing.T) {
	tests := []struct {
		name  string
		sub   Itemset
		super Itemset
		want  bool
	}{
		{"empty subset of anything", NewItemset(), NewItemset("a"), true},
		{"equal sets", NewItemset("a", "b"), NewItemset("a", "b"), true},
		{"proper subset", NewItemset("b"), NewItemset("a", "b", "c"), true},
		{"disjoint", NewItemset("x"), NewItemset("a", "b"), false},
		{"partial overlap", NewItemset("a", "x"), NewItemset("a", "b"), false},
		{"larger than superset", NewItemset("a", "b", "c"), NewItemset("a", "b"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.SubsetOf(tt.super); got != tt.want {
				t.Errorf("%v.SubsetOf(%v) = %v, want %v", tt.sub, tt.super, got, tt.want)
			}
		})
	}
}

func TestUnionAndDifference(t *testing.T) {
	a := NewItemset("a", "b")
	b := NewItemset("b", "c")

	union := a.Union(b)
	if union.Key() != NewItemset("a", "b", "c").Key() {
		t.Errorf("union = %v, want {a, b, c}", union)
	}

	diff := union.Difference(a)
	if diff.Key() != NewItemset("c").Key() {
		t.Errorf("difference = %v, want {c}", diff)
	}

	if got := a.Difference(a); len(got) != 0 {
		t.Errorf("self-difference = %v, want empty", got)
	}
}

func TestExtend_IgnoresPresentItem(t *testing.T) {
	set := NewItemset("a", "b")

	if got := set.Extend("a"); got.Key() != set.Key() {
		t.Errorf("extending with present item changed set: %v", got)
	}
	if got := set.Extend("c"); got.Key() != NewItemset("a", "b", "c").Key() {
		t.Errorf("Extend(c) = %v, want {a, b, c}", got)
	}
}

func TestSubsetsWithout(t *testing.T) {
	set := NewItemset("a", "b", "c")
	subs := set.subsetsWithout()

	if len(subs) != 3 {
		t.Fatalf("expected 3 subsets, got %d", len(subs))
	}

	wantKeys := map[string]bool{
		NewItemset("b", "c").Key(): false,
		NewItemset("a", "c").Key(): false,
		NewItemset("a", "b").Key(): false,
	}
	for _, sub := range subs {
		if _, ok := wantKeys[sub.Key()]; !ok {
			t.Errorf("unexpected subset %v", sub)
			continue
		}
		wantKeys[sub.Key()] = true
	}
	for key, seen := range wantKeys {
		if !seen {
			t.Errorf("missing subset with key %q", key)
		}
	}
}
