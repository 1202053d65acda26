package search

import "testing"

func TestRank_DescendingStable(t *testing.T) {
	in := []Scored[string]{
		{Item: "a", Score: 100},
		{Item: "b", Score: 500},
		{Item: "c", Score: 100},
		{Item: "d", Score: 1000},
		{Item: "e", Score: 500},
	}

	out := Rank(in)

	wantOrder := []string{"d", "b", "e", "a", "c"}
	if len(out) != len(wantOrder) {
		t.Fatalf("expected %d results, got %d", len(wantOrder), len(out))
	}
	for i, w := range wantOrder {
		if out[i].Item != w {
			t.Fatalf("position %d: got %q, want %q", i, out[i].Item, w)
		}
	}

	// input untouched
	if in[0].Item != "a" || in[4].Item != "e" {
		t.Fatalf("Rank must not mutate its input")
	}
}

func TestRank_Deterministic(t *testing.T) {
	in := []Scored[int]{{Item: 1, Score: 80}, {Item: 2, Score: 80}, {Item: 3, Score: 80}}
	a := Rank(in)
	b := Rank(in)
	for i := range a {
		if a[i].Item != b[i].Item {
			t.Fatalf("rank order not deterministic at %d", i)
		}
	}
}

func TestTopK(t *testing.T) {
	in := make([]Scored[int], 0, 50)
	for i := 0; i < 50; i++ {
		in = append(in, Scored[int]{Item: i, Score: 1000 - i})
	}

	out := TopK(Rank(in), SuggestProductLimit)
	if len(out) != 8 {
		t.Fatalf("expected 8 results, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Fatalf("not descending at %d", i)
		}
	}

	if got := TopK(out, 100); len(got) != 8 {
		t.Fatalf("TopK above length must be a no-op, got %d", len(got))
	}
	if got := TopK(out, 0); len(got) != 0 {
		t.Fatalf("TopK(0) must be empty, got %d", len(got))
	}
}
