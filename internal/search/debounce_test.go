package search

import (
	"sync"
	"testing"
	"time"
)

type controllerRecorder struct {
	mu        sync.Mutex
	evaluated []string
	popular   int
	cleared   int
}

func (r *controllerRecorder) onEvaluate(_ uint64, q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.evaluated = append(r.evaluated, q)
}

func (r *controllerRecorder) onPopular(uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.popular++
}

func (r *controllerRecorder) onClear(uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared++
}

func (r *controllerRecorder) snapshot() ([]string, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.evaluated))
	copy(out, r.evaluated)
	return out, r.popular, r.cleared
}

func TestQueryController_DebounceCancelsStaleKeystroke(t *testing.T) {
	rec := &controllerRecorder{}
	qc := NewQueryController(60*time.Millisecond, rec.onEvaluate, rec.onPopular, rec.onClear)
	defer qc.Stop()

	qc.Input("ma")
	time.Sleep(20 * time.Millisecond) // well inside the window
	qc.Input("mala")

	time.Sleep(150 * time.Millisecond)

	evaluated, popular, cleared := rec.snapshot()
	if len(evaluated) != 1 {
		t.Fatalf("expected exactly one evaluation, got %d (%v)", len(evaluated), evaluated)
	}
	if evaluated[0] != "mala" {
		t.Fatalf("expected the latest query, got %q", evaluated[0])
	}
	if popular != 0 || cleared != 0 {
		t.Fatalf("unexpected popular=%d cleared=%d", popular, cleared)
	}
}

func TestQueryController_LengthGates(t *testing.T) {
	rec := &controllerRecorder{}
	qc := NewQueryController(20*time.Millisecond, rec.onEvaluate, rec.onPopular, rec.onClear)
	defer qc.Stop()

	qc.Input("")
	time.Sleep(60 * time.Millisecond)
	qc.Input("m")
	time.Sleep(60 * time.Millisecond)
	qc.Input("ma")
	time.Sleep(60 * time.Millisecond)

	evaluated, popular, cleared := rec.snapshot()
	if popular != 1 {
		t.Fatalf("empty query must show the popular set, popular=%d", popular)
	}
	if cleared != 1 {
		t.Fatalf("single-char query must clear suggestions, cleared=%d", cleared)
	}
	if len(evaluated) != 1 || evaluated[0] != "ma" {
		t.Fatalf("two-char query must evaluate, got %v", evaluated)
	}
}

func TestQueryController_StopCancelsPending(t *testing.T) {
	rec := &controllerRecorder{}
	qc := NewQueryController(30*time.Millisecond, rec.onEvaluate, rec.onPopular, rec.onClear)

	qc.Input("vestido")
	qc.Stop()
	time.Sleep(80 * time.Millisecond)

	evaluated, popular, cleared := rec.snapshot()
	if len(evaluated) != 0 || popular != 0 || cleared != 0 {
		t.Fatalf("stopped controller must never fire: %v %d %d", evaluated, popular, cleared)
	}
}

func TestQueryController_BurstYieldsSingleLatestEvaluation(t *testing.T) {
	rec := &controllerRecorder{}
	qc := NewQueryController(50*time.Millisecond, rec.onEvaluate, rec.onPopular, rec.onClear)
	defer qc.Stop()

	for _, q := range []string{"v", "ve", "ves", "vest", "vesti", "vestid", "vestido"} {
		qc.Input(q)
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(150 * time.Millisecond)

	evaluated, _, cleared := rec.snapshot()
	if len(evaluated) != 1 || evaluated[0] != "vestido" {
		t.Fatalf("burst must collapse to one evaluation of the final query, got %v", evaluated)
	}
	if cleared != 0 {
		t.Fatalf("intermediate single-char state must never fire, cleared=%d", cleared)
	}
}

// A slow evaluation that outlives the next keystroke completes with an old
// generation. Consumers that gate presentation on Generation keep only the
// latest query's result even when the completions arrive out of order.
func TestQueryController_SlowEvaluationFinishesSuperseded(t *testing.T) {
	var (
		mu        sync.Mutex
		presented []string
	)

	var qc *QueryController
	qc = NewQueryController(10*time.Millisecond, func(gen uint64, q string) {
		if q == "ma" {
			time.Sleep(120 * time.Millisecond)
		}
		mu.Lock()
		defer mu.Unlock()
		if gen == qc.Generation() {
			presented = append(presented, q)
		}
	}, nil, nil)
	defer qc.Stop()

	qc.Input("ma")
	time.Sleep(40 * time.Millisecond) // "ma" evaluation is now in flight
	qc.Input("mala")
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(presented) != 1 || presented[0] != "mala" {
		t.Fatalf("only the latest query may update the result set, got %v", presented)
	}
}
