package ws

import (
	"context"
	"encoding/json"
	"testing"

	"vitrine/internal/usecase"
)

// echoSuggest returns one product named after the query, so frames can be
// told apart in assertions.
type echoSuggest struct{}

func (echoSuggest) Suggest(_ context.Context, query string) (usecase.SuggestResult, error) {
	return usecase.SuggestResult{
		Products:   []usecase.ProductSuggestion{{Name: query}},
		Categories: []usecase.CategorySuggestion{},
	}, nil
}

func (e echoSuggest) Session(context.Context) usecase.SuggestUsecase { return e }

func readFrame(t *testing.T, s *Session) suggestFrame {
	t.Helper()
	select {
	case b := <-s.send:
		var f suggestFrame
		if err := json.Unmarshal(b, &f); err != nil {
			t.Fatalf("bad frame: %v", err)
		}
		return f
	default:
		t.Fatalf("no frame queued")
		return suggestFrame{}
	}
}

func TestSession_PushesCurrentEvaluation(t *testing.T) {
	s := NewSession(NewHub(nil), nil, echoSuggest{}, nil)
	defer s.controller.Stop()

	s.evaluate(s.controller.Generation(), "mala")

	f := readFrame(t, s)
	if f.Query != "mala" || len(f.Products) != 1 || f.Products[0].Name != "mala" {
		t.Fatalf("unexpected frame: %+v", f)
	}
}

// An evaluation that completes after a newer keystroke has advanced the
// controller generation must never reach the widget, even though it finishes
// last.
func TestSession_DropsSupersededEvaluation(t *testing.T) {
	s := NewSession(NewHub(nil), nil, echoSuggest{}, nil)
	defer s.controller.Stop()

	staleGen := s.controller.Generation()
	s.controller.Input("mala") // newer keystroke, debounce still pending

	s.evaluate(s.controller.Generation(), "mala")
	s.evaluate(staleGen, "ma") // the slow first evaluation finishing late

	f := readFrame(t, s)
	if f.Query != "mala" {
		t.Fatalf("expected the latest query's frame, got %+v", f)
	}
	select {
	case b := <-s.send:
		t.Fatalf("stale evaluation must be dropped, got frame %s", b)
	default:
	}
}
