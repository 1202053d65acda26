package search

import (
	"strings"
	"sync"
	"time"
)

// DefaultDebounceWindow is the idle time after the last keystroke before an
// evaluation fires.
const DefaultDebounceWindow = 300 * time.Millisecond

// QueryController owns the debounce contract of the interactive suggestion
// path. It holds at most one pending timer; a new keystroke cancels the
// previous one outright, so a stale query is never evaluated and only the
// latest result set can ever be presented.
//
// Every callback receives the generation of the keystroke that scheduled it.
// A callback that does slow work must compare that generation against
// Generation before presenting its result: a keystroke arriving mid-flight
// advances the generation and the late completion has to be discarded.
//
// Query length gates the path taken when the timer fires: empty input shows
// the popular/default set, a single character hides suggestions, two or more
// characters run a full scored evaluation.
type QueryController struct {
	window     time.Duration
	onEvaluate func(gen uint64, query string)
	onPopular  func(gen uint64)
	onClear    func(gen uint64)

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

// NewQueryController builds a controller with the given debounce window
// (DefaultDebounceWindow when zero). Nil callbacks are allowed and skipped.
func NewQueryController(window time.Duration, onEvaluate func(uint64, string), onPopular, onClear func(uint64)) *QueryController {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &QueryController{
		window:     window,
		onEvaluate: onEvaluate,
		onPopular:  onPopular,
		onClear:    onClear,
	}
}

// Input feeds one raw keystroke state. Any pending evaluation is cancelled
// and the window restarts from now.
func (qc *QueryController) Input(raw string) {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.gen++
	myGen := qc.gen
	if qc.timer != nil {
		qc.timer.Stop()
	}
	qc.timer = time.AfterFunc(qc.window, func() {
		qc.fire(myGen, raw)
	})
}

// Stop cancels any pending evaluation. The controller stays usable.
func (qc *QueryController) Stop() {
	qc.mu.Lock()
	defer qc.mu.Unlock()

	qc.gen++
	if qc.timer != nil {
		qc.timer.Stop()
		qc.timer = nil
	}
}

// Generation reports the most recent keystroke's generation. A slow callback
// still holding an older generation has been superseded.
func (qc *QueryController) Generation() uint64 {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	return qc.gen
}

func (qc *QueryController) fire(gen uint64, raw string) {
	qc.mu.Lock()
	if gen != qc.gen {
		// superseded by a later keystroke between Stop and this callback
		qc.mu.Unlock()
		return
	}
	qc.timer = nil
	qc.mu.Unlock()

	switch queryRuneLen(raw) {
	case 0:
		if qc.onPopular != nil {
			qc.onPopular(gen)
		}
	case 1:
		if qc.onClear != nil {
			qc.onClear(gen)
		}
	default:
		if qc.onEvaluate != nil {
			qc.onEvaluate(gen, raw)
		}
	}
}

func queryRuneLen(raw string) int {
	return len([]rune(strings.TrimSpace(raw)))
}
