package search

import (
	"context"
	"sync"
	"time"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/eval"
	"github.com/seekerror/logw"
	"go.uber.org/atomic"
)

// aspirationWindow is the half-width of the window tried around the
// previous iteration's score before falling back to a full-width search.
const aspirationWindow = eval.Score(25)

// PV is one iteration's result: depth reached, score, principal variation
// and node count, plus how long the iteration took.
type PV struct {
	Depth int
	Score eval.Score
	Moves []board.Move
	Nodes uint64
	Time  time.Duration
}

// Handle controls a running iterative-deepening search.
type Handle interface {
	// Halt stops the search (if still running) and returns the last
	// completed iteration's result.
	Halt() PV
}

// Iterative runs AlphaBeta at increasing depths (1, 2, 3, ...) until
// halted or maxDepth is reached, reporting each completed iteration on the
// returned channel. Every iteration after the first tries a narrow
// aspiration window around the previous score; on failing high or low it
// always re-searches the same depth with the full [-inf, +inf] window,
// rather than a stepwise-widened window, trading a rare extra re-search
// for simplicity.
type Iterative struct {
	AB       AlphaBeta
	MaxDepth int
}

func (it Iterative) Launch(ctx context.Context, b *board.Board) (Handle, <-chan PV) {
	out := make(chan PV, 1)
	h := &handle{init: make(chan struct{}), quit: make(chan struct{})}
	go h.run(ctx, it, b, out)
	return h, out
}

type handle struct {
	init, quit        chan struct{}
	initialized, done atomic.Bool

	mu sync.Mutex
	pv PV
}

func (h *handle) run(ctx context.Context, it Iterative, b *board.Board, out chan PV) {
	defer h.markInitialized()
	defer close(out)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-h.quit
		cancel()
	}()

	alpha, beta := eval.NegInf, eval.Inf
	prevScore := eval.Score(0)

	maxDepth := it.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 64
	}

	for depth := 1; depth <= maxDepth; depth++ {
		if h.done.Load() {
			return
		}
		start := time.Now()

		if depth > 1 {
			alpha = prevScore - aspirationWindow
			beta = prevScore + aspirationWindow
		}

		var pvHint *board.Move
		if cur := h.current(); len(cur.Moves) > 0 {
			pvHint = &cur.Moves[0]
		}

		score, moves, nodes := it.AB.Search(ctx, b, depth, alpha, beta, pvHint)
		if score <= alpha || score >= beta {
			// Aspiration window failed: re-search the same depth with the
			// full window before trusting the result.
			score, moves, nodes = it.AB.Search(ctx, b, depth, eval.NegInf, eval.Inf, pvHint)
		}

		if isCancelled(ctx) {
			return
		}

		pv := PV{Depth: depth, Score: score, Moves: moves, Nodes: nodes, Time: time.Since(start)}
		logw.Debugf(ctx, "depth=%v score=%v nodes=%v pv=%v", depth, score, nodes, board.FormatMoves(moves))

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()
		h.markInitialized()

		select {
		case <-out:
		default:
		}
		out <- pv

		prevScore = score
		if eval.IsMate(score) {
			return
		}
	}
}

func (h *handle) current() PV {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

func (h *handle) Halt() PV {
	<-h.init
	if h.done.CAS(false, true) {
		close(h.quit)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

func (h *handle) markInitialized() {
	if h.initialized.CAS(false, true) {
		close(h.init)
	}
}

func isCancelled(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
