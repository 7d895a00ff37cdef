// Package engine wires the board, evaluator, search and transposition
// table together into the game-playing object the host protocol drives.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/forced"
	"github.com/dkem/forcedchess/internal/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-wide defaults, overridable per search.
type Options struct {
	// DepthLimit bounds iterative deepening. Zero means unbounded (time-
	// controlled only).
	DepthLimit int
	// HashMB is the transposition table size in megabytes.
	HashMB uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%vMB}", o.DepthLimit, o.HashMB)
}

// Engine encapsulates one game in progress: current position, its history
// and the transposition table carried across moves within that game.
type Engine struct {
	name, author string
	zt           *board.ZobristTable
	seed         int64
	opts         Options

	mu     sync.Mutex
	b      *board.Board
	tt     *search.Table
	active search.Handle
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithZobristSeed overrides the default (zero) Zobrist seed, e.g. to avoid
// two engine instances sharing identical hash collisions.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithOptions sets the engine's default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine's display name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

// Board returns an independent fork of the current game state.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.Fork()
}

// Position renders the current position as FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.b.Position(), e.b.Turn(), e.b.NoProgress(), e.b.FullMoves())
}

// Reset starts a new game from the given FEN, clearing the transposition
// table: entries from an unrelated position are worse than no hint at all.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, opts=%v", position, e.opts)
	e.haltSearchLocked(ctx)

	pos, turn, noprogress, fullmoves, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", position, err)
	}
	e.b = board.NewBoard(e.zt, pos, turn, noprogress, fullmoves)

	hashMB := e.opts.HashMB
	if hashMB == 0 {
		hashMB = 32
	}
	e.tt = search.NewTable(uint64(hashMB) << 20)
	return nil
}

// Move plays a move, usually the opponent's.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", move, err)
	}
	e.haltSearchLocked(ctx)

	// Validate against the forced-capture-filtered set, not every
	// pseudo-legal move: a quiet move is illegal this ply whenever a
	// capture is available.
	for _, cand := range forced.Moves(e.b.LegalMoves()) {
		if !cand.Equals(m) {
			continue
		}
		if !e.b.PushMove(cand) {
			return fmt.Errorf("illegal move: %v", cand)
		}
		logw.Infof(ctx, "Move %v: %v", cand, e.b)
		return nil
	}
	return fmt.Errorf("illegal or unrecognized move: %v", m)
}

// TakeBack undoes the last move played.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.haltSearchLocked(ctx)
	if _, ok := e.b.PopMove(); !ok {
		return fmt.Errorf("no move to take back")
	}
	return nil
}

// LegalMoves returns the moves actually playable in the current position,
// i.e. already filtered by the forced-capture rule.
func (e *Engine) LegalMoves() []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()
	return forced.Moves(e.b.LegalMoves())
}

// Analyze starts a search of the current position and returns a channel of
// successively deeper principal variations. If exactly one move is forced
// (the single-legal-move shortcut), it is reported immediately at depth 0
// without running any search at all.
func (e *Engine) Analyze(ctx context.Context, depthLimit int) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	legal := forced.Moves(e.b.LegalMoves())
	if len(legal) == 1 {
		out := make(chan search.PV, 1)
		out <- search.PV{Depth: 0, Moves: []board.Move{legal[0]}}
		close(out)
		return out, nil
	}

	if depthLimit <= 0 {
		depthLimit = e.opts.DepthLimit
	}
	it := search.Iterative{AB: search.AlphaBeta{TT: e.tt}, MaxDepth: depthLimit}
	handle, out := it.Launch(ctx, e.b.Fork())
	e.active = handle
	return out, nil
}

// Halt stops the active search, if any, and returns its last completed PV.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pv, ok := e.haltSearchLocked(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchLocked(ctx context.Context) (search.PV, bool) {
	if e.active == nil {
		return search.PV{}, false
	}
	pv := e.active.Halt()
	logw.Infof(ctx, "Search halted: %v", pv)
	e.active = nil
	return pv, true
}
