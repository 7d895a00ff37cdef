package search

import (
	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/forced"
)

// legalMoves returns every legal move in pos for turn. Kept local to this
// package (rather than shared with internal/eval, which has its own copy)
// to avoid a needless cross-package dependency for a three-line loop.
func legalMoves(pos *board.Position, turn board.Color) []board.Move {
	pseudo := pos.PseudoLegalMoves(turn)
	legal := make([]board.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := pos.Move(turn, m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// givesCheck reports whether playing m (which must be legal in pos for
// turn) checks the opponent, including discovered checks uncovered by
// moving a piece off a pin ray.
func givesCheck(pos *board.Position, turn board.Color, m board.Move) bool {
	next, ok := pos.Move(turn, m)
	if !ok {
		return false
	}
	return next.IsChecked(turn.Opponent())
}

// tacticalMoves returns the moves quiescence search should explore at a
// leaf: if the forced-capture rule is already in effect, every legal move
// is a capture and all of them qualify; otherwise only moves that give
// check (direct or discovered) are tactical enough to keep searching.
func tacticalMoves(pos *board.Position, turn board.Color, legal []board.Move) []board.Move {
	if forced.HasForcedCapture(legal) {
		return forced.Moves(legal)
	}
	var checks []board.Move
	for _, m := range legal {
		if givesCheck(pos, turn, m) {
			checks = append(checks, m)
		}
	}
	return checks
}
