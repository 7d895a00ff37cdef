package eval

import (
	"github.com/dkem/forcedchess/internal/board"
)

// mobility scores the side to move's position under the forced-capture
// rule: no captures at all is good (quiet options are real choices, plus a
// flat bonus), exactly one forced capture is bad (no choice, and the
// opponent knows exactly what's coming), and two or more forced captures is
// worse still, scaling with how many captures are being forced into. The
// raw value is flipped into White's perspective via turn's sign. A side
// whose only captures are all with the queen is marked down further: it
// signals the queen is being dragged into exchanges it would rather avoid
// in this variant.
func mobility(pos *board.Position, turn board.Color) Score {
	legal := legalMoves(pos, turn)
	captures := captureMoves(legal)

	var raw Score
	switch {
	case len(captures) == 0:
		raw = 5 + Score(len(legal))
	case len(captures) == 1:
		raw = -10
	default:
		raw = -20 * Score(len(captures))
	}
	if len(captures) > 0 && allCapturesByQueen(pos, captures) {
		raw -= 30
	}
	return raw * unit(turn)
}

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

func captureMoves(legal []board.Move) []board.Move {
	var captures []board.Move
	for _, m := range legal {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	return captures
}

func allCapturesByQueen(pos *board.Position, captures []board.Move) bool {
	if len(captures) == 0 {
		return false
	}
	for _, m := range captures {
		if m.Piece != board.Queen {
			return false
		}
	}
	return true
}
