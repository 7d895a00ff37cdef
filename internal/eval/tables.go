package eval

import "github.com/dkem/forcedchess/internal/board"

// MaxPhase is the game-phase ceiling: starting material (2N+2B+2R+Q per
// side) contributes this much phase weight. Phase falls towards 0 as
// minor/major pieces leave the board, blending middlegame and endgame
// material values and piece-square tables.
const MaxPhase = 24

var phaseWeight = [board.NumPieces]int{
	board.Knight: 1,
	board.Bishop: 1,
	board.Rook:   2,
	board.Queen:  4,
}

// baseValue/endValue are the middlegame/endgame material values in
// centipawns, per piece kind.
var baseValue = [board.NumPieces]Score{
	board.Pawn:   120,
	board.Knight: 270,
	board.Bishop: 315,
	board.Rook:   550,
	board.Queen:  1000,
}

var endValue = [board.NumPieces]Score{
	board.Pawn:   160,
	board.Knight: 220,
	board.Bishop: 360,
	board.Rook:   620,
	board.Queen:  900,
}

// pst tables are indexed directly by board.Square (A1=0 .. H8=63). They are
// authored here in the conventional top-down (rank 8 first) layout and
// converted once at init time, since that is how piece-square tables are
// normally published and checked by eye.
var (
	pawnPST       [64]Score
	knightPST     [64]Score
	bishopPST     [64]Score
	rookPST       [64]Score
	queenPST      [64]Score
	kingMiddlePST [64]Score
	kingEndPST    [64]Score
)

func init() {
	pawnPST = fromTopDown([8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	})
	knightPST = fromTopDown([8][8]int{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	})
	bishopPST = fromTopDown([8][8]int{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	})
	rookPST = fromTopDown([8][8]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	})
	queenPST = fromTopDown([8][8]int{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	})
	kingMiddlePST = fromTopDown([8][8]int{
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	})
	kingEndPST = fromTopDown([8][8]int{
		{-50, -40, -30, -20, -20, -30, -40, -50},
		{-30, -20, -10, 0, 0, -10, -20, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 30, 40, 40, 30, -10, -30},
		{-30, -10, 20, 30, 30, 20, -10, -30},
		{-30, -30, 0, 0, 0, 0, -30, -30},
		{-50, -30, -30, -30, -30, -30, -30, -50},
	})
}

// fromTopDown converts an 8x8 table written rank-8-first (the conventional
// published layout) into a [64]Score array indexed directly by board.Square
// (A1=0 .. H8=63, rank-major).
func fromTopDown(rows [8][8]int) [64]Score {
	var t [64]Score
	for row := 0; row < 8; row++ {
		rank := 7 - row
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(board.File(file), board.Rank(rank))
			t[sq] = Score(rows[row][file])
		}
	}
	return t
}

func pstFor(piece board.Piece) [64]Score {
	switch piece {
	case board.Pawn:
		return pawnPST
	case board.Knight:
		return knightPST
	case board.Bishop:
		return bishopPST
	case board.Rook:
		return rookPST
	case board.Queen:
		return queenPST
	default:
		return [64]Score{}
	}
}

// pstIndex returns the table index for a piece of color c on sq: sq itself
// for White, its vertical mirror for Black, so both colors share one table
// authored from White's point of view.
func pstIndex(c board.Color, sq board.Square) board.Square {
	if c == board.White {
		return sq
	}
	return sq.Mirror()
}
