package eval

import "github.com/dkem/forcedchess/internal/board"

// Phase returns the game-phase weight in [0, MaxPhase], MaxPhase at the
// start of the game and falling towards 0 as minor/major pieces come off.
func Phase(pos *board.Position) int {
	phase := 0
	for _, c := range []board.Color{board.White, board.Black} {
		for piece := board.Pawn; piece <= board.King; piece++ {
			phase += phaseWeight[piece] * pos.Piece(c, piece).PopCount()
		}
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return phase
}

// blend interpolates mg at phase=MaxPhase down to eg at phase=0.
func blend(mg, eg Score, phase int) Score {
	return (mg*Score(phase) + eg*Score(MaxPhase-phase)) / Score(MaxPhase)
}

// Evaluate returns the static evaluation of pos from White's perspective:
// positive favors White, negative favors Black. turn is the side to move,
// needed for the mobility and check terms which are relative to it.
func Evaluate(pos *board.Position, turn board.Color) Score {
	phase := Phase(pos)

	var score Score
	score += materialAndPST(pos, phase)
	score += kingSafety(pos, phase)
	score += mobility(pos, turn)
	score += captureChain(pos)
	score += pawnStructure(pos)
	score += passedPawns(pos)
	score += aggressionBonus(pos, turn)
	score += trapBonus(pos)
	return score
}

func materialAndPST(pos *board.Position, phase int) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		u := unit(c)
		for piece := board.Pawn; piece < board.King; piece++ {
			bb := pos.Piece(c, piece)
			if bb == 0 {
				continue
			}
			m := blend(baseValue[piece], endValue[piece], phase)
			pst := pstFor(piece)
			for _, sq := range bb.ToSquares() {
				score += u * (m + pst[pstIndex(c, sq)])
				if piece == board.Pawn {
					if (c == board.White && sq.Rank() == board.Rank7) ||
						(c == board.Black && sq.Rank() == board.Rank2) {
						score += u * 800
					}
				}
			}
		}
		// King: PST blend only, no material term.
		kingPST := blend(kingMiddlePST[pstIndex(c, pos.KingSquare(c))], kingEndPST[pstIndex(c, pos.KingSquare(c))], phase)
		score += u * kingPST

		if pos.Piece(c, board.Bishop).PopCount() >= 2 {
			score += u * 30
		}
	}
	return score
}
