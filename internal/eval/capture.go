package eval

import "github.com/dkem/forcedchess/internal/board"

// pieceValue is used by the tactical terms below (capture chains,
// aggression, traps) as a simple, phase-independent measure of how much a
// piece is worth losing or winning, distinct from the blended material
// term in eval.go.
var pieceValue = [board.NumPieces]Score{
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   0,
}

// captureChain penalizes pieces that sit on a square their opponent
// attacks: 50 centipawns if nothing of the owner's defends the square, 16
// (50/3, favoring simplicity over precision) if something does. The
// penalty hurts its owner, so it is subtracted for White and added for
// Black, the same sign convention used throughout this package.
func captureChain(pos *board.Position) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		opp := c.Opponent()
		for piece := board.Pawn; piece <= board.Queen; piece++ {
			for _, sq := range pos.Piece(c, piece).ToSquares() {
				if !pos.AttackedBy(opp, sq) {
					continue
				}
				penalty := Score(50)
				if pos.AttackedBy(c, sq) {
					penalty = 50 / 3
				}
				score -= unit(c) * penalty
			}
		}
	}
	return score
}

// aggressionBonus rewards a side for pieces actively attacking enemy
// material, for giving check, for rooks/queens on open or half-open files
// and for piling attackers into the enemy king's ring.
func aggressionBonus(pos *board.Position, turn board.Color) Score {
	var score Score

	victimBonus := map[board.Piece]Score{
		board.Pawn:   10,
		board.Knight: 30,
		board.Bishop: 30,
		board.Rook:   50,
		board.Queen:  90,
	}

	for _, c := range []board.Color{board.White, board.Black} {
		opp := c.Opponent()
		for piece := board.Pawn; piece <= board.Queen; piece++ {
			for _, victimSq := range pos.Piece(opp, piece).ToSquares() {
				attackers := pos.AttackersTo(victimSq, c)
				if len(attackers) == 0 {
					continue
				}
				bonus := victimBonus[piece]
				if !pos.AttackedBy(opp, victimSq) {
					bonus = bonus * 3 / 2
				}
				score += unit(c) * bonus
			}
		}

		for _, sq := range pos.Piece(c, board.Rook).ToSquares() {
			score += unit(c) * fileOpenBonus(pos, sq.File())
		}
		for _, sq := range pos.Piece(c, board.Queen).ToSquares() {
			score += unit(c) * fileOpenBonus(pos, sq.File())
		}

		kingRing := ringSquares(pos.KingSquare(opp))
		attackers := 0
		for _, sq := range kingRing {
			attackers += len(pos.AttackersTo(sq, c))
		}
		score += unit(c) * Score(15*attackers)
	}

	if pos.IsChecked(turn) {
		score -= unit(turn) * 50
	}
	return score
}

// fileOpenBonus returns +20 for a fully open file (no pawns at all), +10
// for a half-open one (exactly one pawn of either color), 0 otherwise.
// The caller applies the color sign.
func fileOpenBonus(pos *board.Position, f board.File) Score {
	var pawns board.Bitboard
	for r := board.Rank1; r <= board.Rank8; r++ {
		sq := board.NewSquare(f, r)
		if pos.Piece(board.White, board.Pawn).IsSet(sq) || pos.Piece(board.Black, board.Pawn).IsSet(sq) {
			pawns |= board.BitMask(sq)
		}
	}
	switch pawns.PopCount() {
	case 0:
		return 20
	case 1:
		return 10
	default:
		return 0
	}
}

// trapBonus rewards forks, attacks on pinned pieces and a lower-valued
// piece threatening a higher-valued one. Skewers (an attacked piece with a
// queen or king behind it on the same line) are not scored.
func trapBonus(pos *board.Position) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		opp := c.Opponent()

		// Forks: one piece attacking two or more valuable (>=300) victims.
		attackerVictims := map[board.Square]int{}
		for piece := board.Pawn; piece <= board.Queen; piece++ {
			for _, sq := range pos.Piece(c, piece).ToSquares() {
				count := 0
				for victim := board.Bishop; victim <= board.Queen; victim++ {
					for _, vsq := range pos.Piece(opp, victim).ToSquares() {
						if squareAttacks(pos, sq, vsq) {
							count++
						}
					}
				}
				if count >= 2 {
					attackerVictims[sq] = count
				}
			}
		}
		for _, count := range attackerVictims {
			score += unit(c) * Score(40*count)
		}

		// Attacks landing on a pinned opponent piece.
		for piece := board.Pawn; piece <= board.Queen; piece++ {
			for _, sq := range pos.Piece(opp, piece).ToSquares() {
				if pos.IsPinned(sq, opp) && pos.AttackedBy(c, sq) {
					score += unit(c) * 25
				}
			}
		}

		// Lower-valued attacker threatening a higher-valued victim.
		for piece := board.Pawn; piece < board.King; piece++ {
			for _, sq := range pos.Piece(c, piece).ToSquares() {
				for victim := board.Pawn; victim <= board.Queen; victim++ {
					if pieceValue[victim] <= pieceValue[piece] {
						continue
					}
					for _, vsq := range pos.Piece(opp, victim).ToSquares() {
						if squareAttacks(pos, sq, vsq) {
							score += unit(c) * 15
						}
					}
				}
			}
		}
	}
	return score
}

// squareAttacks reports whether the piece on "from" attacks "to", by
// checking that "from" is among the squares the board reports as
// attacking "to" for from's owner.
func squareAttacks(pos *board.Position, from, to board.Square) bool {
	c, _, ok := pos.PieceAt(from)
	if !ok {
		return false
	}
	for _, a := range pos.AttackersTo(to, c) {
		if a == from {
			return true
		}
	}
	return false
}
