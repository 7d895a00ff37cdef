package eval

import "github.com/dkem/forcedchess/internal/board"

// pawnStructure scores doubled, isolated and connected pawns. The whole
// term is halved afterwards (integer division, truncating toward zero):
// these are secondary signals next to material and king safety.
func pawnStructure(pos *board.Position) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		u := unit(c)
		pawns := pos.Piece(c, board.Pawn)

		fileCount := [8]int{}
		for _, sq := range pawns.ToSquares() {
			fileCount[sq.File()]++
		}
		for f, n := range fileCount {
			if n > 1 {
				score -= u * Score(10*(n-1))
			}
			_ = f
		}

		for _, sq := range pawns.ToSquares() {
			f := int(sq.File())
			isolated := true
			for _, nf := range []int{f - 1, f + 1} {
				if nf < 0 || nf > 7 {
					continue
				}
				if fileCount[nf] > 0 {
					isolated = false
				}
			}
			if isolated {
				score -= u * 12
			}
			if isConnected(pawns, sq) {
				score += u * 6
			}
		}
	}
	return score / 2
}

// isConnected reports whether sq has a friendly pawn on an adjacent file
// on the same rank or one rank behind or ahead of it (i.e. flanking,
// defending or defended by another pawn), a cheap proxy for a connected
// pawn chain.
func isConnected(pawns board.Bitboard, sq board.Square) bool {
	f, r := int(sq.File()), int(sq.Rank())
	for _, df := range []int{-1, 1} {
		nf := f + df
		if nf < 0 || nf > 7 {
			continue
		}
		for _, dr := range []int{0, -1, 1} {
			nr := r + dr
			if nr < 0 || nr > 7 {
				continue
			}
			if pawns.IsSet(board.NewSquare(board.File(nf), board.Rank(nr))) {
				return true
			}
		}
	}
	return false
}

// passedPawns rewards pawns with no opposing pawn anywhere on their file,
// scaled by how far they have advanced towards promotion.
func passedPawns(pos *board.Position) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		u := unit(c)
		opp := c.Opponent()
		oppFiles := [8]bool{}
		for _, sq := range pos.Piece(opp, board.Pawn).ToSquares() {
			oppFiles[sq.File()] = true
		}
		for _, sq := range pos.Piece(c, board.Pawn).ToSquares() {
			if oppFiles[sq.File()] {
				continue
			}
			advance := int(sq.Rank())
			if c == board.Black {
				advance = 7 - advance
			}
			score += u * Score(10*advance)
		}
	}
	return score
}
