package eval

import "github.com/dkem/forcedchess/internal/board"

// kingSafety penalizes each side for weak squares in the ring around its
// king: ring squares the opponent attacks with at least one unpinned piece.
// The penalty scales with game phase since exposed kings matter most with
// major pieces still on the board.
func kingSafety(pos *board.Position, phase int) Score {
	var score Score
	for _, c := range []board.Color{board.White, board.Black} {
		opp := c.Opponent()
		king := pos.KingSquare(c)
		count := 0
		for _, ring := range ringSquares(king) {
			for _, a := range pos.AttackersTo(ring, opp) {
				if !pos.IsPinned(a, opp) {
					count++
					break
				}
			}
		}
		penalty := Score(20 * (count * phase / MaxPhase))
		score -= unit(c) * penalty
	}
	return score
}

func ringSquares(king board.Square) []board.Square {
	kf, kr := int(king.File()), int(king.Rank())
	var ret []board.Square
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			f, r := kf+df, kr+dr
			if f >= 0 && f < 8 && r >= 0 && r < 8 {
				ret = append(ret, board.NewSquare(board.File(f), board.Rank(r)))
			}
		}
	}
	return ret
}
