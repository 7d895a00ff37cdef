package eval

import "github.com/dkem/forcedchess/internal/board"

// Terminal returns the evaluation of a finished game from White's
// perspective. ply is the search depth (plies from the root) at which the
// terminal state was reached, used to prefer faster mates and delay being
// mated as long as possible: MateScore decreases in magnitude with ply.
func Terminal(result board.Result, ply int) Score {
	switch result.Outcome {
	case board.Draw:
		return 0
	case board.WhiteWins:
		return MateScore - Score(ply)
	case board.BlackWins:
		return -(MateScore - Score(ply))
	default:
		return 0
	}
}
