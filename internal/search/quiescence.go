package search

import (
	"context"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/eval"
)

// quiescence extends search past the nominal horizon along tactical lines
// only (captures, or checks when no capture is forced) to avoid the
// horizon effect: stopping mid-exchange and misjudging a position as
// quiet when a forced recapture is one ply away.
//
// The stand-pat value is computed once and reused both as the fail-hard
// cutoff test and as the initial alpha/beta bound: a side never forced to
// continue a tactical line is always free to "stand pat" and take the
// static evaluation instead.
func quiescence(ctx context.Context, pos *board.Position, turn board.Color, alpha, beta eval.Score, depthLeft int) eval.Score {
	standPat := eval.Evaluate(pos, turn)

	if depthLeft <= 0 {
		return standPat
	}

	if turn == board.White {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
	}

	legal := legalMoves(pos, turn)
	if len(legal) == 0 {
		if pos.IsChecked(turn) {
			return eval.Terminal(board.Result{Outcome: board.Loss(turn)}, 0)
		}
		return 0
	}

	candidates := tacticalMoves(pos, turn, legal)
	ml := NewMoveList(candidates, func(m board.Move) Priority {
		return Score(m, nil, nil, givesCheck(pos, turn, m))
	})

	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		select {
		case <-ctx.Done():
			return standPat
		default:
		}

		next, ok := pos.Move(turn, m)
		if !ok {
			continue
		}
		score := quiescence(ctx, next, turn.Opponent(), alpha, beta, depthLeft-1)

		if turn == board.White {
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				return beta
			}
		} else {
			if score < beta {
				beta = score
			}
			if beta <= alpha {
				return alpha
			}
		}
	}

	if turn == board.White {
		return alpha
	}
	return beta
}
