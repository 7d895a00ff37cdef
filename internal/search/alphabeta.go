package search

import (
	"context"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/eval"
	"github.com/dkem/forcedchess/internal/forced"
)

// quiescenceDepth bounds how many plies quiescence search may extend past
// the nominal horizon along tactical lines.
const quiescenceDepth = 8

// AlphaBeta runs a fixed-depth alpha-beta search from b's current position.
// Scores are always from White's perspective (classic minimax: White
// maximizes, Black minimizes), never negated per ply the way a negamax
// formulation would -- this matches the variant's natural statement of
// "is this good for White", and keeps the evaluator's sign convention
// identical at every node regardless of whose move it is.
type AlphaBeta struct {
	TT *Table
}

// result is returned up the recursion and only the root cares about pv.
type result struct {
	score eval.Score
	pv    []board.Move
}

// Search explores b's position to depth plies and returns the score, best
// line and node count. pvHint, if non-nil, is tried first at the root
// (typically the previous iteration's best move).
func (ab AlphaBeta) Search(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, pvHint *board.Move) (eval.Score, []board.Move, uint64) {
	var nodes uint64
	r := ab.search(ctx, b, depth, 0, alpha, beta, pvHint, &nodes)
	return r.score, r.pv, nodes
}

func (ab AlphaBeta) search(ctx context.Context, b *board.Board, depth, ply int, alpha, beta eval.Score, pvHint *board.Move, nodes *uint64) result {
	if res := b.Result(); res.IsOver() {
		return result{score: eval.Terminal(res, ply)}
	}
	select {
	case <-ctx.Done():
		return result{score: eval.Evaluate(b.Position(), b.Turn())}
	default:
	}

	var ttHint *board.Move
	if e, ok := ab.TT.Probe(b.Hash()); ok {
		m := e.Move
		ttHint = &m
		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return result{score: e.Score, pv: []board.Move{e.Move}}
			case LowerBound:
				if e.Score > alpha {
					alpha = e.Score
				}
			case UpperBound:
				if e.Score < beta {
					beta = e.Score
				}
			}
			if alpha >= beta {
				return result{score: e.Score, pv: []board.Move{e.Move}}
			}
		}
	}

	if depth == 0 {
		*nodes++
		// Quiescence is fail-hard over [alpha, beta] and its result is a
		// bound, not an exact value -- it is returned directly and never
		// written to the TT (see quiescence.go; stored only at interior
		// nodes below, after the iterate loop fixes an honest bound).
		score := quiescence(ctx, b.Position(), b.Turn(), alpha, beta, quiescenceDepth)
		return result{score: score}
	}
	*nodes++

	turn := b.Turn()
	legal := b.LegalMoves()
	if len(legal) == 0 {
		res := b.AdjudicateNoLegalMoves()
		return result{score: eval.Terminal(res, ply)}
	}
	candidates := forced.Moves(legal)

	ml := NewMoveList(candidates, func(m board.Move) Priority {
		return Score(m, pvHint, ttHint, givesCheck(b.Position(), turn, m))
	})

	maximizing := turn == board.White
	best := alpha
	if !maximizing {
		best = beta
	}
	var pv []board.Move
	bound := ExactBound
	origAlpha, origBeta := alpha, beta

	for {
		m, ok := ml.Next()
		if !ok {
			break
		}
		if !b.PushMove(m) {
			continue
		}
		child := ab.search(ctx, b, depth-1, ply+1, alpha, beta, nil, nodes)
		b.PopMove()

		if maximizing {
			if child.score > best {
				best = child.score
				pv = append([]board.Move{m}, child.pv...)
			}
			if best > alpha {
				alpha = best
			}
			if alpha >= beta {
				bound = LowerBound
				break
			}
		} else {
			if child.score < best {
				best = child.score
				pv = append([]board.Move{m}, child.pv...)
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				bound = UpperBound
				break
			}
		}
	}

	if bound == ExactBound && (best <= origAlpha || best >= origBeta) {
		// Shouldn't normally happen outside of a root call with a narrow
		// aspiration window, but keep the stored bound honest either way.
		if best <= origAlpha {
			bound = UpperBound
		} else {
			bound = LowerBound
		}
	}

	var bestMove board.Move
	if len(pv) > 0 {
		bestMove = pv[0]
	}
	ab.TT.Store(b.Hash(), bound, depth, best, bestMove)
	return result{score: best, pv: pv}
}
