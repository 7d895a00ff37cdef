package search_test

import (
	"context"
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/eval"
	"github.com/dkem/forcedchess/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	pos, turn, noprogress, fullmoves, err := fen.Decode(f)
	require.NoError(t, err)
	zt := board.NewZobristTable(1)
	return board.NewBoard(zt, pos, turn, noprogress, fullmoves)
}

func abWithFreshTable() search.AlphaBeta {
	return search.AlphaBeta{TT: search.NewTable(1 << 16)}
}

func TestFindsMateInOne(t *testing.T) {
	// Black king cornered on a8, White king supports c6: Qb1-b7 is mate.
	b := newTestBoard(t, "k7/8/2K5/8/8/8/8/1Q6 w - - 0 1")
	ab := search.AlphaBeta{TT: search.NewTable(1 << 16)}

	score, pv, _ := ab.Search(context.Background(), b, 2, eval.NegInf, eval.Inf, nil)
	require.NotEmpty(t, pv)
	assert.True(t, eval.IsMate(score))
	assert.Greater(t, int(score), 0) // White is winning
	assert.Equal(t, "b1b7", pv[0].String())
}

func TestSearchDoesNotMutateBoard(t *testing.T) {
	b := newTestBoard(t, fen.Initial)
	before := b.Position().String()
	hashBefore := b.Hash()

	ab := search.AlphaBeta{TT: search.NewTable(1 << 16)}
	_, _, _ = ab.Search(context.Background(), b, 2, eval.NegInf, eval.Inf, nil)

	assert.Equal(t, before, b.Position().String())
	assert.Equal(t, hashBefore, b.Hash())
}

func TestSearchRespectsForcedCaptureRule(t *testing.T) {
	// White pawn on e5 can capture on d6; every other White move is
	// therefore illegal this ply under the variant's forced-capture rule.
	b := newTestBoard(t, "4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1")
	ab := search.AlphaBeta{TT: search.NewTable(1 << 16)}

	_, pv, _ := ab.Search(context.Background(), b, 1, eval.NegInf, eval.Inf, nil)
	require.NotEmpty(t, pv)
	assert.True(t, pv[0].IsCapture())
}

func TestCancelledContextReturnsPromptly(t *testing.T) {
	b := newTestBoard(t, fen.Initial)
	ab := search.AlphaBeta{TT: search.NewTable(1 << 16)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _ = ab.Search(ctx, b, 6, eval.NegInf, eval.Inf, nil)
	// Primarily a non-hang smoke test; reaching this line is the assertion.
}
