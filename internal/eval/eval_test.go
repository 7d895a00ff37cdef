package eval_test

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingPositionIsRoughlyBalanced(t *testing.T) {
	// Material and piece-square terms are exactly symmetric at the start;
	// the only asymmetry is the side-to-move's own mobility/aggression
	// terms, which should stay small next to a queen's worth of material.
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	score := eval.Evaluate(pos, turn)
	assert.Less(t, int(score), 200)
	assert.Greater(t, int(score), -200)
}

func TestPhaseFullAtStart(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.MaxPhase, eval.Phase(pos))
}

func TestPhaseZeroWithBareKings(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, eval.Phase(pos))
}

func TestExtraQueenFavorsWhite(t *testing.T) {
	pos, turn, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	assert.Greater(t, int(eval.Evaluate(pos, turn)), 0)
}

func TestTerminalScoresFavorFasterMates(t *testing.T) {
	near := eval.Terminal(board.Result{Outcome: board.WhiteWins}, 2)
	far := eval.Terminal(board.Result{Outcome: board.WhiteWins}, 10)
	assert.Greater(t, near, far)
	assert.True(t, eval.IsMate(near))
}

func TestTerminalDrawIsZero(t *testing.T) {
	assert.Equal(t, eval.Score(0), eval.Terminal(board.Result{Outcome: board.Draw}, 5))
}
