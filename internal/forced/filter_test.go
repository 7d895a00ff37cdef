package forced_test

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/forced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovesReturnsOnlyCapturesWhenAvailable(t *testing.T) {
	// White pawn on e5 can capture a black pawn on d6 or f6, alongside
	// plenty of other quiet moves.
	pos, turn, _, _, err := fen.Decode("4k3/8/3p1p2/4P3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var legal []board.Move
	for _, m := range pos.PseudoLegalMoves(turn) {
		if _, ok := pos.Move(turn, m); ok {
			legal = append(legal, m)
		}
	}

	out := forced.Moves(legal)
	require.NotEmpty(t, out)
	for _, m := range out {
		assert.True(t, m.IsCapture(), "expected only captures, got %v", m)
	}
}

func TestMovesReturnsAllWhenNoCapture(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	var legal []board.Move
	for _, m := range pos.PseudoLegalMoves(turn) {
		if _, ok := pos.Move(turn, m); ok {
			legal = append(legal, m)
		}
	}

	out := forced.Moves(legal)
	assert.Equal(t, legal, out)
	assert.False(t, forced.HasForcedCapture(legal))
}
