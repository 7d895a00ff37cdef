package eval

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise mobility() directly (white-box, unlike the rest of this
// package's tests) since the formula's exact constants are otherwise
// invisible behind Evaluate()'s other, overlapping terms.

func TestMobilityNoCapturesIsFivePlusLegalMoveCount(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	legal := legalMoves(pos, turn)
	assert.Empty(t, captureMoves(legal))
	assert.Equal(t, Score(5+len(legal)), mobility(pos, turn))
}

func TestMobilityExactlyOneForcedCaptureIsMinusTen(t *testing.T) {
	// White pawn on e5 has exactly one capture available, onto d6.
	pos, turn, _, _, err := fen.Decode("4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	captures := captureMoves(legalMoves(pos, turn))
	require.Len(t, captures, 1)
	assert.Equal(t, Score(-10), mobility(pos, turn))
}

func TestMobilityTwoOrMoreForcedCapturesScalesByCount(t *testing.T) {
	// White pawn on e5 can capture on either d6 or f6.
	pos, turn, _, _, err := fen.Decode("4k3/8/3p1p2/4P3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	captures := captureMoves(legalMoves(pos, turn))
	require.Len(t, captures, 2)
	assert.Equal(t, Score(-20*2), mobility(pos, turn))
}

func TestMobilitySignFlipsForBlackToMove(t *testing.T) {
	// Mirror of the single-forced-capture case with colors swapped: Black to
	// move has exactly one capture, so mobility is bad for Black, which
	// means good (positive) for White.
	pos, turn, _, _, err := fen.Decode("4k3/8/3p4/4P3/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	captures := captureMoves(legalMoves(pos, turn))
	require.Len(t, captures, 1)
	assert.Equal(t, Score(10), mobility(pos, turn))
}
