package fen_test

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/4p1K1/2k1P3/8/8/8 b - - 0 1",
	}
	for _, f := range tests {
		pos, turn, noprogress, fullmoves, err := fen.Decode(f)
		require.NoError(t, err, f)
		assert.Equal(t, f, fen.Encode(pos, turn, noprogress, fullmoves))
	}
}

func TestDecodeRejectsMalformedFEN(t *testing.T) {
	_, _, _, _, err := fen.Decode("not a fen")
	assert.Error(t, err)
}

func TestDecodeEnPassantSquare(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	sq, ok := pos.EnPassant()
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(board.FileD, board.Rank6), sq)
}
