package board_test

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopRestoresPositionAndHash(t *testing.T) {
	zt := board.NewZobristTable(1)
	pos, turn, noprogress, fullmoves, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)
	hashBefore := b.Hash()
	posBefore := b.Position().String()

	m, err := board.ParseMove("e2e4")
	require.NoError(t, err)
	var resolved board.Move
	for _, cand := range b.Position().PseudoLegalMoves(b.Turn()) {
		if cand.Equals(m) {
			resolved = cand
		}
	}

	require.True(t, b.PushMove(resolved))
	assert.NotEqual(t, hashBefore, b.Hash())

	undone, ok := b.PopMove()
	require.True(t, ok)
	assert.True(t, undone.Equals(m))
	assert.Equal(t, hashBefore, b.Hash())
	assert.Equal(t, posBefore, b.Position().String())
}

func TestRepetitionDraw(t *testing.T) {
	zt := board.NewZobristTable(1)
	// Pawns keep the material sufficient: bare kings would be drawn on
	// insufficient material before any move is played.
	pos, turn, noprogress, fullmoves, err := fen.Decode("4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)

	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	shuffle := []string{"e1d1", "e8d8", "d1e1", "d8e8"}
	for i := 0; i < 2; i++ {
		for _, s := range shuffle {
			m, err := board.ParseMove(s)
			require.NoError(t, err)
			var resolved board.Move
			for _, cand := range b.Position().PseudoLegalMoves(b.Turn()) {
				if cand.Equals(m) {
					resolved = cand
				}
			}
			require.True(t, b.PushMove(resolved))
		}
	}
	assert.Equal(t, board.Draw, b.Result().Outcome)
	assert.Equal(t, board.Repetition, b.Result().Reason)
}

func TestAdjudicateCheckmate(t *testing.T) {
	zt := board.NewZobristTable(1)
	// Position right before fool's mate: black to play Qd8-h4#.
	pos, turn, noprogress, fullmoves, err := fen.Decode("rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2")
	require.NoError(t, err)
	b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

	m, err := board.ParseMove("d8h4")
	require.NoError(t, err)
	var resolved board.Move
	for _, cand := range b.Position().PseudoLegalMoves(b.Turn()) {
		if cand.Equals(m) {
			resolved = cand
		}
	}
	require.True(t, b.PushMove(resolved))

	require.Empty(t, b.LegalMoves())
	result := b.AdjudicateNoLegalMoves()
	assert.Equal(t, board.Checkmate, result.Reason)
	assert.Equal(t, board.BlackWins, result.Outcome)
}
