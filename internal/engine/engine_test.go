package engine_test

import (
	"context"
	"testing"

	"github.com/dkem/forcedchess/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetThenMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")

	require.NoError(t, e.Move(ctx, "e2e4"))
	assert.Contains(t, e.Position(), " b ")
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	assert.Error(t, e.Move(ctx, "e2e5"))
}

func TestAnalyzeShortcutsWhenOneLegalMoveExists(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	// White pawn on e5 must capture on d6: the only legal move.
	require.NoError(t, e.Reset(ctx, "4k3/8/3p4/4P3/8/8/8/4K3 w - - 0 1"))

	out, err := e.Analyze(ctx, 4)
	require.NoError(t, err)

	var last int
	for pv := range out {
		last++
		assert.Equal(t, 0, pv.Depth)
		require.Len(t, pv.Moves, 1)
		assert.Equal(t, "e5d6", pv.Moves[0].String())
	}
	assert.Equal(t, 1, last)
}

func TestMoveRejectsQuietMoveWhenCaptureIsForced(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	// Black pawn on d6 must capture the White pawn on e5; d6d5 is
	// pseudo-legal but illegal under the forced-capture rule.
	require.NoError(t, e.Reset(ctx, "4k3/8/3p4/4P3/8/8/8/4K3 b - - 0 1"))

	assert.Error(t, e.Move(ctx, "d6d5"))
	require.NoError(t, e.Move(ctx, "d6e5"))
}

func TestTakeBackUndoesMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "test", "tester")
	before := e.Position()

	require.NoError(t, e.Move(ctx, "e2e4"))
	require.NoError(t, e.TakeBack(ctx))
	assert.Equal(t, before, e.Position())
}
