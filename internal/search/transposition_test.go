package search_test

import (
	"testing"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreAndProbeRoundTrip(t *testing.T) {
	tt := search.NewTable(1 << 16)
	hash := board.ZobristHash(12345)
	m := board.Move{From: board.NewSquare(board.FileE, board.Rank2), To: board.NewSquare(board.FileE, board.Rank4)}

	tt.Store(hash, search.ExactBound, 4, 37, m)

	e, ok := tt.Probe(hash)
	require.True(t, ok)
	assert.Equal(t, search.ExactBound, e.Bound)
	assert.Equal(t, 4, e.Depth)
	assert.Equal(t, 37, int(e.Score))
	assert.True(t, e.Move.Equals(m))
}

func TestShallowerEntryDoesNotReplaceDeeper(t *testing.T) {
	tt := search.NewTable(1 << 16)
	hash := board.ZobristHash(999)

	tt.Store(hash, search.ExactBound, 8, 10, board.Move{})
	tt.Store(hash, search.ExactBound, 2, 999, board.Move{})

	e, ok := tt.Probe(hash)
	require.True(t, ok)
	assert.Equal(t, 8, e.Depth)
	assert.Equal(t, 10, int(e.Score))
}

func TestClearEmptiesTable(t *testing.T) {
	tt := search.NewTable(1 << 16)
	hash := board.ZobristHash(1)
	tt.Store(hash, search.ExactBound, 1, 1, board.Move{})

	tt.Clear()
	_, ok := tt.Probe(hash)
	assert.False(t, ok)
	assert.Equal(t, 0.0, tt.Used())
}

func TestEqualDepthBucketCollisionKeepsFirstUntilDeeperEvicts(t *testing.T) {
	tt := search.NewTable(128) // forces a size-2 table (mask=1)
	// Hash 1 and hash 3 both index to bucket 1 but are distinct keys.
	tt.Store(board.ZobristHash(1), search.ExactBound, 4, 10, board.Move{})

	// Second key, same bucket, same depth: must be rejected, first persists.
	tt.Store(board.ZobristHash(3), search.ExactBound, 4, 20, board.Move{})
	e, ok := tt.Probe(board.ZobristHash(1))
	require.True(t, ok)
	assert.Equal(t, 10, int(e.Score))
	_, ok = tt.Probe(board.ZobristHash(3))
	assert.False(t, ok)

	// Same second key, now searched strictly deeper: evicts the first.
	tt.Store(board.ZobristHash(3), search.ExactBound, 5, 30, board.Move{})
	e, ok = tt.Probe(board.ZobristHash(3))
	require.True(t, ok)
	assert.Equal(t, 30, int(e.Score))
	_, ok = tt.Probe(board.ZobristHash(1))
	assert.False(t, ok)
}

func TestProbeMissesOnBucketCollisionWithDifferentHash(t *testing.T) {
	tt := search.NewTable(128) // forces a tiny power-of-two bucket count
	tt.Store(board.ZobristHash(1), search.ExactBound, 1, 1, board.Move{})

	_, ok := tt.Probe(board.ZobristHash(2))
	// Either a clean miss (different bucket) or a validated miss (same
	// bucket, hash mismatch caught) -- both are correct; only a false hit
	// would be a bug.
	if ok {
		t.Fatalf("probe must not return a hit for an unstored hash")
	}
}
