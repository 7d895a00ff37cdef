// perft is a movegen debugging tool, adapted to walk the forced-capture
// variant's legal move set rather than standard chess's. See:
// https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/forced"
	"github.com/seekerror/logw"
)

var (
	depthFlag = flag.Int("depth", 4, "Search depth")
	position  = flag.String("fen", "", "Start position (default to standard)")
	divide    = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, turn, noprogress, fullmoves, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	zt := board.NewZobristTable(1)
	for i := 1; i <= *depthFlag; i++ {
		b := board.NewBoard(zt, pos, turn, noprogress, fullmoves)

		start := time.Now()
		nodes := perft(b, i, *divide && i == *depthFlag)
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

// perft counts leaf nodes reachable under the forced-capture rule: at
// each ply it restricts to forced.Moves, not the full legal set.
func perft(b *board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range forced.Moves(b.LegalMoves()) {
		if !b.PushMove(m) {
			continue
		}
		count := perft(b, depth-1, false)
		b.PopMove()

		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
