// Command forcedchessd is a CECP ("xboard") engine for forced-capture
// chess: a chess variant where any legal capture must be played if one
// exists.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dkem/forcedchess/internal/engine"
	"github.com/dkem/forcedchess/internal/protocol/xboard"
	"github.com/seekerror/logw"
)

var (
	hashMB = flag.Uint("hash", 32, "Transposition table size in MB")
	depth  = flag.Int("depth", 0, "Search depth limit (0 for time-controlled only)")
	seed   = flag.Int64("seed", 0, "Zobrist hashing seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: forcedchessd [options]

forcedchessd is a CECP (xboard) engine for forced-capture chess.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "forcedchess", "forcedchess",
		engine.WithZobristSeed(*seed),
		engine.WithOptions(engine.Options{DepthLimit: *depth, HashMB: *hashMB}),
	)

	in := engine.ReadStdinLines(ctx)
	first, ok := <-in
	if !ok {
		logw.Exitf(ctx, "No input received")
	}
	if first != xboard.ProtocolName {
		flag.Usage()
		logw.Exitf(ctx, "Unsupported protocol %q: only %q is supported", first, xboard.ProtocolName)
	}

	driver, out := xboard.NewDriver(ctx, e, *depth, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
