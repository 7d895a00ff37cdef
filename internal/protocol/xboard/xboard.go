// Package xboard implements the engine side of the CECP ("xboard")
// protocol: a line-oriented, stdin/stdout command set distinct from UCI.
//
// See: http://www.gnu.org/software/xboard/engine-intf.html
package xboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dkem/forcedchess/internal/board"
	"github.com/dkem/forcedchess/internal/board/fen"
	"github.com/dkem/forcedchess/internal/engine"
	"github.com/dkem/forcedchess/internal/eval"
	"github.com/dkem/forcedchess/internal/search"
	"github.com/dkem/forcedchess/internal/timectl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"go.uber.org/atomic"
)

// ProtocolName is the line the host sends to select this protocol.
const ProtocolName = "xboard"

// drawOfferScoreThreshold is how bad the position has to look (from the
// engine's own perspective) before it considers offering a draw.
const drawOfferScoreThreshold = -2000

// drawOfferElapsedFraction is the minimum fraction of the move's time
// budget that must have elapsed before a draw offer is made: an instant
// offer reads as resignation, not judgment.
const drawOfferElapsedFraction = 0.2

// Driver drives an Engine over the CECP protocol.
type Driver struct {
	iox.AsyncCloser

	e   *engine.Engine
	out chan<- string

	forceMode  atomic.Bool
	playing    atomic.Bool
	engineSide board.Color

	depthLimit int
	clock      timectl.Clock
	oppClock   timectl.Clock
	fixedMove  time.Duration // "st" override, zero if unset
}

// NewDriver starts the protocol loop over in, returning a handle and the
// outbound line channel.
func NewDriver(ctx context.Context, e *engine.Engine, depthLimit int, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
		depthLimit:  depthLimit,
	}
	d.clock.MovesToGo = 40
	d.oppClock.MovesToGo = 40
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "xboard protocol initialized")

	for {
		select {
		case <-d.Closed():
			return
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			if !d.dispatch(ctx, line) {
				return
			}
		}
	}
}

// dispatch handles one input line. Returns false to end the session.
func (d *Driver) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "xboard":
		// Announces CECP mode; no reply required.
	case "protover":
		d.out <- "feature myname=\"forcedchess\" ping=1 setboard=1 playother=0 san=0 usermove=1 time=1 draw=1 sigint=0 sigterm=0 colors=0 done=1"
	case "new":
		d.haltIfActive(ctx)
		_ = d.e.Reset(ctx, fen.Initial)
		d.forceMode.Store(false)
		d.playing.Store(false)
		d.engineSide = board.Black
	case "force":
		d.haltIfActive(ctx)
		d.forceMode.Store(true)
		d.playing.Store(false)
	case "white":
		d.engineSide = board.White
	case "black":
		d.engineSide = board.Black
	case "go":
		d.forceMode.Store(false)
		d.engineSide = d.e.Board().Turn()
		d.playing.Store(true)
		d.think(ctx)
	case "playother":
		d.forceMode.Store(false)
		d.engineSide = d.e.Board().Turn().Opponent()
		d.playing.Store(true)
	case "setboard":
		fen := strings.Join(args, " ")
		if err := d.e.Reset(ctx, fen); err != nil {
			d.out <- fmt.Sprintf("tellusererror Illegal position %q: %v", fen, err)
		}
	case "usermove":
		if len(args) != 1 {
			return true
		}
		if err := d.e.Move(ctx, args[0]); err != nil {
			d.out <- fmt.Sprintf("Illegal move: %v", args[0])
			return true
		}
		d.oppClock.Decrement()
		if d.playing.Load() && !d.forceMode.Load() && d.e.Board().Turn() == d.engineSide {
			d.think(ctx)
		}
	case "ping":
		if len(args) == 1 {
			d.out <- fmt.Sprintf("pong %v", args[0])
		}
	case "draw":
		// Opponent offers a draw; this engine never accepts mid-game on
		// its own initiative, leaving adjudication to the arbiter/GUI.
	case "level":
		if len(args) == 3 {
			mps, _ := strconv.Atoi(args[0])
			d.clock.Reset(mps)
			d.oppClock.Reset(mps)
		}
	case "st":
		if len(args) == 1 {
			if secs, err := strconv.Atoi(args[0]); err == nil {
				d.fixedMove = time.Duration(secs) * time.Second
			}
		}
	case "time":
		if len(args) == 1 {
			if cs, err := strconv.Atoi(args[0]); err == nil {
				d.clock.Remaining = time.Duration(cs) * 10 * time.Millisecond
			}
		}
	case "otim":
		if len(args) == 1 {
			if cs, err := strconv.Atoi(args[0]); err == nil {
				d.oppClock.Remaining = time.Duration(cs) * 10 * time.Millisecond
			}
		}
	case "undo":
		_ = d.e.TakeBack(ctx)
	case "remove":
		_ = d.e.TakeBack(ctx)
		_ = d.e.TakeBack(ctx)
	case "quit":
		d.haltIfActive(ctx)
		return false
	default:
		// Unknown commands are ignored per CECP convention, rather than
		// treated as a protocol error.
	}
	return true
}

// think runs a search for the budgeted duration, plays the resulting best
// move and reports it (and, if warranted, a draw offer) to the host.
func (d *Driver) think(ctx context.Context) {
	budget := d.fixedMove
	if budget <= 0 {
		budget = d.clock.Budget()
	}

	sctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	start := time.Now()
	out, err := d.e.Analyze(sctx, d.depthLimit)
	if err != nil {
		logw.Errorf(ctx, "Analyze failed: %v", err)
		return
	}

	var pv search.PV
	for p := range out {
		pv = p
	}

	if len(pv.Moves) == 0 {
		return
	}
	best := pv.Moves[0]
	if err := d.e.Move(ctx, best.String()); err != nil {
		logw.Errorf(ctx, "Failed to play own move %v: %v", best, err)
		return
	}
	d.clock.Decrement()
	d.clock.Remaining -= time.Since(start).Truncate(10 * time.Millisecond)
	if d.clock.Remaining < 0 {
		d.clock.Remaining = 0
	}

	d.out <- fmt.Sprintf("move %v", best)

	if d.shouldOfferDraw(pv, time.Since(start), budget) {
		d.out <- "offer draw"
	}
}

// shouldOfferDraw implements the variant's draw-offer heuristic: the
// engine only offers a draw once it has thought for a meaningful fraction
// of its allotted time and the position looks bad for its own side.
func (d *Driver) shouldOfferDraw(pv search.PV, elapsed, budget time.Duration) bool {
	if eval.IsMate(pv.Score) {
		return false
	}
	fromOwnSide := int(pv.Score)
	if d.engineSide == board.Black {
		fromOwnSide = -fromOwnSide
	}
	if fromOwnSide > drawOfferScoreThreshold {
		return false
	}
	return timectl.ElapsedFraction(budget, elapsed) > drawOfferElapsedFraction
}

func (d *Driver) haltIfActive(ctx context.Context) {
	if _, err := d.e.Halt(ctx); err != nil {
		// No active search; nothing to do.
		return
	}
}
