// Package eval implements the static position evaluator: material and
// piece-square tables blended by game phase, king safety, mobility,
// tactical capture chains, pawn structure and a handful of forced-capture
// variant-specific bonuses (see mobility and trapBonus).
package eval

import (
	"fmt"

	"github.com/dkem/forcedchess/internal/board"
)

// Score is a signed centipawn evaluation from White's perspective.
type Score int32

const (
	// MateScore is the base magnitude of a forced-mate signal; the actual
	// reported score is offset by the mating distance in plies so that
	// shorter mates score higher in magnitude than longer ones.
	MateScore Score = 30000
	// MateThreshold is the boundary above which a score is treated as a
	// mate signal rather than a positional evaluation. It must exceed the
	// largest sum of positional/material/tactical terms reachable in any
	// position. Nothing in this package clamps that sum; material alone is
	// about 4200-4600 centipawns per side for the starting set of pieces.
	MateThreshold Score = 29000

	// Inf and NegInf are search sentinels, not real evaluations.
	Inf    Score = 1000000
	NegInf Score = -1000000
)

// IsMate reports whether s encodes a forced-mate signal.
func IsMate(s Score) bool {
	return s > MateThreshold || s < -MateThreshold
}

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

func Max(a, b Score) Score {
	if a > b {
		return a
	}
	return b
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

func unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}
