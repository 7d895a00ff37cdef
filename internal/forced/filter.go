// Package forced implements the variant's forced-capture rule: whenever at
// least one capture is legal, only captures may be played.
package forced

import "github.com/dkem/forcedchess/internal/board"

// Moves returns the captures in legal if any exist, else legal unchanged.
// Move order within the returned slice matches the order in legal.
func Moves(legal []board.Move) []board.Move {
	var captures []board.Move
	for _, m := range legal {
		if m.IsCapture() {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return captures
	}
	return legal
}

// HasForcedCapture reports whether legal contains at least one capture.
func HasForcedCapture(legal []board.Move) bool {
	for _, m := range legal {
		if m.IsCapture() {
			return true
		}
	}
	return false
}
