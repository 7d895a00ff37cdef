package search

import (
	"container/heap"
	"fmt"

	"github.com/dkem/forcedchess/internal/board"
)

// Priority is a move ordering priority: higher explores first.
type Priority int32

const (
	pvHintPriority Priority = 2000000
	ttHintPriority Priority = 1500000
)

// MoveList orders a set of moves by descending priority, used to maximize
// alpha-beta cutoffs: principal-variation and transposition-table hints
// first, then MVV/LVA with bonuses for checks and promotions.
type MoveList struct {
	h moveHeap
}

// NewMoveList builds a move list, scoring each move with fn.
func NewMoveList(moves []board.Move, fn func(board.Move) Priority) *MoveList {
	h := make(moveHeap, len(moves))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next pops the highest-priority remaining move.
func (ml *MoveList) Next() (board.Move, bool) {
	if ml.h.Len() == 0 {
		return board.Move{}, false
	}
	e := heap.Pop(&ml.h).(elm)
	return e.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   board.Move
	val Priority
}

type moveHeap []elm

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].val > h[j].val }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(elm)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// nominalValue is a fixed, phase-independent piece value used only for move
// ordering, distinct from the evaluator's blended material values.
var nominalValue = [board.NumPieces]Priority{
	board.Pawn:   100,
	board.Knight: 300,
	board.Bishop: 300,
	board.Rook:   500,
	board.Queen:  900,
	board.King:   10000,
}

// captureBase is the floor priority for any capture, keeping every capture
// ranked above quiet moves regardless of MVV/LVA sign.
const captureBase Priority = 50000

// checkBonus and promotionBase apply only within the capture branch: a
// quiet non-hinted move always scores 0.
const checkBonus Priority = 20000
const promotionBase Priority = 40000

// mvvLVA scores a capture by (victim value*10 - attacker value), rewarding
// capturing the most valuable victim with the least valuable attacker.
func mvvLVA(m board.Move) Priority {
	return 10*nominalValue[m.Capture] - nominalValue[m.Piece]
}

// Score ranks m for move ordering at a search node: PV hint first, then TT
// hint, then (for captures only) MVV/LVA plus bonuses for checks and
// promotions. A quiet, non-hinted move always scores 0.
func Score(m board.Move, pvHint, ttHint *board.Move, givesCheck bool) Priority {
	if pvHint != nil && m.Equals(*pvHint) {
		return pvHintPriority
	}
	if ttHint != nil && m.Equals(*ttHint) {
		return ttHintPriority
	}
	if !m.IsCapture() {
		return 0
	}

	p := captureBase + mvvLVA(m)
	if givesCheck {
		p += checkBonus
	}
	if m.IsPromotion() {
		p += promotionBase + nominalValue[m.Promotion]
	}
	return p
}
