// Package board contains the board representation and move generation that
// the search and evaluation packages treat as an external collaborator: a
// board library exposing make/unmake, legal-move enumeration, attack
// queries, piece-square introspection and Zobrist hashing.
package board

import "fmt"

const (
	repetitionLimit    = 3
	noProgressPlyLimit = 100
)

type node struct {
	pos        *Position
	hash       ZobristHash
	noprogress int
	next       Move // move leading to the child, if any
	prev       *node
}

// Board represents a chess position together with enough game history to
// adjudicate draws (repetition, the 50-move rule, insufficient material).
// Not thread-safe; callers searching concurrently must Fork first.
type Board struct {
	zt          *ZobristTable
	repetitions map[ZobristHash]int

	fullmoves int
	turn      Color
	result    Result
	current   *node
}

func NewBoard(zt *ZobristTable, pos *Position, turn Color, noprogress, fullmoves int) *Board {
	cur := &node{pos: pos, noprogress: noprogress, hash: zt.Hash(pos, turn)}
	b := &Board{
		zt:          zt,
		repetitions: map[ZobristHash]int{cur.hash: 1},
		fullmoves:   fullmoves,
		turn:        turn,
		current:     cur,
	}
	if pos.HasInsufficientMaterial() {
		b.result = Result{Outcome: Draw, Reason: InsufficientMaterial}
	}
	return b
}

// Fork branches off an independent board sharing past history. The fork may
// be mutated (pushed/popped) freely without affecting the original, as long
// as the original does not pop past the shared ancestor.
func (b *Board) Fork() *Board {
	rep := make(map[ZobristHash]int, len(b.repetitions))
	for k, v := range b.repetitions {
		rep[k] = v
	}
	return &Board{
		zt:          b.zt,
		repetitions: rep,
		fullmoves:   b.fullmoves,
		turn:        b.turn,
		result:      b.result,
		current:     b.current,
	}
}

func (b *Board) Position() *Position {
	return b.current.pos
}

func (b *Board) Turn() Color {
	return b.turn
}

func (b *Board) NoProgress() int {
	return b.current.noprogress
}

func (b *Board) FullMoves() int {
	return b.fullmoves
}

func (b *Board) Result() Result {
	return b.result
}

func (b *Board) Hash() ZobristHash {
	return b.current.hash
}

// LegalMoves returns every legal move in the current position.
func (b *Board) LegalMoves() []Move {
	pseudo := b.current.pos.PseudoLegalMoves(b.turn)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if _, ok := b.current.pos.Move(b.turn, m); ok {
			legal = append(legal, m)
		}
	}
	return legal
}

// IsCapture reports whether m captures a piece in the current position.
func (b *Board) IsCapture(m Move) bool {
	return m.IsCapture()
}

// PushMove attempts to play a pseudo-legal move. Returns false if illegal
// (leaves the mover's own king in check). The board is otherwise fully
// mutated to the resulting position; PopMove restores it exactly.
func (b *Board) PushMove(m Move) bool {
	if b.result.IsOver() {
		return false
	}

	next, ok := b.current.pos.Move(b.turn, m)
	if !ok {
		return false
	}

	n := &node{
		pos:        next,
		hash:       b.zt.Hash(next, b.turn.Opponent()),
		noprogress: updateNoProgress(b.current.noprogress, m),
		prev:       b.current,
	}
	b.current.next = m
	b.current = n
	b.turn = b.turn.Opponent()
	b.repetitions[n.hash]++
	if b.turn == White {
		b.fullmoves++
	}

	if b.repetitions[n.hash] >= repetitionLimit {
		b.result = Result{Outcome: Draw, Reason: Repetition}
	}
	if n.noprogress >= noProgressPlyLimit {
		b.result = Result{Outcome: Draw, Reason: NoProgress}
	}
	if next.HasInsufficientMaterial() {
		b.result = Result{Outcome: Draw, Reason: InsufficientMaterial}
	}
	return true
}

// PopMove undoes the last PushMove, restoring the prior position exactly.
// Returns ok=false if there is no history to pop (root of this board/fork).
func (b *Board) PopMove() (Move, bool) {
	if b.current.prev == nil {
		return Move{}, false
	}
	b.turn = b.turn.Opponent()
	b.repetitions[b.current.hash]--
	b.result = Result{}
	if b.turn == Black {
		b.fullmoves--
	}

	m := b.current.prev.next
	b.current.prev.next = Move{}
	b.current = b.current.prev
	return m, true
}

// AdjudicateNoLegalMoves marks the game over given that no legal move
// exists in the current position (checkmate or stalemate) and returns the
// result.
func (b *Board) AdjudicateNoLegalMoves() Result {
	result := Result{Outcome: Draw, Reason: Stalemate}
	if b.current.pos.IsChecked(b.turn) {
		result = Result{Outcome: Loss(b.turn), Reason: Checkmate}
	}
	b.result = result
	return result
}

func (b *Board) String() string {
	return fmt.Sprintf("board{%v turn=%v hash=%x fullmoves=%v result=%v}", b.current.pos, b.turn, b.current.hash, b.fullmoves, b.result)
}

func updateNoProgress(old int, m Move) int {
	if m.Type != Normal {
		return 0
	}
	return old + 1
}
