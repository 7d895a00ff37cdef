// Package fen encodes and decodes board positions in Forsyth-Edwards
// Notation, the wire format used by the xboard "setboard" command.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkem/forcedchess/internal/board"
)

// Initial is the FEN for the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN string into a position, side to move, half-move
// no-progress counter and full-move number.
func Decode(s string) (*board.Position, board.Color, int, int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 4 {
		return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: too few fields", s)
	}

	placements, err := decodeBoard(fields[0])
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: %w", s, err)
	}

	var turn board.Color
	switch fields[1] {
	case "w":
		turn = board.White
	case "b":
		turn = board.Black
	default:
		return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: bad side to move", s)
	}

	castling := board.ParseCastling(fields[2])

	var ep board.Square
	if fields[3] != "-" {
		runes := []rune(fields[3])
		if len(runes) != 2 {
			return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: bad en passant square", s)
		}
		sq, err := board.ParseSquare(runes[0], runes[1])
		if err != nil {
			return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: %w", s, err)
		}
		ep = sq
	}

	noprogress, fullmoves := 0, 1
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			noprogress = n
		}
	}
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			fullmoves = n
		}
	}

	pos, err := board.NewPosition(placements, castling, ep)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("invalid fen %q: %w", s, err)
	}
	return pos, turn, noprogress, fullmoves, nil
}

func decodeBoard(s string) ([]board.Placement, error) {
	ranks := strings.Split(s, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %v", len(ranks))
	}

	var placements []board.Placement
	for i, rank := range ranks {
		r := board.Rank(7 - i)
		f := 0
		for _, r2 := range rank {
			if r2 >= '1' && r2 <= '8' {
				f += int(r2 - '0')
				continue
			}
			piece, ok := board.ParsePiece(r2)
			if !ok {
				return nil, fmt.Errorf("bad piece char %q", r2)
			}
			c := board.Black
			if r2 >= 'A' && r2 <= 'Z' {
				c = board.White
			}
			if f > 7 {
				return nil, fmt.Errorf("rank %q overflows", rank)
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(board.File(f), r),
				Color:  c,
				Piece:  piece,
			})
			f++
		}
	}
	return placements, nil
}

// Encode renders a position, side to move, no-progress counter and
// full-move number as a FEN string.
func Encode(pos *board.Position, turn board.Color, noprogress, fullmoves int) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := board.NewSquare(board.File(f), board.Rank(r))
			c, piece, ok := pos.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceLetter(c, piece))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), turn, pos.Castling(), ep, noprogress, fullmoves)
}

func pieceLetter(c board.Color, p board.Piece) string {
	s := p.String()
	if c == board.White {
		return strings.ToUpper(s)
	}
	return s
}
