package board

// PseudoLegalMoves generates all moves for turn that are legal except for
// possibly leaving turn's own king in check; Position.Move rejects those
// when applied.
func (p *Position) PseudoLegalMoves(turn Color) []Move {
	var moves []Move
	own := p.occ[turn]

	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if !p.pieces[turn][Pawn].IsSet(sq) && !p.pieces[turn][Knight].IsSet(sq) &&
			!p.pieces[turn][Bishop].IsSet(sq) && !p.pieces[turn][Rook].IsSet(sq) &&
			!p.pieces[turn][Queen].IsSet(sq) && !p.pieces[turn][King].IsSet(sq) {
			continue
		}

		switch {
		case p.pieces[turn][Pawn].IsSet(sq):
			moves = append(moves, p.pawnMoves(turn, sq)...)
		case p.pieces[turn][Knight].IsSet(sq):
			moves = append(moves, p.leaperMoves(turn, sq, Knight, knightAttacks(sq)&^own)...)
		case p.pieces[turn][Bishop].IsSet(sq):
			moves = append(moves, p.leaperMoves(turn, sq, Bishop, slidingAttacks(sq, p.Occupied(), bishopDirs)&^own)...)
		case p.pieces[turn][Rook].IsSet(sq):
			moves = append(moves, p.leaperMoves(turn, sq, Rook, slidingAttacks(sq, p.Occupied(), rookDirs)&^own)...)
		case p.pieces[turn][Queen].IsSet(sq):
			moves = append(moves, p.leaperMoves(turn, sq, Queen, slidingAttacks(sq, p.Occupied(), queenDirs)&^own)...)
		case p.pieces[turn][King].IsSet(sq):
			moves = append(moves, p.leaperMoves(turn, sq, King, kingAttacks(sq)&^own)...)
			moves = append(moves, p.castlingMoves(turn, sq)...)
		}
	}
	return moves
}

func (p *Position) leaperMoves(turn Color, from Square, piece Piece, targets Bitboard) []Move {
	var moves []Move
	for _, to := range targets.ToSquares() {
		if p.occ[turn.Opponent()].IsSet(to) {
			_, cap, _ := p.PieceAt(to)
			moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: piece, Capture: cap})
		} else {
			moves = append(moves, Move{Type: Normal, From: from, To: to, Piece: piece})
		}
	}
	return moves
}

var promotionPieces = []Piece{Queen, Rook, Bishop, Knight}

func (p *Position) pawnMoves(turn Color, from Square) []Move {
	var moves []Move
	promoRank := pawnPromoRank(turn)

	addPush := func(to Square, mtype MoveType) {
		if to.Rank() == promoRank {
			pt := Promotion
			if mtype == Capture || mtype == CapturePromotion {
				pt = CapturePromotion
			}
			for _, pc := range promotionPieces {
				moves = append(moves, Move{Type: pt, From: from, To: to, Piece: Pawn, Promotion: pc})
			}
			return
		}
		moves = append(moves, Move{Type: mtype, From: from, To: to, Piece: Pawn})
	}

	// Single push.
	if to, ok := pawnPushSquare(turn, from); ok && p.IsEmpty(to) {
		addPush(to, Push)

		// Double push from the start rank.
		if from.Rank() == pawnStartRank(turn) {
			if to2, ok2 := pawnPushSquare(turn, to); ok2 && p.IsEmpty(to2) {
				moves = append(moves, Move{Type: Jump, From: from, To: to2, Piece: Pawn})
			}
		}
	}

	// Captures.
	targets := pawnAttackersSquares(turn.Opponent(), from) // squares this pawn attacks, reusing the symmetric helper
	for _, to := range targets.ToSquares() {
		if p.occ[turn.Opponent()].IsSet(to) {
			_, cap, _ := p.PieceAt(to)
			if to.Rank() == promoRank {
				for _, pc := range promotionPieces {
					moves = append(moves, Move{Type: CapturePromotion, From: from, To: to, Piece: Pawn, Promotion: pc, Capture: cap})
				}
			} else {
				moves = append(moves, Move{Type: Capture, From: from, To: to, Piece: Pawn, Capture: cap})
			}
		} else if ep, ok := p.EnPassant(); ok && ep == to {
			moves = append(moves, Move{Type: EnPassant, From: from, To: to, Piece: Pawn, Capture: Pawn})
		}
	}
	return moves
}

func (p *Position) castlingMoves(turn Color, kingSq Square) []Move {
	var moves []Move
	opp := turn.Opponent()
	if p.IsChecked(turn) {
		return nil
	}

	type spec struct {
		right           Castling
		kingTo, rookFr  Square
		clear, noAttack []Square
	}
	var specs []spec
	if turn == White {
		specs = []spec{
			{WhiteKingSideCastle, NewSquare(FileG, Rank1), NewSquare(FileH, Rank1),
				[]Square{NewSquare(FileF, Rank1), NewSquare(FileG, Rank1)},
				[]Square{NewSquare(FileF, Rank1), NewSquare(FileG, Rank1)}},
			{WhiteQueenSideCastle, NewSquare(FileC, Rank1), NewSquare(FileA, Rank1),
				[]Square{NewSquare(FileB, Rank1), NewSquare(FileC, Rank1), NewSquare(FileD, Rank1)},
				[]Square{NewSquare(FileC, Rank1), NewSquare(FileD, Rank1)}},
		}
	} else {
		specs = []spec{
			{BlackKingSideCastle, NewSquare(FileG, Rank8), NewSquare(FileH, Rank8),
				[]Square{NewSquare(FileF, Rank8), NewSquare(FileG, Rank8)},
				[]Square{NewSquare(FileF, Rank8), NewSquare(FileG, Rank8)}},
			{BlackQueenSideCastle, NewSquare(FileC, Rank8), NewSquare(FileA, Rank8),
				[]Square{NewSquare(FileB, Rank8), NewSquare(FileC, Rank8), NewSquare(FileD, Rank8)},
				[]Square{NewSquare(FileC, Rank8), NewSquare(FileD, Rank8)}},
		}
	}

	for _, s := range specs {
		if !p.castling.IsAllowed(s.right) {
			continue
		}
		blocked := false
		for _, sq := range s.clear {
			if !p.IsEmpty(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		safe := true
		for _, sq := range s.noAttack {
			if p.AttackedBy(opp, sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		mtype := KingSideCastle
		if s.right == WhiteQueenSideCastle || s.right == BlackQueenSideCastle {
			mtype = QueenSideCastle
		}
		moves = append(moves, Move{Type: mtype, From: kingSq, To: s.kingTo, Piece: King})
	}
	return moves
}

// castlingRookSquares returns the rook's from/to squares for a castling move.
func castlingRookSquares(turn Color, mtype MoveType) (from, to Square) {
	if turn == White {
		if mtype == KingSideCastle {
			return NewSquare(FileH, Rank1), NewSquare(FileF, Rank1)
		}
		return NewSquare(FileA, Rank1), NewSquare(FileD, Rank1)
	}
	if mtype == KingSideCastle {
		return NewSquare(FileH, Rank8), NewSquare(FileF, Rank8)
	}
	return NewSquare(FileA, Rank8), NewSquare(FileD, Rank8)
}

// castlingRightsLost returns the rights a move on from/to invalidates.
func castlingRightsLost(from, to Square) Castling {
	var lost Castling
	switch from {
	case NewSquare(FileE, Rank1):
		lost |= WhiteKingSideCastle | WhiteQueenSideCastle
	case NewSquare(FileA, Rank1):
		lost |= WhiteQueenSideCastle
	case NewSquare(FileH, Rank1):
		lost |= WhiteKingSideCastle
	case NewSquare(FileE, Rank8):
		lost |= BlackKingSideCastle | BlackQueenSideCastle
	case NewSquare(FileA, Rank8):
		lost |= BlackQueenSideCastle
	case NewSquare(FileH, Rank8):
		lost |= BlackKingSideCastle
	}
	switch to {
	case NewSquare(FileA, Rank1):
		lost |= WhiteQueenSideCastle
	case NewSquare(FileH, Rank1):
		lost |= WhiteKingSideCastle
	case NewSquare(FileA, Rank8):
		lost |= BlackQueenSideCastle
	case NewSquare(FileH, Rank8):
		lost |= BlackKingSideCastle
	}
	return lost
}

// Move applies a pseudo-legal move for turn and returns the resulting
// position, or ok=false if it leaves turn's own king in check (illegal).
// The input position is never mutated.
func (p *Position) Move(turn Color, m Move) (*Position, bool) {
	next := p.clone()
	opp := turn.Opponent()

	next.clear(m.From, turn, m.Piece)

	switch m.Type {
	case Capture:
		next.clear(m.To, opp, m.Capture)
		next.set(m.To, turn, m.Piece)
	case EnPassant:
		capSq := reverseEnPassantCaptureSquare(turn, m.To)
		next.clear(capSq, opp, Pawn)
		next.set(m.To, turn, m.Piece)
	case Promotion:
		next.set(m.To, turn, m.Promotion)
	case CapturePromotion:
		next.clear(m.To, opp, m.Capture)
		next.set(m.To, turn, m.Promotion)
	case KingSideCastle, QueenSideCastle:
		next.set(m.To, turn, m.Piece)
		rf, rt := castlingRookSquares(turn, m.Type)
		next.clear(rf, turn, Rook)
		next.set(rt, turn, Rook)
	default:
		next.set(m.To, turn, m.Piece)
	}

	next.castling &^= castlingRightsLost(m.From, m.To)

	next.enpassant = ZeroSquare
	if m.Type == Jump {
		ep, _ := pawnPushSquare(turn, m.From)
		next.enpassant = ep
	}

	if next.IsChecked(turn) {
		return nil, false
	}
	return next, true
}

// reverseEnPassantCaptureSquare returns the square of the pawn captured en
// passant, given the capturing side and its destination square.
func reverseEnPassantCaptureSquare(turn Color, to Square) Square {
	if turn == White {
		return NewSquare(to.File(), to.Rank()-1)
	}
	return NewSquare(to.File(), to.Rank()+1)
}
