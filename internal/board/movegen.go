package board

var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves generates every pseudo-legal move for the side to move.
// Check is never consulted: moves may leave or place a king en prise, and
// castling requires only the right and empty squares between king and rook.
// Kings are scanned through their bitboard, so positions where a king has
// been captured simply yield no king moves.
//
// Generation order is fixed: knights, bishops, rooks, queens, kings, pawn
// pushes, pawn captures, en passant, castling last.
func (p *Position) PseudoLegalMoves() []Move {
	us := p.SideToMove
	own := p.Occupied[us]
	enemy := p.Occupied[us.Other()]
	occ := own | enemy
	moves := make([]Move, 0, 48)

	appendTargets := func(from Square, targets Bitboard) {
		for t := targets; t != 0; {
			moves = append(moves, Move{From: from, To: t.PopLSB()})
		}
	}

	for bb := p.Pieces[us][Knight]; bb != 0; {
		from := bb.PopLSB()
		appendTargets(from, knightAttacks[from]&^own)
	}
	for bb := p.Pieces[us][Bishop]; bb != 0; {
		from := bb.PopLSB()
		appendTargets(from, bishopAttacks(from, occ)&^own)
	}
	for bb := p.Pieces[us][Rook]; bb != 0; {
		from := bb.PopLSB()
		appendTargets(from, rookAttacks(from, occ)&^own)
	}
	for bb := p.Pieces[us][Queen]; bb != 0; {
		from := bb.PopLSB()
		appendTargets(from, queenAttacks(from, occ)&^own)
	}
	for bb := p.Pieces[us][King]; bb != 0; {
		from := bb.PopLSB()
		appendTargets(from, kingAttacks[from]&^own)
	}

	moves = p.pawnMoves(moves, us, enemy, occ)
	return p.castlingMoves(moves, us, occ)
}

func (p *Position) pawnMoves(moves []Move, us Color, enemy, occ Bitboard) []Move {
	pawns := p.Pieces[us][Pawn]
	if pawns == 0 {
		return moves
	}
	if us == White {
		single := (pawns << 8) &^ occ
		for t := single; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to-8, to)
		}
		for t := ((single & rank3BB) << 8) &^ occ; t != 0; {
			to := t.PopLSB()
			moves = append(moves, Move{From: to - 16, To: to})
		}
		for t := ((pawns &^ fileABB) << 7) & enemy; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to-7, to)
		}
		for t := ((pawns &^ fileHBB) << 9) & enemy; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to-9, to)
		}
	} else {
		single := (pawns >> 8) &^ occ
		for t := single; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to+8, to)
		}
		for t := ((single & rank6BB) >> 8) &^ occ; t != 0; {
			to := t.PopLSB()
			moves = append(moves, Move{From: to + 16, To: to})
		}
		for t := ((pawns &^ fileHBB) >> 7) & enemy; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to+7, to)
		}
		for t := ((pawns &^ fileABB) >> 9) & enemy; t != 0; {
			to := t.PopLSB()
			moves = appendPawnMove(moves, to+9, to)
		}
	}
	if p.EPSquare != NoSquare {
		for bb := pawnAttacks[us.Other()][p.EPSquare] & pawns; bb != 0; {
			moves = append(moves, Move{From: bb.PopLSB(), To: p.EPSquare, EnPassant: true})
		}
	}
	return moves
}

func appendPawnMove(moves []Move, from, to Square) []Move {
	if r := to.Rank(); r == Rank8 || r == Rank1 {
		for _, pt := range promotionTypes {
			moves = append(moves, Move{From: from, To: to, Promotion: pt})
		}
		return moves
	}
	return append(moves, Move{From: from, To: to})
}

// SquareAttackedBy reports whether any piece of the given color attacks sq.
// It is a plain geometric probe for tooling and tests; move legality never
// consults it.
func (p *Position) SquareAttackedBy(sq Square, by Color) bool {
	occ := p.Occupied[White] | p.Occupied[Black]
	if pawnAttacks[by.Other()][sq]&p.Pieces[by][Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&p.Pieces[by][Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Pieces[by][King] != 0 {
		return true
	}
	if bishopAttacks(sq, occ)&(p.Pieces[by][Bishop]|p.Pieces[by][Queen]) != 0 {
		return true
	}
	return rookAttacks(sq, occ)&(p.Pieces[by][Rook]|p.Pieces[by][Queen]) != 0
}

func (p *Position) castlingMoves(moves []Move, us Color, occ Bitboard) []Move {
	if us == White {
		if p.Castling&CastleWhiteKing != 0 && occ&(F1.BB()|G1.BB()) == 0 &&
			p.Pieces[White][King].Occupied(E1) && p.Pieces[White][Rook].Occupied(H1) {
			moves = append(moves, Move{From: E1, To: G1, Castle: true})
		}
		if p.Castling&CastleWhiteQueen != 0 && occ&(B1.BB()|C1.BB()|D1.BB()) == 0 &&
			p.Pieces[White][King].Occupied(E1) && p.Pieces[White][Rook].Occupied(A1) {
			moves = append(moves, Move{From: E1, To: C1, Castle: true})
		}
		return moves
	}
	if p.Castling&CastleBlackKing != 0 && occ&(F8.BB()|G8.BB()) == 0 &&
		p.Pieces[Black][King].Occupied(E8) && p.Pieces[Black][Rook].Occupied(H8) {
		moves = append(moves, Move{From: E8, To: G8, Castle: true})
	}
	if p.Castling&CastleBlackQueen != 0 && occ&(B8.BB()|C8.BB()|D8.BB()) == 0 &&
		p.Pieces[Black][King].Occupied(E8) && p.Pieces[Black][Rook].Occupied(A8) {
		moves = append(moves, Move{From: E8, To: C8, Castle: true})
	}
	return moves
}
