package board

// castleRightsMask lists the rights cleared when a move touches a square.
var castleRightsMask = func() [64]CastleRights {
	var m [64]CastleRights
	m[E1] = CastleWhiteKing | CastleWhiteQueen
	m[A1] = CastleWhiteQueen
	m[H1] = CastleWhiteKing
	m[E8] = CastleBlackKing | CastleBlackQueen
	m[A8] = CastleBlackQueen
	m[H8] = CastleBlackKing
	return m
}()

// Apply plays m with orthodox bookkeeping: capture removal, promotion,
// castling rook relocation, castling-right and clock updates, the en passant
// square on double pushes, and the side-to-move flip. Applying a move whose
// origin square is empty is a no-op.
func (p *Position) Apply(m Move) {
	pc := p.PieceAt(m.From)
	if pc == NoPiece {
		return
	}
	us := pc.Color()
	isPawn := pc.Type() == Pawn
	captured := p.PieceAt(m.To)

	if m.EnPassant && isPawn && captured == NoPiece {
		victim := m.To - 8
		if us == Black {
			victim = m.To + 8
		}
		p.RemovePiece(victim)
	}

	p.RemovePiece(m.From)
	placed := pc
	if m.Promotion != NoPieceType && isPawn {
		placed = NewPiece(m.Promotion, us)
	}
	p.PutPiece(placed, m.To)

	if m.Castle && pc.Type() == King {
		var rookFrom, rookTo Square
		switch m.To {
		case G1:
			rookFrom, rookTo = H1, F1
		case C1:
			rookFrom, rookTo = A1, D1
		case G8:
			rookFrom, rookTo = H8, F8
		case C8:
			rookFrom, rookTo = A8, D8
		}
		if rook := p.RemovePiece(rookFrom); rook != NoPiece {
			p.PutPiece(rook, rookTo)
		}
	}

	p.Castling &^= castleRightsMask[m.From] | castleRightsMask[m.To]

	p.EPSquare = NoSquare
	if isPawn {
		switch {
		case us == White && m.To == m.From+16:
			p.EPSquare = m.From + 8
		case us == Black && m.From == m.To+16:
			p.EPSquare = m.From - 8
		}
	}

	if isPawn || captured != NoPiece {
		p.HalfMoves = 0
	} else {
		p.HalfMoves++
	}
	if us == Black {
		p.FullMoves++
	}
	p.SideToMove = us.Other()
}
