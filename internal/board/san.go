package board

import "strings"

// SAN renders m in standard algebraic notation against the current position.
// Disambiguation scans the pseudo-legal move set, so it reflects the moves the
// dice variant actually offers. A pawn stepping diagonally onto an empty
// square is written as a capture; that covers en passant in both its standard
// and extended forms. The variant has no check, so no check suffix is ever
// emitted.
func (p *Position) SAN(m Move) string {
	if m.Castle {
		if m.To.File() > m.From.File() {
			return "O-O"
		}
		return "O-O-O"
	}
	pc := p.PieceAt(m.From)
	if pc == NoPiece {
		return m.String()
	}
	isPawn := pc.Type() == Pawn
	isCapture := p.PieceAt(m.To) != NoPiece || (isPawn && m.From.File() != m.To.File())

	var b strings.Builder
	if isPawn {
		if isCapture {
			b.WriteString(m.From.File().String())
			b.WriteByte('x')
		}
		b.WriteString(m.To.String())
		if m.Promotion != NoPieceType {
			b.WriteByte('=')
			b.WriteString(m.Promotion.letter())
		}
		return b.String()
	}

	b.WriteString(pc.Type().letter())
	b.WriteString(p.disambiguation(pc, m))
	if isCapture {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())
	return b.String()
}

// disambiguation returns the file and/or rank prefix required when other
// pieces of the same kind can reach the same destination.
func (p *Position) disambiguation(pc Piece, m Move) string {
	var others Bitboard
	for _, cand := range p.PseudoLegalMoves() {
		if cand.To != m.To || cand.From == m.From || cand.Castle {
			continue
		}
		if p.PieceAt(cand.From) == pc {
			others.Set(cand.From)
		}
	}
	if others == 0 {
		return ""
	}
	sameRank := others&rankBB(m.From.Rank()) != 0
	sameFile := others&fileBB(m.From.File()) != 0
	switch {
	case sameRank && sameFile:
		return m.From.String()
	case sameFile:
		return m.From.Rank().String()
	default:
		return m.From.File().String()
	}
}
