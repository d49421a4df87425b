package board

import "strings"

// Move describes a single move. Castle marks the king's two-file castling hop;
// EnPassant marks a standard en passant capture against the position's current
// EPSquare. Extended en passant captures in the dice variant are plain pawn
// moves onto an empty square and carry no flag.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Castle    bool
	EnPassant bool
}

// String renders the move in UCI form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += strings.ToLower(m.Promotion.letter())
	}
	return s
}
