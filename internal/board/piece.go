package board

import "fmt"

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// PieceType enumerates the six piece kinds. The zero value means no piece.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeNames = [...]string{"", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (t PieceType) String() string {
	if int(t) < len(pieceTypeNames) && t != NoPieceType {
		return pieceTypeNames[t]
	}
	return fmt.Sprintf("PieceType(%d)", uint8(t))
}

// letter returns the uppercase notation letter for the type, "" for pawns.
func (t PieceType) letter() string {
	switch t {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

// Piece packs a piece type and color into one byte. The zero value is NoPiece.
type Piece uint8

// NoPiece is the empty square marker.
const NoPiece Piece = 0

// NewPiece builds a piece; NewPiece(NoPieceType, c) yields NoPiece.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	return Piece(uint8(t)<<1 | uint8(c))
}

func (p Piece) Type() PieceType { return PieceType(p >> 1) }
func (p Piece) Color() Color    { return Color(p & 1) }

var pieceLetters = [2][7]string{
	White: {"", "P", "N", "B", "R", "Q", "K"},
	Black: {"", "p", "n", "b", "r", "q", "k"},
}

// String returns the FEN letter for the piece, or "." for NoPiece.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return pieceLetters[p.Color()][p.Type()]
}

func pieceFromFEN(ch byte) (Piece, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	switch ch {
	case 'P':
		return NewPiece(Pawn, color), true
	case 'N':
		return NewPiece(Knight, color), true
	case 'B':
		return NewPiece(Bishop, color), true
	case 'R':
		return NewPiece(Rook, color), true
	case 'Q':
		return NewPiece(Queen, color), true
	case 'K':
		return NewPiece(King, color), true
	}
	return NoPiece, false
}
