package board

import "fmt"

// Square indexes the board A1..H8, rank-major: A1 is 0, H1 is 7, A8 is 56.
type Square uint8

// NoSquare marks the absence of a square, e.g. a cleared en passant slot.
const NoSquare Square = 64

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File is a board column, FileA through FileH.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string { return string([]byte{'a' + byte(f)}) }

// Rank is a board row, Rank1 through Rank8.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string { return string([]byte{'1' + byte(r)}) }

// NewSquare builds a square from file and rank.
func NewSquare(f File, r Rank) Square { return Square(uint8(r)<<3 | uint8(f)) }

func (s Square) File() File { return File(s & 7) }
func (s Square) Rank() Rank { return Rank(s >> 3) }

// Valid reports whether s names a real board square.
func (s Square) Valid() bool { return s < 64 }

// BB returns the single-bit bitboard for s.
func (s Square) BB() Bitboard { return Bitboard(1) << s }

// String renders algebraic coordinates like "e4", or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare reads algebraic coordinates like "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("board: invalid square %q", s)
	}
	return NewSquare(File(s[0]-'a'), Rank(s[1]-'1')), nil
}
