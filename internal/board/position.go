package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the orthodox starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CastleRights is a bit set of the four castling permissions.
type CastleRights uint8

const (
	CastleWhiteKing CastleRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen
)

// String renders the rights in FEN order, "-" when none remain.
func (r CastleRights) String() string {
	if r == 0 {
		return "-"
	}
	var b strings.Builder
	if r&CastleWhiteKing != 0 {
		b.WriteByte('K')
	}
	if r&CastleWhiteQueen != 0 {
		b.WriteByte('Q')
	}
	if r&CastleBlackKing != 0 {
		b.WriteByte('k')
	}
	if r&CastleBlackQueen != 0 {
		b.WriteByte('q')
	}
	return b.String()
}

// Position holds a full board state. Fields are exported so a caller layering
// variant rules on top can adjust turn and en passant bookkeeping directly
// after Apply.
type Position struct {
	Pieces     [2][7]Bitboard // by color and piece type; type index 0 unused
	Occupied   [2]Bitboard
	SideToMove Color
	Castling   CastleRights
	EPSquare   Square
	HalfMoves  int
	FullMoves  int
}

// NewPosition returns the orthodox starting position.
func NewPosition() *Position {
	p, err := PositionFromFEN(StartFEN)
	if err != nil {
		panic("board: bad start position: " + err.Error())
	}
	return p
}

// PositionFromFEN parses a FEN record. The clock fields may be omitted.
// Positions without kings are accepted; dice chess simulations reach them.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: fen needs at least 4 fields, got %d", len(fields))
	}
	p := &Position{EPSquare: NoSquare, FullMoves: 1}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: fen has %d ranks", len(ranks))
	}
	for i, row := range ranks {
		r := Rank(7 - i)
		f := FileA
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc, ok := pieceFromFEN(ch)
			if !ok || f > FileH {
				return nil, fmt.Errorf("board: bad fen rank %q", row)
			}
			p.PutPiece(pc, NewSquare(f, r))
			f++
		}
		if f != FileH+1 {
			return nil, fmt.Errorf("board: fen rank %q does not fill 8 files", row)
		}
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return nil, fmt.Errorf("board: bad side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			switch fields[2][j] {
			case 'K':
				p.Castling |= CastleWhiteKing
			case 'Q':
				p.Castling |= CastleWhiteQueen
			case 'k':
				p.Castling |= CastleBlackKing
			case 'q':
				p.Castling |= CastleBlackQueen
			default:
				return nil, fmt.Errorf("board: bad castling field %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: bad en passant field: %w", err)
		}
		p.EPSquare = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("board: bad halfmove clock %q", fields[4])
		}
		p.HalfMoves = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("board: bad fullmove number %q", fields[5])
		}
		p.FullMoves = n
	}
	return p, nil
}

// PieceAt returns the piece on sq, or NoPiece.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	for c := White; c <= Black; c++ {
		if !p.Occupied[c].Occupied(sq) {
			continue
		}
		for t := Pawn; t <= King; t++ {
			if p.Pieces[c][t].Occupied(sq) {
				return NewPiece(t, c)
			}
		}
	}
	return NoPiece
}

// PutPiece places pc on sq, replacing whatever occupies it. NoPiece clears sq.
func (p *Position) PutPiece(pc Piece, sq Square) {
	p.RemovePiece(sq)
	if pc == NoPiece {
		return
	}
	p.Pieces[pc.Color()][pc.Type()].Set(sq)
	p.Occupied[pc.Color()].Set(sq)
}

// RemovePiece clears sq and returns the piece that stood there.
func (p *Position) RemovePiece(sq Square) Piece {
	pc := p.PieceAt(sq)
	if pc == NoPiece {
		return NoPiece
	}
	p.Pieces[pc.Color()][pc.Type()].Clear(sq)
	p.Occupied[pc.Color()].Clear(sq)
	return pc
}

// All returns the combined occupancy of both sides.
func (p *Position) All() Bitboard { return p.Occupied[White] | p.Occupied[Black] }

// Copy returns an independent deep copy.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// FEN renders the position as a FEN record.
func (p *Position) FEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.PieceAt(NewSquare(f, r))
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('/')
	}
	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&b, " %s %s %s %d %d", side, p.Castling, p.EPSquare, p.HalfMoves, p.FullMoves)
	return b.String()
}

// String renders the board as text, rank 8 at the top, dots for empty squares.
func (p *Position) String() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if f > FileA {
				b.WriteByte(' ')
			}
			b.WriteString(p.PieceAt(NewSquare(f, r)).String())
		}
		if r == Rank1 {
			break
		}
		b.WriteByte('\n')
	}
	return b.String()
}
