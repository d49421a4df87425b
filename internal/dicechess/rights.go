package dicechess

import "dicechess/internal/board"

// Rights tracks extended en passant rights per color: squares a color's pawns
// may capture onto after an enemy two-square advance. Unlike the standard
// en passant square these survive for the whole opposing turn and are cleared
// only when spent or when their owner's turn ends.
type Rights struct {
	squares [2][]board.Square
}

func NewRights() *Rights {
	return &Rights{}
}

// Grant records a capture right for c onto sq. Duplicate grants are refused.
func (r *Rights) Grant(c board.Color, sq board.Square) bool {
	if r.Contains(c, sq) {
		return false
	}
	r.squares[c] = append(r.squares[c], sq)
	return true
}

// Revoke spends the right on sq and reports whether it was held.
func (r *Rights) Revoke(c board.Color, sq board.Square) bool {
	for i, s := range r.squares[c] {
		if s == sq {
			r.squares[c] = append(r.squares[c][:i], r.squares[c][i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all rights held by c.
func (r *Rights) Clear(c board.Color) {
	r.squares[c] = nil
}

func (r *Rights) Contains(c board.Color, sq board.Square) bool {
	for _, s := range r.squares[c] {
		if s == sq {
			return true
		}
	}
	return false
}

// Squares returns c's rights in grant order.
func (r *Rights) Squares(c board.Color) []board.Square {
	if len(r.squares[c]) == 0 {
		return nil
	}
	out := make([]board.Square, len(r.squares[c]))
	copy(out, r.squares[c])
	return out
}

// Copy returns an independent copy.
func (r *Rights) Copy() *Rights {
	cp := NewRights()
	for c := range r.squares {
		if len(r.squares[c]) > 0 {
			cp.squares[c] = make([]board.Square, len(r.squares[c]))
			copy(cp.squares[c], r.squares[c])
		}
	}
	return cp
}
