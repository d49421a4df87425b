package dicechess

import (
	"math/rand"
	"strings"
	"time"

	"dicechess/internal/board"
)

// DieFaces lists the six faces of a piece die.
var DieFaces = [6]board.PieceType{
	board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King,
}

// Roll is the ordered multiset of dice available to the mover. Duplicates are
// meaningful: three pawn dice allow three pawn moves in one turn.
type Roll []board.PieceType

// Contains reports whether a die of type t remains.
func (r Roll) Contains(t board.PieceType) bool {
	for _, d := range r {
		if d == t {
			return true
		}
	}
	return false
}

// Remove spends the first die of type t and reports whether one was found.
// Spending a missing type is a no-op, not an error.
func (r *Roll) Remove(t board.PieceType) bool {
	for i, d := range *r {
		if d == t {
			*r = append((*r)[:i], (*r)[i+1:]...)
			return true
		}
	}
	return false
}

// Copy returns an independent copy.
func (r Roll) Copy() Roll {
	if r == nil {
		return nil
	}
	out := make(Roll, len(r))
	copy(out, r)
	return out
}

// String joins the die names, e.g. "Pawn, Rook, King".
func (r Roll) String() string {
	names := make([]string, len(r))
	for i, d := range r {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

// Roller draws dice from its own seeded source so that games replay
// deterministically for a fixed seed.
type Roller struct {
	rng *rand.Rand
}

// NewRoller seeds a roller; seed 0 draws a seed from the clock.
func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll draws three dice, each an independent uniform pick of the six faces.
// Three dice are always drawn regardless of remaining material.
func (r *Roller) Roll() Roll {
	out := make(Roll, 0, 3)
	for i := 0; i < 3; i++ {
		out = append(out, DieFaces[r.rng.Intn(len(DieFaces))])
	}
	return out
}
