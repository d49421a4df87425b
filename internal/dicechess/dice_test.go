package dicechess

import (
	"testing"

	"dicechess/internal/board"
)

func TestRollRemove(t *testing.T) {
	r := Roll{board.Pawn, board.Knight, board.Pawn}
	if !r.Remove(board.Pawn) {
		t.Fatal("expected first pawn die to be removed")
	}
	if len(r) != 2 || r[0] != board.Knight || r[1] != board.Pawn {
		t.Fatalf("unexpected dice after removal: %s", r)
	}
	if r.Remove(board.Queen) {
		t.Fatal("removing an absent die must report false")
	}
	if len(r) != 2 {
		t.Fatalf("absent removal must not change the dice, got %s", r)
	}
}

func TestRollContains(t *testing.T) {
	r := Roll{board.Rook, board.King}
	if !r.Contains(board.Rook) || !r.Contains(board.King) {
		t.Fatalf("missing dice in %s", r)
	}
	if r.Contains(board.Pawn) {
		t.Fatalf("unexpected pawn die in %s", r)
	}
}

func TestRollCopyIndependence(t *testing.T) {
	r := Roll{board.Pawn, board.Rook}
	cp := r.Copy()
	cp.Remove(board.Pawn)
	if len(r) != 2 {
		t.Fatalf("copy mutation leaked into the original: %s", r)
	}
	var empty Roll
	if empty.Copy() != nil {
		t.Fatal("copy of a nil roll must stay nil")
	}
}

func TestRollString(t *testing.T) {
	r := Roll{board.Pawn, board.Rook, board.King}
	if got := r.String(); got != "Pawn, Rook, King" {
		t.Fatalf("Roll.String() = %q", got)
	}
}

func TestRollerDeterministic(t *testing.T) {
	a := NewRoller(42)
	b := NewRoller(42)
	for i := 0; i < 8; i++ {
		ra, rb := a.Roll(), b.Roll()
		if len(ra) != 3 || len(rb) != 3 {
			t.Fatalf("roll %d: expected three dice, got %d and %d", i, len(ra), len(rb))
		}
		for j := range ra {
			if ra[j] != rb[j] {
				t.Fatalf("roll %d die %d: %s vs %s", i, j, ra[j], rb[j])
			}
			if ra[j] < board.Pawn || ra[j] > board.King {
				t.Fatalf("roll %d die %d: invalid face %d", i, j, ra[j])
			}
		}
	}
}

func TestRollerSeedsDiffer(t *testing.T) {
	a := NewRoller(1)
	b := NewRoller(2)
	same := true
	for i := 0; i < 8; i++ {
		ra, rb := a.Roll(), b.Roll()
		for j := range ra {
			if ra[j] != rb[j] {
				same = false
			}
		}
	}
	if same {
		t.Fatal("different seeds produced identical dice for eight rolls")
	}
}
