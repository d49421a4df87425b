package dicechess

import (
	"testing"

	"dicechess/internal/board"
)

func TestRightsGrantAndRevoke(t *testing.T) {
	r := NewRights()
	if !r.Grant(board.Black, board.E3) {
		t.Fatal("first grant refused")
	}
	if r.Grant(board.Black, board.E3) {
		t.Fatal("duplicate grant must be refused")
	}
	if !r.Contains(board.Black, board.E3) {
		t.Fatal("granted right not found")
	}
	if r.Contains(board.White, board.E3) {
		t.Fatal("right leaked to the other color")
	}
	if !r.Revoke(board.Black, board.E3) {
		t.Fatal("revoke of a held right failed")
	}
	if r.Revoke(board.Black, board.E3) {
		t.Fatal("right revoked twice")
	}
}

func TestRightsClearIsColorScoped(t *testing.T) {
	r := NewRights()
	r.Grant(board.White, board.D6)
	r.Grant(board.Black, board.E3)
	r.Clear(board.White)
	if r.Contains(board.White, board.D6) {
		t.Fatal("white right survived clear")
	}
	if !r.Contains(board.Black, board.E3) {
		t.Fatal("black right lost by clearing white")
	}
}

func TestRightsSquaresInGrantOrder(t *testing.T) {
	r := NewRights()
	r.Grant(board.White, board.D6)
	r.Grant(board.White, board.A6)
	got := r.Squares(board.White)
	if len(got) != 2 || got[0] != board.D6 || got[1] != board.A6 {
		t.Fatalf("unexpected squares %v", got)
	}
	got[0] = board.H8
	if !r.Contains(board.White, board.D6) {
		t.Fatal("mutating the returned slice affected the rights")
	}
	if r.Squares(board.Black) != nil {
		t.Fatal("expected nil for a color with no rights")
	}
}

func TestRightsCopyIndependence(t *testing.T) {
	r := NewRights()
	r.Grant(board.Black, board.E3)
	cp := r.Copy()
	cp.Revoke(board.Black, board.E3)
	cp.Grant(board.White, board.C6)
	if !r.Contains(board.Black, board.E3) {
		t.Fatal("copy revoke leaked into the original")
	}
	if r.Contains(board.White, board.C6) {
		t.Fatal("copy grant leaked into the original")
	}
}
