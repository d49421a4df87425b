package board

import "testing"

func TestSAN(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		move Move
		want string
	}{
		{"pawn push", StartFEN, Move{From: E2, To: E4}, "e4"},
		{"knight development", StartFEN, Move{From: G1, To: F3}, "Nf3"},
		{
			"knight capture",
			"rnbqkbnr/pppp1ppp/8/4p3/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 0 2",
			Move{From: F3, To: E5},
			"Nxe5",
		},
		{
			"kingside castle",
			"4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1",
			Move{From: E1, To: G1, Castle: true},
			"O-O",
		},
		{
			"queenside castle",
			"r3k3/8/8/8/8/8/8/R3K3 b q - 0 1",
			Move{From: E8, To: C8, Castle: true},
			"O-O-O",
		},
		{
			"file disambiguation",
			"k7/8/8/8/8/5N2/8/KN6 w - - 0 1",
			Move{From: B1, To: D2},
			"Nbd2",
		},
		{
			"rank disambiguation",
			"k7/8/8/7R/8/8/8/K6R w - - 0 1",
			Move{From: H5, To: H3},
			"R5h3",
		},
		{
			"full square disambiguation",
			"4Q2k/8/8/8/Q3Q3/8/8/K7 w - - 0 1",
			Move{From: E4, To: C6},
			"Qe4c6",
		},
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			Move{From: E4, To: D5},
			"exd5",
		},
		{
			"pawn diagonal to empty square renders as capture",
			"k7/8/8/3P4/8/8/8/K7 w - - 0 1",
			Move{From: D5, To: E6},
			"dxe6",
		},
		{
			"push promotion",
			"8/P7/8/8/8/8/8/k6K w - - 0 1",
			Move{From: A7, To: A8, Promotion: Queen},
			"a8=Q",
		},
		{
			"capture promotion",
			"1r6/P7/8/8/8/8/8/k6K w - - 0 1",
			Move{From: A7, To: B8, Promotion: Knight},
			"axb8=N",
		},
		{
			"king move",
			"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			Move{From: E1, To: E2},
			"Ke2",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustPosition(t, c.fen)
			if got := p.SAN(c.move); got != c.want {
				t.Fatalf("SAN(%s) = %q, want %q", c.move, got, c.want)
			}
		})
	}
}

func TestSANNoCheckSuffix(t *testing.T) {
	// Rook to e2 attacks the white king; dice chess has no checks, so no "+".
	p := mustPosition(t, "4r2k/8/8/8/8/8/8/4K3 b - - 0 1")
	if got := p.SAN(Move{From: E8, To: E2}); got != "Re2" {
		t.Fatalf("SAN = %q, want Re2", got)
	}
}
