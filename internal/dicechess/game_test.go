package dicechess

import (
	"testing"

	"dicechess/internal/board"
)

func newTestGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGame(Config{FEN: fen})
	if err != nil {
		t.Fatalf("NewGame(%q): %v", fen, err)
	}
	return g
}

func TestNewGameDefaults(t *testing.T) {
	g := newTestGame(t, "")
	if g.FEN() != board.StartFEN {
		t.Fatalf("unexpected start position %q", g.FEN())
	}
	if g.Turn() != board.White {
		t.Fatalf("white moves first, got %s", g.Turn())
	}
	if g.ID() == "" {
		t.Fatal("expected a game id")
	}
	if len(g.Dice()) != 0 {
		t.Fatalf("fresh game must have no dice, got %s", g.Dice())
	}
	if g.History() != nil {
		t.Fatal("fresh game must have no history")
	}
}

func TestNewGameRejectsBadFEN(t *testing.T) {
	if _, err := NewGame(Config{FEN: "not a position"}); err == nil {
		t.Fatal("expected an error for a malformed FEN")
	}
}

func TestApplyKeepsMoverToMove(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Pawn})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	if g.Turn() != board.White {
		t.Fatalf("mover must keep the move, got %s", g.Turn())
	}
	if g.Position().EPSquare != board.NoSquare {
		t.Fatalf("standard en passant square must stay cleared, got %s", g.Position().EPSquare)
	}
	if len(g.Dice()) != 0 {
		t.Fatalf("pawn die not spent, dice %s", g.Dice())
	}
}

func TestApplyConsumesMatchingDie(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Knight, board.Pawn})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	if d := g.Dice(); len(d) != 1 || d[0] != board.Knight {
		t.Fatalf("expected a leftover knight die, got %s", d)
	}
	g.Apply(board.Move{From: board.G1, To: board.F3}, true)
	if len(g.Dice()) != 0 {
		t.Fatalf("knight die not spent, dice %s", g.Dice())
	}
}

func TestApplyToleratesMissingDie(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Knight})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	if d := g.Dice(); len(d) != 1 || d[0] != board.Knight {
		t.Fatalf("missing pawn die must leave the roll alone, got %s", d)
	}
}

func TestCastlingSpendsBothDice(t *testing.T) {
	const fen = "7k/8/8/8/8/8/8/4K2R w K - 0 1"
	castle := board.Move{From: board.E1, To: board.G1, Castle: true}

	g := newTestGame(t, fen)
	g.SetDice(Roll{board.Rook, board.King})
	g.Apply(castle, true)
	if len(g.Dice()) != 0 {
		t.Fatalf("castling must spend king and rook dice, got %s", g.Dice())
	}

	// Without a rook die the king die is still spent.
	g = newTestGame(t, fen)
	g.SetDice(Roll{board.King})
	g.Apply(castle, true)
	if len(g.Dice()) != 0 {
		t.Fatalf("king die not spent, got %s", g.Dice())
	}

	// Without a king die the rook die survives.
	g = newTestGame(t, fen)
	g.SetDice(Roll{board.Rook})
	g.Apply(castle, true)
	if d := g.Dice(); len(d) != 1 || d[0] != board.Rook {
		t.Fatalf("rook die must survive without a king die, got %s", d)
	}
}

func TestDoublePushGrantsRightWithAdjacentEnemyPawn(t *testing.T) {
	g := newTestGame(t, "7k/8/8/8/3p4/8/4P3/K7 w - - 0 1")
	g.SetDice(Roll{board.Pawn})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	if !g.rights.Contains(board.Black, board.E3) {
		t.Fatal("black must gain a capture right on the skipped square")
	}
	if g.Position().EPSquare != board.NoSquare {
		t.Fatalf("standard en passant square must be cleared, got %s", g.Position().EPSquare)
	}
}

func TestDoublePushWithoutNeighborGrantsNothing(t *testing.T) {
	g := newTestGame(t, "7k/8/8/8/8/8/4P3/K7 w - - 0 1")
	g.SetDice(Roll{board.Pawn})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	if g.rights.Squares(board.Black) != nil {
		t.Fatalf("no enemy pawn beside e4, rights %v", g.rights.Squares(board.Black))
	}
}

func TestSinglePushGrantsNothing(t *testing.T) {
	g := newTestGame(t, "7k/8/8/8/8/3p4/4P3/K7 w - - 0 1")
	g.SetDice(Roll{board.Pawn})
	g.Apply(board.Move{From: board.E2, To: board.E3}, true)
	if g.rights.Squares(board.Black) != nil {
		t.Fatalf("single push must not grant rights, got %v", g.rights.Squares(board.Black))
	}
}

// A full extended en passant exchange: white advances two squares past a black
// pawn, the right survives into black's turn, and the capture lands on the
// skipped square while lifting the advanced pawn.
func TestExtendedEnPassantLifecycle(t *testing.T) {
	g := newTestGame(t, "7k/8/8/8/3p4/8/4P3/K7 w - - 0 1")

	g.SetDice(Roll{board.Pawn})
	moves, err := g.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 2 {
		t.Fatalf("expected e3 and e4 pushes, got %v", moves)
	}
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)

	moves, err = g.LegalMoves()
	if err != nil || len(moves) != 0 {
		t.Fatalf("dice exhausted, expected no moves, got %v (%v)", moves, err)
	}
	g.EndTurn()
	if g.Turn() != board.Black {
		t.Fatalf("turn must pass to black, got %s", g.Turn())
	}
	if !g.rights.Contains(board.Black, board.E3) {
		t.Fatal("black's right must survive white's end of turn")
	}

	g.SetDice(Roll{board.Pawn})
	moves, err = g.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	capture := board.Move{From: board.D4, To: board.E3}
	if !containsMove(moves, capture) {
		t.Fatalf("expected the en passant capture d4e3 in %v", moves)
	}

	g.Apply(capture, true)
	if got := g.Position().PieceAt(board.E4); got != board.NoPiece {
		t.Fatalf("the advanced pawn must be lifted from e4, found %s", got)
	}
	if got := g.Position().PieceAt(board.E3); got != board.NewPiece(board.Pawn, board.Black) {
		t.Fatalf("capturing pawn must land on e3, found %s", got)
	}
	if g.Position().PieceAt(board.D4) != board.NoPiece {
		t.Fatal("capturing pawn must leave d4")
	}
	if g.rights.Contains(board.Black, board.E3) {
		t.Fatal("the right must be spent by the capture")
	}
	if g.Turn() != board.Black {
		t.Fatalf("mover keeps the move after the capture, got %s", g.Turn())
	}
}

func TestExtendedEPNeedsTheAdvancedPawn(t *testing.T) {
	g := newTestGame(t, "7k/8/8/8/3p4/8/8/K7 b - - 0 1")
	g.rights.Grant(board.Black, board.E3)
	g.SetDice(Roll{board.Pawn})
	moves, err := g.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if containsMove(moves, board.Move{From: board.D4, To: board.E3}) {
		t.Fatalf("no pawn stands on e4, capture must not be offered: %v", moves)
	}
	if !containsMove(moves, board.Move{From: board.D4, To: board.D3}) {
		t.Fatalf("plain push missing from %v", moves)
	}
}

func TestEndTurnClearsOnlyMoverRights(t *testing.T) {
	g := newTestGame(t, "")
	g.rights.Grant(board.White, board.D6)
	g.rights.Grant(board.Black, board.E3)
	g.EndTurn()
	if g.rights.Contains(board.White, board.D6) {
		t.Fatal("white's rights must be cleared when white's turn ends")
	}
	if !g.rights.Contains(board.Black, board.E3) {
		t.Fatal("black's rights must survive white's end of turn")
	}
	if g.Turn() != board.Black {
		t.Fatalf("turn must flip, got %s", g.Turn())
	}
}

func TestIsGameEndingBeforeApply(t *testing.T) {
	g := newTestGame(t, "7k/6P1/8/8/8/8/8/K7 w - - 0 1")
	ending := board.Move{From: board.G7, To: board.H8, Promotion: board.Queen}
	if !g.IsGameEnding(ending) {
		t.Fatal("capturing the king must end the game")
	}
	quiet := board.Move{From: board.G7, To: board.G8, Promotion: board.Queen}
	if g.IsGameEnding(quiet) {
		t.Fatal("promotion to an empty square does not end the game")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Pawn, board.Knight})
	g.rights.Grant(board.Black, board.E6)

	fen := g.FEN()
	snap := g.Copy()

	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	g.EndTurn()

	if snap.FEN() != fen {
		t.Fatalf("snapshot position changed: %q vs %q", snap.FEN(), fen)
	}
	if d := snap.Dice(); len(d) != 2 || d[0] != board.Pawn || d[1] != board.Knight {
		t.Fatalf("snapshot dice changed: %s", d)
	}
	if !snap.rights.Contains(board.Black, board.E6) {
		t.Fatal("snapshot rights changed")
	}
	if snap.ID() != g.ID() {
		t.Fatal("copies share the game id")
	}
}

func TestHistoryRecordsBothNotations(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Pawn, board.Knight})
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)
	g.Apply(board.Move{From: board.G1, To: board.F3}, true)

	h := g.History()
	if len(h) != 2 {
		t.Fatalf("expected two records, got %v", h)
	}
	if h[0].UCI != "e2e4" || h[0].SAN != "e4" {
		t.Fatalf("unexpected first record %+v", h[0])
	}
	if h[1].UCI != "g1f3" || h[1].SAN != "Nf3" {
		t.Fatalf("unexpected second record %+v", h[1])
	}
}

func TestTurnFlow(t *testing.T) {
	g := newTestGame(t, "")
	g.SetDice(Roll{board.Pawn, board.Knight})

	moves, err := g.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 20 {
		t.Fatalf("expected the full opening fan of 20 moves, got %d", len(moves))
	}
	g.Apply(board.Move{From: board.E2, To: board.E4}, true)

	moves, err = g.LegalMoves()
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	// b1 reaches a3 and c3; g1 reaches f3, h3 and the vacated e2.
	if len(moves) != 5 {
		t.Fatalf("one knight die left, expected 5 moves, got %v", moves)
	}
	g.Apply(board.Move{From: board.B1, To: board.C3}, true)

	moves, err = g.LegalMoves()
	if err != nil || len(moves) != 0 {
		t.Fatalf("dice exhausted, expected no moves, got %v (%v)", moves, err)
	}
	g.EndTurn()
	if g.Turn() != board.Black {
		t.Fatalf("expected black to move, got %s", g.Turn())
	}
}
