// Package dicechess implements the dice chess variant: each turn the mover
// rolls three piece dice and plays one move per die, restricted to pieces
// whose type matches a remaining die. There is no check, checkmate or
// stalemate; the game ends when a king is captured. Castling is allowed
// through attacked squares and consumes both a king die and a rook die.
package dicechess

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dicechess/internal/board"
)

// Config carries the knobs for a new game. The zero value starts a standard
// game with a clock-seeded roller and no logging.
type Config struct {
	// FEN is the start position; empty means the standard start.
	FEN string
	// Seed seeds the dice roller; 0 draws from the clock.
	Seed   int64
	Logger *zap.Logger
}

// MoveRecord is one played move in both notations.
type MoveRecord struct {
	UCI string
	SAN string
}

// Game holds a full variant state: position, remaining dice, extended
// en passant rights and move history. It is not safe for concurrent use.
type Game struct {
	id     string
	pos    *board.Position
	roll   Roll
	rights *Rights
	roller *Roller

	history []MoveRecord
	logger  *zap.Logger

	// recording is off in lookahead copies so that simulated moves stay out
	// of the history and the logs.
	recording bool
}

func NewGame(cfg Config) (*Game, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fen := cfg.FEN
	if fen == "" {
		fen = board.StartFEN
	}
	pos, err := board.PositionFromFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("dicechess: start position: %w", err)
	}
	return &Game{
		id:        uuid.NewString(),
		pos:       pos,
		rights:    NewRights(),
		roller:    NewRoller(cfg.Seed),
		logger:    logger,
		recording: true,
	}, nil
}

func (g *Game) ID() string { return g.id }

// Turn is the color to move.
func (g *Game) Turn() board.Color { return g.pos.SideToMove }

// Position exposes the underlying position. Callers must treat it as
// read-only; mutate through Apply.
func (g *Game) Position() *board.Position { return g.pos }

// Dice returns the remaining dice for the current turn.
func (g *Game) Dice() Roll { return g.roll.Copy() }

// History returns the played moves in order.
func (g *Game) History() []MoveRecord {
	if len(g.history) == 0 {
		return nil
	}
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

func (g *Game) FEN() string    { return g.pos.FEN() }
func (g *Game) String() string { return g.pos.String() }

// SAN renders m against the current position.
func (g *Game) SAN(m board.Move) string { return g.pos.SAN(m) }

// RollDice draws three fresh dice for the current turn and returns a copy.
func (g *Game) RollDice() Roll {
	g.roll = g.roller.Roll()
	if g.recording {
		g.logger.Debug("dice rolled",
			zap.String("game_id", g.id),
			zap.String("turn", g.pos.SideToMove.String()),
			zap.String("dice", g.roll.String()))
	}
	return g.roll.Copy()
}

// SetDice replaces the remaining dice, for restoring a saved turn.
func (g *Game) SetDice(r Roll) { g.roll = r.Copy() }

// IsGameEnding reports whether m captures a king. It must be asked before the
// move is applied; afterwards the king is gone.
func (g *Game) IsGameEnding(m board.Move) bool {
	return g.pos.PieceAt(m.To).Type() == board.King
}

// Apply plays m for the side to move. The turn does not pass: the mover keeps
// moving until the dice run out or no legal move remains, and EndTurn hands
// over. With consumeDie set the matching die is spent, extended en passant
// captures are resolved and new rights are granted; lookahead uses the same
// path so simulated turns deplete dice exactly like real ones.
func (g *Game) Apply(m board.Move, consumeDie bool) {
	pc := g.pos.PieceAt(m.From)
	if pc == board.NoPiece {
		return
	}
	us := pc.Color()

	san := ""
	if g.recording {
		san = g.pos.SAN(m)
	}

	// An extended en passant capture lands on an empty rights square. The
	// advanced pawn sits one rank behind the landing square and is lifted
	// before the engine applies the quiet pawn move.
	if consumeDie && pc.Type() == board.Pawn &&
		g.pos.PieceAt(m.To) == board.NoPiece && g.rights.Contains(us, m.To) {
		victim := m.To - 8
		if us == board.Black {
			victim = m.To + 8
		}
		g.pos.RemovePiece(victim)
		g.rights.Revoke(us, m.To)
	}

	g.pos.Apply(m)

	// The mover moves again until the turn is handed over explicitly, and
	// the standard en passant window never applies across dice moves.
	g.pos.SideToMove = us
	g.pos.EPSquare = board.NoSquare

	if consumeDie {
		// Die removal tolerates absence. A castle spends the rook die only
		// after the king die was actually found.
		if g.roll.Remove(pc.Type()) && m.Castle {
			g.roll.Remove(board.Rook)
		}
		if pc.Type() == board.Pawn {
			g.grantRightAfterDoublePush(m, us)
		}
	}

	if g.recording {
		g.history = append(g.history, MoveRecord{UCI: m.String(), SAN: san})
		g.logger.Debug("move applied",
			zap.String("game_id", g.id),
			zap.String("uci", m.String()),
			zap.String("san", san),
			zap.String("dice", g.roll.String()))
	}
}

// grantRightAfterDoublePush gives the opponent an extended en passant right on
// the skipped square when an enemy pawn stands beside the landing square.
func (g *Game) grantRightAfterDoublePush(m board.Move, us board.Color) {
	fromRank, toRank := int(m.From.Rank()), int(m.To.Rank())
	if fromRank-toRank != 2 && toRank-fromRank != 2 {
		return
	}
	them := us.Other()
	enemyPawn := board.NewPiece(board.Pawn, them)
	adjacent := false
	for _, df := range [2]int{-1, 1} {
		f := int(m.To.File()) + df
		if f < 0 || f > 7 {
			continue
		}
		sq := board.NewSquare(board.File(f), m.To.Rank())
		if g.pos.PieceAt(sq) == enemyPawn {
			adjacent = true
			break
		}
	}
	if !adjacent {
		return
	}
	mid := board.Square((m.From + m.To) / 2)
	if g.rights.Grant(them, mid) && g.recording {
		g.logger.Debug("en passant right granted",
			zap.String("game_id", g.id),
			zap.String("to", them.String()),
			zap.String("square", mid.String()))
	}
}

// EndTurn clears the mover's unspent en passant rights and hands the move to
// the opponent. The opponent's rights survive into their turn.
func (g *Game) EndTurn() {
	us := g.pos.SideToMove
	g.rights.Clear(us)
	g.pos.SideToMove = us.Other()
	if g.recording {
		g.logger.Debug("turn ended",
			zap.String("game_id", g.id),
			zap.String("turn", g.pos.SideToMove.String()))
	}
}

// Copy returns an independent playable copy sharing only the roller.
func (g *Game) Copy() *Game {
	cp := &Game{
		id:        g.id,
		pos:       g.pos.Copy(),
		roll:      g.roll.Copy(),
		rights:    g.rights.Copy(),
		roller:    g.roller,
		logger:    g.logger,
		recording: g.recording,
	}
	if len(g.history) > 0 {
		cp.history = make([]MoveRecord, len(g.history))
		copy(cp.history, g.history)
	}
	return cp
}

// copyForSim returns a lookahead copy: same position, dice and rights, but
// silent and without history.
func (g *Game) copyForSim() *Game {
	return &Game{
		id:     g.id,
		pos:    g.pos.Copy(),
		roll:   g.roll.Copy(),
		rights: g.rights.Copy(),
		roller: g.roller,
		logger: g.logger,
	}
}
