package dicechess

import (
	"errors"
	"fmt"

	"dicechess/internal/board"
)

// ErrDiceCount reports a dice multiset outside the playable range of 0 to 3.
var ErrDiceCount = errors.New("dicechess: dice count out of range")

// LegalMoves computes the mover's moves for the remaining dice.
//
// A move is a candidate when a die matches the moved piece; castling needs
// both a king and a rook die and spends both. With more than one die left,
// only candidates that start a deepest chain are returned: a move is dropped
// when some other candidate lets the mover keep spending dice for longer.
// King captures are exempt, since capturing the king ends the game on the
// spot. With a single die the candidates are returned as they are, and with
// no dice the turn is over and the result is empty.
func (g *Game) LegalMoves() ([]board.Move, error) {
	switch len(g.roll) {
	case 0:
		return nil, nil
	case 1:
		return g.dicePseudoMoves(), nil
	case 2:
		return g.movesTwoDice(), nil
	case 3:
		return g.movesThreeDice(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrDiceCount, len(g.roll))
	}
}

// candidateMoves is the unfiltered move pool: engine pseudo-legal moves plus
// extended en passant captures.
func (g *Game) candidateMoves() []board.Move {
	return append(g.pos.PseudoLegalMoves(), g.extendedEPMoves()...)
}

// extendedEPMoves generates captures onto the mover's en passant rights
// squares. The advanced enemy pawn must still stand one rank behind the
// rights square with a mover pawn beside it. The target square itself is not
// checked here; Apply lifts the victim only when the target is empty.
func (g *Game) extendedEPMoves() []board.Move {
	us := g.pos.SideToMove
	held := g.rights.Squares(us)
	if len(held) == 0 {
		return nil
	}
	forward := 1
	if us == board.Black {
		forward = -1
	}
	enemyPawn := board.NewPiece(board.Pawn, us.Other())
	ownPawn := board.NewPiece(board.Pawn, us)

	var moves []board.Move
	for _, sq := range held {
		behind := int(sq.Rank()) - forward
		if behind < 0 || behind > 7 {
			continue
		}
		victim := board.NewSquare(sq.File(), board.Rank(behind))
		if g.pos.PieceAt(victim) != enemyPawn {
			continue
		}
		for _, df := range [2]int{-1, 1} {
			f := int(sq.File()) + df
			if f < 0 || f > 7 {
				continue
			}
			from := board.NewSquare(board.File(f), board.Rank(behind))
			if g.pos.PieceAt(from) == ownPawn {
				moves = append(moves, board.Move{From: from, To: sq})
			}
		}
	}
	return moves
}

// dicePseudoMoves filters the candidate pool by the remaining dice.
func (g *Game) dicePseudoMoves() []board.Move {
	var out []board.Move
	for _, m := range g.candidateMoves() {
		if m.Castle {
			if g.roll.Contains(board.King) && g.roll.Contains(board.Rook) {
				out = append(out, m)
			}
			continue
		}
		if g.roll.Contains(g.pos.PieceAt(m.From).Type()) {
			out = append(out, m)
		}
	}
	return out
}

func (g *Game) movesTwoDice() []board.Move {
	moves := g.dicePseudoMoves()
	if len(moves) == 0 {
		return nil
	}
	counts := make([]int, len(moves))
	maxCount := 0
	for i, m := range moves {
		counts[i] = 1
		if m.Castle {
			// Castling spends both dice by itself.
			counts[i] = 2
		} else {
			sim := g.copyForSim()
			sim.Apply(m, true)
			if len(sim.dicePseudoMoves()) > 0 {
				counts[i] = 2
			}
		}
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	return g.keepMaximal(moves, counts, maxCount)
}

func (g *Game) movesThreeDice() []board.Move {
	moves := g.dicePseudoMoves()
	if len(moves) == 0 {
		return nil
	}
	counts := make([]int, len(moves))
	maxCount := 0
	for i, m := range moves {
		sim := g.copyForSim()
		sim.Apply(m, true)
		continuations := sim.dicePseudoMoves()
		switch {
		case m.Castle:
			counts[i] = 2
			if len(continuations) > 0 {
				counts[i] = 3
			}
		case len(continuations) == 0:
			counts[i] = 1
		default:
			counts[i] = 2
			for _, next := range continuations {
				if next.Castle {
					counts[i] = 3
					break
				}
				sim2 := sim.copyForSim()
				sim2.Apply(next, true)
				if len(sim2.dicePseudoMoves()) > 0 {
					counts[i] = 3
					break
				}
			}
		}
		if counts[i] > maxCount {
			maxCount = counts[i]
		}
	}
	return g.keepMaximal(moves, counts, maxCount)
}

// keepMaximal keeps the moves whose chain depth is maximal, plus any king
// capture regardless of depth.
func (g *Game) keepMaximal(moves []board.Move, counts []int, maxCount int) []board.Move {
	out := make([]board.Move, 0, len(moves))
	for i, m := range moves {
		if counts[i] == maxCount || g.IsGameEnding(m) {
			out = append(out, m)
		}
	}
	return out
}
