package board

import "math/bits"

// Bitboard is a 64-bit set of squares, bit 0 = A1.
type Bitboard uint64

const (
	fileABB Bitboard = 0x0101010101010101
	fileHBB Bitboard = 0x8080808080808080
	rank3BB Bitboard = 0x0000000000FF0000
	rank6BB Bitboard = 0x0000FF0000000000
)

func fileBB(f File) Bitboard { return fileABB << f }
func rankBB(r Rank) Bitboard { return Bitboard(0xFF) << (8 * r) }

func (b Bitboard) Occupied(sq Square) bool { return b&sq.BB() != 0 }
func (b *Bitboard) Set(sq Square)          { *b |= sq.BB() }
func (b *Bitboard) Clear(sq Square)        { *b &^= sq.BB() }

// Count returns the number of occupied squares.
func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest occupied square. Undefined when empty.
func (b Bitboard) LSB() Square { return Square(bits.TrailingZeros64(uint64(b))) }

// MSB returns the highest occupied square. Undefined when empty.
func (b Bitboard) MSB() Square { return Square(63 - bits.LeadingZeros64(uint64(b))) }

// PopLSB clears and returns the lowest occupied square.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

type direction uint8

const (
	north direction = iota
	northEast
	east
	southEast
	south
	southWest
	west
	northWest
)

var directionSteps = [8]int{8, 9, 1, -7, -8, -9, -1, 7}

var (
	rays          [8][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard
)

func init() {
	knightSteps := [8]int{17, 15, 10, 6, -6, -10, -15, -17}
	for sq := 0; sq < 64; sq++ {
		for dir, step := range directionSteps {
			for prev, next := sq, sq+step; stepOn(prev, next); prev, next = next, next+step {
				rays[dir][sq].Set(Square(next))
			}
		}
		for _, step := range knightSteps {
			if to := sq + step; to >= 0 && to < 64 && fileDistance(sq, to) <= 2 {
				knightAttacks[sq].Set(Square(to))
			}
		}
		for _, step := range directionSteps {
			if to := sq + step; to >= 0 && to < 64 && fileDistance(sq, to) <= 1 {
				kingAttacks[sq].Set(Square(to))
			}
		}
		for _, step := range [2]int{7, 9} {
			if to := sq + step; to >= 0 && to < 64 && fileDistance(sq, to) <= 1 {
				pawnAttacks[White][sq].Set(Square(to))
			}
			if to := sq - step; to >= 0 && to < 64 && fileDistance(sq, to) <= 1 {
				pawnAttacks[Black][sq].Set(Square(to))
			}
		}
	}
}

// stepOn reports whether moving from prev to next stays on the board without
// wrapping around a board edge.
func stepOn(prev, next int) bool {
	return next >= 0 && next < 64 && fileDistance(prev, next) <= 1
}

func fileDistance(a, b int) int {
	fa, fb := a&7, b&7
	if fa > fb {
		return fa - fb
	}
	return fb - fa
}

var (
	bishopDirs = [4]direction{northEast, southEast, southWest, northWest}
	rookDirs   = [4]direction{north, east, south, west}
)

func slidingAttacks(sq Square, occ Bitboard, dirs [4]direction) Bitboard {
	var attacks Bitboard
	for _, dir := range dirs {
		ray := rays[dir][sq]
		if blockers := ray & occ; blockers != 0 {
			var first Square
			if directionSteps[dir] > 0 {
				first = blockers.LSB()
			} else {
				first = blockers.MSB()
			}
			ray &^= rays[dir][first]
		}
		attacks |= ray
	}
	return attacks
}

func bishopAttacks(sq Square, occ Bitboard) Bitboard { return slidingAttacks(sq, occ, bishopDirs) }
func rookAttacks(sq Square, occ Bitboard) Bitboard   { return slidingAttacks(sq, occ, rookDirs) }
func queenAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}
