package game

import (
	"sort"
	"strings"
)

// MoveGenerator lists the legal next moves as ascending board indices.
type MoveGenerator interface {
	Moves(b *Board) []int
}

// Policy selects a move generator.
type Policy int

const (
	PolicyFree Policy = iota
	PolicyGravity
)

func (p Policy) Generator() MoveGenerator {
	if p == PolicyGravity {
		return Gravity{}
	}
	return Free{}
}

func (p Policy) String() string {
	if p == PolicyGravity {
		return "gravity"
	}
	return "free"
}

// ParsePolicy accepts "gravity" or "drop" for column stacking; anything else is free placement.
func ParsePolicy(s string) Policy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gravity", "drop":
		return PolicyGravity
	default:
		return PolicyFree
	}
}

// Free allows any vacant cell.
type Free struct{}

func (Free) Moves(b *Board) []int {
	return b.AvailableMoves()
}

// Gravity allows one landing cell per column: the lowest vacant cell resting on the bottom edge
// or on an occupied cell.
type Gravity struct{}

func (g Gravity) Moves(b *Board) []int {
	moves := make([]int, 0, b.columns)
	for c := 0; c < b.columns; c++ {
		if index, ok := g.Drop(b, c); ok {
			moves = append(moves, index)
		}
	}
	sort.Ints(moves)
	return moves
}

// Drop returns the landing cell for a column, or false when the column has none.
func (Gravity) Drop(b *Board, column int) (int, bool) {
	if column < 0 || column >= b.columns {
		return NoMove, false
	}
	for r := b.rows - 1; r >= 0; r-- {
		if b.At(r, column) != Empty {
			continue
		}
		if r == b.rows-1 || b.At(r+1, column) != Empty {
			return b.Index(r, column), true
		}
		return NoMove, false
	}
	return NoMove, false
}
