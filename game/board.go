package game

import (
	"fmt"
	"strings"
)

// Board is the mutable game grid. Search mutates it in place with Place/Undo pairs and must
// leave it exactly as it found it.
type Board struct {
	rows      int
	columns   int
	runLength int    // Consecutive cells needed to win
	cells     []Cell // Indexed by row*columns + column
	lastMove  int    // Most recently placed, not yet undone index (NoMove on a fresh board)
}

// NewBoard builds an empty board for the given settings after sanitizing them.
func NewBoard(s Settings) *Board {
	s = s.Sanitize()
	b := &Board{
		rows:      s.Rows,
		columns:   s.Columns,
		runLength: s.RunLength,
	}
	b.Reset()
	return b
}

// Reset clears every cell and forgets the last move.
func (b *Board) Reset() {
	b.cells = make([]Cell, b.rows*b.columns)
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			i := b.Index(r, c)
			b.cells[i] = Cell{Row: r, Column: c, Index: i}
		}
	}
	b.lastMove = NoMove
}

func (b *Board) Copy() *Board {
	cellsCopy := make([]Cell, len(b.cells))
	copy(cellsCopy, b.cells)

	return &Board{
		rows:      b.rows,
		columns:   b.columns,
		runLength: b.runLength,
		cells:     cellsCopy,
		lastMove:  b.lastMove,
	}
}

// Equal reports whether both boards have the same shape, occupancy and last move.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.columns != other.columns || b.runLength != other.runLength {
		return false
	}
	if b.lastMove != other.lastMove {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) Rows() int      { return b.rows }
func (b *Board) Columns() int   { return b.columns }
func (b *Board) RunLength() int { return b.runLength }
func (b *Board) Size() int      { return len(b.cells) }

func (b *Board) Index(row, column int) int {
	return row*b.columns + column
}

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && column >= 0 && row < b.rows && column < b.columns
}

func (b *Board) Cell(index int) Cell {
	return b.cells[index]
}

func (b *Board) At(row, column int) Occupant {
	return b.cells[b.Index(row, column)].State
}

func (b *Board) LastMove() int {
	return b.lastMove
}

// SetLastMove restores the anchor after an Undo. Undo never does this on its own.
func (b *Board) SetLastMove(index int) {
	b.lastMove = index
}

// Place marks a vacant cell for actor and makes it the anchor for win detection.
func (b *Board) Place(index int, actor Occupant) error {
	if actor == Empty {
		panic("cannot place an empty marker")
	}
	if index < 0 || index >= len(b.cells) {
		return fmt.Errorf("place %d: %w", index, ErrOutOfBounds)
	}
	if b.cells[index].State != Empty {
		return fmt.Errorf("place %d: %w", index, ErrCellOccupied)
	}
	b.cells[index].State = actor
	b.lastMove = index
	return nil
}

// Undo vacates a cell. The caller restores the previous last move.
func (b *Board) Undo(index int) {
	b.cells[index].State = Empty
}

func (b *Board) IsFull() bool {
	for _, cell := range b.cells {
		if cell.State == Empty {
			return false
		}
	}
	return true
}

// AvailableMoves returns the vacant indices in ascending order. Tie-breaks in the selector
// depend on this order.
func (b *Board) AvailableMoves() []int {
	moves := make([]int, 0, len(b.cells))
	for i, cell := range b.cells {
		if cell.State == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Swap exchanges AI and Player ownership of every cell. Applying it twice restores the board.
func (b *Board) Swap() {
	for i := range b.cells {
		b.cells[i].State = b.cells[i].State.Opponent()
	}
}

// String renders the grid row by row: X for the AI, O for the player, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			sb.WriteByte(b.cells[b.Index(r, c)].symbol())
		}
		if r < b.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows of X, O and '.' characters, as produced by String.
// The last move is left unset; tests choose the anchor with SetLastMove.
func ParseBoard(runLength int, rows ...string) *Board {
	if len(rows) == 0 {
		panic("no rows to parse")
	}
	b := NewBoard(Settings{Rows: len(rows), Columns: len(rows[0]), RunLength: runLength})
	if b.rows != len(rows) || b.columns != len(rows[0]) {
		panic("board layout is smaller than the minimum dimension")
	}
	for r, line := range rows {
		if len(line) != b.columns {
			panic(fmt.Sprintf("row %d has %d columns, want %d", r, len(line), b.columns))
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'X':
				b.cells[b.Index(r, c)].State = AI
			case 'O':
				b.cells[b.Index(r, c)].State = Player
			case '.':
			default:
				panic(fmt.Sprintf("unexpected symbol %q", line[c]))
			}
		}
	}
	return b
}
