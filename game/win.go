package game

import "fmt"

// BlockingPolicy decides how a directional walk treats the cell it steps onto.
// Each direction keeps its own blocked flag; once set, that direction stops counting.
type BlockingPolicy int

const (
	// GuardedCount counts an owned cell only while the direction is unblocked,
	// then blocks the direction on an opponent or empty cell.
	GuardedCount BlockingPolicy = iota
	// BlockFirst blocks on an opponent or empty cell first and otherwise counts
	// the owned cell if the direction is still open.
	BlockFirst
)

func (p BlockingPolicy) String() string {
	if p == BlockFirst {
		return "block-first"
	}
	return "guarded-count"
}

type direction struct{ dr, dc int }

// axis is a line through the anchor, walked outward in both directions.
type axis struct {
	name     string
	forward  direction
	backward direction
}

var axes = [4]axis{
	{name: "vertical", forward: direction{1, 0}, backward: direction{-1, 0}},
	{name: "horizontal", forward: direction{0, 1}, backward: direction{0, -1}},
	{name: "diagonal", forward: direction{1, 1}, backward: direction{-1, -1}},
	{name: "anti-diagonal", forward: direction{1, -1}, backward: direction{-1, 1}},
}

// classicLines are the eight winning lines of a 3x3 board with a run length of 3.
var classicLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Detector finds wins and run lengths anchored at the board's last move.
type Detector struct {
	AIBlocking     BlockingPolicy
	PlayerBlocking BlockingPolicy
	// DisableClassic forces the generic walk on 3x3 boards with a run length of 3.
	DisableClassic bool
}

// DefaultDetector guards AI counts and blocks first for the player.
var DefaultDetector = Detector{AIBlocking: GuardedCount, PlayerBlocking: BlockFirst}

func IsWin(b *Board) bool { return DefaultDetector.IsWin(b) }

func Heuristic(b *Board) int { return DefaultDetector.Heuristic(b) }

func (d Detector) policy(owner Occupant) BlockingPolicy {
	if owner == AI {
		return d.AIBlocking
	}
	return d.PlayerBlocking
}

// anchor returns the last placed cell. ok is false on a board without moves.
func anchor(b *Board) (Cell, bool) {
	if b.lastMove == NoMove {
		return Cell{}, false
	}
	cell := b.cells[b.lastMove]
	if cell.State == Empty {
		panic(fmt.Sprintf("anchor cell %d is empty", b.lastMove))
	}
	return cell, true
}

// IsWin reports whether the owner of the last move completed a run of the board's run length
// through that move.
func (d Detector) IsWin(b *Board) bool {
	cell, ok := anchor(b)
	if !ok {
		return false
	}
	if !d.DisableClassic && isClassic(b) {
		return classicWin(b, cell)
	}
	policy := d.policy(cell.State)
	for _, ax := range axes {
		if runThrough(b, cell, ax, policy) >= b.runLength {
			return true
		}
	}
	return false
}

// Heuristic returns the longest run through the last move across all four axes.
// Walks extend at most runLength-1 cells in each direction.
func (d Detector) Heuristic(b *Board) int {
	cell, ok := anchor(b)
	if !ok {
		return 0
	}
	policy := d.policy(cell.State)
	longest := 0
	for _, ax := range axes {
		longest = max(longest, runThrough(b, cell, ax, policy))
	}
	return longest
}

func isClassic(b *Board) bool {
	return b.rows == 3 && b.columns == 3 && b.runLength == 3
}

func classicWin(b *Board, cell Cell) bool {
	for _, line := range classicLines {
		if line[0] != cell.Index && line[1] != cell.Index && line[2] != cell.Index {
			continue
		}
		if b.cells[line[0]].State == cell.State &&
			b.cells[line[1]].State == cell.State &&
			b.cells[line[2]].State == cell.State {
			return true
		}
	}
	return false
}

func runThrough(b *Board, cell Cell, ax axis, policy BlockingPolicy) int {
	return 1 + walk(b, cell, ax.forward, policy) + walk(b, cell, ax.backward, policy)
}

// walk counts the anchor owner's consecutive cells in one direction.
func walk(b *Board, cell Cell, dir direction, policy BlockingPolicy) int {
	count := 0
	blocked := false
	for i := 1; i < b.runLength; i++ {
		r, c := cell.Row+i*dir.dr, cell.Column+i*dir.dc
		if !b.InBounds(r, c) {
			continue
		}
		state := b.At(r, c)
		switch policy {
		case GuardedCount:
			if state == cell.State && !blocked {
				count++
			}
			if state != cell.State {
				blocked = true
			}
		case BlockFirst:
			if state != cell.State {
				blocked = true
			} else if !blocked {
				count++
			}
		}
	}
	return count
}
