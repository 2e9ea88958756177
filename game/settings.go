package game

import "nrow/meta"

const MinDimension = 3

// Settings describes one game round. Values are clamped by Sanitize rather than rejected.
type Settings struct {
	Rows       int
	Columns    int
	RunLength  int
	MaxDepth   int
	FirstMover Occupant
	Policy     Policy
}

func DefaultSettings() Settings {
	return Settings{
		Rows:       meta.DEFAULT_ROWS,
		Columns:    meta.DEFAULT_COLUMNS,
		RunLength:  meta.DEFAULT_RUN_LENGTH,
		MaxDepth:   meta.DEFAULT_MAX_DEPTH,
		FirstMover: Player,
		Policy:     PolicyFree,
	}
}

// Sanitize returns a copy with every field inside its permitted range:
// dimensions and run length are at least 3, the run length never exceeds both dimensions,
// and the depth is non-negative.
func (s Settings) Sanitize() Settings {
	s.Rows = atLeast(abs(s.Rows), MinDimension)
	s.Columns = atLeast(abs(s.Columns), MinDimension)
	s.RunLength = atLeast(abs(s.RunLength), MinDimension)
	if s.RunLength > s.Rows && s.RunLength > s.Columns {
		s.RunLength = max(s.Rows, s.Columns)
	}
	s.MaxDepth = abs(s.MaxDepth)
	if s.FirstMover != AI {
		s.FirstMover = Player
	}
	if s.Policy != PolicyGravity {
		s.Policy = PolicyFree
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func atLeast(v, lower int) int {
	if v < lower {
		return lower
	}
	return v
}
