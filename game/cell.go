package game

// Cell is a board square identified by its coordinates and its row-major index.
type Cell struct {
	Row    int
	Column int
	Index  int
	State  Occupant
}

func (c Cell) IsVacant() bool {
	return c.State == Empty
}

func (c Cell) symbol() byte {
	switch c.State {
	case AI:
		return 'X'
	case Player:
		return 'O'
	default:
		return '.'
	}
}
