package game

// AxisReport holds the run length through the last move along each axis.
type AxisReport struct {
	Owner        Occupant
	Anchor       int
	Vertical     int
	Horizontal   int
	Diagonal     int // "\"
	AntiDiagonal int // "/"
}

func (r AxisReport) Longest() int {
	return max(r.Vertical, r.Horizontal, r.Diagonal, r.AntiDiagonal)
}

// Report breaks the heuristic down per axis. An empty report is returned for a board
// without moves.
func (d Detector) Report(b *Board) AxisReport {
	cell, ok := anchor(b)
	if !ok {
		return AxisReport{Anchor: NoMove}
	}
	policy := d.policy(cell.State)
	return AxisReport{
		Owner:        cell.State,
		Anchor:       cell.Index,
		Vertical:     runThrough(b, cell, axes[0], policy),
		Horizontal:   runThrough(b, cell, axes[1], policy),
		Diagonal:     runThrough(b, cell, axes[2], policy),
		AntiDiagonal: runThrough(b, cell, axes[3], policy),
	}
}
