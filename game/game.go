package game

import (
	"fmt"

	"nrow/utils"

	"github.com/google/uuid"
)

// Game applies moves for alternating sides on a single board and derives the status after each
// one. It is the entry point for input layers and agents; the board it exposes is read-only for
// them.
type Game struct {
	ID        uuid.UUID
	Settings  Settings
	Board     *Board
	Detector  Detector
	Generator MoveGenerator
	toMove    Occupant
	moves     int
}

func NewGame(s Settings) *Game {
	s = s.Sanitize()
	return &Game{
		ID:        uuid.New(),
		Settings:  s,
		Board:     NewBoard(s),
		Detector:  DefaultDetector,
		Generator: s.Policy.Generator(),
		toMove:    s.FirstMover,
	}
}

// Restart clears the board for a new round with the same settings.
func (g *Game) Restart() {
	g.ID = uuid.New()
	g.Board.Reset()
	g.toMove = g.Settings.FirstMover
	g.moves = 0
}

func (g *Game) ToMove() Occupant {
	return g.toMove
}

func (g *Game) Moves() int {
	return g.moves
}

func (g *Game) LegalMoves() []int {
	if g.Status().IsOver() {
		return nil
	}
	return g.Generator.Moves(g.Board)
}

func (g *Game) Status() Status {
	return StatusOf(g.Board, g.Detector, g.Generator)
}

// Play places a marker for the side to move and hands the turn over.
func (g *Game) Play(index int) error {
	if g.Status().IsOver() {
		return ErrGameOver
	}
	if !utils.Contains(g.Generator.Moves(g.Board), index) {
		return fmt.Errorf("play %d for %s: %w", index, g.toMove, ErrIllegalMove)
	}
	if err := g.Board.Place(index, g.toMove); err != nil {
		return fmt.Errorf("play %d for %s: %w", index, g.toMove, err)
	}
	g.toMove = g.toMove.Opponent()
	g.moves++
	return nil
}

// Drop plays the landing cell of a column.
func (g *Game) Drop(column int) error {
	index, ok := Gravity{}.Drop(g.Board, column)
	if !ok {
		return fmt.Errorf("drop in column %d: %w", column, ErrIllegalMove)
	}
	return g.Play(index)
}

// Report describes the runs through the last move.
func (g *Game) Report() AxisReport {
	return g.Detector.Report(g.Board)
}
