package game

import "errors"

var (
	ErrCellOccupied = errors.New("cell is occupied")
	ErrOutOfBounds  = errors.New("index is out of bounds")
	ErrIllegalMove  = errors.New("move is not available")
	ErrGameOver     = errors.New("game is over - no moves allowed")
)
