// SPDX-License-Identifier: MIT

package tictactoe

import "errors"

// Cell is the content of one square.
type Cell uint8

const (
	// Empty marks an unplayed square.
	Empty Cell = iota
	// X is the first player, the maximizer.
	X
	// O is the second player, the minimizer.
	O
)

// String returns "X", "O" or " ".
func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Board is the 3x3 grid, indexed [row][col].
type Board [3][3]Cell

// Move places the current player's mark at (Row, Col).
type Move struct {
	Row, Col int
}

// ErrInvalidMove is returned for a move outside the grid or onto an
// occupied square.
var ErrInvalidMove = errors.New("tictactoe: invalid move")

// lines lists every row, column and diagonal as coordinate triples.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}
