// SPDX-License-Identifier: MIT

package tictactoe

import (
	"fmt"
	"strings"
)

// Initial returns the empty board.
func Initial() Board { return Board{} }

// Player returns whose turn it is on b.
func (b Board) Player() Cell {
	var xCount, oCount int
	for _, row := range b {
		for _, c := range row {
			switch c {
			case X:
				xCount++
			case O:
				oCount++
			}
		}
	}
	if xCount > oCount {
		return O
	}

	return X
}

// Actions returns the empty squares of b in row-major order.
func (b Board) Actions() []Move {
	moves := make([]Move, 0, 9)
	for i, row := range b {
		for j, c := range row {
			if c == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}

	return moves
}

// Result returns the board after the current player plays m. b itself is
// not modified.
func (b Board) Result(m Move) (Board, error) {
	if m.Row < 0 || m.Row > 2 || m.Col < 0 || m.Col > 2 {
		return b, fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, m.Row, m.Col)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("%w: (%d,%d) is taken", ErrInvalidMove, m.Row, m.Col)
	}
	b[m.Row][m.Col] = b.Player()

	return b, nil
}

// Winner returns the owner of a completed line, or Empty if there is none.
func (b Board) Winner() Cell {
	for _, l := range lines {
		c := b[l[0].Row][l[0].Col]
		if c != Empty && c == b[l[1].Row][l[1].Col] && c == b[l[2].Row][l[2].Col] {
			return c
		}
	}

	return Empty
}

// Terminal reports whether the game is over: someone has won or the board
// is full.
func (b Board) Terminal() bool {
	if b.Winner() != Empty {
		return true
	}
	for _, row := range b {
		for _, c := range row {
			if c == Empty {
				return false
			}
		}
	}

	return true
}

// Utility scores a terminal board: 1 if X won, -1 if O won, 0 otherwise.
func (b Board) Utility() int {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// String renders b as three "X|O| " rows.
func (b Board) String() string {
	var sb strings.Builder
	for i, row := range b {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%s|%s|%s", row[0], row[1], row[2])
	}

	return sb.String()
}

// Minimax returns the optimal move for the player to move on b. ok is false
// when b is terminal.
func Minimax(b Board) (best Move, ok bool) {
	if b.Terminal() {
		return Move{}, false
	}
	maximizing := b.Player() == X
	var bestScore int
	for _, m := range b.Actions() {
		next, _ := b.Result(m) // m comes from Actions, so it is valid
		score := Value(next)
		if !ok || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore, ok = m, score, true
		}
	}

	return best, ok
}

// Value returns the utility of b under optimal play by both sides.
func Value(b Board) int {
	if b.Terminal() {
		return b.Utility()
	}
	maximizing := b.Player() == X
	best := 0
	for i, m := range b.Actions() {
		next, _ := b.Result(m)
		v := Value(next)
		if i == 0 || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}

	return best
}
