// SPDX-License-Identifier: MIT

// Package tictactoe implements the 3x3 noughts-and-crosses game and an
// exhaustive minimax player.
//
// X always moves first; a board where both players placed the same number
// of marks is X's turn, otherwise O's. X maximizes Utility (1 for an X win,
// -1 for an O win, 0 otherwise), O minimizes it.
//
// Minimax is a plain full-depth recursion without pruning or memoization.
// When several moves reach the best score, the first one in Actions order
// (row-major) is chosen, so the player is fully deterministic.
//
// Complexity:
//
//	Minimax from the empty board visits every reachable game continuation
//	(about 5.5·10^5 nodes); later positions are far cheaper.
package tictactoe
