package powerup

import "github.com/wordforge/lexigrid/board"

// Freeze arms a board-tile-freeze effect (spec §9 Open Question ii):
// cell (row, col) rejects every staged or committed placement attempt
// until the game's turn counter exceeds untilTurn. The bookkeeping itself
// lives on board.Board (Freeze/IsFrozen, a plain per-cell counter with no
// power-up-specific meaning) because the enforcement point is
// game.Stage — which runs ahead of any other commit-pipeline power-up
// hook — not a callback this package needs to expose. Freeze is kept here
// as the single entry point every power-up effect is armed through, for
// symmetry with GrantTheft and GrantMultiplierTheft.
func Freeze(b *board.Board, row, col, untilTurn int) {
	b.Freeze(row, col, untilTurn)
}
