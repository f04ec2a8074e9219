package game

import "github.com/wordforge/lexigrid/alphabet"

// PowerUpHooks is the commit pipeline's only extension point for the
// optional novelty power-up layer (spec §9 Open Question ii). It is
// defined in package game, not package powerup, so State can hold the
// interface without the core importing the extension's implementation —
// package powerup imports game to satisfy it, never the reverse. A game
// with no PowerUpHooks attached (the default) takes neither call-out.
type PowerUpHooks interface {
	// OwnerOverride lets an active tile-theft effect claim that tileID
	// belongs to a different player's rack than the one staging it, for
	// this one commit's ownership check only (BeforeValidate hook point).
	OwnerOverride(tileID alphabet.TileID) (playerID string, ok bool)

	// AdjustScore lets an active multiplier-theft effect re-home points
	// from a freshly scored word to a different player, after scoring but
	// before the result is recorded (AfterCommit hook point). recorded is
	// what the committing player's history entry should show;
	// sidePayments names any other player who should receive a ledger
	// credit for the same turn.
	AdjustScore(playerID string, words []string, score int) (recorded int, sidePayments map[string]int)
}
