package powerup

import "github.com/wordforge/lexigrid/alphabet"

// GrantTheft arms a one-shot tile-theft effect: the next commit that
// stages tileID is validated against fromPlayerID's rack instead of the
// sender's, letting the sender play a tile they don't physically hold.
// SPEC_FULL.md §4.12 isolates this entirely in this file; the commit
// pipeline only ever calls OwnerOverride, never reasons about theft
// itself.
func (s *Set) GrantTheft(tileID alphabet.TileID, fromPlayerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theft = append(s.theft, theftEffect{tileID: tileID, ownerID: fromPlayerID})
}

// OwnerOverride implements game.PowerUpHooks's BeforeValidate hook point.
// A matched effect is consumed (removed) on lookup, so it applies to only
// the one commit it was armed for.
func (s *Set) OwnerOverride(tileID alphabet.TileID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.theft {
		if e.tileID == tileID {
			s.theft = append(s.theft[:i], s.theft[i+1:]...)
			return e.ownerID, true
		}
	}
	return "", false
}
