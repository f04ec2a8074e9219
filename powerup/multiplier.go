package powerup

// GrantMultiplierTheft arms a one-shot score re-homing: the next word
// fromPlayerID commits pays up to amount points to toPlayerID instead of
// counting fully toward fromPlayerID's own recorded score. SPEC_FULL.md
// §4.12 requires this to operate purely on the scorer's already-computed
// output, never on the board — AdjustScore is the only place that's true.
func (s *Set) GrantMultiplierTheft(fromPlayerID, toPlayerID string, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.multiplier = append(s.multiplier, multiplierEffect{
		fromPlayerID: fromPlayerID, toPlayerID: toPlayerID, amount: amount,
	})
}

// AdjustScore implements game.PowerUpHooks's AfterCommit hook point. Every
// active effect whose fromPlayerID matches is consumed and its amount
// (capped at the score actually scored) moved into sidePayments; the
// remainder is what the committing player's own history entry records.
func (s *Set) AdjustScore(playerID string, words []string, score int) (int, map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recorded := score
	var sidePayments map[string]int
	kept := s.multiplier[:0]
	for _, e := range s.multiplier {
		if e.fromPlayerID != playerID {
			kept = append(kept, e)
			continue
		}
		amt := e.amount
		if amt > recorded {
			amt = recorded
		}
		recorded -= amt
		if sidePayments == nil {
			sidePayments = make(map[string]int)
		}
		sidePayments[e.toPlayerID] += amt
	}
	s.multiplier = kept
	return recorded, sidePayments
}
