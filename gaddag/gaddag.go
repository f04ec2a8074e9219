package gaddag

import (
	"github.com/wordforge/lexigrid/alphabet"
)

// Gaddag is the immutable, arena-backed automaton the move generator reads.
// Per design note §9, it is stored as flat arrays indexed by 32-bit
// integers rather than a pointer graph, so the whole structure can be
// shared read-only across every game worker without synchronization.
type Gaddag struct {
	alph        *alphabet.Alphabet
	lexiconName string

	nodeLetterSets []alphabet.LetterSet
	nodeArcStart   []uint32
	nodeArcCount   []uint8
	arcLetters     []alphabet.MachineLetter
	arcTargets     []uint32
}

const RootNodeIndex uint32 = 0

func (g *Gaddag) GetRootNodeIndex() uint32 { return RootNodeIndex }

func (g *Gaddag) GetAlphabet() *alphabet.Alphabet { return g.alph }

func (g *Gaddag) LexiconName() string { return g.lexiconName }

func (g *Gaddag) GetLetterSet(nodeIdx uint32) alphabet.LetterSet {
	return g.nodeLetterSets[nodeIdx]
}

// InLetterSet reports whether `letter`, considered as the next letter to
// place while standing at nodeIdx, completes a legal word (spec §4.1's
// terminal-flag semantics, encoded as a per-node bitmask to allow several
// words to terminate at the same shared node).
func (g *Gaddag) InLetterSet(letter alphabet.MachineLetter, nodeIdx uint32) bool {
	return g.nodeLetterSets[nodeIdx].Has(letter)
}

// nextNodeIdxOk returns the node reached from nodeIdx via letter, or 0 with
// ok=false if no such transition exists. (0 doubles as "no transition"
// sentinel because the root is never a valid arc target in a GADDAG built
// from non-empty words — every word has length >= 2.)
func (g *Gaddag) nextNodeIdxOk(nodeIdx uint32, letter alphabet.MachineLetter) (uint32, bool) {
	start := g.nodeArcStart[nodeIdx]
	count := g.nodeArcCount[nodeIdx]
	// Arcs are sorted by letter at build time; binary search.
	lo, hi := 0, int(count)
	for lo < hi {
		mid := (lo + hi) / 2
		idx := start + uint32(mid)
		if g.arcLetters[idx] < letter {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < int(count) && g.arcLetters[start+uint32(lo)] == letter {
		return g.arcTargets[start+uint32(lo)], true
	}
	return 0, false
}

// NextNodeIdx implements WordGraph; returns 0 if there's no such transition
// (callers that care should use HasTransition first).
func (g *Gaddag) NextNodeIdx(nodeIdx uint32, letter alphabet.MachineLetter) uint32 {
	n, _ := g.nextNodeIdxOk(nodeIdx, letter)
	return n
}

// HasTransition reports whether nodeIdx has an outgoing arc for letter.
func (g *Gaddag) HasTransition(nodeIdx uint32, letter alphabet.MachineLetter) bool {
	_, ok := g.nextNodeIdxOk(nodeIdx, letter)
	return ok
}

// IterateSiblings calls cb for every outgoing arc of nodeIdx, in letter order.
func (g *Gaddag) IterateSiblings(nodeIdx uint32, cb func(ml alphabet.MachineLetter, nn uint32)) {
	start := g.nodeArcStart[nodeIdx]
	count := g.nodeArcCount[nodeIdx]
	for i := uint32(0); i < uint32(count); i++ {
		cb(g.arcLetters[start+i], g.arcTargets[start+i])
	}
}
