package gaddag

import (
	"fmt"
	"sort"

	"github.com/wordforge/lexigrid/alphabet"
)

// This file is the direct ground truth for the GADDAG construction
// algorithm of spec §4.1, adapted from the teacher's
// gaddagmaker/make_gaddag.go: same temporary Node/Arc types, same
// addArc/addFinalArc/forceArc primitives, same per-word path insertion
// order. Spec §4.1 explicitly says minimization is not required for
// correctness ("implementations should share common suffixes... where
// feasible; correctness does not require minimization"), so this builder
// does no DAWG-style node merging across words; the only sharing is the
// per-word force-arc linking in AddWord. The resulting trie is serialized
// directly into the arena described by design note §9.

// buildNode is a temporary type used only during construction.
type buildNode struct {
	arcs      []*buildArc
	letterSet alphabet.LetterSet
	index     uint32 // assigned during serialization
}

type buildArc struct {
	letter alphabet.MachineLetter
	dest   *buildNode
}

// Builder accumulates a lexicon's words into a GADDAG trie and then
// serializes it into an immutable, arena-backed Gaddag.
type Builder struct {
	alph        *alphabet.Alphabet
	lexiconName string
	root        *buildNode
	allNodes    []*buildNode
}

func NewBuilder(alph *alphabet.Alphabet, lexiconName string) *Builder {
	b := &Builder{alph: alph, lexiconName: lexiconName}
	b.root = b.newNode()
	return b
}

func (b *Builder) newNode() *buildNode {
	n := &buildNode{}
	b.allNodes = append(b.allNodes, n)
	return n
}

func (n *buildNode) containsArc(l alphabet.MachineLetter) *buildArc {
	for _, a := range n.arcs {
		if a.letter == l {
			return a
		}
	}
	return nil
}

func (n *buildNode) addArc(l alphabet.MachineLetter, b *Builder) *buildNode {
	if existing := n.containsArc(l); existing != nil {
		return existing.dest
	}
	dest := b.newNode()
	n.arcs = append(n.arcs, &buildArc{letter: l, dest: dest})
	return dest
}

// addFinalArc adds an arc for c1, then marks c2 as a terminal letter at the
// destination node (spec §4.1: "The terminal flag is set at the path's
// final node" — here represented by membership in the destination node's
// letter set, matching the teacher's letterSet-as-terminal-marker idiom).
func (n *buildNode) addFinalArc(c1, c2 alphabet.MachineLetter, b *Builder) *buildNode {
	dest := n.addArc(c1, b)
	dest.letterSet = dest.letterSet.With(c2)
	return dest
}

// forceArc adds an arc from n to forceState for c, erroring if an arc for
// c already exists pointing elsewhere (mirrors the teacher's partial-
// minimization safety check).
func (n *buildNode) forceArc(l alphabet.MachineLetter, forceState *buildNode) error {
	if existing := n.containsArc(l); existing != nil {
		if existing.dest != forceState {
			return fmt.Errorf("gaddag: arc for %v already points elsewhere", l)
		}
		return nil
	}
	n.arcs = append(n.arcs, &buildArc{letter: l, dest: forceState})
	return nil
}

// AddWord inserts every GADDAG path for word w (spec §4.1). w must already
// be validated as alphabetic, length >= 2.
func (b *Builder) AddWord(w []alphabet.MachineLetter) error {
	n := len(w)
	if n < 2 {
		return fmt.Errorf("gaddag: word %v too short", w)
	}

	// Path: w[n-1] w[n-2] ... w[1] w[0]   (the whole word reversed, with no
	// separator; w[0] is recorded as a terminal letter on the node reached
	// after w[1]).
	st := b.root
	for j := n - 1; j >= 2; j-- {
		st = st.addArc(w[j], b)
	}
	st = st.addFinalArc(w[1], w[0], b)

	// Path: w[n-2]...w[0] ^ w[n-1]
	st = b.root
	for j := n - 2; j >= 0; j-- {
		st = st.addArc(w[j], b)
	}
	st = st.addFinalArc(alphabet.SeparationMachineLetter, w[n-1], b)

	// Partial minimization: force-link every shorter prefix's separator arc
	// to the next letter of the path already built, sharing suffixes for
	// the common case where they'd otherwise diverge.
	for m := n - 3; m >= 0; m-- {
		forceSt := st
		st = b.root
		for j := m; j >= 0; j-- {
			st = st.addArc(w[j], b)
		}
		st = st.addArc(alphabet.SeparationMachineLetter, b)
		if err := st.forceArc(w[m+1], forceSt); err != nil {
			return err
		}
	}
	return nil
}

// Build serializes the trie into the immutable arena representation.
func (b *Builder) Build() *Gaddag {
	for _, n := range b.allNodes {
		sort.Slice(n.arcs, func(i, j int) bool {
			return n.arcs[i].letter < n.arcs[j].letter
		})
	}

	g := &Gaddag{
		alph:        b.alph,
		lexiconName: b.lexiconName,
	}
	// Assign a serialized index to every node in build order (root first).
	for i, n := range b.allNodes {
		n.index = uint32(i)
	}
	g.nodeLetterSets = make([]alphabet.LetterSet, len(b.allNodes))
	g.nodeArcStart = make([]uint32, len(b.allNodes))
	g.nodeArcCount = make([]uint8, len(b.allNodes))

	for _, n := range b.allNodes {
		g.nodeLetterSets[n.index] = n.letterSet
		g.nodeArcStart[n.index] = uint32(len(g.arcLetters))
		g.nodeArcCount[n.index] = uint8(len(n.arcs))
		for _, a := range n.arcs {
			g.arcLetters = append(g.arcLetters, a.letter)
			g.arcTargets = append(g.arcTargets, a.dest.index)
		}
	}
	return g
}
