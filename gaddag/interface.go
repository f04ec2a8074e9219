package gaddag

import (
	"github.com/wordforge/lexigrid/alphabet"
)

// WordGraph is the narrow, read-only query surface the move generator (C5)
// walks. It is deliberately index-based rather than pointer-based so the
// underlying arena (design note §9) can be shared, unsynchronized, across
// every game worker.
type WordGraph interface {
	GetRootNodeIndex() uint32
	NextNodeIdx(nodeIdx uint32, letter alphabet.MachineLetter) uint32
	InLetterSet(letter alphabet.MachineLetter, nodeIdx uint32) bool
	GetAlphabet() *alphabet.Alphabet
	GetLetterSet(nodeIdx uint32) alphabet.LetterSet
	IterateSiblings(nodeIdx uint32, cb func(ml alphabet.MachineLetter, nn uint32))
	LexiconName() string
}
