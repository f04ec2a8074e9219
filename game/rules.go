package game

import (
	"errors"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/lexicon"
	"github.com/wordforge/lexigrid/variant"
)

// Rules bundles the instantiated objects needed to play a game: the board
// layout, the letter distribution, the lexicon, and the variant. Adapted
// from the teacher's game.GameRules, trimmed of the cross-set-generator
// strategy switch (macondo supports a cross-score-only fast path for its
// AI simulator; this server always wants the full cross-check set, spec
// §4.4). The distribution is always English; the board layout name picks
// the variant (classic or classic_super).
type Rules struct {
	boardLayoutName string
	dist            *alphabet.LetterDistribution
	lex             *lexicon.Lexicon
	variant         variant.Variant
}

func (r *Rules) BoardLayoutName() string                          { return r.boardLayoutName }
func (r *Rules) LetterDistribution() *alphabet.LetterDistribution { return r.dist }
func (r *Rules) Lexicon() *lexicon.Lexicon                        { return r.lex }
func (r *Rules) Variant() variant.Variant {
	if r.variant == "" {
		return variant.VarClassic
	}
	return r.variant
}

// NewBoard builds a fresh board matching this ruleset's layout.
func (r *Rules) NewBoard() *board.Board {
	switch r.boardLayoutName {
	case board.SuperCrosswordGameLayout:
		return board.NewFromLayout(board.SuperCrosswordGameBoard)
	default:
		return board.NewFromLayout(board.CrosswordGameBoard)
	}
}

// NewRules builds a Rules from an already-loaded lexicon and a board
// layout name (spec §6 configuration: board_layout, defaulting to the
// standard 15x15 crossword game board).
func NewRules(lex *lexicon.Lexicon, boardLayoutName string) (*Rules, error) {
	if lex == nil {
		return nil, errors.New("game: a lexicon is required")
	}
	switch boardLayoutName {
	case "", board.CrosswordGameLayout, board.SuperCrosswordGameLayout:
	default:
		return nil, errors.New("game: unsupported board layout")
	}
	v := variant.VarClassic
	if boardLayoutName == board.SuperCrosswordGameLayout {
		v = variant.VarClassicSuper
	}
	return &Rules{
		boardLayoutName: boardLayoutName,
		dist:            alphabet.EnglishLetterDistribution(lex.Alphabet()),
		lex:             lex,
		variant:         v,
	}, nil
}
