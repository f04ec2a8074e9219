package server

import (
	"sort"

	"github.com/samber/lo"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/lexicon"
	"github.com/wordforge/lexigrid/move"
	"github.com/wordforge/lexigrid/movegen"
)

// CandidateMove is one ranked move the AI move-query endpoint (C13)
// returns to its caller.
type CandidateMove struct {
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Vertical    bool   `json:"vertical"`
	Word        string `json:"word"`
	Score       int    `json:"score"`
	TilesPlayed int    `json:"tilesPlayed"`
}

// Analyze runs the move generator (C5) over b and rack using lex's GADDAG
// and returns every legal candidate, ranked by raw score descending.
// Equity/heuristic ranking is the AI personality layer spec §1 explicitly
// excludes; this only provides the generation primitive an external AI
// driver consumes and then funnels back through game.State.Commit, per
// spec §2's data-flow description. Grounded on analyzer/analyzer.go's
// JSON-board-in/JSON-moves-out shape.
func Analyze(b *board.Board, rack []alphabet.Tile, lex *lexicon.Lexicon) ([]CandidateMove, error) {
	cross := movegen.NewCrossCheckTable(b.Dim)
	cross.Recompute(b, lex)
	gen := movegen.New(b, lex.Gaddag(), cross)
	cands := gen.GenerateMoves(rack)

	dist := alphabet.EnglishLetterDistribution(lex.Alphabet())
	ranked := lo.Map(cands, func(c movegen.Candidate, _ int) CandidateMove {
		return CandidateMove{
			Row:         c.Row,
			Col:         c.Col,
			Vertical:    c.Vertical,
			Word:        c.Word.UserVisible(lex.Alphabet()),
			Score:       move.Score(b, dist, c),
			TilesPlayed: len(c.NewTiles),
		}
	})
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, nil
}
