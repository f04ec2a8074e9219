package powerup_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/powerup"
)

func TestOwnerOverride_ConsumesOnMatch(t *testing.T) {
	is := is.New(t)
	s := powerup.NewSet()
	s.GrantTheft(alphabet.TileID(42), "p2")

	owner, ok := s.OwnerOverride(alphabet.TileID(42))
	is.True(ok)
	is.Equal(owner, "p2")

	_, ok = s.OwnerOverride(alphabet.TileID(42))
	is.True(!ok)
}

func TestOwnerOverride_NoEffectArmed(t *testing.T) {
	is := is.New(t)
	s := powerup.NewSet()
	_, ok := s.OwnerOverride(alphabet.TileID(1))
	is.True(!ok)
}

func TestAdjustScore_CapsAmountAtScoreAndConsumes(t *testing.T) {
	is := is.New(t)
	s := powerup.NewSet()
	s.GrantMultiplierTheft("p1", "p2", 30)

	recorded, side := s.AdjustScore("p1", []string{"CAT"}, 20)
	is.Equal(recorded, 0)
	is.Equal(side["p2"], 20)

	recorded2, side2 := s.AdjustScore("p1", []string{"DOG"}, 10)
	is.Equal(recorded2, 10)
	is.Equal(len(side2), 0)
}

func TestAdjustScore_UnaffectedPlayerKeepsFullScore(t *testing.T) {
	is := is.New(t)
	s := powerup.NewSet()
	s.GrantMultiplierTheft("p1", "p2", 30)

	recorded, side := s.AdjustScore("p3", []string{"CAT"}, 15)
	is.Equal(recorded, 15)
	is.Equal(len(side), 0)
}

func TestFreeze_BlocksUntilTurnPasses(t *testing.T) {
	is := is.New(t)
	b := board.New(15)
	powerup.Freeze(b, 7, 7, 3)
	is.True(b.IsFrozen(7, 7, 1))
	is.True(b.IsFrozen(7, 7, 3))
	is.True(!b.IsFrozen(7, 7, 4))
}

func TestLoadSet_ParsesEveryEffectKind(t *testing.T) {
	is := is.New(t)
	b := board.New(15)
	data := []byte(`
effects:
  - kind: tile_theft
    tile_id: 5
    from_player: p2
  - kind: multiplier_theft
    from_player: p1
    to_player: p3
    amount: 10
  - kind: board_freeze
    row: 3
    col: 4
    until_turn: 2
`)
	set, err := powerup.LoadSet(data, b)
	is.NoErr(err)

	owner, ok := set.OwnerOverride(alphabet.TileID(5))
	is.True(ok)
	is.Equal(owner, "p2")

	recorded, side := set.AdjustScore("p1", nil, 10)
	is.Equal(recorded, 0)
	is.Equal(side["p3"], 10)

	is.True(b.IsFrozen(3, 4, 2))
}

func TestLoadSet_BoardFreezeWithoutBoardErrors(t *testing.T) {
	is := is.New(t)
	data := []byte(`
effects:
  - kind: board_freeze
    row: 0
    col: 0
    until_turn: 1
`)
	_, err := powerup.LoadSet(data, nil)
	is.True(err != nil)
}

func TestLoadSet_UnknownKindErrors(t *testing.T) {
	is := is.New(t)
	data := []byte(`
effects:
  - kind: mystery
`)
	_, err := powerup.LoadSet(data, board.New(15))
	is.True(err != nil)
}
