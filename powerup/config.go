package powerup

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
)

// effectDoc is one YAML-decoded entry in a power-up preset file. Using
// gopkg.in/yaml.v3 directly (rather than routing this through
// config.Config's viper loader) mirrors the teacher's pattern of
// yaml-tagged structs for narrowly-scoped config blobs distinct from the
// process-wide settings object — a power-up preset is per-game content,
// not a startup setting.
type effectDoc struct {
	Kind       Kind   `yaml:"kind"`
	TileID     uint32 `yaml:"tile_id,omitempty"`
	FromPlayer string `yaml:"from_player,omitempty"`
	ToPlayer   string `yaml:"to_player,omitempty"`
	Amount     int    `yaml:"amount,omitempty"`
	Row        int    `yaml:"row,omitempty"`
	Col        int    `yaml:"col,omitempty"`
	UntilTurn  int    `yaml:"until_turn,omitempty"`
}

type presetDoc struct {
	Effects []effectDoc `yaml:"effects"`
}

// LoadSet parses a YAML power-up preset (spec §9 Open Question ii: an
// optional, cleanly isolated extension, here sourced from game-specific
// content rather than process config) and returns a ready-armed Set. b is
// nil-safe: board_freeze entries are skipped with an error if no board is
// given to apply them to.
func LoadSet(data []byte, b *board.Board) (*Set, error) {
	var doc presetDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("powerup: invalid preset: %w", err)
	}
	set := NewSet()
	for i, e := range doc.Effects {
		switch e.Kind {
		case KindTileTheft:
			set.GrantTheft(alphabet.TileID(e.TileID), e.FromPlayer)
		case KindMultiplierTheft:
			set.GrantMultiplierTheft(e.FromPlayer, e.ToPlayer, e.Amount)
		case KindBoardFreeze:
			if b == nil {
				return nil, fmt.Errorf("powerup: preset entry %d is a board_freeze but no board was given", i)
			}
			Freeze(b, e.Row, e.Col, e.UntilTurn)
		default:
			return nil, fmt.Errorf("powerup: preset entry %d has unknown kind %q", i, e.Kind)
		}
	}
	return set, nil
}
