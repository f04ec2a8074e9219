// Package variant names a ruleset variant and its scoring deviations from
// classic play. Adapted from the teacher's variant/variant.go.
// game.NewRules selects VarClassicSuper for the super board layout and
// VarClassic otherwise; the two differ only in name, since scoring is the
// same for both.
package variant

type Variant string

const (
	VarClassic      Variant = "classic"
	VarClassicSuper Variant = "classic_super"
)

// GetBingoBonus returns the point bonus for using every rack tile in one
// play (spec §4.5). It returns the classic 50-point bonus for every
// variant.
func (v Variant) GetBingoBonus() int {
	return 50
}
