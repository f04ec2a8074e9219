package variant_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/variant"
)

func TestGetBingoBonus_SameForEveryVariant(t *testing.T) {
	is := is.New(t)
	is.Equal(variant.VarClassic.GetBingoBonus(), 50)
	is.Equal(variant.VarClassicSuper.GetBingoBonus(), 50)
}
