package schema_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/gameerr"
	"github.com/wordforge/lexigrid/schema"
)

func TestDecode_RejectsUnknownFields(t *testing.T) {
	is := is.New(t)
	_, err := schema.Decode[schema.PlaceTilePayload]([]byte(`{"tile":1,"row":2,"col":3,"bogus":true}`))
	is.True(err != nil)
	is.Equal(err.Kind, gameerr.InvalidPayload)
}

func TestDecode_AcceptsWellFormedPayload(t *testing.T) {
	is := is.New(t)
	p, err := schema.Decode[schema.PlaceTilePayload]([]byte(`{"tile":1,"row":2,"col":3,"letter":"Q"}`))
	is.True(err == nil)
	is.Equal(p.TileID, uint32(1))
	is.Equal(p.Row, 2)
	is.Equal(p.Col, 3)
	is.Equal(p.Letter, "Q")
}

func TestValidatePlaceTile_RejectsOutOfRange(t *testing.T) {
	is := is.New(t)
	p := &schema.PlaceTilePayload{Row: 15, Col: 0}
	err := schema.ValidatePlaceTile(p, 15)
	is.True(err != nil)
	is.Equal(err.Kind, gameerr.InvalidPosition)
}

func TestValidatePlaceTile_AcceptsInRange(t *testing.T) {
	is := is.New(t)
	p := &schema.PlaceTilePayload{Row: 7, Col: 7}
	is.True(schema.ValidatePlaceTile(p, 15) == nil)
}

func TestValidateExchangeTiles_RejectsEmpty(t *testing.T) {
	is := is.New(t)
	err := schema.ValidateExchangeTiles(&schema.ExchangeTilesPayload{}, 7)
	is.True(err != nil)
	is.Equal(err.Kind, gameerr.InvalidPayload)
}

func TestValidateExchangeTiles_RejectsTooMany(t *testing.T) {
	is := is.New(t)
	p := &schema.ExchangeTilesPayload{TileIDs: []uint32{1, 2, 3, 4, 5, 6, 7, 8}}
	err := schema.ValidateExchangeTiles(p, 7)
	is.True(err != nil)
	is.Equal(err.Kind, gameerr.InvalidPayload)
}

func TestValidateExchangeTiles_AcceptsWithinLimit(t *testing.T) {
	is := is.New(t)
	p := &schema.ExchangeTilesPayload{TileIDs: []uint32{1, 2, 3}}
	is.True(schema.ValidateExchangeTiles(p, 7) == nil)
}
