// Package schema implements the wire-boundary validation design note §9
// calls for ("dynamic typing at the wire boundary; internal code operates
// on typed records only"): every inbound event payload (spec §6) is
// decoded into a typed Go struct with unknown fields rejected, then
// range/required-field checked, before any core package sees it. A decode
// or required-field failure produces gameerr.InvalidPayload and an
// out-of-range row or column produces gameerr.InvalidPosition, never a
// panic or a bare decode error.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/wordforge/lexigrid/gameerr"
)

// PlaceTilePayload is the `place-tile` inbound event body (spec §6).
type PlaceTilePayload struct {
	TileID uint32 `json:"tile"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter,omitempty"` // chosen letter, required only for a blank tile
}

// RemoveTilePayload is the `remove-tile` inbound event body.
type RemoveTilePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ExchangeTilesPayload is the `exchange-tiles` inbound event body.
type ExchangeTilesPayload struct {
	TileIDs []uint32 `json:"tileIds"`
}

// Decode unmarshals data into dst, rejecting unknown fields, matching the
// schema boundary SPEC_FULL.md §6 calls for. Every call site constructs a
// fresh *T via a type parameter so the same helper serves every payload
// shape in this package.
func Decode[T any](data []byte) (*T, *gameerr.Error) {
	var v T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, gameerr.New(gameerr.InvalidPayload, fmt.Sprintf("malformed payload: %v", err))
	}
	return &v, nil
}

// ValidatePlaceTile checks the decoded payload's ranges against a board of
// the given dimension, beyond what json decoding alone guarantees.
func ValidatePlaceTile(p *PlaceTilePayload, boardDim int) *gameerr.Error {
	if p.Row < 0 || p.Row >= boardDim || p.Col < 0 || p.Col >= boardDim {
		return gameerr.New(gameerr.InvalidPosition, "row/col is out of range")
	}
	return nil
}

// ValidateRemoveTile checks the decoded payload's ranges against a board
// of the given dimension.
func ValidateRemoveTile(p *RemoveTilePayload, boardDim int) *gameerr.Error {
	if p.Row < 0 || p.Row >= boardDim || p.Col < 0 || p.Col >= boardDim {
		return gameerr.New(gameerr.InvalidPosition, "row/col is out of range")
	}
	return nil
}

// ValidateExchangeTiles rejects an empty or over-long exchange list before
// it ever reaches the commit pipeline's bag-size check.
func ValidateExchangeTiles(p *ExchangeTilesPayload, maxRackTiles int) *gameerr.Error {
	if len(p.TileIDs) == 0 {
		return gameerr.New(gameerr.InvalidPayload, "exchange requires at least one tile id")
	}
	if len(p.TileIDs) > maxRackTiles {
		return gameerr.New(gameerr.InvalidPayload, "exchange cannot name more tiles than a rack holds")
	}
	return nil
}
