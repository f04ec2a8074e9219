package game

import (
	"fmt"
	"strings"

	"github.com/wordforge/lexigrid/move"
)

// RenderLine formats one HistoryEntry the way a spectator log or a replay
// scrubber would show it (C15): "12. Alice played H8 CAT for 10",
// "12. Bob exchanged tiles", "12. Carol passed". Grounded on the teacher's
// move.Move.String() format and ToBoardGameCoords anchor notation,
// generalized to read from a recorded HistoryEntry rather than a live
// Move (spec §4.13 replay). History entries live only in the in-memory
// State; nothing here persists them.
func (h HistoryEntry) RenderLine(playerName string) string {
	switch h.Kind {
	case MoveKindWord:
		coords := move.ToBoardGameCoords(h.RowStart, h.ColStart, h.Vertical)
		return fmt.Sprintf("%d. %s played %s %s for %d", h.Turn, playerName, coords, strings.Join(h.Words, "/"), h.Score)
	case MoveKindExchange:
		return fmt.Sprintf("%d. %s exchanged tiles", h.Turn, playerName)
	case MoveKindPass:
		return fmt.Sprintf("%d. %s passed", h.Turn, playerName)
	}
	return fmt.Sprintf("%d. %s did something unrecognized", h.Turn, playerName)
}

// RenderHistory formats the full move history for a replay view, resolving
// each entry's player id to the display name given by nameOf.
func (s *State) RenderHistory(nameOf func(playerID string) string) []string {
	lines := make([]string, 0, len(s.History))
	for _, h := range s.History {
		lines = append(lines, h.RenderLine(nameOf(h.PlayerID)))
	}
	return lines
}
