package catalog

import (
	"fmt"

	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// Deck limits.
const (
	DeckSize           = 30
	MaxCopiesCommon    = 2
	MaxCopiesLegendary = 1
)

// ExpandCounts turns a {card_id: count} map into a flat card id list.
// Map iteration order is unspecified in Go, so callers that need a
// stable deck order should prefer the flat-array deck-list form instead.
func ExpandCounts(counts map[string]int) []string {
	var out []string
	for id, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, id)
		}
	}
	return out
}

// ValidateDeck checks a flat card-id list against the deck-building
// rules: exactly 30 cards, at most 2 copies of any non-Legendary card, at
// most 1 copy of any Legendary, and every id must resolve in cards. It
// returns every violation found rather than failing on the first.
func ValidateDeck(cards state.CardMap, deck []string) []string {
	var reasons []string

	if len(deck) != DeckSize {
		reasons = append(reasons, fmt.Sprintf("deck has %d cards, must have exactly %d", len(deck), DeckSize))
	}

	counts := map[string]int{}
	for _, id := range deck {
		counts[id]++
		if _, ok := cards[id]; !ok {
			reasons = append(reasons, fmt.Sprintf("unknown card id %q", id))
		}
	}

	for id, n := range counts {
		card, ok := cards[id]
		if !ok {
			continue
		}
		limit := MaxCopiesCommon
		if card.Rarity == state.RarityLegendary {
			limit = MaxCopiesLegendary
		}
		if n > limit {
			reasons = append(reasons, fmt.Sprintf("card %q appears %d times, limit is %d", id, n, limit))
		}
	}

	return reasons
}
