// Package engine implements the Turn/Game Controller and the
// Command Surface: the only entry points an external
// driver (CLI, AI, test harness) uses to advance the game. Every command
// validates, mutates the underlying state.GameState, and returns the
// ordered events it produced.
package engine

import (
	"github.com/google/uuid"

	"github.com/bjorn-karlsson/hearthstone-sub000/catalog"
	"github.com/bjorn-karlsson/hearthstone-sub000/effect"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// CoinCardID is the concrete card id for the second player's starting
// coin: a real card in hand, not an abstract mana bonus.
const CoinCardID = "THE_COIN"

// Game is the command-surface handle a driver holds: the underlying
// GameState plus the catalog it was built from (consulted by PlayCard to
// stamp new instances and by query helpers to report effective cost).
type Game struct {
	State *state.GameState
	Cat   *catalog.Catalog

	// ID uniquely tags this Game instance for the lifetime of the host
	// process (e.g. a driver's session log, or a discover pool's instance
	// tag when the same catalog backs several concurrent games). It has
	// no effect on rules or determinism.
	ID uuid.UUID
}

// New constructs a Game from a compiled catalog, a seed, two decks (flat
// card-id lists) and two hero ids resolved against the catalog's
// Heroes. It does not start the game; call
// StartGame once both decks/heroes are ready.
func New(cat *catalog.Catalog, seed uint64, decks [2][]string, heroIDs [2]string) (*Game, error) {
	heroes := [2]*state.Hero{}
	for i, id := range heroIDs {
		h, ok := cat.Heroes[id]
		if !ok {
			return nil, gameerr.Newf(gameerr.CodeUnknownCard, "engine: unknown hero id %q", id)
		}
		copyH := *h
		heroes[i] = &copyH
	}

	ensureCoinCard(cat)

	g := state.New(cat.Cards, cat.Tokens, seed, decks, heroes)
	return &Game{State: g, Cat: cat, ID: uuid.New()}, nil
}

// ensureCoinCard installs the built-in Coin card into cat.Cards if the
// loaded catalog didn't already define one under CoinCardID, so The Coin
// plays through the ordinary play_card Spell branch like any other card.
func ensureCoinCard(cat *catalog.Catalog) {
	if _, ok := cat.Cards[CoinCardID]; ok {
		return
	}
	cat.Cards[CoinCardID] = &state.Card{
		ID:        CoinCardID,
		Name:      "The Coin",
		Cost:      0,
		Type:      state.CardSpell,
		Targeting: "none",
		OnCast: effect.Compile([]effect.Spec{
			{Effect: "gain_temp_mana", Params: map[string]any{"amount": 1}},
		}),
	}
}

// Events returns every event recorded so far, in emission order.
func (g *Game) Events() []event.Event { return g.State.History.All() }
