package aura

import "github.com/bjorn-karlsson/hearthstone-sub000/state"

// EffectiveCost computes a card's effective cost for pid. Each cost-aura
// and temp-cost Delta, and each intrinsic modifier, is a reduction:
//
//	cost = max(floor, base − Σ aura deltas − Σ temp deltas − intrinsic reductions)
func EffectiveCost(g *state.GameState, pid state.PlayerID, card *state.Card) int {
	p := g.Player(pid)
	total := card.Cost
	floor := 0

	for _, src := range p.Board {
		if src.CostAura == nil || !src.IsAlive() || src.Silenced {
			continue
		}
		if scopeMatches(src.CostAura.Scope, card) {
			total -= src.CostAura.Delta
			if src.CostAura.Floor != 0 && src.CostAura.Floor < floor {
				floor = src.CostAura.Floor
			}
		}
	}

	for _, mod := range p.TempCostMods {
		if scopeMatches(mod.Scope, card) {
			total -= mod.Delta
			if mod.Floor != 0 && mod.Floor < floor {
				floor = mod.Floor
			}
		}
	}

	if card.Intrinsic.LessPerOtherCardInHand != 0 {
		others := len(p.Hand)
		// If the card being costed is still sitting in hand when this is
		// queried, exclude it from "other cards in hand".
		for _, id := range p.Hand {
			if id == card.ID {
				others--
				break
			}
		}
		if others < 0 {
			others = 0
		}
		total -= card.Intrinsic.LessPerOtherCardInHand * others
	}

	if card.Intrinsic.LessPerDamageTaken != 0 {
		missing := p.MaxHealth - p.Health
		if missing > 0 {
			total -= card.Intrinsic.LessPerDamageTaken * missing
		}
	}

	if total < floor {
		total = floor
	}
	return total
}

// scopeMatches reports whether a cost-aura/temp-cost scope string applies
// to card. Recognized scopes: "friendly:spell", "friendly:type:<TYPE>",
// "friendly:tribe:<tribe>".
func scopeMatches(scope string, card *state.Card) bool {
	switch {
	case scope == "friendly:spell":
		return card.Type == state.CardSpell
	case len(scope) > len("friendly:type:") && scope[:len("friendly:type:")] == "friendly:type:":
		return string(card.Type) == scope[len("friendly:type:"):]
	case len(scope) > len("friendly:tribe:") && scope[:len("friendly:tribe:")] == "friendly:tribe:":
		tribe := scope[len("friendly:tribe:"):]
		return string(card.Tribe) == tribe || card.Tribe == state.TribeAll
	}
	return false
}

// AddTempCostMod appends a temporary cost modifier to pid's player,
// tagged for expiry at expiresPID's end of turn.
func AddTempCostMod(g *state.GameState, pid state.PlayerID, mod state.TempCostMod) {
	g.Player(pid).TempCostMods = append(g.Player(pid).TempCostMods, mod)
}

// ExpireTempCostMods drops every temp cost mod on pid's player tagged to
// expire at expiresPID's end of turn.
func ExpireTempCostMods(g *state.GameState, pid state.PlayerID, expiresPID state.PlayerID) {
	p := g.Player(pid)
	kept := p.TempCostMods[:0]
	for _, m := range p.TempCostMods {
		if m.ExpiresPID == expiresPID && m.ExpiresWhen == "end_of_turn" {
			continue
		}
		kept = append(kept, m)
	}
	p.TempCostMods = kept
}
