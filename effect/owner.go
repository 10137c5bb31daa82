package effect

import "github.com/bjorn-karlsson/hearthstone-sub000/state"

// resolveOwner normalizes an effect's declarative owner string against
// the running Source and the game's active player. Unrecognized or empty
// strings default to the source's own owner.
func resolveOwner(owner string, g *state.GameState, src state.Source) state.PlayerID {
	switch owner {
	case "enemy", "opponent":
		return src.Owner.Other()
	case "active":
		return g.ActivePlayer
	case "inactive":
		return g.ActivePlayer.Other()
	case "0":
		return 0
	case "1":
		return 1
	}
	return src.Owner
}

// resolveOwners normalizes the multi-owner forms (both|each|mirror ->
// [source owner, other]) in addition to every single-owner form.
func resolveOwners(owner string, g *state.GameState, src state.Source) []state.PlayerID {
	switch owner {
	case "both", "each", "mirror":
		return []state.PlayerID{src.Owner, src.Owner.Other()}
	}
	return []state.PlayerID{resolveOwner(owner, g, src)}
}

// spellDamageBonus sums the Spell Damage of pid's alive, non-silenced
// friendly minions.
func spellDamageBonus(g *state.GameState, pid state.PlayerID) int {
	bonus := 0
	for _, m := range g.Player(pid).Board {
		if m.IsAlive() && !m.Silenced {
			bonus += m.SpellDamage
		}
	}
	return bonus
}
