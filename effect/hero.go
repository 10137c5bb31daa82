package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("replace_hero", replaceHero)
}

// replaceHero installs a new hero identity/power on the caster's
// player, setting both current and maximum health. Run from a
// battlecry, it also removes the summoning minion without firing its
// deathrattle. The replacement power arrives as a nested "power" map
// (name, text, cost, targeting, effects, counts_as_spell) whose effects
// list compiles on the spot.
func replaceHero(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	heroID := paramString(params, "hero_id", "")
	name := paramString(params, "hero_name", "")
	if name == "" {
		name = paramString(params, "name", "")
	}
	maxHealth := paramInt(params, "set_health_to", paramInt(params, "max_health", 30))

	power := state.HeroPower{Cost: 2, Targeting: "none"}
	if pm, ok := params["power"].(map[string]any); ok {
		power.Name = paramString(pm, "name", "")
		power.Text = paramString(pm, "text", "")
		power.Cost = paramInt(pm, "cost", 2)
		power.Targeting = paramString(pm, "targeting", "none")
		power.CountsAsSpell = paramBool(pm, "counts_as_spell", false)
		if effs, ok := pm["effects"].([]any); ok {
			if specs, err := DecodeSpecs(effs); err == nil {
				power.Runner = Compile(specs)
			}
		}
	}
	if power.Runner == nil {
		power.Runner = Compile(nil)
	}

	p := g.Player(src.Owner)
	p.Hero = &state.Hero{ID: heroID, Name: name, Power: power}
	p.MaxHealth = maxHealth
	p.Health = maxHealth
	p.HeroPowerUsedThisTurn = false

	out := g.Emit(event.New(event.KindHeroReplaced, "player", src.Owner, "hero", heroID))
	out = append(out, g.Emit(event.New(event.KindHeroHealthSet, "player", src.Owner, "health", maxHealth))...)
	out = append(out, g.Emit(event.New(event.KindPlayerMaxHealthSet, "player", src.Owner, "max_health", maxHealth))...)

	if src.HasSelfID {
		if m, owner, _, ok := g.FindMinion(src.SelfID); ok {
			out = append(out, combat.RemoveWithoutDeathrattle(g, owner, m)...)
		}
	}
	return out
}
