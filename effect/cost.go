package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("temp_cost", tempCost)
}

// tempCost grants pid a per-turn cost reduction tagged to expire at the
// caster's own end of turn. The mod lives on the receiving player but
// carries the caster's pid for expiry.
func tempCost(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	mod := state.TempCostMod{
		Scope:       paramString(params, "scope", "friendly:spell"),
		Delta:       paramInt(params, "delta", 0),
		Floor:       paramInt(params, "floor", 0),
		ExpiresPID:  src.Owner,
		ExpiresWhen: "end_of_turn",
	}
	aura.AddTempCostMod(g, pid, mod)
	return g.Emit(event.New(event.KindTempRuleAdded, "player", pid, "scope", mod.Scope, "delta", mod.Delta))
}
