package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("brawl", brawl)
}

// brawl destroys every minion on the board except one chosen uniformly at
// random across both sides. The survivor is picked before anything is
// destroyed so the RNG draw is independent of destruction order; the
// remaining minions are then destroyed in board order, side 0 then
// side 1, for a deterministic event sequence given a fixed seed.
func brawl(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	living := aliveMinions(bothSidesMinions(g))
	if len(living) <= 1 {
		return nil
	}

	idx, _ := g.RNG.Intn(len(living))
	survivor := living[idx]

	out := g.Emit(event.New(event.KindBrawlSurvivor, "minion", survivor.ID))
	for _, m := range living {
		if m.ID == survivor.ID {
			continue
		}
		// A minion destroyed earlier in this loop by another's
		// deathrattle (rare, e.g. a "when a friendly minion dies" chain)
		// is already gone; Destroy is a no-op on a dead minion.
		if _, owner, _, ok := g.FindMinion(m.ID); ok {
			out = append(out, combat.Destroy(g, owner, m)...)
		}
	}
	return out
}
