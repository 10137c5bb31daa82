package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("counterspell", counterspell)
	register("mirror_played_minion", mirrorPlayedMinion)
}

// counterspell sets the transient flag the command surface inspects
// immediately after secret dispatch to fizzle the spell that triggered
// it. It produces no event of its own; SpellHit/SpellCountered belong to
// the caller.
func counterspell(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	g.SpellCountered = true
	return nil
}

// mirrorPlayedMinion summons a copy of the enemy minion that was just
// played (the enemy_minion_played trigger's {minion: id} context) onto
// the secret's owner's board, carrying its live stats.
func mirrorPlayedMinion(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	orig, ok := ctxMinion(g, ctx)
	if !ok {
		return nil
	}
	_, out := summonLiveCopy(g, src.Owner, orig)
	return out
}
