package effect

import "github.com/bjorn-karlsson/hearthstone-sub000/state"

func init() {
	registerConditional("if_target_survived_then", targetSurvived)
	registerConditional("if_target_died_then", targetDied)
	registerConditional("if_target_attack_at_most", targetAttackAtMost)
	registerConditional("if_target_attack_at_least", targetAttackAtLeast)
	registerConditional("if_control_tribe", controlTribe)
	registerConditional("if_summoned_tribe", summonedTribe)
	registerConditional("if_summoned_has_keyword", summonedHasKeyword)
}

// targetSurvived is true iff tgt still resolves to a living minion,
// evaluated after any preceding effects in the same list ran.
func targetSurvived(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	m, _, ok := resolveMinion(g, tgt)
	return ok && m.IsAlive()
}

func targetDied(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	return !targetSurvived(g, src, tgt, ctx, params)
}

func targetAttackAtMost(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return false
	}
	return m.Attack <= paramInt(params, "amount", 0)
}

func targetAttackAtLeast(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return false
	}
	return m.Attack >= paramInt(params, "amount", 0)
}

// controlTribe is true iff the resolved owner has at least one minion of
// the given tribe on board (TribeAll matches any minion).
func controlTribe(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	tribe := state.Tribe(paramString(params, "tribe", ""))
	for _, m := range friendlyMinions(g, pid) {
		if tribe == state.TribeAll || m.Tribe == tribe || m.Tribe == state.TribeAll {
			return true
		}
	}
	return false
}

// summonedTribe is true iff the trigger context's "minion" matches the
// given tribe, for triggers fired with {minion: id} context such as
// friendly_summon (e.g. "whenever you summon a Beast, ..."). Only that
// one context minion is checked; earlier summons are not.
func summonedTribe(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	m, ok := ctxMinion(g, ctx)
	if !ok {
		return false
	}
	tribe := state.Tribe(paramString(params, "tribe", ""))
	return tribe == state.TribeAll || m.Tribe == tribe || m.Tribe == state.TribeAll
}

func summonedHasKeyword(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) bool {
	m, ok := ctxMinion(g, ctx)
	if !ok {
		return false
	}
	return m.HasKeyword(state.Keyword(paramString(params, "keyword", "")))
}

func ctxMinion(g *state.GameState, ctx state.Context) (*state.Minion, bool) {
	if ctx == nil {
		return nil, false
	}
	id, ok := ctx["minion"].(state.MinionID)
	if !ok {
		return nil, false
	}
	m, _, _, found := g.FindMinion(id)
	return m, found
}
