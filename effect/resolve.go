package effect

import "github.com/bjorn-karlsson/hearthstone-sub000/state"

// resolveMinion looks up tgt as a minion, returning ok=false for a
// non-minion or dangling target.
func resolveMinion(g *state.GameState, tgt state.Target) (*state.Minion, state.PlayerID, bool) {
	if tgt.Kind != state.TargetMinion {
		return nil, 0, false
	}
	m, owner, _, ok := g.FindMinion(tgt.Minion)
	return m, owner, ok
}

// friendlyMinions returns every minion on pid's board.
func friendlyMinions(g *state.GameState, pid state.PlayerID) []*state.Minion {
	return g.Player(pid).Board
}

// bothSidesMinions returns every minion on the board, across both sides,
// in [0, 1] order.
func bothSidesMinions(g *state.GameState) []*state.Minion {
	var out []*state.Minion
	out = append(out, g.Player(0).Board...)
	out = append(out, g.Player(1).Board...)
	return out
}

// aliveMinions filters a slice down to living minions.
func aliveMinions(ms []*state.Minion) []*state.Minion {
	out := make([]*state.Minion, 0, len(ms))
	for _, m := range ms {
		if m.IsAlive() {
			out = append(out, m)
		}
	}
	return out
}
