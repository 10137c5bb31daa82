package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// FreezeMinion marks m frozen: a frozen character
// cannot attack until thawed at the end of its owner's next turn.
func FreezeMinion(g *state.GameState, m *state.Minion) []event.Event {
	if m.Frozen {
		return nil
	}
	m.Frozen = true
	return g.Emit(event.New(event.KindFrozen, "minion", m.ID))
}

// FreezeHero marks pid's hero frozen. Freeze ignores Armor entirely;
// it is a status effect, not damage.
func FreezeHero(g *state.GameState, pid state.PlayerID) []event.Event {
	p := g.Player(pid)
	if p.HeroFrozen {
		return nil
	}
	p.HeroFrozen = true
	return g.Emit(event.New(event.KindFrozen, "player", pid))
}

// ThawSide clears Frozen from pid's hero and every minion on pid's
// board, emitting a Thaw event per entity that was actually frozen.
func ThawSide(g *state.GameState, pid state.PlayerID) []event.Event {
	p := g.Player(pid)
	var out []event.Event

	if p.HeroFrozen {
		p.HeroFrozen = false
		out = append(out, g.Emit(event.New(event.KindThaw, "player", pid))...)
	}
	for _, m := range p.Board {
		if m.Frozen {
			m.Frozen = false
			out = append(out, g.Emit(event.New(event.KindThaw, "minion", m.ID))...)
		}
	}
	return out
}
