package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// ProcessDeaths drains g.PendingDeaths, destroying each minion still on
// board with health <= 0: removing it, running its deathrattle, sending
// it to the graveyard, and recomputing stat auras for its former side.
//
// Draining can grow PendingDeaths further (a deathrattle may deal damage
// that kills another minion), so this loops until the queue is empty
// rather than processing a single fixed-size snapshot.
func ProcessDeaths(g *state.GameState) []event.Event {
	var out []event.Event
	for len(g.PendingDeaths) > 0 {
		batch := g.PendingDeaths
		g.PendingDeaths = nil

		for _, pd := range batch {
			m, owner, _, ok := g.FindMinion(pd.ID)
			if !ok || owner != pd.Owner || m.Health > 0 {
				continue
			}
			out = append(out, killMinion(g, owner, m)...)
		}
	}
	return out
}

// Destroy immediately kills m. Any
// further deaths its deathrattle enqueues are drained before returning.
func Destroy(g *state.GameState, owner state.PlayerID, m *state.Minion) []event.Event {
	if !m.IsAlive() {
		return nil
	}
	out := killMinion(g, owner, m)
	out = append(out, ProcessDeaths(g)...)
	return out
}

// RemoveWithoutDeathrattle strips m from the board and revokes its aura
// grants without running its deathrattle.
func RemoveWithoutDeathrattle(g *state.GameState, owner state.PlayerID, m *state.Minion) []event.Event {
	p := g.Player(owner)
	aura.DisableSource(g, owner, m)
	p.RemoveFromBoard(m.ID)
	p.Dead = append(p.Dead, m)
	p.Graveyard = append(p.Graveyard, m.CardID)
	aura.RecomputeSide(g, owner)
	return nil
}

func killMinion(g *state.GameState, owner state.PlayerID, m *state.Minion) []event.Event {
	p := g.Player(owner)
	// Revoke m's own aura grants before removing it: RecomputeSide only
	// walks sources still present on board, so leaving board first would
	// strand its grants on whoever it buffed.
	aura.DisableSource(g, owner, m)
	p.RemoveFromBoard(m.ID)
	p.Dead = append(p.Dead, m)
	p.Graveyard = append(p.Graveyard, m.CardID)

	out := g.Emit(event.New(event.KindMinionDied, "minion", m.ID, "owner", owner))

	if m.Deathrattle != nil {
		src := state.Source{Owner: owner, DisplayName: m.Name, SelfID: m.ID, HasSelfID: true}
		out = append(out, m.Deathrattle(g, src, state.NoTarget, nil)...)
	}

	aura.RecomputeSide(g, owner)
	return out
}
