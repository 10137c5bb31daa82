// Package trigger implements trigger dispatch: delivering named trigger
// points to the minions and secrets listening for them.
//
// The trigger point set is closed and small, and every listener already
// lives where it was attached, on a Minion's Triggers slice or a
// Player's ActiveSecrets.
// Dispatch is therefore a direct walk of a snapshot of the listening
// side's board/secrets rather than a lookup into a shared handler map.
package trigger

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// Named trigger points. Callers (combat, effect,
// engine) are responsible for firing these at the right pid (the
// listening side) and moment; this package only dispatches.
const (
	FriendlySummon        = "friendly_summon"
	FriendlySpellCast     = "friendly_spell_cast"
	EnemySpellCast        = "enemy_spell_cast"
	EnemyMinionPlayed     = "enemy_minion_played"
	MinionAttacked        = "minion_attacked"
	HeroAttacked          = "hero_attacked"
	SelfDamaged           = "self_damaged"
	SelfDealsDamage       = "self_deals_damage"
	FriendlyMinionDamaged = "friendly_minion_damaged"
	MinionHealed          = "minion_healed"
	EndOfYourTurn         = "end_of_your_turn"
	HeroAttacks           = "hero_attacks"
)

// Dispatcher is the seam the combat/effect/engine packages call through,
// so tests can substitute triggermock.MockDispatcher instead of driving a
// live GameState end to end.
type Dispatcher interface {
	// Fire runs every TriggerSpec on pid's board matching name, over a
	// snapshot taken before any handler runs. exclude suppresses a single
	// minion id from triggering; pass 0 when nothing should be excluded.
	Fire(g *state.GameState, pid state.PlayerID, name string, ctx state.Context, exclude state.MinionID) []event.Event

	// FireSecret consumes and runs every one of pid's armed secrets whose
	// Trigger matches name, in arming order. It returns nil if no armed
	// secret matches.
	FireSecret(g *state.GameState, pid state.PlayerID, name string, ctx state.Context) []event.Event

	// FireSelf runs only m's own TriggerSpecs matching name.
	FireSelf(g *state.GameState, pid state.PlayerID, m *state.Minion, name string, ctx state.Context) []event.Event
}

// Live is the Dispatcher backed directly by a GameState.
type Live struct{}

// Compile-time assertion that Live satisfies Dispatcher.
var _ Dispatcher = Live{}

// Fire implements Dispatcher.
func (Live) Fire(g *state.GameState, pid state.PlayerID, name string, ctx state.Context, exclude state.MinionID) []event.Event {
	p := g.Player(pid)
	board := make([]*state.Minion, len(p.Board))
	copy(board, p.Board)

	var out []event.Event
	for _, m := range board {
		if m.ID == exclude {
			continue
		}
		// A handler earlier in this same snapshot may have killed or
		// removed m already; re-check liveness before firing it.
		if _, owner, _, ok := g.FindMinion(m.ID); !ok || owner != pid || !m.IsAlive() {
			continue
		}
		for _, ts := range m.Triggers {
			if ts.On != name {
				continue
			}
			src := state.Source{Owner: pid, DisplayName: m.Name, SelfID: m.ID, HasSelfID: true}
			out = append(out, ts.Runner(g, src, state.NoTarget, ctx)...)
		}
	}
	return out
}

// FireSelf implements Dispatcher.
func (Live) FireSelf(g *state.GameState, pid state.PlayerID, m *state.Minion, name string, ctx state.Context) []event.Event {
	if _, owner, _, ok := g.FindMinion(m.ID); !ok || owner != pid {
		return nil
	}
	var out []event.Event
	src := state.Source{Owner: pid, DisplayName: m.Name, SelfID: m.ID, HasSelfID: true}
	for _, ts := range m.Triggers {
		if ts.On != name {
			continue
		}
		out = append(out, ts.Runner(g, src, state.NoTarget, ctx)...)
	}
	return out
}

// FireSecret implements Dispatcher.
func (Live) FireSecret(g *state.GameState, pid state.PlayerID, name string, ctx state.Context) []event.Event {
	p := g.Player(pid)
	snapshot := make([]state.ActiveSecret, len(p.ActiveSecrets))
	copy(snapshot, p.ActiveSecrets)

	var out []event.Event
	for _, s := range snapshot {
		if s.Trigger != name {
			continue
		}
		idx := -1
		for j, cur := range p.ActiveSecrets {
			if cur.CardID == s.CardID && cur.Trigger == s.Trigger {
				idx = j
				break
			}
		}
		if idx < 0 {
			// Already consumed earlier in this same cascade.
			continue
		}
		p.RemoveSecret(idx)
		p.Graveyard = append(p.Graveyard, s.CardID)

		out = append(out, g.Emit(event.New(event.KindSecretRevealed,
			"owner", pid, "card", s.CardID, "name", s.Name))...)

		src := state.Source{Owner: pid, DisplayName: s.Name}
		out = append(out, s.Runner(g, src, state.NoTarget, ctx)...)
	}
	return out
}
