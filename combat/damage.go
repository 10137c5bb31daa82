// Package combat implements the Combat & Damage Pipeline:
// damaging minions and heroes, simultaneous minion/hero combat, Enrage,
// Freeze and Silence, and the death-processing pipeline that runs
// deathrattles and board cleanup.
package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

// DamageMinion applies amount damage to m, owned by pid. A no-op for
// amount <= 0. Returns the events
// produced; a minion reduced to 0 or below health is queued for
// destruction rather than removed in place, so simultaneous damage
// resolves fully before any deathrattle runs.
func DamageMinion(g *state.GameState, pid state.PlayerID, m *state.Minion, amount int, disp trigger.Dispatcher) []event.Event {
	if amount <= 0 || !m.IsAlive() {
		return nil
	}

	if m.DivineShield {
		m.DivineShield = false
		return g.Emit(event.New(event.KindDivineShieldPopped, "minion", m.ID))
	}

	m.Health -= amount
	out := g.Emit(event.New(event.KindMinionDamaged, "minion", m.ID, "amount", amount))

	out = append(out, disp.Fire(g, pid, trigger.FriendlyMinionDamaged, state.Context{"minion": m.ID, "amount": amount}, 0)...)
	out = append(out, disp.FireSelf(g, pid, m, trigger.SelfDamaged, state.Context{"amount": amount})...)

	out = append(out, RecomputeEnrage(g, m)...)

	if m.Health <= 0 {
		g.EnqueueDeath(pid, m.ID)
	}
	return out
}

// DamageHero applies amount damage to pid's hero: armor absorbs first, the remainder subtracts from health.
func DamageHero(g *state.GameState, pid state.PlayerID, amount int) []event.Event {
	if amount <= 0 {
		return nil
	}
	p := g.Player(pid)

	absorbed := amount
	if absorbed > p.Armor {
		absorbed = p.Armor
	}
	p.Armor -= absorbed
	remaining := amount - absorbed
	p.Health -= remaining

	out := g.Emit(event.New(event.KindPlayerDamaged, "player", pid, "amount", amount, "absorbed", absorbed))
	if p.Health <= 0 {
		out = append(out, g.Emit(event.New(event.KindPlayerDefeated, "player", pid))...)
	}
	return out
}

// HealMinion restores up to amount health, never past MaxHealth, and
// recomputes Enrage since the damaged-ness may have changed.
func HealMinion(g *state.GameState, m *state.Minion, amount int) []event.Event {
	if amount <= 0 || !m.IsAlive() {
		return nil
	}
	before := m.Health
	m.Health += amount
	if m.Health > m.MaxHealth {
		m.Health = m.MaxHealth
	}
	healed := m.Health - before
	if healed <= 0 {
		return nil
	}
	out := g.Emit(event.New(event.KindMinionHealed, "minion", m.ID, "amount", healed))
	out = append(out, RecomputeEnrage(g, m)...)
	return out
}

// HealHero restores up to amount health to pid's hero, never past
// MaxHealth.
func HealHero(g *state.GameState, pid state.PlayerID, amount int) []event.Event {
	if amount <= 0 {
		return nil
	}
	p := g.Player(pid)
	before := p.Health
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	healed := p.Health - before
	if healed <= 0 {
		return nil
	}
	return g.Emit(event.New(event.KindPlayerHealed, "player", pid, "amount", healed))
}

// RecomputeEnrage toggles a minion's enrage bonus on or off exactly once
// per state change: active iff not silenced, alive, and damaged.
func RecomputeEnrage(g *state.GameState, m *state.Minion) []event.Event {
	if m.Enrage == nil {
		return nil
	}
	shouldBeActive := !m.Silenced && m.IsAlive() && m.Health < m.MaxHealth
	if shouldBeActive == m.EnrageActive {
		return nil
	}
	delta := m.Enrage.Attack
	if !shouldBeActive {
		delta = -delta
	}
	m.Attack += delta
	m.EnrageActive = shouldBeActive
	return g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack_delta", delta, "source", "enrage"))
}
