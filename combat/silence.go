package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// Silence strips m down to its as-summoned base state: disables any
// auras m grants, clears
// temporary stat/keyword stacks granted to it, clears deathrattle and
// triggers, reverts attack/max_health/tribe/text to Base, and resets the
// Taunt/Charge/Rush/Can't Attack flags to whatever Base.Keywords grants.
// Divine Shield is always cleared, even when Base.Keywords lists it, so a
// consumed shield is never re-popped. Does not unwind
// buffs m itself granted to other minions via a one-time spell effect
// (only its continuous auras are revoked).
func Silence(g *state.GameState, pid state.PlayerID, m *state.Minion) []event.Event {
	aura.DisableSource(g, pid, m)

	m.TempStats = nil
	m.TempKeywords = nil
	m.Deathrattle = nil
	m.Triggers = nil
	m.Aura = nil
	m.Auras = nil
	m.CostAura = nil
	m.Enrage = nil
	m.EnrageActive = false
	m.SpellDamage = 0

	m.Attack = m.Base.Attack
	m.MaxHealth = m.Base.MaxHealth
	if m.Health > m.MaxHealth {
		m.Health = m.MaxHealth
	}
	m.Tribe = m.Base.Tribe
	m.Text = m.Base.Text

	m.Taunt = hasBaseKeyword(m.Base.Keywords, state.KeywordTaunt)
	m.Charge = hasBaseKeyword(m.Base.Keywords, state.KeywordCharge)
	m.Rush = hasBaseKeyword(m.Base.Keywords, state.KeywordRush)
	m.CantAttack = hasBaseKeyword(m.Base.Keywords, state.KeywordCantAttack)
	m.DivineShield = false
	m.Silenced = true

	out := g.Emit(event.New(event.KindSilenced, "minion", m.ID))
	aura.RecomputeSide(g, pid)
	return out
}

func hasBaseKeyword(keywords []state.Keyword, k state.Keyword) bool {
	for _, kw := range keywords {
		if kw == k {
			return true
		}
	}
	return false
}
