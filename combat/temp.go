package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// ExpireTemp reverts every temporary stat/keyword stack tagged to expire
// at expiresPID's end of turn, across both boards: stat deltas subtract
// exactly (max-health decreases clamp current health down), and each
// keyword touched by the expiring bucket recomputes its live flag from
// the base keywords plus whatever stacks other casters still hold. A
// minion whose health expires to 0 is queued for the death drainer.
func ExpireTemp(g *state.GameState, expiresPID state.PlayerID) []event.Event {
	var out []event.Event
	for pid := state.PlayerID(0); pid < 2; pid++ {
		p := g.Player(pid)
		delete(p.TempAttack, expiresPID)
		for _, m := range p.Board {
			if stack, ok := m.TempStats[expiresPID]; ok {
				delete(m.TempStats, expiresPID)
				if stack != (state.TempStatStack{}) {
					if stack.Attack != 0 {
						m.Attack -= stack.Attack
						if m.Attack < 0 {
							m.Attack = 0
						}
					}
					if stack.MaxHealth != 0 {
						m.MaxHealth -= stack.MaxHealth
						if m.MaxHealth < 1 {
							m.MaxHealth = 1
						}
						if m.Health > m.MaxHealth {
							m.Health = m.MaxHealth
						}
					}
					if stack.Health != 0 {
						m.Health -= stack.Health
						if m.Health > m.MaxHealth {
							m.Health = m.MaxHealth
						}
						if m.Health < 0 {
							m.Health = 0
						}
					}
					out = append(out, g.Emit(event.New(event.KindBuffExpired, "minion", m.ID))...)
					out = append(out, RecomputeEnrage(g, m)...)
					if m.Health <= 0 {
						g.EnqueueDeath(pid, m.ID)
					}
				}
			}
			if kw, ok := m.TempKeywords[expiresPID]; ok {
				delete(m.TempKeywords, expiresPID)
				for k := range kw {
					m.RecomputeKeywordFlag(k)
				}
			}
		}
	}
	return out
}
