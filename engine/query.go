package engine

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// FindMinion is a read-only minion lookup across both boards.
func (g *Game) FindMinion(id state.MinionID) (*state.Minion, state.PlayerID, bool) {
	m, owner, _, ok := g.State.FindMinion(id)
	return m, owner, ok
}

// LegalAttackTargets returns every Target a call to Attack with this
// attacker would currently accept, honoring frozen/exhausted/summoning-
// sickness and the Taunt constraint.
func (g *Game) LegalAttackTargets(attackerID state.MinionID) []state.Target {
	attacker, owner, _, ok := g.State.FindMinion(attackerID)
	if !ok || !attacker.CanAttack() {
		return nil
	}
	defenderPID := owner.Other()
	taunts := livingTaunts(g.State.Player(defenderPID))

	var out []state.Target
	if len(taunts) == 0 {
		if !(attacker.SummonedTurn && !attacker.Charge) {
			out = append(out, state.PlayerTarget(defenderPID))
		}
		if !(attacker.SummonedTurn && !attacker.Charge && !attacker.Rush) {
			for _, m := range g.State.Player(defenderPID).Board {
				if m.IsAlive() {
					out = append(out, state.MinionTarget(m.ID))
				}
			}
		}
		return out
	}

	if attacker.SummonedTurn && !attacker.Charge && !attacker.Rush {
		return nil
	}
	for _, t := range taunts {
		out = append(out, state.MinionTarget(t.ID))
	}
	return out
}

// HeroLegalTargets returns every Target a call to HeroAttack for pid
// would currently accept.
func (g *Game) HeroLegalTargets(pid state.PlayerID) []state.Target {
	p := g.State.Player(pid)
	if p.Weapon == nil || p.Weapon.Attack <= 0 || p.HeroFrozen || p.HeroHasAttackedTurn {
		return nil
	}
	defenderPID := pid.Other()
	taunts := livingTaunts(g.State.Player(defenderPID))

	var out []state.Target
	if len(taunts) == 0 {
		out = append(out, state.PlayerTarget(defenderPID))
		for _, m := range g.State.Player(defenderPID).Board {
			if m.IsAlive() {
				out = append(out, state.MinionTarget(m.ID))
			}
		}
		return out
	}
	for _, t := range taunts {
		out = append(out, state.MinionTarget(t.ID))
	}
	return out
}

// EffectiveCost reports what pid would currently pay for cardID.
func (g *Game) EffectiveCost(pid state.PlayerID, cardID string) (int, error) {
	card, ok := state.Lookup(g.State.Cards, g.State.Tokens, cardID)
	if !ok {
		return 0, gameerr.Newf(gameerr.CodeUnknownCard, "engine: unknown card %q", cardID)
	}
	return aura.EffectiveCost(g.State, pid, card), nil
}

// CanUseHeroPower reports whether pid could use the hero power now.
func (g *Game) CanUseHeroPower(pid state.PlayerID) bool {
	p := g.State.Player(pid)
	return !p.HeroPowerUsedThisTurn && p.Mana >= p.Hero.Power.Cost
}

// Hand returns a read-only copy of pid's hand.
func (g *Game) Hand(pid state.PlayerID) []string {
	return append([]string(nil), g.State.Player(pid).Hand...)
}

// Board returns a read-only copy of pid's board.
func (g *Game) Board(pid state.PlayerID) []*state.Minion {
	return append([]*state.Minion(nil), g.State.Player(pid).Board...)
}

// Health returns pid's current hero health.
func (g *Game) Health(pid state.PlayerID) int { return g.State.Player(pid).Health }

// Armor returns pid's current armor.
func (g *Game) Armor(pid state.PlayerID) int { return g.State.Player(pid).Armor }

// Mana returns pid's current/max mana.
func (g *Game) Mana(pid state.PlayerID) (int, int) {
	p := g.State.Player(pid)
	return p.Mana, p.MaxMana
}

// ActiveSecrets is viewer-dependent: viewer sees owner's secret card ids iff
// viewer == owner, otherwise only how many are armed (hidden information).
func (g *Game) ActiveSecrets(owner, viewer state.PlayerID) []string {
	secrets := g.State.Player(owner).ActiveSecrets
	if viewer != owner {
		return make([]string, len(secrets))
	}
	ids := make([]string, len(secrets))
	for i, s := range secrets {
		ids[i] = s.CardID
	}
	return ids
}
