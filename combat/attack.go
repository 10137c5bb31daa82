package combat

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

// ResolveMinionCombat executes simultaneous minion-vs-minion combat:
// both sides deal damage using
// pre-damage attack values, the defender's minion_attacked secrets fire
// first, and self_deals_damage fires for whichever side's damage
// actually landed (not fully absorbed by Divine Shield).
func ResolveMinionCombat(
	g *state.GameState,
	attackerPID state.PlayerID, attacker *state.Minion,
	defenderPID state.PlayerID, defender *state.Minion,
	disp trigger.Dispatcher,
) []event.Event {
	attacker.HasAttacked = true
	out := g.Emit(event.New(event.KindAttack, "attacker", attacker.ID, "defender", defender.ID))

	out = append(out, disp.FireSecret(g, defenderPID, trigger.MinionAttacked,
		state.Context{"minion": defender.ID, "attacker": attacker.ID})...)

	attackerAttack, defenderAttack := attacker.Attack, defender.Attack

	defHealthBefore, defShieldBefore := defender.Health, defender.DivineShield
	out = append(out, DamageMinion(g, defenderPID, defender, attackerAttack, disp)...)
	if dealtRealDamage(defHealthBefore, defShieldBefore, defender) {
		out = append(out, disp.FireSelf(g, attackerPID, attacker, trigger.SelfDealsDamage,
			state.Context{"amount": attackerAttack, "target": defender.ID})...)
	}

	atkHealthBefore, atkShieldBefore := attacker.Health, attacker.DivineShield
	out = append(out, DamageMinion(g, attackerPID, attacker, defenderAttack, disp)...)
	if dealtRealDamage(atkHealthBefore, atkShieldBefore, attacker) {
		out = append(out, disp.FireSelf(g, defenderPID, defender, trigger.SelfDealsDamage,
			state.Context{"amount": defenderAttack, "target": attacker.ID})...)
	}

	return out
}

// ResolveFaceAttack executes a minion attacking the opposing hero
// directly.
func ResolveFaceAttack(
	g *state.GameState,
	attackerPID state.PlayerID, attacker *state.Minion,
	defenderPID state.PlayerID,
	disp trigger.Dispatcher,
) []event.Event {
	attacker.HasAttacked = true
	out := g.Emit(event.New(event.KindAttack, "attacker", attacker.ID, "target", "face"))

	out = append(out, disp.FireSecret(g, defenderPID, trigger.HeroAttacked, state.Context{"attacker": attacker.ID})...)

	// Defender secrets may have killed, removed, or frozen the attacker.
	if _, owner, _, ok := g.FindMinion(attacker.ID); !ok || owner != attackerPID || attacker.Frozen {
		return out
	}

	out = append(out, DamageHero(g, defenderPID, attacker.Attack)...)
	return out
}

// heroAttackBonus sums every caster's temporary attack bonus currently
// granted to p's hero.
func heroAttackBonus(p *state.Player) int {
	bonus := 0
	for _, v := range p.TempAttack {
		bonus += v
	}
	return bonus
}

// dealtRealDamage reports whether m actually lost health from the hit
// just applied to it (as opposed to the hit being fully absorbed by a
// Divine Shield that popped instead).
func dealtRealDamage(healthBefore int, hadShield bool, m *state.Minion) bool {
	if hadShield && !m.DivineShield {
		return false
	}
	return m.Health < healthBefore
}

// ResolveHeroAttack executes a hero swinging its equipped weapon.
// Weapon durability is spent only if the swing
// actually lands after the defender's secrets have had a chance to
// remove the weapon or the attacker's legality; an attack that no longer
// has a legal weapon after secrets resolve is a soft no-op.
func ResolveHeroAttack(g *state.GameState, attackerPID state.PlayerID, target state.Target, disp trigger.Dispatcher) []event.Event {
	p := g.Player(attackerPID)
	p.HeroHasAttackedTurn = true

	out := g.Emit(event.New(event.KindHeroAttack, "player", attackerPID, "target", target))

	// Defender secrets first; they may break the weapon or freeze the
	// attacker, so legality is re-checked before anything lands.
	var defenderPID state.PlayerID
	switch target.Kind {
	case state.TargetPlayer:
		defenderPID = target.Player
		out = append(out, disp.FireSecret(g, defenderPID, trigger.HeroAttacked, state.Context{"player": attackerPID})...)
	case state.TargetMinion:
		if _, owner, _, ok := g.FindMinion(target.Minion); ok {
			defenderPID = owner
		}
		out = append(out, disp.FireSecret(g, defenderPID, trigger.MinionAttacked, state.Context{"minion": target.Minion, "attacker": attackerPID})...)
	}

	weapon := p.Weapon // re-read: secrets may have destroyed it
	if weapon == nil || weapon.IsBroken() || weapon.Attack <= 0 || p.HeroFrozen || p.Health <= 0 {
		return out
	}

	src := state.Source{Owner: attackerPID, DisplayName: weapon.Name}
	for _, ts := range weapon.Triggers {
		if ts.On != trigger.HeroAttacks {
			continue
		}
		out = append(out, ts.Runner(g, src, target, nil)...)
	}

	swingAttack := weapon.Attack + heroAttackBonus(p)

	switch target.Kind {
	case state.TargetPlayer:
		out = append(out, DamageHero(g, defenderPID, swingAttack)...)
	case state.TargetMinion:
		defMinion, owner, _, ok := g.FindMinion(target.Minion)
		if !ok {
			break
		}
		// The minion strikes back with its pre-damage attack whether or
		// not the weapon hit got through its Divine Shield.
		retaliate := defMinion.Attack
		out = append(out, DamageMinion(g, owner, defMinion, swingAttack, disp)...)
		if retaliate > 0 {
			out = append(out, DamageHero(g, attackerPID, retaliate)...)
			out = append(out, disp.FireSelf(g, owner, defMinion, trigger.SelfDealsDamage,
				state.Context{"player": attackerPID, "amount": retaliate})...)
		}
	}

	weapon.Durability--
	out = append(out, g.Emit(event.New(event.KindWeaponDurability, "player", attackerPID, "durability", weapon.Durability))...)
	if weapon.IsBroken() {
		p.Weapon = nil
		out = append(out, g.Emit(event.New(event.KindWeaponBroken, "player", attackerPID))...)
	}

	return out
}
