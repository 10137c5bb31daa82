package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

func init() {
	register("deal_damage", dealDamage)
	register("deal_damage_equal_armor", dealDamageEqualArmor)
	register("deal_damage_range", dealDamageRange)
	register("random_pings", randomPings)
	register("random_enemy_damage", randomEnemyDamage)
	register("heal", heal)
	register("aoe_damage", aoeDamage)
	register("aoe_damage_minions", aoeDamageMinions)
	register("aoe_heal", aoeHeal)
	register("aoe_heal_minions", aoeHealMinions)
	register("random_heal", randomHeal)
}

// damageTarget applies amount damage to tgt, whether it's a minion or a
// player, and is the single gate through which every targeted-damage
// primitive ultimately routes (keeping the Divine Shield/Enrage/trigger
// plumbing in one place: combat.DamageMinion/DamageHero).
func damageTarget(g *state.GameState, tgt state.Target, amount int) []event.Event {
	switch tgt.Kind {
	case state.TargetMinion:
		m, owner, ok := resolveMinion(g, tgt)
		if !ok {
			return nil
		}
		return combat.DamageMinion(g, owner, m, amount, trigger.Live{})
	case state.TargetPlayer:
		return combat.DamageHero(g, tgt.Player, amount)
	}
	return nil
}

// spellAdjustedAmount adds the caster's Spell Damage bonus to amount
// when the source is Spell-like.
func spellAdjustedAmount(g *state.GameState, src state.Source, amount int) int {
	if !src.IsSpellLike {
		return amount
	}
	return amount + spellDamageBonus(g, src.Owner)
}

func dealDamage(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	amount := spellAdjustedAmount(g, src, paramInt(params, "amount", 0))
	return damageTarget(g, tgt, amount)
}

func dealDamageEqualArmor(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	amount := spellAdjustedAmount(g, src, g.Player(pid).Armor)
	return damageTarget(g, tgt, amount)
}

func dealDamageRange(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	min := paramInt(params, "min", 0)
	max := paramInt(params, "max", min)
	span := max - min + 1
	if span <= 0 {
		span = 1
	}
	roll, _ := g.RNG.Roll(span)
	amount := spellAdjustedAmount(g, src, min+roll-1)
	return damageTarget(g, tgt, amount)
}

// randomPings fires count 1-damage missiles at random enemy characters
// (board minions plus face) of the resolved owner. Spell Damage adds to
// the missile count, not the per-hit amount.
func randomPings(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "enemy"), g, src)
	count := paramInt(params, "count", 1)
	if src.IsSpellLike {
		count += spellDamageBonus(g, src.Owner)
	}

	var out []event.Event
	for i := 0; i < count; i++ {
		candidates := aliveMinions(friendlyMinions(g, pid))
		n := len(candidates) + 1 // +1 for face
		idx, _ := g.RNG.Intn(n)
		if idx == len(candidates) {
			out = append(out, combat.DamageHero(g, pid, 1)...)
			continue
		}
		out = append(out, combat.DamageMinion(g, pid, candidates[idx], 1, trigger.Live{})...)
	}
	return out
}

// randomEnemyDamage deals amount damage to one random character (or,
// when scope is "minion", one random minion) of the resolved owner.
func randomEnemyDamage(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "enemy"), g, src)
	amount := spellAdjustedAmount(g, src, paramInt(params, "amount", 0))
	scope := paramString(params, "scope", "character")

	candidates := aliveMinions(friendlyMinions(g, pid))
	n := len(candidates)
	if scope != "minion" {
		n++
	}
	if n == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(n)
	if idx == len(candidates) {
		return combat.DamageHero(g, pid, amount)
	}
	return combat.DamageMinion(g, pid, candidates[idx], amount, trigger.Live{})
}

func heal(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	amount := paramInt(params, "amount", 0)
	switch tgt.Kind {
	case state.TargetMinion:
		m, _, ok := resolveMinion(g, tgt)
		if !ok {
			return nil
		}
		return combat.HealMinion(g, m, amount)
	case state.TargetPlayer:
		return combat.HealHero(g, tgt.Player, amount)
	}
	return nil
}

func aoeDamage(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	return aoe(g, src, params, true)
}

func aoeDamageMinions(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	return aoe(g, src, params, false)
}

func aoe(g *state.GameState, src state.Source, params state.Context, includeHeroes bool) []event.Event {
	amount := spellAdjustedAmount(g, src, paramInt(params, "amount", 0))
	var out []event.Event
	for _, pid := range resolveOwners(paramString(params, "owner", "enemy"), g, src) {
		for _, m := range aliveMinions(friendlyMinions(g, pid)) {
			out = append(out, combat.DamageMinion(g, pid, m, amount, trigger.Live{})...)
		}
		if includeHeroes {
			out = append(out, combat.DamageHero(g, pid, amount)...)
		}
	}
	return out
}

func aoeHeal(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	return aoeHealImpl(g, src, params, true)
}

func aoeHealMinions(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	return aoeHealImpl(g, src, params, false)
}

func aoeHealImpl(g *state.GameState, src state.Source, params state.Context, includeHeroes bool) []event.Event {
	amount := paramInt(params, "amount", 0)
	var out []event.Event
	for _, pid := range resolveOwners(paramString(params, "owner", "friendly"), g, src) {
		for _, m := range aliveMinions(friendlyMinions(g, pid)) {
			out = append(out, combat.HealMinion(g, m, amount)...)
		}
		if includeHeroes {
			out = append(out, combat.HealHero(g, pid, amount)...)
		}
	}
	return out
}

// randomHeal heals one random injured friendly minion by amount, a
// no-op if nothing is injured.
func randomHeal(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "friendly"), g, src)
	amount := paramInt(params, "amount", 0)

	var injured []*state.Minion
	for _, m := range aliveMinions(friendlyMinions(g, pid)) {
		if m.Health < m.MaxHealth {
			injured = append(injured, m)
		}
	}
	if len(injured) == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(len(injured))
	return combat.HealMinion(g, injured[idx], amount)
}
