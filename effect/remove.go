package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

func init() {
	register("silence", silenceEffect)
	register("destroy", destroyEffect)
	register("execute", executeEffect)
	register("transform", transformEffect)
	register("set_attack", setAttack)
	register("set_health", setHealth)
	register("multiply_attack", multiplyAttack)
	register("multiply_health", multiplyHealth)
	register("freeze", freezeEffect)
	register("shadowflame", shadowflame)
}

func silenceEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, owner, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	return combat.Silence(g, owner, m)
}

func destroyEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, owner, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	return combat.Destroy(g, owner, m)
}

// executeEffect destroys tgt only if it's a damaged enemy minion, and is
// a soft no-op otherwise.
func executeEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, owner, ok := resolveMinion(g, tgt)
	if !ok || owner == src.Owner {
		return nil
	}
	if m.Health >= m.MaxHealth {
		return nil
	}
	return combat.Destroy(g, owner, m)
}

// transformEffect replaces tgt with a fresh instance of the named card
// or token, keeping the same board slot and id.
func transformEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, owner, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	cardID := paramString(params, "card_id", "")
	card, found := state.Lookup(g.Cards, g.Tokens, cardID)
	if !found {
		return nil
	}

	aura.DisableSource(g, owner, m)

	m.CardID = card.ID
	m.Name = card.Name
	m.Text = card.Text
	m.Attack = card.Attack
	m.MaxHealth = card.Health
	m.Health = card.Health
	m.Tribe = card.Tribe
	m.SpellDamage = card.SpellDamage
	m.Taunt = card.HasKeyword(state.KeywordTaunt)
	m.DivineShield = card.HasKeyword(state.KeywordDivineShield)
	m.Charge = card.HasKeyword(state.KeywordCharge)
	m.Rush = card.HasKeyword(state.KeywordRush)
	m.CantAttack = card.HasKeyword(state.KeywordCantAttack)
	m.Silenced = false
	m.EnrageActive = false
	m.Deathrattle = card.Deathrattle
	m.Triggers = card.Triggers
	m.Aura = card.Aura
	m.Auras = card.Auras
	m.CostAura = card.CostAura
	m.Enrage = card.Enrage
	m.TempStats = nil
	m.TempKeywords = nil
	m.Base = state.BaseStats{
		Attack:    card.Attack,
		Health:    card.Health,
		MaxHealth: card.Health,
		Keywords:  card.Keywords,
		Tribe:     card.Tribe,
		Text:      card.Text,
	}

	out := g.Emit(event.New(event.KindMinionTransformed, "minion", m.ID, "card", card.ID))
	aura.RecomputeSide(g, owner)
	return out
}

func setAttack(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	m.Attack = paramInt(params, "amount", m.Attack)
	return g.Emit(event.New(event.KindMinionSet, "minion", m.ID, "attack", m.Attack))
}

func setHealth(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	amount := paramInt(params, "amount", m.Health)
	m.MaxHealth = amount
	m.Health = amount
	return g.Emit(event.New(event.KindMinionSet, "minion", m.ID, "health", amount))
}

func multiplyAttack(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	factor := paramInt(params, "factor", 1)
	m.Attack *= factor
	return g.Emit(event.New(event.KindMinionSet, "minion", m.ID, "attack", m.Attack))
}

func multiplyHealth(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, _, ok := resolveMinion(g, tgt)
	if !ok {
		return nil
	}
	factor := paramInt(params, "factor", 1)
	m.MaxHealth *= factor
	m.Health *= factor
	return g.Emit(event.New(event.KindMinionSet, "minion", m.ID, "health", m.Health))
}

// freezeEffect freezes by declarative scope ("enemy_minions",
// "all_minions", "enemy_face", ...) when one is given, else by the tagged
// runtime target. Freezing a hero ignores Armor entirely; Freeze is a
// status, not damage.
func freezeEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	switch scope := paramString(params, "target", ""); scope {
	case "enemy_minions", "friendly_minions", "all_minions":
		sides := []state.PlayerID{src.Owner, src.Owner.Other()}
		switch scope {
		case "enemy_minions":
			sides = sides[1:]
		case "friendly_minions":
			sides = sides[:1]
		}
		var out []event.Event
		for _, pid := range sides {
			for _, m := range aliveMinions(friendlyMinions(g, pid)) {
				out = append(out, combat.FreezeMinion(g, m)...)
			}
		}
		return out
	case "enemy_character", "enemy_face", "enemy_hero", "any_character":
		return combat.FreezeHero(g, src.Owner.Other())
	case "friendly_character", "friendly_face", "friendly_hero":
		return combat.FreezeHero(g, src.Owner)
	}

	switch tgt.Kind {
	case state.TargetMinion:
		m, _, ok := resolveMinion(g, tgt)
		if !ok {
			return nil
		}
		return combat.FreezeMinion(g, m)
	case state.TargetPlayer:
		return combat.FreezeHero(g, tgt.Player)
	}
	return nil
}

// shadowflame destroys the targeted friendly minion, then deals damage
// equal to its pre-destruction attack to every enemy minion. No Spell
// Damage scaling on the splash.
func shadowflame(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	m, owner, ok := resolveMinion(g, tgt)
	if !ok || owner != src.Owner {
		return nil
	}
	amount := m.Attack
	if amount < 0 {
		amount = 0
	}
	out := combat.Destroy(g, owner, m)

	for _, enemy := range aliveMinions(friendlyMinions(g, owner.Other())) {
		out = append(out, combat.DamageMinion(g, owner.Other(), enemy, amount, trigger.Live{})...)
	}
	return out
}
