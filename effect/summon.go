package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

func init() {
	register("summon", summonEffect)
	register("summon_from_pool", summonFromPool)
	register("copy_self_as_target_minion", copySelfAsTargetMinion)
	register("add_self_health_from_hand", addSelfHealthFromHand)
}

// summonOne creates a fresh instance of card on pid's board and fires
// the summon hooks, a silent no-op once the board is full. Returns the
// new minion (nil if the board was full) and its events.
func summonOne(g *state.GameState, pid state.PlayerID, card *state.Card) (*state.Minion, []event.Event) {
	p := g.Player(pid)
	if len(p.Board) >= state.MaxBoardSize {
		return nil, nil
	}
	m := state.NewMinionFromCard(g, card, pid)
	p.InsertOnBoard(m, nil)

	out := g.Emit(event.New(event.KindMinionSummoned, "minion", m.ID, "owner", pid, "card", card.ID))
	aura.RecomputeSide(g, pid)
	out = append(out, trigger.Live{}.Fire(g, pid, trigger.FriendlySummon, state.Context{"minion": m.ID}, m.ID)...)
	return m, out
}

// summonEffect summons count copies of card_id for the resolved owner.
func summonEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	cardID := paramString(params, "card_id", "")
	count := paramInt(params, "count", 1)
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)

	card, ok := state.Lookup(g.Cards, g.Tokens, cardID)
	if !ok {
		return nil
	}
	var out []event.Event
	for i := 0; i < count; i++ {
		_, evs := summonOne(g, pid, card)
		out = append(out, evs...)
	}
	return out
}

// summonFromPool summons one uniformly-random card id from params["pool"]
// for owner.
func summonFromPool(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pool := paramStringSlice(params, "pool")
	if len(pool) == 0 {
		return nil
	}
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	idx, _ := g.RNG.Intn(len(pool))
	card, ok := state.Lookup(g.Cards, g.Tokens, pool[idx])
	if !ok {
		return nil
	}
	_, out := summonOne(g, pid, card)
	return out
}

// copySelfAsTargetMinion morphs the just-played battlecry minion into a
// live copy of the targeted minion: current stats, keywords, triggers,
// auras and base identity, keeping its own id, owner and board slot. The
// copy is read directly from the Minion value, not re-instanced from its
// card template, so buffs the target has accumulated carry over.
func copySelfAsTargetMinion(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	selfID, _, inBattlecry := g.BattlecrySelf()
	if !inBattlecry {
		if !src.HasSelfID {
			return nil
		}
		selfID = src.SelfID
	}
	me, owner, _, found := g.FindMinion(selfID)
	if !found {
		return nil
	}
	orig, _, ok := resolveMinion(g, tgt)
	if !ok || orig.ID == me.ID {
		return nil
	}

	aura.DisableSource(g, owner, me)

	me.Name = orig.Name
	me.CardID = orig.CardID
	me.Text = orig.Text
	me.Attack = orig.Attack
	if me.Attack < 0 {
		me.Attack = 0
	}
	me.MaxHealth = orig.MaxHealth
	if me.MaxHealth < 1 {
		me.MaxHealth = 1
	}
	me.Health = orig.Health
	if me.Health > me.MaxHealth {
		me.Health = me.MaxHealth
	}
	me.Taunt = orig.Taunt
	me.DivineShield = orig.DivineShield
	me.Charge = orig.Charge
	me.Rush = orig.Rush
	me.Frozen = orig.Frozen
	me.Silenced = orig.Silenced
	me.CantAttack = orig.CantAttack
	me.SpellDamage = orig.SpellDamage
	me.Tribe = orig.Tribe
	me.Base = orig.Base
	me.Deathrattle = orig.Deathrattle
	me.Triggers = append([]state.TriggerSpec(nil), orig.Triggers...)
	me.Aura = orig.Aura
	me.Auras = append([]state.StatAuraSpec(nil), orig.Auras...)
	me.CostAura = orig.CostAura
	me.Enrage = orig.Enrage
	me.EnrageActive = orig.EnrageActive
	// Temporary stacks belong to the old self and don't carry over.
	me.TempStats = nil
	me.TempKeywords = nil

	aura.RecomputeSide(g, owner)
	return g.Emit(event.New(event.KindMinionTransformed, "minion", me.ID, "copied_from", orig.ID, "card", me.CardID))
}

// summonLiveCopy summons a copy of orig's *live* Minion value (stats,
// keywords, base already on the copy) onto pid's board, firing the same
// hooks a fresh summon does. Used by the mirror_played_minion secret,
// which copies an existing minion rather than stamping one from a card
// template (copy_self_as_target_minion morphs in place instead).
func summonLiveCopy(g *state.GameState, pid state.PlayerID, orig *state.Minion) (*state.Minion, []event.Event) {
	p := g.Player(pid)
	if len(p.Board) >= state.MaxBoardSize {
		return nil, nil
	}

	copyM := *orig
	copyM.ID = g.AllocMinionID()
	copyM.Owner = pid
	copyM.TempStats = nil
	copyM.TempKeywords = nil
	copyM.AuraGrants = nil
	copyM.Exhausted = true
	copyM.SummonedTurn = true
	copyM.HasAttacked = false

	p.InsertOnBoard(&copyM, nil)
	out := g.Emit(event.New(event.KindMinionSummoned, "minion", copyM.ID, "owner", pid, "card", copyM.CardID, "copy_of", orig.ID))
	aura.RecomputeSide(g, pid)
	out = append(out, trigger.Live{}.Fire(g, pid, trigger.FriendlySummon, state.Context{"minion": copyM.ID}, copyM.ID)...)
	return &copyM, out
}

// addSelfHealthFromHand grants the currently-playing minion +health equal
// to params["per_card"] times the number of cards left in its owner's
// hand (after the just-played card has already been popped), used by
// battlecries like Twilight Drake.
func addSelfHealthFromHand(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	if !src.HasSelfID {
		return nil
	}
	m, _, _, found := g.FindMinion(src.SelfID)
	if !found {
		return nil
	}
	perCard := paramInt(params, "per_card", 1)
	health := perCard * len(g.Player(src.Owner).Hand)
	if health == 0 {
		return nil
	}
	m.MaxHealth += health
	m.Health += health
	return g.Emit(event.New(event.KindBuff, "minion", m.ID, "attack", 0, "health", health))
}
