package effect

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

func init() {
	register("draw", drawEffect)
	register("discard_random", discardRandom)
	register("add_card_to_hand", addCardToHand)
	register("gain_temp_mana", gainTempMana)
	register("gain_armor", gainArmor)
	register("equip_weapon", equipWeapon)
	register("destroy_weapon", destroyWeapon)
	register("weapon_durability_delta", weaponDurabilityDelta)
	register("discover_equal_remaining_mana", discoverEqualRemainingMana)
}

// DrawCard moves the top card of pid's deck into hand: an empty deck
// deals strictly increasing fatigue damage (the Nth empty draw deals N,
// not a running sum), and a full hand burns the drawn card to the
// graveyard instead of keeping it. Exported so the engine's start_game/
// start_turn draws and the "draw" effect primitive share one
// implementation.
func DrawCard(g *state.GameState, pid state.PlayerID) []event.Event {
	p := g.Player(pid)
	if len(p.Deck) == 0 {
		p.Fatigue++
		amount := p.Fatigue
		absorbed := amount
		if absorbed > p.Armor {
			absorbed = p.Armor
		}
		p.Armor -= absorbed
		p.Health -= amount - absorbed
		out := g.Emit(event.New(event.KindPlayerDamaged, "player", pid, "amount", amount, "absorbed", absorbed, "fatigue", true))
		if p.Health <= 0 {
			out = append(out, g.Emit(event.New(event.KindPlayerDefeated, "player", pid))...)
		}
		return out
	}

	cardID := p.Deck[0]
	p.Deck = p.Deck[1:]

	if len(p.Hand) >= state.MaxHandSize {
		p.Graveyard = append(p.Graveyard, cardID)
		return g.Emit(event.New(event.KindCardBurned, "player", pid, "card", cardID))
	}

	p.Hand = append(p.Hand, cardID)
	return g.Emit(event.New(event.KindCardDrawn, "player", pid, "card", cardID))
}

func drawEffect(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	count := paramInt(params, "count", 1)
	var out []event.Event
	for i := 0; i < count; i++ {
		out = append(out, DrawCard(g, pid)...)
	}
	return out
}

// discardRandom discards a uniformly random card from pid's hand to the
// graveyard, a no-op on an empty hand.
func discardRandom(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	p := g.Player(pid)
	if len(p.Hand) == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(len(p.Hand))
	cardID, _ := p.PopHand(idx)
	p.Graveyard = append(p.Graveyard, cardID)
	return g.Emit(event.New(event.KindCardDiscarded, "player", pid, "card", cardID))
}

// addCardToHand creates a fresh card (by id) directly into pid's hand,
// burning it instead if the hand is full (same overflow rule as a draw).
func addCardToHand(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	cardID := paramString(params, "card_id", "")
	if _, ok := state.Lookup(g.Cards, g.Tokens, cardID); !ok {
		return nil
	}
	p := g.Player(pid)
	if len(p.Hand) >= state.MaxHandSize {
		p.Graveyard = append(p.Graveyard, cardID)
		return g.Emit(event.New(event.KindCardBurned, "player", pid, "card", cardID))
	}
	p.Hand = append(p.Hand, cardID)
	return g.Emit(event.New(event.KindCardCreated, "player", pid, "card", cardID))
}

func gainTempMana(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	amount := paramInt(params, "amount", 0)
	p := g.Player(pid)
	p.Mana += amount
	return g.Emit(event.New(event.KindGainMana, "player", pid, "amount", amount))
}

func gainArmor(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	amount := paramInt(params, "amount", 0)
	p := g.Player(pid)
	p.Armor += amount
	return g.Emit(event.New(event.KindArmorGained, "player", pid, "amount", amount))
}

// equipWeapon installs a weapon token/card on the source's owner,
// breaking any weapon already equipped first.
func equipWeapon(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	cardID := paramString(params, "card_id", "")
	card, ok := state.Lookup(g.Cards, g.Tokens, cardID)
	if !ok {
		return nil
	}
	p := g.Player(src.Owner)
	var out []event.Event
	if p.Weapon != nil {
		out = append(out, g.Emit(event.New(event.KindWeaponBroken, "player", src.Owner))...)
	}
	p.Weapon = &state.Weapon{
		CardID:        card.ID,
		Name:          card.Name,
		Attack:        card.Attack,
		Durability:    card.Health,
		MaxDurability: card.Health,
		Triggers:      card.Triggers,
	}
	out = append(out, g.Emit(event.New(event.KindWeaponEquipped, "player", src.Owner, "card", card.ID))...)
	return out
}

func destroyWeapon(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	p := g.Player(pid)
	if p.Weapon == nil {
		return nil
	}
	p.Weapon = nil
	return g.Emit(event.New(event.KindWeaponBroken, "player", pid))
}

func weaponDurabilityDelta(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pid := resolveOwner(paramString(params, "owner", "self"), g, src)
	p := g.Player(pid)
	if p.Weapon == nil {
		return nil
	}
	delta := paramInt(params, "amount", 0)
	p.Weapon.Durability += delta
	out := g.Emit(event.New(event.KindWeaponDurability, "player", pid, "durability", p.Weapon.Durability))
	if p.Weapon.IsBroken() {
		p.Weapon = nil
		out = append(out, g.Emit(event.New(event.KindWeaponBroken, "player", pid))...)
	}
	return out
}

// discoverEqualRemainingMana samples one card, uniformly at random, from
// the legal pool (params["pool"], a list of card ids) whose cost equals
// the caster's currently remaining mana, and adds it to hand.
func discoverEqualRemainingMana(g *state.GameState, src state.Source, tgt state.Target, ctx, params state.Context) []event.Event {
	pool := paramStringSlice(params, "pool")
	p := g.Player(src.Owner)

	var legal []string
	for _, id := range pool {
		card, ok := state.Lookup(g.Cards, g.Tokens, id)
		if !ok || card.Cost != p.Mana {
			continue
		}
		legal = append(legal, id)
	}
	if len(legal) == 0 {
		return nil
	}
	idx, _ := g.RNG.Intn(len(legal))
	cardID := legal[idx]

	out := g.Emit(event.New(event.KindCardDiscovered, "player", src.Owner, "card", cardID))
	if len(p.Hand) >= state.MaxHandSize {
		p.Graveyard = append(p.Graveyard, cardID)
		out = append(out, g.Emit(event.New(event.KindCardBurned, "player", src.Owner, "card", cardID))...)
		return out
	}
	p.Hand = append(p.Hand, cardID)
	return out
}
