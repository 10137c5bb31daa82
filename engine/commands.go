package engine

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/target"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

// PlayCard validates turn, hand index, effective cost and
// type-specific legality, pays mana, pops the card, and branches on its
// type.
func (g *Game) PlayCard(pid state.PlayerID, handIndex int, tgt state.Target, insertAt *int) ([]event.Event, error) {
	if pid != g.State.ActivePlayer {
		return nil, gameerr.New(gameerr.CodeNotYourTurn, "engine: not pid's turn")
	}
	if err := g.requireNoPendingBattlecry(); err != nil {
		return nil, err
	}
	p := g.State.Player(pid)
	if handIndex < 0 || handIndex >= len(p.Hand) {
		return nil, gameerr.New(gameerr.CodeIndexOutOfRange, "engine: hand index out of range")
	}

	cardID := p.Hand[handIndex]
	card, ok := state.Lookup(g.State.Cards, g.State.Tokens, cardID)
	if !ok {
		return nil, gameerr.Newf(gameerr.CodeUnknownCard, "engine: unknown card %q", cardID)
	}

	cost := aura.EffectiveCost(g.State, pid, card)
	if p.Mana < cost {
		return nil, gameerr.New(gameerr.CodeNotEnoughMana, "engine: not enough mana")
	}

	switch card.Type {
	case state.CardMinion:
		if len(p.Board) >= state.MaxBoardSize {
			return nil, gameerr.New(gameerr.CodeBoardFull, "engine: board is full")
		}
	case state.CardSecret:
		if p.HasActiveSecret(cardID) {
			return nil, gameerr.New(gameerr.CodeDuplicateSecret, "engine: that secret is already active")
		}
	}

	spec, err := target.Parse(card.Targeting)
	if err != nil {
		return nil, gameerr.Wrap(err, "engine: bad catalog targeting spec")
	}
	// A supplied target must be legal even when the card doesn't strictly
	// require one to be playable at all (battlecry parking below is the
	// only path that tolerates a missing one).
	if !tgt.IsNone() {
		if err := target.Validate(g.State, spec, pid, tgt); err != nil {
			return nil, err
		}
	}

	p.Mana -= cost
	p.PopHand(handIndex)
	out := g.State.Emit(event.New(event.KindCardPlayed, "player", pid, "card", cardID))

	switch card.Type {
	case state.CardMinion:
		out = append(out, g.playMinion(pid, card, tgt, insertAt)...)
	case state.CardSpell:
		more, err := g.playSpell(pid, card, tgt)
		out = append(out, more...)
		if err != nil {
			return out, err
		}
	case state.CardWeapon:
		out = append(out, g.playWeapon(pid, card, tgt)...)
	case state.CardSecret:
		out = append(out, g.playSecret(pid, card)...)
	}

	out = append(out, combat.ProcessDeaths(g.State)...)
	return out, nil
}

func (g *Game) playMinion(pid state.PlayerID, card *state.Card, tgt state.Target, insertAt *int) []event.Event {
	p := g.State.Player(pid)
	m := state.NewMinionFromCard(g.State, card, pid)
	idx, _ := p.InsertOnBoard(m, insertAt)

	out := g.State.Emit(event.New(event.KindMinionSummoned, "minion", m.ID, "player", pid, "index", idx, "card", card.ID))
	aura.RecomputeSide(g.State, pid)

	out = append(out, trigger.Live{}.Fire(g.State, pid, trigger.FriendlySummon, state.Context{"minion": m.ID}, m.ID)...)
	out = append(out, trigger.Live{}.FireSecret(g.State, pid.Other(), trigger.EnemyMinionPlayed, state.Context{"minion": m.ID, "card": card.ID})...)

	if card.Battlecry == nil {
		return out
	}

	spec, _ := target.Parse(card.Targeting)
	if spec.RequiresTarget() && tgt.IsNone() {
		g.State.PendingBattlecry = &state.PendingBattlecry{MinionID: m.ID, Owner: pid, Targeting: card.Targeting, Runner: card.Battlecry}
		out = append(out, g.State.Emit(event.New(event.KindBattlecryPending, "minion", m.ID, "player", pid))...)
		return out
	}

	restore := g.State.SetBattlecrySelf(m.ID, pid)
	src := state.Source{Owner: pid, DisplayName: m.Name, SelfID: m.ID, HasSelfID: true}
	out = append(out, card.Battlecry(g.State, src, tgt, nil)...)
	restore()
	return out
}

// playSpell implements the Spell branch. A non-nil error alongside a
// non-nil event slice never happens here (counterspell fizzle is a
// successful command), but the signature stays (events, error) to match
// the other branches' shape.
func (g *Game) playSpell(pid state.PlayerID, card *state.Card, tgt state.Target) ([]event.Event, error) {
	var out []event.Event
	out = append(out, trigger.Live{}.Fire(g.State, pid, trigger.FriendlySpellCast, state.Context{"card": card.ID}, 0)...)
	out = append(out, trigger.Live{}.FireSecret(g.State, pid.Other(), trigger.EnemySpellCast, state.Context{"card": card.ID, "name": card.Name})...)

	if g.State.SpellCountered {
		g.State.SpellCountered = false
		out = append(out, g.State.Emit(event.New(event.KindSpellCountered, "player", pid, "card", card.ID))...)
		g.State.Player(pid).Graveyard = append(g.State.Player(pid).Graveyard, card.ID)
		return out, nil
	}

	out = append(out, g.State.Emit(event.New(event.KindSpellHit, "player", pid, "card", card.ID, "target", tgt))...)
	if card.OnCast != nil {
		src := state.Source{Owner: pid, DisplayName: card.Name, CardType: card.Type, IsSpellLike: true}
		out = append(out, card.OnCast(g.State, src, tgt, nil)...)
	}
	g.State.Player(pid).Graveyard = append(g.State.Player(pid).Graveyard, card.ID)
	return out, nil
}

func (g *Game) playWeapon(pid state.PlayerID, card *state.Card, tgt state.Target) []event.Event {
	p := g.State.Player(pid)
	var out []event.Event
	if p.Weapon != nil {
		out = append(out, g.State.Emit(event.New(event.KindWeaponBroken, "player", pid))...)
	}
	p.Weapon = &state.Weapon{
		CardID:        card.ID,
		Name:          card.Name,
		Attack:        card.Attack,
		Durability:    card.Health,
		MaxDurability: card.Health,
		Triggers:      card.Triggers,
	}
	out = append(out, g.State.Emit(event.New(event.KindWeaponEquipped, "player", pid, "card", card.ID))...)

	runner := card.Battlecry
	if runner == nil {
		runner = card.OnCast
	}
	if runner != nil {
		src := state.Source{Owner: pid, DisplayName: card.Name, CardType: card.Type}
		out = append(out, runner(g.State, src, tgt, nil)...)
	}
	return out
}

func (g *Game) playSecret(pid state.PlayerID, card *state.Card) []event.Event {
	var out []event.Event
	out = append(out, trigger.Live{}.Fire(g.State, pid, trigger.FriendlySpellCast, state.Context{"card": card.ID}, 0)...)
	out = append(out, trigger.Live{}.FireSecret(g.State, pid.Other(), trigger.EnemySpellCast, state.Context{"card": card.ID, "name": card.Name})...)

	if g.State.SpellCountered {
		g.State.SpellCountered = false
		out = append(out, g.State.Emit(event.New(event.KindSpellCountered, "player", pid, "card", card.ID))...)
		g.State.Player(pid).Graveyard = append(g.State.Player(pid).Graveyard, card.ID)
		return out
	}

	p := g.State.Player(pid)
	p.ActiveSecrets = append(p.ActiveSecrets, state.ActiveSecret{
		CardID:  card.ID,
		Name:    card.Name,
		Trigger: card.Secret.Trigger,
		Runner:  card.Secret.Runner,
	})
	out = append(out, g.State.Emit(event.New(event.KindSecretPlayed, "player", pid))...)
	return out
}

// Attack resolves a minion attacking another minion or a hero.
func (g *Game) Attack(pid state.PlayerID, attackerID state.MinionID, tgt state.Target) ([]event.Event, error) {
	if pid != g.State.ActivePlayer {
		return nil, gameerr.New(gameerr.CodeNotYourTurn, "engine: not pid's turn")
	}
	if err := g.requireNoPendingBattlecry(); err != nil {
		return nil, err
	}
	attacker, owner, _, ok := g.State.FindMinion(attackerID)
	if !ok || owner != pid {
		return nil, gameerr.New(gameerr.CodeNotYourMinion, "engine: not pid's minion")
	}
	if !attacker.CanAttack() {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: this minion cannot attack")
	}

	defenderPID, defender, isFace, err := g.resolveAttackTarget(pid, tgt)
	if err != nil {
		return nil, err
	}
	if isFace && attacker.SummonedTurn && !attacker.Charge {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: summoning sickness (no Charge)")
	}
	if !isFace && attacker.SummonedTurn && !attacker.Charge && !attacker.Rush {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: summoning sickness (no Charge or Rush)")
	}
	if err := g.enforceTaunt(defenderPID, defender, isFace); err != nil {
		return nil, err
	}

	var out []event.Event
	if isFace {
		out = combat.ResolveFaceAttack(g.State, pid, attacker, defenderPID, trigger.Live{})
	} else {
		out = combat.ResolveMinionCombat(g.State, pid, attacker, defenderPID, defender, trigger.Live{})
	}
	out = append(out, combat.ProcessDeaths(g.State)...)
	return out, nil
}

// HeroAttack resolves the hero swinging its equipped weapon.
func (g *Game) HeroAttack(pid state.PlayerID, tgt state.Target) ([]event.Event, error) {
	if pid != g.State.ActivePlayer {
		return nil, gameerr.New(gameerr.CodeNotYourTurn, "engine: not pid's turn")
	}
	if err := g.requireNoPendingBattlecry(); err != nil {
		return nil, err
	}
	p := g.State.Player(pid)
	if p.Weapon == nil || p.Weapon.Attack <= 0 {
		return nil, gameerr.New(gameerr.CodeNoWeapon, "engine: no usable weapon")
	}
	if p.HeroFrozen {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: hero is frozen")
	}
	if p.HeroHasAttackedTurn {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: hero has already attacked this turn")
	}

	defenderPID, defender, isFace, err := g.resolveAttackTarget(pid, tgt)
	if err != nil {
		return nil, err
	}
	if err := g.enforceTaunt(defenderPID, defender, isFace); err != nil {
		return nil, err
	}

	out := combat.ResolveHeroAttack(g.State, pid, tgt, trigger.Live{})
	out = append(out, combat.ProcessDeaths(g.State)...)
	return out, nil
}

// UseHeroPower pays for and runs the hero power, once per turn.
func (g *Game) UseHeroPower(pid state.PlayerID, tgt state.Target) ([]event.Event, error) {
	if pid != g.State.ActivePlayer {
		return nil, gameerr.New(gameerr.CodeNotYourTurn, "engine: not pid's turn")
	}
	if err := g.requireNoPendingBattlecry(); err != nil {
		return nil, err
	}
	p := g.State.Player(pid)
	if p.HeroPowerUsedThisTurn {
		return nil, gameerr.New(gameerr.CodeCannotAttack, "engine: hero power already used this turn")
	}
	if p.Mana < p.Hero.Power.Cost {
		return nil, gameerr.New(gameerr.CodeNotEnoughMana, "engine: not enough mana")
	}

	spec, err := target.Parse(p.Hero.Power.Targeting)
	if err != nil {
		return nil, gameerr.Wrap(err, "engine: bad catalog targeting spec")
	}
	if err := target.Validate(g.State, spec, pid, tgt); err != nil {
		return nil, err
	}

	p.Mana -= p.Hero.Power.Cost
	p.HeroPowerUsedThisTurn = true
	out := g.State.Emit(event.New(event.KindHeroPowerUsed, "player", pid))

	src := state.Source{Owner: pid, DisplayName: p.Hero.Power.Name, IsSpellLike: p.Hero.Power.CountsAsSpell}
	out = append(out, p.Hero.Power.Runner(g.State, src, tgt, nil)...)
	out = append(out, combat.ProcessDeaths(g.State)...)
	return out, nil
}

// ResolvePendingBattlecry supplies the target a parked battlecry is
// waiting for, validates it, and runs the stored runner.
func (g *Game) ResolvePendingBattlecry(pid state.PlayerID, tgt state.Target) ([]event.Event, error) {
	pb := g.State.PendingBattlecry
	if pb == nil {
		return nil, gameerr.New(gameerr.CodeNoPendingBattlecry, "engine: no battlecry is pending")
	}
	if pb.Owner != pid {
		return nil, gameerr.New(gameerr.CodeNotYourBattlecry, "engine: not pid's pending battlecry")
	}

	spec, err := target.Parse(pb.Targeting)
	if err != nil {
		return nil, gameerr.Wrap(err, "engine: bad catalog targeting spec")
	}
	if err := target.Validate(g.State, spec, pid, tgt); err != nil {
		return nil, err
	}

	restore := g.State.SetBattlecrySelf(pb.MinionID, pid)
	m, _, _, _ := g.State.FindMinion(pb.MinionID)
	src := state.Source{Owner: pid, SelfID: pb.MinionID, HasSelfID: true}
	if m != nil {
		src.DisplayName = m.Name
	}
	out := pb.Runner(g.State, src, tgt, nil)
	restore()

	g.State.PendingBattlecry = nil
	out = append(out, combat.ProcessDeaths(g.State)...)
	return out, nil
}

// resolveAttackTarget resolves a raw Target into the defending side, and
// (for a minion target) the defending minion, rejecting a friendly
// target.
func (g *Game) resolveAttackTarget(pid state.PlayerID, tgt state.Target) (state.PlayerID, *state.Minion, bool, error) {
	switch tgt.Kind {
	case state.TargetPlayer:
		if tgt.Player == pid {
			return 0, nil, false, gameerr.New(gameerr.CodeWrongSide, "engine: must attack an enemy")
		}
		return tgt.Player, nil, true, nil
	case state.TargetMinion:
		m, owner, _, ok := g.State.FindMinion(tgt.Minion)
		if !ok {
			return 0, nil, false, gameerr.New(gameerr.CodeMissingTarget, "engine: no such minion")
		}
		if owner == pid {
			return 0, nil, false, gameerr.New(gameerr.CodeWrongSide, "engine: must attack an enemy")
		}
		return owner, m, false, nil
	}
	return 0, nil, false, gameerr.New(gameerr.CodeMissingTarget, "engine: attack requires a target")
}

// enforceTaunt rejects an attack target that isn't a living enemy Taunt
// minion when one exists on the defending side.
func (g *Game) enforceTaunt(defenderPID state.PlayerID, defender *state.Minion, isFace bool) error {
	taunts := livingTaunts(g.State.Player(defenderPID))
	if len(taunts) == 0 {
		return nil
	}
	if !isFace {
		for _, t := range taunts {
			if t.ID == defender.ID {
				return nil
			}
		}
	}
	return gameerr.New(gameerr.CodeMustAttackTaunt, "engine: must attack an enemy Taunt minion first")
}

// requireNoPendingBattlecry rejects any command issued while a battlecry
// is parked awaiting its target.
func (g *Game) requireNoPendingBattlecry() error {
	if g.State.PendingBattlecry != nil {
		return gameerr.New(gameerr.CodeBattlecryPending, "engine: resolve the pending battlecry first")
	}
	return nil
}

func livingTaunts(p *state.Player) []*state.Minion {
	var out []*state.Minion
	for _, m := range p.Board {
		if m.IsAlive() && m.HasKeyword(state.KeywordTaunt) {
			out = append(out, m)
		}
	}
	return out
}

