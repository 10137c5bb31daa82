package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjorn-karlsson/hearthstone-sub000/catalog"
	"github.com/bjorn-karlsson/hearthstone-sub000/engine"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

const testCatalogJSON = `{
  "cards": [
    {"id": "RIVER_CROC", "name": "River Crocolisk", "type": "MINION", "cost": 2, "attack": 2, "health": 3, "targeting": "none"},
    {"id": "CHARGER", "name": "Charger", "type": "MINION", "cost": 2, "attack": 3, "health": 3, "keywords": ["Charge"], "targeting": "none"},
    {"id": "TAUNT_WALL", "name": "Taunt Wall", "type": "MINION", "cost": 2, "attack": 0, "health": 5, "keywords": ["Taunt"], "targeting": "none"},
    {
      "id": "ABUSIVE_SERGEANT", "name": "Abusive Sergeant", "type": "MINION", "cost": 1, "attack": 2, "health": 1,
      "targeting": "any_minion",
      "battlecry": [{"effect": "add_attack", "amount": 2}]
    },
    {
      "id": "FIREBALL", "name": "Fireball", "type": "SPELL", "cost": 4, "targeting": "any_character",
      "on_cast": [{"effect": "deal_damage", "amount": 6}]
    },
    {
      "id": "COUNTERSPELL", "name": "Counterspell", "type": "SECRET", "cost": 3, "targeting": "none",
      "secret": {"trigger": "enemy_spell_cast", "effects": [{"effect": "counterspell"}]}
    },
    {
      "id": "FIERY_WAR_AXE", "name": "Fiery War Axe", "type": "WEAPON", "cost": 2, "attack": 3, "health": 2, "targeting": "none"
    }
  ],
  "heroes": [
    {"id": "HERO_A", "name": "Hero A", "power": {"name": "Zap", "cost": 2, "targeting": "any_character", "effects": [{"effect": "deal_damage", "amount": 1}]}},
    {"id": "HERO_B", "name": "Hero B", "power": {"name": "Zap", "cost": 2, "targeting": "any_character", "effects": [{"effect": "deal_damage", "amount": 1}]}}
  ]
}`

func newTestEngine(t *testing.T) *engine.Game {
	t.Helper()
	cat, err := catalog.LoadJSON([]byte(testCatalogJSON))
	require.NoError(t, err)
	g, err := engine.New(cat, 7, [2][]string{nil, nil}, [2]string{"HERO_A", "HERO_B"})
	require.NoError(t, err)
	g.State.ActivePlayer = 0
	g.State.Player(0).Mana, g.State.Player(0).MaxMana = 10, 10
	g.State.Player(1).Mana, g.State.Player(1).MaxMana = 10, 10
	return g
}

func kinds(evs []event.Event) []event.Kind {
	out := make([]event.Kind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestPlayCardMinionSummonsOntoBoardAndPaysCost(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(0).Hand = []string{"RIVER_CROC"}

	evs, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)

	assert.Len(t, g.State.Player(0).Board, 1)
	assert.Equal(t, 8, g.State.Player(0).Mana)
	assert.Contains(t, kinds(evs), event.KindMinionSummoned)
	assert.Empty(t, g.State.Player(0).Hand)
}

func TestPlayCardRejectsWhenNotActivePlayersTurn(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(1).Hand = []string{"RIVER_CROC"}

	_, err := g.PlayCard(1, 0, state.NoTarget, nil)
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeNotYourTurn, gameerr.GetCode(err))
}

func TestPlayCardRejectsInsufficientMana(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(0).Hand = []string{"FIREBALL"}
	g.State.Player(0).Mana = 1

	_, err := g.PlayCard(0, 0, state.PlayerTarget(1), nil)
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeNotEnoughMana, gameerr.GetCode(err))
}

func TestPlayCardParksBattlecryWhenTargetOmitted(t *testing.T) {
	g := newTestEngine(t)
	enemy := &state.Minion{ID: 1, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(1).Board = []*state.Minion{enemy}
	g.State.Player(0).Hand = []string{"ABUSIVE_SERGEANT"}

	evs, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)

	assert.Contains(t, kinds(evs), event.KindBattlecryPending)
	require.NotNil(t, g.State.PendingBattlecry)
	assert.Equal(t, 1, enemy.Attack, "battlecry should not have resolved yet")
}

func TestCommandsAreBlockedWhileBattlecryPending(t *testing.T) {
	g := newTestEngine(t)
	enemy := &state.Minion{ID: 1, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(1).Board = []*state.Minion{enemy}
	g.State.Player(0).Hand = []string{"ABUSIVE_SERGEANT", "RIVER_CROC"}

	_, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)
	require.NotNil(t, g.State.PendingBattlecry)

	_, err = g.PlayCard(0, 0, state.NoTarget, nil)
	assert.Equal(t, gameerr.CodeBattlecryPending, gameerr.GetCode(err))

	_, err = g.EndTurn(0)
	assert.Equal(t, gameerr.CodeBattlecryPending, gameerr.GetCode(err))

	_, err = g.ResolvePendingBattlecry(0, state.MinionTarget(1))
	require.NoError(t, err)
	_, err = g.EndTurn(0)
	assert.NoError(t, err)
}

func TestPlayCardResolvesBattlecryImmediatelyWhenTargetSupplied(t *testing.T) {
	g := newTestEngine(t)
	enemy := &state.Minion{ID: 101, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(1).Board = []*state.Minion{enemy}
	g.State.Player(0).Hand = []string{"ABUSIVE_SERGEANT"}

	_, err := g.PlayCard(0, 0, state.MinionTarget(101), nil)
	require.NoError(t, err)

	assert.Nil(t, g.State.PendingBattlecry)
	assert.Equal(t, 3, enemy.Attack)
}

func TestResolvePendingBattlecryAppliesEffectToChosenTarget(t *testing.T) {
	g := newTestEngine(t)
	enemy := &state.Minion{ID: 101, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(1).Board = []*state.Minion{enemy}
	g.State.Player(0).Hand = []string{"ABUSIVE_SERGEANT"}

	_, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)
	require.NotNil(t, g.State.PendingBattlecry)

	evs, err := g.ResolvePendingBattlecry(0, state.MinionTarget(101))
	require.NoError(t, err)

	assert.Equal(t, 3, enemy.Attack)
	assert.Nil(t, g.State.PendingBattlecry)
	assert.NotEmpty(t, evs)
}

func TestPlayCardSpellFizzlesAgainstArmedCounterspell(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(1).ActiveSecrets = []state.ActiveSecret{
		{CardID: "COUNTERSPELL", Name: "Counterspell", Trigger: "enemy_spell_cast",
			Runner: func(gs *state.GameState, src state.Source, tgt state.Target, ctx state.Context) []event.Event {
				gs.SpellCountered = true
				return nil
			}},
	}
	g.State.Player(0).Hand = []string{"FIREBALL"}
	g.State.Player(1).Health = 30

	evs, err := g.PlayCard(0, 0, state.PlayerTarget(1), nil)
	require.NoError(t, err)

	assert.Contains(t, kinds(evs), event.KindSpellCountered)
	assert.NotContains(t, kinds(evs), event.KindSpellHit)
	assert.Equal(t, 30, g.State.Player(1).Health, "fizzled spell must not deal damage")
	assert.Empty(t, g.State.Player(1).ActiveSecrets, "the secret is consumed")
}

func TestAttackRejectsFaceWithoutChargeOnSummonTurn(t *testing.T) {
	g := newTestEngine(t)
	m := &state.Minion{ID: 1, Owner: 0, Attack: 2, Health: 2, MaxHealth: 2, SummonedTurn: true}
	g.State.Player(0).Board = []*state.Minion{m}

	_, err := g.Attack(0, 1, state.PlayerTarget(1))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeCannotAttack, gameerr.GetCode(err))
}

func TestAttackAllowsFaceWithChargeOnSummonTurn(t *testing.T) {
	g := newTestEngine(t)
	m := &state.Minion{ID: 1, Owner: 0, Attack: 2, Health: 2, MaxHealth: 2, SummonedTurn: true, Charge: true}
	g.State.Player(0).Board = []*state.Minion{m}
	g.State.Player(1).Health = 30

	evs, err := g.Attack(0, 1, state.PlayerTarget(1))
	require.NoError(t, err)

	assert.Equal(t, 28, g.State.Player(1).Health)
	assert.True(t, m.HasAttacked)
	assert.Contains(t, kinds(evs), event.KindAttack)
}

func TestAttackEnforcesTauntConstraint(t *testing.T) {
	g := newTestEngine(t)
	attacker := &state.Minion{ID: 1, Owner: 0, Attack: 2, Health: 2, MaxHealth: 2}
	taunt := &state.Minion{ID: 2, Owner: 1, Attack: 1, Health: 5, MaxHealth: 5, Taunt: true}
	other := &state.Minion{ID: 3, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(0).Board = []*state.Minion{attacker}
	g.State.Player(1).Board = []*state.Minion{taunt, other}

	_, err := g.Attack(0, 1, state.MinionTarget(3))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeMustAttackTaunt, gameerr.GetCode(err))

	evs, err := g.Attack(0, 1, state.MinionTarget(2))
	require.NoError(t, err)
	assert.NotEmpty(t, evs)
}

func TestAttackResolvesSimultaneousMinionCombat(t *testing.T) {
	g := newTestEngine(t)
	attacker := &state.Minion{ID: 1, Owner: 0, Attack: 3, Health: 5, MaxHealth: 5}
	defender := &state.Minion{ID: 2, Owner: 1, Attack: 2, Health: 5, MaxHealth: 5}
	g.State.Player(0).Board = []*state.Minion{attacker}
	g.State.Player(1).Board = []*state.Minion{defender}

	_, err := g.Attack(0, 1, state.MinionTarget(2))
	require.NoError(t, err)

	assert.Equal(t, 2, defender.Health)
	assert.Equal(t, 3, attacker.Health)
}

func TestHeroAttackRequiresAnEquippedWeapon(t *testing.T) {
	g := newTestEngine(t)
	_, err := g.HeroAttack(0, state.PlayerTarget(1))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeNoWeapon, gameerr.GetCode(err))
}

func TestHeroAttackSwingsEquippedWeaponAndSpendsDurability(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(0).Weapon = &state.Weapon{CardID: "FIERY_WAR_AXE", Attack: 3, Durability: 2, MaxDurability: 2}
	g.State.Player(1).Health = 30

	evs, err := g.HeroAttack(0, state.PlayerTarget(1))
	require.NoError(t, err)

	assert.Equal(t, 27, g.State.Player(1).Health)
	assert.Equal(t, 1, g.State.Player(0).Weapon.Durability)
	assert.True(t, g.State.Player(0).HeroHasAttackedTurn)
	assert.Contains(t, kinds(evs), event.KindHeroAttack)
}

func TestHeroAttackRejectsSecondSwingSameTurn(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(0).Weapon = &state.Weapon{CardID: "FIERY_WAR_AXE", Attack: 3, Durability: 2, MaxDurability: 2}
	g.State.Player(1).Health = 30

	_, err := g.HeroAttack(0, state.PlayerTarget(1))
	require.NoError(t, err)

	_, err = g.HeroAttack(0, state.PlayerTarget(1))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeCannotAttack, gameerr.GetCode(err))
}

func TestUseHeroPowerRejectsSecondUseSameTurn(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(1).Health = 30

	_, err := g.UseHeroPower(0, state.PlayerTarget(1))
	require.NoError(t, err)
	assert.Equal(t, 29, g.State.Player(1).Health)

	_, err = g.UseHeroPower(0, state.PlayerTarget(1))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeCannotAttack, gameerr.GetCode(err))
}

func TestUseHeroPowerRejectsInsufficientMana(t *testing.T) {
	g := newTestEngine(t)
	g.State.Player(0).Mana = 1

	_, err := g.UseHeroPower(0, state.PlayerTarget(1))
	require.Error(t, err)
	assert.Equal(t, gameerr.CodeNotEnoughMana, gameerr.GetCode(err))
}

func TestLegalAttackTargetsRespectsTauntAndSummoningSickness(t *testing.T) {
	g := newTestEngine(t)
	attacker := &state.Minion{ID: 1, Owner: 0, Attack: 2, Health: 2, MaxHealth: 2, SummonedTurn: true}
	g.State.Player(0).Board = []*state.Minion{attacker}
	taunt := &state.Minion{ID: 2, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1, Taunt: true}
	g.State.Player(1).Board = []*state.Minion{taunt}

	assert.Empty(t, g.LegalAttackTargets(1), "no Charge/Rush means this minion cannot attack at all yet")

	attacker.Rush = true
	targets := g.LegalAttackTargets(1)
	require.Len(t, targets, 1)
	assert.Equal(t, state.MinionTarget(2), targets[0])
}
