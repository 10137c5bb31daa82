package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjorn-karlsson/hearthstone-sub000/catalog"
	"github.com/bjorn-karlsson/hearthstone-sub000/engine"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

// scenarioCatalogJSON backs the end-to-end playthrough scenarios below:
// Slam into Execute, Divine Shield absorption, a Counterspell fizzle,
// Dire Wolf Alpha's adjacency aura, a Faceless-style live copy, and
// Brawl.
const scenarioCatalogJSON = `{
  "cards": [
    {
      "id": "SLAM", "name": "Slam", "type": "SPELL", "cost": 2, "targeting": "any_minion",
      "on_cast": [
        {"effect": "deal_damage", "amount": 2},
        {"effect": "if_target_survived_then", "then": [{"effect": "draw"}]}
      ]
    },
    {
      "id": "EXECUTE", "name": "Execute", "type": "SPELL", "cost": 1, "targeting": "enemy_minion",
      "on_cast": [{"effect": "execute"}]
    },
    {
      "id": "FIREBALL", "name": "Fireball", "type": "SPELL", "cost": 4, "targeting": "any_character",
      "on_cast": [{"effect": "deal_damage", "amount": 6}]
    },
    {
      "id": "POLYMORPH", "name": "Polymorph", "type": "SPELL", "cost": 4, "targeting": "enemy_minion",
      "on_cast": [{"effect": "transform", "card_id": "SHEEP_TOKEN"}]
    },
    {"id": "SHEEP_TOKEN", "name": "Sheep", "type": "MINION", "cost": 1, "attack": 1, "health": 1, "targeting": "none"},
    {
      "id": "COUNTERSPELL", "name": "Counterspell", "type": "SECRET", "cost": 3, "targeting": "none",
      "secret": {"trigger": "enemy_spell_cast", "effects": [{"effect": "counterspell"}]}
    },
    {
      "id": "BIG_MINION", "name": "Big Minion", "type": "MINION", "cost": 5, "attack": 4, "health": 5,
      "keywords": ["Divine Shield"], "targeting": "none"
    },
    {
      "id": "DIRE_WOLF_ALPHA", "name": "Dire Wolf Alpha", "type": "MINION", "cost": 2, "attack": 2, "health": 2,
      "targeting": "none", "aura": {"scope": "adjacent_friendly_minions", "attack": 1}
    },
    {"id": "CHILLWIND_YETI", "name": "Chillwind Yeti", "type": "MINION", "cost": 4, "attack": 2, "health": 2, "targeting": "none"},
    {
      "id": "FACELESS_MANIPULATOR", "name": "Faceless Manipulator", "type": "MINION", "cost": 5, "attack": 3, "health": 3,
      "targeting": "enemy_minion",
      "battlecry": [{"effect": "copy_self_as_target_minion"}]
    },
    {"id": "FILLER", "name": "Filler", "type": "MINION", "cost": 1, "attack": 1, "health": 1, "targeting": "none"},
    {"id": "BRAWL", "name": "Brawl", "type": "SPELL", "cost": 5, "targeting": "none", "on_cast": [{"effect": "brawl"}]},
    {
      "id": "ASSASSINATE", "name": "Assassinate", "type": "SPELL", "cost": 5, "targeting": "enemy_minion",
      "on_cast": [{"effect": "destroy"}]
    }
  ],
  "heroes": [
    {"id": "HERO_A", "name": "Hero A", "power": {"name": "Zap", "cost": 2, "targeting": "any_character", "effects": [{"effect": "deal_damage", "amount": 1}]}},
    {"id": "HERO_B", "name": "Hero B", "power": {"name": "Zap", "cost": 2, "targeting": "any_character", "effects": [{"effect": "deal_damage", "amount": 1}]}}
  ]
}`

func newScenarioEngine(t *testing.T) *engine.Game {
	t.Helper()
	cat, err := catalog.LoadJSON([]byte(scenarioCatalogJSON))
	require.NoError(t, err)
	g, err := engine.New(cat, 42, [2][]string{nil, nil}, [2]string{"HERO_A", "HERO_B"})
	require.NoError(t, err)
	g.State.ActivePlayer = 0
	g.State.Player(0).Mana, g.State.Player(0).MaxMana = 10, 10
	g.State.Player(1).Mana, g.State.Player(1).MaxMana = 10, 10
	return g
}

func TestScenarioSlamIntoExecute(t *testing.T) {
	g := newScenarioEngine(t)
	target := &state.Minion{ID: 1, Owner: 1, Attack: 4, Health: 5, MaxHealth: 5}
	g.State.Player(1).Board = []*state.Minion{target}
	g.State.Player(0).Deck = []string{"FILLER"}
	g.State.Player(0).Hand = []string{"SLAM"}

	evs, err := g.PlayCard(0, 0, state.MinionTarget(1), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, target.Health, "4/5 takes 2, survives at 4/3")
	assert.Contains(t, kinds(evs), event.KindCardDrawn, "Slam draws because the target survived")

	g.State.Player(0).Hand = append(g.State.Player(0).Hand, "EXECUTE")
	idx := len(g.State.Player(0).Hand) - 1
	evs, err = g.PlayCard(0, idx, state.MinionTarget(1), nil)
	require.NoError(t, err)
	assert.Contains(t, kinds(evs), event.KindMinionDied)
	assert.Empty(t, g.State.Player(1).Board)
}

func TestScenarioDivineShieldAbsorbsFireballWithoutDeath(t *testing.T) {
	g := newScenarioEngine(t)
	shielded := &state.Minion{ID: 1, Owner: 1, Attack: 4, Health: 5, MaxHealth: 5, DivineShield: true}
	g.State.Player(1).Board = []*state.Minion{shielded}
	g.State.Player(0).Hand = []string{"FIREBALL"}

	evs, err := g.PlayCard(0, 0, state.MinionTarget(1), nil)
	require.NoError(t, err)

	assert.Equal(t, 5, shielded.Health, "Divine Shield absorbs the hit with no HP loss")
	assert.False(t, shielded.DivineShield)
	assert.Contains(t, kinds(evs), event.KindDivineShieldPopped)
	assert.NotContains(t, kinds(evs), event.KindMinionDamaged)
	assert.NotContains(t, kinds(evs), event.KindMinionDied)
}

func TestScenarioCounterspellFizzlesPolymorph(t *testing.T) {
	g := newScenarioEngine(t)
	big := &state.Minion{ID: 1, Owner: 1, CardID: "BIG_MINION", Attack: 4, Health: 5, MaxHealth: 5}
	g.State.Player(1).Board = []*state.Minion{big}
	g.State.Player(1).ActiveSecrets = []state.ActiveSecret{
		{CardID: "COUNTERSPELL", Name: "Counterspell", Trigger: "enemy_spell_cast",
			Runner: func(gs *state.GameState, src state.Source, tgt state.Target, ctx state.Context) []event.Event {
				gs.SpellCountered = true
				return nil
			}},
	}
	g.State.Player(0).Hand = []string{"POLYMORPH"}

	evs, err := g.PlayCard(0, 0, state.MinionTarget(1), nil)
	require.NoError(t, err)

	assert.Contains(t, kinds(evs), event.KindSecretRevealed)
	assert.Contains(t, kinds(evs), event.KindSpellCountered)
	assert.Equal(t, "BIG_MINION", big.CardID, "the target must be unchanged by a countered Polymorph")
	assert.Equal(t, 4, big.Attack)
}

func TestScenarioDireWolfAlphaAdjacencyRevokesOnDeath(t *testing.T) {
	g := newScenarioEngine(t)
	g.State.Player(0).Hand = []string{"FILLER", "DIRE_WOLF_ALPHA", "FILLER"}

	_, err := g.PlayCard(0, 0, state.NoTarget, nil) // A, minion id 1
	require.NoError(t, err)
	_, err = g.PlayCard(0, 0, state.NoTarget, nil) // Wolf, minion id 2, inserted after A
	require.NoError(t, err)
	_, err = g.PlayCard(0, 0, state.NoTarget, nil) // B, minion id 3
	require.NoError(t, err)

	board := g.State.Player(0).Board
	require.Len(t, board, 3)
	a, wolf, b := board[0], board[1], board[2]
	assert.Equal(t, wolf.CardID, "DIRE_WOLF_ALPHA")
	assert.Equal(t, 2, a.Attack, "A: base 1 + wolf's adjacent +1")
	assert.Equal(t, 2, b.Attack, "B: base 1 + wolf's adjacent +1")

	g.State.ActivePlayer = 1
	g.State.Player(1).Hand = []string{"ASSASSINATE"}
	_, err = g.PlayCard(1, 0, state.MinionTarget(wolf.ID), nil)
	require.NoError(t, err)

	board = g.State.Player(0).Board
	require.Len(t, board, 2, "the wolf itself left the board")
	assert.Equal(t, 1, a.Attack, "aura revoked once the wolf leaves the board")
	assert.Equal(t, 1, b.Attack)
}

func TestScenarioFacelessCopyPreservesLiveBuffs(t *testing.T) {
	g := newScenarioEngine(t)
	buffed := &state.Minion{ID: 101, Owner: 1, CardID: "CHILLWIND_YETI", Attack: 6, Health: 6, MaxHealth: 6, Taunt: true}
	g.State.Player(1).Board = []*state.Minion{buffed}
	g.State.Player(0).Hand = []string{"FACELESS_MANIPULATOR"}

	_, err := g.PlayCard(0, 0, state.MinionTarget(101), nil)
	require.NoError(t, err)

	require.Len(t, g.State.Player(0).Board, 1)
	copyM := g.State.Player(0).Board[0]
	assert.Equal(t, 6, copyM.Attack)
	assert.Equal(t, 6, copyM.MaxHealth)
	assert.True(t, copyM.Taunt)
}

func TestScenarioBrawlIsNoOpBelowTwoLivingMinions(t *testing.T) {
	g := newScenarioEngine(t)
	lone := &state.Minion{ID: 1, Owner: 0, Attack: 1, Health: 1, MaxHealth: 1}
	g.State.Player(0).Board = []*state.Minion{lone}
	g.State.Player(0).Hand = []string{"BRAWL"}

	evs, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)

	assert.NotContains(t, kinds(evs), event.KindBrawlSurvivor)
	assert.Len(t, g.State.Player(0).Board, 1)
}

func TestScenarioBrawlLeavesExactlyOneSurvivorAcrossBothBoards(t *testing.T) {
	g := newScenarioEngine(t)
	g.State.Player(0).Board = []*state.Minion{
		{ID: 1, Owner: 0, Attack: 1, Health: 1, MaxHealth: 1},
		{ID: 2, Owner: 0, Attack: 1, Health: 1, MaxHealth: 1},
	}
	g.State.Player(1).Board = []*state.Minion{
		{ID: 3, Owner: 1, Attack: 1, Health: 1, MaxHealth: 1},
	}
	g.State.Player(0).Hand = []string{"BRAWL"}

	evs, err := g.PlayCard(0, 0, state.NoTarget, nil)
	require.NoError(t, err)

	assert.Contains(t, kinds(evs), event.KindBrawlSurvivor)
	total := len(g.State.Player(0).Board) + len(g.State.Player(1).Board)
	assert.Equal(t, 1, total)
}
