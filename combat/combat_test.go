package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger/triggermock"
)

func newTestGame() *state.GameState {
	return state.New(state.CardMap{}, state.TokenMap{}, 7, [2][]string{nil, nil}, [2]*state.Hero{{}, {}})
}

func TestDamageMinionPopsDivineShieldWithoutHPLoss(t *testing.T) {
	g := newTestGame()
	m := &state.Minion{ID: 1, Owner: 0, Health: 4, MaxHealth: 4, DivineShield: true}
	g.Player(0).Board = []*state.Minion{m}

	evs := combat.DamageMinion(g, 0, m, 6, trigger.Live{})

	assert.Equal(t, 4, m.Health)
	assert.False(t, m.DivineShield)
	require.Len(t, evs, 1)
	assert.Equal(t, event.KindDivineShieldPopped, evs[0].Kind)
}

func TestDamageMinionQueuesDeathAtZeroHealth(t *testing.T) {
	g := newTestGame()
	m := &state.Minion{ID: 1, Owner: 0, Health: 3, MaxHealth: 3}
	g.Player(0).Board = []*state.Minion{m}

	combat.DamageMinion(g, 0, m, 5, trigger.Live{})

	assert.LessOrEqual(t, m.Health, 0)
	assert.Len(t, g.Player(0).Board, 1, "queued, not yet removed")
	evs := combat.ProcessDeaths(g)
	assert.Empty(t, g.Player(0).Board)
	assert.Contains(t, kinds(evs), event.KindMinionDied)
}

func TestDamageHeroArmorAbsorbsFirst(t *testing.T) {
	g := newTestGame()
	g.Player(0).Armor = 3
	g.Player(0).Health = 30

	combat.DamageHero(g, 0, 5)

	assert.Equal(t, 0, g.Player(0).Armor)
	assert.Equal(t, 28, g.Player(0).Health)
}

func TestDamageHeroEmitsPlayerDefeatedAtZero(t *testing.T) {
	g := newTestGame()
	g.Player(0).Health = 2

	evs := combat.DamageHero(g, 0, 5)
	assert.Contains(t, kinds(evs), event.KindPlayerDefeated)
}

func TestEnrageTogglesExactlyOnce(t *testing.T) {
	g := newTestGame()
	m := &state.Minion{ID: 1, Owner: 0, Attack: 3, Health: 2, MaxHealth: 2, Enrage: &state.EnrageSpec{Attack: 2}}
	g.Player(0).Board = []*state.Minion{m}

	combat.DamageMinion(g, 0, m, 1, trigger.Live{})
	assert.Equal(t, 5, m.Attack, "enrage should add once when damaged")

	combat.HealMinion(g, m, 1)
	assert.Equal(t, 3, m.Attack, "enrage should subtract once when fully healed")
}

func TestSimultaneousCombatBothSidesDamaged(t *testing.T) {
	g := newTestGame()
	attacker := &state.Minion{ID: 1, Owner: 0, Attack: 3, Health: 5, MaxHealth: 5}
	defender := &state.Minion{ID: 2, Owner: 1, Attack: 2, Health: 5, MaxHealth: 5}
	g.Player(0).Board = []*state.Minion{attacker}
	g.Player(1).Board = []*state.Minion{defender}

	combat.ResolveMinionCombat(g, 0, attacker, 1, defender, trigger.Live{})

	assert.Equal(t, 2, defender.Health)
	assert.Equal(t, 3, attacker.Health)
	assert.True(t, attacker.HasAttacked)
}

func TestSilenceRevertsToBaseAndClearsAuras(t *testing.T) {
	g := newTestGame()
	src := &state.Minion{
		ID: 1, Owner: 0, Attack: 2, Health: 2, MaxHealth: 2,
		Base:  state.BaseStats{Attack: 2, Health: 2, MaxHealth: 2},
		Aura:  &state.StatAuraSpec{Scope: "other_friendly_minions", Attack: 1, Health: 1},
	}
	other := &state.Minion{ID: 2, Owner: 0, Attack: 1, Health: 1, MaxHealth: 1, Base: state.BaseStats{Attack: 1, Health: 1, MaxHealth: 1}}
	g.Player(0).Board = []*state.Minion{src, other}

	aura.RecomputeSide(g, 0)
	require.Equal(t, 2, other.Attack)

	combat.Silence(g, 0, src)

	assert.True(t, src.Silenced)
	assert.Nil(t, src.Aura)
	assert.Equal(t, 1, other.Attack, "silencing the source must revoke its grant")
}

func TestDamageMinionNotifiesDamageTriggerPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	disp := triggermock.NewMockDispatcher(ctrl)

	g := newTestGame()
	m := &state.Minion{ID: 1, Owner: 0, Health: 5, MaxHealth: 5}
	g.Player(0).Board = []*state.Minion{m}

	disp.EXPECT().Fire(g, state.PlayerID(0), trigger.FriendlyMinionDamaged, gomock.Any(), state.MinionID(0)).Return(nil)
	disp.EXPECT().FireSelf(g, state.PlayerID(0), m, trigger.SelfDamaged, gomock.Any()).Return(nil)

	combat.DamageMinion(g, 0, m, 2, disp)
	assert.Equal(t, 3, m.Health)
}

func TestExpireTempRevertsStatsAndKeywordStacks(t *testing.T) {
	g := newTestGame()
	m := &state.Minion{
		ID: 1, Owner: 0, Attack: 3, Health: 3, MaxHealth: 3, Taunt: true,
		Base: state.BaseStats{Attack: 1, Health: 2, MaxHealth: 2},
	}
	g.Player(0).Board = []*state.Minion{m}
	m.ResetTempMaps()
	m.TempStats[1] = state.TempStatStack{Attack: 2, MaxHealth: 1}
	m.TempKeywords[1] = state.TempKeywordStack{state.KeywordTaunt: 1}

	evs := combat.ExpireTemp(g, 1)

	assert.Equal(t, 1, m.Attack)
	assert.Equal(t, 2, m.MaxHealth)
	assert.Equal(t, 2, m.Health)
	assert.False(t, m.Taunt, "no base grant and no remaining stacks")
	assert.Contains(t, kinds(evs), event.KindBuffExpired)
	assert.Empty(t, m.TempStats)
	assert.Empty(t, m.TempKeywords)
}

func TestExpireTempKeepsKeywordStackedByAnotherCaster(t *testing.T) {
	g := newTestGame()
	m := &state.Minion{ID: 1, Owner: 0, Attack: 1, Health: 1, MaxHealth: 1, Taunt: true}
	g.Player(0).Board = []*state.Minion{m}
	m.ResetTempMaps()
	m.TempKeywords[0] = state.TempKeywordStack{state.KeywordTaunt: 1}
	m.TempKeywords[1] = state.TempKeywordStack{state.KeywordTaunt: 1}

	combat.ExpireTemp(g, 1)

	assert.True(t, m.Taunt, "the other caster's stack still grants Taunt")
	combat.ExpireTemp(g, 0)
	assert.False(t, m.Taunt)
}

func kinds(evs []event.Event) []event.Kind {
	out := make([]event.Kind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}
