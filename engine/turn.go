package engine

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/aura"
	"github.com/bjorn-karlsson/hearthstone-sub000/combat"
	"github.com/bjorn-karlsson/hearthstone-sub000/effect"
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/trigger"
)

const maxMaxMana = 10

// StartGame seeds the opening: the RNG picks who goes first, both decks
// are shuffled, the first player draws 3, the other draws 4 and receives
// The Coin. It is an error to call StartGame more than once on the same
// Game.
func (g *Game) StartGame() ([]event.Event, error) {
	if g.State.Turn != 0 || g.State.History.Len() != 0 {
		return nil, gameerr.New(gameerr.CodeInternal, "engine: StartGame already called")
	}

	first, err := g.State.RNG.Intn(2)
	if err != nil {
		return nil, gameerr.Wrap(err, "engine: failed to pick first player")
	}
	second := state.PlayerID(1 - first)
	g.State.ActivePlayer = state.PlayerID(first)

	for pid := state.PlayerID(0); pid < 2; pid++ {
		deck := g.State.Player(pid).Deck
		g.State.RNG.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
	}

	out := g.State.Emit(event.New(event.KindGameStart, "first_player", first))

	for i := 0; i < 3; i++ {
		out = append(out, effect.DrawCard(g.State, state.PlayerID(first))...)
	}
	for i := 0; i < 4; i++ {
		out = append(out, effect.DrawCard(g.State, second)...)
	}
	p := g.State.Player(second)
	if len(p.Hand) < state.MaxHandSize {
		p.Hand = append(p.Hand, CoinCardID)
		out = append(out, g.State.Emit(event.New(event.KindCardCreated, "player", second, "card", CoinCardID))...)
	}

	out = append(out, g.startTurn(g.State.ActivePlayer)...)
	return out, nil
}

// startTurn handles the turn counter, mana
// refill, per-turn flag clearing, and the turn's opening draw.
func (g *Game) startTurn(pid state.PlayerID) []event.Event {
	if pid == 0 {
		g.State.Turn++
	}
	p := g.State.Player(pid)

	if p.MaxMana < maxMaxMana {
		p.MaxMana++
	}
	p.Mana = p.MaxMana
	p.HeroPowerUsedThisTurn = false
	p.HeroHasAttackedTurn = false

	for _, m := range p.Board {
		m.Exhausted = false
		m.HasAttacked = false
		m.SummonedTurn = false
	}

	out := g.State.Emit(event.New(event.KindTurnStart, "player", pid, "turn", g.State.Turn))
	out = append(out, effect.DrawCard(g.State, pid)...)
	return out
}

// EndTurn fires end_of_your_turn,
// expires pid's temp buffs/cost mods, thaws pid, and hands control to the
// other player via startTurn.
func (g *Game) EndTurn(pid state.PlayerID) ([]event.Event, error) {
	if pid != g.State.ActivePlayer {
		return nil, gameerr.New(gameerr.CodeNotYourTurn, "engine: not pid's turn")
	}
	if err := g.requireNoPendingBattlecry(); err != nil {
		return nil, err
	}

	var out []event.Event
	out = append(out, trigger.Live{}.Fire(g.State, pid, trigger.EndOfYourTurn, nil, 0)...)
	out = append(out, combat.ProcessDeaths(g.State)...)
	out = append(out, g.State.Emit(event.New(event.KindTurnEnd, "player", pid))...)

	out = append(out, combat.ExpireTemp(g.State, pid)...)
	out = append(out, combat.ProcessDeaths(g.State)...)
	for holder := state.PlayerID(0); holder < 2; holder++ {
		aura.ExpireTempCostMods(g.State, holder, pid)
	}

	out = append(out, combat.ThawSide(g.State, pid)...)

	next := pid.Other()
	g.State.ActivePlayer = next
	out = append(out, g.startTurn(next)...)
	return out, nil
}
