package state

import (
	"github.com/bjorn-karlsson/hearthstone-sub000/event"
	"github.com/bjorn-karlsson/hearthstone-sub000/rng"
)

// PendingBattlecry describes a minion parked awaiting a target after being
// played with a targeted battlecry and no target supplied.
type PendingBattlecry struct {
	MinionID  MinionID
	Owner     PlayerID
	Targeting string
	Runner    Runner
}

// GameState is the single mutable object every runner, trigger and aura
// recompute acts on.
type GameState struct {
	Cards  CardMap
	Tokens TokenMap

	Players [2]*Player

	ActivePlayer PlayerID
	Turn         int

	RNG rng.Roller

	NextMinionID MinionID

	History event.Log

	PendingBattlecry *PendingBattlecry

	// Transient, cleared after each command: identifies "self" for a
	// battlecry runner currently executing.
	CurrentBattlecryMinion MinionID
	CurrentBattlecryOwner  PlayerID
	inBattlecry            bool

	// SpellCountered is set by the counterspell effect and consulted
	// immediately after secret dispatch.
	SpellCountered bool

	// PendingDeaths holds minion ids whose health dropped to 0 or below
	// during the current command, queued rather than resolved in place so
	// simultaneous damage (mutual combat, AoE, Brawl) is applied fully
	// before any deathrattle runs.
	PendingDeaths []pendingDeath
}

type pendingDeath struct {
	Owner PlayerID
	ID    MinionID
}

// EnqueueDeath marks a minion as pending destruction. Duplicate
// enqueues for the same id are harmless; ProcessDeaths skips ids no
// longer on board.
func (g *GameState) EnqueueDeath(owner PlayerID, id MinionID) {
	g.PendingDeaths = append(g.PendingDeaths, pendingDeath{Owner: owner, ID: id})
}

// New creates a GameState for two decks and heroes, seeded for
// reproducibility.
func New(cards CardMap, tokens TokenMap, seed uint64, decks [2][]string, heroes [2]*Hero) *GameState {
	g := &GameState{
		Cards:        cards,
		Tokens:       tokens,
		RNG:          rng.New(seed),
		NextMinionID: 1,
	}
	g.Players[0] = NewPlayer(0, decks[0], heroes[0])
	g.Players[1] = NewPlayer(1, decks[1], heroes[1])
	return g
}

// Other returns the opposing player id.
func (g *GameState) Other(pid PlayerID) PlayerID { return pid.Other() }

// Player returns the Player for pid.
func (g *GameState) Player(pid PlayerID) *Player { return g.Players[pid] }

// Active returns the player whose turn it currently is.
func (g *GameState) Active() *Player { return g.Players[g.ActivePlayer] }

// AllocMinionID returns the next monotonically increasing minion id.
func (g *GameState) AllocMinionID() MinionID {
	id := g.NextMinionID
	g.NextMinionID++
	return id
}

// FindMinion locates a minion by id across both boards, addressed purely
// by id: sub-objects never hold back-references.
func (g *GameState) FindMinion(id MinionID) (*Minion, PlayerID, int, bool) {
	for pid := PlayerID(0); pid < 2; pid++ {
		if idx := g.Players[pid].FindBoardIndex(id); idx >= 0 {
			return g.Players[pid].Board[idx], pid, idx, true
		}
	}
	return nil, 0, -1, false
}

// Emit appends events to history and returns them, so a command can both
// record and return the same ordered slice.
func (g *GameState) Emit(events ...event.Event) []event.Event {
	return g.History.Append(events...)
}

// SetBattlecrySelf marks id/owner as "self" for the duration of a running
// battlecry/on_cast runner.
func (g *GameState) SetBattlecrySelf(id MinionID, owner PlayerID) func() {
	prevID, prevOwner, prevIn := g.CurrentBattlecryMinion, g.CurrentBattlecryOwner, g.inBattlecry
	g.CurrentBattlecryMinion = id
	g.CurrentBattlecryOwner = owner
	g.inBattlecry = true
	return func() {
		g.CurrentBattlecryMinion = prevID
		g.CurrentBattlecryOwner = prevOwner
		g.inBattlecry = prevIn
	}
}

// BattlecrySelf returns the minion id currently playing a battlecry/
// on_cast, if any.
func (g *GameState) BattlecrySelf() (MinionID, PlayerID, bool) {
	return g.CurrentBattlecryMinion, g.CurrentBattlecryOwner, g.inBattlecry
}
