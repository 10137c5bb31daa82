package state

import "github.com/bjorn-karlsson/hearthstone-sub000/event"

// TargetKind tags which variant of the Target sum type is populated.
// Every targetable thing in the engine is wrapped in a Target, never a
// bare id.
type TargetKind int

// Target variants.
const (
	TargetNone TargetKind = iota
	TargetMinion
	TargetPlayer
)

// Target is a tagged union: a minion, a player (face), or nothing.
type Target struct {
	Kind    TargetKind
	Minion  MinionID
	Player  PlayerID
}

// NoTarget is the zero-value None target.
var NoTarget = Target{Kind: TargetNone}

// MinionTarget wraps a minion id as a Target.
func MinionTarget(id MinionID) Target { return Target{Kind: TargetMinion, Minion: id} }

// PlayerTarget wraps a player id as a Target.
func PlayerTarget(pid PlayerID) Target { return Target{Kind: TargetPlayer, Player: pid} }

// IsNone reports whether this Target carries no target.
func (t Target) IsNone() bool { return t.Kind == TargetNone }

// Source is the lightweight handle a Runner receives describing who/what
// is producing the effect: an owner, a display name for event
// payloads, and, when the source is a minion on board, its id and
// whether it's a spell-like source (for the Spell Damage rule).
type Source struct {
	Owner        PlayerID
	DisplayName  string
	SelfID       MinionID
	HasSelfID    bool
	CardType     CardType
	IsSpellLike  bool // Spell, Secret, or a hero power flagged counts_as_spell
}

// Runner is the compiled, executable form of a declarative effect list.
// The Context map carries trigger payload data for the subset of runners
// invoked by the trigger subsystem; battlecry/on_cast/deathrattle runners
// simply ignore a nil Context.
type Runner func(g *GameState, src Source, tgt Target, ctx Context) []event.Event

// Context carries trigger-specific payload data.
type Context map[string]any
