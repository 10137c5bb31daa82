package state

import "fmt"

// BaseStats is the preserved-at-summon snapshot Silence reverts a minion
// to.
type BaseStats struct {
	Attack    int
	Health    int
	MaxHealth int
	Keywords  []Keyword
	Tribe     Tribe
	Text      string
}

// Minion is a mutable instance on a board.
type Minion struct {
	ID    MinionID
	Owner PlayerID

	CardID string
	Name   string
	Text   string

	Attack    int
	MaxHealth int
	Health    int

	Tribe       Tribe
	SpellDamage int

	Taunt          bool
	DivineShield   bool
	Charge         bool
	Rush           bool
	Frozen         bool
	Silenced       bool
	CantAttack     bool
	Exhausted      bool
	SummonedTurn   bool
	HasAttacked    bool

	Deathrattle Runner
	Triggers    []TriggerSpec

	Aura     *StatAuraSpec
	Auras    []StatAuraSpec
	CostAura *CostAuraSpec
	Enrage   *EnrageSpec

	EnrageActive bool

	// AuraGrants caches, per entry in AuraSpecs(), which minion ids are
	// currently receiving that aura's buff, so revocation on death/
	// silence/leave can subtract exactly.
	AuraGrants []map[MinionID]bool

	// TempStats/TempKeywords are multisets keyed by the caster pid that
	// granted them, expiring at that caster's end of turn.
	TempStats    map[PlayerID]TempStatStack
	TempKeywords map[PlayerID]TempKeywordStack

	Base BaseStats
}

// EntityID implements Entity.
func (m *Minion) EntityID() string { return fmt.Sprintf("minion:%d", m.ID) }

// EntityKind implements Entity.
func (m *Minion) EntityKind() EntityKind { return EntityMinion }

// IsAlive reports whether the minion has positive health. A minion may
// be transiently <=0 before the death drainer runs; IsAlive reflects the
// instantaneous value.
func (m *Minion) IsAlive() bool { return m.Health > 0 }

// AuraSpecs normalizes the single Aura field and the Auras slice into one
// ordered list, so every consumer (aura package, Silence) iterates a
// single representation.
func (m *Minion) AuraSpecs() []StatAuraSpec {
	var out []StatAuraSpec
	if m.Aura != nil {
		out = append(out, *m.Aura)
	}
	out = append(out, m.Auras...)
	return out
}

// HasKeyword reports whether the minion currently has the given keyword,
// accounting for base keywords plus any remaining temporary stacks from
// any caster: the flag holds while the base grants it or any caster's
// stack count is still positive.
func (m *Minion) HasKeyword(k Keyword) bool {
	switch k {
	case KeywordTaunt:
		if m.Taunt {
			return true
		}
	case KeywordDivineShield:
		if m.DivineShield {
			return true
		}
	case KeywordCharge:
		if m.Charge {
			return true
		}
	case KeywordRush:
		if m.Rush {
			return true
		}
	case KeywordCantAttack:
		if m.CantAttack {
			return true
		}
	}
	for _, stacks := range m.TempKeywords {
		if stacks[k] > 0 {
			return true
		}
	}
	return false
}

// CanAttack reports whether the minion has an attack action available
// this turn, ignoring per-target rules (Taunt, Rush being barred from
// face). Exhaustion only bars a minion without Charge or Rush.
func (m *Minion) CanAttack() bool {
	if m.Frozen || m.CantAttack || m.HasAttacked || m.Attack <= 0 || !m.IsAlive() {
		return false
	}
	if m.Exhausted && !m.Charge && !m.Rush {
		return false
	}
	return true
}

// GrantKeywordFlag turns on the live boolean for k. Temporary keyword
// stacks use it when a caster's count goes positive; expiry goes through
// RecomputeKeywordFlag instead.
func (m *Minion) GrantKeywordFlag(k Keyword) {
	switch k {
	case KeywordTaunt:
		m.Taunt = true
	case KeywordCharge:
		m.Charge = true
	case KeywordRush:
		m.Rush = true
	case KeywordDivineShield:
		m.DivineShield = true
	case KeywordCantAttack:
		m.CantAttack = true
	}
}

// RecomputeKeywordFlag re-derives k's live boolean from the base
// keywords plus every caster's remaining temporary stacks. Divine Shield
// is only ever cleared here, never re-granted: a popped shield stays
// popped even when the base card carries one.
func (m *Minion) RecomputeKeywordFlag(k Keyword) {
	on := false
	for _, kw := range m.Base.Keywords {
		if kw == k {
			on = true
			break
		}
	}
	if !on {
		for _, stacks := range m.TempKeywords {
			if stacks[k] > 0 {
				on = true
				break
			}
		}
	}
	switch k {
	case KeywordTaunt:
		m.Taunt = on
	case KeywordCharge:
		m.Charge = on
	case KeywordRush:
		m.Rush = on
	case KeywordDivineShield:
		m.DivineShield = m.DivineShield && on
	case KeywordCantAttack:
		m.CantAttack = on
	}
}

// ResetTempMaps ensures the per-caster maps are non-nil.
func (m *Minion) ResetTempMaps() {
	if m.TempStats == nil {
		m.TempStats = map[PlayerID]TempStatStack{}
	}
	if m.TempKeywords == nil {
		m.TempKeywords = map[PlayerID]TempKeywordStack{}
	}
}

// NewMinionFromCard stamps a fresh on-board Minion instance from a Card
// template, assigning the next monotonic id and snapshotting the
// as-summoned Base stats Silence reverts to. Summoning sickness flags
// (Exhausted/SummonedTurn) start set; CanAttack derives the Charge/Rush
// exceptions from them.
func NewMinionFromCard(g *GameState, card *Card, owner PlayerID) *Minion {
	m := &Minion{
		ID:           g.AllocMinionID(),
		Owner:        owner,
		CardID:       card.ID,
		Name:         card.Name,
		Text:         card.Text,
		Attack:       card.Attack,
		MaxHealth:    card.Health,
		Health:       card.Health,
		Tribe:        card.Tribe,
		SpellDamage:  card.SpellDamage,
		Taunt:        card.HasKeyword(KeywordTaunt),
		DivineShield: card.HasKeyword(KeywordDivineShield),
		Charge:       card.HasKeyword(KeywordCharge),
		Rush:         card.HasKeyword(KeywordRush),
		CantAttack:   card.HasKeyword(KeywordCantAttack),
		Exhausted:    true,
		SummonedTurn: true,
		Deathrattle:  card.Deathrattle,
		Triggers:     append([]TriggerSpec(nil), card.Triggers...),
		Aura:         card.Aura,
		CostAura:     card.CostAura,
		Enrage:       card.Enrage,
	}
	m.Auras = append([]StatAuraSpec(nil), card.Auras...)
	m.Base = BaseStats{
		Attack:    card.Attack,
		Health:    card.Health,
		MaxHealth: card.Health,
		Keywords:  card.Keywords,
		Tribe:     card.Tribe,
		Text:      card.Text,
	}
	return m
}
