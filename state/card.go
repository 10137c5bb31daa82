package state

// IntrinsicCost captures the card-spec-level (not aura-level) cost
// modifiers: "cost_less_per_other_card_in_hand" and
// "cost_less_per_damage_taken".
type IntrinsicCost struct {
	LessPerOtherCardInHand int
	LessPerDamageTaken     int
}

// Card is the immutable template a Minion/Weapon/Spell/Secret instance
// is stamped from. Compiled hooks are Runner closures produced by the
// effect compiler; RawSpec keeps the original declarative map so tooling
// can introspect the template.
type Card struct {
	ID     string
	Name   string
	Cost   int
	Type   CardType
	Rarity Rarity
	Text   string

	Attack int
	Health int // also used as starting Durability for Weapon cards

	Keywords []Keyword
	Tribe    Tribe

	SpellDamage int

	Battlecry   Runner
	OnCast      Runner
	Deathrattle Runner

	Triggers []TriggerSpec

	Aura     *StatAuraSpec
	Auras    []StatAuraSpec
	CostAura *CostAuraSpec
	Enrage   *EnrageSpec

	Secret *SecretSpec

	Targeting string

	Intrinsic IntrinsicCost

	// RawSpec is the original decoded catalog entry, kept for tooling
	// that needs the declarative template rather than the compiled
	// Runner closures. No effect primitive reads it.
	RawSpec map[string]any
}

// HasKeyword reports whether the template card carries the given keyword.
func (c *Card) HasKeyword(k Keyword) bool {
	for _, kw := range c.Keywords {
		if kw == k {
			return true
		}
	}
	return false
}

// CardMap is the compiled catalog's lookup of card id to template.
type CardMap map[string]*Card

// TokenMap is the compiled catalog's lookup of token id to template,
// consulted by summon/transform/equip_weapon effects that reference ids
// not present in any deck.
type TokenMap map[string]*Card

// Lookup resolves id first against the TokenMap, falling back to the
// main CardMap, so token references and deck card ids share one namespace.
func Lookup(cards CardMap, tokens TokenMap, id string) (*Card, bool) {
	if c, ok := tokens[id]; ok {
		return c, true
	}
	c, ok := cards[id]
	return c, ok
}
