// Package catalog implements the card catalog and its data contract:
// decoding a declarative JSON or YAML catalog document into a compiled
// state.CardMap/state.TokenMap, with every effect list compiled through
// effect.Compile into executable state.Runner closures. A malformed
// document is rejected here, at load time, so play never sees one.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjorn-karlsson/hearthstone-sub000/effect"
	"github.com/bjorn-karlsson/hearthstone-sub000/gameerr"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
	"github.com/bjorn-karlsson/hearthstone-sub000/target"
)

// doc is the top-level shape of a catalog document: a list
// of cards, a map of tokens, and a list of heroes. Entries are decoded as
// loosely-typed maps rather than a rigid struct so the declarative
// effect/param shape (arbitrary keys per effect name) doesn't need a
// custom per-effect Go type.
type doc struct {
	Cards  []map[string]any          `json:"cards" yaml:"cards"`
	Tokens map[string]map[string]any `json:"tokens" yaml:"tokens"`
	Heroes []map[string]any          `json:"heroes" yaml:"heroes"`
}

// Catalog is the compiled result of loading a catalog document.
type Catalog struct {
	Cards  state.CardMap
	Tokens state.TokenMap
	Heroes map[string]*state.Hero
}

// LoadJSON decodes and compiles a JSON catalog document.
func LoadJSON(data []byte) (*Catalog, error) {
	var d doc
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, gameerr.Wrap(err, "catalog: invalid JSON document")
	}
	return compile(d)
}

// LoadYAML decodes and compiles a YAML catalog document. JSON and YAML
// share the same loose document shape.
func LoadYAML(data []byte) (*Catalog, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, gameerr.Wrap(err, "catalog: invalid YAML document")
	}
	return compile(d)
}

func compile(d doc) (*Catalog, error) {
	cat := &Catalog{
		Cards:  state.CardMap{},
		Tokens: state.TokenMap{},
		Heroes: map[string]*state.Hero{},
	}

	for _, raw := range d.Cards {
		c, err := compileCard(raw)
		if err != nil {
			return nil, err
		}
		cat.Cards[c.ID] = c
	}
	for id, raw := range d.Tokens {
		raw["id"] = id
		c, err := compileCard(raw)
		if err != nil {
			return nil, err
		}
		cat.Tokens[c.ID] = c
	}
	for _, raw := range d.Heroes {
		h, err := compileHero(raw)
		if err != nil {
			return nil, err
		}
		cat.Heroes[h.ID] = h
	}
	return cat, nil
}

func compileCard(raw map[string]any) (*state.Card, error) {
	id := str(raw, "id")
	if id == "" {
		return nil, gameerr.New(gameerr.CodeInvalidCatalog, "catalog: card entry missing id")
	}

	c := &state.Card{
		ID:          id,
		Name:        str(raw, "name"),
		Cost:        intOf(raw, "cost"),
		Type:        state.CardType(str(raw, "type")),
		Rarity:      state.Rarity(strings.ToUpper(str(raw, "rarity"))),
		Text:        str(raw, "text"),
		Attack:      intOf(raw, "attack"),
		Health:      intOf(raw, "health"),
		Tribe:       state.Tribe(str(raw, "minion_type")),
		SpellDamage: intOf(raw, "spell_damage"),
		Targeting:   str(raw, "targeting"),
		RawSpec:     raw,
		Intrinsic: state.IntrinsicCost{
			LessPerOtherCardInHand: intOf(raw, "cost_less_per_other_card_in_hand"),
			LessPerDamageTaken:     intOf(raw, "cost_less_per_damage_taken"),
		},
	}

	for _, kw := range strSlice(raw, "keywords") {
		c.Keywords = append(c.Keywords, state.Keyword(kw))
	}

	if c.Targeting != "" {
		if _, err := target.Parse(c.Targeting); err != nil {
			return nil, gameerr.Wrap(err, fmt.Sprintf("catalog: card %q has invalid targeting", id))
		}
	}

	if specs, err := effectList(raw, "battlecry"); err != nil {
		return nil, annotate(err, id, "battlecry")
	} else if specs != nil {
		c.Battlecry = effect.Compile(specs)
	}
	if specs, err := effectList(raw, "on_cast"); err != nil {
		return nil, annotate(err, id, "on_cast")
	} else if specs != nil {
		c.OnCast = effect.Compile(specs)
	}
	if specs, err := effectList(raw, "deathrattle"); err != nil {
		return nil, annotate(err, id, "deathrattle")
	} else if specs != nil {
		c.Deathrattle = effect.Compile(specs)
	}

	triggers, ok := raw["triggers"].([]any)
	if ok {
		for _, rawTrig := range triggers {
			tm, ok := rawTrig.(map[string]any)
			if !ok {
				return nil, gameerr.Newf(gameerr.CodeInvalidCatalog, "catalog: card %q has a malformed trigger entry", id)
			}
			specs, err := effectList(tm, "effects")
			if err != nil {
				return nil, annotate(err, id, "triggers")
			}
			c.Triggers = append(c.Triggers, state.TriggerSpec{
				On:     str(tm, "on"),
				Runner: effect.Compile(specs),
			})
		}
	}

	if auraRaw, ok := raw["aura"].(map[string]any); ok {
		spec := compileStatAura(auraRaw)
		c.Aura = &spec
	}
	if aurasRaw, ok := raw["auras"].([]any); ok {
		for _, a := range aurasRaw {
			if am, ok := a.(map[string]any); ok {
				c.Auras = append(c.Auras, compileStatAura(am))
			}
		}
	}
	if costAuraRaw, ok := raw["cost_aura"].(map[string]any); ok {
		spec := state.CostAuraSpec{
			Scope: str(costAuraRaw, "scope"),
			Delta: intOf(costAuraRaw, "delta"),
			Floor: intOf(costAuraRaw, "floor"),
		}
		c.CostAura = &spec
	}
	if enrageRaw, ok := raw["enrage"].(map[string]any); ok {
		spec := state.EnrageSpec{Attack: intOf(enrageRaw, "attack")}
		c.Enrage = &spec
	}

	if secretRaw, ok := raw["secret"].(map[string]any); ok {
		specs, err := effectList(secretRaw, "effects")
		if err != nil {
			return nil, annotate(err, id, "secret")
		}
		c.Secret = &state.SecretSpec{
			Trigger: str(secretRaw, "trigger"),
			Runner:  effect.Compile(specs),
		}
	}

	return c, nil
}

func compileStatAura(raw map[string]any) state.StatAuraSpec {
	return state.StatAuraSpec{
		Scope:  str(raw, "scope"),
		Tribe:  state.Tribe(str(raw, "tribe")),
		Attack: intOf(raw, "attack"),
		Health: intOf(raw, "health"),
	}
}

func compileHero(raw map[string]any) (*state.Hero, error) {
	id := str(raw, "id")
	if id == "" {
		return nil, gameerr.New(gameerr.CodeInvalidCatalog, "catalog: hero entry missing id")
	}
	powerRaw, _ := raw["power"].(map[string]any)
	specs, err := effectList(powerRaw, "effects")
	if err != nil {
		return nil, annotate(err, id, "power")
	}
	h := &state.Hero{
		ID:   id,
		Name: str(raw, "name"),
		Power: state.HeroPower{
			Name:          str(powerRaw, "name"),
			Text:          str(powerRaw, "text"),
			Cost:          intOf(powerRaw, "cost"),
			Targeting:     str(powerRaw, "targeting"),
			Runner:        effect.Compile(specs),
			CountsAsSpell: boolOf(powerRaw, "counts_as_spell"),
		},
	}
	return h, nil
}

// effectList decodes raw[key] (a []any of effect maps) into
// []effect.Spec via effect.DecodeSpecs, which also validates effect
// names and recurses into nested then/else arrays.
func effectList(raw map[string]any, key string) ([]effect.Spec, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw[key].([]any)
	if !ok {
		return nil, nil
	}
	return effect.DecodeSpecs(items)
}

func annotate(err error, cardID, hook string) error {
	return gameerr.Wrap(err, fmt.Sprintf("catalog: card %q: %s", cardID, hook))
}

func str(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func boolOf(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	b, _ := m[key].(bool)
	return b
}

func intOf(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func strSlice(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
