package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjorn-karlsson/hearthstone-sub000/catalog"
	"github.com/bjorn-karlsson/hearthstone-sub000/state"
)

const sampleJSON = `{
  "cards": [
    {
      "id": "RIVER_CROC",
      "name": "River Crocolisk",
      "type": "MINION",
      "cost": 2,
      "attack": 2,
      "health": 3,
      "minion_type": "Beast",
      "targeting": "none"
    },
    {
      "id": "FIREBALL",
      "name": "Fireball",
      "type": "SPELL",
      "cost": 4,
      "targeting": "any_character",
      "on_cast": [
        {"effect": "deal_damage", "amount": 6}
      ]
    },
    {
      "id": "EXECUTE",
      "name": "Execute",
      "type": "SPELL",
      "cost": 1,
      "targeting": "enemy_minion",
      "on_cast": [
        {
          "effect": "if_target_attack_at_most",
          "amount": 3,
          "then": [{"effect": "destroy"}]
        }
      ]
    },
    {
      "id": "DIRE_WOLF_ALPHA",
      "name": "Dire Wolf Alpha",
      "type": "MINION",
      "cost": 2,
      "attack": 2,
      "health": 2,
      "minion_type": "Beast",
      "targeting": "none",
      "aura": {"scope": "adjacent_friendly_minions", "attack": 1}
    }
  ],
  "tokens": {
    "WISP_TOKEN": {"name": "Wisp", "type": "MINION", "cost": 0, "attack": 1, "health": 1, "targeting": "none"}
  },
  "heroes": [
    {
      "id": "MAGE",
      "name": "Jaina Proudmoore",
      "power": {"name": "Fireblast", "cost": 2, "targeting": "any_character", "effects": [{"effect": "deal_damage", "amount": 1}]}
    }
  ]
}`

func TestLoadJSONCompilesCardsTokensAndHeroes(t *testing.T) {
	cat, err := catalog.LoadJSON([]byte(sampleJSON))
	require.NoError(t, err)

	require.Contains(t, cat.Cards, "RIVER_CROC")
	assert.Equal(t, "River Crocolisk", cat.Cards["RIVER_CROC"].Name)
	assert.Equal(t, state.Tribe("Beast"), cat.Cards["RIVER_CROC"].Tribe)

	require.Contains(t, cat.Cards, "FIREBALL")
	assert.NotNil(t, cat.Cards["FIREBALL"].OnCast)

	require.Contains(t, cat.Cards, "DIRE_WOLF_ALPHA")
	require.NotNil(t, cat.Cards["DIRE_WOLF_ALPHA"].Aura)
	assert.Equal(t, "adjacent_friendly_minions", cat.Cards["DIRE_WOLF_ALPHA"].Aura.Scope)

	require.Contains(t, cat.Tokens, "WISP_TOKEN")
	assert.Equal(t, "Wisp", cat.Tokens["WISP_TOKEN"].Name)

	require.Contains(t, cat.Heroes, "MAGE")
	assert.Equal(t, 2, cat.Heroes["MAGE"].Power.Cost)
	assert.NotNil(t, cat.Heroes["MAGE"].Power.Runner)
}

func TestLoadJSONCompilesNestedConditionalThenArray(t *testing.T) {
	cat, err := catalog.LoadJSON([]byte(sampleJSON))
	require.NoError(t, err)
	require.NotNil(t, cat.Cards["EXECUTE"].OnCast)
}

func TestLoadJSONRejectsBadTargeting(t *testing.T) {
	bad := `{"cards": [{"id": "X", "name": "X", "type": "MINION", "targeting": "nonsense_spec"}]}`
	_, err := catalog.LoadJSON([]byte(bad))
	assert.Error(t, err)
}

func TestLoadJSONRejectsUnknownEffectName(t *testing.T) {
	bad := `{"cards": [{"id": "X", "name": "X", "type": "SPELL", "targeting": "none",
		"on_cast": [{"effect": "not_a_real_effect"}]}]}`
	_, err := catalog.LoadJSON([]byte(bad))
	assert.Error(t, err)
}

func TestLoadJSONRejectsMissingID(t *testing.T) {
	bad := `{"cards": [{"name": "No ID"}]}`
	_, err := catalog.LoadJSON([]byte(bad))
	assert.Error(t, err)
}

const sampleYAML = `
cards:
  - id: RIVER_CROC
    name: River Crocolisk
    type: MINION
    cost: 2
    attack: 2
    health: 3
    minion_type: Beast
    targeting: none
`

func TestLoadYAMLDecodesMappingsAsStringKeyedMaps(t *testing.T) {
	cat, err := catalog.LoadYAML([]byte(sampleYAML))
	require.NoError(t, err)
	require.Contains(t, cat.Cards, "RIVER_CROC")
	assert.Equal(t, 2, cat.Cards["RIVER_CROC"].Cost)
}

func TestValidateDeckEnforcesCopyLimitsAndKnownIDs(t *testing.T) {
	cards := state.CardMap{
		"COMMON_A":    {ID: "COMMON_A", Rarity: state.RarityCommon},
		"LEGENDARY_A": {ID: "LEGENDARY_A", Rarity: state.RarityLegendary},
	}

	var deck []string
	for i := 0; i < 27; i++ {
		deck = append(deck, "COMMON_A")
	}
	deck = append(deck, "LEGENDARY_A", "LEGENDARY_A", "UNKNOWN_CARD")

	reasons := catalog.ValidateDeck(cards, deck)
	assert.Contains(t, reasons, `card "LEGENDARY_A" appears 2 times, limit is 1`)
	found := false
	for _, r := range reasons {
		if r == `unknown card id "UNKNOWN_CARD"` {
			found = true
		}
	}
	assert.True(t, found, "expected an unknown-card-id reason, got %v", reasons)
}

func TestValidateDeckAcceptsExactlyThirty(t *testing.T) {
	cards := state.CardMap{}
	var deck []string
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("COMMON_%d", i)
		cards[id] = &state.Card{ID: id, Rarity: state.RarityCommon}
		deck = append(deck, id, id)
	}
	assert.Empty(t, catalog.ValidateDeck(cards, deck))
}

func TestExpandCounts(t *testing.T) {
	out := catalog.ExpandCounts(map[string]int{"A": 2})
	assert.ElementsMatch(t, []string{"A", "A"}, out)
}
