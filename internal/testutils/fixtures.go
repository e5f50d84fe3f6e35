// Package testutils provides wire fixtures shared by the tests
package testutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// TestCreatureName is the display name of the default creature fixture
	TestCreatureName = "Ancient Red Dragon"
	// TestCreatureSlug is the slug of the default creature fixture
	TestCreatureSlug = "ancient-red-dragon"
	// TestSpellSlug is the slug of the default spell fixture
	TestSpellSlug = "fireball"
)

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// CreatureFields returns the fields of a creature record as upstream sends
// them. Callers mutate the map to build variants.
func CreatureFields() map[string]any {
	return map[string]any{
		"slug":      TestCreatureSlug,
		"name":      TestCreatureName,
		"size":      "Gargantuan",
		"type":      "dragon",
		"subtype":   "",
		"group":     "Red Dragon",
		"alignment": "chaotic evil",

		"armor_class": 22,
		"armor_desc":  "natural armor",
		"hit_points":  546,
		"hit_dice":    "28d20+252",
		"speed":       map[string]any{"walk": 40, "climb": 40, "fly": 80},

		"strength":     30,
		"dexterity":    10,
		"constitution": 29,
		"intelligence": 18,
		"wisdom":       15,
		"charisma":     23,

		"strength_save":     nil,
		"dexterity_save":    7,
		"constitution_save": 16,
		"intelligence_save": nil,
		"wisdom_save":       9,
		"charisma_save":     13,
		"perception":        16,
		"skills":            map[string]any{"perception": 16, "stealth": 7},

		"damage_vulnerabilities": "",
		"damage_resistances":     "",
		"damage_immunities":      "fire",
		"condition_immunities":   "",
		"senses":                 "blindsight 60 ft., darkvision 120 ft., passive Perception 26",
		"languages":              "Common, Draconic",
		"challenge_rating":       "24",

		"actions": []any{
			map[string]any{"name": "Multiattack", "desc": "The dragon can use its Frightful Presence."},
			map[string]any{
				"name":         "Bite",
				"desc":         "Melee Weapon Attack: +17 to hit, reach 15 ft., one target.",
				"attack_bonus": 17,
				"damage_dice":  "2d10+4d6",
				"damage_bonus": 10,
			},
		},
		"reactions":      "",
		"legendary_desc": "The dragon can take 3 legendary actions.",
		"legendary_actions": []any{
			map[string]any{"name": "Detect", "desc": "The dragon makes a Wisdom (Perception) check."},
		},
		"special_abilities": []any{
			map[string]any{"name": "Legendary Resistance (3/Day)", "desc": "If the dragon fails a saving throw, it can choose to succeed instead."},
		},
		"spell_list":            []any{},
		"img_main":              nil,
		"document__slug":        "wotc-srd",
		"document__title":       "Systems Reference Document",
		"document__license_url": "http://open5e.com/legal",
	}
}

// SpellFields returns the fields of a spell record as upstream sends them
func SpellFields() map[string]any {
	return map[string]any{
		"slug":                  TestSpellSlug,
		"name":                  "Fireball",
		"desc":                  "A bright streak flashes from your pointing finger to a point you choose.",
		"higher_level":          "When you cast this spell using a spell slot of 4th level or higher, the damage increases by 1d6.",
		"page":                  "phb 241",
		"range":                 "150 feet",
		"components":            "V, S, M",
		"material":              "A tiny ball of bat guano and sulfur.",
		"ritual":                "no",
		"duration":              "Instantaneous",
		"concentration":         "no",
		"casting_time":          "1 action",
		"level":                 "3rd-level",
		"level_int":             3,
		"school":                "Evocation",
		"dnd_class":             "Sorcerer, Wizard",
		"archetype":             "",
		"circles":               "",
		"document__slug":        "wotc-srd",
		"document__title":       "Systems Reference Document",
		"document__license_url": "http://open5e.com/legal",
	}
}

// MustJSON marshals v, failing the test on error
func MustJSON(t testing.TB, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// PageJSON builds a page envelope around the given records. An empty next
// encodes as null.
func PageJSON(t testing.TB, count int, next string, results ...map[string]any) []byte {
	t.Helper()

	var nextValue any
	if next != "" {
		nextValue = next
	}
	if results == nil {
		results = []map[string]any{}
	}

	return MustJSON(t, map[string]any{
		"count":    count,
		"next":     nextValue,
		"previous": nil,
		"results":  results,
	})
}
