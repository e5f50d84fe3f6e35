// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/fiender/internal/entities/open5e"
)

// CreatureBuilder provides a fluent interface for building test Creature instances
type CreatureBuilder struct {
	creature *open5e.Creature
}

// NewCreatureBuilder creates a new builder with a goblin stat block
func NewCreatureBuilder() *CreatureBuilder {
	walk := 30
	stealth := 6
	return &CreatureBuilder{
		creature: &open5e.Creature{
			Slug:                "goblin",
			Name:                "Goblin",
			Size:                "Small",
			Type:                "humanoid",
			Subtype:             "goblinoid",
			Alignment:           "neutral evil",
			ArmorClass:          15,
			HitPoints:           7,
			HitDice:             "2d6",
			Speed:               open5e.Speed{Walk: &walk},
			Strength:            8,
			Dexterity:           14,
			Constitution:        10,
			Intelligence:        10,
			Wisdom:              8,
			Charisma:            8,
			Skills:              open5e.Skills{Stealth: &stealth},
			Senses:              "darkvision 60 ft., passive Perception 9",
			Languages:           "Common, Goblin",
			ChallengeRating:     "1/4",
			ConditionImmunities: "",
			Actions:             []open5e.Action{},
			Reactions:           []open5e.Action{{Name: ""}},
			LegendaryActions:    []open5e.Action{{Name: ""}},
			SpecialAbilities:    []open5e.Action{},
			SpellList:           []string{},
			DocumentSlug:        "wotc-srd",
			DocumentTitle:       "Systems Reference Document",
		},
	}
}

// WithSlug sets the creature slug
func (b *CreatureBuilder) WithSlug(slug string) *CreatureBuilder {
	b.creature.Slug = slug
	return b
}

// WithName sets the creature name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.creature.Name = name
	return b
}

// WithAction appends an entry to the actions list
func (b *CreatureBuilder) WithAction(action open5e.Action) *CreatureBuilder {
	b.creature.Actions = append(b.creature.Actions, action)
	return b
}

// WithReactions replaces the reactions list
func (b *CreatureBuilder) WithReactions(actions ...open5e.Action) *CreatureBuilder {
	b.creature.Reactions = actions
	return b
}

// WithLegendaryActions replaces the legendary actions list
func (b *CreatureBuilder) WithLegendaryActions(actions ...open5e.Action) *CreatureBuilder {
	b.creature.LegendaryActions = actions
	return b
}

// WithSpecialAbility appends an entry to the special abilities list
func (b *CreatureBuilder) WithSpecialAbility(action open5e.Action) *CreatureBuilder {
	b.creature.SpecialAbilities = append(b.creature.SpecialAbilities, action)
	return b
}

// WithSaves sets the six saving throws in STR, DEX, CON, INT, WIS, CHA order.
// A nil entry leaves that save absent.
func (b *CreatureBuilder) WithSaves(saves ...*int) *CreatureBuilder {
	dst := []**int{
		&b.creature.StrengthSave,
		&b.creature.DexteritySave,
		&b.creature.ConstitutionSave,
		&b.creature.IntelligenceSave,
		&b.creature.WisdomSave,
		&b.creature.CharismaSave,
	}
	for i := 0; i < len(saves) && i < len(dst); i++ {
		*dst[i] = saves[i]
	}
	return b
}

// WithPerception sets passive perception
func (b *CreatureBuilder) WithPerception(perception int) *CreatureBuilder {
	b.creature.Perception = &perception
	return b
}

// WithSpells sets the spell list
func (b *CreatureBuilder) WithSpells(spells ...string) *CreatureBuilder {
	b.creature.SpellList = spells
	return b
}

// Build returns the built creature
func (b *CreatureBuilder) Build() *open5e.Creature {
	return b.creature
}

// SpellBuilder provides a fluent interface for building test Spell instances
type SpellBuilder struct {
	spell *open5e.Spell
}

// NewSpellBuilder creates a new builder with a fireball record
func NewSpellBuilder() *SpellBuilder {
	return &SpellBuilder{
		spell: &open5e.Spell{
			Slug:          "fireball",
			Name:          "Fireball",
			Desc:          "A bright streak flashes from your pointing finger.",
			HigherLevel:   "The damage increases by 1d6 for each slot level above 3rd.",
			Page:          "phb 241",
			Range:         "150",
			Components:    "V, S, M",
			Material:      "A tiny ball of bat guano and sulfur.",
			Ritual:        "no",
			Duration:      "Instantaneous",
			Concentration: "no",
			CastingTime:   "1",
			Level:         "3rd-level",
			LevelInt:      3,
			School:        "Evocation",
			DndClass:      "Sorcerer, Wizard",
			Archetype:     "Cleric: Light",
			DocumentSlug:  "wotc-srd",
		},
	}
}

// WithName sets the spell name
func (b *SpellBuilder) WithName(name string) *SpellBuilder {
	b.spell.Name = name
	return b
}

// WithRitual marks the spell as castable as a ritual
func (b *SpellBuilder) WithRitual(ritual bool) *SpellBuilder {
	b.spell.Ritual = yesNo(ritual)
	return b
}

// WithConcentration marks the spell as requiring concentration
func (b *SpellBuilder) WithConcentration(concentration bool) *SpellBuilder {
	b.spell.Concentration = yesNo(concentration)
	return b
}

// Build returns the built spell
func (b *SpellBuilder) Build() *open5e.Spell {
	return b.spell
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
