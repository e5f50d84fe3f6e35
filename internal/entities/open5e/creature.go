// Package open5e holds the record types returned by the Open5e API and the
// decoding rules that normalise its inconsistent fields.
package open5e

import (
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityTypeCreature is the toolkit entity type reported by Creature
const EntityTypeCreature = "creature"

// Speed lists movement speeds in feet. Upstream omits the modes a creature
// does not have.
type Speed struct {
	Walk   *int `json:"walk,omitempty"`
	Run    *int `json:"run,omitempty"`
	Swim   *int `json:"swim,omitempty"`
	Fly    *int `json:"fly,omitempty"`
	Climb  *int `json:"climb,omitempty"`
	Burrow *int `json:"burrow,omitempty"`
}

// Skills is a sparse set of skill modifiers
type Skills struct {
	Acrobatics     *int `json:"acrobatics,omitempty"`
	AnimalHandling *int `json:"animal_handling,omitempty"`
	Arcana         *int `json:"arcana,omitempty"`
	Athletics      *int `json:"athletics,omitempty"`
	Deception      *int `json:"deception,omitempty"`
	Endurance      *int `json:"endurance,omitempty"`
	History        *int `json:"history,omitempty"`
	Insight        *int `json:"insight,omitempty"`
	Intimidation   *int `json:"intimidation,omitempty"`
	Investigation  *int `json:"investigation,omitempty"`
	Medicine       *int `json:"medicine,omitempty"`
	Nature         *int `json:"nature,omitempty"`
	Perception     *int `json:"perception,omitempty"`
	Performance    *int `json:"performance,omitempty"`
	Persuasion     *int `json:"persuasion,omitempty"`
	Religion       *int `json:"religion,omitempty"`
	SleightOfHand  *int `json:"sleight_of_hand,omitempty"`
	Stealth        *int `json:"stealth,omitempty"`
	Streetwise     *int `json:"streetwise,omitempty"`
	Survival       *int `json:"survival,omitempty"`
}

// UnmarshalJSON accepts the misspelled "performanc" key some upstream
// records carry. The correct spelling wins when both are present.
func (s *Skills) UnmarshalJSON(data []byte) error {
	type skillsAlias Skills
	aux := struct {
		*skillsAlias
		Performanc *int `json:"performanc"`
	}{skillsAlias: (*skillsAlias)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if s.Performance == nil {
		s.Performance = aux.Performanc
	}
	return nil
}

// Creature is a monster or NPC stat block
type Creature struct {
	Slug      string  `json:"slug"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	Type      string  `json:"type"`
	Subtype   string  `json:"subtype"`
	Group     *string `json:"group"`
	Alignment string  `json:"alignment"`

	ArmorClass int     `json:"armor_class"`
	ArmorDesc  *string `json:"armor_desc"`
	HitPoints  int     `json:"hit_points"`
	HitDice    string  `json:"hit_dice"`
	Speed      Speed   `json:"speed"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`

	StrengthSave     *int `json:"strength_save"`
	DexteritySave    *int `json:"dexterity_save"`
	ConstitutionSave *int `json:"constitution_save"`
	IntelligenceSave *int `json:"intelligence_save"`
	WisdomSave       *int `json:"wisdom_save"`
	CharismaSave     *int `json:"charisma_save"`

	Perception *int   `json:"perception"`
	Skills     Skills `json:"skills"`

	DamageVulnerabilities string `json:"damage_vulnerabilities"`
	DamageResistances     string `json:"damage_resistances"`
	DamageImmunities      string `json:"damage_immunities"`
	ConditionImmunities   string `json:"condition_immunities"`
	Senses                string `json:"senses"`
	Languages             string `json:"languages"`
	ChallengeRating       string `json:"challenge_rating"`

	Actions          []Action `json:"actions"`
	Reactions        []Action `json:"reactions"`
	LegendaryDesc    string   `json:"legendary_desc"`
	LegendaryActions []Action `json:"legendary_actions"`
	SpecialAbilities []Action `json:"special_abilities"`

	SpellList []string `json:"spell_list"`
	ImgMain   *string  `json:"img_main"`

	DocumentSlug       string `json:"document__slug"`
	DocumentTitle      string `json:"document__title"`
	DocumentLicenseURL string `json:"document__license_url"`
}

// Action-like field names on the wire
const (
	FieldActions          = "actions"
	FieldReactions        = "reactions"
	FieldLegendaryActions = "legendary_actions"
	FieldSpecialAbilities = "special_abilities"
)

// UnmarshalJSON decodes a creature, routing the four action-like fields
// through DecodeActions. Bodies without slug and name are rejected.
func (c *Creature) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "creature", "slug", "name"); err != nil {
		return err
	}

	type creatureAlias Creature
	aux := struct {
		*creatureAlias
		Actions          json.RawMessage `json:"actions"`
		Reactions        json.RawMessage `json:"reactions"`
		LegendaryActions json.RawMessage `json:"legendary_actions"`
		SpecialAbilities json.RawMessage `json:"special_abilities"`
	}{creatureAlias: (*creatureAlias)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *[]Action
	}{
		{FieldActions, aux.Actions, &c.Actions},
		{FieldReactions, aux.Reactions, &c.Reactions},
		{FieldLegendaryActions, aux.LegendaryActions, &c.LegendaryActions},
		{FieldSpecialAbilities, aux.SpecialAbilities, &c.SpecialAbilities},
	}
	for _, f := range fields {
		actions, err := DecodeActions(f.name, f.raw)
		if err != nil {
			return err
		}
		*f.dst = actions
	}

	return nil
}

// GetID returns the creature's slug
func (c *Creature) GetID() string {
	return c.Slug
}

// GetType returns the entity type for rpg-toolkit
func (c *Creature) GetType() string {
	return EntityTypeCreature
}

// FindAction returns the first non-empty action-like entry whose name
// matches case-insensitively, searching actions, reactions, legendary
// actions and special abilities in that order.
func (c *Creature) FindAction(name string) (Action, bool) {
	for _, list := range [][]Action{c.Actions, c.Reactions, c.LegendaryActions, c.SpecialAbilities} {
		for _, a := range list {
			if !a.IsEmpty() && strings.EqualFold(a.Name, name) {
				return a, true
			}
		}
	}
	return Action{}, false
}

// Compile-time check that Creature can be used as a toolkit entity
var _ core.Entity = (*Creature)(nil)
