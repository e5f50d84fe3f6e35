package open5e

import (
	"encoding/json"
	"strings"
)

// Spell is a spell record. Upstream encodes ritual and concentration as
// "yes"/"no" strings and keeps the display level ("3rd-level") apart from
// the numeric one.
type Spell struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Desc          string `json:"desc"`
	HigherLevel   string `json:"higher_level"`
	Page          string `json:"page"`
	Range         string `json:"range"`
	Components    string `json:"components"`
	Material      string `json:"material"`
	Ritual        string `json:"ritual"`
	Duration      string `json:"duration"`
	Concentration string `json:"concentration"`
	CastingTime   string `json:"casting_time"`
	Level         string `json:"level"`
	LevelInt      int    `json:"level_int"`
	School        string `json:"school"`
	DndClass      string `json:"dnd_class"`
	Archetype     string `json:"archetype"`
	Circles       string `json:"circles"`

	DocumentSlug       string `json:"document__slug"`
	DocumentTitle      string `json:"document__title"`
	DocumentLicenseURL string `json:"document__license_url"`
}

// UnmarshalJSON decodes a spell, rejecting bodies without slug and name
func (s *Spell) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "spell", "slug", "name"); err != nil {
		return err
	}

	type spellAlias Spell
	return json.Unmarshal(data, (*spellAlias)(s))
}

// IsRitual reports whether the spell can be cast as a ritual
func (s *Spell) IsRitual() bool {
	return isYes(s.Ritual)
}

// RequiresConcentration reports whether the spell needs concentration
func (s *Spell) RequiresConcentration() bool {
	return isYes(s.Concentration)
}

func isYes(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "yes")
}
