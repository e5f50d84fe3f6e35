package markdown

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/fiender/internal/entities/open5e"
)

// Spell renders a spell card
func Spell(s *open5e.Spell) string {
	var b strings.Builder

	fmt.Fprintf(&b, "###Name: %s\n", s.Name)
	fmt.Fprintf(&b, "*%s*\n", spellLevel(s))
	b.WriteString("___\n")
	fmt.Fprintf(&b, "- **Casting Time:** %s\n", s.CastingTime)
	fmt.Fprintf(&b, "- **Range:** %s\n", s.Range)
	fmt.Fprintf(&b, "- **Components:** %s\n", s.Components)
	fmt.Fprintf(&b, "- **Duration:** %s\n", s.Duration)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", s.Desc)
	b.WriteString("\n")
	fmt.Fprintf(&b, "- **School:** %s\n", s.School)
	fmt.Fprintf(&b, "- **Class:** %s\n", s.DndClass)
	fmt.Fprintf(&b, "- **Archetype:** %s\n", s.Archetype)

	return b.String()
}

// spellLevel prefers the display level and falls back to the numeric one
func spellLevel(s *open5e.Spell) string {
	if s.Level != "" {
		return s.Level
	}
	return fmt.Sprintf("Level %d", s.LevelInt)
}
