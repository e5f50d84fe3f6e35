package markdown

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/fiender/internal/entities/open5e"
)

// Creature renders a creature stat block
func Creature(c *open5e.Creature) string {
	var b strings.Builder

	fmt.Fprintf(&b, "###Name:  %s\n", c.Name)
	fmt.Fprintf(&b, "**Race:** %s\n", c.Type)
	fmt.Fprintf(&b, "- **Armor Class** %d\n", c.ArmorClass)
	fmt.Fprintf(&b, "- **Hit Points** %d\n", c.HitPoints)
	fmt.Fprintf(&b, "- **Hit Dice** %s\n", c.HitDice)
	b.WriteString("\n")

	b.WriteString("|STR|DEX|CON|INT|WIS|CHA|\n")
	b.WriteString("|:---:|:---:|:---:|:---:|:---:|:---:|\n")
	fmt.Fprintf(&b, "|%d|%d|%d|%d|%d|%d|\n",
		c.Strength, c.Dexterity, c.Constitution,
		c.Intelligence, c.Wisdom, c.Charisma)
	fmt.Fprintf(&b, "|%s|%s|%s|%s|%s|%s|\n",
		optionalInt(c.StrengthSave), optionalInt(c.DexteritySave), optionalInt(c.ConstitutionSave),
		optionalInt(c.IntelligenceSave), optionalInt(c.WisdomSave), optionalInt(c.CharismaSave))
	b.WriteString("___\n")

	fmt.Fprintf(&b, "- **Condition Immunities** %s\n", c.ConditionImmunities)
	fmt.Fprintf(&b, "- **Passive Perception** %s\n", optionalInt(c.Perception))
	fmt.Fprintf(&b, "- **Languages** %s\n", c.Languages)
	fmt.Fprintf(&b, "- **Challenge** %s\n", c.ChallengeRating)
	b.WriteString("\n")

	b.WriteString("**Spells:**\n")
	fmt.Fprintf(&b, "%s\n", strings.Join(c.SpellList, "\n"))
	b.WriteString("\n")

	actionList(&b, "Actions", c.Actions)
	b.WriteString("\n")
	actionList(&b, "Reactions", c.Reactions)
	b.WriteString("\n")
	actionList(&b, "Legendary Actions", c.LegendaryActions)
	b.WriteString("\n")
	actionList(&b, "Special Abilities", c.SpecialAbilities)

	return b.String()
}
