// Package markdown renders open5e records as Markdown documents.
//
// Rendering is pure and never fails: the records are validated when they
// are decoded, so every function here takes a record and returns text.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/fiender/internal/entities/open5e"
)

// None is written in place of an absent optional number
const None = "none"

// combatSeparator joins combat numbers on one line. Two trailing spaces are
// a Markdown line break.
const combatSeparator = "  "

// Action renders one action-like entry under the given list number. The
// empty-name sentinel renders as "".
func Action(number int, action open5e.Action) string {
	if action.IsEmpty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d. **%s**\n", number, action.Name)
	fmt.Fprintf(&b, "%s\n", action.Desc)

	if action.HasCombatNumbers() {
		parts := make([]string, 0, 3)
		if action.AttackBonus != nil {
			parts = append(parts, fmt.Sprintf("*Attack Bonus:* %d", *action.AttackBonus))
		}
		if action.DamageDice != nil {
			parts = append(parts, fmt.Sprintf("*Damage Dice:* %s", *action.DamageDice))
		}
		if action.DamageBonus != nil {
			parts = append(parts, fmt.Sprintf("*Damage Bonus:* %d", *action.DamageBonus))
		}
		b.WriteString(strings.Join(parts, combatSeparator))
		b.WriteString("\n")
	}

	return b.String()
}

// actionList renders a titled section. Entries are numbered in order,
// skipping empty sentinels.
func actionList(b *strings.Builder, title string, actions []open5e.Action) {
	fmt.Fprintf(b, "**%s:**\n", title)

	n := 0
	for _, a := range actions {
		if a.IsEmpty() {
			continue
		}
		n++
		b.WriteString(Action(n, a))
	}
}

func optionalInt(v *int) string {
	if v == nil {
		return None
	}
	return strconv.Itoa(*v)
}
