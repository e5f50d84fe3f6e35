package dice

// RollInput defines the request for rolling an action's damage
type RollInput struct {
	// Creature is a name or slug
	Creature string
	// Action matches an action-like entry name, ignoring case
	Action string
}

// Term is one "+"-separated piece of a damage expression. Flat terms have
// Count and Size of zero.
type Term struct {
	Count int
	Size  int
	Flat  int
	// Rolls holds the individual dice once rolled
	Rolls []int
}

// RollOutput defines the response for rolling an action's damage
type RollOutput struct {
	// EntityID and EntityType identify the creature that acted
	EntityID   string
	EntityType string
	Action     string
	Notation   string
	Terms      []Term
	// Bonus is the action's damage_bonus, zero when absent
	Bonus       int
	Total       int
	Description string
}

// Dice returns every individual die result in roll order
func (o *RollOutput) Dice() []int {
	var out []int
	for _, t := range o.Terms {
		out = append(out, t.Rolls...)
	}
	return out
}
