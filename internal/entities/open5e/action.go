package open5e

import (
	"bytes"
	"encoding/json"

	"github.com/KirkDiggler/fiender/internal/errors"
)

// Action is one entry of any action-like list: actions, reactions,
// legendary actions or special abilities. An Action with an empty Name is
// the "absent" sentinel and renders as nothing.
type Action struct {
	Name        string  `json:"name"`
	Desc        string  `json:"desc"`
	AttackBonus *int    `json:"attack_bonus,omitempty"`
	DamageDice  *string `json:"damage_dice,omitempty"`
	DamageBonus *int    `json:"damage_bonus,omitempty"`
}

// IsEmpty reports whether the action is the empty-name sentinel
func (a Action) IsEmpty() bool {
	return a.Name == ""
}

// HasCombatNumbers reports whether any of attack bonus, damage dice or
// damage bonus is present
func (a Action) HasCombatNumbers() bool {
	return a.AttackBonus != nil || a.DamageDice != nil || a.DamageBonus != nil
}

// JSON shapes reported in schema mismatch errors
const (
	ShapeString  = "string"
	ShapeArray   = "array"
	ShapeObject  = "object"
	ShapeNumber  = "number"
	ShapeBoolean = "boolean"
	ShapeNull    = "null"
	ShapeMissing = "missing"
)

// DecodeActions decodes an action-like field that upstream sends either as a
// bare string or as a list of action objects. The result is always a slice.
// A string becomes a single Action named after it; any shape other than
// string or array is a schema mismatch naming the field and the shape.
func DecodeActions(field string, raw json.RawMessage) ([]Action, error) {
	shape := shapeOf(raw)

	switch shape {
	case ShapeString:
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return nil, mismatch(field, shape, err)
		}
		return []Action{{Name: name}}, nil
	case ShapeArray:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, mismatch(field, shape, err)
		}
		actions := make([]Action, 0, len(elems))
		for i, elem := range elems {
			action, err := decodeAction(elem)
			if err != nil {
				return nil, mismatch(field, shape, err).WithMeta(MetaIndex, i)
			}
			actions = append(actions, action)
		}
		return actions, nil
	default:
		return nil, mismatch(field, shape, nil)
	}
}

// MetaIndex is the error metadata key naming the offending array element
const MetaIndex = "index"

// actionKeys must be present, as strings, on every action object
var actionKeys = []string{"name", "desc"}

// decodeAction decodes one array element. Anything but an object carrying
// string name and desc is rejected, so the empty-name sentinel only comes
// from well-formed input.
func decodeAction(raw json.RawMessage) (Action, error) {
	if shape := shapeOf(raw); shape != ShapeObject {
		return Action{}, errors.SchemaMismatchf("action entry is %s, expected object", shape)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return Action{}, err
	}
	for _, key := range actionKeys {
		value, ok := keys[key]
		if !ok {
			return Action{}, errors.SchemaMismatchf("action entry has no %q", key)
		}
		if shape := shapeOf(value); shape != ShapeString {
			return Action{}, errors.SchemaMismatchf("action entry %q is %s, expected string", key, shape)
		}
	}

	var action Action
	if err := json.Unmarshal(raw, &action); err != nil {
		return Action{}, err
	}
	return action, nil
}

func mismatch(field, shape string, cause error) *errors.Error {
	var err *errors.Error
	if cause != nil {
		err = errors.WrapWithCodef(cause, errors.CodeSchemaMismatch,
			"%s: malformed %s of actions", field, shape)
	} else {
		err = errors.SchemaMismatchf("%s: expected a string or a list of actions, got %s", field, shape)
	}
	return err.WithMeta(errors.MetaField, field).WithMeta(errors.MetaShape, shape)
}

// shapeOf classifies a raw JSON value by its first significant byte
func shapeOf(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ShapeMissing
	}

	switch trimmed[0] {
	case '"':
		return ShapeString
	case '[':
		return ShapeArray
	case '{':
		return ShapeObject
	case 'n':
		return ShapeNull
	case 't', 'f':
		return ShapeBoolean
	default:
		return ShapeNumber
	}
}
