package open5e

import (
	"encoding/json"

	"github.com/KirkDiggler/fiender/internal/errors"
)

// requireKeys fails with a schema mismatch unless data is an object holding
// every key with a non-null value. record names the shape in the error.
func requireKeys(data []byte, record string, keys ...string) error {
	if shape := shapeOf(data); shape != ShapeObject {
		return errors.SchemaMismatchf("%s: expected object, got %s", record, shape).
			WithMeta(errors.MetaShape, shape)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.WrapWithCodef(err, errors.CodeSchemaMismatch, "%s: malformed object", record)
	}

	for _, key := range keys {
		value, ok := fields[key]
		if !ok {
			return errors.SchemaMismatchf("%s: missing %q", record, key).
				WithMeta(errors.MetaField, key).
				WithMeta(errors.MetaShape, ShapeMissing)
		}
		if shape := shapeOf(value); shape == ShapeNull {
			return errors.SchemaMismatchf("%s: %q is null", record, key).
				WithMeta(errors.MetaField, key).
				WithMeta(errors.MetaShape, shape)
		}
	}
	return nil
}
