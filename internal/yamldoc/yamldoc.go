// Package yamldoc renders decoded records as block-style YAML, keeping the
// upstream JSON key order
package yamldoc

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/fiender/internal/errors"
)

// Indent is the number of spaces per nesting level
const Indent = 2

// Record encodes v through its JSON tags and re-emits it as YAML
func Record(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to encode record")
	}

	// JSON is valid YAML, so the node tree keeps field order
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to parse encoded record")
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(Indent)
	if err := enc.Encode(&doc); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to write yaml")
	}
	if err := enc.Close(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to write yaml")
	}

	return buf.String(), nil
}

// oldBools are the plain scalars a YAML 1.1 reader takes for booleans
var oldBools = map[string]bool{
	"y": true, "Y": true, "yes": true, "Yes": true, "YES": true,
	"n": true, "N": true, "no": true, "No": true, "NO": true,
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
	"on": true, "On": true, "ON": true,
	"off": true, "Off": true, "OFF": true,
}

// blockStyle drops the flow and quoting styles the JSON parse leaves behind.
// Strings that read as YAML 1.1 booleans stay double quoted.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" && oldBools[n.Value] {
		n.Style = yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		blockStyle(child)
	}
}
