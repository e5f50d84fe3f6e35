package lookup

import (
	"github.com/KirkDiggler/fiender/internal/entities/open5e"
)

// Kind selects which record collection a request targets
type Kind string

// Record kinds
const (
	KindCreature Kind = "creature"
	KindSpell    Kind = "spell"
)

// Kinds lists every supported record kind
var Kinds = []Kind{KindCreature, KindSpell}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Format selects the document produced by Lookup
type Format string

// Output formats
const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported output format
var Formats = []Format{FormatMarkdown, FormatYAML}

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// LookupInput defines the request for rendering one record
type LookupInput struct {
	// Kind defaults to KindCreature when empty
	Kind Kind
	Name string
	// Format defaults to FormatMarkdown when empty
	Format Format
}

// LookupOutput defines the response for rendering one record
type LookupOutput struct {
	Kind     Kind
	Slug     string
	Name     string
	Markdown string
	// Document is the record in the requested format. For FormatMarkdown
	// it equals Markdown.
	Document string
}

// PageReporter is told about each page as soon as it has been decoded
type PageReporter func(pageNum int)

// WalkInput defines the request for walking a listing
type WalkInput struct {
	// Kind defaults to KindCreature when empty
	Kind Kind
	// Collect keeps every record of every page. Without it the walk only
	// counts pages.
	Collect bool
	// OnPage is optional
	OnPage PageReporter
}

// WalkOutput defines the response for walking a listing
type WalkOutput struct {
	Kind Kind
	// Pages is the number of pages fetched
	Pages int
	// Count is the total upstream reported on the last page
	Count int
	// Creatures is filled in collect mode for KindCreature
	Creatures []open5e.Creature
	// Spells is filled in collect mode for KindSpell
	Spells []open5e.Spell
}

// Collected returns how many records were accumulated
func (o *WalkOutput) Collected() int {
	return len(o.Creatures) + len(o.Spells)
}
