// Package lookup implements the lookup orchestrator: fetch one record and
// render it, or walk a paginated listing
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/fiender/internal/orchestrators/lookup Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fiender/internal/clients/external"
	"github.com/KirkDiggler/fiender/internal/entities/open5e"
	"github.com/KirkDiggler/fiender/internal/errors"
	"github.com/KirkDiggler/fiender/internal/markdown"
	"github.com/KirkDiggler/fiender/internal/yamldoc"
)

// Service defines the interface for lookup operations
type Service interface {
	// Lookup fetches one record by name and renders it as Markdown
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)

	// Walk fetches every page of a listing, counting or collecting records
	Walk(ctx context.Context, input *WalkInput) (*WalkOutput, error)
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	Client external.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client external.Client
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
	}, nil
}

func validateKind(kind Kind, vb *errors.ValidationBuilder) {
	allowed := make([]string, len(Kinds))
	for i, k := range Kinds {
		allowed[i] = k.String()
	}
	errors.ValidateEnum("kind", kind.String(), allowed, vb)
}

func validateFormat(format Format, vb *errors.ValidationBuilder) {
	allowed := make([]string, len(Formats))
	for i, f := range Formats {
		allowed[i] = f.String()
	}
	errors.ValidateEnum("format", format.String(), allowed, vb)
}

func defaultKind(kind Kind) Kind {
	if kind == "" {
		return KindCreature
	}
	return kind
}

// Lookup fetches and renders one record. Nothing is rendered on error.
func (o *orchestrator) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	kind := defaultKind(input.Kind)
	format := input.Format
	if format == "" {
		format = FormatMarkdown
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	validateKind(kind, vb)
	validateFormat(format, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output := &LookupOutput{
		Kind: kind,
		Slug: external.Slug(input.Name),
	}

	var record any
	switch kind {
	case KindSpell:
		spell, err := o.client.GetSpell(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		record = spell
		output.Name = spell.Name
		output.Markdown = markdown.Spell(spell)
	default:
		creature, err := o.client.GetCreature(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		record = creature
		output.Name = creature.Name
		output.Markdown = markdown.Creature(creature)
	}

	output.Document = output.Markdown
	if format == FormatYAML {
		doc, err := yamldoc.Record(record)
		if err != nil {
			return nil, err
		}
		output.Document = doc
	}

	slog.Debug("Rendered record", "kind", kind, "slug", output.Slug, "format", format)
	return output, nil
}

// Walk pages through a listing until upstream reports no next page
func (o *orchestrator) Walk(ctx context.Context, input *WalkInput) (*WalkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	kind := defaultKind(input.Kind)

	vb := errors.NewValidationBuilder()
	validateKind(kind, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	output := &WalkOutput{Kind: kind}
	report := func(pageNum, count int) {
		output.Pages = pageNum
		output.Count = count
		if input.OnPage != nil {
			input.OnPage(pageNum)
		}
	}

	var err error
	switch kind {
	case KindSpell:
		err = o.client.WalkSpells(ctx, pageCollector(&output.Spells, input.Collect, report))
	default:
		err = o.client.WalkCreatures(ctx, pageCollector(&output.Creatures, input.Collect, report))
	}
	if err != nil {
		return nil, err
	}

	if input.Collect && output.Collected() != output.Count {
		slog.Warn("Collected record count differs from upstream count",
			"kind", kind, "collected", output.Collected(), "count", output.Count)
	}

	return output, nil
}

// pageCollector reports every page and, in collect mode, appends its
// results to dst
func pageCollector[T any](dst *[]T, collect bool, report func(pageNum, count int)) external.PageFunc[T] {
	return func(pageNum int, page *open5e.Page[T]) error {
		report(pageNum, page.Count)
		if collect {
			*dst = append(*dst, page.Results...)
		}
		return nil
	}
}
