// Package dice implements the dice orchestrator for rolling creature damage
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/fiender/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/fiender/internal/clients/external"
	"github.com/KirkDiggler/fiender/internal/errors"
)

var (
	// Regex for a single dice term like "2d6", "1d20", "3d8"
	diceTermRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
	// Regex for a flat term like "4"
	flatTermRegex = regexp.MustCompile(`^\d+$`)
)

// Service defines the interface for dice operations
type Service interface {
	// Roll rolls the damage of one creature action
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Client external.Client
	// Roller is optional, defaults to dice.DefaultRoller
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if c.Roller == nil {
		c.Roller = dice.DefaultRoller
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client external.Client
	roller dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client: cfg.Client,
		roller: cfg.Roller,
	}, nil
}

// ParseNotation splits a damage expression like "2d10+4d6" or "1d8+3" into
// terms. Whitespace and case are ignored.
func ParseNotation(notation string) ([]Term, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(notation, " ", ""))
	if cleaned == "" {
		return nil, errors.InvalidArgument("dice notation is empty")
	}

	parts := strings.Split(cleaned, "+")
	terms := make([]Term, 0, len(parts))
	for _, part := range parts {
		if flatTermRegex.MatchString(part) {
			flat, err := strconv.Atoi(part)
			if err != nil {
				return nil, errors.InvalidArgumentf("invalid flat term in notation: %s", notation)
			}
			terms = append(terms, Term{Flat: flat})
			continue
		}

		matches := diceTermRegex.FindStringSubmatch(part)
		if len(matches) != 3 {
			return nil, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY+XdY+N)", notation)
		}

		count, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
		}
		size, err := strconv.Atoi(matches[2])
		if err != nil {
			return nil, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
		}
		if count <= 0 || size <= 0 {
			return nil, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
		}

		terms = append(terms, Term{Count: count, Size: size})
	}

	return terms, nil
}

func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("creature", input.Creature, vb)
	errors.ValidateRequired("action", input.Action, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	creature, err := o.client.GetCreature(ctx, input.Creature)
	if err != nil {
		return nil, err
	}

	action, ok := creature.FindAction(input.Action)
	if !ok {
		return nil, errors.NotFoundf("%s has no action named %q", creature.Name, input.Action)
	}
	if action.DamageDice == nil || strings.TrimSpace(*action.DamageDice) == "" {
		return nil, errors.InvalidArgumentf("action %q of %s has no damage dice", action.Name, creature.Name)
	}

	terms, err := ParseNotation(*action.DamageDice)
	if err != nil {
		return nil, err
	}

	output := &RollOutput{
		Action:   action.Name,
		Notation: *action.DamageDice,
	}
	if action.DamageBonus != nil {
		output.Bonus = *action.DamageBonus
	}

	if err := o.rollTerms(terms); err != nil {
		return nil, err
	}
	output.Terms = terms

	output.Total = output.Bonus
	for _, t := range terms {
		output.Total += t.Flat
		for _, r := range t.Rolls {
			output.Total += r
		}
	}

	describe(output, creature)

	slog.Debug("Rolled damage",
		"entity", output.EntityID,
		"action", output.Action,
		"notation", output.Notation,
		"total", output.Total)

	return output, nil
}

// rollTerms fills in Rolls for every dice term
func (o *orchestrator) rollTerms(terms []Term) error {
	for i := range terms {
		if terms[i].Count == 0 {
			continue
		}
		rolls, err := o.roller.RollN(terms[i].Count, terms[i].Size)
		if err != nil {
			return errors.Wrapf(err, "failed to roll %dd%d", terms[i].Count, terms[i].Size)
		}
		terms[i].Rolls = rolls
	}
	return nil
}

// describe renders e.g. "creature:goblin Scimitar 1d6[4]+2 = 6"
func describe(output *RollOutput, entity core.Entity) {
	output.EntityID = entity.GetID()
	output.EntityType = entity.GetType()

	parts := make([]string, 0, len(output.Terms)+1)
	for _, t := range output.Terms {
		if t.Count == 0 {
			parts = append(parts, strconv.Itoa(t.Flat))
			continue
		}
		rolls := make([]string, len(t.Rolls))
		for i, r := range t.Rolls {
			rolls[i] = strconv.Itoa(r)
		}
		parts = append(parts, fmt.Sprintf("%dd%d[%s]", t.Count, t.Size, strings.Join(rolls, ",")))
	}
	if output.Bonus != 0 {
		parts = append(parts, strconv.Itoa(output.Bonus))
	}

	output.Description = fmt.Sprintf("%s:%s %s %s = %d",
		output.EntityType, output.EntityID, output.Action, strings.Join(parts, "+"), output.Total)
}
