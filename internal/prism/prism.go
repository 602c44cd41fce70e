// Package prism implements the composable roll modifiers that form the
// game's rule atoms. A prism is immutable data; applying one is a pure
// function from (character, roll spec, inline argument) to a new spec.
package prism

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedcity/prismbot/internal/dice"
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
)

// Kind tags a prism variant
type Kind string

// Prism variants
const (
	KindAdder      Kind = "adder"
	KindAbility    Kind = "ability"
	KindBonus      Kind = "bonus"
	KindMerger     Kind = "merger"
	KindMultiplier Kind = "multiplier"
	KindOutput     Kind = "output"
	KindFaker      Kind = "faker"
	KindWeighter   Kind = "weighter"
)

// Prism is a named, reusable roll modifier. Only the fields relevant to
// its kind are set.
type Prism struct {
	Name        string
	Description string
	Kind        Kind

	Dice     int    // adder: fixed die count
	Modifier int    // bonus: fixed flat modifier
	Factor   int    // multiplier: die count scale
	Tier     int    // output: reroll tokens granted
	Ability  string // merger: bound ability name
}

// New constructs a prism from a scenario definition.
func New(name string, def entities.PrismDefinition) (*Prism, error) {
	p := &Prism{
		Name:        name,
		Description: def.Description,
		Kind:        Kind(def.Type),
	}

	switch p.Kind {
	case KindAdder:
		p.Dice = def.Dice
	case KindAbility:
		if _, ok := (entities.AbilityScores{}).Score(name); !ok {
			return nil, errors.InvalidArgumentf("ability prism %q does not name an ability", name)
		}
	case KindBonus:
		p.Modifier = def.Modifier
	case KindMerger:
		if def.Ability == "" {
			return nil, errors.InvalidArgumentf("merger prism %q requires an ability", name)
		}
		p.Ability = def.Ability
	case KindMultiplier:
		p.Factor = def.Factor
	case KindOutput:
		p.Tier = def.Tier
	case KindFaker, KindWeighter:
		// Parameterized at invocation time; nothing fixed at construction.
	default:
		return nil, errors.InvalidArgumentf("unknown prism type %q", def.Type)
	}

	return p, nil
}

// RequiresArg reports whether the prism needs an explicit inline argument.
func (p *Prism) RequiresArg() bool {
	return p.Kind == KindFaker || p.Kind == KindWeighter
}

// Apply folds the prism into the roll specification. The character sheet
// is read for ability lookups; arg is the optional inline parameter from
// the invocation (empty when absent).
func (p *Prism) Apply(c *entities.Character, spec dice.RollSpec, arg string) (dice.RollSpec, error) {
	if p.RequiresArg() && arg == "" {
		return spec, errors.Commandf("prism %q requires an inline argument", p.Name)
	}

	switch p.Kind {
	case KindAdder:
		spec.Dice += p.Dice
		if arg != "" {
			n, err := p.intArg(arg)
			if err != nil {
				return spec, err
			}
			spec.Dice += n
		}

	case KindAbility:
		name := p.Name
		if arg != "" {
			name = arg
		}
		score, err := p.abilityScore(c, name)
		if err != nil {
			return spec, err
		}
		spec.Dice += score

	case KindBonus:
		spec.Modifier += p.Modifier
		if arg != "" {
			n, err := p.intArg(arg)
			if err != nil {
				return spec, err
			}
			spec.Modifier += n
		}

	case KindMerger:
		name := p.Ability
		if arg != "" {
			name = arg
		}
		score, err := p.abilityScore(c, name)
		if err != nil {
			return spec, err
		}
		spec.Dice += score

	case KindMultiplier:
		// Scales the running die count, so ordering against other prisms
		// is significant.
		spec.Dice *= p.Factor
		if arg != "" {
			n, err := p.intArg(arg)
			if err != nil {
				return spec, err
			}
			spec.Dice *= n
		}

	case KindOutput:
		spec.Rerolls += p.Tier
		if arg != "" {
			n, err := p.intArg(arg)
			if err != nil {
				return spec, err
			}
			spec.Rerolls += n
		}

	case KindFaker:
		// No intrinsic effect; certifies that forcing this roll is
		// legitimate. The argument itself is free-form.
		spec.Fakeable = true

	case KindWeighter:
		weights, err := p.weightsArg(arg)
		if err != nil {
			return spec, err
		}
		spec.Weights = weights

	default:
		return spec, errors.Internalf("unhandled prism kind %q", p.Kind)
	}

	return spec, nil
}

// Summary describes the prism's mechanical effect for roll output.
func (p *Prism) Summary() string {
	switch p.Kind {
	case KindAdder:
		return fmt.Sprintf("Adder, %d", p.Dice)
	case KindAbility:
		return "Ability"
	case KindBonus:
		sign := ""
		if p.Modifier > 0 {
			sign = "+"
		}
		return fmt.Sprintf("Bonus, %s%d", sign, p.Modifier)
	case KindMerger:
		return fmt.Sprintf("Merger, %s", p.Ability)
	case KindMultiplier:
		return fmt.Sprintf("Multiplier, x%d", p.Factor)
	case KindOutput:
		return fmt.Sprintf("Output, Tier %d", p.Tier)
	case KindFaker:
		return "Faker"
	case KindWeighter:
		return "Weighter"
	default:
		return "???"
	}
}

func (p *Prism) intArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Paramf("invalid argument %q for prism %q: expected an integer", arg, p.Name)
	}
	return n, nil
}

func (p *Prism) abilityScore(c *entities.Character, name string) (int, error) {
	if c == nil {
		return 0, errors.Commandf("prism %q requires a character sheet", p.Name)
	}
	score, ok := c.Abilities.Score(name)
	if !ok {
		return 0, errors.Commandf("unknown ability %q for prism %q", name, p.Name)
	}
	return score, nil
}

// weightsArg parses a six-face weight vector like "0,0,0,1,1,2".
func (p *Prism) weightsArg(arg string) (dice.Weights, error) {
	var weights dice.Weights

	parts := strings.Split(arg, ",")
	if len(parts) != dice.Faces {
		return weights, errors.Paramf(
			"invalid weights %q for prism %q: expected %d comma-separated values", arg, p.Name, dice.Faces)
	}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return weights, errors.Paramf("invalid weight %q for prism %q", part, p.Name)
		}
		weights[i] = n
	}
	if weights.IsZero() {
		return weights, errors.Paramf("weights for prism %q must not all be zero", p.Name)
	}
	return weights, nil
}

// SplitArg separates an invocation token of the form "name:arg" into the
// prism query and its inline argument. Tokens without a colon have no
// argument.
func SplitArg(token string) (query, arg string) {
	if i := strings.IndexByte(token, ':'); i >= 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}
