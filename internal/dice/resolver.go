package dice

import (
	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/fadedcity/prismbot/internal/errors"
)

// Resolver turns roll specifications into concrete die results. All
// randomness flows through the injected rpg-toolkit roller so tests can
// script every draw.
type Resolver struct {
	roller rpgdice.Roller
}

// Config holds the dependencies for the resolver
type Config struct {
	Roller rpgdice.Roller
}

// NewResolver creates a new resolver. A nil roller falls back to the
// toolkit's default.
func NewResolver(cfg *Config) *Resolver {
	roller := rpgdice.DefaultRoller
	if cfg != nil && cfg.Roller != nil {
		roller = cfg.Roller
	}
	return &Resolver{roller: roller}
}

// ResolveInput contains parameters for resolving a roll specification
type ResolveInput struct {
	Spec RollSpec

	// Forced requests reconstruction of a dice sequence summing to this
	// total. Only permitted when the spec is fakeable.
	Forced *int

	// Rerolls overrides the result's reroll-token count, used when
	// replaying a roll with one fewer token.
	Rerolls *int
}

// Resolve draws concrete dice for the specification.
//
// The forced path is best effort: when the die-count adjustment leaves no
// feasible assignment the closest achievable total is reported rather
// than an error.
func (r *Resolver) Resolve(input ResolveInput) (*RollResult, error) {
	var (
		rolled []int
		err    error
	)

	if input.Forced != nil {
		if !input.Spec.Fakeable {
			return nil, errors.Command("cannot force a roll result without a faker prism")
		}
		rolled, err = r.reconstruct(input.Spec, *input.Forced)
	} else {
		rolled, err = r.draw(input.Spec)
	}
	if err != nil {
		return nil, err
	}

	rerolls := input.Spec.Rerolls
	if input.Rerolls != nil {
		rerolls = *input.Rerolls
	}
	if rerolls < 0 {
		rerolls = 0
	}

	return &RollResult{
		Dice:     rolled,
		Modifier: input.Spec.Modifier,
		Rerolls:  rerolls,
	}, nil
}

// draw rolls max(spec.Dice, 0) dice from the spec's face distribution.
func (r *Resolver) draw(spec RollSpec) ([]int, error) {
	count := spec.Dice
	if count < 0 {
		count = 0
	}

	rolled := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := r.rollFace(spec.Weights)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll die")
		}
		rolled = append(rolled, face)
	}
	return rolled, nil
}

// rollFace draws one die from the weight vector, uniform when unset.
func (r *Resolver) rollFace(w Weights) (int, error) {
	total := w.Total()
	if total == 0 {
		return r.roller.Roll(Faces)
	}

	n, err := r.roller.Roll(total)
	if err != nil {
		return 0, err
	}
	for face := 1; face <= Faces; face++ {
		n -= w[face-1]
		if n <= 0 {
			return face, nil
		}
	}
	return Faces, nil
}

// reconstruct builds a plausible-looking uniform dice sequence summing to
// (or as close as achievable to) the forced total.
//
// The die count starts from the accumulated count and is adjusted into a
// plausibility window around the target: grown while even all-sixes could
// not believably reach it, shrunk (never below one) while only all-ones
// could. A uniform seed is then nudged one pip at a time toward the
// target until it matches or every die is pinned at a boundary.
func (r *Resolver) reconstruct(spec RollSpec, forced int) ([]int, error) {
	target := forced - spec.Modifier

	count := spec.Dice
	if count < 1 {
		count = 1
	}
	// count*5 < target  <=>  count*6 < 1.2*target
	for count*5 < target {
		count++
	}
	// count*5 > 4*target  <=>  count > 0.8*target
	for count > 1 && count*5 > 4*target {
		count--
	}

	rolled := make([]int, count)
	sum := 0
	for i := range rolled {
		face, err := r.roller.Roll(Faces)
		if err != nil {
			return nil, errors.Wrap(err, "failed to seed forced roll")
		}
		rolled[i] = face
		sum += face
	}

	for sum != target {
		step := 1
		if sum > target {
			step = -1
		}

		candidates := make([]int, 0, len(rolled))
		for i, d := range rolled {
			if next := d + step; next >= 1 && next <= Faces {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			// Every die is pinned at a boundary; report the closest
			// achievable total.
			break
		}

		pick, err := r.roller.Roll(len(candidates))
		if err != nil {
			return nil, errors.Wrap(err, "failed to adjust forced roll")
		}
		rolled[candidates[pick-1]] += step
		sum += step
	}

	return rolled, nil
}
