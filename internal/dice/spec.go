// Package dice implements the roll specification and resolution engine.
//
// A RollSpec is accumulated by folding prism applications and then resolved
// into concrete die results. Resolution supports non-uniform face weights
// and a forced-result reconstruction path used for scripted rolls.
package dice

// Faces is the number of faces on the game's dice.
const Faces = 6

// Weights is a per-face weight vector for faces 1..6. The zero value
// rolls a uniform die.
type Weights [Faces]int

// Uniform returns the uniform weight vector.
func Uniform() Weights {
	return Weights{1, 1, 1, 1, 1, 1}
}

// Total returns the sum of all face weights.
func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// IsZero reports whether no face carries weight.
func (w Weights) IsZero() bool {
	return w.Total() == 0
}

// RollSpec is the accumulated, not-yet-resolved state of a roll. It is
// built by applying prisms left to right; order matters because a
// multiplier scales whatever die count has accumulated so far.
type RollSpec struct {
	// Dice is the accumulated die count. It may go negative during
	// folding; resolution clamps it to zero.
	Dice int

	// Modifier is the flat modifier added to the dice total.
	Modifier int

	// Rerolls is the accumulated reroll-token count.
	Rerolls int

	// Weights is the face distribution. The zero value means uniform.
	Weights Weights

	// Fakeable records that a Faker prism was applied, which is the only
	// way a forced resolution is permitted.
	Fakeable bool
}

// RollResult is a resolved roll: the individual die outcomes in order,
// the flat modifier, and the reroll tokens remaining.
type RollResult struct {
	Dice     []int
	Modifier int
	Rerolls  int
}

// DiceTotal returns the sum of the individual dice.
func (r *RollResult) DiceTotal() int {
	total := 0
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// Total returns the dice total plus the modifier.
func (r *RollResult) Total() int {
	return r.DiceTotal() + r.Modifier
}
