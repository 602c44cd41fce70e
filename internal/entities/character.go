// Package entities holds the plain data types shared across the bot.
package entities

import "strings"

// Ability names, always matched case-insensitively.
const (
	AbilityForce      = "force"
	AbilityPresence   = "presence"
	AbilityGuts       = "guts"
	AbilityWits       = "wits"
	AbilitySensation  = "sensation"
	AbilityReflection = "reflection"
)

// AbilityNames lists the six abilities in display order.
func AbilityNames() []string {
	return []string{
		AbilityForce,
		AbilityPresence,
		AbilityGuts,
		AbilityWits,
		AbilitySensation,
		AbilityReflection,
	}
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Force      int `json:"force"`
	Presence   int `json:"presence"`
	Guts       int `json:"guts"`
	Wits       int `json:"wits"`
	Sensation  int `json:"sensation"`
	Reflection int `json:"reflection"`
}

// Score returns the ability score by lowercase-insensitive name.
func (a AbilityScores) Score(name string) (int, bool) {
	switch strings.ToLower(name) {
	case AbilityForce:
		return a.Force, true
	case AbilityPresence:
		return a.Presence, true
	case AbilityGuts:
		return a.Guts, true
	case AbilityWits:
		return a.Wits, true
	case AbilitySensation:
		return a.Sensation, true
	case AbilityReflection:
		return a.Reflection, true
	default:
		return 0, false
	}
}

// SetScore sets the ability score by case-insensitive name. It reports
// whether the name matched an ability.
func (a *AbilityScores) SetScore(name string, value int) bool {
	switch strings.ToLower(name) {
	case AbilityForce:
		a.Force = value
	case AbilityPresence:
		a.Presence = value
	case AbilityGuts:
		a.Guts = value
	case AbilityWits:
		a.Wits = value
	case AbilitySensation:
		a.Sensation = value
	case AbilityReflection:
		a.Reflection = value
	default:
		return false
	}
	return true
}

// Character represents one character sheet owned by a player
type Character struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Age        int           `json:"age"`
	Appearance string        `json:"appearance"`
	Avatar     string        `json:"avatar"`
	Status     string        `json:"status"`
	Actions    int           `json:"actions"`
	Abilities  AbilityScores `json:"abilities"`
	Inventory  []string      `json:"inventory"`
	Prisms     []string      `json:"prisms"`
}

// OwnsPrism reports whether the character owns a prism by exact name.
func (c *Character) OwnsPrism(name string) bool {
	for _, p := range c.Prisms {
		if p == name {
			return true
		}
	}
	return false
}

// CharacterID normalizes a display name into a sheet key.
func CharacterID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
