package entities

// PrismDefinition describes a prism as supplied by a scenario. The Type
// selects the variant; the remaining fields are variant-specific.
type PrismDefinition struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Dice        int    `json:"dice"`     // adder
	Modifier    int    `json:"modifier"` // bonus
	Factor      int    `json:"factor"`   // multiplier
	Ability     string `json:"ability"`  // merger
	Tier        int    `json:"tier"`     // output
}

// Scenario describes the active game: its rooms, which commands are
// enabled, and the scenario-specific prisms layered over the standard set.
// How a scenario is authored and loaded is not this core's concern; it
// arrives fully constructed.
type Scenario struct {
	ID       string
	Name     string
	Rooms    []string
	Commands []string
	Prisms   map[string]PrismDefinition
}

// HasRoom reports whether the named room is part of the scenario.
func (s *Scenario) HasRoom(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Rooms {
		if r == name {
			return true
		}
	}
	return false
}

// AllowsCommand reports whether the scenario's allow-list enables the command.
func (s *Scenario) AllowsCommand(name string) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Commands {
		if c == name {
			return true
		}
	}
	return false
}
