package prism

import (
	"sort"
	"strings"

	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
)

// StandardDefinitions is the prism set every scenario starts from: the
// six ability prisms plus the tier-0 Basic output prism.
func StandardDefinitions() map[string]entities.PrismDefinition {
	return map[string]entities.PrismDefinition{
		"Force": {
			Type:        string(KindAbility),
			Description: "Force represents your character's ability to physically affect others.",
		},
		"Presence": {
			Type:        string(KindAbility),
			Description: "Presence represents your character's ability to mentally affect others.",
		},
		"Guts": {
			Type:        string(KindAbility),
			Description: "Guts represents your character's ability to physically resist others.",
		},
		"Wits": {
			Type:        string(KindAbility),
			Description: "Wits represents your character's ability to mentally resist others.",
		},
		"Sensation": {
			Type:        string(KindAbility),
			Description: "Sensation represents your character's ability to physically examine the world.",
		},
		"Reflection": {
			Type:        string(KindAbility),
			Description: "Reflection represents your character's ability to mentally examine the world.",
		},
		"Basic": {
			Type:        string(KindOutput),
			Description: "A basic, catch-all output prism for all standard actions any human should be capable of.",
			Tier:        0,
		},
	}
}

// StandardNames lists the prisms granted to every new character.
func StandardNames() []string {
	return []string{"Basic", "Force", "Presence", "Guts", "Wits", "Sensation", "Reflection"}
}

// Set is the full prism catalog for a scenario: the standard set merged
// with the scenario's own definitions. Lookups are case-insensitive.
type Set struct {
	prisms map[string]*Prism // keyed by lowercase name
	names  []string          // display names, sorted
}

// NewSet builds the catalog from scenario definitions layered over the
// standard set.
func NewSet(defs map[string]entities.PrismDefinition) (*Set, error) {
	merged := StandardDefinitions()
	for name, def := range defs {
		merged[name] = def
	}

	s := &Set{prisms: make(map[string]*Prism, len(merged))}
	for name, def := range merged {
		p, err := New(name, def)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build prism %q", name)
		}
		s.prisms[strings.ToLower(name)] = p
		s.names = append(s.names, p.Name)
	}
	sort.Strings(s.names)

	return s, nil
}

// Get returns a prism by case-insensitive exact name.
func (s *Set) Get(name string) (*Prism, bool) {
	p, ok := s.prisms[strings.ToLower(name)]
	return p, ok
}

// Names returns all prism display names in sorted order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Find resolves a query against the whole catalog by case-insensitive
// prefix, used when granting prisms a character does not own yet.
func (s *Set) Find(query string) (*Prism, bool) {
	q := strings.ToLower(query)
	for _, name := range s.names {
		if strings.HasPrefix(strings.ToLower(name), q) {
			return s.Get(name)
		}
	}
	return nil, false
}

// FindOwned resolves a query against the prisms a character owns, by
// case-insensitive prefix, then looks the winner up in the catalog. This
// mirrors how players abbreviate prism names in chat.
func (s *Set) FindOwned(c *entities.Character, query string) (*Prism, error) {
	q := strings.ToLower(query)

	owned := ""
	for _, name := range c.Prisms {
		if strings.HasPrefix(strings.ToLower(name), q) {
			owned = name
			break
		}
	}
	if owned == "" {
		return nil, errors.Commandf("character does not own prism %q", query)
	}

	p, ok := s.Get(owned)
	if !ok {
		return nil, errors.Commandf("unknown prism %q", owned)
	}
	return p, nil
}
