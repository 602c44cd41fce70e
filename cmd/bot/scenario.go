package main

import (
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/prism"
)

// demoScenario is the built-in scenario used when no external scenario is
// supplied: one room, every command enabled, and a handful of prisms
// exercising each variant on top of the standard set.
func demoScenario() *entities.Scenario {
	return &entities.Scenario{
		ID:    "demo",
		Name:  "Demo Table",
		Rooms: []string{"table"},
		Commands: []string{
			"charcreate", "chardelete", "charselect", "charpassword", "charedit",
			"ap", "inventory", "pickup", "drop",
			"prism", "prismadd", "prismremove", "refresh", "roll", "help",
		},
		Prisms: map[string]entities.PrismDefinition{
			"Blade": {
				Type:        string(prism.KindAdder),
				Description: "A trusted weapon adds two dice to any attack.",
				Dice:        2,
			},
			"Edge": {
				Type:        string(prism.KindBonus),
				Description: "A slight situational advantage.",
				Modifier:    1,
			},
			"Frenzy": {
				Type:        string(prism.KindMultiplier),
				Description: "Doubles everything gathered so far, at a cost decided by the GM.",
				Factor:      2,
			},
			"Insight": {
				Type:        string(prism.KindMerger),
				Description: "Folds your Wits into a physical action.",
				Ability:     entities.AbilityWits,
			},
			"Focus": {
				Type:        string(prism.KindOutput),
				Description: "Grants a reroll when the first attempt disappoints.",
				Tier:        1,
			},
			"Veil": {
				Type:        string(prism.KindFaker),
				Description: "Marks a roll as scripted by the GM.",
			},
			"Loaded": {
				Type:        string(prism.KindWeighter),
				Description: "Dice with opinions. Takes six comma-separated face weights.",
			},
		},
	}
}
