// Package game implements the game orchestrator: the bot's command
// surface over the character store, the prism catalog, and the roll
// engine, plus the reaction-driven reroll flow.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/fadedcity/prismbot/internal/orchestrators/game Service

import (
	"context"

	"github.com/fadedcity/prismbot/internal/chat"
	"github.com/fadedcity/prismbot/internal/command"
	"github.com/fadedcity/prismbot/internal/dice"
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/pkg/idgen"
	"github.com/fadedcity/prismbot/internal/prism"
	"github.com/fadedcity/prismbot/internal/repositories/character"
	"github.com/fadedcity/prismbot/internal/repositories/reroll"
)

// RerollEmoji is the reaction symbol that consumes a reroll session.
const RerollEmoji = "🔁"

// Service defines the interface for game operations. Most of the verb
// surface is reached through registered command handlers; the exported
// operations are the ones other components call directly.
type Service interface {
	command.Authorizer

	// RegisterCommands adds every game command to the registry and
	// enables the ones the active scenario allows.
	RegisterCommands(registry *command.Registry) error

	// RollPrisms folds a prism invocation into a resolved roll.
	RollPrisms(ctx context.Context, input *RollPrismsInput) (*RollPrismsOutput, error)

	// HandleReaction processes a reaction-added event. It reports whether
	// the reaction consumed a reroll session.
	HandleReaction(ctx context.Context, reaction *chat.Reaction) (bool, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	Messenger     chat.Messenger
	Directory     chat.Directory
	CharacterRepo character.Repository
	RerollRepo    reroll.Repository
	Resolver      *dice.Resolver
	Prisms        *prism.Set
	Scenario      *entities.Scenario
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Messenger == nil {
		vb.RequiredField("Messenger")
	}
	if c.Directory == nil {
		vb.RequiredField("Directory")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RerollRepo == nil {
		vb.RequiredField("RerollRepo")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Prisms == nil {
		vb.RequiredField("Prisms")
	}
	if c.Scenario == nil {
		vb.RequiredField("Scenario")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	messenger     chat.Messenger
	directory     chat.Directory
	characterRepo character.Repository
	rerollRepo    reroll.Repository
	resolver      *dice.Resolver
	prisms        *prism.Set
	scenario      *entities.Scenario
	idGen         idgen.Generator

	registry *command.Registry
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		messenger:     cfg.Messenger,
		directory:     cfg.Directory,
		characterRepo: cfg.CharacterRepo,
		rerollRepo:    cfg.RerollRepo,
		resolver:      cfg.Resolver,
		prisms:        cfg.Prisms,
		scenario:      cfg.Scenario,
		idGen:         cfg.IDGenerator,
	}, nil
}

// IsPrivileged reports whether the user holds the elevated role.
func (o *orchestrator) IsPrivileged(ctx context.Context, guildID, userID string) (bool, error) {
	return o.directory.IsPrivileged(ctx, guildID, userID)
}

// HasActiveCharacter reports whether the user has selected a character.
func (o *orchestrator) HasActiveCharacter(ctx context.Context, guildID, userID string) (bool, error) {
	sheets, err := o.loadSheets(ctx, guildID, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	_, ok := sheets.ActiveCharacter()
	return ok, nil
}

// RoomInScenario reports whether the room is part of the active scenario.
func (o *orchestrator) RoomInScenario(room string) bool {
	return o.scenario.HasRoom(room)
}

// RegisterCommands registers the full verb surface and applies the
// scenario's allow-list.
func (o *orchestrator) RegisterCommands(registry *command.Registry) error {
	if registry == nil {
		return errors.InvalidArgument("registry cannot be nil")
	}

	specs := []*command.Spec{
		{
			Name:    "charcreate",
			Handler: o.handleCharCreate,
			Help:    "Create a character with the given name.",
			Params: []command.ParamSpec{
				{Name: "name"},
			},
		},
		{
			Name:    "chardelete",
			Handler: o.handleCharDelete,
			Help:    "Delete the named character.",
			Params: []command.ParamSpec{
				{Name: "name"},
			},
		},
		{
			Name:    "charselect",
			Handler: o.handleCharSelect,
			Help:    "Select your active character, or list your characters.",
			Params: []command.ParamSpec{
				{Name: "name", Optional: true, Default: ""},
			},
		},
		{
			Name:             "charpassword",
			Handler:          o.handleCharPassword,
			Help:             "Set a password protecting your characters.",
			DeleteInvocation: true,
			Params: []command.ParamSpec{
				{Name: "password"},
			},
		},
		{
			Name:              "charedit",
			Handler:           o.handleCharEdit,
			Help:              "Edit an attribute of your active character.",
			RequiresCharacter: true,
			Params: []command.ParamSpec{
				{Name: "attribute"},
				{Name: "value"},
			},
		},
		{
			Name:              "ap",
			Handler:           o.handleActionPoints,
			Help:              "Show your action points, spend some, or recover with a negative amount.",
			RequiresCharacter: true,
			Params: []command.ParamSpec{
				{Name: "points", Optional: true, Default: 0, Converter: command.IntConverter},
			},
		},
		{
			Name:              "inventory",
			Handler:           o.handleInventory,
			Help:              "List what your active character is carrying.",
			RequiresCharacter: true,
		},
		{
			Name:              "pickup",
			Handler:           o.handlePickup,
			Help:              "Add an item to your inventory.",
			RequiresCharacter: true,
			RequiresRoom:      true,
			Params: []command.ParamSpec{
				{Name: "item"},
			},
		},
		{
			Name:              "drop",
			Handler:           o.handleDrop,
			Help:              "Remove an item from your inventory.",
			RequiresCharacter: true,
			RequiresRoom:      true,
			Params: []command.ParamSpec{
				{Name: "item"},
			},
		},
		{
			Name:              "prism",
			Handler:           o.handlePrism,
			Help:              "Roll a combination of prisms, or list your prisms.",
			RequiresCharacter: true,
			RequiresRoom:      true,
			Params: []command.ParamSpec{
				{Name: "prisms", Collect: true},
			},
		},
		{
			Name:          "prismadd",
			Handler:       o.handlePrismAdd,
			Help:          "Grant a prism to a named character of a mentioned player.",
			RequiresAdmin: true,
			Params: []command.ParamSpec{
				{Name: "prism"},
				{Name: "character"},
				{Name: "player", Optional: true, Default: ""},
			},
		},
		{
			Name:          "prismremove",
			Handler:       o.handlePrismRemove,
			Help:          "Revoke a prism from a named character of a mentioned player.",
			RequiresAdmin: true,
			Params: []command.ParamSpec{
				{Name: "prism"},
				{Name: "character"},
				{Name: "player", Optional: true, Default: ""},
			},
		},
		{
			Name:          "refresh",
			Handler:       o.handleRefresh,
			Help:          "Reset every character's action points.",
			RequiresAdmin: true,
			Params: []command.ParamSpec{
				{Name: "points", Converter: command.IntConverter},
			},
		},
		{
			Name:         "roll",
			Handler:      o.handleRoll,
			Help:         "Roll plain six-sided dice.",
			RequiresRoom: true,
			Params: []command.ParamSpec{
				{Name: "dice", Optional: true, Default: 1, Converter: command.IntConverter},
			},
		},
		{
			Name:    "help",
			Handler: o.handleHelp,
			Help:    "Show this help.",
		},
	}

	allowed := make([]string, 0, len(specs))
	for _, spec := range specs {
		if err := registry.Register(spec); err != nil {
			return errors.Wrapf(err, "failed to register command %q", spec.Name)
		}
		if o.scenario.AllowsCommand(spec.Name) {
			allowed = append(allowed, spec.Name)
		}
	}
	registry.Enable(allowed)

	o.registry = registry
	return nil
}

// loadSheets fetches a player's sheet bundle, creating an empty one when
// the player has none yet.
func (o *orchestrator) loadSheets(ctx context.Context, guildID, userID string) (*character.PlayerSheets, error) {
	output, err := o.characterRepo.Get(ctx, character.GetInput{GuildID: guildID, UserID: userID})
	if err != nil {
		return nil, err
	}
	return output.Sheets, nil
}

// loadOrCreateSheets is loadSheets with NotFound mapped to a fresh bundle.
func (o *orchestrator) loadOrCreateSheets(ctx context.Context, guildID, userID string) (*character.PlayerSheets, error) {
	sheets, err := o.loadSheets(ctx, guildID, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			return &character.PlayerSheets{
				GuildID:    guildID,
				UserID:     userID,
				Characters: make(map[string]*entities.Character),
			}, nil
		}
		return nil, err
	}
	if sheets.Characters == nil {
		sheets.Characters = make(map[string]*entities.Character)
	}
	return sheets, nil
}

// saveSheets persists a player's sheet bundle.
func (o *orchestrator) saveSheets(ctx context.Context, sheets *character.PlayerSheets) error {
	_, err := o.characterRepo.Save(ctx, character.SaveInput{Sheets: sheets})
	return err
}

// activeCharacter loads the invoking player's selected character. The
// dispatcher's character gate runs first, so a miss here is a command
// error rather than an internal one.
func (o *orchestrator) activeCharacter(ctx context.Context, guildID, userID string) (*character.PlayerSheets, *entities.Character, error) {
	sheets, err := o.loadSheets(ctx, guildID, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil, errors.Command("no active character selected")
		}
		return nil, nil, err
	}
	c, ok := sheets.ActiveCharacter()
	if !ok {
		return nil, nil, errors.Command("no active character selected")
	}
	return sheets, c, nil
}

// reply sends handler output to the invoking channel.
func (o *orchestrator) reply(ctx context.Context, inv *command.Invocation, content string) error {
	_, err := o.messenger.SendMessage(ctx, inv.Message.ChannelID, content)
	if err != nil {
		return errors.Wrap(err, "failed to send reply")
	}
	return nil
}
