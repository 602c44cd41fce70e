package game

import (
	"context"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fadedcity/prismbot/internal/chat"
	"github.com/fadedcity/prismbot/internal/command"
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/prism"
	"github.com/fadedcity/prismbot/internal/repositories/character"
)

const (
	// statusMaxLength caps the free-text status attribute.
	statusMaxLength = 140

	// PBKDF2 parameters for the sheet password.
	passwordIterations = 210_000
	passwordKeyLength  = 32
	passwordSaltLength = 16
)

// characterNamePattern restricts character names to a chat-safe charset.
var characterNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 .]+$`)

// passwordPattern restricts sheet passwords to letters and digits.
var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func (o *orchestrator) handleCharCreate(ctx context.Context, inv *command.Invocation) error {
	name := strings.TrimSpace(inv.String("name"))
	if !characterNamePattern.MatchString(name) {
		return errors.Commandf("character name %q may only contain letters, digits, spaces and dots", name)
	}

	msg := inv.Message
	sheets, err := o.loadOrCreateSheets(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	key := entities.CharacterID(name)
	if _, exists := sheets.Characters[key]; exists {
		return errors.Commandf("character %q already exists", name)
	}

	sheets.Characters[key] = &entities.Character{
		ID:     o.idGen.Generate(),
		Name:   name,
		Prisms: prism.StandardNames(),
	}
	sheets.Active = key

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("Created character **%s** and made them your active character.", name))
}

func (o *orchestrator) handleCharDelete(ctx context.Context, inv *command.Invocation) error {
	name := inv.String("name")

	msg := inv.Message
	sheets, err := o.loadSheets(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.Commandf("no character named %q", name)
		}
		return err
	}

	key := entities.CharacterID(name)
	c, exists := sheets.Characters[key]
	if !exists {
		return errors.Commandf("no character named %q", name)
	}

	delete(sheets.Characters, key)
	if sheets.Active == key {
		sheets.Active = ""
	}

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("Deleted character **%s**.", c.Name))
}

func (o *orchestrator) handleCharSelect(ctx context.Context, inv *command.Invocation) error {
	name := inv.String("name")

	msg := inv.Message
	sheets, err := o.loadSheets(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.Command("you have no characters yet")
		}
		return err
	}
	if len(sheets.Characters) == 0 {
		return errors.Command("you have no characters yet")
	}

	if name == "" {
		keys := make([]string, 0, len(sheets.Characters))
		for key := range sheets.Characters {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		var b strings.Builder
		b.WriteString("Your characters:\n")
		for _, key := range keys {
			c := sheets.Characters[key]
			if key == sheets.Active {
				fmt.Fprintf(&b, "- **%s** (active)\n", c.Name)
			} else {
				fmt.Fprintf(&b, "- %s\n", c.Name)
			}
		}
		return o.reply(ctx, inv, b.String())
	}

	key := entities.CharacterID(name)
	c, exists := sheets.Characters[key]
	if !exists {
		return errors.Commandf("no character named %q", name)
	}

	sheets.Active = key
	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("**%s** is now your active character.", c.Name))
}

func (o *orchestrator) handleCharPassword(ctx context.Context, inv *command.Invocation) error {
	password := inv.String("password")
	if !passwordPattern.MatchString(password) {
		return errors.Command("password may only contain letters and digits")
	}

	msg := inv.Message
	sheets, err := o.loadOrCreateSheets(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	salt := make([]byte, passwordSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return errors.Wrap(err, "failed to generate password salt")
	}
	hash, err := pbkdf2.Key(sha256.New, password, salt, passwordIterations, passwordKeyLength)
	if err != nil {
		return errors.Wrap(err, "failed to derive password hash")
	}

	sheets.PasswordSalt = hex.EncodeToString(salt)
	sheets.PasswordHash = hex.EncodeToString(hash)

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("%s your character password has been updated.", chat.Mention(msg.Author.ID)))
}

func (o *orchestrator) handleCharEdit(ctx context.Context, inv *command.Invocation) error {
	attribute := strings.ToLower(inv.String("attribute"))
	value := inv.String("value")

	msg := inv.Message
	sheets, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	switch attribute {
	case "age":
		age, err := strconv.Atoi(value)
		if err != nil || age < 0 {
			return errors.Commandf("age must be a non-negative number, got %q", value)
		}
		c.Age = age

	case "status":
		if len(value) > statusMaxLength {
			return errors.Commandf("status must be at most %d characters", statusMaxLength)
		}
		c.Status = value

	case "appearance":
		c.Appearance = value

	case "avatar":
		c.Avatar = value

	default:
		score, err := strconv.Atoi(value)
		if err != nil || score < 0 {
			return errors.Commandf("%s must be a non-negative number, got %q", attribute, value)
		}
		if !c.Abilities.SetScore(attribute, score) {
			return errors.Commandf("unknown attribute %q", attribute)
		}
	}

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("Updated %s for **%s**.", attribute, c.Name))
}

// handleActionPoints adjusts the active character's action points by the
// signed amount: positive spends, negative recovers, zero shows the
// balance.
func (o *orchestrator) handleActionPoints(ctx context.Context, inv *command.Invocation) error {
	points := inv.Int("points")

	msg := inv.Message
	sheets, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	if points == 0 {
		return o.reply(ctx, inv, fmt.Sprintf("**%s** has %d action points.", c.Name, c.Actions))
	}

	if points > c.Actions {
		return errors.Commandf("**%s** only has %d action points", c.Name, c.Actions)
	}
	c.Actions -= points

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	if points < 0 {
		return o.reply(ctx, inv, fmt.Sprintf("**%s** recovers %d action points, %d available.", c.Name, -points, c.Actions))
	}
	return o.reply(ctx, inv, fmt.Sprintf("**%s** spends %d action points, %d remaining.", c.Name, points, c.Actions))
}

func (o *orchestrator) handleInventory(ctx context.Context, inv *command.Invocation) error {
	msg := inv.Message
	_, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	if len(c.Inventory) == 0 {
		return o.reply(ctx, inv, fmt.Sprintf("**%s** is not carrying anything.", c.Name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** is carrying:\n", c.Name)
	for _, item := range c.Inventory {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return o.reply(ctx, inv, b.String())
}

func (o *orchestrator) handlePickup(ctx context.Context, inv *command.Invocation) error {
	item := strings.TrimSpace(inv.String("item"))
	if item == "" {
		return errors.Command("item cannot be empty")
	}

	msg := inv.Message
	sheets, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	c.Inventory = append(c.Inventory, item)
	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("**%s** picks up %s.", c.Name, item))
}

func (o *orchestrator) handleDrop(ctx context.Context, inv *command.Invocation) error {
	item := strings.TrimSpace(inv.String("item"))

	msg := inv.Message
	sheets, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return err
	}

	found := -1
	for i, held := range c.Inventory {
		if strings.EqualFold(held, item) {
			found = i
			break
		}
	}
	if found < 0 {
		return errors.Commandf("**%s** is not carrying %q", c.Name, item)
	}

	dropped := c.Inventory[found]
	c.Inventory = append(c.Inventory[:found], c.Inventory[found+1:]...)

	if err := o.saveSheets(ctx, sheets); err != nil {
		return err
	}

	return o.reply(ctx, inv, fmt.Sprintf("**%s** drops %s.", c.Name, dropped))
}

func (o *orchestrator) handleRefresh(ctx context.Context, inv *command.Invocation) error {
	points := inv.Int("points")
	if points < 0 {
		return errors.Command("action points must not be negative")
	}

	msg := inv.Message
	listOutput, err := o.characterRepo.List(ctx, character.ListInput{GuildID: msg.GuildID})
	if err != nil {
		return err
	}

	updated := 0
	for _, sheets := range listOutput.Sheets {
		for _, c := range sheets.Characters {
			c.Actions = points
			updated++
		}
		if err := o.saveSheets(ctx, sheets); err != nil {
			return err
		}
	}

	return o.reply(ctx, inv, fmt.Sprintf("Refreshed %d characters to %d action points.", updated, points))
}

func (o *orchestrator) handleHelp(ctx context.Context, inv *command.Invocation) error {
	msg := inv.Message
	isAdmin, err := o.directory.IsPrivileged(ctx, msg.GuildID, msg.Author.ID)
	if err != nil {
		return errors.Wrap(err, "failed to check privilege")
	}
	return o.reply(ctx, inv, o.registry.Help(isAdmin))
}
