package game

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/fadedcity/prismbot/internal/chat"
	"github.com/fadedcity/prismbot/internal/command"
	"github.com/fadedcity/prismbot/internal/dice"
	"github.com/fadedcity/prismbot/internal/entities"
	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/prism"
	"github.com/fadedcity/prismbot/internal/repositories/character"
	"github.com/fadedcity/prismbot/internal/repositories/reroll"
)

// maxPlainDice caps the plain roll command.
const maxPlainDice = 100

// faceEmoji renders die faces 1..6 in chat.
var faceEmoji = [dice.Faces + 1]string{
	"", ":one:", ":two:", ":three:", ":four:", ":five:", ":six:",
}

// RollPrismsInput contains parameters for resolving a prism invocation
type RollPrismsInput struct {
	GuildID string
	UserID  string

	// Tokens is the invocation's prism list. A token of the form "=N"
	// requests a forced total; the rest are prism queries, each optionally
	// carrying an inline argument as "name:arg".
	Tokens []string

	// RerollOverride replaces the result's reroll-token count, used when
	// replaying a roll with one fewer token. Forcing is not carried into
	// replays.
	RerollOverride *int
}

// RollPrismsOutput contains the resolved roll
type RollPrismsOutput struct {
	Character *entities.Character
	Applied   []*prism.Prism
	Result    *dice.RollResult

	// Tokens is the invocation with any forced-total token removed, the
	// form stored for reroll replay.
	Tokens []string
}

// RollPrisms folds the invocation's prisms into a roll specification and
// resolves it.
func (o *orchestrator) RollPrisms(ctx context.Context, input *RollPrismsInput) (*RollPrismsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	_, c, err := o.activeCharacter(ctx, input.GuildID, input.UserID)
	if err != nil {
		return nil, err
	}

	var (
		forced *int
		tokens = make([]string, 0, len(input.Tokens))
	)
	for _, token := range input.Tokens {
		if strings.HasPrefix(token, "=") {
			n, convErr := strconv.Atoi(token[1:])
			if convErr != nil {
				return nil, errors.Paramf("invalid forced total %q", token)
			}
			forced = &n
			continue
		}
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return nil, errors.Command("no prisms named")
	}
	if input.RerollOverride != nil {
		// Replays rerun the recorded prism list honestly.
		forced = nil
	}

	spec := dice.RollSpec{}
	applied := make([]*prism.Prism, 0, len(tokens))
	for _, token := range tokens {
		query, arg := prism.SplitArg(token)
		p, err := o.prisms.FindOwned(c, query)
		if err != nil {
			return nil, err
		}
		spec, err = p.Apply(c, spec, arg)
		if err != nil {
			return nil, err
		}
		applied = append(applied, p)
	}

	result, err := o.resolver.Resolve(dice.ResolveInput{
		Spec:    spec,
		Forced:  forced,
		Rerolls: input.RerollOverride,
	})
	if err != nil {
		return nil, err
	}

	return &RollPrismsOutput{
		Character: c,
		Applied:   applied,
		Result:    result,
		Tokens:    tokens,
	}, nil
}

func (o *orchestrator) handlePrism(ctx context.Context, inv *command.Invocation) error {
	tokens := inv.Strings("prisms")
	msg := inv.Message

	if len(tokens) == 0 {
		_, c, err := o.activeCharacter(ctx, msg.GuildID, msg.Author.ID)
		if err != nil {
			return err
		}
		return o.reply(ctx, inv, o.renderPrismList(c))
	}

	output, err := o.RollPrisms(ctx, &RollPrismsInput{
		GuildID: msg.GuildID,
		UserID:  msg.Author.ID,
		Tokens:  tokens,
	})
	if err != nil {
		return err
	}

	return o.renderRoll(ctx, msg.ChannelID, msg.GuildID, msg.Author.ID, output)
}

// renderRoll sends the roll result and, when reroll tokens remain,
// registers a session keyed by the new message and marks it reactable.
func (o *orchestrator) renderRoll(ctx context.Context, channelID, guildID, userID string, output *RollPrismsOutput) error {
	messageID, err := o.messenger.SendMessage(ctx, channelID, renderResult(output))
	if err != nil {
		return errors.Wrap(err, "failed to send roll result")
	}

	if output.Result.Rerolls < 1 {
		return nil
	}

	_, err = o.rerollRepo.Put(ctx, reroll.PutInput{Session: &reroll.Session{
		MessageID: messageID,
		ChannelID: channelID,
		GuildID:   guildID,
		UserID:    userID,
		Tokens:    output.Tokens,
		Rerolls:   output.Result.Rerolls,
	}})
	if err != nil {
		return errors.Wrap(err, "failed to register reroll session")
	}

	if err := o.messenger.React(ctx, channelID, messageID, RerollEmoji); err != nil {
		// The session still works without the affordance.
		slog.Warn("failed to add reroll affordance", "message_id", messageID, "error", err)
	}
	return nil
}

// HandleReaction checks a reaction-added event against the reroll session
// table and replays the recorded roll when it matches.
func (o *orchestrator) HandleReaction(ctx context.Context, reaction *chat.Reaction) (bool, error) {
	if reaction == nil || reaction.Emoji != RerollEmoji {
		return false, nil
	}

	consumed, err := o.rerollRepo.Consume(ctx, reroll.ConsumeInput{
		MessageID: reaction.MessageID,
		UserID:    reaction.UserID,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			// Not a pending reroll for this user; ignore.
			return false, nil
		}
		return false, err
	}
	session := consumed.Session

	remaining := session.Rerolls - 1
	output, err := o.RollPrisms(ctx, &RollPrismsInput{
		GuildID:        session.GuildID,
		UserID:         session.UserID,
		Tokens:         session.Tokens,
		RerollOverride: &remaining,
	})
	if err != nil {
		slog.Error("failed to replay reroll",
			"message_id", session.MessageID,
			"user_id", session.UserID,
			"error", err,
		)
		return true, nil
	}

	if err := o.renderRoll(ctx, session.ChannelID, session.GuildID, session.UserID, output); err != nil {
		slog.Error("failed to render reroll",
			"message_id", session.MessageID,
			"user_id", session.UserID,
			"error", err,
		)
	}
	return true, nil
}

// renderPrismList shows the character's prisms with their effects.
func (o *orchestrator) renderPrismList(c *entities.Character) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**'s prisms:\n", c.Name)
	for _, name := range c.Prisms {
		p, ok := o.prisms.Get(name)
		if !ok {
			fmt.Fprintf(&b, "- %s\n", name)
			continue
		}
		fmt.Fprintf(&b, "- **%s** (%s): %s\n", p.Name, p.Summary(), p.Description)
	}
	return b.String()
}

// renderResult formats a resolved roll for chat.
func renderResult(output *RollPrismsOutput) string {
	names := make([]string, 0, len(output.Applied))
	for _, p := range output.Applied {
		names = append(names, p.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s** rolls %s: ", output.Character.Name, strings.Join(names, ", "))
	b.WriteString(renderDice(output.Result.Dice))

	result := output.Result
	if result.Modifier != 0 {
		fmt.Fprintf(&b, " %+d", result.Modifier)
	}
	fmt.Fprintf(&b, " = **%d**", result.Total())
	if result.Rerolls > 0 {
		fmt.Fprintf(&b, " (%d rerolls left)", result.Rerolls)
	}
	return b.String()
}

// renderDice formats individual die faces as emoji.
func renderDice(faces []int) string {
	if len(faces) == 0 {
		return "no dice"
	}
	parts := make([]string, 0, len(faces))
	for _, face := range faces {
		if face >= 1 && face <= dice.Faces {
			parts = append(parts, faceEmoji[face])
		} else {
			parts = append(parts, strconv.Itoa(face))
		}
	}
	return strings.Join(parts, " ")
}

func (o *orchestrator) handlePrismAdd(ctx context.Context, inv *command.Invocation) error {
	grant, err := o.resolveGrant(ctx, inv)
	if err != nil {
		return err
	}

	c := grant.target
	if c.OwnsPrism(grant.prism.Name) {
		return errors.Commandf("**%s** already owns prism %s", c.Name, grant.prism.Name)
	}
	c.Prisms = append(c.Prisms, grant.prism.Name)

	if err := o.saveSheets(ctx, grant.sheets); err != nil {
		return err
	}
	return o.reply(ctx, inv, fmt.Sprintf("%s **%s** gains the prism **%s**.",
		chat.Mention(grant.player.ID), c.Name, grant.prism.Name))
}

func (o *orchestrator) handlePrismRemove(ctx context.Context, inv *command.Invocation) error {
	grant, err := o.resolveGrant(ctx, inv)
	if err != nil {
		return err
	}

	c := grant.target
	found := -1
	for i, name := range c.Prisms {
		if name == grant.prism.Name {
			found = i
			break
		}
	}
	if found < 0 {
		return errors.Commandf("**%s** does not own prism %s", c.Name, grant.prism.Name)
	}
	c.Prisms = append(c.Prisms[:found], c.Prisms[found+1:]...)

	if err := o.saveSheets(ctx, grant.sheets); err != nil {
		return err
	}
	return o.reply(ctx, inv, fmt.Sprintf("%s **%s** loses the prism **%s**.",
		chat.Mention(grant.player.ID), c.Name, grant.prism.Name))
}

// grantTarget is the resolved subject of a prism grant or revocation.
type grantTarget struct {
	sheets *character.PlayerSheets
	target *entities.Character
	prism  *prism.Prism
	player chat.User
}

// resolveGrant resolves the catalog prism named by the command and the
// named character among the mentioned player's sheets. The character need
// not be the player's active one.
func (o *orchestrator) resolveGrant(ctx context.Context, inv *command.Invocation) (*grantTarget, error) {
	query := inv.String("prism")
	p, ok := o.prisms.Find(query)
	if !ok {
		return nil, errors.Commandf("unknown prism %q", query)
	}

	msg := inv.Message
	if len(msg.Mentions) == 0 {
		return nil, errors.Command("mention the player whose character to target")
	}
	player := msg.Mentions[0]

	sheets, err := o.loadSheets(ctx, msg.GuildID, player.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Commandf("%s has no characters", player.Name)
		}
		return nil, err
	}

	c, err := findCharacter(sheets, inv.String("character"))
	if err != nil {
		return nil, err
	}
	return &grantTarget{sheets: sheets, target: c, prism: p, player: player}, nil
}

// findCharacter looks up a character within one player's sheets by
// case-insensitive name prefix. Exact matches win; otherwise the first
// prefix match in name order.
func findCharacter(sheets *character.PlayerSheets, query string) (*entities.Character, error) {
	key := entities.CharacterID(query)
	if key == "" {
		return nil, errors.Command("name the character to target")
	}
	if c, ok := sheets.Characters[key]; ok {
		return c, nil
	}

	keys := make([]string, 0, len(sheets.Characters))
	for k := range sheets.Characters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.HasPrefix(k, key) {
			return sheets.Characters[k], nil
		}
	}
	return nil, errors.Commandf("no character matching %q", query)
}

func (o *orchestrator) handleRoll(ctx context.Context, inv *command.Invocation) error {
	count := inv.Int("dice")
	if count < 1 || count > maxPlainDice {
		return errors.Commandf("dice count must be between 1 and %d", maxPlainDice)
	}

	roll, err := rpgdice.NewRoll(count, dice.Faces)
	if err != nil {
		return errors.Wrap(err, "failed to roll dice")
	}

	faces := parseRollFaces(roll.GetDescription())
	total := roll.GetValue()

	msg := inv.Message
	return o.reply(ctx, inv, fmt.Sprintf("**%s** rolls %dd%d: %s = **%d**",
		msg.Author.Name, count, dice.Faces, renderDice(faces), total))
}

// parseRollFaces extracts individual die values from a toolkit roll
// description like "+2d6[3,4]=7".
func parseRollFaces(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var faces []int
	for _, part := range strings.Split(description[start+1:end], ",") {
		if face, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			faces = append(faces, face)
		}
	}
	return faces
}
