package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fadedcity/prismbot/internal/chat"
	"github.com/fadedcity/prismbot/internal/pkg/idgen"
)

// consoleGateway is a stand-in chat platform for local play: stdin lines
// become messages from the operator, output renders to stdout. A line of
// the form ":react <messageID> <emoji>" becomes a reaction event instead.
type consoleGateway struct {
	out   io.Writer
	idGen idgen.Generator

	guildID   string
	channelID string
	room      string
	user      chat.User
	gm        bool
}

var mentionPattern = regexp.MustCompile(`<@([^>]+)>`)

func newConsoleGateway(out io.Writer, room, userName string, gm bool) *consoleGateway {
	return &consoleGateway{
		out:       out,
		idGen:     idgen.NewSequential("msg"),
		guildID:   "console",
		channelID: "console",
		room:      room,
		user:      chat.User{ID: userName, Name: userName},
		gm:        gm,
	}
}

// SendMessage prints bot output and assigns it a message ID so reactions
// can target it.
func (g *consoleGateway) SendMessage(_ context.Context, channelID, content string) (string, error) {
	id := g.idGen.Generate()
	fmt.Fprintf(g.out, "[%s] %s\n", id, content)
	return id, nil
}

// React prints the reaction next to the message it targets.
func (g *consoleGateway) React(_ context.Context, _, messageID, emoji string) error {
	fmt.Fprintf(g.out, "[%s] %s\n", messageID, emoji)
	return nil
}

// DeleteMessage notes the deletion; the console has no messages to remove.
func (g *consoleGateway) DeleteMessage(_ context.Context, _, messageID string) error {
	fmt.Fprintf(g.out, "[%s] (deleted)\n", messageID)
	return nil
}

// IsPrivileged reports the operator's GM flag for every user.
func (g *consoleGateway) IsPrivileged(_ context.Context, _, _ string) (bool, error) {
	return g.gm, nil
}

// ReadEvent turns one input line into a message or reaction event. It
// returns nil events on blank lines.
func (g *consoleGateway) ReadEvent(line string) (*chat.Message, *chat.Reaction) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	if rest, ok := strings.CutPrefix(line, ":react "); ok {
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			fmt.Fprintln(g.out, "usage: :react <messageID> <emoji>")
			return nil, nil
		}
		return nil, &chat.Reaction{
			MessageID: fields[0],
			ChannelID: g.channelID,
			GuildID:   g.guildID,
			UserID:    g.user.ID,
			Emoji:     fields[1],
		}
	}

	var mentions []chat.User
	for _, m := range mentionPattern.FindAllStringSubmatch(line, -1) {
		mentions = append(mentions, chat.User{ID: m[1], Name: m[1]})
	}

	return &chat.Message{
		ID:        g.idGen.Generate(),
		GuildID:   g.guildID,
		ChannelID: g.channelID,
		Room:      g.room,
		Author:    g.user,
		Content:   line,
		Mentions:  mentions,
	}, nil
}

// Run pumps stdin events into the handlers until EOF or ctx cancellation.
func (g *consoleGateway) Run(
	ctx context.Context,
	in io.Reader,
	onMessage func(context.Context, *chat.Message) (bool, error),
	onReaction func(context.Context, *chat.Reaction) (bool, error),
) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, reaction := g.ReadEvent(scanner.Text())
		switch {
		case msg != nil:
			if _, err := onMessage(ctx, msg); err != nil {
				return err
			}
		case reaction != nil:
			if _, err := onReaction(ctx, reaction); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
