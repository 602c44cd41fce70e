// Package chat defines the interfaces this core consumes from the chat
// platform. The bot never talks to a chat client directly; everything
// goes through these collaborators so the engine stays platform-agnostic
// and testable.
package chat

import "context"

//go:generate mockgen -destination=mock/mock_chat.go -package=chatmock github.com/fadedcity/prismbot/internal/chat Messenger,Directory

// User identifies a chat platform user.
type User struct {
	ID   string
	Name string
}

// Message is an inbound chat message event.
type Message struct {
	ID        string
	GuildID   string
	ChannelID string
	Room      string // channel display name, matched against scenario rooms
	Author    User
	Content   string
	Mentions  []User
}

// Reaction is an inbound reaction-added event.
type Reaction struct {
	MessageID string
	ChannelID string
	GuildID   string
	UserID    string
	Emoji     string
}

// Messenger renders output back to the chat platform.
type Messenger interface {
	// SendMessage posts text to a channel and returns the new message's ID.
	SendMessage(ctx context.Context, channelID, content string) (string, error)

	// React adds a reaction emoji to a message.
	React(ctx context.Context, channelID, messageID, emoji string) error

	// DeleteMessage removes a message, used to clean up command invocations.
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}

// Directory answers identity questions about chat users.
type Directory interface {
	// IsPrivileged reports whether the user holds the elevated (GM) role.
	IsPrivileged(ctx context.Context, guildID, userID string) (bool, error)
}

// Mention formats a user mention for message content.
func Mention(userID string) string {
	return "<@" + userID + ">"
}
