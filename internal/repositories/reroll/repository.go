// Package reroll provides the session table for pending reroll
// reactions. A session associates a rendered roll message with the one
// user allowed to consume a single reroll, plus the invocation snapshot
// needed to replay the roll.
package reroll

import (
	"context"
	"time"
)

// Session is a pending reroll opportunity. It is plain data rather than
// a captured closure so the table can be inspected in tests; replaying
// is the orchestrator's job.
type Session struct {
	// MessageID keys the session: the message that rendered the roll
	MessageID string

	// Where and for whom the roll was made
	ChannelID string
	GuildID   string
	UserID    string

	// Tokens is the prism invocation to replay, inline arguments included
	Tokens []string

	// Rerolls is the token count remaining when the roll was rendered;
	// the replay runs with one fewer
	Rerolls int

	CreatedAt time.Time
}

// PutInput contains parameters for registering a session
type PutInput struct {
	Session *Session
}

// PutOutput contains the result of registering a session
type PutOutput struct {
	Session *Session
}

// ConsumeInput contains parameters for consuming a session
type ConsumeInput struct {
	MessageID string
	UserID    string
}

// ConsumeOutput contains the consumed session
type ConsumeOutput struct {
	Session *Session
}

// Repository defines the interface for the reroll session table
type Repository interface {
	// Put registers a session, replacing any session for the same message
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Consume removes and returns the session for the message, but only
	// when the requesting user matches; a mismatched user leaves the
	// session in place and reports NotFound, the same as an absent
	// session. At most one Consume per session ever succeeds.
	Consume(ctx context.Context, input ConsumeInput) (*ConsumeOutput, error)
}
