package reroll

import (
	"context"
	"sync"

	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/pkg/clock"
)

// Sessions are keyed by live chat message IDs and worthless across
// restarts, so the table is process-local by design. The interface still
// admits another backend if that ever changes.

// MemoryConfig contains configuration for the in-memory session table.
type MemoryConfig struct {
	Clock clock.Clock
}

type memoryRepository struct {
	clock clock.Clock

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewMemory creates the in-memory reroll session table. A nil config or
// clock falls back to the real clock.
func NewMemory(cfg *MemoryConfig) Repository {
	c := clock.Clock(nil)
	if cfg != nil {
		c = cfg.Clock
	}
	if c == nil {
		c = clock.New()
	}

	return &memoryRepository{
		clock:    c,
		sessions: make(map[string]*Session),
	}
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument("session cannot be nil")
	}
	if input.Session.MessageID == "" {
		return nil, errors.InvalidArgument("message ID cannot be empty")
	}
	if input.Session.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if input.Session.Rerolls < 1 {
		return nil, errors.InvalidArgument("a session with no remaining rerolls must not be created")
	}

	session := *input.Session
	session.CreatedAt = r.clock.Now()

	r.mu.Lock()
	r.sessions[session.MessageID] = &session
	r.mu.Unlock()

	return &PutOutput{Session: &session}, nil
}

func (r *memoryRepository) Consume(_ context.Context, input ConsumeInput) (*ConsumeOutput, error) {
	if input.MessageID == "" {
		return nil, errors.InvalidArgument("message ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[input.MessageID]
	if !ok {
		return nil, errors.NotFoundf("no reroll session for message %s", input.MessageID)
	}
	if session.UserID != input.UserID {
		// Someone else's reaction; the session stays available to its owner.
		return nil, errors.NotFoundf("no reroll session for message %s", input.MessageID)
	}

	delete(r.sessions, input.MessageID)
	return &ConsumeOutput{Session: session}, nil
}
