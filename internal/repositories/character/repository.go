// Package character provides the repository interface and types for
// player character sheets. Each player owns a bundle of sheets per guild
// with at most one active character.
package character

import (
	"context"
	"time"

	"github.com/fadedcity/prismbot/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/fadedcity/prismbot/internal/repositories/character Repository

// PlayerSheets is one player's character bundle within a guild.
type PlayerSheets struct {
	// GuildID and UserID key the bundle
	GuildID string
	UserID  string

	// Active is the sheet key of the selected character, empty when none
	Active string

	// Characters maps sheet keys (normalized names) to sheets
	Characters map[string]*entities.Character

	// PBKDF2 password material for sheet management, hex encoded
	PasswordHash string
	PasswordSalt string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveCharacter returns the selected character, if any.
func (s *PlayerSheets) ActiveCharacter() (*entities.Character, bool) {
	if s == nil || s.Active == "" {
		return nil, false
	}
	c, ok := s.Characters[s.Active]
	return c, ok
}

// GetInput contains parameters for retrieving a player's sheets
type GetInput struct {
	GuildID string
	UserID  string
}

// GetOutput contains the result of retrieving a player's sheets
type GetOutput struct {
	Sheets *PlayerSheets
}

// SaveInput contains parameters for upserting a player's sheets
type SaveInput struct {
	Sheets *PlayerSheets
}

// SaveOutput contains the result of upserting a player's sheets
type SaveOutput struct {
	Sheets *PlayerSheets
}

// ListInput contains parameters for listing all sheets in a guild
type ListInput struct {
	GuildID string
}

// ListOutput contains the result of listing all sheets in a guild
type ListOutput struct {
	Sheets []*PlayerSheets
}

// Repository defines the interface for character sheet storage
type Repository interface {
	// Get retrieves one player's sheet bundle
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts one player's sheet bundle
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List retrieves every player's sheet bundle in a guild
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
