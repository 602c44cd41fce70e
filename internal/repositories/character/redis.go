package character

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/fadedcity/prismbot/internal/errors"
	"github.com/fadedcity/prismbot/internal/pkg/clock"
	redisclient "github.com/fadedcity/prismbot/internal/redis"
)

const (
	// Key patterns: sheet:{guild_id}:{user_id}, sheet:guild:{guild_id}
	sheetKeyPrefix   = "sheet:"
	guildIndexPrefix = "sheet:guild:"

	// Error messages
	errSheetsNil    = "sheets cannot be nil"
	errGuildIDEmpty = "guild ID cannot be empty"
	errUserIDEmpty  = "user ID cannot be empty"
)

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed character sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	key := r.buildKey(input.GuildID, input.UserID)

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no sheets for user %s", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to get sheets from Redis")
	}

	var sheets PlayerSheets
	if err := json.Unmarshal([]byte(data), &sheets); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheets")
	}

	return &GetOutput{Sheets: &sheets}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Sheets == nil {
		return nil, errors.InvalidArgument(errSheetsNil)
	}
	if input.Sheets.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}
	if input.Sheets.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	now := r.clock.Now()
	if input.Sheets.CreatedAt.IsZero() {
		input.Sheets.CreatedAt = now
	}
	input.Sheets.UpdatedAt = now

	data, err := json.Marshal(input.Sheets)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheets")
	}

	key := r.buildKey(input.Sheets.GuildID, input.Sheets.UserID)

	// Write the record and maintain the guild index atomically
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // sheets do not expire
	pipe.SAdd(ctx, guildIndexPrefix+input.Sheets.GuildID, input.Sheets.UserID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save sheets to Redis")
	}

	return &SaveOutput{Sheets: input.Sheets}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.GuildID == "" {
		return nil, errors.InvalidArgument(errGuildIDEmpty)
	}

	userIDs, err := r.client.SMembers(ctx, guildIndexPrefix+input.GuildID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list guild index")
	}

	output := &ListOutput{Sheets: make([]*PlayerSheets, 0, len(userIDs))}
	for _, userID := range userIDs {
		getOutput, err := r.Get(ctx, GetInput{GuildID: input.GuildID, UserID: userID})
		if err != nil {
			if errors.IsNotFound(err) {
				// Index entry without a record; skip it
				slog.Warn("dangling guild index entry", "guild_id", input.GuildID, "user_id", userID)
				continue
			}
			return nil, errors.Wrapf(err, "failed to load sheets for user %s", userID)
		}
		output.Sheets = append(output.Sheets, getOutput.Sheets)
	}

	return output, nil
}

// buildKey creates the Redis key for a player's sheets
func (r *redisRepository) buildKey(guildID, userID string) string {
	return fmt.Sprintf("%s%s:%s", sheetKeyPrefix, guildID, userID)
}
