package selection

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-loadout/internal/errors"
	"github.com/KirkDiggler/rpg-loadout/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-loadout/internal/redis"
)

const (
	// Key patterns: selection:{profile_id}:disabled (set) and
	// selection:{profile_id}:updated_at (string)
	keyPrefix        = "selection:"
	disabledSuffix   = ":disabled"
	updatedAtSuffix  = ":updated_at"
	errProfileIDNone = "profile ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for selections
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get reads the disabled set and its timestamp in one round trip
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	pipe := r.client.Pipeline()
	updatedCmd := pipe.Get(ctx, updatedAtKey(input.ProfileID))
	membersCmd := pipe.SMembers(ctx, disabledKey(input.ProfileID))
	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read selection from Redis")
	}

	raw, err := updatedCmd.Result()
	if err == redis.Nil {
		return nil, errors.NotFoundf("no selection saved for profile %s", input.ProfileID)
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read selection timestamp")
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "corrupt selection timestamp")
	}

	members, err := membersCmd.Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read disabled characters")
	}

	return &GetOutput{
		Selection: &Selection{
			ProfileID: input.ProfileID,
			Disabled:  normalize(members),
			UpdatedAt: updatedAt,
		},
	}, nil
}

// Update swaps the disabled set atomically
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	disabled := normalize(input.Disabled)
	now := r.clock.Now()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, disabledKey(input.ProfileID))
		if len(disabled) > 0 {
			members := make([]interface{}, len(disabled))
			for i, k := range disabled {
				members[i] = k
			}
			pipe.SAdd(ctx, disabledKey(input.ProfileID), members...)
		}
		pipe.Set(ctx, updatedAtKey(input.ProfileID), now.Format(time.RFC3339Nano), 0)
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store selection in Redis")
	}

	return &UpdateOutput{
		Selection: &Selection{
			ProfileID: input.ProfileID,
			Disabled:  disabled,
			UpdatedAt: now,
		},
	}, nil
}

// Delete removes both keys of the profile
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ProfileID == "" {
		return nil, errors.InvalidArgument(errProfileIDNone)
	}

	removed, err := r.client.Del(ctx, disabledKey(input.ProfileID), updatedAtKey(input.ProfileID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete selection from Redis")
	}

	return &DeleteOutput{Existed: removed > 0}, nil
}

func disabledKey(profileID string) string {
	return fmt.Sprintf("%s%s%s", keyPrefix, profileID, disabledSuffix)
}

func updatedAtKey(profileID string) string {
	return fmt.Sprintf("%s%s%s", keyPrefix, profileID, updatedAtSuffix)
}
