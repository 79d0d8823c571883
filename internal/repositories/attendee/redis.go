package attendee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/santa/internal/models"
	"github.com/redis/go-redis/v9"
)

const attendeeKeyPrefix = "attendee:"

// ErrAttendeeNotFound is returned when an attendee is not found
var ErrAttendeeNotFound = errors.New("attendee not found")

// Config holds configuration for the Redis attendee repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed attendee repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveAttendee persists an attendee to Redis
func (r *redisRepository) SaveAttendee(ctx context.Context, input *SaveAttendeeInput) error {
	if input == nil || input.Attendee == nil {
		return errors.New("input and attendee cannot be nil")
	}

	if input.Attendee.ID == "" {
		return errors.New("attendee ID cannot be empty")
	}

	attendeeJSON, err := json.Marshal(input.Attendee)
	if err != nil {
		return fmt.Errorf("failed to marshal attendee: %w", err)
	}

	if err := r.client.Set(ctx, attendeeKeyPrefix+input.Attendee.ID, attendeeJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save attendee: %w", err)
	}

	return nil
}

// GetAttendee retrieves an attendee by ID from Redis
func (r *redisRepository) GetAttendee(ctx context.Context, input *GetAttendeeInput) (*models.Attendee, error) {
	if input == nil || input.AttendeeID == "" {
		return nil, errors.New("input and attendee ID cannot be empty")
	}

	attendeeJSON, err := r.client.Get(ctx, attendeeKeyPrefix+input.AttendeeID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAttendeeNotFound
		}
		return nil, fmt.Errorf("failed to get attendee: %w", err)
	}

	var attendee models.Attendee
	if err := json.Unmarshal(attendeeJSON, &attendee); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attendee: %w", err)
	}

	return &attendee, nil
}
