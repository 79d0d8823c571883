package secret_santa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/santa/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	secretSantaKeyPrefix = "secret_santa:"
	assignmentKeySuffix  = ":assignment"
	eventKeyPrefix       = "event_secret_santa:"
)

var (
	// ErrSecretSantaNotFound is returned when a Secret Santa is not found
	ErrSecretSantaNotFound = errors.New("secret santa not found")

	// ErrAssignmentNotFound is returned when no recipient is stored for a giver
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrVersionConflict is returned when the stored version moved since it was loaded
	ErrVersionConflict = errors.New("secret santa was modified concurrently")

	// ErrAlreadyExists is returned when creating a Secret Santa whose ID is taken
	ErrAlreadyExists = errors.New("secret santa already exists")

	// ErrEventTaken is returned when the event already has a Secret Santa
	ErrEventTaken = errors.New("event already has a secret santa")

	// ErrAssignmentMismatch is returned when the assignment does not fit the status and participants
	ErrAssignmentMismatch = errors.New("assignment does not match the secret santa")
)

// Config holds configuration for the Redis Secret Santa repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// SealKey encrypts stored recipients when set. Must be 32 bytes.
	SealKey []byte
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	sealer *sealer
}

// NewRedis creates a new Redis-backed Secret Santa repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	s, err := newSealer(cfg.SealKey)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		sealer: s,
	}, nil
}

// SaveSecretSanta persists a Secret Santa under WATCH so that a concurrent
// writer holding the same version loses
func (r *redisRepository) SaveSecretSanta(ctx context.Context, input *SaveSecretSantaInput) error {
	if input == nil || input.SecretSanta == nil {
		return errors.New("input and secret santa cannot be nil")
	}

	santa := input.SecretSanta
	if santa.ID == "" || santa.EventID == "" {
		return errors.New("secret santa ID and event ID cannot be empty")
	}

	if err := checkAssignment(santa, input.Assignment); err != nil {
		return err
	}

	next := *santa
	next.Version = input.ExpectedVersion + 1

	santaJSON, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal secret santa: %w", err)
	}

	sealed := make(map[string]interface{}, len(input.Assignment))
	for giver, recipient := range input.Assignment {
		value, err := r.sealer.seal(santa.ID, giver, recipient)
		if err != nil {
			return err
		}
		sealed[giver] = value
	}

	santaKey := secretSantaKey(santa.ID)
	assignKey := assignmentKey(santa.ID)
	indexKey := eventKey(santa.EventID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		if err := r.checkVersion(ctx, tx, santa, input.ExpectedVersion); err != nil {
			return err
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, santaKey, santaJSON, 0)
			pipe.Set(ctx, indexKey, santa.ID, 0)
			pipe.Del(ctx, assignKey)
			if len(sealed) > 0 {
				pipe.HSet(ctx, assignKey, sealed)
			}
			return nil
		})
		return err
	}, santaKey, indexKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save secret santa: %w", err)
	}

	santa.Version = next.Version
	return nil
}

// GetSecretSanta retrieves a Secret Santa by ID from Redis
func (r *redisRepository) GetSecretSanta(ctx context.Context, input *GetSecretSantaInput) (*models.SecretSanta, error) {
	if input == nil || input.SecretSantaID == "" {
		return nil, errors.New("input and secret santa ID cannot be empty")
	}

	return r.get(ctx, r.client, input.SecretSantaID)
}

// GetSecretSantaByEvent retrieves the Secret Santa of an event from Redis
func (r *redisRepository) GetSecretSantaByEvent(ctx context.Context, input *GetSecretSantaByEventInput) (*models.SecretSanta, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	santaID, err := r.client.Get(ctx, eventKey(input.EventID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSecretSantaNotFound
		}
		return nil, fmt.Errorf("failed to get secret santa ID for event: %w", err)
	}

	return r.get(ctx, r.client, santaID)
}

// GetRecipient returns the recipient of a single giver
func (r *redisRepository) GetRecipient(ctx context.Context, input *GetRecipientInput) (*GetRecipientOutput, error) {
	if input == nil || input.SecretSantaID == "" || input.GiverID == "" {
		return nil, errors.New("input, secret santa ID and giver ID cannot be empty")
	}

	value, err := r.client.HGet(ctx, assignmentKey(input.SecretSantaID), input.GiverID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	recipient, err := r.sealer.open(input.SecretSantaID, input.GiverID, value)
	if err != nil {
		return nil, err
	}

	return &GetRecipientOutput{
		RecipientID: recipient,
	}, nil
}

// DeleteSecretSanta removes a Secret Santa and everything it owns in one transaction
func (r *redisRepository) DeleteSecretSanta(ctx context.Context, input *DeleteSecretSantaInput) error {
	if input == nil || input.SecretSantaID == "" {
		return errors.New("input and secret santa ID cannot be empty")
	}

	santaKey := secretSantaKey(input.SecretSantaID)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		santa, err := r.get(ctx, tx, input.SecretSantaID)
		if err != nil {
			return err
		}

		if input.ExpectedVersion != 0 && santa.Version != input.ExpectedVersion {
			return ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, santaKey, assignmentKey(santa.ID), eventKey(santa.EventID))
			return nil
		})
		return err
	}, santaKey)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		if errors.Is(err, ErrSecretSantaNotFound) || errors.Is(err, ErrVersionConflict) {
			return err
		}
		return fmt.Errorf("failed to delete secret santa: %w", err)
	}

	return nil
}

func (r *redisRepository) get(ctx context.Context, c redis.Cmdable, santaID string) (*models.SecretSanta, error) {
	santaJSON, err := c.Get(ctx, secretSantaKey(santaID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSecretSantaNotFound
		}
		return nil, fmt.Errorf("failed to get secret santa: %w", err)
	}

	var santa models.SecretSanta
	if err := json.Unmarshal(santaJSON, &santa); err != nil {
		return nil, fmt.Errorf("failed to unmarshal secret santa: %w", err)
	}

	return &santa, nil
}

// checkVersion runs inside the WATCH and compares the stored version with
// the one the caller loaded
func (r *redisRepository) checkVersion(ctx context.Context, tx *redis.Tx, santa *models.SecretSanta, expected int64) error {
	stored, err := r.get(ctx, tx, santa.ID)
	if err != nil && !errors.Is(err, ErrSecretSantaNotFound) {
		return err
	}

	if stored == nil {
		if expected != 0 {
			return ErrSecretSantaNotFound
		}

		owner, err := tx.Get(ctx, eventKey(santa.EventID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get secret santa ID for event: %w", err)
		}
		if err == nil && owner != santa.ID {
			return ErrEventTaken
		}
		return nil
	}

	if expected == 0 {
		return ErrAlreadyExists
	}

	if stored.Version != expected {
		return ErrVersionConflict
	}

	return nil
}

// checkAssignment enforces that an assignment is stored exactly when the
// draw has happened and that it covers every participant once
func checkAssignment(santa *models.SecretSanta, assignment map[string]string) error {
	if !santa.Status.IsStarted() {
		if len(assignment) > 0 {
			return fmt.Errorf("%w: status %s cannot carry an assignment", ErrAssignmentMismatch, santa.Status)
		}
		return nil
	}

	if len(assignment) != len(santa.Participants) {
		return fmt.Errorf("%w: %d pairs for %d participants", ErrAssignmentMismatch, len(assignment), len(santa.Participants))
	}

	received := make(map[string]bool, len(assignment))
	for _, p := range santa.Participants {
		recipient, ok := assignment[p.ID]
		if !ok {
			return fmt.Errorf("%w: participant %s has no recipient", ErrAssignmentMismatch, p.ID)
		}
		if santa.Participant(recipient) == nil || received[recipient] {
			return fmt.Errorf("%w: recipient of %s is not a unique participant", ErrAssignmentMismatch, p.ID)
		}
		received[recipient] = true
	}

	return nil
}

func secretSantaKey(santaID string) string {
	return fmt.Sprintf("%s%s", secretSantaKeyPrefix, santaID)
}

func assignmentKey(santaID string) string {
	return fmt.Sprintf("%s%s%s", secretSantaKeyPrefix, santaID, assignmentKeySuffix)
}

func eventKey(eventID string) string {
	return fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
}
