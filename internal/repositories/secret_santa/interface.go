package secret_santa

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/santa/internal/repositories/secret_santa Repository

import (
	"context"

	"github.com/KirkDiggler/santa/internal/models"
)

// Repository defines the interface for Secret Santa persistence. There is
// deliberately no way to read a whole assignment back.
type Repository interface {
	// SaveSecretSanta persists a Secret Santa and its assignment in one transaction.
	// On success the Secret Santa's Version is advanced.
	SaveSecretSanta(ctx context.Context, input *SaveSecretSantaInput) error

	// GetSecretSanta retrieves a Secret Santa by ID
	GetSecretSanta(ctx context.Context, input *GetSecretSantaInput) (*models.SecretSanta, error)

	// GetSecretSantaByEvent retrieves the Secret Santa of an event
	GetSecretSantaByEvent(ctx context.Context, input *GetSecretSantaByEventInput) (*models.SecretSanta, error)

	// GetRecipient returns the recipient drawn for a single giver
	GetRecipient(ctx context.Context, input *GetRecipientInput) (*GetRecipientOutput, error)

	// DeleteSecretSanta removes a Secret Santa with its assignment and event index
	DeleteSecretSanta(ctx context.Context, input *DeleteSecretSantaInput) error
}
