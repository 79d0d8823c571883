package secret_santa

import "github.com/KirkDiggler/santa/internal/models"

type SaveSecretSantaInput struct {
	SecretSanta *models.SecretSanta

	// ExpectedVersion is the version the caller loaded, zero when creating
	ExpectedVersion int64

	// Assignment maps giver to recipient. Required when the status is started,
	// forbidden otherwise.
	Assignment map[string]string
}

type GetSecretSantaInput struct {
	SecretSantaID string
}

type GetSecretSantaByEventInput struct {
	EventID string
}

type GetRecipientInput struct {
	SecretSantaID string
	GiverID       string
}

type GetRecipientOutput struct {
	RecipientID string
}

type DeleteSecretSantaInput struct {
	SecretSantaID string

	// ExpectedVersion guards against deleting a concurrently modified
	// Secret Santa. Zero skips the check.
	ExpectedVersion int64
}
