package santa

import (
	"time"

	"github.com/KirkDiggler/santa/internal/common/clock"
	"github.com/KirkDiggler/santa/internal/common/uuid"
	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/models"
	santaRepo "github.com/KirkDiggler/santa/internal/repositories/secret_santa"
	"github.com/KirkDiggler/santa/internal/services/notifications"
	"go.uber.org/zap"
)

// DefaultMinParticipants is the smallest group that can be drawn
const DefaultMinParticipants = 3

// Config holds configuration for the Secret Santa service
type Config struct {
	// Repository persists Secret Santas and their assignments
	Repository santaRepo.Repository

	// Generator draws assignments
	Generator *draw.Generator

	// Notifier tells participants about draws. Optional.
	Notifier notifications.Notifier

	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger *zap.Logger

	// MinParticipants needed to start. Zero means DefaultMinParticipants.
	MinParticipants int
}

// CreateSecretSantaInput contains parameters for creating a Secret Santa
type CreateSecretSantaInput struct {
	// EventID is the event the Secret Santa belongs to
	EventID string

	// OwnerID is the organiser
	OwnerID string

	Description string
	Budget      string
}

// CreateSecretSantaOutput contains the result of creating a Secret Santa
type CreateSecretSantaOutput struct {
	SecretSantaID string
}

// GetSecretSantaInput contains parameters for fetching a Secret Santa
type GetSecretSantaInput struct {
	SecretSantaID string
}

// GetSecretSantaByEventInput contains parameters for fetching an event's Secret Santa
type GetSecretSantaByEventInput struct {
	EventID string
}

// GetSecretSantaOutput carries the aggregate. It never includes assignments.
type GetSecretSantaOutput struct {
	SecretSanta *models.SecretSanta
}

// AddParticipantsInput contains parameters for adding participants
type AddParticipantsInput struct {
	SecretSantaID  string
	ParticipantIDs []string
}

// AddParticipantsOutput contains the result of adding participants
type AddParticipantsOutput struct {
	// Added are the IDs that were not participants before
	Added []string

	// ParticipantCount is the number of participants afterwards
	ParticipantCount int
}

// RemoveParticipantInput contains parameters for removing a participant
type RemoveParticipantInput struct {
	SecretSantaID string
	ParticipantID string
}

// RemoveParticipantOutput contains the result of removing a participant
type RemoveParticipantOutput struct {
	ParticipantCount int
}

// SetExclusionsInput contains parameters for replacing a participant's exclusions
type SetExclusionsInput struct {
	SecretSantaID string
	ParticipantID string
	ExcludedIDs   []string
}

// AddExclusionInput contains parameters for adding one exclusion
type AddExclusionInput struct {
	SecretSantaID string
	ParticipantID string
	ExcludedID    string
}

// RemoveExclusionInput contains parameters for removing one exclusion
type RemoveExclusionInput struct {
	SecretSantaID string
	ParticipantID string
	ExcludedID    string
}

// ExclusionsOutput holds a participant's exclusions after a change
type ExclusionsOutput struct {
	ParticipantID string

	// ExcludedIDs are sorted
	ExcludedIDs []string
}

// CheckFeasibilityInput contains parameters for a feasibility check
type CheckFeasibilityInput struct {
	SecretSantaID string
}

// CheckFeasibilityOutput reports whether a draw could succeed
type CheckFeasibilityOutput struct {
	Feasible bool

	// Reason explains why not. Empty when feasible.
	Reason string

	// OverConstrained are the participants blocking the draw
	OverConstrained []string
}

// StartInput contains parameters for drawing names
type StartInput struct {
	SecretSantaID string
}

// StartOutput contains the result of drawing names. It never carries the assignment.
type StartOutput struct {
	ParticipantCount int
	DrawnAt          time.Time
}

// CancelInput contains parameters for cancelling a draw
type CancelInput struct {
	SecretSantaID string
}

// CancelOutput contains the result of cancelling a draw
type CancelOutput struct {
	ParticipantCount int
}

// DeleteSecretSantaInput contains parameters for deleting a Secret Santa
type DeleteSecretSantaInput struct {
	SecretSantaID string

	// Confirm must be set to delete after names were drawn
	Confirm bool
}

// DeleteSecretSantaOutput contains the result of deleting a Secret Santa
type DeleteSecretSantaOutput struct {
	// WasStarted reports whether a draw was discarded
	WasStarted bool
}

// GetMyAssignmentInput contains parameters for the private recipient lookup
type GetMyAssignmentInput struct {
	SecretSantaID string
	ParticipantID string
}

// GetMyAssignmentOutput carries exactly one recipient
type GetMyAssignmentOutput struct {
	RecipientID string
}
