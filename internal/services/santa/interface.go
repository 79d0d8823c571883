package santa

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/santa/internal/services/santa Service

import "context"

// Service defines the Secret Santa lifecycle operations
type Service interface {
	// CreateSecretSanta creates a Secret Santa for an event
	CreateSecretSanta(ctx context.Context, input *CreateSecretSantaInput) (*CreateSecretSantaOutput, error)

	// GetSecretSanta returns a Secret Santa by ID, without assignment data
	GetSecretSanta(ctx context.Context, input *GetSecretSantaInput) (*GetSecretSantaOutput, error)

	// GetSecretSantaByEvent returns the Secret Santa of an event, without assignment data
	GetSecretSantaByEvent(ctx context.Context, input *GetSecretSantaByEventInput) (*GetSecretSantaOutput, error)

	// AddParticipants adds participants. Existing participants are ignored.
	AddParticipants(ctx context.Context, input *AddParticipantsInput) (*AddParticipantsOutput, error)

	// RemoveParticipant removes a participant and every exclusion naming them
	RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error)

	// SetExclusions replaces a participant's exclusions
	SetExclusions(ctx context.Context, input *SetExclusionsInput) (*ExclusionsOutput, error)

	// AddExclusion forbids one recipient for a participant
	AddExclusion(ctx context.Context, input *AddExclusionInput) (*ExclusionsOutput, error)

	// RemoveExclusion lifts one exclusion
	RemoveExclusion(ctx context.Context, input *RemoveExclusionInput) (*ExclusionsOutput, error)

	// CheckFeasibility reports whether a draw could succeed right now
	CheckFeasibility(ctx context.Context, input *CheckFeasibilityInput) (*CheckFeasibilityOutput, error)

	// Start draws names and moves the Secret Santa to started
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Cancel discards the draw and moves the Secret Santa back to created
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)

	// DeleteSecretSanta removes a Secret Santa and its draw
	DeleteSecretSanta(ctx context.Context, input *DeleteSecretSantaInput) (*DeleteSecretSantaOutput, error)

	// GetMyAssignment returns the recipient drawn for one participant
	GetMyAssignment(ctx context.Context, input *GetMyAssignmentInput) (*GetMyAssignmentOutput, error)
}
