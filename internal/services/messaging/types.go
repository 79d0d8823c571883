package messaging

import "github.com/KirkDiggler/santa/internal/random"

// ErrorType categorises failures shown to users
type ErrorType string

const (
	ErrorTypeNotFound             ErrorType = "not_found"
	ErrorTypeAlreadyExists        ErrorType = "already_exists"
	ErrorTypeInvalidState         ErrorType = "invalid_state"
	ErrorTypeInvalidConstraint    ErrorType = "invalid_constraint"
	ErrorTypeNotEnough            ErrorType = "not_enough_participants"
	ErrorTypeInfeasible           ErrorType = "infeasible"
	ErrorTypeNotDrawnYet          ErrorType = "not_drawn_yet"
	ErrorTypeConfirmationRequired ErrorType = "confirmation_required"
	ErrorTypeNotOwner             ErrorType = "not_owner"
	ErrorTypeTryAgain             ErrorType = "try_again"
	ErrorTypeUnknown              ErrorType = "unknown"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Random picks among message variants. Optional.
	Random random.Source
}

// GetCreatedMessageInput contains parameters for the creation announcement
type GetCreatedMessageInput struct {
	// OwnerName is the organiser's display name
	OwnerName string

	// Description is the Secret Santa description
	Description string

	// Budget is the optional budget text
	Budget string
}

// GetCreatedMessageOutput contains the creation announcement
type GetCreatedMessageOutput struct {
	Title   string
	Message string
}

// GetJoinMessageInput contains parameters for a join message
type GetJoinMessageInput struct {
	// ParticipantName is the display name of the person joining
	ParticipantName string

	// AlreadyJoined indicates the person was already taking part
	AlreadyJoined bool

	// ParticipantCount is the number of participants after joining
	ParticipantCount int
}

// GetJoinMessageOutput contains the join message
type GetJoinMessageOutput struct {
	Message string
}

// GetDrawCompletedMessageInput contains parameters for the draw notification
type GetDrawCompletedMessageInput struct {
	// ParticipantName is the display name of the person notified
	ParticipantName string

	// Description is the Secret Santa description
	Description string

	// Budget is the optional budget text
	Budget string
}

// GetDrawCompletedMessageOutput contains the draw notification
type GetDrawCompletedMessageOutput struct {
	Message string
}

// GetDrawCancelledMessageInput contains parameters for the cancellation notification
type GetDrawCancelledMessageInput struct {
	// ParticipantName is the display name of the person notified
	ParticipantName string

	// Description is the Secret Santa description
	Description string
}

// GetDrawCancelledMessageOutput contains the cancellation notification
type GetDrawCancelledMessageOutput struct {
	Message string
}

// GetRevealMessageInput contains parameters for the private reveal
type GetRevealMessageInput struct {
	// RecipientName is the display name of the drawn recipient
	RecipientName string

	// Budget is the optional budget text
	Budget string
}

// GetRevealMessageOutput contains the private reveal
type GetRevealMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// Detail is appended when the error carries actionable information
	Detail string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
