package santa

import "github.com/KirkDiggler/santa/internal/draw"

// SantaError is a custom error type for Secret Santa lifecycle errors
type SantaError string

// Error implements the error interface
func (e SantaError) Error() string {
	return string(e)
}

const (
	ErrNotFound             SantaError = "secret santa not found"
	ErrInvalidState         SantaError = "operation not allowed in the current state"
	ErrInvalidInput         SantaError = "invalid input"
	ErrNotDrawnYet          SantaError = "names have not been drawn yet"
	ErrAlreadyExists        SantaError = "event already has a secret santa"
	ErrConfirmationRequired SantaError = "deleting a started secret santa requires confirmation"

	// ErrConcurrentUpdate and ErrStoreFailure are transient, the caller may retry
	ErrConcurrentUpdate SantaError = "secret santa was modified concurrently"
	ErrStoreFailure     SantaError = "secret santa store failure"

	ErrNilConfig              SantaError = "config cannot be nil"
	ErrNilRepository          SantaError = "secret santa repository cannot be nil"
	ErrNilGenerator           SantaError = "generator cannot be nil"
	ErrNilClock               SantaError = "clock cannot be nil"
	ErrNilUUIDGenerator       SantaError = "UUID generator cannot be nil"
	ErrInvalidMinParticipants SantaError = "minimum participants must be at least 2"
)

// Draw errors surface unchanged
const (
	ErrInvalidConstraint     = draw.ErrInvalidConstraint
	ErrInvalidParticipant    = draw.ErrInvalidParticipant
	ErrNotEnoughParticipants = draw.ErrNotEnoughParticipants
	ErrInfeasible            = draw.ErrInfeasible
)
