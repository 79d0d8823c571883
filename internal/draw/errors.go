package draw

import (
	"fmt"
	"strings"
)

// Error is a custom error type for draw errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidConstraint     Error = "invalid exclusion"
	ErrInvalidParticipant    Error = "invalid participant"
	ErrNotEnoughParticipants Error = "not enough participants"
	ErrInfeasible            Error = "no valid assignment exists"
	ErrInvalidAssignment     Error = "invalid assignment"
	ErrNilConfig             Error = "config cannot be nil"
	ErrNilRandom             Error = "random source cannot be nil"
	ErrNilGraph              Error = "graph cannot be nil"
)

// InfeasibleError reports that the exclusions admit no assignment at all.
// It matches ErrInfeasible with errors.Is.
type InfeasibleError struct {
	// Reason is a human readable description of the blocking constraint
	Reason string

	// Participants are the over-constrained participants
	Participants []string
}

// Error implements the error interface
func (e *InfeasibleError) Error() string {
	if e.Reason == "" {
		return string(ErrInfeasible)
	}
	return fmt.Sprintf("%s: %s", ErrInfeasible, e.Reason)
}

// Is lets errors.Is match the ErrInfeasible kind
func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}

func newHallViolation(givers []string, recipients int) *InfeasibleError {
	if len(givers) == 1 {
		return &InfeasibleError{
			Reason:       fmt.Sprintf("participant %s has no allowed recipient left", givers[0]),
			Participants: givers,
		}
	}

	return &InfeasibleError{
		Reason: fmt.Sprintf("%d participants (%s) can only give to %d distinct recipients",
			len(givers), strings.Join(givers, ", "), recipients),
		Participants: givers,
	}
}
