package attendee

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/santa/internal/repositories/attendee Repository

import (
	"context"

	"github.com/KirkDiggler/santa/internal/models"
)

// Repository is the participant directory
type Repository interface {
	// SaveAttendee persists an attendee
	SaveAttendee(ctx context.Context, input *SaveAttendeeInput) error

	// GetAttendee retrieves an attendee by ID
	GetAttendee(ctx context.Context, input *GetAttendeeInput) (*models.Attendee, error)
}
