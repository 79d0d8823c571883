package attendee

import "github.com/KirkDiggler/santa/internal/models"

type SaveAttendeeInput struct {
	Attendee *models.Attendee
}

type GetAttendeeInput struct {
	AttendeeID string
}
