package models

import (
	"time"
)

// Participant represents one attendee taking part in a Secret Santa
type Participant struct {
	// ID is the stable external reference of the attendee
	ID string

	// AddedAt is when the participant joined
	AddedAt time.Time

	// Exclusions are the participant IDs this participant must not give to
	Exclusions []string
}
