package models

import (
	"time"
)

// SecretSantaStatus represents the current state of a Secret Santa
type SecretSantaStatus string

const (
	// SecretSantaStatusCreated indicates participants and exclusions can still change
	SecretSantaStatusCreated SecretSantaStatus = "created"

	// SecretSantaStatusStarted indicates the draw happened and an assignment is stored
	SecretSantaStatusStarted SecretSantaStatus = "started"
)

// IsCreated returns true if the draw has not happened yet
func (s SecretSantaStatus) IsCreated() bool {
	return s == SecretSantaStatusCreated
}

// IsStarted returns true if the draw happened
func (s SecretSantaStatus) IsStarted() bool {
	return s == SecretSantaStatusStarted
}

// SecretSanta is the root of one gift exchange. The drawn assignment is never
// part of this document.
type SecretSanta struct {
	// ID is the unique identifier for the Secret Santa
	ID string

	// EventID references the owning event (a Discord channel for the bot)
	EventID string

	// OwnerID is the user who organised the exchange
	OwnerID string

	// Description is free text shown to participants
	Description string

	// Budget is opaque metadata, never validated
	Budget string

	// Status is the current state
	Status SecretSantaStatus

	// Participants are the people taking part, in the order they joined
	Participants []*Participant

	// Version increments on every save
	Version int64

	// CreatedAt is when the Secret Santa was created
	CreatedAt time.Time

	// UpdatedAt is when the Secret Santa was last updated
	UpdatedAt time.Time

	// DrawnAt is when the current draw happened
	DrawnAt *time.Time
}

// ParticipantIDs returns the participant IDs in join order
func (s *SecretSanta) ParticipantIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// Participant returns the participant with the given ID, or nil
func (s *SecretSanta) Participant(id string) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}
