package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/santa/internal/common/uuid UUID

// UUID generates identifiers for new aggregates
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface with random version 4 UUIDs
type DefaultUUID struct{}

// New returns the default generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
