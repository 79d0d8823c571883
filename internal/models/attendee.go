package models

// Attendee is a participant directory entry used to address notifications
type Attendee struct {
	// ID is the participant ID, a Discord user ID for the bot
	ID string

	// Name is the display name
	Name string
}
