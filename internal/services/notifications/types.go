package notifications

// DrawCompletedInput identifies who to tell about a finished draw. It
// deliberately has no recipient field.
type DrawCompletedInput struct {
	SecretSantaID string
	ParticipantID string
	Description   string
	Budget        string
}

// DrawCancelledInput identifies who to tell about a cancelled draw
type DrawCancelledInput struct {
	SecretSantaID  string
	ParticipantIDs []string
	Description    string
}

// SendDirectMessageInput is a single outgoing message
type SendDirectMessageInput struct {
	UserID  string
	Content string
}
