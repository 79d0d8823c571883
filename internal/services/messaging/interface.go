package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCreatedMessage returns an announcement for a new Secret Santa
	GetCreatedMessage(ctx context.Context, input *GetCreatedMessageInput) (*GetCreatedMessageOutput, error)

	// GetJoinMessage returns a message for when someone joins
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetDrawCompletedMessage returns the direct message sent to each participant after the draw
	GetDrawCompletedMessage(ctx context.Context, input *GetDrawCompletedMessageInput) (*GetDrawCompletedMessageOutput, error)

	// GetDrawCancelledMessage returns the direct message sent when a draw is cancelled
	GetDrawCancelledMessage(ctx context.Context, input *GetDrawCancelledMessageInput) (*GetDrawCancelledMessageOutput, error)

	// GetRevealMessage returns the private message naming a participant's recipient
	GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
