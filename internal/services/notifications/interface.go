package notifications

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/santa/internal/services/notifications Notifier
//go:generate mockgen -package=mocks -destination=mocks/mock_sender.go github.com/KirkDiggler/santa/internal/services/notifications Sender

import "context"

// Notifier tells participants about lifecycle changes. Implementations must
// not block the caller on delivery.
type Notifier interface {
	// NotifyDrawCompleted tells one participant that names were drawn
	NotifyDrawCompleted(ctx context.Context, input *DrawCompletedInput) error

	// NotifyDrawCancelled tells participants that a draw was cancelled
	NotifyDrawCancelled(ctx context.Context, input *DrawCancelledInput) error
}

// Sender delivers a rendered message to a single user
type Sender interface {
	SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error
}
