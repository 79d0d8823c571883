package notifications

// NotificationError is a custom error type for notification errors
type NotificationError string

// Error implements the error interface
func (e NotificationError) Error() string {
	return string(e)
}

const (
	ErrQueueFull        NotificationError = "notification queue is full"
	ErrDispatcherClosed NotificationError = "dispatcher is closed"
	ErrNilConfig        NotificationError = "config cannot be nil"
	ErrNilSender        NotificationError = "sender cannot be nil"
	ErrNilMessaging     NotificationError = "messaging service cannot be nil"
	ErrNilSession       NotificationError = "discord session cannot be nil"
)
