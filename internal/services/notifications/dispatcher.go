package notifications

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/KirkDiggler/santa/internal/repositories/attendee"
	"github.com/KirkDiggler/santa/internal/services/messaging"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers    = 4
	defaultQueueSize  = 256
	defaultMaxRetries = 3
	defaultRetryDelay = 2 * time.Second

	fallbackName = "there"
)

// DispatcherConfig holds configuration for the dispatcher
type DispatcherConfig struct {
	// Sender delivers the rendered messages
	Sender Sender

	// Messaging renders message texts
	Messaging messaging.Service

	// Directory resolves display names. Optional.
	Directory attendee.Repository

	// Logger for delivery failures. Optional.
	Logger *zap.Logger

	Workers    int
	QueueSize  int
	MaxRetries int
	RetryDelay time.Duration
}

type job struct {
	kind          string
	secretSantaID string
	participantID string
	render        func(ctx context.Context, name string) (string, error)
}

// Dispatcher queues notifications and delivers them on a worker pool
type Dispatcher struct {
	sender     Sender
	messaging  messaging.Service
	directory  attendee.Repository
	logger     *zap.Logger
	workers    int
	maxRetries int
	retryDelay time.Duration

	queue  chan *job
	group  *errgroup.Group
	mu     sync.RWMutex
	closed bool
}

// NewDispatcher creates a new notification dispatcher. Call Start before
// notifications are delivered.
func NewDispatcher(cfg *DispatcherConfig) (*Dispatcher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sender == nil {
		return nil, ErrNilSender
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	return &Dispatcher{
		sender:     cfg.Sender,
		messaging:  cfg.Messaging,
		directory:  cfg.Directory,
		logger:     logger.Named("notifications"),
		workers:    workers,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		queue:      make(chan *job, queueSize),
	}, nil
}

// Start launches the workers. Cancelling ctx abandons pending retries.
func (d *Dispatcher) Start(ctx context.Context) {
	group, ctx := errgroup.WithContext(ctx)
	for i := 0; i < d.workers; i++ {
		group.Go(func() error {
			for j := range d.queue {
				d.deliver(ctx, j)
			}
			return nil
		})
	}
	d.group = group
}

// Stop closes the queue and waits for queued notifications to drain
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if d.group == nil {
		return nil
	}
	return d.group.Wait()
}

// NotifyDrawCompleted queues the draw notification for one participant
func (d *Dispatcher) NotifyDrawCompleted(ctx context.Context, input *DrawCompletedInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return d.enqueue(&job{
		kind:          kindDrawCompleted,
		secretSantaID: input.SecretSantaID,
		participantID: input.ParticipantID,
		render: func(ctx context.Context, name string) (string, error) {
			output, err := d.messaging.GetDrawCompletedMessage(ctx, &messaging.GetDrawCompletedMessageInput{
				ParticipantName: name,
				Description:     input.Description,
				Budget:          input.Budget,
			})
			if err != nil {
				return "", err
			}
			return output.Message, nil
		},
	})
}

// NotifyDrawCancelled queues a cancellation notification per participant
func (d *Dispatcher) NotifyDrawCancelled(ctx context.Context, input *DrawCancelledInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	var errs []error
	for _, participantID := range input.ParticipantIDs {
		err := d.enqueue(&job{
			kind:          kindDrawCancelled,
			secretSantaID: input.SecretSantaID,
			participantID: participantID,
			render: func(ctx context.Context, name string) (string, error) {
				output, err := d.messaging.GetDrawCancelledMessage(ctx, &messaging.GetDrawCancelledMessageInput{
					ParticipantName: name,
					Description:     input.Description,
				})
				if err != nil {
					return "", err
				}
				return output.Message, nil
			},
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (d *Dispatcher) enqueue(j *job) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		notificationsTotal.WithLabelValues(j.kind, resultDropped).Inc()
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- j:
		return nil
	default:
		notificationsTotal.WithLabelValues(j.kind, resultDropped).Inc()
		d.logger.Warn("notification dropped, queue full",
			zap.String("kind", j.kind),
			zap.String("secret_santa_id", j.secretSantaID),
			zap.String("participant_id", j.participantID),
		)
		return ErrQueueFull
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j *job) {
	logger := d.logger.With(
		zap.String("kind", j.kind),
		zap.String("secret_santa_id", j.secretSantaID),
		zap.String("participant_id", j.participantID),
	)

	content, err := j.render(ctx, d.displayName(ctx, j.participantID))
	if err != nil {
		notificationsTotal.WithLabelValues(j.kind, resultFailed).Inc()
		logger.Warn("failed to render notification", zap.Error(err))
		return
	}

	input := &SendDirectMessageInput{
		UserID:  j.participantID,
		Content: content,
	}

	for attempt := 0; ; attempt++ {
		err = d.sender.SendDirectMessage(ctx, input)
		if err == nil {
			notificationsTotal.WithLabelValues(j.kind, resultSent).Inc()
			return
		}

		if attempt >= d.maxRetries {
			break
		}

		if !d.backoff(ctx, attempt) {
			err = errors.Join(err, ctx.Err())
			break
		}
	}

	notificationsTotal.WithLabelValues(j.kind, resultFailed).Inc()
	logger.Warn("failed to deliver notification", zap.Error(err))
}

// backoff waits linearly longer after each failed attempt
func (d *Dispatcher) backoff(ctx context.Context, attempt int) bool {
	timer := time.NewTimer(d.retryDelay * time.Duration(attempt+1))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (d *Dispatcher) displayName(ctx context.Context, participantID string) string {
	if d.directory == nil {
		return fallbackName
	}

	record, err := d.directory.GetAttendee(ctx, &attendee.GetAttendeeInput{
		AttendeeID: participantID,
	})
	if err != nil || record == nil || record.Name == "" {
		return fallbackName
	}

	return record.Name
}
