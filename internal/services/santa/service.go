package santa

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/KirkDiggler/santa/internal/common/clock"
	"github.com/KirkDiggler/santa/internal/common/uuid"
	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/models"
	santaRepo "github.com/KirkDiggler/santa/internal/repositories/secret_santa"
	"github.com/KirkDiggler/santa/internal/services/notifications"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repo            santaRepo.Repository
	generator       *draw.Generator
	notifier        notifications.Notifier
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	logger          *zap.Logger
	minParticipants int
}

// New creates a new Secret Santa service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	minParticipants := cfg.MinParticipants
	if minParticipants == 0 {
		minParticipants = DefaultMinParticipants
	}
	if minParticipants < 2 {
		return nil, ErrInvalidMinParticipants
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repo:            cfg.Repository,
		generator:       cfg.Generator,
		notifier:        cfg.Notifier,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		logger:          logger.Named("santa"),
		minParticipants: minParticipants,
	}, nil
}

// CreateSecretSanta creates a Secret Santa for an event. An event holds at most one.
func (s *service) CreateSecretSanta(ctx context.Context, input *CreateSecretSantaInput) (*CreateSecretSantaOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	if input.EventID == "" || input.OwnerID == "" {
		return nil, fmt.Errorf("%w: event ID and owner ID are required", ErrInvalidInput)
	}

	existing, err := s.repo.GetSecretSantaByEvent(ctx, &santaRepo.GetSecretSantaByEventInput{
		EventID: input.EventID,
	})
	if err == nil && existing != nil {
		return nil, ErrAlreadyExists
	}
	if err != nil && !errors.Is(err, santaRepo.ErrSecretSantaNotFound) {
		return nil, s.storeError(err)
	}

	now := s.clock.Now()
	santa := &models.SecretSanta{
		ID:           s.uuidGenerator.NewUUID(),
		EventID:      input.EventID,
		OwnerID:      input.OwnerID,
		Description:  input.Description,
		Budget:       input.Budget,
		Status:       models.SecretSantaStatusCreated,
		Participants: []*models.Participant{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.save(ctx, santa, nil); err != nil {
		return nil, err
	}

	s.logger.Info("secret santa created",
		zap.String("secret_santa_id", santa.ID),
		zap.String("event_id", santa.EventID),
	)

	return &CreateSecretSantaOutput{
		SecretSantaID: santa.ID,
	}, nil
}

// GetSecretSanta returns a Secret Santa by ID
func (s *service) GetSecretSanta(ctx context.Context, input *GetSecretSantaInput) (*GetSecretSantaOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	return &GetSecretSantaOutput{
		SecretSanta: santa,
	}, nil
}

// GetSecretSantaByEvent returns the Secret Santa of an event
func (s *service) GetSecretSantaByEvent(ctx context.Context, input *GetSecretSantaByEventInput) (*GetSecretSantaOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrInvalidInput
	}

	santa, err := s.repo.GetSecretSantaByEvent(ctx, &santaRepo.GetSecretSantaByEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, s.storeError(err)
	}

	return &GetSecretSantaOutput{
		SecretSanta: santa,
	}, nil
}

// AddParticipants adds participants to a Secret Santa that has not been drawn
func (s *service) AddParticipants(ctx context.Context, input *AddParticipantsInput) (*AddParticipantsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	var added []string
	santa, err := s.mutate(ctx, input.SecretSantaID, func(santa *models.SecretSanta, graph *draw.Graph) (bool, error) {
		now := s.clock.Now()
		for _, id := range input.ParticipantIDs {
			isNew, err := graph.AddParticipant(id)
			if err != nil {
				return false, err
			}
			if !isNew {
				continue
			}

			added = append(added, id)
			santa.Participants = append(santa.Participants, &models.Participant{
				ID:         id,
				AddedAt:    now,
				Exclusions: []string{},
			})
		}
		return len(added) > 0, nil
	})
	if err != nil {
		return nil, err
	}

	return &AddParticipantsOutput{
		Added:            added,
		ParticipantCount: len(santa.Participants),
	}, nil
}

// RemoveParticipant removes a participant along with every exclusion naming them
func (s *service) RemoveParticipant(ctx context.Context, input *RemoveParticipantInput) (*RemoveParticipantOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.mutate(ctx, input.SecretSantaID, func(santa *models.SecretSanta, graph *draw.Graph) (bool, error) {
		if !graph.RemoveParticipant(input.ParticipantID) {
			return false, fmt.Errorf("%w: %s is not a participant", ErrNotFound, input.ParticipantID)
		}

		santa.Participants = slices.DeleteFunc(santa.Participants, func(p *models.Participant) bool {
			return p.ID == input.ParticipantID
		})
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &RemoveParticipantOutput{
		ParticipantCount: len(santa.Participants),
	}, nil
}

// SetExclusions replaces a participant's exclusions. Nothing changes when any is invalid.
func (s *service) SetExclusions(ctx context.Context, input *SetExclusionsInput) (*ExclusionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	return s.mutateExclusions(ctx, input.SecretSantaID, input.ParticipantID, func(graph *draw.Graph) error {
		return graph.SetExclusions(input.ParticipantID, input.ExcludedIDs)
	})
}

// AddExclusion forbids one recipient for a participant
func (s *service) AddExclusion(ctx context.Context, input *AddExclusionInput) (*ExclusionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	return s.mutateExclusions(ctx, input.SecretSantaID, input.ParticipantID, func(graph *draw.Graph) error {
		return graph.AddExclusion(input.ParticipantID, input.ExcludedID)
	})
}

// RemoveExclusion lifts one exclusion. Absent exclusions are ignored.
func (s *service) RemoveExclusion(ctx context.Context, input *RemoveExclusionInput) (*ExclusionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	return s.mutateExclusions(ctx, input.SecretSantaID, input.ParticipantID, func(graph *draw.Graph) error {
		if !graph.Has(input.ParticipantID) {
			return fmt.Errorf("%w: unknown participant %q", ErrInvalidConstraint, input.ParticipantID)
		}
		graph.RemoveExclusion(input.ParticipantID, input.ExcludedID)
		return nil
	})
}

// CheckFeasibility reports whether a draw could succeed with the current
// participants and exclusions
func (s *service) CheckFeasibility(ctx context.Context, input *CheckFeasibilityInput) (*CheckFeasibilityOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	if n := len(santa.Participants); n < s.minParticipants {
		return &CheckFeasibilityOutput{
			Reason: fmt.Sprintf("at least %d participants are required, have %d", s.minParticipants, n),
		}, nil
	}

	graph, err := graphFor(santa)
	if err != nil {
		return nil, err
	}

	feasibility := graph.CheckFeasibility()
	return &CheckFeasibilityOutput{
		Feasible:        feasibility.Feasible,
		Reason:          feasibility.Reason,
		OverConstrained: feasibility.Participants,
	}, nil
}

// Start draws names. The assignment and the status change are stored
// together; participants are notified afterwards.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	if !santa.Status.IsCreated() {
		return nil, fmt.Errorf("%w: already %s", ErrInvalidState, santa.Status)
	}

	if n := len(santa.Participants); n < s.minParticipants {
		return nil, fmt.Errorf("%w: have %d, need at least %d", ErrNotEnoughParticipants, n, s.minParticipants)
	}

	graph, err := graphFor(santa)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(drawDuration)
	result, err := s.generator.Generate(graph)
	timer.ObserveDuration()
	if err != nil {
		var infeasible *draw.InfeasibleError
		if errors.As(err, &infeasible) {
			drawsTotal.WithLabelValues(drawResultInfeasible).Inc()
			s.logger.Info("draw is infeasible",
				zap.String("secret_santa_id", santa.ID),
				zap.String("reason", infeasible.Reason),
				zap.Strings("over_constrained", infeasible.Participants),
			)
			return nil, fmt.Errorf("secret santa %s: %w", santa.ID, err)
		}

		drawsTotal.WithLabelValues(drawResultError).Inc()
		return nil, err
	}

	now := s.clock.Now()
	santa.Status = models.SecretSantaStatusStarted
	santa.DrawnAt = &now
	santa.UpdatedAt = now

	if err := s.save(ctx, santa, result.Assignment); err != nil {
		if errors.Is(err, ErrConcurrentUpdate) {
			drawsTotal.WithLabelValues(drawResultConflict).Inc()
		} else {
			drawsTotal.WithLabelValues(drawResultError).Inc()
		}
		return nil, err
	}

	drawsTotal.WithLabelValues(drawResultStarted).Inc()
	drawAttempts.Observe(float64(result.Attempts))
	s.logger.Info("names drawn",
		zap.String("secret_santa_id", santa.ID),
		zap.Int("participants", len(santa.Participants)),
		zap.Int("attempts", result.Attempts),
		zap.String("method", string(result.Method)),
	)

	s.notifyDrawn(ctx, santa)

	return &StartOutput{
		ParticipantCount: len(santa.Participants),
		DrawnAt:          now,
	}, nil
}

// Cancel discards the draw and reopens the Secret Santa for changes
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	if !santa.Status.IsStarted() {
		return nil, fmt.Errorf("%w: names have not been drawn", ErrInvalidState)
	}

	santa.Status = models.SecretSantaStatusCreated
	santa.DrawnAt = nil
	santa.UpdatedAt = s.clock.Now()

	if err := s.save(ctx, santa, nil); err != nil {
		return nil, err
	}

	s.logger.Info("draw cancelled", zap.String("secret_santa_id", santa.ID))
	s.notifyCancelled(ctx, santa)

	return &CancelOutput{
		ParticipantCount: len(santa.Participants),
	}, nil
}

// DeleteSecretSanta removes a Secret Santa. A started one needs Confirm.
func (s *service) DeleteSecretSanta(ctx context.Context, input *DeleteSecretSantaInput) (*DeleteSecretSantaOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	started := santa.Status.IsStarted()
	if started && !input.Confirm {
		return nil, ErrConfirmationRequired
	}

	err = s.repo.DeleteSecretSanta(ctx, &santaRepo.DeleteSecretSantaInput{
		SecretSantaID:   santa.ID,
		ExpectedVersion: santa.Version,
	})
	if err != nil {
		return nil, s.storeError(err)
	}

	s.logger.Info("secret santa deleted",
		zap.String("secret_santa_id", santa.ID),
		zap.Bool("was_started", started),
	)

	if started {
		s.notifyCancelled(ctx, santa)
	}

	return &DeleteSecretSantaOutput{
		WasStarted: started,
	}, nil
}

// GetMyAssignment returns the recipient of one participant. There is no way
// to read anyone else's.
func (s *service) GetMyAssignment(ctx context.Context, input *GetMyAssignmentInput) (*GetMyAssignmentOutput, error) {
	if input == nil {
		return nil, ErrInvalidInput
	}

	santa, err := s.load(ctx, input.SecretSantaID)
	if err != nil {
		return nil, err
	}

	if santa.Participant(input.ParticipantID) == nil {
		return nil, fmt.Errorf("%w: %s is not a participant", ErrNotFound, input.ParticipantID)
	}

	if !santa.Status.IsStarted() {
		return nil, ErrNotDrawnYet
	}

	output, err := s.repo.GetRecipient(ctx, &santaRepo.GetRecipientInput{
		SecretSantaID: santa.ID,
		GiverID:       input.ParticipantID,
	})
	if err != nil {
		return nil, s.storeError(err)
	}

	return &GetMyAssignmentOutput{
		RecipientID: output.RecipientID,
	}, nil
}

func (s *service) load(ctx context.Context, santaID string) (*models.SecretSanta, error) {
	if santaID == "" {
		return nil, fmt.Errorf("%w: secret santa ID is required", ErrInvalidInput)
	}

	santa, err := s.repo.GetSecretSanta(ctx, &santaRepo.GetSecretSantaInput{
		SecretSantaID: santaID,
	})
	if err != nil {
		return nil, s.storeError(err)
	}

	return santa, nil
}

// mutate loads a Secret Santa that has not been drawn, applies fn to it and
// its graph, and saves it when fn reports a change
func (s *service) mutate(ctx context.Context, santaID string, fn func(santa *models.SecretSanta, graph *draw.Graph) (bool, error)) (*models.SecretSanta, error) {
	santa, err := s.load(ctx, santaID)
	if err != nil {
		return nil, err
	}

	if !santa.Status.IsCreated() {
		return nil, fmt.Errorf("%w: names were already drawn", ErrInvalidState)
	}

	graph, err := graphFor(santa)
	if err != nil {
		return nil, err
	}

	changed, err := fn(santa, graph)
	if err != nil {
		return nil, err
	}

	if !changed {
		return santa, nil
	}

	for _, p := range santa.Participants {
		p.Exclusions = graph.ExclusionsFor(p.ID)
	}
	santa.UpdatedAt = s.clock.Now()

	if err := s.save(ctx, santa, nil); err != nil {
		return nil, err
	}

	return santa, nil
}

func (s *service) mutateExclusions(ctx context.Context, santaID, participantID string, fn func(graph *draw.Graph) error) (*ExclusionsOutput, error) {
	var excluded []string
	_, err := s.mutate(ctx, santaID, func(santa *models.SecretSanta, graph *draw.Graph) (bool, error) {
		if err := fn(graph); err != nil {
			return false, err
		}
		excluded = graph.ExclusionsFor(participantID)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &ExclusionsOutput{
		ParticipantID: participantID,
		ExcludedIDs:   excluded,
	}, nil
}

// save stores the Secret Santa against the version it was loaded with
func (s *service) save(ctx context.Context, santa *models.SecretSanta, assignment draw.Assignment) error {
	err := s.repo.SaveSecretSanta(ctx, &santaRepo.SaveSecretSantaInput{
		SecretSanta:     santa,
		ExpectedVersion: santa.Version,
		Assignment:      assignment,
	})
	if err != nil {
		return s.storeError(err)
	}

	return nil
}

// storeError translates repository failures into service errors
func (s *service) storeError(err error) error {
	switch {
	case errors.Is(err, santaRepo.ErrSecretSantaNotFound):
		return ErrNotFound
	case errors.Is(err, santaRepo.ErrVersionConflict):
		return ErrConcurrentUpdate
	case errors.Is(err, santaRepo.ErrAlreadyExists), errors.Is(err, santaRepo.ErrEventTaken):
		return ErrAlreadyExists
	}

	s.logger.Error("secret santa store failure", zap.Error(err))
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

func (s *service) notifyDrawn(ctx context.Context, santa *models.SecretSanta) {
	if s.notifier == nil {
		return
	}

	for _, p := range santa.Participants {
		err := s.notifier.NotifyDrawCompleted(ctx, &notifications.DrawCompletedInput{
			SecretSantaID: santa.ID,
			ParticipantID: p.ID,
			Description:   santa.Description,
			Budget:        santa.Budget,
		})
		if err != nil {
			s.logger.Warn("failed to queue draw notification",
				zap.String("secret_santa_id", santa.ID),
				zap.String("participant_id", p.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *service) notifyCancelled(ctx context.Context, santa *models.SecretSanta) {
	if s.notifier == nil {
		return
	}

	err := s.notifier.NotifyDrawCancelled(ctx, &notifications.DrawCancelledInput{
		SecretSantaID:  santa.ID,
		ParticipantIDs: santa.ParticipantIDs(),
		Description:    santa.Description,
	})
	if err != nil {
		s.logger.Warn("failed to queue cancellation notification",
			zap.String("secret_santa_id", santa.ID),
			zap.Error(err),
		)
	}
}

// graphFor rebuilds the exclusion graph from the stored participants
func graphFor(santa *models.SecretSanta) (*draw.Graph, error) {
	graph, err := draw.NewGraph(santa.ParticipantIDs())
	if err != nil {
		return nil, err
	}

	for _, p := range santa.Participants {
		for _, excluded := range p.Exclusions {
			if err := graph.AddExclusion(p.ID, excluded); err != nil {
				return nil, fmt.Errorf("stored exclusions are inconsistent: %w", err)
			}
		}
	}

	return graph, nil
}

var _ Service = (*service)(nil)
