package santa

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KirkDiggler/santa/internal/common/clock"
	"github.com/KirkDiggler/santa/internal/common/uuid"
	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/models"
	"github.com/KirkDiggler/santa/internal/random"
	santaRepo "github.com/KirkDiggler/santa/internal/repositories/secret_santa"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// LifecycleTestSuite runs the service against a Redis-backed repository
type LifecycleTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service Service
	ctx     context.Context
}

func TestLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(LifecycleTestSuite))
}

func (s *LifecycleTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.ctx = context.Background()
	s.service = s.newService(0)
}

func (s *LifecycleTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func (s *LifecycleTestSuite) newService(minParticipants int) Service {
	repo, err := santaRepo.NewRedis(&santaRepo.Config{
		RedisClient: s.client,
		SealKey:     []byte("0123456789abcdef0123456789abcdef"),
	})
	s.Require().NoError(err)

	generator, err := draw.NewGenerator(&draw.Config{
		Random: random.New(&random.Config{Seed: 20251215}),
	})
	s.Require().NoError(err)

	svc, err := New(&Config{
		Repository:      repo,
		Generator:       generator,
		Clock:           clock.New(),
		UUIDGenerator:   uuid.New(),
		MinParticipants: minParticipants,
	})
	s.Require().NoError(err)
	return svc
}

func (s *LifecycleTestSuite) create(svc Service, eventID string, participants ...string) string {
	created, err := svc.CreateSecretSanta(s.ctx, &CreateSecretSantaInput{
		EventID: eventID,
		OwnerID: "owner",
	})
	s.Require().NoError(err)

	_, err = svc.AddParticipants(s.ctx, &AddParticipantsInput{
		SecretSantaID:  created.SecretSantaID,
		ParticipantIDs: participants,
	})
	s.Require().NoError(err)

	return created.SecretSantaID
}

// assignment collects every participant's own lookup
func (s *LifecycleTestSuite) assignment(svc Service, santaID string, participants []string) map[string]string {
	out := make(map[string]string, len(participants))
	for _, p := range participants {
		mine, err := svc.GetMyAssignment(s.ctx, &GetMyAssignmentInput{
			SecretSantaID: santaID,
			ParticipantID: p,
		})
		s.Require().NoError(err)
		out[p] = mine.RecipientID
	}
	return out
}

func (s *LifecycleTestSuite) requireValid(assignment map[string]string, participants []string, exclusions map[string][]string) {
	received := make(map[string]bool)
	for _, giver := range participants {
		recipient, ok := assignment[giver]
		s.Require().True(ok, "%s has no recipient", giver)
		s.NotEqual(giver, recipient)
		s.NotContains(exclusions[giver], recipient)
		s.False(received[recipient], "%s received twice", recipient)
		received[recipient] = true
	}
	s.Len(received, len(participants))
}

func (s *LifecycleTestSuite) TestFourParticipantsDrawCancelRedraw() {
	participants := []string{"alice", "bob", "carol", "dave"}
	santaID := s.create(s.service, "event-1", participants...)

	seen := make(map[string]bool)
	for round := 0; round < 20; round++ {
		_, err := s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
		s.Require().NoError(err)

		drawn := s.assignment(s.service, santaID, participants)
		s.requireValid(drawn, participants, nil)
		seen[fmt.Sprint(drawn)] = true

		_, err = s.service.Cancel(s.ctx, &CancelInput{SecretSantaID: santaID})
		s.Require().NoError(err)

		s.False(s.mr.Exists("secret_santa:"+santaID+":assignment"))
	}

	s.Greater(len(seen), 1, "redraws should not always repeat the same assignment")
}

func (s *LifecycleTestSuite) TestExclusionForcesRecipient() {
	santaID := s.create(s.service, "event-2", "alice", "bob", "carol")

	_, err := s.service.AddExclusion(s.ctx, &AddExclusionInput{
		SecretSantaID: santaID,
		ParticipantID: "alice",
		ExcludedID:    "bob",
	})
	s.Require().NoError(err)

	_, err = s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.Require().NoError(err)

	mine, err := s.service.GetMyAssignment(s.ctx, &GetMyAssignmentInput{
		SecretSantaID: santaID,
		ParticipantID: "alice",
	})
	s.Require().NoError(err)
	s.Equal("carol", mine.RecipientID)
}

func (s *LifecycleTestSuite) TestInfeasibleKeepsCreated() {
	santaID := s.create(s.service, "event-3", "alice", "bob", "carol")

	_, err := s.service.SetExclusions(s.ctx, &SetExclusionsInput{
		SecretSantaID: santaID,
		ParticipantID: "alice",
		ExcludedIDs:   []string{"bob", "carol"},
	})
	s.Require().NoError(err)

	_, err = s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.Require().ErrorIs(err, ErrInfeasible)

	var infeasible *draw.InfeasibleError
	s.Require().True(errors.As(err, &infeasible))
	s.Equal([]string{"alice"}, infeasible.Participants)

	got, err := s.service.GetSecretSanta(s.ctx, &GetSecretSantaInput{SecretSantaID: santaID})
	s.Require().NoError(err)
	s.Equal(models.SecretSantaStatusCreated, got.SecretSanta.Status)

	_, err = s.service.GetMyAssignment(s.ctx, &GetMyAssignmentInput{
		SecretSantaID: santaID,
		ParticipantID: "alice",
	})
	s.ErrorIs(err, ErrNotDrawnYet)
}

func (s *LifecycleTestSuite) TestTwoParticipantsRejectedByDefault() {
	santaID := s.create(s.service, "event-4", "alice", "bob")

	_, err := s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.ErrorIs(err, ErrNotEnoughParticipants)
}

func (s *LifecycleTestSuite) TestTwoParticipantsSwapWhenMinimumIsTwo() {
	svc := s.newService(2)
	santaID := s.create(svc, "event-4b", "alice", "bob")

	_, err := svc.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.Require().NoError(err)

	s.Equal(map[string]string{"alice": "bob", "bob": "alice"}, s.assignment(svc, santaID, []string{"alice", "bob"}))
}

func (s *LifecycleTestSuite) TestAddParticipantsAfterStartThenAfterCancel() {
	santaID := s.create(s.service, "event-5", "alice", "bob", "carol")

	_, err := s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.Require().NoError(err)

	_, err = s.service.AddParticipants(s.ctx, &AddParticipantsInput{
		SecretSantaID:  santaID,
		ParticipantIDs: []string{"dave"},
	})
	s.ErrorIs(err, ErrInvalidState)

	_, err = s.service.Cancel(s.ctx, &CancelInput{SecretSantaID: santaID})
	s.Require().NoError(err)

	added, err := s.service.AddParticipants(s.ctx, &AddParticipantsInput{
		SecretSantaID:  santaID,
		ParticipantIDs: []string{"dave"},
	})
	s.Require().NoError(err)
	s.Equal([]string{"dave"}, added.Added)
	s.Equal(4, added.ParticipantCount)
}

func (s *LifecycleTestSuite) TestDeleteStartedRemovesEverything() {
	santaID := s.create(s.service, "event-6", "alice", "bob", "carol")

	_, err := s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
	s.Require().NoError(err)

	_, err = s.service.DeleteSecretSanta(s.ctx, &DeleteSecretSantaInput{SecretSantaID: santaID})
	s.Require().ErrorIs(err, ErrConfirmationRequired)

	_, err = s.service.DeleteSecretSanta(s.ctx, &DeleteSecretSantaInput{
		SecretSantaID: santaID,
		Confirm:       true,
	})
	s.Require().NoError(err)

	_, err = s.service.GetMyAssignment(s.ctx, &GetMyAssignmentInput{
		SecretSantaID: santaID,
		ParticipantID: "alice",
	})
	s.ErrorIs(err, ErrNotFound)
	s.Empty(s.mr.Keys())

	// the event is free again
	s.create(s.service, "event-6", "alice", "bob", "carol")
}

func (s *LifecycleTestSuite) TestOneSecretSantaPerEvent() {
	s.create(s.service, "event-7", "alice")

	_, err := s.service.CreateSecretSanta(s.ctx, &CreateSecretSantaInput{
		EventID: "event-7",
		OwnerID: "bob",
	})
	s.ErrorIs(err, ErrAlreadyExists)

	got, err := s.service.GetSecretSantaByEvent(s.ctx, &GetSecretSantaByEventInput{EventID: "event-7"})
	s.Require().NoError(err)
	s.Equal([]string{"alice"}, got.SecretSanta.ParticipantIDs())
}

func (s *LifecycleTestSuite) TestConcurrentStartCommitsOnce() {
	participants := []string{"alice", "bob", "carol", "dave", "erin"}
	santaID := s.create(s.service, "event-8", participants...)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}()
	}
	wg.Wait()

	s.Equal(1, successes)
	for _, err := range failures {
		s.True(errors.Is(err, ErrConcurrentUpdate) || errors.Is(err, ErrInvalidState), "unexpected error: %v", err)
	}

	s.requireValid(s.assignment(s.service, santaID, participants), participants, nil)
}

func (s *LifecycleTestSuite) TestRandomFeasibleGraphsAlwaysDraw() {
	rng := random.New(&random.Config{Seed: 42})
	participants := []string{"p0", "p1", "p2", "p3", "p4", "p5"}

	for i := 0; i < 25; i++ {
		santaID := s.create(s.service, fmt.Sprintf("feasible-%d", i), participants...)

		// a hidden cycle stays allowed, so at least one valid assignment exists
		order := append([]string(nil), participants...)
		rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		keep := make(map[string]string, len(order))
		for j, giver := range order {
			keep[giver] = order[(j+1)%len(order)]
		}

		exclusions := make(map[string][]string)
		for _, giver := range participants {
			for _, recipient := range participants {
				if recipient == giver || recipient == keep[giver] || rng.IntN(3) == 0 {
					continue
				}
				exclusions[giver] = append(exclusions[giver], recipient)
			}
			_, err := s.service.SetExclusions(s.ctx, &SetExclusionsInput{
				SecretSantaID: santaID,
				ParticipantID: giver,
				ExcludedIDs:   exclusions[giver],
			})
			s.Require().NoError(err)
		}

		feasibility, err := s.service.CheckFeasibility(s.ctx, &CheckFeasibilityInput{SecretSantaID: santaID})
		s.Require().NoError(err)
		s.Require().True(feasibility.Feasible, feasibility.Reason)

		_, err = s.service.Start(s.ctx, &StartInput{SecretSantaID: santaID})
		s.Require().NoError(err)
		s.requireValid(s.assignment(s.service, santaID, participants), participants, exclusions)
	}
}
