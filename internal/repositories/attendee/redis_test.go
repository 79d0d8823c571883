package attendee

import (
	"context"
	"testing"

	"github.com/KirkDiggler/santa/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetAttendee() {
	err := s.repo.SaveAttendee(context.Background(), &SaveAttendeeInput{
		Attendee: &models.Attendee{ID: "test-user-id", Name: "Test User"},
	})
	s.Require().NoError(err)

	attendee, err := s.repo.GetAttendee(context.Background(), &GetAttendeeInput{AttendeeID: "test-user-id"})
	s.Require().NoError(err)
	s.Equal("Test User", attendee.Name)
}

func (s *RedisRepositoryTestSuite) TestSaveAttendee_Overwrites() {
	s.Require().NoError(s.repo.SaveAttendee(context.Background(), &SaveAttendeeInput{
		Attendee: &models.Attendee{ID: "test-user-id", Name: "Old Nick"},
	}))
	s.Require().NoError(s.repo.SaveAttendee(context.Background(), &SaveAttendeeInput{
		Attendee: &models.Attendee{ID: "test-user-id", Name: "New Nick"},
	}))

	attendee, err := s.repo.GetAttendee(context.Background(), &GetAttendeeInput{AttendeeID: "test-user-id"})
	s.Require().NoError(err)
	s.Equal("New Nick", attendee.Name)
}

func (s *RedisRepositoryTestSuite) TestGetAttendee_NotFound() {
	_, err := s.repo.GetAttendee(context.Background(), &GetAttendeeInput{AttendeeID: "missing"})
	s.ErrorIs(err, ErrAttendeeNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveAttendee_Validation() {
	s.Error(s.repo.SaveAttendee(context.Background(), nil))
	s.Error(s.repo.SaveAttendee(context.Background(), &SaveAttendeeInput{Attendee: &models.Attendee{}}))
}
