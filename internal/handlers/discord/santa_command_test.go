package discord

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/models"
	"github.com/KirkDiggler/santa/internal/random"
	"github.com/KirkDiggler/santa/internal/repositories/attendee"
	attendeeMocks "github.com/KirkDiggler/santa/internal/repositories/attendee/mocks"
	"github.com/KirkDiggler/santa/internal/services/messaging"
	"github.com/KirkDiggler/santa/internal/services/santa"
	santaMocks "github.com/KirkDiggler/santa/internal/services/santa/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SantaCommandTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockService   *santaMocks.MockService
	mockDirectory *attendeeMocks.MockRepository
	command       *SantaCommand
	ctx           context.Context

	testChannelID string
	testSantaID   string
	testSanta     *models.SecretSanta
}

func TestSantaCommandTestSuite(t *testing.T) {
	suite.Run(t, new(SantaCommandTestSuite))
}

func (s *SantaCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = santaMocks.NewMockService(s.mockCtrl)
	s.mockDirectory = attendeeMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	msgs, err := messaging.NewService(&messaging.ServiceConfig{
		Random: random.New(&random.Config{Seed: 3}),
	})
	s.Require().NoError(err)

	s.command, err = NewSantaCommand(&SantaCommandConfig{
		SantaService: s.mockService,
		Messaging:    msgs,
		Directory:    s.mockDirectory,
	})
	s.Require().NoError(err)

	s.testChannelID = "test-channel-id"
	s.testSantaID = "test-santa-id"
	now := time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	s.testSanta = &models.SecretSanta{
		ID:      s.testSantaID,
		EventID: s.testChannelID,
		OwnerID: "alice",
		Budget:  "20 EUR",
		Status:  models.SecretSantaStatusCreated,
		Participants: []*models.Participant{
			{ID: "alice", AddedAt: now},
			{ID: "bob", AddedAt: now},
			{ID: "carol", AddedAt: now},
		},
	}

	s.mockDirectory.EXPECT().SaveAttendee(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *SantaCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *SantaCommandTestSuite) request(subcommand, userID, userName string) *SantaRequest {
	return &SantaRequest{
		Subcommand: subcommand,
		ChannelID:  s.testChannelID,
		UserID:     userID,
		UserName:   userName,
	}
}

func (s *SantaCommandTestSuite) expectCurrent() {
	s.mockService.EXPECT().
		GetSecretSantaByEvent(s.ctx, &santa.GetSecretSantaByEventInput{EventID: s.testChannelID}).
		Return(&santa.GetSecretSantaOutput{SecretSanta: s.testSanta}, nil)
}

func (s *SantaCommandTestSuite) TestCreate_JoinsOrganiser() {
	req := s.request(SubcommandCreate, "alice", "Alice")
	req.Description = "Office party"
	req.Budget = "20 EUR"

	s.mockService.EXPECT().
		CreateSecretSanta(s.ctx, &santa.CreateSecretSantaInput{
			EventID:     s.testChannelID,
			OwnerID:     "alice",
			Description: "Office party",
			Budget:      "20 EUR",
		}).
		Return(&santa.CreateSecretSantaOutput{SecretSantaID: s.testSantaID}, nil)
	s.mockService.EXPECT().
		AddParticipants(s.ctx, &santa.AddParticipantsInput{
			SecretSantaID:  s.testSantaID,
			ParticipantIDs: []string{"alice"},
		}).
		Return(&santa.AddParticipantsOutput{Added: []string{"alice"}, ParticipantCount: 1}, nil)

	resp := s.command.Execute(s.ctx, req)
	s.False(resp.IsError)
	s.False(resp.Ephemeral)
	s.Contains(resp.Content, "Alice")
	s.Contains(resp.Content, "Budget: 20 EUR")
}

func (s *SantaCommandTestSuite) TestCreate_AlreadyExists() {
	s.mockService.EXPECT().
		CreateSecretSanta(s.ctx, gomock.Any()).
		Return(nil, santa.ErrAlreadyExists)

	resp := s.command.Execute(s.ctx, s.request(SubcommandCreate, "alice", "Alice"))
	s.True(resp.IsError)
	s.True(resp.Ephemeral)
	s.Equal("Already Running", resp.Title)
}

func (s *SantaCommandTestSuite) TestJoin() {
	s.expectCurrent()
	s.mockService.EXPECT().
		AddParticipants(s.ctx, &santa.AddParticipantsInput{
			SecretSantaID:  s.testSantaID,
			ParticipantIDs: []string{"dave"},
		}).
		Return(&santa.AddParticipantsOutput{Added: []string{"dave"}, ParticipantCount: 4}, nil)

	resp := s.command.Execute(s.ctx, s.request(SubcommandJoin, "dave", "Dave"))
	s.False(resp.IsError)
	s.False(resp.Ephemeral)
	s.Contains(resp.Content, "Dave")
	s.Contains(resp.Content, "(4 taking part)")
}

func (s *SantaCommandTestSuite) TestJoin_NoSecretSanta() {
	s.mockService.EXPECT().
		GetSecretSantaByEvent(s.ctx, gomock.Any()).
		Return(nil, santa.ErrNotFound)

	resp := s.command.Execute(s.ctx, s.request(SubcommandJoin, "dave", "Dave"))
	s.True(resp.IsError)
	s.Equal("Nothing Here", resp.Title)
}

func (s *SantaCommandTestSuite) TestExclude_IsPrivate() {
	req := s.request(SubcommandExclude, "alice", "Alice")
	req.TargetID = "bob"
	req.TargetName = "Bob"

	s.expectCurrent()
	s.mockService.EXPECT().
		AddExclusion(s.ctx, &santa.AddExclusionInput{
			SecretSantaID: s.testSantaID,
			ParticipantID: "alice",
			ExcludedID:    "bob",
		}).
		Return(&santa.ExclusionsOutput{ParticipantID: "alice", ExcludedIDs: []string{"bob"}}, nil)

	resp := s.command.Execute(s.ctx, req)
	s.False(resp.IsError)
	s.True(resp.Ephemeral)
	s.Contains(resp.Content, "Your exclusions: <@bob>")
}

func (s *SantaCommandTestSuite) TestCheck_MentionsOverConstrained() {
	s.expectCurrent()
	s.mockService.EXPECT().
		CheckFeasibility(s.ctx, &santa.CheckFeasibilityInput{SecretSantaID: s.testSantaID}).
		Return(&santa.CheckFeasibilityOutput{
			Reason:          "participant alice has excluded every other participant",
			OverConstrained: []string{"alice"},
		}, nil)

	resp := s.command.Execute(s.ctx, s.request(SubcommandCheck, "bob", "Bob"))
	s.False(resp.IsError)
	s.Contains(resp.Content, "participant <@alice> has excluded")
}

func (s *SantaCommandTestSuite) TestDraw_OwnerOnly() {
	s.expectCurrent()

	resp := s.command.Execute(s.ctx, s.request(SubcommandDraw, "bob", "Bob"))
	s.True(resp.IsError)
	s.Equal("Organisers Only", resp.Title)
}

func (s *SantaCommandTestSuite) TestDraw() {
	s.expectCurrent()
	s.mockService.EXPECT().
		Start(s.ctx, &santa.StartInput{SecretSantaID: s.testSantaID}).
		Return(&santa.StartOutput{ParticipantCount: 3}, nil)

	resp := s.command.Execute(s.ctx, s.request(SubcommandDraw, "alice", "Alice"))
	s.False(resp.IsError)
	s.False(resp.Ephemeral)
	s.Contains(resp.Content, "3 participants")
	s.NotContains(resp.Content, "<@")
}

func (s *SantaCommandTestSuite) TestDraw_Infeasible() {
	s.expectCurrent()
	s.mockService.EXPECT().
		Start(s.ctx, gomock.Any()).
		Return(nil, &draw.InfeasibleError{
			Reason:       "participant carol has no allowed recipient left",
			Participants: []string{"carol"},
		})

	resp := s.command.Execute(s.ctx, s.request(SubcommandDraw, "alice", "Alice"))
	s.True(resp.IsError)
	s.Equal("No Valid Draw", resp.Title)
	s.Contains(resp.Content, "participant <@carol> has no allowed recipient")
}

func (s *SantaCommandTestSuite) TestDelete_NeedsConfirmation() {
	s.expectCurrent()
	s.mockService.EXPECT().
		DeleteSecretSanta(s.ctx, &santa.DeleteSecretSantaInput{SecretSantaID: s.testSantaID}).
		Return(nil, santa.ErrConfirmationRequired)

	resp := s.command.Execute(s.ctx, s.request(SubcommandDelete, "alice", "Alice"))
	s.True(resp.IsError)
	s.Equal("Are You Sure?", resp.Title)
}

func (s *SantaCommandTestSuite) TestWhoami() {
	s.expectCurrent()
	s.mockService.EXPECT().
		GetMyAssignment(s.ctx, &santa.GetMyAssignmentInput{
			SecretSantaID: s.testSantaID,
			ParticipantID: "bob",
		}).
		Return(&santa.GetMyAssignmentOutput{RecipientID: "carol"}, nil)
	s.mockDirectory.EXPECT().
		GetAttendee(s.ctx, &attendee.GetAttendeeInput{AttendeeID: "carol"}).
		Return(&models.Attendee{ID: "carol", Name: "Carol"}, nil)

	resp := s.command.Execute(s.ctx, s.request(SubcommandWhoami, "bob", "Bob"))
	s.False(resp.IsError)
	s.True(resp.Ephemeral)
	s.Contains(resp.Content, "**Carol**")
	s.Contains(resp.Content, "20 EUR")
}

func (s *SantaCommandTestSuite) TestWhoami_NotDrawnYet() {
	s.expectCurrent()
	s.mockService.EXPECT().
		GetMyAssignment(s.ctx, gomock.Any()).
		Return(nil, santa.ErrNotDrawnYet)

	resp := s.command.Execute(s.ctx, s.request(SubcommandWhoami, "bob", "Bob"))
	s.True(resp.IsError)
	s.True(resp.Ephemeral)
	s.Equal("Patience", resp.Title)
}

func (s *SantaCommandTestSuite) TestUnknownSubcommand() {
	resp := s.command.Execute(s.ctx, s.request("reveal", "bob", "Bob"))
	s.True(resp.IsError)
	s.Equal("Error", resp.Title)
}

func (s *SantaCommandTestSuite) TestRequestFromInteraction() {
	data := discordgo.ApplicationCommandInteractionData{
		Name: "santa",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{{
			Name: SubcommandExclude,
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name:  "user",
				Type:  discordgo.ApplicationCommandOptionUser,
				Value: "bob",
			}},
		}},
		Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
			Users: map[string]*discordgo.User{
				"bob": {ID: "bob", Username: "bobby", GlobalName: "Bob"},
			},
		},
	}
	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionApplicationCommand,
			ChannelID: s.testChannelID,
			Member: &discordgo.Member{
				Nick: "Ali",
				User: &discordgo.User{ID: "alice", Username: "alice123"},
			},
			Data: data,
		},
	}

	req := requestFromInteraction(i, data)
	s.Equal(&SantaRequest{
		Subcommand: SubcommandExclude,
		ChannelID:  s.testChannelID,
		UserID:     "alice",
		UserName:   "Ali",
		TargetID:   "bob",
		TargetName: "Bob",
	}, req)
}
