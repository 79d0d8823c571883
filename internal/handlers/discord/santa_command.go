package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/santa/internal/draw"
	"github.com/KirkDiggler/santa/internal/models"
	"github.com/KirkDiggler/santa/internal/repositories/attendee"
	"github.com/KirkDiggler/santa/internal/services/messaging"
	"github.com/KirkDiggler/santa/internal/services/santa"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommands of /santa
const (
	SubcommandCreate  = "create"
	SubcommandJoin    = "join"
	SubcommandLeave   = "leave"
	SubcommandExclude = "exclude"
	SubcommandInclude = "include"
	SubcommandCheck   = "check"
	SubcommandDraw    = "draw"
	SubcommandCancel  = "cancel"
	SubcommandDelete  = "delete"
	SubcommandWhoami  = "whoami"
)

// errNotOwner is returned for organiser-only subcommands
var errNotOwner = errors.New("only the organiser can do that")

// SantaRequest is a /santa invocation stripped of Discord types
type SantaRequest struct {
	Subcommand string

	// ChannelID is the event the Secret Santa belongs to
	ChannelID string

	UserID   string
	UserName string

	// Target is the user option of exclude and include
	TargetID   string
	TargetName string

	Description string
	Budget      string
	Confirm     bool
}

// SantaCommandConfig holds the dependencies of the /santa command
type SantaCommandConfig struct {
	SantaService santa.Service
	Messaging    messaging.Service

	// Directory records display names for notifications. Optional.
	Directory attendee.Repository

	Logger *zap.Logger
}

// SantaCommand handles the /santa command
type SantaCommand struct {
	BaseCommand
	santaService santa.Service
	messaging    messaging.Service
	directory    attendee.Repository
	logger       *zap.Logger
}

// NewSantaCommand creates a new santa command handler
func NewSantaCommand(cfg *SantaCommandConfig) (*SantaCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SantaService == nil {
		return nil, errors.New("santa service cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	userOption := func(description string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: description,
			Required:    true,
		}}
	}

	return &SantaCommand{
		BaseCommand: BaseCommand{
			Name:        "santa",
			Description: "Secret Santa gift exchange",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCreate,
					Description: "Organise a Secret Santa in this channel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "What the exchange is about",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "budget",
							Description: "Suggested budget, e.g. 20 EUR",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandJoin,
					Description: "Take part in this channel's Secret Santa",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandLeave,
					Description: "Stop taking part",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandExclude,
					Description: "Never draw this person",
					Options:     userOption("Person you must not be matched with"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandInclude,
					Description: "Allow drawing this person again",
					Options:     userOption("Person to allow again"),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCheck,
					Description: "Check whether names can be drawn",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDraw,
					Description: "Draw names (organiser only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCancel,
					Description: "Cancel the draw (organiser only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandDelete,
					Description: "Delete this Secret Santa (organiser only)",
					Options: []*discordgo.ApplicationCommandOption{{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "confirm",
						Description: "Required once names were drawn",
					}},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandWhoami,
					Description: "Privately see who you are gifting",
				},
			},
		},
		santaService: cfg.SantaService,
		messaging:    cfg.Messaging,
		directory:    cfg.Directory,
		logger:       logger,
	}, nil
}

// Handle processes a Discord interaction for the santa command
func (c *SantaCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := requestFromInteraction(i, data)
	return Respond(s, i, c.Execute(context.Background(), req))
}

// Execute runs a /santa subcommand and builds the reply
func (c *SantaCommand) Execute(ctx context.Context, req *SantaRequest) *Response {
	c.remember(ctx, req.UserID, req.UserName)
	if req.TargetID != "" {
		c.remember(ctx, req.TargetID, req.TargetName)
	}

	var (
		resp *Response
		err  error
	)
	switch req.Subcommand {
	case SubcommandCreate:
		resp, err = c.handleCreate(ctx, req)
	case SubcommandJoin:
		resp, err = c.handleJoin(ctx, req)
	case SubcommandLeave:
		resp, err = c.handleLeave(ctx, req)
	case SubcommandExclude:
		resp, err = c.handleExclude(ctx, req)
	case SubcommandInclude:
		resp, err = c.handleInclude(ctx, req)
	case SubcommandCheck:
		resp, err = c.handleCheck(ctx, req)
	case SubcommandDraw:
		resp, err = c.handleDraw(ctx, req)
	case SubcommandCancel:
		resp, err = c.handleCancel(ctx, req)
	case SubcommandDelete:
		resp, err = c.handleDelete(ctx, req)
	case SubcommandWhoami:
		resp, err = c.handleWhoami(ctx, req)
	default:
		err = fmt.Errorf("unknown subcommand %q", req.Subcommand)
	}

	if err != nil {
		return c.errorResponse(ctx, req, err)
	}
	return resp
}

func (c *SantaCommand) handleCreate(ctx context.Context, req *SantaRequest) (*Response, error) {
	created, err := c.santaService.CreateSecretSanta(ctx, &santa.CreateSecretSantaInput{
		EventID:     req.ChannelID,
		OwnerID:     req.UserID,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return nil, err
	}

	// The organiser takes part by default and can leave afterwards
	_, err = c.santaService.AddParticipants(ctx, &santa.AddParticipantsInput{
		SecretSantaID:  created.SecretSantaID,
		ParticipantIDs: []string{req.UserID},
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetCreatedMessage(ctx, &messaging.GetCreatedMessageInput{
		OwnerName:   req.UserName,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Title:   msg.Title,
		Content: msg.Message,
	}, nil
}

func (c *SantaCommand) handleJoin(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	added, err := c.santaService.AddParticipants(ctx, &santa.AddParticipantsInput{
		SecretSantaID:  current.ID,
		ParticipantIDs: []string{req.UserID},
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		ParticipantName:  req.UserName,
		AlreadyJoined:    len(added.Added) == 0,
		ParticipantCount: added.ParticipantCount,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:   msg.Message,
		Ephemeral: len(added.Added) == 0,
	}, nil
}

func (c *SantaCommand) handleLeave(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	removed, err := c.santaService.RemoveParticipant(ctx, &santa.RemoveParticipantInput{
		SecretSantaID: current.ID,
		ParticipantID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: fmt.Sprintf("%s left the Secret Santa (%d taking part)", req.UserName, removed.ParticipantCount),
	}, nil
}

func (c *SantaCommand) handleExclude(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	output, err := c.santaService.AddExclusion(ctx, &santa.AddExclusionInput{
		SecretSantaID: current.ID,
		ParticipantID: req.UserID,
		ExcludedID:    req.TargetID,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:   fmt.Sprintf("You will not draw %s.\n%s", mention(req.TargetID), describeExclusions(output.ExcludedIDs)),
		Ephemeral: true,
	}, nil
}

func (c *SantaCommand) handleInclude(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	output, err := c.santaService.RemoveExclusion(ctx, &santa.RemoveExclusionInput{
		SecretSantaID: current.ID,
		ParticipantID: req.UserID,
		ExcludedID:    req.TargetID,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:   fmt.Sprintf("%s can be drawn again.\n%s", mention(req.TargetID), describeExclusions(output.ExcludedIDs)),
		Ephemeral: true,
	}, nil
}

func (c *SantaCommand) handleCheck(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	feasibility, err := c.santaService.CheckFeasibility(ctx, &santa.CheckFeasibilityInput{
		SecretSantaID: current.ID,
	})
	if err != nil {
		return nil, err
	}

	if feasibility.Feasible {
		return &Response{
			Content: fmt.Sprintf("✅ Names can be drawn for %d participants.", len(current.Participants)),
		}, nil
	}

	return &Response{
		Content: "❌ Names cannot be drawn yet: " + mentionParticipants(feasibility.Reason, current.ParticipantIDs()),
	}, nil
}

func (c *SantaCommand) handleDraw(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.owned(ctx, req)
	if err != nil {
		return nil, err
	}

	started, err := c.santaService.Start(ctx, &santa.StartInput{
		SecretSantaID: current.ID,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Title: "🎅 Names Drawn",
		Content: fmt.Sprintf("%d participants have a match. Check your DMs or use `/santa whoami`.",
			started.ParticipantCount),
	}, nil
}

func (c *SantaCommand) handleCancel(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.owned(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := c.santaService.Cancel(ctx, &santa.CancelInput{SecretSantaID: current.ID}); err != nil {
		return nil, err
	}

	return &Response{
		Content: "The draw was cancelled. Participants and exclusions can be changed again.",
	}, nil
}

func (c *SantaCommand) handleDelete(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.owned(ctx, req)
	if err != nil {
		return nil, err
	}

	_, err = c.santaService.DeleteSecretSanta(ctx, &santa.DeleteSecretSantaInput{
		SecretSantaID: current.ID,
		Confirm:       req.Confirm,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content: "The Secret Santa was deleted.",
	}, nil
}

func (c *SantaCommand) handleWhoami(ctx context.Context, req *SantaRequest) (*Response, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	mine, err := c.santaService.GetMyAssignment(ctx, &santa.GetMyAssignmentInput{
		SecretSantaID: current.ID,
		ParticipantID: req.UserID,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetRevealMessage(ctx, &messaging.GetRevealMessageInput{
		RecipientName: c.displayName(ctx, mine.RecipientID),
		Budget:        current.Budget,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:   msg.Message,
		Ephemeral: true,
	}, nil
}

// current loads the Secret Santa of the request's channel
func (c *SantaCommand) current(ctx context.Context, req *SantaRequest) (*models.SecretSanta, error) {
	output, err := c.santaService.GetSecretSantaByEvent(ctx, &santa.GetSecretSantaByEventInput{
		EventID: req.ChannelID,
	})
	if err != nil {
		return nil, err
	}
	return output.SecretSanta, nil
}

// owned loads the channel's Secret Santa and checks the caller organises it
func (c *SantaCommand) owned(ctx context.Context, req *SantaRequest) (*models.SecretSanta, error) {
	current, err := c.current(ctx, req)
	if err != nil {
		return nil, err
	}

	if current.OwnerID != req.UserID {
		return nil, errNotOwner
	}
	return current, nil
}

func (c *SantaCommand) errorResponse(ctx context.Context, req *SantaRequest, err error) *Response {
	errorType := errorTypeFor(err)

	var detail string
	var infeasible *draw.InfeasibleError
	if errors.As(err, &infeasible) {
		detail = mentionParticipants(infeasible.Reason, infeasible.Participants)
	}

	if errorType == messaging.ErrorTypeUnknown || errorType == messaging.ErrorTypeTryAgain {
		c.logger.Error("santa command failed",
			zap.String("subcommand", req.Subcommand),
			zap.String("channel_id", req.ChannelID),
			zap.Error(err),
		)
	}

	msg, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
		Detail:    detail,
	})
	if msgErr != nil {
		return &Response{Content: err.Error(), IsError: true, Ephemeral: true}
	}

	return &Response{
		Title:     msg.Title,
		Content:   msg.Message,
		IsError:   true,
		Ephemeral: true,
	}
}

func (c *SantaCommand) remember(ctx context.Context, userID, name string) {
	if c.directory == nil || userID == "" || name == "" {
		return
	}

	err := c.directory.SaveAttendee(ctx, &attendee.SaveAttendeeInput{
		Attendee: &models.Attendee{ID: userID, Name: name},
	})
	if err != nil {
		c.logger.Warn("failed to save attendee", zap.String("user_id", userID), zap.Error(err))
	}
}

func (c *SantaCommand) displayName(ctx context.Context, userID string) string {
	if c.directory != nil {
		record, err := c.directory.GetAttendee(ctx, &attendee.GetAttendeeInput{AttendeeID: userID})
		if err == nil && record != nil && record.Name != "" {
			return record.Name
		}
	}
	return mention(userID)
}

func errorTypeFor(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, errNotOwner):
		return messaging.ErrorTypeNotOwner
	case errors.Is(err, santa.ErrNotFound):
		return messaging.ErrorTypeNotFound
	case errors.Is(err, santa.ErrAlreadyExists):
		return messaging.ErrorTypeAlreadyExists
	case errors.Is(err, santa.ErrInvalidState):
		return messaging.ErrorTypeInvalidState
	case errors.Is(err, santa.ErrInvalidConstraint):
		return messaging.ErrorTypeInvalidConstraint
	case errors.Is(err, santa.ErrNotEnoughParticipants):
		return messaging.ErrorTypeNotEnough
	case errors.Is(err, santa.ErrInfeasible):
		return messaging.ErrorTypeInfeasible
	case errors.Is(err, santa.ErrNotDrawnYet):
		return messaging.ErrorTypeNotDrawnYet
	case errors.Is(err, santa.ErrConfirmationRequired):
		return messaging.ErrorTypeConfirmationRequired
	case errors.Is(err, santa.ErrConcurrentUpdate), errors.Is(err, santa.ErrStoreFailure):
		return messaging.ErrorTypeTryAgain
	default:
		return messaging.ErrorTypeUnknown
	}
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func describeExclusions(excluded []string) string {
	if len(excluded) == 0 {
		return "You have no exclusions."
	}

	mentions := make([]string, 0, len(excluded))
	for _, id := range excluded {
		mentions = append(mentions, mention(id))
	}
	return "Your exclusions: " + strings.Join(mentions, ", ")
}

// mentionParticipants turns participant IDs inside a reason into mentions
func mentionParticipants(reason string, participantIDs []string) string {
	replacements := make([]string, 0, 2*len(participantIDs))
	for _, id := range participantIDs {
		replacements = append(replacements, id, mention(id))
	}
	if len(replacements) == 0 {
		return reason
	}
	return strings.NewReplacer(replacements...).Replace(reason)
}

// requestFromInteraction reads the caller and the subcommand options
func requestFromInteraction(i *discordgo.InteractionCreate, data discordgo.ApplicationCommandInteractionData) *SantaRequest {
	sub := data.Options[0]
	req := &SantaRequest{
		Subcommand: sub.Name,
		ChannelID:  i.ChannelID,
	}

	user := i.User
	if i.Member != nil && i.Member.User != nil {
		user = i.Member.User
		req.UserName = i.Member.Nick
	}
	if user != nil {
		req.UserID = user.ID
		if req.UserName == "" {
			req.UserName = userName(user)
		}
	}

	for _, opt := range sub.Options {
		switch opt.Name {
		case "description":
			req.Description = opt.StringValue()
		case "budget":
			req.Budget = opt.StringValue()
		case "confirm":
			req.Confirm = opt.BoolValue()
		case "user":
			target := opt.UserValue(nil)
			req.TargetID = target.ID
			if data.Resolved != nil {
				if resolved, ok := data.Resolved.Users[target.ID]; ok {
					req.TargetName = userName(resolved)
				}
				if member, ok := data.Resolved.Members[target.ID]; ok && member.Nick != "" {
					req.TargetName = member.Nick
				}
			}
		}
	}

	return req
}

func userName(user *discordgo.User) string {
	if user.GlobalName != "" {
		return user.GlobalName
	}
	return user.Username
}
