package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	colorFestive = 0xc0392b
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Response is what a command answers with
type Response struct {
	Title   string
	Content string

	// Ephemeral responses are only visible to the caller
	Ephemeral bool

	// IsError renders the response as an error
	IsError bool
}

// Respond sends a Response to an interaction
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, resp *Response) error {
	return s.InteractionRespond(i.Interaction, interactionResponse(resp))
}

func interactionResponse(resp *Response) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{}

	if resp.Title == "" && !resp.IsError {
		data.Content = resp.Content
	} else {
		color := colorFestive
		title := resp.Title
		if resp.IsError {
			color = colorError
			if title == "" {
				title = "Error"
			}
		}

		data.Embeds = []*discordgo.MessageEmbed{{
			Title:       title,
			Description: resp.Content,
			Color:       color,
		}}
	}

	if resp.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}
