package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// DiscordSession is the subset of *discordgo.Session used for direct messages
type DiscordSession interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSenderConfig holds configuration for the Discord sender
type DiscordSenderConfig struct {
	Session DiscordSession
}

// DiscordSender delivers notifications as Discord direct messages
type DiscordSender struct {
	session DiscordSession
}

// NewDiscordSender creates a new Discord direct message sender
func NewDiscordSender(cfg *DiscordSenderConfig) (*DiscordSender, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	return &DiscordSender{
		session: cfg.Session,
	}, nil
}

// SendDirectMessage opens a DM channel with the user and posts the content
func (s *DiscordSender) SendDirectMessage(ctx context.Context, input *SendDirectMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	channel, err := s.session.UserChannelCreate(input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := s.session.ChannelMessageSend(channel.ID, input.Content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}
