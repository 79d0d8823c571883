package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/santa/internal/random"
)

// service implements the Service interface
type service struct {
	random random.Source
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	source := random.Source(random.New(nil))
	if config != nil && config.Random != nil {
		source = config.Random
	}

	return &service{
		random: source,
	}, nil
}

// GetCreatedMessage returns an announcement for a new Secret Santa
func (s *service) GetCreatedMessage(ctx context.Context, input *GetCreatedMessageInput) (*GetCreatedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"%s is organising a Secret Santa! Use `/santa join` to take part.",
		"Ho ho ho! %s opened a Secret Santa. Join with `/santa join`.",
		"The sleigh is boarding. %s started a Secret Santa, hop on with `/santa join`.",
	}

	var b strings.Builder
	fmt.Fprintf(&b, s.pick(messages), input.OwnerName)
	if input.Description != "" {
		fmt.Fprintf(&b, "\n\n%s", input.Description)
	}
	if input.Budget != "" {
		fmt.Fprintf(&b, "\nBudget: %s", input.Budget)
	}

	return &GetCreatedMessageOutput{
		Title:   "🎁 Secret Santa",
		Message: b.String(),
	}, nil
}

// GetJoinMessage returns a message for when someone joins
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	if input.AlreadyJoined {
		messages = []string{
			"%s, you're already on the list. Santa checked it twice.",
			"%s is already in! No double helpings of gifts.",
		}
	} else {
		messages = []string{
			"%s joined the Secret Santa!",
			"Another elf for the workshop: welcome, %s!",
			"%s is in. Start thinking about gifts!",
		}
	}

	message := fmt.Sprintf(s.pick(messages), input.ParticipantName)
	if input.ParticipantCount > 0 {
		message = fmt.Sprintf("%s (%d taking part)", message, input.ParticipantCount)
	}

	return &GetJoinMessageOutput{
		Message: message,
	}, nil
}

// GetDrawCompletedMessage returns the direct message sent after the draw. It
// never names the recipient.
func (s *service) GetDrawCompletedMessage(ctx context.Context, input *GetDrawCompletedMessageInput) (*GetDrawCompletedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"Hi %s! The Secret Santa names have been drawn.",
		"%s, the elves have spoken: the draw is done!",
		"Good news %s, your Secret Santa match is ready.",
	}

	var b strings.Builder
	fmt.Fprintf(&b, s.pick(messages), input.ParticipantName)
	if input.Description != "" {
		fmt.Fprintf(&b, "\n%s", input.Description)
	}
	if input.Budget != "" {
		fmt.Fprintf(&b, "\nBudget: %s", input.Budget)
	}
	b.WriteString("\nUse `/santa whoami` in the event channel to see who you're gifting.")

	return &GetDrawCompletedMessageOutput{
		Message: b.String(),
	}, nil
}

// GetDrawCancelledMessage returns the direct message sent when a draw is cancelled
func (s *service) GetDrawCancelledMessage(ctx context.Context, input *GetDrawCancelledMessageInput) (*GetDrawCancelledMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"Hi %s, the Secret Santa draw was cancelled. Forget your match, a new draw will follow.",
		"%s, the organiser called the draw back. Hold off on shopping until the next one!",
	}

	message := fmt.Sprintf(s.pick(messages), input.ParticipantName)
	if input.Description != "" {
		message = fmt.Sprintf("%s\n%s", message, input.Description)
	}

	return &GetDrawCancelledMessageOutput{
		Message: message,
	}, nil
}

// GetRevealMessage returns the private message naming a participant's recipient
func (s *service) GetRevealMessage(ctx context.Context, input *GetRevealMessageInput) (*GetRevealMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		"🤫 You are the Secret Santa of **%s**.",
		"🎅 Your giftee is **%s**. Keep it secret!",
	}

	message := fmt.Sprintf(s.pick(messages), input.RecipientName)
	if input.Budget != "" {
		message = fmt.Sprintf("%s\nBudget: %s", message, input.Budget)
	}

	return &GetRevealMessageOutput{
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title, message string
	switch input.ErrorType {
	case ErrorTypeNotFound:
		title, message = "Nothing Here", "There is no Secret Santa in this channel, or you're not part of it."
	case ErrorTypeAlreadyExists:
		title, message = "Already Running", "This channel already has a Secret Santa."
	case ErrorTypeInvalidState:
		title, message = "Not Right Now", "The names have already been drawn. Cancel the draw to change anything."
	case ErrorTypeInvalidConstraint:
		title, message = "Invalid Exclusion", "You can only exclude other participants of this Secret Santa."
	case ErrorTypeNotEnough:
		title, message = "Need More Elves", "There are not enough participants to draw names yet."
	case ErrorTypeInfeasible:
		title, message = "No Valid Draw", "The exclusions make a draw impossible. Remove some and try again."
	case ErrorTypeNotDrawnYet:
		title, message = "Patience", "Names have not been drawn yet."
	case ErrorTypeConfirmationRequired:
		title, message = "Are You Sure?", "The names were already drawn. Repeat with `confirm: true` to delete anyway."
	case ErrorTypeNotOwner:
		title, message = "Organisers Only", "Only the organiser can do that."
	case ErrorTypeTryAgain:
		title, message = "Busy Elves", "Something changed at the same time. Please try again."
	default:
		title, message = "Error", "Something went wrong in the workshop."
	}

	if input.Detail != "" {
		message = fmt.Sprintf("%s\n%s", message, input.Detail)
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.random.IntN(len(messages))]
}
