// Package slackbot adapts the Slack Web API to the interfaces the kudos
// service consumes: posting announcements, ephemeral responses, and the modal.
package slackbot

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
)

// api is the slice of the Slack client the notifier uses.
type api interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	PostEphemeralContext(ctx context.Context, channelID, userID string, options ...slack.MsgOption) (string, error)
	OpenViewContext(ctx context.Context, triggerID string, view slack.ModalViewRequest) (*slack.ViewResponse, error)
}

// Notifier posts kudos messages and opens the kudos modal.
type Notifier struct {
	client api
}

var _ kudos.Notifier = (*Notifier)(nil)

func NewNotifier(client api) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) PostChannelMessage(ctx context.Context, channelID, text string) error {
	_, _, err := n.client.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post message to %s: %w", channelID, err)
	}
	return nil
}

func (n *Notifier) PostEphemeral(ctx context.Context, channelID, userID, text string) error {
	_, err := n.client.PostEphemeralContext(ctx, channelID, userID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("failed to post ephemeral message to %s: %w", userID, err)
	}
	return nil
}

func (n *Notifier) OpenKudosModal(ctx context.Context, triggerID, channelID string, prefill []string) error {
	_, err := n.client.OpenViewContext(ctx, triggerID, BuildKudosModal(channelID, prefill))
	if err != nil {
		return fmt.Errorf("failed to open kudos modal: %w", err)
	}
	return nil
}
