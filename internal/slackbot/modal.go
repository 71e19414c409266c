package slackbot

import (
	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
)

// BuildKudosModal assembles the kudos form: a multi-user recipient selector
// (optionally pre-populated) and a multi-line message input. The originating
// channel travels in private_metadata so the submission handler knows where to
// announce.
func BuildKudosModal(channelID string, prefill []string) slack.ModalViewRequest {
	recipients := slack.NewOptionsMultiSelectBlockElement(
		slack.MultiOptTypeUser,
		slack.NewTextBlockObject(slack.PlainTextType, "Pick one or more people", false, false),
		kudos.ModalActionRecipients,
	)
	recipients.InitialUsers = prefill

	message := slack.NewPlainTextInputBlockElement(
		slack.NewTextBlockObject(slack.PlainTextType, "What did they do?", false, false),
		kudos.ModalActionMessage,
	)
	message.Multiline = true

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      kudos.ModalCallbackID,
		PrivateMetadata: channelID,
		Title:           slack.NewTextBlockObject(slack.PlainTextType, "Send kudos", false, false),
		Submit:          slack.NewTextBlockObject(slack.PlainTextType, "Send", false, false),
		Close:           slack.NewTextBlockObject(slack.PlainTextType, "Cancel", false, false),
		Blocks: slack.Blocks{
			BlockSet: []slack.Block{
				slack.NewInputBlock(
					kudos.ModalBlockRecipients,
					slack.NewTextBlockObject(slack.PlainTextType, "Who deserves kudos?", false, false),
					nil,
					recipients,
				),
				slack.NewInputBlock(
					kudos.ModalBlockMessage,
					slack.NewTextBlockObject(slack.PlainTextType, "Message", false, false),
					nil,
					message,
				),
			},
		},
	}
}
