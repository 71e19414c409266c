package kudos

// Block and action IDs of the kudos modal. The slackbot adapter builds the
// view with these IDs and the interactivity handler reads the submitted state
// back out by them; FieldErrors keys must match the block IDs.
const (
	ModalCallbackID = "kudos_modal"

	ModalBlockRecipients  = "kudos_recipients_block"
	ModalActionRecipients = "kudos_recipients"
	ModalBlockMessage     = "kudos_message_block"
	ModalActionMessage    = "kudos_message"
)
