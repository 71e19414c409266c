package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
	"github.com/TimoKask/Creditstar-Kudos/internal/metrics"
)

// handleInteractivity processes view_submission callbacks of the kudos modal.
// Validation failures are returned as a response_action so Slack renders them
// inside the open modal; everything else closes the modal with an empty 200.
func (s *Server) handleInteractivity(c echo.Context) error {
	payload := c.FormValue("payload")
	if payload == "" {
		metrics.SlackRequestsTotal.WithLabelValues("interactivity", "bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "missing payload")
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		metrics.SlackRequestsTotal.WithLabelValues("interactivity", "bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "failed to parse interaction payload")
	}

	if callback.Type != slack.InteractionTypeViewSubmission || callback.View.CallbackID != kudos.ModalCallbackID {
		metrics.SlackRequestsTotal.WithLabelValues("interactivity", "ignored").Inc()
		return c.NoContent(http.StatusOK)
	}

	sub := kudos.ModalSubmission{
		UserID:       callback.User.ID,
		ChannelID:    callback.View.PrivateMetadata,
		RecipientIDs: submittedRecipients(&callback),
		Message:      submittedMessage(&callback),
	}

	fieldErrs, err := s.service.HandleModalSubmission(c.Request().Context(), sub)
	if err != nil {
		slog.Error("modal submission handling failed", "user_id", sub.UserID, "error", err)
		metrics.SlackRequestsTotal.WithLabelValues("interactivity", "error").Inc()
		return c.NoContent(http.StatusOK)
	}

	if len(fieldErrs) > 0 {
		metrics.SlackRequestsTotal.WithLabelValues("interactivity", "validation_failed").Inc()
		return c.JSON(http.StatusOK, slack.NewErrorsViewSubmissionResponse(fieldErrs))
	}

	metrics.SlackRequestsTotal.WithLabelValues("interactivity", "ok").Inc()
	return c.NoContent(http.StatusOK)
}

func submittedRecipients(callback *slack.InteractionCallback) []string {
	state := callback.View.State
	if state == nil {
		return nil
	}
	return state.Values[kudos.ModalBlockRecipients][kudos.ModalActionRecipients].SelectedUsers
}

func submittedMessage(callback *slack.InteractionCallback) string {
	state := callback.View.State
	if state == nil {
		return ""
	}
	return state.Values[kudos.ModalBlockMessage][kudos.ModalActionMessage].Value
}
