package server

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
	"github.com/TimoKask/Creditstar-Kudos/internal/metrics"
)

// Slash command triggers. /kudos and /props are equivalent.
const (
	commandKudos = "/kudos"
	commandProps = "/props"
	commandStats = "/kudos-stats"
)

// handleSlashCommand dispatches the three slash commands. Slack expects a
// response within 3 seconds; all flows answer with an empty 200 and deliver
// their results through the Web API instead of the command response.
func (s *Server) handleSlashCommand(c echo.Context) error {
	cmd, err := slack.SlashCommandParse(c.Request())
	if err != nil {
		metrics.SlackRequestsTotal.WithLabelValues("commands", "bad_request").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "failed to parse slash command")
	}

	ctx := c.Request().Context()

	switch cmd.Command {
	case commandKudos, commandProps:
		err = s.service.HandleCommand(ctx, kudos.CommandRequest{
			UserID:    cmd.UserID,
			ChannelID: cmd.ChannelID,
			TriggerID: cmd.TriggerID,
			Text:      cmd.Text,
		})
	case commandStats:
		err = s.service.HandleStats(ctx, cmd.UserID, cmd.ChannelID)
	default:
		metrics.SlackRequestsTotal.WithLabelValues("commands", "unknown").Inc()
		return c.String(http.StatusOK, "Unknown command.")
	}

	if err != nil {
		// The user already got an ephemeral response where possible; a non-200
		// here would make Slack show its own error banner on top of it.
		slog.Error("slash command handling failed", "command", cmd.Command, "user_id", cmd.UserID, "error", err)
		metrics.SlackRequestsTotal.WithLabelValues("commands", "error").Inc()
		return c.NoContent(http.StatusOK)
	}

	metrics.SlackRequestsTotal.WithLabelValues("commands", "ok").Inc()
	return c.NoContent(http.StatusOK)
}
