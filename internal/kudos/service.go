package kudos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
	"github.com/TimoKask/Creditstar-Kudos/internal/logging"
	"github.com/TimoKask/Creditstar-Kudos/internal/metrics"
)

// Notifier is the slice of the Slack surface the service needs. Implemented by
// the slackbot adapter; kept here on the consumer side so the service is
// testable without a Slack client.
type Notifier interface {
	PostChannelMessage(ctx context.Context, channelID, text string) error
	PostEphemeral(ctx context.Context, channelID, userID, text string) error
	OpenKudosModal(ctx context.Context, triggerID, channelID string, prefill []string) error
}

// CommandRequest is a slash command invocation of one of the kudos triggers.
type CommandRequest struct {
	UserID    string
	ChannelID string
	TriggerID string
	Text      string
}

// ModalSubmission is a submitted kudos form.
type ModalSubmission struct {
	UserID       string
	ChannelID    string
	RecipientIDs []string
	Message      string
}

// FieldErrors maps modal block IDs to validation messages, rendered by Slack
// next to the offending inputs.
type FieldErrors map[string]string

const genericErrorText = "Something went wrong while sending your kudos. Please try again."

// Service orchestrates the three user-facing flows: quick text kudos, the
// modal form, and stats. It owns no state beyond its collaborators; the
// limiter and directory cache are constructed at startup and passed in.
type Service struct {
	parser     *Parser
	limiter    *SubmissionLimiter
	store      domain.KudosStore
	notifier   Notifier
	clock      clockwork.Clock
	statsAllow map[string]struct{}
}

func NewService(parser *Parser, limiter *SubmissionLimiter, store domain.KudosStore, notifier Notifier, clock clockwork.Clock, statsAllowList []string) *Service {
	allow := make(map[string]struct{}, len(statsAllowList))
	for _, id := range statsAllowList {
		allow[id] = struct{}{}
	}
	return &Service{
		parser:     parser,
		limiter:    limiter,
		store:      store,
		notifier:   notifier,
		clock:      clock,
		statsAllow: allow,
	}
}

// HandleCommand processes a kudos slash command. Empty text opens the modal;
// text with no resolvable recipients or no trailing message opens the modal
// pre-filled with any fully-resolved recipients; otherwise the kudos is sent
// inline. All user-visible failures are delivered as ephemeral messages.
func (s *Service) HandleCommand(ctx context.Context, cmd CommandRequest) error {
	if strings.TrimSpace(cmd.Text) == "" {
		return s.notifier.OpenKudosModal(ctx, cmd.TriggerID, cmd.ChannelID, nil)
	}

	result, err := s.parser.Parse(ctx, cmd.Text)
	switch {
	case err == nil:
		return s.send(ctx, "command", cmd.UserID, cmd.ChannelID, result.RecipientIDs, result.Message, s.rejectEphemeral(cmd.ChannelID, cmd.UserID))

	case errors.Is(err, domain.ErrEmptyMessage):
		// Recipients resolved but nothing to say: hand over to the form.
		metrics.KudosRejectedTotal.WithLabelValues("empty_message").Inc()
		return s.notifier.OpenKudosModal(ctx, cmd.TriggerID, cmd.ChannelID, result.RecipientIDs)

	case errors.Is(err, domain.ErrNoRecipients):
		metrics.KudosRejectedTotal.WithLabelValues("no_recipients").Inc()
		return s.notifier.OpenKudosModal(ctx, cmd.TriggerID, cmd.ChannelID, nil)

	default:
		var unknown *domain.UnknownUserError
		if errors.As(err, &unknown) {
			metrics.KudosRejectedTotal.WithLabelValues("unknown_user").Inc()
			text := fmt.Sprintf("I couldn't find anyone named *@%s* in this workspace. Check the spelling and try again.", unknown.Name)
			return s.notifier.PostEphemeral(ctx, cmd.ChannelID, cmd.UserID, text)
		}
		// Directory fetch failed; surface once, generically.
		logging.WithUser(cmd.UserID).Error("mention resolution failed", "error", err)
		return s.notifier.PostEphemeral(ctx, cmd.ChannelID, cmd.UserID, genericErrorText)
	}
}

// HandleModalSubmission validates and sends a kudos submitted via the form.
// Returned FieldErrors are rendered inside the modal; a rate-limited
// submission is dropped with a log line only, since this flow has no private
// response channel.
func (s *Service) HandleModalSubmission(ctx context.Context, sub ModalSubmission) (FieldErrors, error) {
	fieldErrs := make(FieldErrors)
	if len(sub.RecipientIDs) == 0 {
		fieldErrs[ModalBlockRecipients] = "Pick at least one person to thank."
	}
	if strings.TrimSpace(sub.Message) == "" {
		fieldErrs[ModalBlockMessage] = "Say a few words about what they did."
	}
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	err := s.send(ctx, "modal", sub.UserID, sub.ChannelID, sub.RecipientIDs, strings.TrimSpace(sub.Message), func(_ context.Context, verdict Verdict, wait int) error {
		logging.WithUser(sub.UserID).Warn("modal submission dropped by rate limiter",
			"busy", verdict == Busy,
			"wait_seconds", wait,
		)
		return nil
	})
	return nil, err
}

// rejectEphemeral builds the rate-limit rejection path for the command flow:
// an advisory ephemeral message with the wait time where known.
func (s *Service) rejectEphemeral(channelID, userID string) func(context.Context, Verdict, int) error {
	return func(ctx context.Context, verdict Verdict, wait int) error {
		var text string
		if verdict == Busy {
			text = "Easy there, your previous kudos is still being sent."
		} else {
			text = fmt.Sprintf("Please wait %d more second(s) before sending kudos again.", wait)
		}
		return s.notifier.PostEphemeral(ctx, channelID, userID, text)
	}
}

// send runs the shared announce-then-store sequence. onReject handles Busy and
// CoolingDown verdicts; the flows differ only there.
func (s *Service) send(ctx context.Context, source, senderID, channelID string, recipientIDs []string, message string, onReject func(context.Context, Verdict, int) error) error {
	verdict, remaining := s.limiter.TryAcquire(senderID)
	if verdict != Allowed {
		reason := "busy"
		if verdict == CoolingDown {
			reason = "cooling_down"
		}
		metrics.KudosRejectedTotal.WithLabelValues(reason).Inc()
		return onReject(ctx, verdict, WaitSeconds(remaining))
	}
	defer s.limiter.Release(senderID)

	if err := s.notifier.PostChannelMessage(ctx, channelID, announcementText(senderID, recipientIDs, message)); err != nil {
		logging.WithChannel(channelID).Error("failed to post kudos announcement", "user_id", senderID, "error", err)
		return s.notifier.PostEphemeral(ctx, channelID, senderID, genericErrorText)
	}

	event := domain.KudosEvent{
		ID:           uuid.New(),
		CreatedAt:    s.clock.Now(),
		SenderID:     senderID,
		RecipientIDs: recipientIDs,
		Message:      message,
		ChannelID:    channelID,
	}
	if err := s.store.Append(ctx, event); err != nil {
		// The announcement already went out; favor availability over a
		// guaranteed audit trail.
		metrics.StoreAppendFailures.Inc()
		logging.WithUser(senderID).Error("failed to persist kudos event", "event_id", event.ID.String(), "error", err)
	}

	metrics.KudosSentTotal.WithLabelValues(source).Inc()
	return nil
}

func announcementText(senderID string, recipientIDs []string, message string) string {
	mentions := make([]string, len(recipientIDs))
	for i, id := range recipientIDs {
		mentions[i] = fmt.Sprintf("<@%s>", id)
	}
	return fmt.Sprintf(":tada: <@%s> sent kudos to %s!\n> %s", senderID, FormatRecipientList(mentions), message)
}

// HandleStats runs the authorization-gated leaderboard flow. The result is
// always private to the requester; a denial leaks nothing about the allow-list.
func (s *Service) HandleStats(ctx context.Context, userID, channelID string) error {
	if len(s.statsAllow) > 0 {
		if _, ok := s.statsAllow[userID]; !ok {
			metrics.StatsRequestsTotal.WithLabelValues("denied").Inc()
			return s.notifier.PostEphemeral(ctx, channelID, userID, "Sorry, you're not allowed to view kudos stats.")
		}
	}

	cutoff := s.clock.Now().AddDate(0, -statsWindowMonths, 0)
	events, err := s.store.RecentSince(ctx, cutoff)
	if err != nil {
		metrics.StatsRequestsTotal.WithLabelValues("error").Inc()
		logging.WithUser(userID).Error("failed to load kudos window", "error", err)
		return s.notifier.PostEphemeral(ctx, channelID, userID, "Couldn't load kudos stats right now. Please try again.")
	}

	metrics.StatsRequestsTotal.WithLabelValues("ok").Inc()
	return s.notifier.PostEphemeral(ctx, channelID, userID, RenderLeaderboard(Aggregate(events)))
}
