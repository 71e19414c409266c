package kudos

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

// slackMentionRe matches Slack-formatted mention tokens, with or without the
// display-name suffix: <@U02AB3CD4> or <@U02AB3CD4|john.doe>.
var slackMentionRe = regexp.MustCompile(`<@([A-Z0-9]+)(?:\|[^>]*)?>`)

// plainMentionRe matches plain-text @name tokens used as a fallback when the
// text carries no Slack-formatted mentions.
var plainMentionRe = regexp.MustCompile(`@([\w.\-]+)`)

// ParseResult holds the recipients and trailing message extracted from raw
// command text. On ErrEmptyMessage the recipient list is still populated so
// callers can pre-fill the modal with the already-resolved recipients.
type ParseResult struct {
	RecipientIDs []string
	Message      string
}

// Parser extracts recipients and the trailing message from raw command text.
// The directory is consulted only on the plain-text fallback path.
type Parser struct {
	directory domain.Directory
}

func NewParser(directory domain.Directory) *Parser {
	return &Parser{directory: directory}
}

// Parse scans text for Slack-formatted mention tokens. If at least one is
// found, the recipients are exactly those tokens in order of first appearance
// (duplicates preserved) and the message is everything after the end of the
// last token, trimmed. Mentions followed by more text before the final mention
// re-appear verbatim inside the message; that is intentional substring slicing,
// not token removal.
//
// With no Slack-formatted mentions, plain @name tokens are resolved against
// the workspace directory by exact match on login name or display name
// (case-sensitive). A single unresolvable name aborts the whole parse.
func (p *Parser) Parse(ctx context.Context, text string) (ParseResult, error) {
	if ids, message, ok := matchMentions(slackMentionRe, text); ok {
		if message == "" {
			return ParseResult{RecipientIDs: ids}, domain.ErrEmptyMessage
		}
		return ParseResult{RecipientIDs: ids, Message: message}, nil
	}

	names, message, ok := matchMentions(plainMentionRe, text)
	if !ok {
		return ParseResult{}, domain.ErrNoRecipients
	}

	members, err := p.directory.Members(ctx)
	if err != nil {
		return ParseResult{}, err
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		id, found := resolveName(members, name)
		if !found {
			return ParseResult{}, &domain.UnknownUserError{Name: name}
		}
		ids = append(ids, id)
	}

	if message == "" {
		return ParseResult{RecipientIDs: ids}, domain.ErrEmptyMessage
	}
	return ParseResult{RecipientIDs: ids, Message: message}, nil
}

// matchMentions returns all capture groups of re in order of appearance and
// the trimmed text after the end of the last match.
func matchMentions(re *regexp.Regexp, text string) (tokens []string, message string, ok bool) {
	matches := re.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil, "", false
	}

	tokens = make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, text[m[2]:m[3]])
	}

	last := matches[len(matches)-1]
	message = strings.TrimSpace(text[last[1]:])
	return tokens, message, true
}

func resolveName(members []domain.Member, name string) (string, bool) {
	for _, m := range members {
		if m.Name == name || m.DisplayName == name {
			return m.ID, true
		}
	}
	return "", false
}

// IsValidationError reports whether err is a user-facing parse failure rather
// than a collaborator failure.
func IsValidationError(err error) bool {
	var unknown *domain.UnknownUserError
	return errors.Is(err, domain.ErrNoRecipients) ||
		errors.Is(err, domain.ErrEmptyMessage) ||
		errors.As(err, &unknown)
}
