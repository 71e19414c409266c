package kudos

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

type stubDirectory struct {
	members []domain.Member
	err     error
	calls   int
}

func (d *stubDirectory) Members(context.Context) ([]domain.Member, error) {
	d.calls++
	return d.members, d.err
}

func testMembers() []domain.Member {
	return []domain.Member{
		{ID: "U111", Name: "alice", DisplayName: "Alice W"},
		{ID: "U222", Name: "bob.smith", DisplayName: "Bob"},
		{ID: "U333", Name: "carol", DisplayName: "Carol"},
	}
}

func TestParse_SlackMentions(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantIDs     []string
		wantMessage string
	}{
		{
			name:        "single mention",
			text:        "<@U111> thanks for the review",
			wantIDs:     []string{"U111"},
			wantMessage: "thanks for the review",
		},
		{
			name:        "mention with display name suffix",
			text:        "<@U111|alice> great work on the release",
			wantIDs:     []string{"U111"},
			wantMessage: "great work on the release",
		},
		{
			name:        "multiple mentions in order",
			text:        "<@U222> <@U111> thanks both",
			wantIDs:     []string{"U222", "U111"},
			wantMessage: "thanks both",
		},
		{
			name:        "duplicates preserved",
			text:        "<@U111> <@U111> double thanks",
			wantIDs:     []string{"U111", "U111"},
			wantMessage: "double thanks",
		},
		{
			name: "mention mid-text slices after last token",
			// The first mention re-appears verbatim inside the message of
			// nobody: message is everything after the LAST token.
			text:        "<@U111> carried the launch <@U222> helped out",
			wantIDs:     []string{"U111", "U222"},
			wantMessage: "helped out",
		},
		{
			name:        "whitespace trimmed",
			text:        "<@U333>    well done   ",
			wantIDs:     []string{"U333"},
			wantMessage: "well done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &stubDirectory{members: testMembers()}
			parser := NewParser(dir)

			result, err := parser.Parse(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, result.RecipientIDs)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Zero(t, dir.calls, "slack-formatted mentions must not hit the directory")
		})
	}
}

func TestParse_EmptyMessageKeepsRecipients(t *testing.T) {
	parser := NewParser(&stubDirectory{members: testMembers()})

	result, err := parser.Parse(context.Background(), "<@U111> <@U222>")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Equal(t, []string{"U111", "U222"}, result.RecipientIDs)
}

func TestParse_PlainMentionFallback(t *testing.T) {
	dir := &stubDirectory{members: testMembers()}
	parser := NewParser(dir)

	result, err := parser.Parse(context.Background(), "@alice @bob.smith thanks for the help")
	require.NoError(t, err)
	assert.Equal(t, []string{"U111", "U222"}, result.RecipientIDs)
	assert.Equal(t, "thanks for the help", result.Message)
	assert.Equal(t, 1, dir.calls)
}

func TestParse_PlainMentionByDisplayName(t *testing.T) {
	parser := NewParser(&stubDirectory{members: testMembers()})

	result, err := parser.Parse(context.Background(), "@Bob saved the demo")
	require.NoError(t, err)
	assert.Equal(t, []string{"U222"}, result.RecipientIDs)
}

func TestParse_PlainMentionCaseSensitive(t *testing.T) {
	parser := NewParser(&stubDirectory{members: testMembers()})

	_, err := parser.Parse(context.Background(), "@Alice nice work")

	var unknown *domain.UnknownUserError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Alice", unknown.Name)
}

func TestParse_UnresolvableNameDiscardsPartialResult(t *testing.T) {
	parser := NewParser(&stubDirectory{members: testMembers()})

	result, err := parser.Parse(context.Background(), "@alice @nobody great sprint")

	var unknown *domain.UnknownUserError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nobody", unknown.Name)
	assert.Empty(t, result.RecipientIDs)
}

func TestParse_NoMentionsOfEitherForm(t *testing.T) {
	parser := NewParser(&stubDirectory{members: testMembers()})

	_, err := parser.Parse(context.Background(), "thanks everyone for the great sprint")
	assert.ErrorIs(t, err, domain.ErrNoRecipients)
}

func TestParse_DirectoryFailurePropagates(t *testing.T) {
	parser := NewParser(&stubDirectory{err: errors.New("slack is down")})

	_, err := parser.Parse(context.Background(), "@alice thanks")
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(domain.ErrNoRecipients))
	assert.True(t, IsValidationError(domain.ErrEmptyMessage))
	assert.True(t, IsValidationError(&domain.UnknownUserError{Name: "x"}))
	assert.False(t, IsValidationError(errors.New("boom")))
}
