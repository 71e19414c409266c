package directory

import (
	"context"

	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

// slackUserClient is the slice of the Slack API used for directory fetches.
type slackUserClient interface {
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
}

// SlackFetcher retrieves the workspace member list via the Slack Web API.
// Bots and deleted accounts are filtered out; they can never receive kudos.
type SlackFetcher struct {
	client slackUserClient
}

var _ domain.MemberFetcher = (*SlackFetcher)(nil)

func NewSlackFetcher(client slackUserClient) *SlackFetcher {
	return &SlackFetcher{client: client}
}

func (f *SlackFetcher) FetchMembers(ctx context.Context) ([]domain.Member, error) {
	users, err := f.client.GetUsersContext(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0, len(users))
	for i := range users {
		u := &users[i]
		if u.IsBot || u.Deleted {
			continue
		}
		members = append(members, domain.Member{
			ID:          u.ID,
			Name:        u.Name,
			DisplayName: u.Profile.DisplayName,
			RealName:    u.RealName,
		})
	}
	return members, nil
}
