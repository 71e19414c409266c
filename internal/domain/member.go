package domain

import "context"

// Member is a workspace user as reported by the Slack directory.
type Member struct {
	ID          string
	Name        string // login name, e.g. "john.doe"
	DisplayName string
	RealName    string
}

// MemberFetcher retrieves the full workspace member list from the platform.
// Implemented by the Slack adapter; the directory cache sits in front of it.
type MemberFetcher interface {
	FetchMembers(ctx context.Context) ([]Member, error)
}

// Directory resolves workspace members, serving from a bounded-freshness cache.
type Directory interface {
	Members(ctx context.Context) ([]Member, error)
}
