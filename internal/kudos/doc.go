// Package kudos implements the core kudos flows: mention parsing, per-user
// submission limiting, leaderboard aggregation, and the orchestration service
// that ties them to the directory, the store, and the Slack poster.
package kudos
