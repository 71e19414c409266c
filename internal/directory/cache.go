// Package directory caches the workspace member list used for plain-text
// mention resolution.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
	"github.com/TimoKask/Creditstar-Kudos/internal/metrics"
)

// DefaultTTL is the freshness window of the member list.
const DefaultTTL = 5 * time.Minute

// Cache is a single-slot, time-bounded cache over a MemberFetcher. A list
// older than the TTL is never served; the next access fetches a fresh one.
// Concurrent stale callers are not deduplicated; refreshes are infrequent and
// idempotent, so each one fetches on its own.
//
// The underlying fetch runs through a circuit breaker so a degraded Slack API
// fails fast instead of stacking up slow directory calls.
type Cache struct {
	mu        sync.Mutex
	members   []domain.Member
	fetchedAt time.Time

	fetcher domain.MemberFetcher
	breaker *gobreaker.CircuitBreaker
	ttl     time.Duration
	clock   clockwork.Clock
}

var _ domain.Directory = (*Cache)(nil)

func NewCache(fetcher domain.MemberFetcher, ttl time.Duration, clock clockwork.Clock) *Cache {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "slack-directory",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("directory circuit breaker state changed", "from", from.String(), "to", to.String())
			metrics.DirectoryBreakerState.Set(breakerStateToFloat(to))
		},
	})

	return &Cache{
		fetcher: fetcher,
		breaker: breaker,
		ttl:     ttl,
		clock:   clock,
	}
}

func breakerStateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Members returns the cached member list, refreshing it first when the cached
// copy is older than the TTL. The lock is not held across the fetch, so
// concurrent stale callers each trigger their own refresh.
func (c *Cache) Members(ctx context.Context) ([]domain.Member, error) {
	c.mu.Lock()
	now := c.clock.Now()
	if c.members != nil && now.Sub(c.fetchedAt) < c.ttl {
		members := c.members
		c.mu.Unlock()
		metrics.DirectoryCacheLookups.WithLabelValues("hit").Inc()
		return members, nil
	}
	c.mu.Unlock()
	metrics.DirectoryCacheLookups.WithLabelValues("miss").Inc()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetcher.FetchMembers(ctx)
	})
	if err != nil {
		metrics.DirectoryFetchErrors.Inc()
		return nil, fmt.Errorf("failed to fetch workspace members: %w", err)
	}
	members := result.([]domain.Member)

	c.mu.Lock()
	c.members = members
	c.fetchedAt = now
	c.mu.Unlock()
	return members, nil
}
