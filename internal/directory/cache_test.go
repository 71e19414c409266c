package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

type countingFetcher struct {
	members []domain.Member
	err     error
	calls   int
}

func (f *countingFetcher) FetchMembers(context.Context) ([]domain.Member, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func TestCache_SingleFetchWithinWindow(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{members: []domain.Member{{ID: "U1", Name: "alice"}}}
	cache := NewCache(fetcher, DefaultTTL, clock)

	members, err := cache.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 1)

	clock.Advance(4 * time.Minute)

	_, err = cache.Members(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls, "second get within the window must not fetch")
}

func TestCache_RefetchAfterExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{members: []domain.Member{{ID: "U1"}}}
	cache := NewCache(fetcher, DefaultTTL, clock)

	_, err := cache.Members(context.Background())
	require.NoError(t, err)

	clock.Advance(DefaultTTL)

	_, err = cache.Members(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCache_RefreshReplacesList(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{members: []domain.Member{{ID: "U1"}}}
	cache := NewCache(fetcher, DefaultTTL, clock)

	_, err := cache.Members(context.Background())
	require.NoError(t, err)

	fetcher.members = []domain.Member{{ID: "U1"}, {ID: "U2"}}
	clock.Advance(DefaultTTL + time.Second)

	members, err := cache.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestCache_FetchErrorPropagates(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{err: errors.New("slack unavailable")}
	cache := NewCache(fetcher, DefaultTTL, clock)

	_, err := cache.Members(context.Background())
	assert.Error(t, err)
}

func TestCache_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{err: errors.New("slack unavailable")}
	cache := NewCache(fetcher, DefaultTTL, clock)

	for i := 0; i < 3; i++ {
		_, err := cache.Members(context.Background())
		require.Error(t, err)
	}
	assert.Equal(t, 3, fetcher.calls)

	// Breaker is open now: the fetcher is no longer reached.
	_, err := cache.Members(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, fetcher.calls)
}

func TestCache_ErrorDoesNotPoisonCache(t *testing.T) {
	clock := clockwork.NewFakeClock()
	fetcher := &countingFetcher{err: errors.New("slack unavailable")}
	cache := NewCache(fetcher, DefaultTTL, clock)

	_, err := cache.Members(context.Background())
	require.Error(t, err)

	fetcher.err = nil
	fetcher.members = []domain.Member{{ID: "U1"}}

	members, err := cache.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
