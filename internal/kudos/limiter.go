package kudos

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cooldown is the minimum interval between successive submissions per user.
const Cooldown = 3 * time.Second

// Verdict is the outcome of a TryAcquire call.
type Verdict int

const (
	// Allowed means the slot was acquired; the caller must Release on every
	// exit path.
	Allowed Verdict = iota
	// Busy means a submission from the same user is still in flight.
	Busy
	// CoolingDown means the user submitted less than Cooldown ago.
	CoolingDown
)

// SubmissionLimiter enforces the per-user cooldown and the in-flight guard.
// Both maps are guarded by one mutex; the last-submission instant is recorded
// at acquire time, before any downstream work, so a concurrent second request
// from the same user during processing reads as Busy rather than CoolingDown.
type SubmissionLimiter struct {
	mu       sync.Mutex
	inflight map[string]struct{}
	last     map[string]time.Time
	cooldown time.Duration
	clock    clockwork.Clock
}

func NewSubmissionLimiter(cooldown time.Duration, clock clockwork.Clock) *SubmissionLimiter {
	return &SubmissionLimiter{
		inflight: make(map[string]struct{}),
		last:     make(map[string]time.Time),
		cooldown: cooldown,
		clock:    clock,
	}
}

// TryAcquire attempts to admit a submission for userID. On Allowed the user is
// atomically added to the in-flight set and the submission instant recorded.
// On CoolingDown the returned remaining duration is in (0, cooldown].
func (l *SubmissionLimiter) TryAcquire(userID string) (Verdict, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.inflight[userID]; ok {
		return Busy, 0
	}

	now := l.clock.Now()
	if last, ok := l.last[userID]; ok {
		if elapsed := now.Sub(last); elapsed < l.cooldown {
			return CoolingDown, l.cooldown - elapsed
		}
	}

	l.inflight[userID] = struct{}{}
	l.last[userID] = now
	return Allowed, 0
}

// Release removes userID from the in-flight set. Safe to call for a user that
// was never acquired.
func (l *SubmissionLimiter) Release(userID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inflight, userID)
}

// WaitSeconds rounds a remaining cooldown up to whole seconds for display.
func WaitSeconds(remaining time.Duration) int {
	secs := int(remaining / time.Second)
	if remaining%time.Second > 0 {
		secs++
	}
	return secs
}
