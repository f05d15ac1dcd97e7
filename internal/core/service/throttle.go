package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Throttle interface {
	Allow(userID string) bool
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserThrottle keeps one token bucket per user. Buckets idle for longer than
// idleAfter are dropped by the prune loop.
type UserThrottle struct {
	users     map[string]*bucket
	limit     rate.Limit
	burst     int
	idleAfter time.Duration
	mutex     *sync.Mutex
	now       func() time.Time
}

const (
	DefaultIdleAfter = 10 * time.Minute
	pruneInterval    = time.Minute
)

// NewUserThrottle starts the prune loop, which stops with ctx. A perSecond of zero
// or less disables throttling.
func NewUserThrottle(ctx context.Context, perSecond float64, burst int) *UserThrottle {
	ut := &UserThrottle{
		users:     make(map[string]*bucket),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		idleAfter: DefaultIdleAfter,
		mutex:     &sync.Mutex{},
		now:       time.Now,
	}

	if perSecond <= 0 {
		ut.limit = rate.Inf
	}

	go ut.PruneIdle(ctx)

	return ut
}

func (t *UserThrottle) Allow(userID string) bool {
	if t.limit == rate.Inf {
		return true
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	now := t.now()

	b, ok := t.users[userID]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.users[userID] = b
	}
	b.lastSeen = now

	return b.limiter.AllowN(now, 1)
}

func (t *UserThrottle) PruneIdle(ctx context.Context) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := t.prune()
			if removed > 0 {
				log.Debug().Int("removed", removed).Msg("pruned idle throttle buckets")
			}
		case <-ctx.Done():
			log.Debug().Msg("stopping throttle pruning")
			return
		}
	}
}

func (t *UserThrottle) prune() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	cutoff := t.now().Add(-t.idleAfter)

	removed := 0
	for id, b := range t.users {
		if b.lastSeen.Before(cutoff) {
			delete(t.users, id)
			removed++
		}
	}

	return removed
}
