package memorylimiter

import (
	"fmt"
	"sync"
	"time"
)

// Limit defines window and max count for a bucket.
type Limit struct {
	Limit  int
	Window time.Duration
}

// DefaultLimits covers the four sponsor admin operations. Mutations are
// tighter than reads.
func DefaultLimits() map[string]Limit {
	return map[string]Limit{
		"sponsor_grant":  {Limit: 30, Window: time.Minute},
		"sponsor_revoke": {Limit: 30, Window: time.Minute},
		"sponsor_query":  {Limit: 120, Window: time.Minute},
		"sponsor_list":   {Limit: 20, Window: time.Minute},
		"default":        {Limit: 60, Window: time.Minute},
	}
}

// Limiter is an in-memory sliding-window rate limiter. It is intended as a
// single-node fallback when Redis is unavailable.
type Limiter struct {
	mu      sync.Mutex
	limits  map[string]Limit
	buckets map[string][]int64 // request times in Unix ms, newest last
}

// New constructs an in-memory limiter. nil limits means DefaultLimits.
func New(limits map[string]Limit) *Limiter {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Limiter{limits: limits, buckets: make(map[string][]int64)}
}

func (l *Limiter) get(bucket string) Limit {
	if v, ok := l.limits[bucket]; ok {
		return v
	}
	if v, ok := l.limits["default"]; ok {
		return v
	}
	return Limit{Limit: 60, Window: time.Minute}
}

// AllowNamed implements the ginutil.RateLimiter contract: sliding window per
// (key, bucket), pruning expired entries on each call and dropping empty
// buckets so memory stays bounded.
func (l *Limiter) AllowNamed(bucket, key string) (bool, error) {
	if l == nil {
		return true, nil
	}
	if bucket == "" || key == "" {
		return false, fmt.Errorf("bucket and key required")
	}

	lim := l.get(bucket)
	nowMs := time.Now().UnixMilli()
	windowStart := nowMs - lim.Window.Milliseconds()
	limitKey := key + ":" + bucket

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.buckets[limitKey]
	pruned := 0
	for pruned < len(ts) && ts[pruned] < windowStart {
		pruned++
	}
	ts = ts[pruned:]

	if len(ts) >= lim.Limit {
		// Deny without recording this attempt.
		l.buckets[limitKey] = ts
		return false, nil
	}

	ts = append(ts, nowMs)
	l.buckets[limitKey] = ts
	return true, nil
}
