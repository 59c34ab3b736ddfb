// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ratelimit provides a keyed token-bucket rate limiter used to
// bound how often individual peers can trigger work.
package ratelimit

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limiter keeps one token bucket per string key. Buckets hold burst
// tokens and refill one token per refill interval.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// New returns a Limiter with the given refill interval and burst size.
func New(refill time.Duration, burst int) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(refill),
		burst:    burst,
	}
}

// Allow reports whether the bucket for key has count tokens available,
// consuming them if so.
func (l *Limiter) Allow(key string, count int) bool {
	return l.get(key).AllowN(time.Now(), count)
}

// Clear drops the bucket for key, typically on peer disconnect.
func (l *Limiter) Clear(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.limiters, key)
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}
