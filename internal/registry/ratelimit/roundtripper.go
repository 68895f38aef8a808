/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ratelimit

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	// DefaultBurst allows small bursts while still respecting the
	// per-second limit.
	DefaultBurst = 5

	// DefaultLimit is a conservative request rate that leaves headroom
	// for retries and other consumers of the registry quota.
	DefaultLimit rate.Limit = 50

	// backoffDuration is how long to pause after receiving a 429
	// response.
	backoffDuration = 10 * time.Second

	// backoffCooldown is the minimum interval between backoff events to
	// prevent repeated 429s from causing excessive pausing.
	backoffCooldown = 15 * time.Second
)

// RoundTripper wraps an http.RoundTripper with rate limiting and adaptive
// backoff on 429 responses. Every registry call the promotion service
// makes goes through one of these.
type RoundTripper struct {
	name         string
	rateLimiter  *rate.Limiter
	roundTripper http.RoundTripper

	mu            sync.Mutex
	lastBackoff   time.Time
	backoffUntil  time.Time
	totalWaited   time.Duration
	totalRequests int64
}

var _ http.RoundTripper = &RoundTripper{}

// NewRoundTripper creates a rate-limited transport around
// http.DefaultTransport with the given requests-per-second limit.
func NewRoundTripper(limit rate.Limit) *RoundTripper {
	return NewNamedRoundTripper("registry", limit, DefaultBurst, http.DefaultTransport)
}

// NewNamedRoundTripper creates a named rate-limited transport around the
// supplied inner transport. The name shows up in log lines for
// observability.
func NewNamedRoundTripper(
	name string, limit rate.Limit, burst int, inner http.RoundTripper,
) *RoundTripper {
	return &RoundTripper{
		name:         name,
		rateLimiter:  rate.NewLimiter(limit, burst),
		roundTripper: inner,
	}
}

// RoundTrip executes the HTTP request with rate limiting. All methods are
// limited because registry quotas apply to both reads and writes. A 429
// response triggers an adaptive backoff that pauses future requests.
func (rt *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	rt.waitForBackoff(ctx)

	if err := rt.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	rt.mu.Lock()
	rt.totalRequests++
	rt.mu.Unlock()

	resp, err := rt.roundTripper.RoundTrip(r)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		rt.triggerBackoff()
	}

	return resp, nil
}

// Stats returns observability data about this rate limiter.
func (rt *RoundTripper) Stats() (totalRequests int64, totalWaited time.Duration) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.totalRequests, rt.totalWaited
}

func (rt *RoundTripper) waitForBackoff(ctx context.Context) {
	rt.mu.Lock()
	until := rt.backoffUntil
	rt.mu.Unlock()

	if until.IsZero() || time.Now().After(until) {
		return
	}

	wait := time.Until(until)
	logrus.WithField("limiter", rt.name).Warnf(
		"Backoff active, waiting %s before next request", wait.Round(time.Millisecond),
	)

	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}

	rt.mu.Lock()
	rt.totalWaited += wait
	rt.mu.Unlock()
}

func (rt *RoundTripper) triggerBackoff() {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := time.Now()
	if now.Sub(rt.lastBackoff) < backoffCooldown {
		return
	}

	rt.lastBackoff = now
	rt.backoffUntil = now.Add(backoffDuration)
	logrus.WithField("limiter", rt.name).Warnf(
		"Received 429 Too Many Requests, backing off for %s", backoffDuration,
	)
}
