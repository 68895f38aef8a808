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

package approval

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"sigs.k8s.io/promo-service/api/promotion"
)

// ErrUnknownRequest is returned when a decision arrives for an attempt
// that is not awaiting approval. Decisions on already-terminal attempts
// are deliberately ignored rather than reopening them.
var ErrUnknownRequest = errors.New("no promotion awaiting approval for request")

const defaultTimeout = 15 * time.Minute

// Gate suspends protected-environment promotions until an external
// decision arrives. The suspension is cooperative: Await parks on a
// channel and holds no lock while waiting, so unrelated promotions
// proceed unaffected.
type Gate struct {
	clock   clock.Clock
	timeout time.Duration

	mu      sync.Mutex
	pending map[string]chan promotion.ApprovalRecord
}

// New creates an approval gate with the given decision timeout. A zero
// timeout falls back to the default.
func New(timeout time.Duration) *Gate {
	return NewWithClock(timeout, clock.RealClock{})
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(timeout time.Duration, c clock.Clock) *Gate {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Gate{
		clock:   c,
		timeout: timeout,
		pending: map[string]chan promotion.ApprovalRecord{},
	}
}

// Await blocks until a decision arrives for the given request ID, the
// timeout elapses, or the context is cancelled. The pending entry is
// removed on every exit path, so late decisions find nothing to resume.
func (g *Gate) Await(
	ctx context.Context, requestID string,
) (*promotion.ApprovalRecord, error) {
	decisionCh := make(chan promotion.ApprovalRecord, 1)

	g.mu.Lock()
	g.pending[requestID] = decisionCh
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.pending, requestID)
		g.mu.Unlock()
	}()

	timer := g.clock.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case record := <-decisionCh:
		if record.Decision == promotion.DecisionApprove {
			return &record, nil
		}
		return &record, promotion.NewError(
			promotion.ReasonApprovalRejected,
			"promotion rejected by %s", record.Approver,
		)
	case <-timer.C():
		return nil, promotion.NewError(
			promotion.ReasonApprovalTimeout,
			"no approval decision within %s", g.timeout,
		)
	case <-ctx.Done():
		return nil, promotion.NewError(
			promotion.ReasonCancelled, "promotion cancelled while gating",
		)
	}
}

// Resolve is the external resume entry point. It delivers the decision to
// the attempt awaiting it; unknown or already-terminal request IDs yield
// ErrUnknownRequest and change nothing.
func (g *Gate) Resolve(
	requestID, approver string, decision promotion.Decision,
) error {
	g.mu.Lock()
	decisionCh, ok := g.pending[requestID]
	if ok {
		// Claim the pending entry so a second decision cannot race the
		// first one.
		delete(g.pending, requestID)
	}
	g.mu.Unlock()

	if !ok {
		logrus.Warnf(
			"Ignoring %s decision for unknown or terminal request %s",
			decision, requestID,
		)
		return ErrUnknownRequest
	}

	decisionCh <- promotion.ApprovalRecord{
		Approver: approver,
		Decision: decision,
		Time:     g.clock.Now(),
	}
	return nil
}

// Pending lists the request IDs currently awaiting a decision.
func (g *Gate) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, len(g.pending))
	for id := range g.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
