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

package promoter

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/audit"
	impl "sigs.k8s.io/promo-service/internal/promoter"
	options "sigs.k8s.io/promo-service/promoter/options"
)

// AllowedOutputFormats are the formats the history mode can render.
var AllowedOutputFormats = []string{
	"csv",
	"yaml",
}

// ErrNotGating is returned by Cancel when the attempt is not suspended
// waiting for approval. Attempts that already started retagging run to
// completion.
var ErrNotGating = errors.New("promotion is not awaiting approval")

// Promoter drives a promotion request through its stages and records the
// terminal outcome. Stage work is delegated to the implementation so the
// sequencing can be tested in isolation.
type Promoter struct {
	Options *options.Options
	impl    promoterImplementation

	mu       sync.Mutex
	inFlight map[string]string
	gating   map[string]context.CancelFunc
}

// New creates a promoter with the default implementation wired from the
// options set.
func New(ctx context.Context, opts *options.Options) (*Promoter, error) {
	di, err := impl.NewDefaultPromoterImplementation(ctx, opts)
	if err != nil {
		return nil, err
	}
	p := NewWithImplementation(di)
	p.Options = opts
	return p, nil
}

// NewWithImplementation creates a promoter around a prebuilt
// implementation.
func NewWithImplementation(pi promoterImplementation) *Promoter {
	return &Promoter{
		Options:  options.DefaultOptions,
		impl:     pi,
		inFlight: map[string]string{},
		gating:   map[string]context.CancelFunc{},
	}
}

// SetImplementation sets the implementation the promoter delegates to.
func (p *Promoter) SetImplementation(pi promoterImplementation) {
	p.impl = pi
	if p.Options == nil {
		p.Options = options.DefaultOptions
	}
	if p.inFlight == nil {
		p.inFlight = map[string]string{}
	}
	if p.gating == nil {
		p.gating = map[string]context.CancelFunc{}
	}
}

//counterfeiter:generate . promoterImplementation

// promoterImplementation handles the stage work of the promotion state
// machine.
type promoterImplementation interface {
	// Stages of a promotion attempt, in running order.
	ValidateRequest(*promotion.Request) error
	ResolveSource(context.Context, *promotion.Request) (*promotion.ImageReference, error)
	CheckPolicy(*promotion.Request) error
	ScanImage(context.Context, *promotion.ImageReference) (*promotion.ScanResult, error)
	EvaluateScan(*promotion.ScanResult) error
	AwaitApproval(context.Context, string) (*promotion.ApprovalRecord, error)
	Retag(context.Context, *promotion.ImageReference, string) (*promotion.ImageReference, error)

	// Recording and queries.
	RecordOutcome(*promotion.Outcome) error
	History(audit.Filter) ([]*promotion.Outcome, error)

	// External approval plumbing.
	ResolveApproval(string, string, promotion.Decision) error
	PendingApprovals() []string
}

// Promote runs one request through the state machine. It always returns
// a terminal outcome; stage failures are classified and folded into it
// rather than surfaced as errors.
func (p *Promoter) Promote(
	ctx context.Context, req *promotion.Request,
) *promotion.Outcome {
	outcome := newOutcome(req)
	logrus.Infof(
		"Promotion %s: %s -> %s (%s)",
		outcome.ID, req.SourceSHA, req.TargetTag, req.Environment,
	)

	if err := p.impl.ValidateRequest(req); err != nil {
		return p.finish(outcome, nil, err)
	}

	if err := p.acquire(req, outcome.ID); err != nil {
		return p.finish(outcome, nil, err)
	}
	defer p.release(req)

	enter(outcome, promotion.StateResolving)
	source, err := p.impl.ResolveSource(ctx, req)
	if err != nil {
		return p.finish(outcome, nil, err)
	}

	enter(outcome, promotion.StatePolicyCheck)
	if err := p.impl.CheckPolicy(req); err != nil {
		return p.finish(outcome, nil, err)
	}

	enter(outcome, promotion.StateScanning)
	scan, err := p.impl.ScanImage(ctx, source)
	if err != nil {
		return p.finish(outcome, nil, err)
	}
	outcome.Scan = scan
	if err := p.impl.EvaluateScan(scan); err != nil {
		return p.finish(outcome, nil, err)
	}

	if req.Environment.Protected() {
		enter(outcome, promotion.StateGating)
		record, err := p.awaitApproval(ctx, outcome.ID)
		outcome.Approval = record
		if err != nil {
			return p.finish(outcome, nil, err)
		}
	}

	// Once retagging starts the attempt runs to completion even if the
	// caller goes away.
	enter(outcome, promotion.StateRetagging)
	resulting, err := p.impl.Retag(
		context.WithoutCancel(ctx), source, req.TargetTag,
	)
	if err != nil {
		return p.finish(outcome, nil, err)
	}

	return p.finish(outcome, resulting, nil)
}

// ResolveApproval delivers an external decision to the attempt suspended
// on it.
func (p *Promoter) ResolveApproval(
	requestID, approver string, decision promotion.Decision,
) error {
	return p.impl.ResolveApproval(requestID, approver, decision)
}

// PendingApprovals lists the request IDs currently awaiting a decision.
func (p *Promoter) PendingApprovals() []string {
	return p.impl.PendingApprovals()
}

// Cancel aborts an attempt suspended at the approval gate. Attempts in
// any other stage cannot be cancelled.
func (p *Promoter) Cancel(requestID string) error {
	p.mu.Lock()
	cancel, ok := p.gating[requestID]
	p.mu.Unlock()
	if !ok {
		return ErrNotGating
	}
	cancel()
	return nil
}

// History queries the audit log.
func (p *Promoter) History(filter audit.Filter) ([]*promotion.Outcome, error) {
	return p.impl.History(filter)
}

// awaitApproval suspends the attempt on the approval gate, registering a
// cancel hook for the duration of the wait. The hook is the only way to
// cancel an attempt and it is gone before retagging starts.
func (p *Promoter) awaitApproval(
	ctx context.Context, requestID string,
) (*promotion.ApprovalRecord, error) {
	gateCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.mu.Lock()
	p.gating[requestID] = cancel
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		delete(p.gating, requestID)
		p.mu.Unlock()
	}()

	return p.impl.AwaitApproval(gateCtx, requestID)
}

// acquire claims the in-flight slot for the request's repository and
// target tag. A second attempt for the same slot fails with Conflict
// without entering the state machine.
func (p *Promoter) acquire(req *promotion.Request, id string) error {
	key := p.Options.Repository + ":" + req.TargetTag

	p.mu.Lock()
	defer p.mu.Unlock()

	if holder, ok := p.inFlight[key]; ok {
		return promotion.NewError(
			promotion.ReasonConflict,
			"promotion %s already in flight for %s", holder, key,
		)
	}
	p.inFlight[key] = id
	return nil
}

func (p *Promoter) release(req *promotion.Request) {
	p.mu.Lock()
	delete(p.inFlight, p.Options.Repository+":"+req.TargetTag)
	p.mu.Unlock()
}

// finish stamps the terminal state, records the outcome and returns it.
// A failing audit append is logged but does not change the outcome the
// caller gets.
func (p *Promoter) finish(
	outcome *promotion.Outcome, ref *promotion.ImageReference, err error,
) *promotion.Outcome {
	if err == nil {
		enter(outcome, promotion.StatePromoted)
		outcome.FinalState = promotion.StatePromoted
		outcome.ResultingReference = ref
	} else {
		enter(outcome, promotion.StateFailed)
		outcome.FinalState = promotion.StateFailed
		outcome.FailureReason = promotion.ReasonForError(
			err, promotion.ReasonRegistryError,
		)
		outcome.Message = err.Error()
	}
	outcome.Finished = time.Now().UTC()

	if err := p.impl.RecordOutcome(outcome); err != nil {
		logrus.Errorf("Recording outcome %s: %v", outcome.ID, err)
	}

	if outcome.FinalState == promotion.StatePromoted {
		logrus.Infof(
			"Promotion %s finished: %s", outcome.ID, outcome.ResultingReference,
		)
	} else {
		logrus.Warnf(
			"Promotion %s failed (%s): %s",
			outcome.ID, outcome.FailureReason, outcome.Message,
		)
	}
	return outcome
}

func newOutcome(req *promotion.Request) *promotion.Outcome {
	now := time.Now().UTC()
	return &promotion.Outcome{
		ID:         uuid.NewString(),
		Request:    *req,
		Created:    now,
		StageTimes: map[promotion.State]time.Time{promotion.StateRequested: now},
	}
}

func enter(outcome *promotion.Outcome, state promotion.State) {
	outcome.StageTimes[state] = time.Now().UTC()
	logrus.Debugf("Promotion %s entering %s", outcome.ID, state)
}
