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

package promotion

import (
	"fmt"
	"time"
)

// Environment is the deployment environment an image is promoted into.
type Environment string

const (
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
)

// Protected returns true for environments that require a human approval
// before the retag may run.
func (e Environment) Protected() bool {
	return e == EnvironmentProduction
}

// ImageReference identifies an image in a registry. It is a value type and
// is never mutated after construction.
type ImageReference struct {
	Registry   string `json:"registry"`
	Repository string `json:"repository"`
	Tag        string `json:"tag,omitempty"`
	Digest     string `json:"digest,omitempty"`
}

// String renders the reference in the form understood by container
// tooling: registry/repository:tag, falling back to the digest form for
// tagless references.
func (r ImageReference) String() string {
	if r.Tag != "" {
		return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
	}
	return fmt.Sprintf("%s/%s@%s", r.Registry, r.Repository, r.Digest)
}

// Equal returns true when both references point at exactly the same
// registry, repository and tag-or-digest.
func (r ImageReference) Equal(o ImageReference) bool {
	return r.Registry == o.Registry &&
		r.Repository == o.Repository &&
		r.Tag == o.Tag &&
		r.Digest == o.Digest
}

// Request describes a single promotion attempt. It is created by the
// caller and never mutated afterwards; retrying a failed promotion always
// means submitting a brand new Request.
type Request struct {
	// SourceSHA is the git short-SHA build tag identifying the image to
	// promote.
	SourceSHA string `json:"source_sha"`

	// TargetTag is the tag the image will additionally carry once the
	// promotion succeeds.
	TargetTag string `json:"target_tag"`

	// Environment the promotion targets.
	Environment Environment `json:"environment"`
}

// Decision is the verdict of an external approver.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ApprovalRecord captures the external decision taken on a
// protected-environment promotion.
type ApprovalRecord struct {
	Approver string    `json:"approver"`
	Decision Decision  `json:"decision"`
	Time     time.Time `json:"time"`
}

// Verdict is the scanner's overall pass/fail call on an image.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Finding is a single severity-classified vulnerability reported by the
// scanner.
type Finding struct {
	Severity    string `json:"severity"`
	Package     string `json:"package"`
	Description string `json:"description,omitempty"`
}

// ScanResult is the scanner verdict for one immutable image reference.
// Findings keep the scanner's reported order.
type ScanResult struct {
	Reference ImageReference `json:"reference"`
	Verdict   Verdict        `json:"verdict"`
	Findings  []Finding      `json:"findings,omitempty"`
}

// State names a stage of the promotion state machine.
type State string

const (
	StateRequested   State = "requested"
	StateResolving   State = "resolving"
	StatePolicyCheck State = "policy-check"
	StateScanning    State = "scanning"
	StateGating      State = "gating"
	StateRetagging   State = "retagging"
	StatePromoted    State = "promoted"
	StateFailed      State = "failed"
)

// Terminal returns true for the two states a promotion attempt can end in.
func (s State) Terminal() bool {
	return s == StatePromoted || s == StateFailed
}

// Outcome is the terminal, immutable record of one promotion attempt. It
// is appended to the audit log and never rewritten.
type Outcome struct {
	// ID uniquely identifies the attempt. It is also the key an external
	// approval decision must carry.
	ID string `json:"id"`

	Request Request `json:"request"`

	FinalState State `json:"final_state"`

	// ResultingReference is set only when FinalState is promoted. It is
	// guaranteed to be pull-able from the registry at the time the
	// outcome was recorded.
	ResultingReference *ImageReference `json:"resulting_reference,omitempty"`

	// Scan holds the scanner verdict when the attempt reached the
	// scanning stage.
	Scan *ScanResult `json:"scan,omitempty"`

	// Approval holds the external decision for protected environments.
	Approval *ApprovalRecord `json:"approval,omitempty"`

	FailureReason Reason `json:"failure_reason,omitempty"`

	// Message is a human readable description of the failure, sufficient
	// to reconstruct the audit trail without consulting logs.
	Message string `json:"message,omitempty"`

	// StageTimes records when each stage was entered.
	StageTimes map[State]time.Time `json:"stage_times"`

	Created  time.Time `json:"created"`
	Finished time.Time `json:"finished,omitempty"`
}

// FailedAt returns the last stage the attempt entered before failing.
func (o *Outcome) FailedAt() State {
	var last State
	var lastTime time.Time
	for state, ts := range o.StageTimes {
		if state.Terminal() {
			continue
		}
		if last == "" || ts.After(lastTime) {
			last, lastTime = state, ts
		}
	}
	return last
}
