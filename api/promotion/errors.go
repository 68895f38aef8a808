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
	"errors"
	"fmt"
)

// Reason classifies why a promotion attempt failed.
type Reason string

const (
	// ReasonNotFound means the source image does not exist in the
	// registry.
	ReasonNotFound Reason = "NotFound"

	// ReasonPolicyViolation means a naming or versioning rule was broken.
	ReasonPolicyViolation Reason = "PolicyViolation"

	// ReasonScanFailed means the scanner reported a finding at or above
	// the blocking severity threshold.
	ReasonScanFailed Reason = "ScanFailed"

	// ReasonApprovalRejected means an approver rejected the promotion.
	ReasonApprovalRejected Reason = "ApprovalRejected"

	// ReasonApprovalTimeout means no decision arrived before the
	// configured deadline.
	ReasonApprovalTimeout Reason = "ApprovalTimeout"

	// ReasonRegistryError means a registry operation failed. Transient
	// registry errors may be retried by submitting a new request.
	ReasonRegistryError Reason = "RegistryError"

	// ReasonConflict means another promotion for the same repository and
	// target tag was already in flight.
	ReasonConflict Reason = "Conflict"

	// ReasonCancelled means the attempt was cancelled while gating.
	ReasonCancelled Reason = "Cancelled"
)

// Error is a classified promotion failure. Every failure the orchestrator
// records carries one of the Reason values above.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// NewError builds a classified promotion error.
func NewError(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ReasonForError extracts the failure reason from err, falling back to the
// given default for unclassified errors.
func ReasonForError(err error, fallback Reason) Reason {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Reason
	}
	return fallback
}
