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

// Package audit records every promotion attempt. The log is append-only:
// no update or delete operation exists anywhere in this package,
// preserving the "images are never overwritten, only retagged" guarantee
// at the audit layer.
package audit

import (
	"sort"
	"time"

	"sigs.k8s.io/promo-service/api/promotion"
)

// Filter narrows a Query. Zero fields match everything.
type Filter struct {
	Environment promotion.Environment
	FinalState  promotion.State
	Repository  string
	Since       time.Time
}

// Matches reports whether the outcome passes the filter.
func (f Filter) Matches(o *promotion.Outcome) bool {
	if f.Environment != "" && o.Request.Environment != f.Environment {
		return false
	}
	if f.FinalState != "" && o.FinalState != f.FinalState {
		return false
	}
	if f.Repository != "" &&
		(o.ResultingReference == nil ||
			o.ResultingReference.Repository != f.Repository) {
		return false
	}
	if !f.Since.IsZero() && o.Created.Before(f.Since) {
		return false
	}
	return true
}

// Log is an append-only record of promotion outcomes. Query is finite and
// restartable: every call re-reads the backing store.
type Log interface {
	Append(outcome *promotion.Outcome) error
	Query(filter Filter) ([]*promotion.Outcome, error)
}

// sortOutcomes orders outcomes by creation time so Query results are
// stable regardless of backend listing order.
func sortOutcomes(outcomes []*promotion.Outcome) {
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Created.Before(outcomes[j].Created)
	})
}
