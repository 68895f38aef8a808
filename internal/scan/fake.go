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

package scan

import (
	"context"

	"sigs.k8s.io/promo-service/api/promotion"
)

// FakeGate is a scan gate for tests. It reports the configured findings
// for every reference.
type FakeGate struct {
	Findings []promotion.Finding
	Err      error
}

var _ Gate = &FakeGate{}

// Scan returns the canned findings with a verdict computed against the
// blocking threshold.
func (g *FakeGate) Scan(
	_ context.Context, ref promotion.ImageReference,
) (*promotion.ScanResult, error) {
	if g.Err != nil {
		return nil, g.Err
	}
	return &promotion.ScanResult{
		Reference: ref,
		Verdict:   Verdict(g.Findings),
		Findings:  g.Findings,
	}, nil
}
