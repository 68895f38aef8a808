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
	"strings"

	grafeaspb "google.golang.org/genproto/googleapis/grafeas/v1"

	"sigs.k8s.io/promo-service/api/promotion"
)

// Gate submits an image reference for vulnerability scanning and returns
// a severity-classified verdict. Implementations must be idempotent for
// immutable references: repeated calls against the same digest return an
// equivalent verdict.
type Gate interface {
	Scan(
		ctx context.Context, ref promotion.ImageReference,
	) (*promotion.ScanResult, error)
}

// BlockingThreshold is the severity at or above which a finding fails the
// gate. Findings below it are recorded but non-blocking.
const BlockingThreshold = grafeaspb.Severity_HIGH

// ParseSeverity maps a scanner severity string onto the grafeas severity
// scale. Unknown strings map to SEVERITY_UNSPECIFIED and never block.
func ParseSeverity(s string) grafeaspb.Severity {
	switch strings.ToUpper(s) {
	case "MINIMAL", "NEGLIGIBLE":
		return grafeaspb.Severity_MINIMAL
	case "LOW":
		return grafeaspb.Severity_LOW
	case "MEDIUM":
		return grafeaspb.Severity_MEDIUM
	case "HIGH":
		return grafeaspb.Severity_HIGH
	case "CRITICAL":
		return grafeaspb.Severity_CRITICAL
	default:
		return grafeaspb.Severity_SEVERITY_UNSPECIFIED
	}
}

// Blocking reports whether a single finding is severe enough to fail the
// gate.
func Blocking(f promotion.Finding) bool {
	return ParseSeverity(f.Severity) >= BlockingThreshold
}

// Verdict computes the overall pass/fail call for an ordered sequence of
// findings.
func Verdict(findings []promotion.Finding) promotion.Verdict {
	for _, f := range findings {
		if Blocking(f) {
			return promotion.VerdictFail
		}
	}
	return promotion.VerdictPass
}
