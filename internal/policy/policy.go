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

// Package policy centralizes the environment-specific promotion rules so
// they stay declarative and independently testable. Production safety
// depends entirely on the semantic-version rule holding without
// exception.
package policy

import (
	"regexp"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/promo-service/api/promotion"
)

var (
	// tagRegexp is the registry tag grammar: up to 128 characters of
	// word characters, dots and dashes, not starting with a separator.
	tagRegexp = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

	// semverTagRegexp is the exact version grammar production tags must
	// satisfy.
	semverTagRegexp = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)
)

// stagingTag is the conventional tag for staging promotions. Anything
// else is allowed there, but gets a warning.
const stagingTag = "staging"

// Engine validates promotion requests against the environment rules.
type Engine struct{}

// New returns a policy engine.
func New() *Engine {
	return &Engine{}
}

// Validate applies the rules in order, short-circuiting on the first
// failure:
//
//  1. the target tag must be non-empty and within the registry's allowed
//     character set;
//  2. production target tags must match the semantic-version grammar
//     vMAJOR.MINOR.PATCH exactly;
//  3. staging target tags are unconstrained, but a warning is logged when
//     the tag is not literally "staging".
func (e *Engine) Validate(req *promotion.Request) error {
	if req.TargetTag == "" || !tagRegexp.MatchString(req.TargetTag) {
		return promotion.NewError(
			promotion.ReasonPolicyViolation,
			"target tag %q is outside the registry's allowed character set",
			req.TargetTag,
		)
	}

	if req.Environment == promotion.EnvironmentProduction {
		if !semverTagRegexp.MatchString(req.TargetTag) {
			return promotion.NewError(
				promotion.ReasonPolicyViolation,
				"production target tag %q must match vMAJOR.MINOR.PATCH",
				req.TargetTag,
			)
		}
		return nil
	}

	if req.TargetTag != stagingTag {
		logrus.Warnf(
			"Staging promotion uses non-standard target tag %q (expected %q)",
			req.TargetTag, stagingTag,
		)
	}

	return nil
}
