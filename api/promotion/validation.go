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
	"regexp"
)

// sourceSHARegexp is the shape build tags follow: a short lowercase
// alphanumeric token. Whether a matching tag actually exists is only
// known to the registry, so validation stays purely syntactic.
var sourceSHARegexp = regexp.MustCompile(`^[0-9a-z]{7,40}$`)

// Validate checks for semantic errors in the request fields. Policy rules
// (version grammar for protected environments and the registry tag
// character set) are enforced separately by the policy engine.
func (r *Request) Validate() error {
	if r.SourceSHA == "" {
		return fmt.Errorf("source SHA must be specified")
	}

	if !sourceSHARegexp.MatchString(r.SourceSHA) {
		return fmt.Errorf(
			"source SHA %q is not a build tag", r.SourceSHA,
		)
	}

	if r.TargetTag == "" {
		return fmt.Errorf("target tag must be specified")
	}

	switch r.Environment {
	case EnvironmentStaging, EnvironmentProduction:
	default:
		return fmt.Errorf(
			"unsupported environment %q (must be %q or %q)",
			r.Environment, EnvironmentStaging, EnvironmentProduction,
		)
	}

	return nil
}
