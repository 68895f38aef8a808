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

package options

import (
	"errors"
	"fmt"
	"time"
)

// Audit backends the service can record outcomes to.
const (
	AuditBackendFile   = "file"
	AuditBackendS3     = "s3"
	AuditBackendGCloud = "gcloud"
)

// Options holds the wiring knobs of the promotion service. All modes of
// operation take their parameters from an options set.
type Options struct {
	// Repository is the image repository promotions run against, for
	// example registry.example.com/apps/backend.
	Repository string

	// RegistryRateLimit caps registry API calls per second. Zero means
	// the built-in default.
	RegistryRateLimit float64

	// ScannerEndpoint is the HTTP endpoint of the vulnerability scanner.
	ScannerEndpoint string

	// ScannerTimeout bounds a single scan submission.
	ScannerTimeout time.Duration

	// ApprovalTimeout is how long a production promotion waits for an
	// external decision before failing.
	ApprovalTimeout time.Duration

	// AuditBackend selects where outcomes are recorded.
	AuditBackend string

	// AuditPath is the NDJSON file the file backend appends to.
	AuditPath string

	// AuditBucket and AuditPrefix locate outcome objects for the S3
	// backend.
	AuditBucket string
	AuditPrefix string

	// AuditProject and AuditLogName configure the optional Cloud Logging
	// mirror. Outcomes are teed there in addition to the primary backend
	// when AuditProject is set.
	AuditProject string
	AuditLogName string
}

// DefaultOptions is the options set modes start from.
var DefaultOptions = &Options{
	ScannerTimeout:  2 * time.Minute,
	ApprovalTimeout: 15 * time.Minute,
	AuditBackend:    AuditBackendFile,
	AuditPath:       "promo-audit.ndjson",
	AuditPrefix:     "promo",
}

// Validate checks an options set for the promotion modes.
func (o *Options) Validate() error {
	if o.Repository == "" {
		return errors.New("a target repository has to be set")
	}
	if o.ScannerEndpoint == "" {
		return errors.New("a scanner endpoint has to be set")
	}

	switch o.AuditBackend {
	case AuditBackendFile:
		if o.AuditPath == "" {
			return errors.New("the file audit backend needs a path")
		}
	case AuditBackendS3:
		if o.AuditBucket == "" {
			return errors.New("the s3 audit backend needs a bucket")
		}
	case AuditBackendGCloud:
		if o.AuditProject == "" {
			return errors.New("the gcloud audit backend needs a project")
		}
	default:
		return fmt.Errorf("unknown audit backend %q", o.AuditBackend)
	}

	return nil
}
