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

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/approval"
	"sigs.k8s.io/promo-service/internal/audit"
	"sigs.k8s.io/promo-service/internal/imageref"
	"sigs.k8s.io/promo-service/internal/policy"
	"sigs.k8s.io/promo-service/internal/registry"
	"sigs.k8s.io/promo-service/internal/scan"
	options "sigs.k8s.io/promo-service/promoter/options"
)

// DefaultPromoterImplementation handles the stage work of the promotion
// state machine against the real registry, scanner and audit backends.
type DefaultPromoterImplementation struct {
	opts      *options.Options
	resolver  *imageref.Resolver
	policy    *policy.Engine
	scanner   scan.Gate
	approvals *approval.Gate
	registry  registry.Client
	auditLog  audit.Log
}

// NewDefaultPromoterImplementation wires an implementation from an
// options set, building the registry client, scan gate and audit backend
// it describes.
func NewDefaultPromoterImplementation(
	ctx context.Context, opts *options.Options,
) (*DefaultPromoterImplementation, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validating options: %w", err)
	}

	auditLog, err := NewAuditLog(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("building audit backend: %w", err)
	}

	return NewImplementationWith(
		opts,
		registry.NewClient(rate.Limit(opts.RegistryRateLimit)),
		scan.NewHTTPGate(opts.ScannerEndpoint, opts.ScannerTimeout),
		auditLog,
	)
}

// NewImplementationWith wires an implementation around preexisting
// registry, scanner and audit components.
func NewImplementationWith(
	opts *options.Options,
	client registry.Client,
	scanner scan.Gate,
	auditLog audit.Log,
) (*DefaultPromoterImplementation, error) {
	resolver, err := imageref.NewResolver(opts.Repository, client)
	if err != nil {
		return nil, fmt.Errorf("building resolver: %w", err)
	}

	return &DefaultPromoterImplementation{
		opts:      opts,
		resolver:  resolver,
		policy:    policy.New(),
		scanner:   scanner,
		approvals: approval.New(opts.ApprovalTimeout),
		registry:  client,
		auditLog:  auditLog,
	}, nil
}

// NewAuditLog assembles the audit backend the options select, teeing
// outcomes into Cloud Logging when a project is configured alongside a
// queryable primary.
func NewAuditLog(
	ctx context.Context, opts *options.Options,
) (audit.Log, error) {
	var primary audit.Log
	var err error

	switch opts.AuditBackend {
	case options.AuditBackendFile:
		primary, err = audit.NewFileLog(opts.AuditPath)
	case options.AuditBackendS3:
		primary, err = audit.NewS3Log(ctx, opts.AuditBucket, opts.AuditPrefix)
	case options.AuditBackendGCloud:
		return audit.NewCloudLog(ctx, opts.AuditProject, opts.AuditLogName)
	default:
		err = fmt.Errorf("unknown audit backend %q", opts.AuditBackend)
	}
	if err != nil {
		return nil, err
	}

	if opts.AuditProject == "" {
		return primary, nil
	}
	mirror, err := audit.NewCloudLog(ctx, opts.AuditProject, opts.AuditLogName)
	if err != nil {
		return nil, fmt.Errorf("building cloud logging mirror: %w", err)
	}
	return audit.Tee(primary, mirror), nil
}

// ValidateRequest checks a request for semantic errors. Malformed
// requests fail as policy violations before any stage runs.
func (di *DefaultPromoterImplementation) ValidateRequest(
	req *promotion.Request,
) error {
	if err := req.Validate(); err != nil {
		return promotion.NewError(
			promotion.ReasonPolicyViolation, "invalid request: %v", err,
		)
	}
	return nil
}

// ResolveSource locates the image carrying the source build tag and pins
// it to its digest.
func (di *DefaultPromoterImplementation) ResolveSource(
	ctx context.Context, req *promotion.Request,
) (*promotion.ImageReference, error) {
	ref, err := di.resolver.Resolve(ctx, req.SourceSHA)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Resolved %s to %s", req.SourceSHA, ref.Digest)
	return ref, nil
}

// CheckPolicy runs the tag and environment rules against the request.
func (di *DefaultPromoterImplementation) CheckPolicy(
	req *promotion.Request,
) error {
	return di.policy.Validate(req)
}

// ScanImage submits the pinned reference for vulnerability scanning.
// Scanner transport errors are classified as scan failures.
func (di *DefaultPromoterImplementation) ScanImage(
	ctx context.Context, ref *promotion.ImageReference,
) (*promotion.ScanResult, error) {
	result, err := di.scanner.Scan(ctx, *ref)
	if err != nil {
		var perr *promotion.Error
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, promotion.NewError(
			promotion.ReasonScanFailed, "scanning %s: %v", ref, err,
		)
	}
	logrus.Infof(
		"Scanned %s: %s (%d findings)",
		ref.Digest, result.Verdict, len(result.Findings),
	)
	return result, nil
}

// EvaluateScan turns a failing verdict into a blocking error.
func (di *DefaultPromoterImplementation) EvaluateScan(
	result *promotion.ScanResult,
) error {
	if result.Verdict == promotion.VerdictPass {
		return nil
	}

	blocking := 0
	for _, f := range result.Findings {
		if scan.Blocking(f) {
			blocking++
		}
	}
	return promotion.NewError(
		promotion.ReasonScanFailed,
		"%d findings at or above the blocking severity threshold", blocking,
	)
}

// AwaitApproval suspends the attempt until an external decision, the
// approval timeout or a cancellation.
func (di *DefaultPromoterImplementation) AwaitApproval(
	ctx context.Context, requestID string,
) (*promotion.ApprovalRecord, error) {
	logrus.Infof("Promotion %s awaiting approval", requestID)
	return di.approvals.Await(ctx, requestID)
}

// ResolveApproval delivers an external decision to the suspended attempt.
func (di *DefaultPromoterImplementation) ResolveApproval(
	requestID, approver string, decision promotion.Decision,
) error {
	return di.approvals.Resolve(requestID, approver, decision)
}

// PendingApprovals lists attempts currently suspended at the gate.
func (di *DefaultPromoterImplementation) PendingApprovals() []string {
	return di.approvals.Pending()
}

// Retag adds the target tag to the image the source reference points at.
// The source tag is left untouched.
func (di *DefaultPromoterImplementation) Retag(
	ctx context.Context, src *promotion.ImageReference, targetTag string,
) (*promotion.ImageReference, error) {
	if _, err := di.resolver.Build(targetTag); err != nil {
		return nil, err
	}
	ref, err := di.registry.Retag(ctx, *src, targetTag)
	if err != nil {
		var perr *promotion.Error
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, promotion.NewError(
			promotion.ReasonRegistryError,
			"retagging %s as %s: %v", src, targetTag, err,
		)
	}
	logrus.Infof("Retagged %s as %s", src, ref)
	return ref, nil
}

// RecordOutcome appends the terminal outcome to the audit log.
func (di *DefaultPromoterImplementation) RecordOutcome(
	outcome *promotion.Outcome,
) error {
	if err := di.auditLog.Append(outcome); err != nil {
		return fmt.Errorf("appending outcome %s: %w", outcome.ID, err)
	}
	return nil
}

// History queries the audit log.
func (di *DefaultPromoterImplementation) History(
	filter audit.Filter,
) ([]*promotion.Outcome, error) {
	return di.auditLog.Query(filter)
}
