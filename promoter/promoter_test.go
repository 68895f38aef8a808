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

package promoter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/promoter"
	"sigs.k8s.io/promo-service/promoter/promoterfakes"
)

func testRequest(env promotion.Environment, tag string) *promotion.Request {
	return &promotion.Request{
		SourceSHA:   "abc1234",
		TargetTag:   tag,
		Environment: env,
	}
}

func TestPromote(t *testing.T) {
	for _, tc := range []struct {
		msg        string
		req        *promotion.Request
		wantState  promotion.State
		wantReason promotion.Reason
		prepare    func(*promoterfakes.FakePromoterImplementation)
	}{
		{
			msg:       "staging promotion succeeds without gating",
			req:       testRequest(promotion.EnvironmentStaging, "staging"),
			wantState: promotion.StatePromoted,
			prepare:   func(_ *promoterfakes.FakePromoterImplementation) {},
		},
		{
			msg:        "invalid request fails before any stage",
			req:        testRequest(promotion.EnvironmentStaging, "staging"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonPolicyViolation,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.ValidateRequestReturns(promotion.NewError(
					promotion.ReasonPolicyViolation, "invalid request",
				))
			},
		},
		{
			msg:        "missing source image",
			req:        testRequest(promotion.EnvironmentStaging, "staging"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonNotFound,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.ResolveSourceReturns(nil, promotion.NewError(
					promotion.ReasonNotFound, "no image tagged abc1234",
				))
			},
		},
		{
			msg:        "policy violation",
			req:        testRequest(promotion.EnvironmentProduction, "latest"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonPolicyViolation,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.CheckPolicyReturns(promotion.NewError(
					promotion.ReasonPolicyViolation, "tag is not a version",
				))
			},
		},
		{
			msg:        "scanner unreachable",
			req:        testRequest(promotion.EnvironmentStaging, "staging"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonScanFailed,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.ScanImageReturns(nil, promotion.NewError(
					promotion.ReasonScanFailed, "calling scanner",
				))
			},
		},
		{
			msg:        "blocking findings",
			req:        testRequest(promotion.EnvironmentStaging, "staging"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonScanFailed,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.EvaluateScanReturns(promotion.NewError(
					promotion.ReasonScanFailed, "1 blocking finding",
				))
			},
		},
		{
			msg:        "approval rejected",
			req:        testRequest(promotion.EnvironmentProduction, "v1.0.0"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonApprovalRejected,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.AwaitApprovalReturns(
					&promotion.ApprovalRecord{
						Approver: "release-manager",
						Decision: promotion.DecisionReject,
					},
					promotion.NewError(
						promotion.ReasonApprovalRejected, "rejected",
					),
				)
			},
		},
		{
			msg:        "approval timeout",
			req:        testRequest(promotion.EnvironmentProduction, "v1.0.0"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonApprovalTimeout,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.AwaitApprovalReturns(nil, promotion.NewError(
					promotion.ReasonApprovalTimeout, "no decision",
				))
			},
		},
		{
			msg:        "retag fails",
			req:        testRequest(promotion.EnvironmentStaging, "staging"),
			wantState:  promotion.StateFailed,
			wantReason: promotion.ReasonRegistryError,
			prepare: func(fpi *promoterfakes.FakePromoterImplementation) {
				fpi.RetagReturns(nil, promotion.NewError(
					promotion.ReasonRegistryError, "writing manifest",
				))
			},
		},
	} {
		t.Run(tc.msg, func(t *testing.T) {
			mock := &promoterfakes.FakePromoterImplementation{}
			tc.prepare(mock)

			sut := promoter.Promoter{}
			sut.SetImplementation(mock)

			outcome := sut.Promote(context.Background(), tc.req)
			require.NotNil(t, outcome, tc.msg)
			require.Equal(t, tc.wantState, outcome.FinalState, tc.msg)
			require.Equal(t, tc.wantReason, outcome.FailureReason, tc.msg)
			require.Equal(t, 1, mock.RecordOutcomeCallCount(), tc.msg)
			require.False(t, outcome.Finished.IsZero(), tc.msg)
		})
	}
}

func TestPromotePolicyShortCircuitsScan(t *testing.T) {
	mock := &promoterfakes.FakePromoterImplementation{}
	mock.CheckPolicyReturns(promotion.NewError(
		promotion.ReasonPolicyViolation, "tag is not a version",
	))

	sut := promoter.Promoter{}
	sut.SetImplementation(mock)

	outcome := sut.Promote(
		context.Background(), testRequest(promotion.EnvironmentProduction, "latest"),
	)
	require.Equal(t, promotion.ReasonPolicyViolation, outcome.FailureReason)
	require.Zero(t, mock.ScanImageCallCount())
	require.Zero(t, mock.AwaitApprovalCallCount())
	require.Zero(t, mock.RetagCallCount())
}

func TestPromoteSkipsGatingForStaging(t *testing.T) {
	mock := &promoterfakes.FakePromoterImplementation{}
	sut := promoter.Promoter{}
	sut.SetImplementation(mock)

	outcome := sut.Promote(
		context.Background(), testRequest(promotion.EnvironmentStaging, "staging"),
	)
	require.Equal(t, promotion.StatePromoted, outcome.FinalState)
	require.Zero(t, mock.AwaitApprovalCallCount())
	require.NotContains(t, outcome.StageTimes, promotion.StateGating)
}

func TestPromoteStageTimesStopAtFailure(t *testing.T) {
	mock := &promoterfakes.FakePromoterImplementation{}
	mock.ResolveSourceReturns(nil, promotion.NewError(
		promotion.ReasonNotFound, "no image tagged zzzzzzz",
	))

	sut := promoter.Promoter{}
	sut.SetImplementation(mock)

	req := testRequest(promotion.EnvironmentStaging, "staging")
	req.SourceSHA = "zzzzzzz"
	outcome := sut.Promote(context.Background(), req)

	require.Equal(t, promotion.StateFailed, outcome.FinalState)
	require.Equal(t, promotion.ReasonNotFound, outcome.FailureReason)
	require.Contains(t, outcome.StageTimes, promotion.StateRequested)
	require.Contains(t, outcome.StageTimes, promotion.StateResolving)
	require.NotContains(t, outcome.StageTimes, promotion.StatePolicyCheck)
	require.NotContains(t, outcome.StageTimes, promotion.StateScanning)
	require.NotContains(t, outcome.StageTimes, promotion.StateRetagging)
	require.Equal(t, promotion.StateResolving, outcome.FailedAt())
}

func TestPromoteConflict(t *testing.T) {
	mock := &promoterfakes.FakePromoterImplementation{}
	release := make(chan struct{})
	mock.AwaitApprovalStub = func(
		ctx context.Context, _ string,
	) (*promotion.ApprovalRecord, error) {
		select {
		case <-release:
			return &promotion.ApprovalRecord{
				Approver: "release-manager",
				Decision: promotion.DecisionApprove,
			}, nil
		case <-ctx.Done():
			return nil, promotion.NewError(
				promotion.ReasonCancelled, "cancelled",
			)
		}
	}

	sut := promoter.Promoter{}
	sut.SetImplementation(mock)

	first := make(chan *promotion.Outcome, 1)
	go func() {
		first <- sut.Promote(
			context.Background(),
			testRequest(promotion.EnvironmentProduction, "v1.0.0"),
		)
	}()

	// Wait until the first attempt holds the in-flight slot.
	require.Eventually(t, func() bool {
		return mock.AwaitApprovalCallCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	second := sut.Promote(
		context.Background(),
		testRequest(promotion.EnvironmentProduction, "v1.0.0"),
	)
	require.Equal(t, promotion.StateFailed, second.FinalState)
	require.Equal(t, promotion.ReasonConflict, second.FailureReason)

	close(release)
	outcome := <-first
	require.Equal(t, promotion.StatePromoted, outcome.FinalState)

	// The slot is free again once the first attempt finished.
	third := sut.Promote(
		context.Background(),
		testRequest(promotion.EnvironmentStaging, "v1.0.0"),
	)
	require.NotEqual(t, promotion.ReasonConflict, third.FailureReason)
}

func TestCancelWhileGating(t *testing.T) {
	mock := &promoterfakes.FakePromoterImplementation{}
	mock.AwaitApprovalStub = func(
		ctx context.Context, _ string,
	) (*promotion.ApprovalRecord, error) {
		<-ctx.Done()
		return nil, promotion.NewError(
			promotion.ReasonCancelled, "promotion cancelled while gating",
		)
	}

	sut := promoter.Promoter{}
	sut.SetImplementation(mock)

	done := make(chan *promotion.Outcome, 1)
	go func() {
		done <- sut.Promote(
			context.Background(),
			testRequest(promotion.EnvironmentProduction, "v1.0.0"),
		)
	}()

	require.Eventually(t, func() bool {
		return mock.AwaitApprovalCallCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	_, requestID := mock.AwaitApprovalArgsForCall(0)
	require.NoError(t, sut.Cancel(requestID))

	outcome := <-done
	require.Equal(t, promotion.StateFailed, outcome.FinalState)
	require.Equal(t, promotion.ReasonCancelled, outcome.FailureReason)

	// The cancel hook is gone with the gating stage.
	require.ErrorIs(t, sut.Cancel(requestID), promoter.ErrNotGating)
}

func TestCancelUnknownRequest(t *testing.T) {
	sut := promoter.Promoter{}
	sut.SetImplementation(&promoterfakes.FakePromoterImplementation{})
	require.ErrorIs(t, sut.Cancel("no-such-id"), promoter.ErrNotGating)
}
