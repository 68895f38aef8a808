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

package promotion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/promo-service/api/promotion"
)

func TestImageReferenceString(t *testing.T) {
	for _, tc := range []struct {
		ref      promotion.ImageReference
		expected string
	}{
		{
			ref: promotion.ImageReference{
				Registry:   "registry.example.com",
				Repository: "demo/web",
				Tag:        "v1.0.0",
			},
			expected: "registry.example.com/demo/web:v1.0.0",
		},
		{
			ref: promotion.ImageReference{
				Registry:   "registry.example.com",
				Repository: "demo/web",
				Digest:     "sha256:abc",
			},
			expected: "registry.example.com/demo/web@sha256:abc",
		},
	} {
		require.Equal(t, tc.expected, tc.ref.String())
	}
}

func TestImageReferenceEqual(t *testing.T) {
	ref := promotion.ImageReference{
		Registry: "registry.example.com", Repository: "demo/web", Tag: "staging",
	}
	require.True(t, ref.Equal(ref))
	other := ref
	other.Tag = "v1.0.0"
	require.False(t, ref.Equal(other))
}

func TestRequestValidate(t *testing.T) {
	for _, tc := range []struct {
		name      string
		req       promotion.Request
		shouldErr bool
	}{
		{
			name: "valid staging request",
			req: promotion.Request{
				SourceSHA:   "abc1234",
				TargetTag:   "staging",
				Environment: promotion.EnvironmentStaging,
			},
		},
		{
			name: "valid production request",
			req: promotion.Request{
				SourceSHA:   "abc1234",
				TargetTag:   "v1.0.0",
				Environment: promotion.EnvironmentProduction,
			},
		},
		{
			name: "empty source SHA",
			req: promotion.Request{
				TargetTag:   "staging",
				Environment: promotion.EnvironmentStaging,
			},
			shouldErr: true,
		},
		{
			name: "non-hex source SHA still looks like a build tag",
			req: promotion.Request{
				SourceSHA:   "zzzzzzz",
				TargetTag:   "staging",
				Environment: promotion.EnvironmentStaging,
			},
		},
		{
			name: "source SHA with separators",
			req: promotion.Request{
				SourceSHA:   "not-a-sha",
				TargetTag:   "staging",
				Environment: promotion.EnvironmentStaging,
			},
			shouldErr: true,
		},
		{
			name: "source SHA too short",
			req: promotion.Request{
				SourceSHA:   "abc12",
				TargetTag:   "staging",
				Environment: promotion.EnvironmentStaging,
			},
			shouldErr: true,
		},
		{
			name: "empty target tag",
			req: promotion.Request{
				SourceSHA:   "abc1234",
				Environment: promotion.EnvironmentStaging,
			},
			shouldErr: true,
		},
		{
			name: "unknown environment",
			req: promotion.Request{
				SourceSHA:   "abc1234",
				TargetTag:   "v1.0.0",
				Environment: promotion.Environment("qa"),
			},
			shouldErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEnvironmentProtected(t *testing.T) {
	require.True(t, promotion.EnvironmentProduction.Protected())
	require.False(t, promotion.EnvironmentStaging.Protected())
}

func TestOutcomeFailedAt(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	outcome := &promotion.Outcome{
		FinalState: promotion.StateFailed,
		StageTimes: map[promotion.State]time.Time{
			promotion.StateRequested: base,
			promotion.StateResolving: base.Add(time.Second),
			promotion.StateFailed:    base.Add(2 * time.Second),
		},
	}
	require.Equal(t, promotion.StateResolving, outcome.FailedAt())
}

func TestReasonForError(t *testing.T) {
	err := promotion.NewError(promotion.ReasonNotFound, "no image tagged %q", "zzzzzzz")
	require.Equal(
		t, promotion.ReasonNotFound,
		promotion.ReasonForError(err, promotion.ReasonRegistryError),
	)
	require.Equal(
		t, promotion.ReasonRegistryError,
		promotion.ReasonForError(
			errors.New("dial tcp: connection refused"),
			promotion.ReasonRegistryError,
		),
	)
}
