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

package audit

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/promo-service/api/promotion"
)

func testOutcome(id string, env promotion.Environment, state promotion.State) *promotion.Outcome {
	return &promotion.Outcome{
		ID: id,
		Request: promotion.Request{
			SourceSHA:   "abc1234",
			TargetTag:   "v1.0.0",
			Environment: env,
		},
		FinalState: state,
		Created:    time.Now().UTC(),
	}
}

func TestFileLogAppendAndQuery(t *testing.T) {
	log, err := NewFileLog(filepath.Join(t.TempDir(), "audit", "log.jsonl"))
	require.NoError(t, err)

	require.NoError(t, log.Append(
		testOutcome("a", promotion.EnvironmentStaging, promotion.StatePromoted),
	))
	require.NoError(t, log.Append(
		testOutcome("b", promotion.EnvironmentProduction, promotion.StateFailed),
	))
	require.NoError(t, log.Append(
		testOutcome("c", promotion.EnvironmentProduction, promotion.StatePromoted),
	))

	all, err := log.Query(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "a", all[0].ID)

	production, err := log.Query(Filter{
		Environment: promotion.EnvironmentProduction,
	})
	require.NoError(t, err)
	require.Len(t, production, 2)

	failed, err := log.Query(Filter{
		Environment: promotion.EnvironmentProduction,
		FinalState:  promotion.StateFailed,
	})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	require.Equal(t, "b", failed[0].ID)
}

func TestFileLogQueryIsRestartable(t *testing.T) {
	log, err := NewFileLog(filepath.Join(t.TempDir(), "log.jsonl"))
	require.NoError(t, err)

	require.NoError(t, log.Append(
		testOutcome("a", promotion.EnvironmentStaging, promotion.StatePromoted),
	))

	first, err := log.Query(Filter{})
	require.NoError(t, err)

	require.NoError(t, log.Append(
		testOutcome("b", promotion.EnvironmentStaging, promotion.StatePromoted),
	))

	second, err := log.Query(Filter{})
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 2)
}

func TestFileLogQueryMissingFile(t *testing.T) {
	log, err := NewFileLog(filepath.Join(t.TempDir(), "log.jsonl"))
	require.NoError(t, err)

	outcomes, err := log.Query(Filter{})
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestFilterSince(t *testing.T) {
	old := testOutcome("old", promotion.EnvironmentStaging, promotion.StatePromoted)
	old.Created = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	cutoff := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.False(t, Filter{Since: cutoff}.Matches(old))

	recent := testOutcome("recent", promotion.EnvironmentStaging, promotion.StatePromoted)
	require.True(t, Filter{Since: cutoff}.Matches(recent))
}

type failingSink struct{}

func (failingSink) Append(*promotion.Outcome) error {
	return fmt.Errorf("sink unavailable")
}

func (failingSink) Query(Filter) ([]*promotion.Outcome, error) {
	return nil, fmt.Errorf("not queryable")
}

func TestTee(t *testing.T) {
	primary, err := NewFileLog(filepath.Join(t.TempDir(), "log.jsonl"))
	require.NoError(t, err)
	secondary, err := NewFileLog(filepath.Join(t.TempDir(), "copy.jsonl"))
	require.NoError(t, err)

	tee := Tee(primary, secondary)
	require.NoError(t, tee.Append(
		testOutcome("a", promotion.EnvironmentStaging, promotion.StatePromoted),
	))

	fromPrimary, err := tee.Query(Filter{})
	require.NoError(t, err)
	require.Len(t, fromPrimary, 1)

	fromSecondary, err := secondary.Query(Filter{})
	require.NoError(t, err)
	require.Len(t, fromSecondary, 1)

	require.Error(t, Tee(primary, failingSink{}).Append(
		testOutcome("b", promotion.EnvironmentStaging, promotion.StatePromoted),
	))
}
