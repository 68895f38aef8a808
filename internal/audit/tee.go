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

	"sigs.k8s.io/promo-service/api/promotion"
)

// teeLog fans appends out to a primary log plus secondary sinks. Queries
// are answered by the primary alone.
type teeLog struct {
	primary Log
	sinks   []Log
}

// Tee combines a queryable primary log with write-only sinks. Every
// outcome is appended to all of them; a sink failure fails the append,
// because a promotion whose audit record was lost must not look healthy.
func Tee(primary Log, sinks ...Log) Log {
	if len(sinks) == 0 {
		return primary
	}
	return &teeLog{primary: primary, sinks: sinks}
}

func (l *teeLog) Append(outcome *promotion.Outcome) error {
	if err := l.primary.Append(outcome); err != nil {
		return err
	}
	for _, sink := range l.sinks {
		if err := sink.Append(outcome); err != nil {
			return fmt.Errorf("appending to secondary audit sink: %w", err)
		}
	}
	return nil
}

func (l *teeLog) Query(filter Filter) ([]*promotion.Outcome, error) {
	return l.primary.Query(filter)
}
