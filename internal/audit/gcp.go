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
	"context"
	"fmt"

	"cloud.google.com/go/logging"

	"sigs.k8s.io/promo-service/api/promotion"
)

// DefaultLogName is the Cloud Logging log outcomes are written to. This
// is the name that comes up for "gcloud logging logs list".
const DefaultLogName = "promo-audit-log"

// CloudLog ships outcomes to GCP Cloud Logging. It is a write-only sink:
// querying promotion history happens against the primary log it is
// paired with (see Tee).
type CloudLog struct {
	client *logging.Client
	logger *logging.Logger
}

var _ Log = &CloudLog{}

// NewCloudLog creates a Cloud Logging sink in the given project. Logs
// sent through this client keep their structure and severity, unlike
// plain stderr shipping.
func NewCloudLog(ctx context.Context, projectID, logName string) (*CloudLog, error) {
	if logName == "" {
		logName = DefaultLogName
	}
	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating Cloud Logging client: %w", err)
	}
	return &CloudLog{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Append logs the outcome as a structured entry. Failed promotions are
// logged at Warning so they stand out in the log explorer.
func (l *CloudLog) Append(outcome *promotion.Outcome) error {
	severity := logging.Info
	if outcome.FinalState == promotion.StateFailed {
		severity = logging.Warning
	}
	l.logger.Log(logging.Entry{
		Severity: severity,
		Payload:  outcome,
	})
	return nil
}

// Query is not supported by the Cloud Logging backend.
func (l *CloudLog) Query(Filter) ([]*promotion.Outcome, error) {
	return nil, fmt.Errorf("the Cloud Logging audit sink does not support queries")
}

// Close flushes buffered entries and shuts the client down.
func (l *CloudLog) Close() error {
	return l.client.Close()
}
