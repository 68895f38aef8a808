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

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"sigs.k8s.io/promo-service/api/promotion"
)

type approveOptions struct {
	serverURL string
	requestID string
	approver  string
	reject    bool
}

var approveOpts = &approveOptions{}

// approveCmd posts an approval decision to a running service.
var approveCmd = &cobra.Command{
	Use:           "approve",
	Short:         "Send an approval decision to a running promotion service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApprove(cmd.Context(), approveOpts)
	},
}

func init() {
	approveCmd.PersistentFlags().StringVar(
		&approveOpts.serverURL, "server", "http://localhost:8080",
		"base URL of the promotion service",
	)
	approveCmd.PersistentFlags().StringVar(
		&approveOpts.requestID, "request-id", "",
		"ID of the promotion awaiting a decision",
	)
	approveCmd.PersistentFlags().StringVar(
		&approveOpts.approver, "approver", "",
		"identity recorded with the decision",
	)
	approveCmd.PersistentFlags().BoolVar(
		&approveOpts.reject, "reject", false,
		"reject the promotion instead of approving it",
	)
}

func runApprove(ctx context.Context, opts *approveOptions) error {
	if opts.requestID == "" {
		return fmt.Errorf("a request ID has to be set")
	}
	if opts.approver == "" {
		return fmt.Errorf("an approver has to be set")
	}

	decision := promotion.DecisionApprove
	if opts.reject {
		decision = promotion.DecisionReject
	}

	body, err := json.Marshal(map[string]string{
		"request_id": opts.requestID,
		"approver":   opts.approver,
		"decision":   string(decision),
	})
	if err != nil {
		return fmt.Errorf("encoding decision: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		opts.serverURL+"/v1/approvals", bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("sending decision: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"service returned status %d: %s", resp.StatusCode, string(payload),
		)
	}

	fmt.Printf("Promotion %s: %s\n", opts.requestID, decision)
	return nil
}
