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
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/config"
	"sigs.k8s.io/promo-service/promoter"
)

type promoteOptions struct {
	configPath  string
	sourceSHA   string
	targetTag   string
	environment string
	autoApprove bool
}

var promoteOpts = &promoteOptions{}

// promoteCmd runs a single promotion and prints its outcome.
var promoteCmd = &cobra.Command{
	Use:           "promote",
	Short:         "Run a single image promotion",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPromote(cmd.Context(), promoteOpts)
	},
}

func init() {
	promoteCmd.PersistentFlags().StringVarP(
		&promoteOpts.configPath, "config", "c", "promo-service.yaml",
		"path to the service configuration",
	)
	promoteCmd.PersistentFlags().StringVar(
		&promoteOpts.sourceSHA, "source-sha", "",
		"build tag of the image to promote",
	)
	promoteCmd.PersistentFlags().StringVar(
		&promoteOpts.targetTag, "target-tag", "",
		"tag the image gets in the target environment",
	)
	promoteCmd.PersistentFlags().StringVar(
		&promoteOpts.environment, "environment", "staging",
		"environment to promote into, staging or production",
	)
	promoteCmd.PersistentFlags().BoolVar(
		&promoteOpts.autoApprove, "auto-approve", false,
		"approve the production gate locally instead of waiting for an external decision",
	)
}

func runPromote(ctx context.Context, opts *promoteOptions) error {
	cfg, err := config.FromFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	promoterOpts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("mapping configuration: %w", err)
	}

	p, err := promoter.New(ctx, promoterOpts)
	if err != nil {
		return fmt.Errorf("creating promoter: %w", err)
	}

	req := &promotion.Request{
		SourceSHA:   opts.sourceSHA,
		TargetTag:   opts.targetTag,
		Environment: promotion.Environment(opts.environment),
	}

	if opts.autoApprove && req.Environment.Protected() {
		go autoApprove(ctx, p)
	}

	outcome := p.Promote(ctx, req)

	rendered, err := yaml.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("rendering outcome: %w", err)
	}
	fmt.Print(string(rendered))

	if outcome.FinalState == promotion.StateFailed {
		return fmt.Errorf(
			"promotion failed (%s): %s", outcome.FailureReason, outcome.Message,
		)
	}
	return nil
}

// autoApprove resolves the gate as soon as the promotion suspends on it.
func autoApprove(ctx context.Context, p *promoter.Promoter) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		for _, requestID := range p.PendingApprovals() {
			logrus.Infof("Auto-approving promotion %s", requestID)
			if err := p.ResolveApproval(
				requestID, "auto-approve", promotion.DecisionApprove,
			); err != nil {
				logrus.Warnf("Resolving approval: %v", err)
			}
			return
		}
	}
}
