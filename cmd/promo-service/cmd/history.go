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
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/audit"
	"sigs.k8s.io/promo-service/internal/config"
	impl "sigs.k8s.io/promo-service/internal/promoter"
	"sigs.k8s.io/promo-service/promoter"
)

type historyOptions struct {
	configPath   string
	environment  string
	state        string
	outputFormat string
}

var historyOpts = &historyOptions{}

// historyCmd queries the audit log.
var historyCmd = &cobra.Command{
	Use:           "history",
	Short:         "Query recorded promotion outcomes",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runHistory(cmd.Context(), historyOpts)
	},
}

func init() {
	historyCmd.PersistentFlags().StringVarP(
		&historyOpts.configPath, "config", "c", "promo-service.yaml",
		"path to the service configuration",
	)
	historyCmd.PersistentFlags().StringVar(
		&historyOpts.environment, "environment", "",
		"only show outcomes for this environment",
	)
	historyCmd.PersistentFlags().StringVar(
		&historyOpts.state, "state", "",
		"only show outcomes with this final state",
	)
	historyCmd.PersistentFlags().StringVarP(
		&historyOpts.outputFormat, "output-format", "o", "yaml",
		fmt.Sprintf("output format, one of %v", promoter.AllowedOutputFormats),
	)
}

func runHistory(ctx context.Context, opts *historyOptions) error {
	if !slices.Contains(promoter.AllowedOutputFormats, opts.outputFormat) {
		return fmt.Errorf(
			"invalid output format %q, must be one of %v",
			opts.outputFormat, promoter.AllowedOutputFormats,
		)
	}

	cfg, err := config.FromFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	promoterOpts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("mapping configuration: %w", err)
	}

	auditLog, err := impl.NewAuditLog(ctx, promoterOpts)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}

	outcomes, err := auditLog.Query(audit.Filter{
		Environment: promotion.Environment(opts.environment),
		FinalState:  promotion.State(opts.state),
	})
	if err != nil {
		return fmt.Errorf("querying audit log: %w", err)
	}

	switch opts.outputFormat {
	case "csv":
		return renderCSV(outcomes)
	default:
		rendered, err := yaml.Marshal(outcomes)
		if err != nil {
			return fmt.Errorf("rendering outcomes: %w", err)
		}
		fmt.Print(string(rendered))
		return nil
	}
}

func renderCSV(outcomes []*promotion.Outcome) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write([]string{
		"id", "source_sha", "target_tag", "environment",
		"final_state", "failure_reason", "created",
	}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, outcome := range outcomes {
		if err := w.Write([]string{
			outcome.ID,
			outcome.Request.SourceSHA,
			outcome.Request.TargetTag,
			string(outcome.Request.Environment),
			string(outcome.FinalState),
			string(outcome.FailureReason),
			outcome.Created.Format(time.RFC3339),
		}); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
