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
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sigs.k8s.io/promo-service/internal/config"
	"sigs.k8s.io/promo-service/internal/server"
	"sigs.k8s.io/promo-service/promoter"
)

type serveOptions struct {
	configPath string
}

var serveOpts = &serveOptions{}

// serveCmd runs the promotion service until interrupted.
var serveCmd = &cobra.Command{
	Use:           "serve",
	Short:         "Run the promotion HTTP service",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runServe(cmd.Context(), serveOpts)
	},
}

func init() {
	serveCmd.PersistentFlags().StringVarP(
		&serveOpts.configPath, "config", "c", "promo-service.yaml",
		"path to the service configuration",
	)
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := config.FromFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	promoterOpts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("mapping configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := promoter.New(ctx, promoterOpts)
	if err != nil {
		return fmt.Errorf("creating promoter: %w", err)
	}

	srv := server.New(cfg.Server.Address, p)
	if err := srv.Serve(ctx); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}
