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

// Package config reads the service configuration file and maps it onto
// the promoter options.
package config

import (
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"

	options "sigs.k8s.io/promo-service/promoter/options"
)

// Config is the YAML shape of the service configuration file.
type Config struct {
	// Repository is the image repository the service promotes within.
	Repository string `json:"repository"`

	// RegistryRateLimit caps registry API calls per second.
	RegistryRateLimit float64 `json:"registryRateLimit,omitempty"`

	Scanner  ScannerConfig  `json:"scanner"`
	Approval ApprovalConfig `json:"approval,omitempty"`
	Server   ServerConfig   `json:"server,omitempty"`
	Audit    AuditConfig    `json:"audit,omitempty"`
}

type ScannerConfig struct {
	Endpoint string `json:"endpoint"`
	// Timeout bounds a single scan submission, e.g. "2m".
	Timeout string `json:"timeout,omitempty"`
}

type ApprovalConfig struct {
	// Timeout is how long a production promotion waits for a decision.
	Timeout string `json:"timeout,omitempty"`
}

type ServerConfig struct {
	Address string `json:"address,omitempty"`
}

type AuditConfig struct {
	Backend string `json:"backend,omitempty"`
	Path    string `json:"path,omitempty"`
	Bucket  string `json:"bucket,omitempty"`
	Prefix  string `json:"prefix,omitempty"`
	Project string `json:"project,omitempty"`
	LogName string `json:"logName,omitempty"`
}

// DefaultAddress is where the HTTP service listens unless configured
// otherwise.
const DefaultAddress = ":8080"

// Default returns the configuration the service starts from before the
// file is applied.
func Default() *Config {
	return &Config{
		Scanner:  ScannerConfig{Timeout: "2m"},
		Approval: ApprovalConfig{Timeout: "15m"},
		Server:   ServerConfig{Address: DefaultAddress},
		Audit: AuditConfig{
			Backend: options.AuditBackendFile,
			Path:    "promo-audit.ndjson",
			Prefix:  "promo",
		},
	}
}

// FromFile reads a YAML configuration file over the defaults. Unknown
// fields are rejected to catch typos early.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	return cfg, nil
}

// ToOptions maps the configuration onto a promoter options set.
func (c *Config) ToOptions() (*options.Options, error) {
	scannerTimeout, err := parseDuration(c.Scanner.Timeout, "scanner.timeout")
	if err != nil {
		return nil, err
	}
	approvalTimeout, err := parseDuration(c.Approval.Timeout, "approval.timeout")
	if err != nil {
		return nil, err
	}

	return &options.Options{
		Repository:        c.Repository,
		RegistryRateLimit: c.RegistryRateLimit,
		ScannerEndpoint:   c.Scanner.Endpoint,
		ScannerTimeout:    scannerTimeout,
		ApprovalTimeout:   approvalTimeout,
		AuditBackend:      c.Audit.Backend,
		AuditPath:         c.Audit.Path,
		AuditBucket:       c.Audit.Bucket,
		AuditPrefix:       c.Audit.Prefix,
		AuditProject:      c.Audit.Project,
		AuditLogName:      c.Audit.LogName,
	}, nil
}

func parseDuration(s, field string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", field, err)
	}
	return d, nil
}
