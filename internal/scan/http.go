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

package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/promo-service/api/promotion"
)

const defaultScanTimeout = 2 * time.Minute

// scanRequest is the payload posted to the scanner endpoint.
type scanRequest struct {
	Image string `json:"image"`
}

// report is the scanner's result document. The shape follows the
// Trivy-style JSON report: one result block per scanned target, each
// carrying severity-classified vulnerabilities.
type report struct {
	ArtifactName string `json:"ArtifactName"`
	Results      []struct {
		Target          string `json:"Target"`
		Vulnerabilities []struct {
			VulnerabilityID string `json:"VulnerabilityID"`
			PkgName         string `json:"PkgName"`
			Severity        string `json:"Severity"`
			Description     string `json:"Description"`
		} `json:"Vulnerabilities"`
	} `json:"Results"`
}

// HTTPGate submits scan requests to an external scanner over HTTP and
// interprets its severity-classified findings. Verdicts are cached by
// digest, which keeps the gate idempotent for immutable references.
type HTTPGate struct {
	endpoint string
	client   *http.Client

	mu    sync.Mutex
	cache map[string]*promotion.ScanResult
}

var _ Gate = &HTTPGate{}

// NewHTTPGate creates a scan gate for the given scanner endpoint. A zero
// timeout falls back to the default.
func NewHTTPGate(endpoint string, timeout time.Duration) *HTTPGate {
	if timeout == 0 {
		timeout = defaultScanTimeout
	}
	return &HTTPGate{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		cache:    map[string]*promotion.ScanResult{},
	}
}

// Scan submits the reference and classifies the response. The scan gate
// call is bounded by the configured timeout; timeouts surface as ordinary
// errors for the orchestrator to record.
func (g *HTTPGate) Scan(
	ctx context.Context, ref promotion.ImageReference,
) (*promotion.ScanResult, error) {
	if ref.Digest != "" {
		g.mu.Lock()
		cached, ok := g.cache[ref.Digest]
		g.mu.Unlock()
		if ok {
			logrus.Debugf("Using cached scan verdict for %s", ref.Digest)
			return cached, nil
		}
	}

	body, err := json.Marshal(scanRequest{Image: ref.String()})
	if err != nil {
		return nil, fmt.Errorf("encoding scan request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, g.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("building scan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling scanner: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf(
			"scanner returned status %d: %s", resp.StatusCode, string(payload),
		)
	}

	var rep report
	if err := json.NewDecoder(resp.Body).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decoding scanner report: %w", err)
	}

	result := resultFromReport(ref, &rep)
	if ref.Digest != "" {
		g.mu.Lock()
		g.cache[ref.Digest] = result
		g.mu.Unlock()
	}

	return result, nil
}

// resultFromReport flattens the report into the ordered findings list and
// computes the verdict against the blocking threshold.
func resultFromReport(
	ref promotion.ImageReference, rep *report,
) *promotion.ScanResult {
	findings := []promotion.Finding{}
	for _, res := range rep.Results {
		for _, vuln := range res.Vulnerabilities {
			findings = append(findings, promotion.Finding{
				Severity:    vuln.Severity,
				Package:     vuln.PkgName,
				Description: describe(vuln.VulnerabilityID, vuln.Description),
			})
		}
	}

	return &promotion.ScanResult{
		Reference: ref,
		Verdict:   Verdict(findings),
		Findings:  findings,
	}
}

func describe(id, description string) string {
	if id == "" {
		return description
	}
	if description == "" {
		return id
	}
	return id + ": " + description
}
