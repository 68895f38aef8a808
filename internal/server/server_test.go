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

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/audit"
	impl "sigs.k8s.io/promo-service/internal/promoter"
	"sigs.k8s.io/promo-service/internal/registry"
	"sigs.k8s.io/promo-service/internal/scan"
	"sigs.k8s.io/promo-service/promoter"
	"sigs.k8s.io/promo-service/promoter/options"
)

const testDigest = "sha256:f00d0000000000000000000000000000"

func newTestServer(t *testing.T) *httptest.Server {
	opts := &options.Options{
		Repository:      "registry.example.com/apps/backend",
		ScannerEndpoint: "http://scanner.invalid",
		ApprovalTimeout: time.Minute,
		AuditBackend:    options.AuditBackendFile,
		AuditPath:       filepath.Join(t.TempDir(), "audit.ndjson"),
	}

	client := registry.NewFakeClient()
	client.SetTag(promotion.ImageReference{
		Registry:   "registry.example.com",
		Repository: "apps/backend",
		Tag:        "abc1234",
	}, testDigest)

	auditLog, err := audit.NewFileLog(opts.AuditPath)
	require.NoError(t, err)

	di, err := impl.NewImplementationWith(opts, client, &scan.FakeGate{}, auditLog)
	require.NoError(t, err)

	p := promoter.NewWithImplementation(di)
	p.Options = opts

	srv := httptest.NewServer(New("", p).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body := make([]byte, 16)
	n, _ := resp.Body.Read(body)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "healthy", string(body[:n]))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	n, _ = resp.Body.Read(body)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "nginx_up 1\n", string(body[:n]))
}

func postJSON(t *testing.T, url, body string) *http.Response {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestPromoteEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/promotions",
		`{"source_sha": "abc1234", "target_tag": "staging", "environment": "staging"}`,
	)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	outcome := promotion.Outcome{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&outcome))
	require.Equal(t, promotion.StatePromoted, outcome.FinalState)
	require.Equal(t, "staging", outcome.ResultingReference.Tag)
}

func TestPromoteEndpointNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/promotions",
		`{"source_sha": "zzzzzzz", "target_tag": "staging", "environment": "staging"}`,
	)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	outcome := promotion.Outcome{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&outcome))
	require.Equal(t, promotion.StateFailed, outcome.FinalState)
	require.Equal(t, promotion.ReasonNotFound, outcome.FailureReason)
}

func TestPromoteEndpointBadBody(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/promotions", `{not json`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func pendingApprovals(t *testing.T, srv *httptest.Server) []string {
	resp, err := http.Get(srv.URL + "/v1/approvals")
	require.NoError(t, err)
	defer resp.Body.Close()
	pending := []string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pending))
	return pending
}

func TestApproveEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// A production promotion suspends at the gate; approve it through
	// the API while it is in flight.
	done := make(chan *http.Response, 1)
	go func() {
		done <- postJSON(t, srv.URL+"/v1/promotions",
			`{"source_sha": "abc1234", "target_tag": "v1.0.0", "environment": "production"}`,
		)
	}()

	var pending []string
	require.Eventually(t, func() bool {
		pending = pendingApprovals(t, srv)
		return len(pending) == 1
	}, 5*time.Second, 20*time.Millisecond)

	resp := postJSON(t, srv.URL+"/v1/approvals",
		`{"request_id": "`+pending[0]+`", "approver": "rm", "decision": "approve"}`,
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	promoteResp := <-done
	defer promoteResp.Body.Close()
	require.Equal(t, http.StatusOK, promoteResp.StatusCode)

	outcome := promotion.Outcome{}
	require.NoError(t, json.NewDecoder(promoteResp.Body).Decode(&outcome))
	require.Equal(t, promotion.StatePromoted, outcome.FinalState)
	require.Equal(t, "rm", outcome.Approval.Approver)
}

func TestApproveEndpointUnknownRequest(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/approvals",
		`{"request_id": "nope", "approver": "rm", "decision": "approve"}`,
	)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = postJSON(t, srv.URL+"/v1/approvals",
		`{"request_id": "x", "approver": "rm", "decision": "maybe"}`,
	)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func TestCancelEndpointUnknownRequest(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequestWithContext(
		context.Background(), http.MethodDelete,
		srv.URL+"/v1/promotions/unknown-id", nil,
	)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHistoryEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/promotions",
		`{"source_sha": "abc1234", "target_tag": "staging", "environment": "staging"}`,
	)
	require.NoError(t, resp.Body.Close())

	histResp, err := http.Get(srv.URL + "/v1/promotions?environment=staging")
	require.NoError(t, err)
	defer histResp.Body.Close()
	require.Equal(t, http.StatusOK, histResp.StatusCode)

	outcomes := []*promotion.Outcome{}
	require.NoError(t, json.NewDecoder(histResp.Body).Decode(&outcomes))
	require.Len(t, outcomes, 1)

	histResp, err = http.Get(srv.URL + "/v1/promotions?environment=production")
	require.NoError(t, err)
	defer histResp.Body.Close()
	outcomes = []*promotion.Outcome{}
	require.NoError(t, json.NewDecoder(histResp.Body).Decode(&outcomes))
	require.Empty(t, outcomes)
}
