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

// Package server exposes the promoter over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/audit"
	"sigs.k8s.io/promo-service/promoter"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address  string
	promoter *promoter.Promoter
}

func New(address string, p *promoter.Promoter) *Server {
	return &Server{address: address, promoter: p}
}

// Router builds the HTTP routes. No global timeout middleware is
// installed: promotion requests legitimately suspend at the approval
// gate for up to the configured approval timeout.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "healthy")
	})
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "nginx_up 1\n")
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/promotions", s.handlePromote)
		r.Get("/promotions", s.handleHistory)
		r.Delete("/promotions/{requestID}", s.handleCancel)
		r.Get("/approvals", s.handlePending)
		r.Post("/approvals", s.handleApprove)
	})

	return r
}

// Serve runs the HTTP service until the context is cancelled, then
// shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Listening on %s", s.address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), shutdownTimeout,
	)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// handlePromote runs a promotion synchronously and returns its terminal
// outcome. The HTTP status follows the failure reason so callers can
// react without parsing the body.
func (s *Server) handlePromote(w http.ResponseWriter, r *http.Request) {
	var req promotion.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "decoding request: "+err.Error())
		return
	}

	outcome := s.promoter.Promote(r.Context(), &req)
	respondJSON(w, statusForOutcome(outcome), outcome)
}

type approvalRequest struct {
	RequestID string             `json:"request_id"`
	Approver  string             `json:"approver"`
	Decision  promotion.Decision `json:"decision"`
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "decoding request: "+err.Error())
		return
	}
	if req.Decision != promotion.DecisionApprove &&
		req.Decision != promotion.DecisionReject {
		respondError(
			w, http.StatusBadRequest,
			fmt.Sprintf("unknown decision %q", req.Decision),
		)
		return
	}

	err := s.promoter.ResolveApproval(req.RequestID, req.Approver, req.Decision)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"request_id": req.RequestID,
		"decision":   string(req.Decision),
	})
}

// handlePending lists the request IDs currently suspended at the
// approval gate.
func (s *Server) handlePending(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.promoter.PendingApprovals())
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")
	if err := s.promoter.Cancel(requestID); err != nil {
		if errors.Is(err, promoter.ErrNotGating) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"request_id": requestID})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	filter := audit.Filter{
		Environment: promotion.Environment(r.URL.Query().Get("environment")),
		FinalState:  promotion.State(r.URL.Query().Get("state")),
		Repository:  r.URL.Query().Get("repository"),
	}

	outcomes, err := s.promoter.History(filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, outcomes)
}

// statusForOutcome maps the terminal state of a promotion onto an HTTP
// status.
func statusForOutcome(outcome *promotion.Outcome) int {
	if outcome.FinalState == promotion.StatePromoted {
		return http.StatusOK
	}
	switch outcome.FailureReason {
	case promotion.ReasonConflict:
		return http.StatusConflict
	case promotion.ReasonNotFound:
		return http.StatusNotFound
	case promotion.ReasonRegistryError:
		return http.StatusBadGateway
	default:
		return http.StatusUnprocessableEntity
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Errorf("Encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
