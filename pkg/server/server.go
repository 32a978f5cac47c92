// Package server exposes the classification service over HTTP. The envelope
// produced by the service is serialized verbatim; only the status code is
// derived from the error kind.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/classifier"
)

type classifyRequest struct {
	Code string `json:"code"`
}

type batchRequest struct {
	Snippets []string `json:"snippets"`
}

// Server wires the classification service into an HTTP mux.
type Server struct {
	svc *classifier.Service
	log *zap.Logger
}

func New(svc *classifier.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, log: log}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /classify", s.handleClassify)
	mux.HandleFunc("POST /batch-classify", s.handleBatch)
	mux.HandleFunc("POST /reload-config", s.handleReload)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("classification API listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	env := s.svc.ClassifyEnvelope(req.Code)
	status := http.StatusOK
	if !env.Success {
		status = statusFor(env.ErrorType)
		s.log.Warn("classification request failed",
			zap.String("error_type", env.ErrorType),
			zap.String("error", env.Error))
	}
	writeJSON(w, status, env)
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Per-item failures are isolated inside the envelopes; the batch call
	// itself always succeeds.
	results := s.svc.BatchClassify(req.Snippets)
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.ReloadConfig()
	if err != nil {
		s.log.Error("config reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("config reloaded", zap.Uint64("version", snap.Version))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"version":  snap.Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": classifier.Version,
		"config":  s.svc.ConfigInfo(),
	})
}

func statusFor(errorType string) int {
	if errorType == string(classifier.KindInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
