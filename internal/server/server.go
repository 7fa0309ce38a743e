// Package server exposes a calculator service over HTTP.
//
// See cmd/calcd for the route reference.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"

	"qgcalc/internal/domain"
	"qgcalc/internal/engine"
	"qgcalc/internal/logger"
	"qgcalc/internal/services/calculator"
)

// maxBody bounds request bodies; expressions are keyboard-sized.
const maxBody = 64 << 10

// Error codes that do not come from the engine.
const (
	CodeBadRequest  = "bad_request"
	CodeUnavailable = "storage_unavailable"
)

type Server struct {
	calc   *calculator.Service
	router *httprouter.Router
	log    *logger.Logger
}

func New(calc *calculator.Service) *Server {
	s := &Server{
		calc:   calc,
		router: httprouter.New(),
		log:    logger.Global().WithPrefix("calcd"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/eval", s.handleEval)
	s.router.GET("/history", s.handleHistory)
	s.router.POST("/history", s.handleAppendHistory)
	s.router.DELETE("/history", s.handleClearHistory)
}

// Handler returns the router wrapped in the access log.
func (s *Server) Handler() http.Handler { return s.accessLog(s.router) }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info("listening on %s", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req domain.EvalRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Expression) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "expression is required")
		return
	}

	calculate := s.calc.Calculate
	if req.DryRun {
		calculate = s.calc.Evaluate
	}
	v, err := calculate(r.Context(), req.Expression)
	if err != nil {
		code := engine.Kind(err)
		if code == "" {
			s.log.Error("evaluate %q: %v", req.Expression, err)
			writeError(w, http.StatusInternalServerError, "internal", err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, domain.EvalResponse{Expression: req.Expression, Result: v})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := 0
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	recs, err := s.calc.History()
	if err != nil {
		s.log.Warn("list history: %v", err)
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable, err.Error())
		return
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[len(recs)-limit:]
	}
	if recs == nil {
		recs = []domain.HistoryRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleAppendHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rec domain.HistoryRecord
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	if err := dec.Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if strings.TrimSpace(rec.Expression) == "" {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "exp is required")
		return
	}
	if err := s.calc.AppendHistory(rec); err != nil {
		s.log.Warn("append history: %v", err)
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := s.calc.ClearHistory(); err != nil {
		s.log.Warn("clear history: %v", err)
		writeError(w, http.StatusServiceUnavailable, CodeUnavailable, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, domain.ErrorResponse{Error: code, Message: msg})
}
