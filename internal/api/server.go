// Package api exposes the ranking engine as a small JSON facade. Every
// request reads a fresh snapshot from storage and re-runs the engine over
// it; nothing derived is cached.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ymori/shogistats/internal/aggregator"
	"github.com/ymori/shogistats/internal/logger"
	"github.com/ymori/shogistats/internal/storage"
)

type Server struct {
	db    *storage.DB
	rules aggregator.Rules
	log   *logger.Logger
}

func New(db *storage.DB, rules aggregator.Rules, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{db: db, rules: rules, log: log}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)

	r.Get("/api/competitions", s.handleCompetitions)
	r.Get("/api/matches", s.handleMatches)
	r.Get("/api/standings", s.handleStandings)
	r.Get("/api/pairs", s.handlePairs)
	r.Get("/api/opponents/{name}", s.handleOpponents)
	r.Get("/api/players", s.handlePlayers)

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
