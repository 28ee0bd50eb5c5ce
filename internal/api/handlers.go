package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ymori/shogistats/internal/aggregator"
	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/logger"
	"github.com/ymori/shogistats/internal/model"
	"github.com/ymori/shogistats/internal/profile"
	"github.com/ymori/shogistats/internal/storage"
)

// snapshot reads the stored matches honoring the request's competition and
// year filters, resolved. graded additionally drops pre-title periods
// unless ?all=1.
func (s *Server) snapshot(r *http.Request, graded bool) ([]model.Match, error) {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	matches, err := s.db.ListMatches(storage.MatchFilter{
		Competition: q.Get("competition"),
		Year:        year,
	})
	if err != nil {
		return nil, err
	}
	matches = aggregator.ResolveAll(matches)
	if graded && q.Get("all") != "1" {
		matches = aggregator.FilterEligible(matches, s.rules)
	}
	return matches, nil
}

func (s *Server) handleCompetitions(w http.ResponseWriter, r *http.Request) {
	comps, err := s.db.Competitions()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, comps)
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.snapshot(r, false)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	key := aggregator.KeyWins
	if k := r.URL.Query().Get("key"); k != "" {
		var err error
		if key, err = aggregator.ParseSortKey(k); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	matches, err := s.snapshot(r, true)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, aggregator.BuildStandings(matches, key))
}

func (s *Server) handlePairs(w http.ResponseWriter, r *http.Request) {
	matches, err := s.snapshot(r, true)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, aggregator.BuildPairRanking(matches))
}

func (s *Server) handleOpponents(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	matches, err := s.snapshot(r, true)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, aggregator.BuildOpponentRanking(matches, name))
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	today := calendar.Today()
	if t := q.Get("today"); t != "" {
		var ok bool
		if today, ok = calendar.Parse(t); !ok {
			respondError(w, http.StatusBadRequest, "today must be YYYY-MM-DD")
			return
		}
	}

	mode := profile.ModeSeat
	if m := q.Get("mode"); m != "" {
		var err error
		if mode, err = profile.ParseMode(m); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	order := profile.OrderKeep
	if o := q.Get("order"); o != "" {
		var err error
		if order, err = profile.ParseOrder(o); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	players, err := s.db.ListPlayers()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	rows := profile.Enrich(players, today)
	profile.Sort(rows, mode, order)
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("storage read failed: %v", err)
	respondError(w, http.StatusInternalServerError, "storage read failed")
}
