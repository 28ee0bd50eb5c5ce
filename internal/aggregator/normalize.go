// Package aggregator derives rankings from imported match records: standings
// per player, head-to-head pair records, and per-opponent records for a
// single player. All functions are pure; they never modify their inputs and
// return empty (non-nil) slices for empty input.
package aggregator

import "github.com/ymori/shogistats/internal/model"

// Resolve fills the Winner/Loser view of a match from its side scores. The
// winner is the side with the strictly greater score; equal scores resolve
// to side 1, which in the source sheets is the title holder (a drawn series
// leaves the title with the holder) or the already-resolved winner column.
// Blank side names pass through untouched; no name is ever synthesized.
func Resolve(m model.Match) model.Match {
	if m.Score2 > m.Score1 {
		m.Winner, m.Loser = m.Side2, m.Side1
		m.WinnerScore, m.LoserScore = m.Score2, m.Score1
	} else {
		m.Winner, m.Loser = m.Side1, m.Side2
		m.WinnerScore, m.LoserScore = m.Score1, m.Score2
	}
	return m
}

// ResolveAll returns a resolved copy of every match.
func ResolveAll(matches []model.Match) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, Resolve(m))
	}
	return out
}

// Rules maps a competition name to the last period predating its promotion
// to a graded event. Matches at or below the cutoff are excluded from graded
// aggregations but still list and store normally.
type Rules map[string]int

// DefaultRules reflects the historical record: Ouza became a title match
// with its 31st period, Eiou with its 3rd.
func DefaultRules() Rules {
	return Rules{
		"Ouza": 30,
		"Eiou": 2,
	}
}

// Eligible reports whether the match counts toward graded aggregations.
func (r Rules) Eligible(m model.Match) bool {
	cutoff, ok := r[m.Competition]
	return !ok || m.Period > cutoff
}

// FilterEligible returns the matches that pass the rules, in input order.
func FilterEligible(matches []model.Match, r Rules) []model.Match {
	out := make([]model.Match, 0, len(matches))
	for _, m := range matches {
		if r.Eligible(m) {
			out = append(out, m)
		}
	}
	return out
}
