package aggregator

import (
	"sort"

	"github.com/ymori/shogistats/internal/model"
)

// BuildOpponentRanking restricts resolved matches to those involving the
// focal player and aggregates the record against each named opponent,
// ranked by meetings, then wins for the focal player, then opponent name.
func BuildOpponentRanking(matches []model.Match, focal string) []model.OpponentRow {
	rows := make([]model.OpponentRow, 0)
	if focal == "" {
		return rows
	}

	acc := make(map[string]*model.OpponentRow)
	for _, m := range matches {
		if m.Winner == "" || m.Loser == "" {
			continue
		}
		var opponent string
		var won bool
		switch focal {
		case m.Winner:
			opponent, won = m.Loser, true
		case m.Loser:
			opponent, won = m.Winner, false
		default:
			continue
		}
		r := acc[opponent]
		if r == nil {
			r = &model.OpponentRow{Opponent: opponent}
			acc[opponent] = r
		}
		r.Meetings++
		if won {
			r.Wins++
		} else {
			r.Losses++
		}
	}

	for _, r := range acc {
		r.WinRate = float64(r.Wins) / float64(r.Meetings)
		rows = append(rows, *r)
	}

	col := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Meetings != b.Meetings {
			return a.Meetings > b.Meetings
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return col.CompareString(a.Opponent, b.Opponent) < 0
	})

	denseRanks(rows,
		func(a, b model.OpponentRow) bool { return a.Meetings == b.Meetings },
		func(r *model.OpponentRow, rank int) { r.Rank = rank })
	return rows
}
