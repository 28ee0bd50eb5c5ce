package aggregator

import (
	"sort"

	"github.com/ymori/shogistats/internal/model"
)

// BuildPairRanking aggregates the head-to-head record of every unordered
// player pair over resolved matches where both sides are named, ranked by
// meetings. Within a pair, side A is the player with more pair wins; a tied
// pair falls to whoever has more appearances across the whole input set,
// then to name order. Accumulation keys on the collation-sorted name pair,
// so the result never depends on which side of a record a player occupied.
func BuildPairRanking(matches []model.Match) []model.PairRow {
	col := newCollator()

	// Dataset-wide appearance counts back the side-A tie-break.
	apps := make(map[string]int)
	for _, m := range matches {
		if m.Winner != "" {
			apps[m.Winner]++
		}
		if m.Loser != "" {
			apps[m.Loser]++
		}
	}

	type pairKey struct{ first, second string }
	type pairAcc struct{ meetings, winsFirst, winsSecond int }
	accs := make(map[pairKey]*pairAcc)

	for _, m := range matches {
		if m.Winner == "" || m.Loser == "" {
			continue
		}
		first, second := m.Winner, m.Loser
		if col.CompareString(second, first) < 0 {
			first, second = second, first
		}
		k := pairKey{first, second}
		a := accs[k]
		if a == nil {
			a = &pairAcc{}
			accs[k] = a
		}
		a.meetings++
		if m.Winner == first {
			a.winsFirst++
		} else {
			a.winsSecond++
		}
	}

	rows := make([]model.PairRow, 0, len(accs))
	for k, a := range accs {
		row := model.PairRow{
			SideA: k.first, SideB: k.second,
			Meetings: a.meetings,
			WinsA:    a.winsFirst, WinsB: a.winsSecond,
		}
		swap := a.winsSecond > a.winsFirst ||
			(a.winsSecond == a.winsFirst && apps[k.second] > apps[k.first])
		if swap {
			row.SideA, row.SideB = k.second, k.first
			row.WinsA, row.WinsB = a.winsSecond, a.winsFirst
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Meetings != b.Meetings {
			return a.Meetings > b.Meetings
		}
		if a.WinsA != b.WinsA {
			return a.WinsA > b.WinsA
		}
		if d := col.CompareString(a.SideA, b.SideA); d != 0 {
			return d < 0
		}
		return col.CompareString(a.SideB, b.SideB) < 0
	})

	denseRanks(rows,
		func(a, b model.PairRow) bool { return a.Meetings == b.Meetings },
		func(r *model.PairRow, rank int) { r.Rank = rank })
	return rows
}
