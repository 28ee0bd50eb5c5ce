package aggregator

import (
	"sort"

	"github.com/ymori/shogistats/internal/model"
)

// BuildStandings accumulates appearance, win and loss counts per named side
// over resolved matches and returns the rows ordered and ranked by the
// chosen key. A side with a blank name contributes nothing. Ranks are dense
// competition ranks computed on the primary key only; the rest of the
// tie-break chain orders rows but never splits a rank.
func BuildStandings(matches []model.Match, key SortKey) []model.StandingRow {
	acc := make(map[string]*model.StandingRow)
	touch := func(name string) *model.StandingRow {
		r := acc[name]
		if r == nil {
			r = &model.StandingRow{Name: name}
			acc[name] = r
		}
		return r
	}

	for _, m := range matches {
		if m.Winner != "" {
			w := touch(m.Winner)
			w.Appearances++
			w.Wins++
		}
		if m.Loser != "" {
			l := touch(m.Loser)
			l.Appearances++
			l.Losses++
		}
	}

	rows := make([]model.StandingRow, 0, len(acc))
	for _, r := range acc {
		if r.Appearances > 0 {
			r.WinRate = float64(r.Wins) / float64(r.Appearances)
		}
		rows = append(rows, *r)
	}

	sortStandings(rows, key)

	primary := standingColumn(key)
	denseRanks(rows,
		func(a, b model.StandingRow) bool { return primary(a) == primary(b) },
		func(r *model.StandingRow, rank int) { r.Rank = rank })
	return rows
}

// standingColumn extracts the numeric value of one standings column.
func standingColumn(key SortKey) func(model.StandingRow) float64 {
	switch key {
	case KeyAppearances:
		return func(r model.StandingRow) float64 { return float64(r.Appearances) }
	case KeyLosses:
		return func(r model.StandingRow) float64 { return float64(r.Losses) }
	case KeyWinRate:
		return func(r model.StandingRow) float64 { return r.WinRate }
	default:
		return func(r model.StandingRow) float64 { return float64(r.Wins) }
	}
}

// standingChain is the per-key comparison chain: the primary column first,
// then the secondary columns, all descending. Name order breaks whatever is
// left.
func standingChain(key SortKey) []func(model.StandingRow) float64 {
	switch key {
	case KeyAppearances:
		return []func(model.StandingRow) float64{
			standingColumn(KeyAppearances), standingColumn(KeyWins), standingColumn(KeyLosses),
		}
	case KeyLosses:
		return []func(model.StandingRow) float64{
			standingColumn(KeyLosses), standingColumn(KeyWins), standingColumn(KeyAppearances),
		}
	case KeyWinRate:
		return []func(model.StandingRow) float64{
			standingColumn(KeyWinRate), standingColumn(KeyAppearances), standingColumn(KeyWins),
		}
	default:
		return []func(model.StandingRow) float64{
			standingColumn(KeyWins), standingColumn(KeyAppearances),
		}
	}
}

func sortStandings(rows []model.StandingRow, key SortKey) {
	chain := standingChain(key)
	col := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		for _, column := range chain {
			if va, vb := column(a), column(b); va != vb {
				return va > vb
			}
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}
