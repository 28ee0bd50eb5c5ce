// Package report renders result rows as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/model"
	"github.com/ymori/shogistats/internal/profile"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintMatches prints resolved match records.
func PrintMatches(w io.Writer, matches []model.Match) {
	table := newTable(w)
	table.Header("COMPETITION", "YEAR", "PERIOD", "WINNER", "SCORE", "LOSER", "DRAWS")

	for _, m := range matches {
		draws := ""
		if m.Draws > 0 {
			draws = strconv.Itoa(m.Draws)
		}
		table.Append(
			m.Competition,
			strconv.Itoa(m.Year),
			strconv.Itoa(m.Period),
			m.Winner,
			fmt.Sprintf("%d–%d", m.WinnerScore, m.LoserScore),
			m.Loser,
			draws,
		)
	}
	table.Render()
}

// PrintStandings prints a standings ranking.
func PrintStandings(w io.Writer, rows []model.StandingRow) {
	table := newTable(w)
	table.Header("RANK", "NAME", "APP", "W", "L", "RATE")

	for _, r := range rows {
		rate := "—"
		if r.Appearances > 0 {
			rate = fmt.Sprintf("%.4f", r.WinRate)
		}
		table.Append(
			strconv.Itoa(r.Rank),
			r.Name,
			strconv.Itoa(r.Appearances),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			rate,
		)
	}
	table.Render()
}

// PrintPairs prints the head-to-head pair ranking.
func PrintPairs(w io.Writer, rows []model.PairRow) {
	table := newTable(w)
	table.Header("RANK", "PLAYER A", "PLAYER B", "MEETINGS", "A–B")

	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Rank),
			r.SideA,
			r.SideB,
			strconv.Itoa(r.Meetings),
			fmt.Sprintf("%d–%d", r.WinsA, r.WinsB),
		)
	}
	table.Render()
}

// PrintOpponents prints a focal player's per-opponent record.
func PrintOpponents(w io.Writer, focal string, rows []model.OpponentRow) {
	fmt.Fprintf(w, "\nOpponents of %s\n\n", focal)

	table := newTable(w)
	table.Header("RANK", "OPPONENT", "MEETINGS", "W", "L", "RATE")

	for _, r := range rows {
		table.Append(
			strconv.Itoa(r.Rank),
			r.Opponent,
			strconv.Itoa(r.Meetings),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			fmt.Sprintf("%.4f", r.WinRate),
		)
	}
	table.Render()
}

// PrintProfiles prints the profile view for the given mode; the column set
// follows the mode, mirroring the source site's per-view tables.
func PrintProfiles(w io.Writer, rows []profile.Enriched, mode profile.Mode) {
	table := newTable(w)

	switch {
	case mode == profile.ModeAge:
		table.Header("SEAT", "NAME", "BIRTH", "AGE")
		for _, e := range rows {
			age := fmtDuration(e.Age)
			if e.FinalAge {
				age = "†" + age
			}
			table.Append(strconv.Itoa(e.Seat), e.Name, fmtDate(e.Birth), age)
		}
	case mode == profile.ModeTenure:
		table.Header("SEAT", "NAME", "4-DAN", "END", "TENURE")
		for _, e := range rows {
			table.Append(strconv.Itoa(e.Seat), e.Name,
				fmtDate(e.Promotions[0]), fmtDate(e.UnifiedEnd), fmtDuration(e.Tenure))
		}
	case mode == profile.ModeActiveAge:
		table.Header("SEAT", "NAME", "BIRTH", "END", "ACTIVE AGE")
		for _, e := range rows {
			table.Append(strconv.Itoa(e.Seat), e.Name,
				fmtDate(e.Birth), fmtDate(e.UnifiedEnd), fmtDuration(e.ActiveAge))
		}
	case mode.IsGap():
		t := mode.PromotionTier()
		lo, hi := model.PromotionDan(t), model.PromotionDan(t+1)
		table.Header("SEAT", "NAME",
			fmt.Sprintf("%d-DAN", lo), fmt.Sprintf("%d-DAN", hi), "SPAN")
		for _, e := range rows {
			table.Append(strconv.Itoa(e.Seat), e.Name,
				fmtDate(e.Promotions[t]), fmtDate(e.Promotions[t+1]), fmtDuration(e.PromotionGap[t]))
		}
	case mode.PromotionTier() >= 0:
		t := mode.PromotionTier()
		table.Header("SEAT", "NAME", "PROMOTED",
			fmt.Sprintf("AGE AT %d-DAN", model.PromotionDan(t)))
		for _, e := range rows {
			table.Append(strconv.Itoa(e.Seat), e.Name,
				fmtDate(e.Promotions[t]), fmtDuration(e.PromotionAge[t]))
		}
	default: // seat, number
		table.Header("SEAT", "NO", "NAME", "RANK/TITLE", "STATUS")
		for _, e := range rows {
			table.Append(strconv.Itoa(e.Seat), strconv.Itoa(e.Number),
				e.Name, e.RankOrTitle(), e.Status.String())
		}
	}
	table.Render()
}

// PrintOverview prints the store summary line used by the root listing.
func PrintOverview(w io.Writer, players, matches, competitions, firstYear, lastYear int) {
	fmt.Fprintf(w, "%d players, %d matches across %d competitions", players, matches, competitions)
	if firstYear > 0 {
		fmt.Fprintf(w, " (%d–%d)", firstYear, lastYear)
	}
	fmt.Fprintln(w)
}

func fmtDate(d *calendar.Date) string {
	if d == nil {
		return "—"
	}
	return d.String()
}

func fmtDuration(d *calendar.Duration) string {
	if d == nil {
		return "—"
	}
	return d.String()
}
