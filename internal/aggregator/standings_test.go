package aggregator

import (
	"math"
	"testing"

	"github.com/ymori/shogistats/internal/model"
)

func TestBuildStandingsCounts(t *testing.T) {
	matches := []model.Match{
		series("Kisei", 1, "A", "B", 3, 0),
		series("Kisei", 2, "A", "B", 3, 1),
		series("Kisei", 3, "B", "A", 3, 2),
	}

	rows := BuildStandings(matches, KeyWins)
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}

	a, b := rows[0], rows[1]
	if a.Name != "A" || a.Rank != 1 || a.Appearances != 3 || a.Wins != 2 || a.Losses != 1 {
		t.Fatalf("row A = %+v", a)
	}
	if b.Name != "B" || b.Rank != 2 || b.Appearances != 3 || b.Wins != 1 || b.Losses != 2 {
		t.Fatalf("row B = %+v", b)
	}
	if math.Abs(a.WinRate-2.0/3.0) > 1e-9 || math.Abs(b.WinRate-1.0/3.0) > 1e-9 {
		t.Fatalf("win rates = %v / %v", a.WinRate, b.WinRate)
	}
}

func TestBuildStandingsOneWinPerMatch(t *testing.T) {
	matches := []model.Match{
		series("Meijin", 1, "A", "B", 4, 2),
		series("Meijin", 2, "B", "C", 4, 3),
		series("Meijin", 3, "C", "A", 4, 1),
		series("Meijin", 4, "A", "C", 4, 0),
	}
	rows := BuildStandings(matches, KeyWins)

	wins, losses, apps := 0, 0, 0
	for _, r := range rows {
		wins += r.Wins
		losses += r.Losses
		apps += r.Appearances
	}
	if wins != len(matches) || losses != len(matches) {
		t.Fatalf("wins/losses = %d/%d, want %d each", wins, losses, len(matches))
	}
	if apps != 2*len(matches) {
		t.Fatalf("appearances = %d, want %d", apps, 2*len(matches))
	}
}

func TestBuildStandingsSkipsBlankSides(t *testing.T) {
	matches := []model.Match{
		series("Junisen", 1, "Kimura", "", 1, 0),
	}
	rows := BuildStandings(matches, KeyWins)
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1 (blank side must not become a player)", len(rows))
	}
	r := rows[0]
	if r.Name != "Kimura" || r.Appearances != 1 || r.Wins != 1 {
		t.Fatalf("row = %+v", r)
	}
}

func TestBuildStandingsEmptyInput(t *testing.T) {
	rows := BuildStandings(nil, KeyWins)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("empty input must yield empty non-nil slice, got %#v", rows)
	}
}

func TestDenseRanksSkipAfterTie(t *testing.T) {
	rows := []model.StandingRow{
		{Wins: 10}, {Wins: 10}, {Wins: 7}, {Wins: 7}, {Wins: 7}, {Wins: 3},
	}
	denseRanks(rows,
		func(a, b model.StandingRow) bool { return a.Wins == b.Wins },
		func(r *model.StandingRow, rank int) { r.Rank = rank })

	want := []int{1, 1, 3, 3, 3, 6}
	for i, r := range rows {
		if r.Rank != want[i] {
			t.Fatalf("rank[%d] = %d, want %d (full: %+v)", i, r.Rank, want[i], rows)
		}
	}
}

func TestStandingsTieBreakOnSecondaryColumns(t *testing.T) {
	// Same win count: the player with more appearances sorts first, but both
	// share the rank because ranks split on the primary key only.
	matches := []model.Match{
		series("Oi", 1, "Sato", "Tanigawa", 4, 2),
		series("Oi", 2, "Tanigawa", "Sato", 4, 1),
		series("Oi", 3, "Sato", "Nakahara", 4, 3),
		series("Oi", 4, "Nakahara", "Sato", 4, 3),
	}
	rows := BuildStandings(matches, KeyWins)

	if rows[0].Name != "Sato" {
		t.Fatalf("first = %q, want Sato (2 wins)", rows[0].Name)
	}
	// Tanigawa and Nakahara both have 1 win; Nakahara has 2 appearances to
	// Tanigawa's 2 as well, so name order decides.
	if rows[1].Name != "Nakahara" || rows[2].Name != "Tanigawa" {
		t.Fatalf("order = %q, %q; want Nakahara, Tanigawa", rows[1].Name, rows[2].Name)
	}
	if rows[1].Rank != 2 || rows[2].Rank != 2 {
		t.Fatalf("tied ranks = %d, %d; want 2, 2", rows[1].Rank, rows[2].Rank)
	}
}

func TestStandingsLossesKeyChain(t *testing.T) {
	// Equal losses: more wins sorts first.
	matches := []model.Match{
		series("Osho", 1, "A", "C", 4, 1),
		series("Osho", 2, "A", "D", 4, 1),
		series("Osho", 3, "B", "A", 4, 2),
		series("Osho", 4, "C", "B", 4, 2),
	}
	rows := BuildStandings(matches, KeyLosses)

	// A: 1 loss 2 wins; B: 1 loss 1 win; C: 1 loss 1 win; D: 1 loss 0 wins.
	if rows[0].Name != "A" {
		t.Fatalf("first = %q, want A", rows[0].Name)
	}
	for i, r := range rows {
		if r.Rank != 1 {
			t.Fatalf("rank[%d] = %d, want 1 (all share one loss)", i, r.Rank)
		}
	}
	if rows[3].Name != "D" {
		t.Fatalf("last = %q, want D (no wins)", rows[3].Name)
	}
}

func TestStandingsWinRateKey(t *testing.T) {
	matches := []model.Match{
		series("Kio", 1, "A", "B", 3, 1),
		series("Kio", 2, "A", "B", 3, 2),
		series("Kio", 3, "C", "B", 3, 0),
	}
	rows := BuildStandings(matches, KeyWinRate)

	// A and C are both at 1.0000; A has more appearances.
	if rows[0].Name != "A" || rows[1].Name != "C" || rows[2].Name != "B" {
		t.Fatalf("order = %q, %q, %q; want A, C, B", rows[0].Name, rows[1].Name, rows[2].Name)
	}
	if rows[0].Rank != 1 || rows[1].Rank != 1 || rows[2].Rank != 3 {
		t.Fatalf("ranks = %d, %d, %d; want 1, 1, 3", rows[0].Rank, rows[1].Rank, rows[2].Rank)
	}
}

func TestParseSortKey(t *testing.T) {
	for _, s := range []string{"appearances", "wins", "losses", "winrate"} {
		if _, err := ParseSortKey(s); err != nil {
			t.Fatalf("ParseSortKey(%q): %v", s, err)
		}
	}
	if _, err := ParseSortKey("elo"); err == nil {
		t.Fatal("ParseSortKey(elo) must fail")
	}
}
