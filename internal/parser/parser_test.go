package parser

import (
	"strings"
	"testing"

	"github.com/ymori/shogistats/internal/model"
)

func TestLoadMatchesTitleLayout(t *testing.T) {
	csv := `competition,year,period,holder,challenger,holder_score,challenger_score,draws
Ryuou,2008,21,Watanabe,Habu,4,3,0
Meijin,1996,54,Habu,Moriuchi,4,1,
`
	matches, err := LoadMatches(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}

	m := matches[0]
	if m.Competition != "Ryuou" || m.Year != 2008 || m.Period != 21 {
		t.Fatalf("row 0 = %+v", m)
	}
	if m.Side1 != "Watanabe" || m.Side2 != "Habu" || m.Score1 != 4 || m.Score2 != 3 {
		t.Fatalf("row 0 sides = %+v", m)
	}
	if m.Winner != "" {
		t.Fatalf("parser must not resolve winners, got %q", m.Winner)
	}
	// Blank draws cell is zero.
	if matches[1].Draws != 0 {
		t.Fatalf("draws = %d, want 0", matches[1].Draws)
	}
}

func TestLoadMatchesTournamentLayout(t *testing.T) {
	csv := `competition,year,period,winner,runner_up
NHK Cup,2011,61,Habu,Itodani
Ginga,2012,20,Watanabe,
`
	matches, err := LoadMatches(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	// The winner column maps to side 1 so a score-less 0-0 row resolves to it.
	if matches[0].Side1 != "Habu" || matches[0].Score1 != 0 || matches[0].Score2 != 0 {
		t.Fatalf("row 0 = %+v", matches[0])
	}
	if matches[1].Side2 != "" {
		t.Fatalf("blank runner-up must stay blank, got %q", matches[1].Side2)
	}
}

func TestLoadMatchesNonNumericScores(t *testing.T) {
	csv := `competition,year,period,holder,challenger,holder_score,challenger_score
Kisei,n/a,abc,A,B,x,2
`
	matches, err := LoadMatches(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	m := matches[0]
	if m.Year != 0 || m.Period != 0 || m.Score1 != 0 || m.Score2 != 2 {
		t.Fatalf("junk numerics must parse to 0, got %+v", m)
	}
}

func TestLoadMatchesRaggedRow(t *testing.T) {
	csv := `competition,year,period,holder,challenger,holder_score,challenger_score
Oi,1989,30,Tanigawa
`
	matches, err := LoadMatches(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	m := matches[0]
	if m.Side1 != "Tanigawa" || m.Side2 != "" || m.Score1 != 0 {
		t.Fatalf("short row = %+v", m)
	}
}

func TestLoadMatchesUnknownHeader(t *testing.T) {
	csv := "a,b,c\n1,2,3\n"
	if _, err := LoadMatches(strings.NewReader(csv)); err == nil {
		t.Fatal("want error for unrecognized header")
	}
}

func TestLoadMatchesEmptyInput(t *testing.T) {
	matches, err := LoadMatches(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if matches == nil || len(matches) != 0 {
		t.Fatalf("empty input must yield empty non-nil slice, got %#v", matches)
	}
}

func TestLoadPlayers(t *testing.T) {
	csv := `seat,number,name,title,rank,status,birth,death,retirement,promo4,promo5,promo6,promo7,promo8,promo9
1,175,Habu,Ryuou,9-dan,,1970-09-27,,,1985-12-18,1988-04-01,1989-10-01,1990-10-01,1993-04-01,1994-04-01
2,60,Oyama,,9-dan,died-active,1923-03-13,1992-07-26,,,,,,,
`
	players, err := LoadPlayers(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if len(players) != 2 {
		t.Fatalf("len = %d, want 2", len(players))
	}

	habu := players[0]
	if habu.Name != "Habu" || habu.Number != 175 || habu.Title != "Ryuou" {
		t.Fatalf("habu = %+v", habu)
	}
	if habu.Status != model.StatusActive {
		t.Fatalf("blank status must be active, got %v", habu.Status)
	}
	if habu.Birth == nil || habu.Birth.Year != 1970 {
		t.Fatalf("birth = %v", habu.Birth)
	}
	for tier := 0; tier < model.NumPromotionTiers; tier++ {
		if habu.Promotions[tier] == nil {
			t.Fatalf("promotion tier %d missing", tier)
		}
	}

	oyama := players[1]
	if oyama.Status != model.StatusDiedActive {
		t.Fatalf("status = %v, want died-active", oyama.Status)
	}
	if oyama.Death == nil || oyama.Retirement != nil {
		t.Fatalf("oyama dates = %+v", oyama)
	}
	if oyama.Promotions[0] != nil {
		t.Fatal("blank promotion cell must be nil")
	}
}

func TestLoadPlayersSeatDefaultsToRowOrder(t *testing.T) {
	csv := `name,number
Kimura,1
Tsukada,2
`
	players, err := LoadPlayers(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	if players[0].Seat != 1 || players[1].Seat != 2 {
		t.Fatalf("seats = %d, %d; want 1, 2", players[0].Seat, players[1].Seat)
	}
}

func TestLoadPlayersRequiresNameColumn(t *testing.T) {
	csv := "seat,number\n1,2\n"
	if _, err := LoadPlayers(strings.NewReader(csv)); err == nil {
		t.Fatal("want error for missing name column")
	}
}
