package model

import "github.com/ymori/shogistats/internal/calendar"

// Status classifies a player's activity state.
type Status int

const (
	StatusActive Status = iota
	StatusRetired
	StatusDeceased   // died after leaving active play
	StatusDiedActive // died while still on the active roster
)

func (s Status) String() string {
	switch s {
	case StatusRetired:
		return "retired"
	case StatusDeceased:
		return "deceased"
	case StatusDiedActive:
		return "died-active"
	default:
		return "active"
	}
}

// ParseStatus reads a stored status string; anything unrecognized counts as
// active, matching how the source sheets leave the column blank for active
// players.
func ParseStatus(s string) Status {
	switch s {
	case "retired":
		return StatusRetired
	case "deceased":
		return StatusDeceased
	case "died-active":
		return StatusDiedActive
	default:
		return StatusActive
	}
}

// NumPromotionTiers is the number of tracked dan promotions, 4-dan through
// 9-dan.
const NumPromotionTiers = 6

// PromotionDan maps a promotion tier index (0..5) to its dan number (4..9).
func PromotionDan(tier int) int {
	return tier + 4
}

// Player is one biography record as imported.
type Player struct {
	Seat   int    `json:"seat"`   // ordering of the published roster sheet
	Number int    `json:"number"` // official player number
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Status Status `json:"-"`

	Birth      *calendar.Date `json:"birth,omitempty"`
	Death      *calendar.Date `json:"death,omitempty"`
	Retirement *calendar.Date `json:"retirement,omitempty"`

	// Promotions[i] is the date of promotion to dan PromotionDan(i);
	// nil when the promotion has not happened or is unrecorded.
	Promotions [NumPromotionTiers]*calendar.Date `json:"promotions"`
}

// RankOrTitle returns the held title when there is one, else the dan rank.
func (p *Player) RankOrTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Rank
}

// Match is one series record. Side1/Side2 carry the sheet's original side
// assignment (holder/challenger for title matches, winner/runner-up columns
// for general tournaments); the Winner/Loser view is filled in by
// aggregator.Resolve and is zero until then.
type Match struct {
	Competition string `json:"competition"`
	Year        int    `json:"year"`
	Period      int    `json:"period"`

	Side1  string `json:"side1"`
	Side2  string `json:"side2"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
	Draws  int    `json:"draws"`

	Winner      string `json:"winner,omitempty"`
	Loser       string `json:"loser,omitempty"`
	WinnerScore int    `json:"winnerScore"`
	LoserScore  int    `json:"loserScore"`
}

// StandingRow is one player's line in a standings ranking.
type StandingRow struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Appearances int     `json:"appearances"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	WinRate     float64 `json:"winRate"`
}

// PairRow is one unordered player pair's head-to-head line. SideA is the
// pair's canonical stronger side (see aggregator.BuildPairRanking).
type PairRow struct {
	Rank     int    `json:"rank"`
	SideA    string `json:"sideA"`
	SideB    string `json:"sideB"`
	Meetings int    `json:"meetings"`
	WinsA    int    `json:"winsA"`
	WinsB    int    `json:"winsB"`
}

// OpponentRow is one line of a focal player's per-opponent record.
type OpponentRow struct {
	Rank     int     `json:"rank"`
	Opponent string  `json:"opponent"`
	Meetings int     `json:"meetings"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRate  float64 `json:"winRate"`
}
