// Package parser loads the published CSV record sheets into typed records.
// Two match layouts exist in the wild and are auto-detected by header: the
// title-match layout (holder/challenger with per-side scores and an optional
// draws column) and the tournament layout (winner/runner-up, scores
// optional). Blank cells become zero values; blank or malformed dates become
// nil.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/model"
)

// header columns of the player biography sheet
const (
	colSeat   = "seat"
	colNumber = "number"
	colName   = "name"
	colTitle  = "title"
	colRank   = "rank"
	colStatus = "status"
	colBirth  = "birth"
	colDeath  = "death"
	colRetire = "retirement"
)

// LoadPlayersFile reads a player biography CSV from disk.
func LoadPlayersFile(path string) ([]model.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open players csv: %w", err)
	}
	defer f.Close()
	players, err := LoadPlayers(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return players, nil
}

// LoadPlayers reads player biographies. Seat numbers default to the row's
// position in the sheet when the column is absent or blank.
func LoadPlayers(r io.Reader) ([]model.Player, error) {
	rows, idx, err := readSheet(r)
	if err != nil {
		return nil, err
	}
	players := make([]model.Player, 0, len(rows))
	if len(rows) == 0 {
		return players, nil
	}
	if _, ok := idx[colName]; !ok {
		return nil, fmt.Errorf("player sheet has no %q column", colName)
	}

	for i, row := range rows {
		p := model.Player{
			Seat:   intCell(row, idx, colSeat),
			Number: intCell(row, idx, colNumber),
			Name:   cell(row, idx, colName),
			Title:  cell(row, idx, colTitle),
			Rank:   cell(row, idx, colRank),
			Status: model.ParseStatus(cell(row, idx, colStatus)),

			Birth:      dateCell(row, idx, colBirth),
			Death:      dateCell(row, idx, colDeath),
			Retirement: dateCell(row, idx, colRetire),
		}
		if p.Seat == 0 {
			p.Seat = i + 1
		}
		for t := 0; t < model.NumPromotionTiers; t++ {
			p.Promotions[t] = dateCell(row, idx, fmt.Sprintf("promo%d", model.PromotionDan(t)))
		}
		players = append(players, p)
	}
	return players, nil
}

// LoadMatchesFile reads a match CSV from disk.
func LoadMatchesFile(path string) ([]model.Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matches csv: %w", err)
	}
	defer f.Close()
	matches, err := LoadMatches(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return matches, nil
}

// LoadMatches reads one match sheet, picking the layout from its header.
// Matches come back raw: sides and scores only, no winner resolution.
func LoadMatches(r io.Reader) ([]model.Match, error) {
	rows, idx, err := readSheet(r)
	if err != nil {
		return nil, err
	}
	matches := make([]model.Match, 0, len(rows))
	if len(rows) == 0 {
		return matches, nil
	}

	var side1, side2, score1, score2 string
	switch {
	case has(idx, "holder"):
		side1, side2 = "holder", "challenger"
		score1, score2 = "holder_score", "challenger_score"
	case has(idx, "winner"):
		// Tournament sheets pre-resolve the result; the winner column maps
		// to side 1 so a score-less row still resolves to it.
		side1, side2 = "winner", "runner_up"
		score1, score2 = "winner_score", "runner_score"
	default:
		return nil, errors.New("unrecognized match sheet header: want a holder or winner column")
	}

	for _, row := range rows {
		matches = append(matches, model.Match{
			Competition: cell(row, idx, "competition"),
			Year:        intCell(row, idx, "year"),
			Period:      intCell(row, idx, "period"),
			Side1:       cell(row, idx, side1),
			Side2:       cell(row, idx, side2),
			Score1:      intCell(row, idx, score1),
			Score2:      intCell(row, idx, score2),
			Draws:       intCell(row, idx, "draws"),
		})
	}
	return matches, nil
}

// readSheet reads all records and returns the data rows plus a header index.
// An empty reader is an empty sheet, not an error.
func readSheet(r io.Reader) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // sheets ship with ragged rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, idx, nil
}

func has(idx map[string]int, name string) bool {
	_, ok := idx[name]
	return ok
}

// cell returns the trimmed value of a named column, or "" when the column
// is absent or the row is too short.
func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// intCell parses a numeric column; blanks and junk count as zero, matching
// how the sheets leave unplayed scores empty.
func intCell(row []string, idx map[string]int, name string) int {
	n, err := strconv.Atoi(cell(row, idx, name))
	if err != nil {
		return 0
	}
	return n
}

// dateCell parses an ISO date column; blanks and junk are absent.
func dateCell(row []string, idx map[string]int, name string) *calendar.Date {
	d, ok := calendar.Parse(cell(row, idx, name))
	if !ok {
		return nil
	}
	return &d
}
