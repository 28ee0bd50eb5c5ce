package storage

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/model"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var playerColumns = []string{
	"name", "seat", "number", "title", "rank", "status",
	"birth", "death", "retirement",
	"promo4", "promo5", "promo6", "promo7", "promo8", "promo9",
}

var matchColumns = []string{
	"competition", "year", "period", "side1", "side2", "score1", "score2", "draws",
}

// InsertPlayers bulk-inserts player biographies in a transaction. Uses
// INSERT OR REPLACE keyed on name, so re-importing a sheet is idempotent.
func (db *DB) InsertPlayers(players []model.Player) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO players(
			name, seat, number, title, rank, status,
			birth, death, retirement,
			promo4, promo5, promo6, promo7, promo8, promo9
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range players {
		_, err = stmt.Exec(
			p.Name, p.Seat, p.Number, p.Title, p.Rank, p.Status.String(),
			dateText(p.Birth), dateText(p.Death), dateText(p.Retirement),
			dateText(p.Promotions[0]), dateText(p.Promotions[1]), dateText(p.Promotions[2]),
			dateText(p.Promotions[3]), dateText(p.Promotions[4]), dateText(p.Promotions[5]),
		)
		if err != nil {
			return fmt.Errorf("insert player %s: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

// InsertMatches bulk-inserts match records in a transaction. Keyed on
// (competition, period), so re-importing a sheet replaces its rows.
func (db *DB) InsertMatches(matches []model.Match) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			competition, year, period, side1, side2, score1, score2, draws
		) VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range matches {
		_, err = stmt.Exec(m.Competition, m.Year, m.Period, m.Side1, m.Side2, m.Score1, m.Score2, m.Draws)
		if err != nil {
			return fmt.Errorf("insert match %s period %d: %w", m.Competition, m.Period, err)
		}
	}
	return tx.Commit()
}

// MatchFilter narrows ListMatches; zero values mean no filter.
type MatchFilter struct {
	Competition string
	Year        int
}

// ListMatches returns stored matches newest first (year, then period
// descending).
func (db *DB) ListMatches(f MatchFilter) ([]model.Match, error) {
	q := sqlBuilder.Select(matchColumns...).From("matches")
	if f.Competition != "" {
		q = q.Where(sq.Eq{"competition": f.Competition})
	}
	if f.Year != 0 {
		q = q.Where(sq.Eq{"year": f.Year})
	}
	q = q.OrderBy("year DESC", "period DESC", "competition ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match query: %w", err)
	}
	rows, err := db.conn.Query(sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Match, 0)
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.Competition, &m.Year, &m.Period,
			&m.Side1, &m.Side2, &m.Score1, &m.Score2, &m.Draws); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListPlayers returns stored players in roster (seat) order.
func (db *DB) ListPlayers() ([]model.Player, error) {
	sqlStr, args, err := sqlBuilder.Select(playerColumns...).
		From("players").OrderBy("seat ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build player query: %w", err)
	}
	rows, err := db.conn.Query(sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Player, 0)
	for rows.Next() {
		var p model.Player
		var status string
		var birth, death, retirement sql.NullString
		var promos [model.NumPromotionTiers]sql.NullString
		if err := rows.Scan(&p.Name, &p.Seat, &p.Number, &p.Title, &p.Rank, &status,
			&birth, &death, &retirement,
			&promos[0], &promos[1], &promos[2], &promos[3], &promos[4], &promos[5]); err != nil {
			return nil, err
		}
		p.Status = model.ParseStatus(status)
		p.Birth = textDate(birth)
		p.Death = textDate(death)
		p.Retirement = textDate(retirement)
		for t := range promos {
			p.Promotions[t] = textDate(promos[t])
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Competitions returns the distinct competition names, alphabetical.
func (db *DB) Competitions() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT competition FROM matches ORDER BY competition`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Overview summarizes the store for the root listing.
type Overview struct {
	Players      int
	Matches      int
	Competitions int
	FirstYear    int
	LastYear     int
}

// Stats returns store-wide counts and the covered year range.
func (db *DB) Stats() (Overview, error) {
	var o Overview
	if err := db.conn.QueryRow(`SELECT COUNT(1) FROM players`).Scan(&o.Players); err != nil {
		return o, err
	}
	err := db.conn.QueryRow(`
		SELECT COUNT(1), COUNT(DISTINCT competition),
		       COALESCE(MIN(year), 0), COALESCE(MAX(year), 0)
		FROM matches`).
		Scan(&o.Matches, &o.Competitions, &o.FirstYear, &o.LastYear)
	return o, err
}

func dateText(d *calendar.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func textDate(s sql.NullString) *calendar.Date {
	if !s.Valid {
		return nil
	}
	d, ok := calendar.Parse(s.String)
	if !ok {
		return nil
	}
	return &d
}
