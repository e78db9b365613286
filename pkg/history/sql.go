package history

import (
	"context"
	"database/sql"
	"encoding/json"

	"drawpoker-server/pkg/db"
)

type seats struct {
	Winners []Seat `json:"winners"`
	Losers  []Seat `json:"losers"`
}

// SQLRecorder stores finished rounds in the `rounds` table
type SQLRecorder struct {
	db *sql.DB
}

// NewSQLRecorder returns a recorder backed by db
func NewSQLRecorder(db *sql.DB) *SQLRecorder {
	return &SQLRecorder{db: db}
}

// Record inserts the round
func (s *SQLRecorder) Record(ctx context.Context, round *Round) error {
	data, err := json.Marshal(seats{round.Winners, round.Losers})
	if err != nil {
		return err
	}

	const query = `
INSERT INTO rounds (game_name, round_number, pot, share, data, started, ended)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = s.db.ExecContext(ctx, query, round.Game, round.Number, round.Pot, round.Share, data, round.Started, round.Ended)
	return err
}

// Recent returns the most recent rounds for a game, newest first
func (s *SQLRecorder) Recent(ctx context.Context, game string, limit int) ([]*Round, error) {
	const query = `
SELECT game_name, round_number, pot, share, data, started, ended
FROM rounds
WHERE game_name = $1
ORDER BY id DESC
LIMIT $2`
	rows, err := s.db.QueryContext(ctx, query, game, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rounds := make([]*Round, 0, limit)
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, err
		}

		rounds = append(rounds, r)
	}

	return rounds, rows.Err()
}

func scanRound(row db.Scanner) (*Round, error) {
	var r Round
	var data []byte
	if err := row.Scan(&r.Game, &r.Number, &r.Pot, &r.Share, &data, &r.Started, &r.Ended); err != nil {
		return nil, err
	}

	var s seats
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	r.Winners = s.Winners
	r.Losers = s.Losers
	return &r, nil
}
