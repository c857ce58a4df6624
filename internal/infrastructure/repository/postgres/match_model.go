package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	SeasonID   int64          `db:"season_id"`
	OpponentID int64          `db:"opponent_id"`
	MatchDate  time.Time      `db:"match_date"`
	Kickoff    string         `db:"kickoff"`
	IsHome     bool           `db:"is_home"`
	Squad      string         `db:"km_res"`
	Result     sql.NullString `db:"result"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

type matchInsertModel struct {
	SeasonID   int64          `db:"season_id"`
	OpponentID int64          `db:"opponent_id"`
	MatchDate  time.Time      `db:"match_date"`
	Kickoff    string         `db:"kickoff"`
	IsHome     bool           `db:"is_home"`
	Squad      string         `db:"km_res"`
	Result     sql.NullString `db:"result"`
}
