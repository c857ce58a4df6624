package postgres

import "database/sql"

type cardTableModel struct {
	ID             int64         `db:"id"`
	MatchID        int64         `db:"match_id"`
	PlayerID       int64         `db:"player_id"`
	IsRed          bool          `db:"is_red"`
	IsSecondYellow bool          `db:"is_second_yellow"`
	Minute         sql.NullInt64 `db:"minute"`
}

type cardInsertModel struct {
	MatchID        int64         `db:"match_id"`
	PlayerID       int64         `db:"player_id"`
	IsRed          bool          `db:"is_red"`
	IsSecondYellow bool          `db:"is_second_yellow"`
	Minute         sql.NullInt64 `db:"minute"`
}
