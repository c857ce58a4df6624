package postgres

import "database/sql"

// row_order preserves the admin form's row sequence; substitution pairing
// depends on encounter order within a minute.
type lineupTableModel struct {
	MatchID   int64         `db:"match_id"`
	PlayerID  int64         `db:"player_id"`
	RowOrder  int           `db:"row_order"`
	IsStarter bool          `db:"is_starter"`
	SubIn     sql.NullInt64 `db:"sub_in"`
	SubOut    sql.NullInt64 `db:"sub_out"`
}

type lineupInsertModel struct {
	MatchID   int64         `db:"match_id"`
	PlayerID  int64         `db:"player_id"`
	RowOrder  int           `db:"row_order"`
	IsStarter bool          `db:"is_starter"`
	SubIn     sql.NullInt64 `db:"sub_in"`
	SubOut    sql.NullInt64 `db:"sub_out"`
}
