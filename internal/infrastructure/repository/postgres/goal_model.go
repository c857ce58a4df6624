package postgres

import "database/sql"

type goalTableModel struct {
	ID       int64         `db:"id"`
	MatchID  int64         `db:"match_id"`
	ScorerID int64         `db:"scorer_id"`
	Index    int           `db:"goal_index"`
	Minute   sql.NullInt64 `db:"minute"`
}

type goalInsertModel struct {
	MatchID  int64         `db:"match_id"`
	ScorerID int64         `db:"scorer_id"`
	Index    int           `db:"goal_index"`
	Minute   sql.NullInt64 `db:"minute"`
}

type assistTableModel struct {
	ID        int64 `db:"id"`
	MatchID   int64 `db:"match_id"`
	PlayerID  int64 `db:"player_id"`
	GoalIndex int   `db:"goal_index"`
}

type assistInsertModel struct {
	MatchID   int64 `db:"match_id"`
	PlayerID  int64 `db:"player_id"`
	GoalIndex int   `db:"goal_index"`
}
