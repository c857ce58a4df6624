package postgres

import "time"

type practiceTableModel struct {
	ID            int64     `db:"id"`
	PracticeDate  time.Time `db:"practice_date"`
	AttendanceSet bool      `db:"attendance_set"`
	Canceled      bool      `db:"canceled"`
}

type practiceInsertModel struct {
	PracticeDate time.Time `db:"practice_date"`
}

type attendanceTableModel struct {
	PracticeID int64 `db:"practice_id"`
	PlayerID   int64 `db:"player_id"`
	Present    bool  `db:"present"`
}

type attendanceInsertModel struct {
	PracticeID int64 `db:"practice_id"`
	PlayerID   int64 `db:"player_id"`
	Present    bool  `db:"present"`
}
