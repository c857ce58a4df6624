// Package practice covers the weekly training schedule and its attendance.
package practice

import (
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

// Weekday is the club's fixed training day. Recurrence back-fill only ever
// generates dates on this weekday.
const Weekday = time.Tuesday

// Practice is one training session.
type Practice struct {
	ID            int64         `db:"id" json:"id"`
	Date          calendar.Date `db:"practice_date" json:"date"`
	AttendanceSet bool          `db:"attendance_set" json:"attendanceSet"`
	Canceled      bool          `db:"canceled" json:"canceled"`
}

// Attendance is one player's presence record for a session.
type Attendance struct {
	PracticeID int64 `db:"practice_id" json:"practiceId"`
	PlayerID   int64 `db:"player_id" json:"playerId"`
	Present    bool  `db:"present" json:"present"`
}
