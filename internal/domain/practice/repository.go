package practice

import (
	"context"

	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

// Repository persists sessions and attendance.
type Repository interface {
	List(ctx context.Context) ([]Practice, error)
	ListDates(ctx context.Context) ([]calendar.Date, error)
	GetByID(ctx context.Context, id int64) (Practice, bool, error)
	// Insert creates a session for the given date. Dates carry a unique
	// constraint; inserting an already-present date is a no-op.
	Insert(ctx context.Context, date calendar.Date) error
	SetCanceled(ctx context.Context, id int64, canceled bool) error
	SetAttendanceSet(ctx context.Context, id int64, set bool) error
	ListAttendance(ctx context.Context, practiceID int64) ([]Attendance, error)
	ReplaceAttendance(ctx context.Context, practiceID int64, records []Attendance) error
}
