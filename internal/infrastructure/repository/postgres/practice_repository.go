package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type PracticeRepository struct {
	db *sqlx.DB
}

func NewPracticeRepository(db *sqlx.DB) *PracticeRepository {
	return &PracticeRepository{db: db}
}

func (r *PracticeRepository) List(ctx context.Context) ([]practice.Practice, error) {
	query, args, err := qb.Select("*").From("practices").
		OrderBy("practice_date DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list practices query: %w", err)
	}

	var rows []practiceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}

	out := make([]practice.Practice, 0, len(rows))
	for _, row := range rows {
		out = append(out, practiceFromRow(row))
	}
	return out, nil
}

func (r *PracticeRepository) ListDates(ctx context.Context) ([]calendar.Date, error) {
	query, args, err := qb.Select("practice_date").From("practices").
		OrderBy("practice_date").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list practice dates query: %w", err)
	}

	var rows []practiceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list practice dates: %w", err)
	}

	out := make([]calendar.Date, 0, len(rows))
	for _, row := range rows {
		out = append(out, calendar.FromTime(row.PracticeDate))
	}
	return out, nil
}

func (r *PracticeRepository) GetByID(ctx context.Context, id int64) (practice.Practice, bool, error) {
	query, args, err := qb.Select("*").From("practices").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return practice.Practice{}, false, fmt.Errorf("build select practice query: %w", err)
	}

	var row practiceTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return practice.Practice{}, false, nil
		}
		return practice.Practice{}, false, fmt.Errorf("select practice by id: %w", err)
	}

	return practiceFromRow(row), true, nil
}

func (r *PracticeRepository) Insert(ctx context.Context, date calendar.Date) error {
	insertModel := practiceInsertModel{PracticeDate: date.Time()}
	// Concurrent back-fills race on the same missing dates; the unique
	// constraint plus DO NOTHING keeps the second writer harmless.
	query, args, err := qb.InsertModel("practices", insertModel, "ON CONFLICT (practice_date) DO NOTHING")
	if err != nil {
		return fmt.Errorf("build insert practice query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert practice: %w", err)
	}
	return nil
}

func (r *PracticeRepository) SetCanceled(ctx context.Context, id int64, canceled bool) error {
	query, args, err := qb.Update("practices").
		Set("canceled", canceled).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update practice canceled query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update practice canceled: %w", err)
	}
	return nil
}

func (r *PracticeRepository) SetAttendanceSet(ctx context.Context, id int64, set bool) error {
	query, args, err := qb.Update("practices").
		Set("attendance_set", set).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update attendance flag query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update attendance flag: %w", err)
	}
	return nil
}

func (r *PracticeRepository) ListAttendance(ctx context.Context, practiceID int64) ([]practice.Attendance, error) {
	query, args, err := qb.Select("*").From("practice_attendance").
		Where(qb.Eq("practice_id", practiceID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list attendance query: %w", err)
	}

	var rows []attendanceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	out := make([]practice.Attendance, 0, len(rows))
	for _, row := range rows {
		out = append(out, practice.Attendance{
			PracticeID: row.PracticeID,
			PlayerID:   row.PlayerID,
			Present:    row.Present,
		})
	}
	return out, nil
}

func (r *PracticeRepository) ReplaceAttendance(ctx context.Context, practiceID int64, records []practice.Attendance) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace attendance: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("practice_attendance").
		Where(qb.Eq("practice_id", practiceID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear attendance query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear attendance: %w", err)
	}

	for _, item := range records {
		insertModel := attendanceInsertModel{
			PracticeID: practiceID,
			PlayerID:   item.PlayerID,
			Present:    item.Present,
		}
		query, args, err := qb.InsertModel("practice_attendance", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert attendance query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert attendance player=%d: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace attendance tx: %w", err)
	}
	return nil
}

func practiceFromRow(row practiceTableModel) practice.Practice {
	return practice.Practice{
		ID:            row.ID,
		Date:          calendar.FromTime(row.PracticeDate),
		AttendanceSet: row.AttendanceSet,
		Canceled:      row.Canceled,
	}
}
