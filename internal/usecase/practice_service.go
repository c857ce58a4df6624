package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
)

// AttendanceInput is one player's presence record as submitted.
type AttendanceInput struct {
	PlayerID int64
	Present  bool
}

type PracticeService struct {
	practiceRepo practice.Repository
	logger       *logging.Logger
	now          func() time.Time
}

func NewPracticeService(practiceRepo practice.Repository, logger *logging.Logger) *PracticeService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PracticeService{
		practiceRepo: practiceRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// EnsureSchedule back-fills missing weekly sessions between the earliest
// session on file and today, then returns the full list. Running it twice
// inserts nothing the second time; the date unique constraint catches
// concurrent back-fills racing each other.
func (s *PracticeService) EnsureSchedule(ctx context.Context) ([]practice.Practice, error) {
	ctx, span := startUsecaseSpan(ctx, "PracticeService.EnsureSchedule")
	defer span.End()

	existing, err := s.practiceRepo.ListDates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list practice dates: %w", err)
	}

	today := calendar.Today(s.now)
	missing := practice.MissingDates(existing, today, practice.Weekday)
	for _, d := range missing {
		if err := s.practiceRepo.Insert(ctx, d); err != nil {
			return nil, fmt.Errorf("insert practice %s: %w", d, err)
		}
	}
	if len(missing) > 0 {
		s.logger.InfoContext(ctx, "back-filled practice sessions", "count", len(missing))
	}

	return s.List(ctx)
}

// List returns all sessions, newest first.
func (s *PracticeService) List(ctx context.Context) ([]practice.Practice, error) {
	items, err := s.practiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list practices: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[j].Date.Before(items[i].Date) })
	return items, nil
}

// SaveAttendance replaces a session's attendance wholesale and marks the
// session as recorded. Canceled sessions reject attendance.
func (s *PracticeService) SaveAttendance(ctx context.Context, practiceID int64, inputs []AttendanceInput) error {
	ctx, span := startUsecaseSpan(ctx, "PracticeService.SaveAttendance")
	defer span.End()

	p, err := s.requirePractice(ctx, practiceID)
	if err != nil {
		return err
	}
	if p.Canceled {
		return fmt.Errorf("%w: cannot record attendance for a canceled session", ErrInvalidInput)
	}

	records := make([]practice.Attendance, 0, len(inputs))
	seen := make(map[int64]struct{}, len(inputs))
	for _, in := range inputs {
		if in.PlayerID == 0 {
			continue
		}
		if _, dup := seen[in.PlayerID]; dup {
			return fmt.Errorf("%w: duplicate player id %d in attendance", ErrInvalidInput, in.PlayerID)
		}
		seen[in.PlayerID] = struct{}{}
		records = append(records, practice.Attendance{
			PracticeID: practiceID,
			PlayerID:   in.PlayerID,
			Present:    in.Present,
		})
	}

	if err := s.practiceRepo.ReplaceAttendance(ctx, practiceID, records); err != nil {
		return fmt.Errorf("replace attendance: %w", err)
	}
	if err := s.practiceRepo.SetAttendanceSet(ctx, practiceID, true); err != nil {
		return fmt.Errorf("mark attendance set: %w", err)
	}
	return nil
}

// ListAttendance returns a session's attendance records.
func (s *PracticeService) ListAttendance(ctx context.Context, practiceID int64) ([]practice.Attendance, error) {
	if _, err := s.requirePractice(ctx, practiceID); err != nil {
		return nil, err
	}
	records, err := s.practiceRepo.ListAttendance(ctx, practiceID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return records, nil
}

// SetCanceled flags or unflags a session as canceled.
func (s *PracticeService) SetCanceled(ctx context.Context, practiceID int64, canceled bool) error {
	ctx, span := startUsecaseSpan(ctx, "PracticeService.SetCanceled")
	defer span.End()

	if _, err := s.requirePractice(ctx, practiceID); err != nil {
		return err
	}
	if err := s.practiceRepo.SetCanceled(ctx, practiceID, canceled); err != nil {
		return fmt.Errorf("set practice canceled: %w", err)
	}
	return nil
}

func (s *PracticeService) requirePractice(ctx context.Context, practiceID int64) (practice.Practice, error) {
	if practiceID <= 0 {
		return practice.Practice{}, fmt.Errorf("%w: practice_id is required", ErrInvalidInput)
	}
	p, exists, err := s.practiceRepo.GetByID(ctx, practiceID)
	if err != nil {
		return practice.Practice{}, fmt.Errorf("get practice by id: %w", err)
	}
	if !exists {
		return practice.Practice{}, fmt.Errorf("%w: practice=%d", ErrNotFound, practiceID)
	}
	return p, nil
}
