package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/infrastructure/repository/memory"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestPracticeService_EnsureSchedule_BackfillsTuesdays(t *testing.T) {
	repo := memory.NewPracticeRepository([]practice.Practice{
		{ID: 1, Date: calendar.New(2024, time.January, 2)},
	})
	svc := NewPracticeService(repo, logging.NewNop())
	svc.now = fixedNow(2024, time.January, 23)

	items, err := svc.EnsureSchedule(t.Context())
	if err != nil {
		t.Fatalf("ensure schedule failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 sessions, got %d", len(items))
	}

	dates, err := repo.ListDates(t.Context())
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}
	want := map[calendar.Date]bool{
		calendar.New(2024, time.January, 2):  true,
		calendar.New(2024, time.January, 9):  true,
		calendar.New(2024, time.January, 16): true,
		calendar.New(2024, time.January, 23): true,
	}
	for _, d := range dates {
		if !want[d] {
			t.Fatalf("unexpected session date %s", d)
		}
		delete(want, d)
	}
	if len(want) != 0 {
		t.Fatalf("missing session dates: %v", want)
	}
}

func TestPracticeService_EnsureSchedule_Idempotent(t *testing.T) {
	repo := memory.NewPracticeRepository([]practice.Practice{
		{ID: 1, Date: calendar.New(2024, time.January, 2)},
	})
	svc := NewPracticeService(repo, logging.NewNop())
	svc.now = fixedNow(2024, time.January, 23)

	if _, err := svc.EnsureSchedule(t.Context()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, _ := repo.ListDates(t.Context())

	if _, err := svc.EnsureSchedule(t.Context()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, _ := repo.ListDates(t.Context())

	if len(first) != len(second) {
		t.Fatalf("second run inserted rows: %d -> %d", len(first), len(second))
	}
}

func TestPracticeService_EnsureSchedule_EmptyStore(t *testing.T) {
	repo := memory.NewPracticeRepository(nil)
	svc := NewPracticeService(repo, logging.NewNop())
	svc.now = fixedNow(2024, time.June, 4)

	items, err := svc.EnsureSchedule(t.Context())
	if err != nil {
		t.Fatalf("ensure schedule failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("no anchor must generate nothing, got %d", len(items))
	}
}

func TestPracticeService_List_NewestFirst(t *testing.T) {
	repo := memory.NewPracticeRepository([]practice.Practice{
		{ID: 1, Date: calendar.New(2024, time.January, 2)},
		{ID: 2, Date: calendar.New(2024, time.January, 16)},
		{ID: 3, Date: calendar.New(2024, time.January, 9)},
	})
	svc := NewPracticeService(repo, logging.NewNop())

	items, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i].Date.After(items[i-1].Date) {
			t.Fatalf("sessions not newest first: %v", items)
		}
	}
}

func TestPracticeService_SaveAttendance(t *testing.T) {
	repo := memory.NewPracticeRepository([]practice.Practice{
		{ID: 1, Date: calendar.New(2024, time.January, 2)},
	})
	svc := NewPracticeService(repo, logging.NewNop())

	err := svc.SaveAttendance(t.Context(), 1, []AttendanceInput{
		{PlayerID: 1, Present: true},
		{PlayerID: 2, Present: false},
	})
	if err != nil {
		t.Fatalf("save attendance failed: %v", err)
	}

	p, _, err := repo.GetByID(t.Context(), 1)
	if err != nil {
		t.Fatalf("reload practice: %v", err)
	}
	if !p.AttendanceSet {
		t.Fatalf("session must be marked as recorded")
	}

	records, err := svc.ListAttendance(t.Context(), 1)
	if err != nil {
		t.Fatalf("list attendance failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestPracticeService_SaveAttendance_RejectsCanceled(t *testing.T) {
	repo := memory.NewPracticeRepository([]practice.Practice{
		{ID: 1, Date: calendar.New(2024, time.January, 2), Canceled: true},
	})
	svc := NewPracticeService(repo, logging.NewNop())

	err := svc.SaveAttendance(t.Context(), 1, []AttendanceInput{{PlayerID: 1, Present: true}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPracticeService_SetCanceled_UnknownSession(t *testing.T) {
	repo := memory.NewPracticeRepository(nil)
	svc := NewPracticeService(repo, logging.NewNop())

	err := svc.SetCanceled(t.Context(), 99, true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
