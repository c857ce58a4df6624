package memory

import (
	"context"
	"sync"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

type PracticeRepository struct {
	mu         sync.RWMutex
	nextID     int64
	items      map[int64]practice.Practice
	byDate     map[calendar.Date]int64
	attendance map[int64][]practice.Attendance
}

func NewPracticeRepository(practices []practice.Practice) *PracticeRepository {
	items := make(map[int64]practice.Practice, len(practices))
	byDate := make(map[calendar.Date]int64, len(practices))
	var nextID int64 = 1
	for _, p := range practices {
		items[p.ID] = p
		byDate[p.Date] = p.ID
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	return &PracticeRepository{
		nextID:     nextID,
		items:      items,
		byDate:     byDate,
		attendance: make(map[int64][]practice.Attendance),
	}
}

func (r *PracticeRepository) List(_ context.Context) ([]practice.Practice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]practice.Practice, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *PracticeRepository) ListDates(_ context.Context) ([]calendar.Date, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]calendar.Date, 0, len(r.byDate))
	for d := range r.byDate {
		out = append(out, d)
	}
	return out, nil
}

func (r *PracticeRepository) GetByID(_ context.Context, id int64) (practice.Practice, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	return p, ok, nil
}

func (r *PracticeRepository) Insert(_ context.Context, date calendar.Date) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byDate[date]; exists {
		return nil
	}
	p := practice.Practice{ID: r.nextID, Date: date}
	r.nextID++
	r.items[p.ID] = p
	r.byDate[date] = p.ID
	return nil
}

func (r *PracticeRepository) SetCanceled(_ context.Context, id int64, canceled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil
	}
	p.Canceled = canceled
	r.items[id] = p
	return nil
}

func (r *PracticeRepository) SetAttendanceSet(_ context.Context, id int64, set bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil
	}
	p.AttendanceSet = set
	r.items[id] = p
	return nil
}

func (r *PracticeRepository) ListAttendance(_ context.Context, practiceID int64) ([]practice.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]practice.Attendance(nil), r.attendance[practiceID]...), nil
}

func (r *PracticeRepository) ReplaceAttendance(_ context.Context, practiceID int64, records []practice.Attendance) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.attendance[practiceID] = append([]practice.Attendance(nil), records...)
	return nil
}
