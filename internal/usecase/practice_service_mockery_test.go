package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	practicemock "github.com/immxrko/fc-patron-sub000/internal/mocks/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
)

func TestPracticeService_EnsureSchedule_InsertsOnlyMissingUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := practicemock.NewRepository(t)

	svc := NewPracticeService(repo, logging.NewNop())
	svc.now = fixedNow(2024, time.January, 16)

	anchor := calendar.New(2024, time.January, 2)
	existing := []calendar.Date{anchor, calendar.New(2024, time.January, 9)}

	repo.
		On("ListDates", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(existing, nil).
		Once()
	repo.
		On("Insert", mock.Anything, calendar.New(2024, time.January, 16)).
		Return(nil).
		Once()
	repo.
		On("List", mock.Anything).
		Return([]practice.Practice{
			{ID: 1, Date: anchor},
			{ID: 2, Date: calendar.New(2024, time.January, 9)},
			{ID: 3, Date: calendar.New(2024, time.January, 16)},
		}, nil).
		Once()

	items, err := svc.EnsureSchedule(ctx)
	if err != nil {
		t.Fatalf("ensure schedule: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("unexpected session count: got=%d want=3", len(items))
	}
}

func TestPracticeService_EnsureSchedule_InsertFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := practicemock.NewRepository(t)

	svc := NewPracticeService(repo, logging.NewNop())
	svc.now = fixedNow(2024, time.January, 9)

	insertErr := errors.New("connection reset")
	repo.
		On("ListDates", mock.Anything).
		Return([]calendar.Date{calendar.New(2024, time.January, 2)}, nil).
		Once()
	repo.
		On("Insert", mock.Anything, calendar.New(2024, time.January, 9)).
		Return(insertErr).
		Once()

	_, err := svc.EnsureSchedule(ctx)
	if !errors.Is(err, insertErr) {
		t.Fatalf("expected insert error, got %v", err)
	}
}
