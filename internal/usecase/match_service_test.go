package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/infrastructure/repository/memory"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
)

func newMatchService(t *testing.T) (*MatchService, *memory.MatchRepository) {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	svc := NewMatchService(
		matchRepo,
		memory.NewSeasonRepository(memory.SeedSeasons()),
		memory.NewOpponentRepository(memory.SeedOpponents()),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewLineupRepository(matchRepo),
		memory.NewCardRepository(matchRepo),
		memory.NewGoalRepository(matchRepo),
		nil,
		logging.NewNop(),
	)
	return svc, matchRepo
}

func TestMatchService_ListSeasonMatches_GroupsFirstTeamFirst(t *testing.T) {
	svc, _ := newMatchService(t)

	groups, err := svc.ListSeasonMatches(t.Context(), memory.SeedSeasonID)
	if err != nil {
		t.Fatalf("list season matches failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	if groups[0].Date.After(groups[1].Date) {
		t.Fatalf("day groups must be date ordered: %v", groups)
	}

	// The seed has a KM and a RES fixture on the same day; KM leads.
	first := groups[0].Matches
	if len(first) != 2 {
		t.Fatalf("expected 2 matches on first day, got %d", len(first))
	}
	if first[0].Squad != match.SquadFirstTeam || first[1].Squad != match.SquadReserve {
		t.Fatalf("first team must lead within a day: %s, %s", first[0].Squad, first[1].Squad)
	}
}

func TestMatchService_ListSeasonMatches_UnknownSeason(t *testing.T) {
	svc, _ := newMatchService(t)

	_, err := svc.ListSeasonMatches(t.Context(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_SaveResult_AwayFixtureStoresClubPerspective(t *testing.T) {
	svc, matchRepo := newMatchService(t)

	// Match 3 is an away fixture. A 1:3 scoreline for the hosts means the
	// club won 3:1 in stored, club-centric form.
	saved, err := svc.SaveResult(t.Context(), SaveResultInput{MatchID: 3, HomeGoals: 1, AwayGoals: 3})
	if err != nil {
		t.Fatalf("save result failed: %v", err)
	}
	if saved.Result == nil || *saved.Result != "3:1" {
		t.Fatalf("unexpected stored result: %v", saved.Result)
	}

	m, _, err := matchRepo.GetByID(t.Context(), 3)
	if err != nil {
		t.Fatalf("reload match: %v", err)
	}
	if m.Result == nil || *m.Result != "3:1" {
		t.Fatalf("result not persisted club-centric: %v", m.Result)
	}
}

func TestMatchService_SaveResult_RejectsNegativeGoals(t *testing.T) {
	svc, _ := newMatchService(t)

	_, err := svc.SaveResult(t.Context(), SaveResultInput{MatchID: 1, HomeGoals: -1, AwayGoals: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_SaveLineup_ThenDetailPairsSubstitutions(t *testing.T) {
	svc, _ := newMatchService(t)

	rows := []LineupRowInput{
		{PlayerID: 1, IsStarter: true},
		{PlayerID: 2, IsStarter: true, SubOut: "60"},
		{PlayerID: 4, IsStarter: true, SubOut: "60"},
		{PlayerID: 5, SubIn: "60"},
		{PlayerID: 7, SubIn: "60"},
		{PlayerID: 0}, // form placeholder
	}
	if _, err := svc.SaveLineup(t.Context(), 1, rows); err != nil {
		t.Fatalf("save lineup failed: %v", err)
	}

	detail, err := svc.GetDetail(t.Context(), 1)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Lineup) != 5 {
		t.Fatalf("expected 5 lineup rows, got %d", len(detail.Lineup))
	}
	if len(detail.Substitutions) != 2 {
		t.Fatalf("expected 2 substitutions, got %d", len(detail.Substitutions))
	}
	if detail.Substitutions[0].PlayerOut != 2 || detail.Substitutions[0].PlayerIn != 5 {
		t.Fatalf("first substitution must pair in row order: %+v", detail.Substitutions[0])
	}
	if detail.Substitutions[1].PlayerOut != 4 || detail.Substitutions[1].PlayerIn != 7 {
		t.Fatalf("second substitution must pair in row order: %+v", detail.Substitutions[1])
	}
}

func TestMatchService_SaveLineup_RejectsDuplicatePlayer(t *testing.T) {
	svc, _ := newMatchService(t)

	rows := []LineupRowInput{
		{PlayerID: 1, IsStarter: true},
		{PlayerID: 1},
	}
	_, err := svc.SaveLineup(t.Context(), 1, rows)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_SaveCards_EscalatesSecondYellow(t *testing.T) {
	svc, _ := newMatchService(t)

	records, err := svc.SaveCards(t.Context(), 1, []CardInput{
		{PlayerID: 2, Kind: card.KindYellow, Minute: "30"},
		{PlayerID: 2, Kind: card.KindYellow, Minute: "75"},
	})
	if err != nil {
		t.Fatalf("save cards failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].IsSecondYellow || records[0].IsRed {
		t.Fatalf("first booking must stay yellow: %+v", records[0])
	}
	if !records[1].IsSecondYellow {
		t.Fatalf("second booking must escalate: %+v", records[1])
	}
}

func TestMatchService_SaveGoals_AssistFollowsFirstGoal(t *testing.T) {
	svc, _ := newMatchService(t)

	goals, assists, err := svc.SaveGoals(t.Context(), 1, []GoalInput{
		{ScorerID: 6, AssisterID: 4},
		{ScorerID: 7},
	})
	if err != nil {
		t.Fatalf("save goals failed: %v", err)
	}
	if len(goals) != 2 || len(assists) != 1 {
		t.Fatalf("unexpected counts: goals=%d assists=%d", len(goals), len(assists))
	}
	if assists[0].GoalIndex != 0 || assists[0].PlayerID != 4 {
		t.Fatalf("assist must reference the first goal: %+v", assists[0])
	}

	detail, err := svc.GetDetail(t.Context(), 1)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Goals) != 2 {
		t.Fatalf("expected 2 scoring events, got %d", len(detail.Goals))
	}
	if detail.Goals[0].ScorerID != 6 || detail.Goals[0].AssisterID != 4 {
		t.Fatalf("first event must carry the assist: %+v", detail.Goals[0])
	}
	if detail.Goals[1].AssisterID != 0 {
		t.Fatalf("second event must carry no assist: %+v", detail.Goals[1])
	}
}

func TestMatchService_Create_ValidatesSquad(t *testing.T) {
	svc, _ := newMatchService(t)

	_, err := svc.Create(t.Context(), CreateMatchInput{
		SeasonID:   memory.SeedSeasonID,
		OpponentID: 1,
		Date:       calendar.New(2025, time.September, 6),
		Squad:      "U23",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_GetDetail_FlipsAwayDisplay(t *testing.T) {
	svc, matchRepo := newMatchService(t)

	stored := "2:0"
	if err := matchRepo.UpdateResult(t.Context(), 3, &stored); err != nil {
		t.Fatalf("seed result: %v", err)
	}

	detail, err := svc.GetDetail(t.Context(), 3)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	// Away fixture: hosts' goals shown first.
	if detail.HomeResult != "0" || detail.AwayResult != "2" {
		t.Fatalf("away display must flip: home=%s away=%s", detail.HomeResult, detail.AwayResult)
	}
}
