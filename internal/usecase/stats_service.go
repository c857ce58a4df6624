package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	"github.com/immxrko/fc-patron-sub000/internal/domain/goal"
	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
	"github.com/immxrko/fc-patron-sub000/internal/domain/player"
	"github.com/immxrko/fc-patron-sub000/internal/domain/season"
)

const statsWorkerCount = 4

// SeasonStats is one player's aggregate line for one season. An appearance is
// any lineup row where the player started or came on.
type SeasonStats struct {
	SeasonID      int64 `json:"seasonId"`
	PlayerID      int64 `json:"playerId"`
	Appearances   int   `json:"appearances"`
	Goals         int   `json:"goals"`
	Assists       int   `json:"assists"`
	Yellows       int   `json:"yellows"`
	SecondYellows int   `json:"secondYellows"`
	Reds          int   `json:"reds"`
}

type StatsService struct {
	seasonRepo season.Repository
	playerRepo player.Repository
	lineupRepo lineup.Repository
	cardRepo   card.Repository
	goalRepo   goal.Repository
}

func NewStatsService(
	seasonRepo season.Repository,
	playerRepo player.Repository,
	lineupRepo lineup.Repository,
	cardRepo card.Repository,
	goalRepo goal.Repository,
) *StatsService {
	return &StatsService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		lineupRepo: lineupRepo,
		cardRepo:   cardRepo,
		goalRepo:   goalRepo,
	}
}

// SeasonLeaderboard aggregates every player's line for one season, sorted by
// goals, then assists, then appearances.
func (s *StatsService) SeasonLeaderboard(ctx context.Context, seasonID int64) ([]SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.SeasonLeaderboard")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.seasonRepo.GetByID(ctx, seasonID); err != nil {
		return nil, fmt.Errorf("get season by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}

	lines, err := s.aggregateSeason(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	out := make([]SeasonStats, 0, len(lines))
	for _, line := range lines {
		out = append(out, *line)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		if out[i].Assists != out[j].Assists {
			return out[i].Assists > out[j].Assists
		}
		if out[i].Appearances != out[j].Appearances {
			return out[i].Appearances > out[j].Appearances
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out, nil
}

// PlayerHistory aggregates one player's line for every season, oldest season
// id first. Seasons run on a small worker pool.
func (s *StatsService) PlayerHistory(ctx context.Context, playerID int64) ([]SeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerHistory")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	if len(seasons) == 0 {
		return nil, nil
	}

	workerCount := statsWorkerCount
	if len(seasons) < workerCount {
		workerCount = len(seasons)
	}
	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	type seasonResult struct {
		line SeasonStats
		err  error
	}
	results := make(chan seasonResult, len(seasons))

	var workers sync.WaitGroup
	for _, sn := range seasons {
		sn := sn
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			lines, aggErr := s.aggregateSeason(ctx, sn.ID)
			if aggErr != nil {
				results <- seasonResult{err: aggErr}
				return
			}
			line, ok := lines[playerID]
			if !ok {
				return
			}
			results <- seasonResult{line: *line}
		}); err != nil {
			workers.Done()
			return nil, fmt.Errorf("submit season aggregation: %w", err)
		}
	}

	workers.Wait()
	close(results)

	out := make([]SeasonStats, 0, len(seasons))
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		out = append(out, res.line)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SeasonID < out[j].SeasonID })
	return out, nil
}

func (s *StatsService) aggregateSeason(ctx context.Context, seasonID int64) (map[int64]*SeasonStats, error) {
	entries, err := s.lineupRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list lineup by season: %w", err)
	}
	cards, err := s.cardRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list cards by season: %w", err)
	}
	goals, assists, err := s.goalRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list goals by season: %w", err)
	}

	lines := make(map[int64]*SeasonStats)
	line := func(playerID int64) *SeasonStats {
		l, ok := lines[playerID]
		if !ok {
			l = &SeasonStats{SeasonID: seasonID, PlayerID: playerID}
			lines[playerID] = l
		}
		return l
	}

	for _, e := range entries {
		if e.IsStarter || e.SubIn != nil {
			line(e.PlayerID).Appearances++
		}
	}
	for _, g := range goals {
		line(g.ScorerID).Goals++
	}
	for _, a := range assists {
		line(a.PlayerID).Assists++
	}
	for _, c := range cards {
		switch c.Classification() {
		case card.ClassRed:
			line(c.PlayerID).Reds++
		case card.ClassSecondYellow:
			line(c.PlayerID).SecondYellows++
		default:
			line(c.PlayerID).Yellows++
		}
	}

	return lines, nil
}
