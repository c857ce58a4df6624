package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	"github.com/immxrko/fc-patron-sub000/internal/domain/goal"
	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
	"github.com/immxrko/fc-patron-sub000/internal/domain/player"
	"github.com/immxrko/fc-patron-sub000/internal/domain/season"
	"github.com/immxrko/fc-patron-sub000/internal/platform/cache"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
)

const matchListCachePrefix = "matches:season:"

// ResultNotifier pushes a saved result to subscribers. Delivery is best
// effort; a failed push never fails the save.
type ResultNotifier interface {
	NotifyResultSaved(ctx context.Context, event ResultSavedEvent) error
}

// ResultSavedEvent describes a result save for downstream consumers.
type ResultSavedEvent struct {
	MatchID      int64
	SeasonID     int64
	OpponentName string
	Squad        string
	Date         calendar.Date
	Result       string
	IsHome       bool
}

// CreateMatchInput is a new fixture as entered by the admin.
type CreateMatchInput struct {
	SeasonID   int64
	OpponentID int64
	Date       calendar.Date
	Kickoff    string
	IsHome     bool
	Squad      string
}

// SaveResultInput carries the final score in home/away display order; the
// club-centric stored form is derived from the fixture's home flag.
type SaveResultInput struct {
	MatchID   int64
	HomeGoals int
	AwayGoals int
}

// LineupRowInput is one roster row of the lineup form. Minutes arrive as raw
// form strings; unparsable values leave the row out of substitution pairing.
type LineupRowInput struct {
	PlayerID  int64
	IsStarter bool
	SubIn     string
	SubOut    string
}

// CardInput is one booking row of the card form.
type CardInput struct {
	PlayerID int64
	Kind     card.Kind
	Minute   string
}

// GoalInput is one scoring row of the goal form.
type GoalInput struct {
	ScorerID   int64
	AssisterID int64
	Minute     string
}

// MatchDetail is the full derived view of one fixture.
type MatchDetail struct {
	Match         match.Match
	Status        match.Status
	Opponent      opponent.Opponent
	HomeResult    string
	AwayResult    string
	Lineup        []lineup.Entry
	Substitutions []lineup.Substitution
	Cards         []card.Record
	Goals         []goal.ScoringEvent
}

type MatchService struct {
	matchRepo    match.Repository
	seasonRepo   season.Repository
	opponentRepo opponent.Repository
	playerRepo   player.Repository
	lineupRepo   lineup.Repository
	cardRepo     card.Repository
	goalRepo     goal.Repository
	cache        *cache.Store
	notifier     ResultNotifier
	logger       *logging.Logger
	now          func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	seasonRepo season.Repository,
	opponentRepo opponent.Repository,
	playerRepo player.Repository,
	lineupRepo lineup.Repository,
	cardRepo card.Repository,
	goalRepo goal.Repository,
	store *cache.Store,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &MatchService{
		matchRepo:    matchRepo,
		seasonRepo:   seasonRepo,
		opponentRepo: opponentRepo,
		playerRepo:   playerRepo,
		lineupRepo:   lineupRepo,
		cardRepo:     cardRepo,
		goalRepo:     goalRepo,
		cache:        store,
		logger:       logger,
		now:          time.Now,
	}
}

// SetResultNotifier wires the outbound result push. Optional.
func (s *MatchService) SetResultNotifier(notifier ResultNotifier) {
	s.notifier = notifier
}

// ListSeasonMatches returns the season's fixtures grouped per calendar day,
// first team before reserves within a day.
func (s *MatchService) ListSeasonMatches(ctx context.Context, seasonID int64) ([]match.DayGroup, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.ListSeasonMatches")
	defer span.End()

	if seasonID <= 0 {
		return nil, fmt.Errorf("%w: season_id is required", ErrInvalidInput)
	}
	if err := s.requireSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	load := func(ctx context.Context) (any, error) {
		items, err := s.matchRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, fmt.Errorf("list matches by season: %w", err)
		}
		return match.GroupByDay(items), nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]match.DayGroup), nil
	}

	key := fmt.Sprintf("%s%d", matchListCachePrefix, seasonID)
	value, err := s.cache.GetOrLoad(ctx, key, load)
	if err != nil {
		return nil, err
	}
	return value.([]match.DayGroup), nil
}

// GetDetail loads a fixture with its derived lineup, substitution, card and
// goal views. The four event reads run concurrently.
func (s *MatchService) GetDetail(ctx context.Context, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.GetDetail")
	defer span.End()

	m, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}

	detail := MatchDetail{
		Match:  m,
		Status: match.ClassifyStatus(m, calendar.Today(s.now)),
	}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		opp, exists, err := s.opponentRepo.GetByID(ctx, m.OpponentID)
		if err != nil {
			return fmt.Errorf("get opponent by id: %w", err)
		}
		if exists {
			detail.Opponent = opp
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.lineupRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list lineup by match: %w", err)
		}
		detail.Lineup = entries
		detail.Substitutions = lineup.PairSubstitutions(entries)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		cards, err := s.cardRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list cards by match: %w", err)
		}
		detail.Cards = cards
		return nil
	})
	p.Go(func(ctx context.Context) error {
		goals, assists, err := s.goalRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return fmt.Errorf("list goals by match: %w", err)
		}
		detail.Goals = goal.PairScorers(goals, assists)
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchDetail{}, err
	}

	detail.HomeResult, detail.AwayResult = match.DisplayResult(m.Result, m.IsHome)

	if unmatched := lineup.UnmatchedAt(detail.Lineup); len(unmatched) > 0 {
		s.logger.WarnContext(ctx, "unbalanced substitution rows dropped from pairing",
			"match_id", matchID, "minutes", unmatched)
	}

	return detail, nil
}

// Create registers a new fixture after validating its season, opponent and
// squad code.
func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.Create")
	defer span.End()

	if !match.IsValidSquad(input.Squad) {
		return match.Match{}, fmt.Errorf("%w: squad must be %s or %s", ErrInvalidInput, match.SquadFirstTeam, match.SquadReserve)
	}
	if input.Date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}
	if err := s.requireSeason(ctx, input.SeasonID); err != nil {
		return match.Match{}, err
	}
	if _, exists, err := s.opponentRepo.GetByID(ctx, input.OpponentID); err != nil {
		return match.Match{}, fmt.Errorf("get opponent by id: %w", err)
	} else if !exists {
		return match.Match{}, fmt.Errorf("%w: opponent=%d", ErrNotFound, input.OpponentID)
	}

	m := match.Match{
		SeasonID:   input.SeasonID,
		OpponentID: input.OpponentID,
		Date:       input.Date,
		Kickoff:    strings.TrimSpace(input.Kickoff),
		IsHome:     input.IsHome,
		Squad:      input.Squad,
	}
	id, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	m.ID = id

	s.invalidateSeason(ctx, m.SeasonID)
	return m, nil
}

// SaveResult stores the final score in club-centric form and pushes the
// saved result to subscribers in the background.
func (s *MatchService) SaveResult(ctx context.Context, input SaveResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SaveResult")
	defer span.End()

	m, err := s.requireMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	stored, err := match.StoredResult(input.HomeGoals, input.AwayGoals, m.IsHome)
	if err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.UpdateResult(ctx, m.ID, &stored); err != nil {
		return match.Match{}, fmt.Errorf("update match result: %w", err)
	}
	m.Result = &stored

	s.invalidateSeason(ctx, m.SeasonID)
	s.pushResultSaved(ctx, m)
	return m, nil
}

// SaveLineup replaces the match roster wholesale.
func (s *MatchService) SaveLineup(ctx context.Context, matchID int64, rows []LineupRowInput) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SaveLineup")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	entries := make([]lineup.Entry, 0, len(rows))
	seen := make(map[int64]struct{}, len(rows))
	for _, row := range rows {
		if row.PlayerID == 0 {
			continue
		}
		if _, dup := seen[row.PlayerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %d in lineup", ErrInvalidInput, row.PlayerID)
		}
		seen[row.PlayerID] = struct{}{}
		if err := s.requirePlayer(ctx, row.PlayerID); err != nil {
			return nil, err
		}
		entries = append(entries, lineup.Entry{
			MatchID:   matchID,
			PlayerID:  row.PlayerID,
			IsStarter: row.IsStarter,
			SubIn:     lineup.ParseMinute(row.SubIn),
			SubOut:    lineup.ParseMinute(row.SubOut),
		})
	}

	if err := s.lineupRepo.ReplaceByMatch(ctx, matchID, entries); err != nil {
		return nil, fmt.Errorf("replace lineup: %w", err)
	}
	return entries, nil
}

// SaveCards replaces the match bookings wholesale, escalating second yellows.
func (s *MatchService) SaveCards(ctx context.Context, matchID int64, inputs []CardInput) ([]card.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SaveCards")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	assignments := make([]card.Assignment, 0, len(inputs))
	for _, in := range inputs {
		if in.PlayerID == 0 {
			continue
		}
		if !card.IsValidKind(in.Kind) {
			return nil, fmt.Errorf("%w: card kind must be %s or %s", ErrInvalidInput, card.KindYellow, card.KindRed)
		}
		if err := s.requirePlayer(ctx, in.PlayerID); err != nil {
			return nil, err
		}
		assignments = append(assignments, card.Assignment{
			PlayerID: in.PlayerID,
			Kind:     in.Kind,
			Minute:   lineup.ParseMinute(in.Minute),
		})
	}

	records := card.BuildRecords(matchID, assignments)
	if err := s.cardRepo.ReplaceByMatch(ctx, matchID, records); err != nil {
		return nil, fmt.Errorf("replace cards: %w", err)
	}
	return records, nil
}

// SaveGoals replaces the match goals and assists wholesale. The slice order
// of the inputs fixes each goal's index, which assists reference.
func (s *MatchService) SaveGoals(ctx context.Context, matchID int64, inputs []GoalInput) ([]goal.Goal, []goal.Assist, error) {
	ctx, span := startUsecaseSpan(ctx, "MatchService.SaveGoals")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, nil, err
	}

	events := make([]goal.ScoringEvent, 0, len(inputs))
	for _, in := range inputs {
		if in.ScorerID == 0 {
			continue
		}
		if err := s.requirePlayer(ctx, in.ScorerID); err != nil {
			return nil, nil, err
		}
		if in.AssisterID != 0 {
			if err := s.requirePlayer(ctx, in.AssisterID); err != nil {
				return nil, nil, err
			}
		}
		events = append(events, goal.ScoringEvent{
			ScorerID:   in.ScorerID,
			AssisterID: in.AssisterID,
			Minute:     lineup.ParseMinute(in.Minute),
		})
	}

	goals, assists := goal.BuildRecords(matchID, events)
	if err := s.goalRepo.ReplaceByMatch(ctx, matchID, goals, assists); err != nil {
		return nil, nil, fmt.Errorf("replace goals: %w", err)
	}
	return goals, assists, nil
}

func (s *MatchService) requireMatch(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}
	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchService) requireSeason(ctx context.Context, seasonID int64) error {
	_, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("get season by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: season=%d", ErrNotFound, seasonID)
	}
	return nil
}

func (s *MatchService) requirePlayer(ctx context.Context, playerID int64) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return nil
}

func (s *MatchService) invalidateSeason(ctx context.Context, seasonID int64) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(ctx, fmt.Sprintf("%s%d", matchListCachePrefix, seasonID))
}

func (s *MatchService) pushResultSaved(ctx context.Context, m match.Match) {
	if s.notifier == nil || m.Result == nil {
		return
	}

	opp, _, err := s.opponentRepo.GetByID(ctx, m.OpponentID)
	if err != nil {
		s.logger.WarnContext(ctx, "skip result push, opponent lookup failed",
			"match_id", m.ID, "error", err)
		return
	}

	event := ResultSavedEvent{
		MatchID:      m.ID,
		SeasonID:     m.SeasonID,
		OpponentName: opp.Name,
		Squad:        m.Squad,
		Date:         m.Date,
		Result:       *m.Result,
		IsHome:       m.IsHome,
	}

	go func() {
		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := s.notifier.NotifyResultSaved(pushCtx, event); err != nil {
			s.logger.Warn("result push failed", "match_id", event.MatchID, "error", err)
		}
	}()
}
