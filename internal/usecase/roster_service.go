package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
	"github.com/immxrko/fc-patron-sub000/internal/domain/player"
	"github.com/immxrko/fc-patron-sub000/internal/domain/season"
)

// SavePlayerInput is a roster member as entered by the admin.
type SavePlayerInput struct {
	Name     string
	Position string
	Squad    string
	Active   bool
}

type RosterService struct {
	playerRepo   player.Repository
	seasonRepo   season.Repository
	opponentRepo opponent.Repository
}

func NewRosterService(
	playerRepo player.Repository,
	seasonRepo season.Repository,
	opponentRepo opponent.Repository,
) *RosterService {
	return &RosterService{
		playerRepo:   playerRepo,
		seasonRepo:   seasonRepo,
		opponentRepo: opponentRepo,
	}
}

// ListPlayers returns the roster sorted by name.
func (s *RosterService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// CreatePlayer adds a roster member.
func (s *RosterService) CreatePlayer(ctx context.Context, input SavePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.CreatePlayer")
	defer span.End()

	p, err := s.buildPlayer(input)
	if err != nil {
		return player.Player{}, err
	}
	id, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	p.ID = id
	return p, nil
}

// UpdatePlayer replaces a roster member's fields.
func (s *RosterService) UpdatePlayer(ctx context.Context, id int64, input SavePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.UpdatePlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, id); err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	} else if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	p, err := s.buildPlayer(input)
	if err != nil {
		return player.Player{}, err
	}
	p.ID = id
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return p, nil
}

// ListSeasons returns all seasons.
func (s *RosterService) ListSeasons(ctx context.Context) ([]season.Season, error) {
	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}

// CurrentSeason returns the season new matches default into.
func (s *RosterService) CurrentSeason(ctx context.Context) (season.Season, error) {
	item, exists, err := s.seasonRepo.GetCurrent(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get current season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: no current season configured", ErrNotFound)
	}
	return item, nil
}

// ListOpponents returns all opposing clubs sorted by name.
func (s *RosterService) ListOpponents(ctx context.Context) ([]opponent.Opponent, error) {
	items, err := s.opponentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opponents: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// CreateOpponent adds an opposing club.
func (s *RosterService) CreateOpponent(ctx context.Context, name, logoURL string) (opponent.Opponent, error) {
	ctx, span := startUsecaseSpan(ctx, "RosterService.CreateOpponent")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return opponent.Opponent{}, fmt.Errorf("%w: opponent name is required", ErrInvalidInput)
	}
	o := opponent.Opponent{Name: name, LogoURL: strings.TrimSpace(logoURL)}
	id, err := s.opponentRepo.Create(ctx, o)
	if err != nil {
		return opponent.Opponent{}, fmt.Errorf("create opponent: %w", err)
	}
	o.ID = id
	return o, nil
}

func (s *RosterService) buildPlayer(input SavePlayerInput) (player.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if !player.IsValidPosition(input.Position) {
		return player.Player{}, fmt.Errorf("%w: unknown position %q", ErrInvalidInput, input.Position)
	}
	if !match.IsValidSquad(input.Squad) {
		return player.Player{}, fmt.Errorf("%w: squad must be %s or %s", ErrInvalidInput, match.SquadFirstTeam, match.SquadReserve)
	}
	return player.Player{
		Name:     name,
		Position: input.Position,
		Squad:    input.Squad,
		Active:   input.Active,
	}, nil
}
