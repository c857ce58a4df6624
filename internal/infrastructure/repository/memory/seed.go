package memory

import (
	"time"

	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
	"github.com/immxrko/fc-patron-sub000/internal/domain/player"
	"github.com/immxrko/fc-patron-sub000/internal/domain/practice"
	"github.com/immxrko/fc-patron-sub000/internal/domain/season"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
)

const (
	SeedSeasonID int64 = 1
)

func SeedSeasons() []season.Season {
	return []season.Season{
		{ID: SeedSeasonID, Name: "2025/26", Current: true},
	}
}

func SeedOpponents() []opponent.Opponent {
	return []opponent.Opponent{
		{ID: 1, Name: "SV Donau"},
		{ID: 2, Name: "FC Hellas Kagran"},
		{ID: 3, Name: "SC Mautner Markhof"},
		{ID: 4, Name: "Wiener Viktoria II"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, Name: "Lukas Berger", Position: player.PositionGoalkeeper, Squad: match.SquadFirstTeam, Active: true},
		{ID: 2, Name: "Felix Wagner", Position: player.PositionDefender, Squad: match.SquadFirstTeam, Active: true},
		{ID: 3, Name: "Jonas Leitner", Position: player.PositionDefender, Squad: match.SquadFirstTeam, Active: true},
		{ID: 4, Name: "David Hofer", Position: player.PositionMidfielder, Squad: match.SquadFirstTeam, Active: true},
		{ID: 5, Name: "Paul Steiner", Position: player.PositionMidfielder, Squad: match.SquadReserve, Active: true},
		{ID: 6, Name: "Maximilian Auer", Position: player.PositionForward, Squad: match.SquadFirstTeam, Active: true},
		{ID: 7, Name: "Tobias Brunner", Position: player.PositionForward, Squad: match.SquadReserve, Active: true},
	}
}

func SeedMatches() []match.Match {
	result := "3:1"
	return []match.Match{
		{
			ID:         1,
			SeasonID:   SeedSeasonID,
			OpponentID: 1,
			Date:       calendar.New(2025, time.August, 16),
			Kickoff:    "16:00",
			IsHome:     true,
			Squad:      match.SquadFirstTeam,
			Result:     &result,
		},
		{
			ID:         2,
			SeasonID:   SeedSeasonID,
			OpponentID: 2,
			Date:       calendar.New(2025, time.August, 16),
			Kickoff:    "13:30",
			IsHome:     true,
			Squad:      match.SquadReserve,
		},
		{
			ID:         3,
			SeasonID:   SeedSeasonID,
			OpponentID: 3,
			Date:       calendar.New(2025, time.August, 23),
			Kickoff:    "17:00",
			IsHome:     false,
			Squad:      match.SquadFirstTeam,
		},
	}
}

func SeedPractices() []practice.Practice {
	return []practice.Practice{
		{ID: 1, Date: calendar.New(2025, time.August, 5), AttendanceSet: true},
		{ID: 2, Date: calendar.New(2025, time.August, 12)},
	}
}
