package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedResult = errors.New("malformed result")

// Score is a parsed club-centric result.
type Score struct {
	Club     int
	Opponent int
}

// ParseResult parses a stored "club:opponent" result. Anything that is not
// exactly two non-negative integers separated by a colon is rejected.
func ParseResult(result string) (Score, error) {
	parts := strings.Split(strings.TrimSpace(result), ":")
	if len(parts) != 2 {
		return Score{}, fmt.Errorf("%w: %q", ErrMalformedResult, result)
	}

	club, err := parseGoals(parts[0])
	if err != nil {
		return Score{}, fmt.Errorf("%w: %q", ErrMalformedResult, result)
	}
	opponent, err := parseGoals(parts[1])
	if err != nil {
		return Score{}, fmt.Errorf("%w: %q", ErrMalformedResult, result)
	}

	return Score{Club: club, Opponent: opponent}, nil
}

func parseGoals(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("negative goals")
	}
	return value, nil
}

// Stored renders the club-centric wire form.
func (s Score) Stored() string {
	return strconv.Itoa(s.Club) + ":" + strconv.Itoa(s.Opponent)
}

// Display flips the stored perspective into home/away order for rendering.
func (s Score) Display(isHome bool) (home, away int) {
	if isHome {
		return s.Club, s.Opponent
	}
	return s.Opponent, s.Club
}

// DisplayResult is the lenient rendering helper: nil or malformed stored
// results come back as two blank fields rather than an error, matching the
// display contract for unplayed or bad rows.
func DisplayResult(result *string, isHome bool) (home, away string) {
	if result == nil {
		return "", ""
	}
	score, err := ParseResult(*result)
	if err != nil {
		return "", ""
	}
	h, a := score.Display(isHome)
	return strconv.Itoa(h), strconv.Itoa(a)
}

// StoredResult converts a venue-centric score pair entered by the admin into
// the club-centric stored form.
func StoredResult(homeGoals, awayGoals int, isHome bool) (string, error) {
	if homeGoals < 0 || awayGoals < 0 {
		return "", fmt.Errorf("%w: goals must be non-negative", ErrMalformedResult)
	}
	if isHome {
		return Score{Club: homeGoals, Opponent: awayGoals}.Stored(), nil
	}
	return Score{Club: awayGoals, Opponent: homeGoals}.Stored(), nil
}
