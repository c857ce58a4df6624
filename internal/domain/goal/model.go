// Package goal models club goals and their assists. An assist references its
// goal through the goal's index within the match, so the link survives
// re-saves that delete and reinsert both sets.
package goal

import "sort"

// Goal is one club goal in a match. Index is the 0-based position of the goal
// within the match as entered by the admin; it is the pairing key assists use.
type Goal struct {
	ID       int64 `db:"id" json:"id"`
	MatchID  int64 `db:"match_id" json:"matchId"`
	ScorerID int64 `db:"scorer_id" json:"scorerId"`
	Index    int   `db:"goal_index" json:"goalIndex"`
	Minute   *int  `db:"minute" json:"minute,omitempty"`
}

// Assist credits a player for the goal at GoalIndex in the same match.
type Assist struct {
	ID        int64 `db:"id" json:"id"`
	MatchID   int64 `db:"match_id" json:"matchId"`
	PlayerID  int64 `db:"player_id" json:"playerId"`
	GoalIndex int   `db:"goal_index" json:"goalIndex"`
}

// ScoringEvent is one goal as submitted by the admin form: the scorer plus an
// optional assister. AssisterID zero means no assist was recorded.
type ScoringEvent struct {
	ScorerID   int64
	AssisterID int64
	Minute     *int
}

// BuildRecords turns the ordered scoring events for one match into goal and
// assist rows. The slice position of each kept event becomes the goal index;
// empty form placeholders (scorer zero) are skipped and do not consume an
// index.
func BuildRecords(matchID int64, events []ScoringEvent) ([]Goal, []Assist) {
	goals := make([]Goal, 0, len(events))
	assists := make([]Assist, 0)
	for _, ev := range events {
		if ev.ScorerID == 0 {
			continue
		}
		idx := len(goals)
		goals = append(goals, Goal{
			MatchID:  matchID,
			ScorerID: ev.ScorerID,
			Index:    idx,
			Minute:   ev.Minute,
		})
		if ev.AssisterID != 0 {
			assists = append(assists, Assist{
				MatchID:   matchID,
				PlayerID:  ev.AssisterID,
				GoalIndex: idx,
			})
		}
	}
	return goals, assists
}

// PairScorers joins stored goals and assists back into display events,
// ordered by goal index. Assists whose index matches no goal are dropped.
func PairScorers(goals []Goal, assists []Assist) []ScoringEvent {
	assisterByIndex := make(map[int]int64, len(assists))
	for _, a := range assists {
		assisterByIndex[a.GoalIndex] = a.PlayerID
	}

	ordered := make([]Goal, len(goals))
	copy(ordered, goals)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	events := make([]ScoringEvent, 0, len(ordered))
	for _, g := range ordered {
		events = append(events, ScoringEvent{
			ScorerID:   g.ScorerID,
			AssisterID: assisterByIndex[g.Index],
			Minute:     g.Minute,
		})
	}
	return events
}
