package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/goal"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]goal.Goal, []goal.Assist, error) {
	goalQuery, goalArgs, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("goal_index").
		ToSQL()
	if err != nil {
		return nil, nil, fmt.Errorf("build list goals query: %w", err)
	}

	var goalRows []goalTableModel
	if err := r.db.SelectContext(ctx, &goalRows, goalQuery, goalArgs...); err != nil {
		return nil, nil, fmt.Errorf("list goals by match: %w", err)
	}

	assistQuery, assistArgs, err := qb.Select("*").From("assists").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("goal_index").
		ToSQL()
	if err != nil {
		return nil, nil, fmt.Errorf("build list assists query: %w", err)
	}

	var assistRows []assistTableModel
	if err := r.db.SelectContext(ctx, &assistRows, assistQuery, assistArgs...); err != nil {
		return nil, nil, fmt.Errorf("list assists by match: %w", err)
	}

	return goalsFromRows(goalRows), assistsFromRows(assistRows), nil
}

func (r *GoalRepository) ListBySeason(ctx context.Context, seasonID int64) ([]goal.Goal, []goal.Assist, error) {
	goalQuery := `SELECT g.id, g.match_id, g.scorer_id, g.goal_index, g.minute
FROM goals g
JOIN matches m ON m.id = g.match_id
WHERE m.season_id = $1
ORDER BY g.match_id, g.goal_index`

	var goalRows []goalTableModel
	if err := r.db.SelectContext(ctx, &goalRows, goalQuery, seasonID); err != nil {
		return nil, nil, fmt.Errorf("list goals by season: %w", err)
	}

	assistQuery := `SELECT a.id, a.match_id, a.player_id, a.goal_index
FROM assists a
JOIN matches m ON m.id = a.match_id
WHERE m.season_id = $1
ORDER BY a.match_id, a.goal_index`

	var assistRows []assistTableModel
	if err := r.db.SelectContext(ctx, &assistRows, assistQuery, seasonID); err != nil {
		return nil, nil, fmt.Errorf("list assists by season: %w", err)
	}

	return goalsFromRows(goalRows), assistsFromRows(assistRows), nil
}

func (r *GoalRepository) ReplaceByMatch(ctx context.Context, matchID int64, goals []goal.Goal, assists []goal.Assist) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace goals: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"assists", "goals"} {
		clearQuery, clearArgs, err := qb.DeleteFrom(table).
			Where(qb.Eq("match_id", matchID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, item := range goals {
		insertModel := goalInsertModel{
			MatchID:  matchID,
			ScorerID: item.ScorerID,
			Index:    item.Index,
			Minute:   nullInt(item.Minute),
		}
		query, args, err := qb.InsertModel("goals", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert goal query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert goal index=%d: %w", item.Index, err)
		}
	}

	for _, item := range assists {
		insertModel := assistInsertModel{
			MatchID:   matchID,
			PlayerID:  item.PlayerID,
			GoalIndex: item.GoalIndex,
		}
		query, args, err := qb.InsertModel("assists", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert assist query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert assist goal_index=%d: %w", item.GoalIndex, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace goals tx: %w", err)
	}
	return nil
}

func goalsFromRows(rows []goalTableModel) []goal.Goal {
	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goal.Goal{
			ID:       row.ID,
			MatchID:  row.MatchID,
			ScorerID: row.ScorerID,
			Index:    row.Index,
			Minute:   nullIntToPtr(row.Minute),
		})
	}
	return out
}

func assistsFromRows(rows []assistTableModel) []goal.Assist {
	out := make([]goal.Assist, 0, len(rows))
	for _, row := range rows {
		out = append(out, goal.Assist{
			ID:        row.ID,
			MatchID:   row.MatchID,
			PlayerID:  row.PlayerID,
			GoalIndex: row.GoalIndex,
		})
	}
	return out
}
