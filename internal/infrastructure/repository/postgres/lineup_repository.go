package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/lineup"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	query, args, err := qb.Select("*").From("lineup").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("row_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineup query: %w", err)
	}

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineup by match: %w", err)
	}

	return lineupEntriesFromRows(rows), nil
}

func (r *LineupRepository) ListBySeason(ctx context.Context, seasonID int64) ([]lineup.Entry, error) {
	query := `SELECT l.match_id, l.player_id, l.row_order, l.is_starter, l.sub_in, l.sub_out
FROM lineup l
JOIN matches m ON m.id = l.match_id
WHERE m.season_id = $1
ORDER BY l.match_id, l.row_order`

	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list lineup by season: %w", err)
	}

	return lineupEntriesFromRows(rows), nil
}

func (r *LineupRepository) ReplaceByMatch(ctx context.Context, matchID int64, entries []lineup.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace lineup: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("lineup").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear lineup query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear lineup: %w", err)
	}

	for i, item := range entries {
		insertModel := lineupInsertModel{
			MatchID:   matchID,
			PlayerID:  item.PlayerID,
			RowOrder:  i,
			IsStarter: item.IsStarter,
			SubIn:     nullInt(item.SubIn),
			SubOut:    nullInt(item.SubOut),
		}
		query, args, err := qb.InsertModel("lineup", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert lineup row query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert lineup row player=%d: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace lineup tx: %w", err)
	}
	return nil
}

func lineupEntriesFromRows(rows []lineupTableModel) []lineup.Entry {
	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineup.Entry{
			MatchID:   row.MatchID,
			PlayerID:  row.PlayerID,
			IsStarter: row.IsStarter,
			SubIn:     nullIntToPtr(row.SubIn),
			SubOut:    nullIntToPtr(row.SubOut),
		})
	}
	return out
}
