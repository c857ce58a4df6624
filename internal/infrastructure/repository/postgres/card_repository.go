package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/card"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) ListByMatch(ctx context.Context, matchID int64) ([]card.Record, error) {
	query, args, err := qb.Select("*").From("cards").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cards by match: %w", err)
	}

	return cardRecordsFromRows(rows), nil
}

func (r *CardRepository) ListBySeason(ctx context.Context, seasonID int64) ([]card.Record, error) {
	query := `SELECT c.id, c.match_id, c.player_id, c.is_red, c.is_second_yellow, c.minute
FROM cards c
JOIN matches m ON m.id = c.match_id
WHERE m.season_id = $1
ORDER BY c.match_id, c.id`

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list cards by season: %w", err)
	}

	return cardRecordsFromRows(rows), nil
}

func (r *CardRepository) ReplaceByMatch(ctx context.Context, matchID int64, records []card.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace cards: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.DeleteFrom("cards").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear cards query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear cards: %w", err)
	}

	for _, item := range records {
		insertModel := cardInsertModel{
			MatchID:        matchID,
			PlayerID:       item.PlayerID,
			IsRed:          item.IsRed,
			IsSecondYellow: item.IsSecondYellow,
			Minute:         nullInt(item.Minute),
		}
		query, args, err := qb.InsertModel("cards", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert card query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert card player=%d: %w", item.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace cards tx: %w", err)
	}
	return nil
}

func cardRecordsFromRows(rows []cardTableModel) []card.Record {
	out := make([]card.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, card.Record{
			ID:             row.ID,
			MatchID:        row.MatchID,
			PlayerID:       row.PlayerID,
			IsRed:          row.IsRed,
			IsSecondYellow: row.IsSecondYellow,
			Minute:         nullIntToPtr(row.Minute),
		})
	}
	return out
}
