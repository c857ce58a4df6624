package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/match"
	"github.com/immxrko/fc-patron-sub000/internal/platform/calendar"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListBySeason(ctx context.Context, seasonID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("season_id", seasonID)).
		OrderBy("match_date", "km_res", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches by season: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (int64, error) {
	insertModel := matchInsertModel{
		SeasonID:   m.SeasonID,
		OpponentID: m.OpponentID,
		MatchDate:  m.Date.Time(),
		Kickoff:    m.Kickoff,
		IsHome:     m.IsHome,
		Squad:      m.Squad,
		Result:     nullString(m.Result),
	}
	query, args, err := qb.InsertModel("matches", insertModel, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return id, nil
}

func (r *MatchRepository) UpdateResult(ctx context.Context, id int64, result *string) error {
	query, args, err := qb.Update("matches").
		Set("result", nullString(result)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match result: %w", err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.ID,
		SeasonID:   row.SeasonID,
		OpponentID: row.OpponentID,
		Date:       calendar.FromTime(row.MatchDate),
		Kickoff:    row.Kickoff,
		IsHome:     row.IsHome,
		Squad:      row.Squad,
		Result:     nullStringToPtr(row.Result),
	}
}
