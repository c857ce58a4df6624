package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/immxrko/fc-patron-sub000/internal/domain/opponent"
	qb "github.com/immxrko/fc-patron-sub000/internal/platform/querybuilder"
)

type opponentTableModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	LogoURL string `db:"logo_url"`
}

type opponentInsertModel struct {
	Name    string `db:"name"`
	LogoURL string `db:"logo_url"`
}

type OpponentRepository struct {
	db *sqlx.DB
}

func NewOpponentRepository(db *sqlx.DB) *OpponentRepository {
	return &OpponentRepository{db: db}
}

func (r *OpponentRepository) List(ctx context.Context) ([]opponent.Opponent, error) {
	query, args, err := qb.Select("*").From("opponents").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list opponents query: %w", err)
	}

	var rows []opponentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list opponents: %w", err)
	}

	out := make([]opponent.Opponent, 0, len(rows))
	for _, row := range rows {
		out = append(out, opponent.Opponent(row))
	}
	return out, nil
}

func (r *OpponentRepository) GetByID(ctx context.Context, id int64) (opponent.Opponent, bool, error) {
	query, args, err := qb.Select("*").From("opponents").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return opponent.Opponent{}, false, fmt.Errorf("build select opponent query: %w", err)
	}

	var row opponentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return opponent.Opponent{}, false, nil
		}
		return opponent.Opponent{}, false, fmt.Errorf("select opponent by id: %w", err)
	}

	return opponent.Opponent(row), true, nil
}

func (r *OpponentRepository) Create(ctx context.Context, o opponent.Opponent) (int64, error) {
	insertModel := opponentInsertModel{Name: o.Name, LogoURL: o.LogoURL}
	query, args, err := qb.InsertModel("opponents", insertModel, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert opponent query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert opponent: %w", err)
	}
	return id, nil
}
