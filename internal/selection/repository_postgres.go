package selection

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID, dishID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO dish_selections (user_id, dish_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, dish_id) DO NOTHING
	`, userID, dishID)
	return err
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, dishID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM dish_selections
		WHERE user_id = $1 AND dish_id = $2
	`, userID, dishID)
	return err
}

func (r *PostgresRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM dish_selections
		WHERE user_id = $1
	`, userID)
	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT dish_id
		FROM dish_selections
		WHERE user_id = $1
		ORDER BY selected_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
