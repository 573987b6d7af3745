package shopping

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresOwnedKeyRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOwnedKeyRepository(db *pgxpool.Pool) *PostgresOwnedKeyRepository {
	return &PostgresOwnedKeyRepository{db: db}
}

func (r *PostgresOwnedKeyRepository) Set(ctx context.Context, userID, key string, owned bool) error {
	if owned {
		_, err := r.db.Exec(ctx, `
			INSERT INTO shopping_owned_keys (user_id, ingredient_key)
			VALUES ($1, $2)
			ON CONFLICT (user_id, ingredient_key) DO NOTHING
		`, userID, key)
		return err
	}

	_, err := r.db.Exec(ctx, `
		DELETE FROM shopping_owned_keys
		WHERE user_id = $1 AND ingredient_key = $2
	`, userID, key)
	return err
}

func (r *PostgresOwnedKeyRepository) ListByUser(ctx context.Context, userID string) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_key
		FROM shopping_owned_keys
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys[k] = true
	}

	return keys, rows.Err()
}
