package ingredient

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

// --------------------------------------------------
// Save an owned ingredient
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, owned *OwnedIngredient) error {
	query := `
		INSERT INTO owned_ingredients (
			id,
			user_id,
			name,
			quantity,
			unit,
			category
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		owned.ID,
		owned.UserID,
		owned.Name,
		owned.Quantity,
		owned.Unit,
		owned.Category,
	).Scan(&owned.CreatedAt)
}

// --------------------------------------------------
// List a user's owned ingredients
// --------------------------------------------------
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]OwnedIngredient, error) {
	query := `
		SELECT
			id,
			user_id,
			name,
			quantity,
			unit,
			category,
			created_at
		FROM owned_ingredients
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owned []OwnedIngredient

	for rows.Next() {
		var o OwnedIngredient
		if err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Name,
			&o.Quantity,
			&o.Unit,
			&o.Category,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		owned = append(owned, o)
	}

	return owned, rows.Err()
}

// --------------------------------------------------
// Delete one / all owned ingredients
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM owned_ingredients
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	return err
}

func (r *PostgresRepository) DeleteAll(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM owned_ingredients
		WHERE user_id = $1
	`, userID)
	return err
}
