package mealplan

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Schedule a dish
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, entry *Entry) error {
	dishJSON, err := json.Marshal(entry.Dish)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO meal_plans (
			id,
			user_id,
			plan_date,
			meal_type,
			dish,
			servings,
			notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.Date,
		string(entry.MealType),
		dishJSON,
		entry.Servings,
		entry.Notes,
	).Scan(&entry.CreatedAt)
}

// --------------------------------------------------
// Whole-record replace
// --------------------------------------------------
func (r *PostgresRepository) Replace(ctx context.Context, entry *Entry) error {
	dishJSON, err := json.Marshal(entry.Dish)
	if err != nil {
		return err
	}

	// RETURNING back-fills the original creation time so callers can
	// echo the replaced record without a re-read
	err = r.db.QueryRow(ctx, `
		UPDATE meal_plans
		SET plan_date = $3,
		    meal_type = $4,
		    dish = $5,
		    servings = $6,
		    notes = $7
		WHERE user_id = $1 AND id = $2
		RETURNING created_at
	`,
		entry.UserID,
		entry.ID,
		entry.Date,
		string(entry.MealType),
		dishJSON,
		entry.Servings,
		entry.Notes,
	).Scan(&entry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM meal_plans
		WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Whole plan for a user
// --------------------------------------------------
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			id,
			user_id,
			plan_date,
			meal_type,
			dish,
			servings,
			COALESCE(notes, ''),
			created_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var e Entry
		var mealType string
		var dishJSON []byte

		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&mealType,
			&dishJSON,
			&e.Servings,
			&e.Notes,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}

		e.MealType = MealType(mealType)

		var d dish.Dish
		if err := json.Unmarshal(dishJSON, &d); err != nil {
			return nil, err
		}
		e.Dish = d

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
