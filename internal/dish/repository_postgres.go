package dish

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var ErrNotFound = errors.New("dish not found")

// --------------------------------------------------
// Catalog for one display language
// --------------------------------------------------
func (r *PostgresRepository) ListByLanguage(ctx context.Context, language string) ([]Dish, error) {
	query := `
		SELECT
			id,
			title,
			COALESCE(image_url, ''),
			COALESCE(cuisine, ''),
			cooking_time,
			rating,
			COALESCE(difficulty, ''),
			servings,
			calories,
			tags,
			ingredients,
			instructions
		FROM dishes
		WHERE language = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []Dish

	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, *d)
	}

	return dishes, rows.Err()
}

// --------------------------------------------------
// Single dish lookup
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, language, id string) (*Dish, error) {
	query := `
		SELECT
			id,
			title,
			COALESCE(image_url, ''),
			COALESCE(cuisine, ''),
			cooking_time,
			rating,
			COALESCE(difficulty, ''),
			servings,
			calories,
			tags,
			ingredients,
			instructions
		FROM dishes
		WHERE language = $1 AND id = $2
	`

	row := r.db.QueryRow(ctx, query, language, id)
	d, err := scanDish(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *PostgresRepository) SetImageURL(ctx context.Context, id, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE dishes
		SET image_url = $2
		WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Boot-time seed
// --------------------------------------------------

// SeedIfEmpty loads the built-in English catalog into the dishes
// table. Existing rows win, so redeploys never clobber edits.
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context) error {
	query := `
		INSERT INTO dishes (
			id,
			language,
			title,
			cuisine,
			cooking_time,
			rating,
			difficulty,
			servings,
			calories,
			tags,
			ingredients,
			instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id, language) DO NOTHING
	`

	for _, d := range SeedCatalog() {
		tags, err := json.Marshal(d.Tags)
		if err != nil {
			return err
		}
		ingredients, err := json.Marshal(d.Ingredients)
		if err != nil {
			return err
		}
		instructions, err := json.Marshal(d.Instructions)
		if err != nil {
			return err
		}

		_, err = r.db.Exec(
			ctx,
			query,
			d.ID,
			"en",
			d.Title,
			d.Cuisine,
			d.CookingTime,
			d.Rating,
			d.Difficulty,
			d.Servings,
			d.Calories,
			tags,
			ingredients,
			instructions,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// pgx row scanner shared by list and single lookups; tags,
// ingredients and instructions live in JSONB columns.
func scanDish(row pgx.Row) (*Dish, error) {
	var d Dish
	var tags, ingredients, instructions []byte

	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.ImageURL,
		&d.Cuisine,
		&d.CookingTime,
		&d.Rating,
		&d.Difficulty,
		&d.Servings,
		&d.Calories,
		&tags,
		&ingredients,
		&instructions,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tags, &d.Tags); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ingredients, &d.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(instructions, &d.Instructions); err != nil {
		return nil, err
	}

	return &d, nil
}
