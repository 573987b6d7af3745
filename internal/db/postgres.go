package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// DISH CATALOG
	// -------------------------------
	dishesSQL := `
		CREATE TABLE IF NOT EXISTS dishes (
			id VARCHAR(64) NOT NULL,
			language VARCHAR(8) NOT NULL DEFAULT 'en',
			title VARCHAR(255) NOT NULL,
			image_url VARCHAR(500),
			cuisine VARCHAR(100),
			cooking_time INT NOT NULL DEFAULT 0,
			rating REAL NOT NULL DEFAULT 0,
			difficulty VARCHAR(20),
			servings INT NOT NULL DEFAULT 0,
			calories INT NOT NULL DEFAULT 0,
			tags JSONB NOT NULL DEFAULT '[]',
			ingredients JSONB NOT NULL DEFAULT '[]',
			instructions JSONB NOT NULL DEFAULT '[]',
			PRIMARY KEY (id, language)
		)
	`
	if _, err := db.Exec(ctx, dishesSQL); err != nil {
		return err
	}

	// -------------------------------
	// OWNED INGREDIENTS
	// -------------------------------
	ownedSQL := `
		CREATE TABLE IF NOT EXISTS owned_ingredients (
			id UUID PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			name VARCHAR(255) NOT NULL,
			quantity REAL NOT NULL DEFAULT 0,
			unit VARCHAR(50),
			category VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ownedSQL); err != nil {
		return err
	}

	// -------------------------------
	// DISH SELECTIONS
	// -------------------------------
	selectionsSQL := `
		CREATE TABLE IF NOT EXISTS dish_selections (
			user_id VARCHAR(64) NOT NULL,
			dish_id VARCHAR(64) NOT NULL,
			selected_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, dish_id)
		)
	`
	if _, err := db.Exec(ctx, selectionsSQL); err != nil {
		return err
	}

	// -------------------------------
	// MEAL PLANS
	// -------------------------------
	mealPlansSQL := `
		CREATE TABLE IF NOT EXISTS meal_plans (
			id UUID PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			plan_date VARCHAR(10) NOT NULL,
			meal_type VARCHAR(20) NOT NULL,
			dish JSONB NOT NULL,
			servings INT NOT NULL DEFAULT 1,
			notes TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, mealPlansSQL); err != nil {
		return err
	}

	// -------------------------------
	// SHOPPING LIST OWNERSHIP FLAGS
	// -------------------------------
	// Keyed by normalized ingredient name so the flag survives
	// shopping list regeneration after a dish add/remove.
	ownedKeysSQL := `
		CREATE TABLE IF NOT EXISTS shopping_owned_keys (
			user_id VARCHAR(64) NOT NULL,
			ingredient_key VARCHAR(255) NOT NULL,
			PRIMARY KEY (user_id, ingredient_key)
		)
	`
	if _, err := db.Exec(ctx, ownedKeysSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
