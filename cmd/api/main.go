package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kamel73-web/KingMenu/internal/db"
	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
	"github.com/kamel73-web/KingMenu/internal/match"
	"github.com/kamel73-web/KingMenu/internal/mealplan"
	"github.com/kamel73-web/KingMenu/internal/router"
	"github.com/kamel73-web/KingMenu/internal/selection"
	"github.com/kamel73-web/KingMenu/internal/shopping"
	"github.com/kamel73-web/KingMenu/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	dishRepo := dish.NewPostgresRepository(pgDB)
	if err := dishRepo.SeedIfEmpty(context.Background()); err != nil {
		log.Fatal("Catalog seed failed:", err)
	}
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	selectionRepo := selection.NewPostgresRepository(pgDB)
	ownedKeyRepo := shopping.NewPostgresOwnedKeyRepository(pgDB)
	mealPlanRepo := mealplan.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	dishService := dish.NewService(dishRepo, r2Client)
	ingredientService := ingredient.NewService(ingredientRepo)
	matchService := match.NewService(dishService, ingredientService, ingredient.Key)
	selectionService := selection.NewService(selectionRepo, dishService)
	shoppingService := shopping.NewService(selectionService, ownedKeyRepo, ingredient.Key)
	mealPlanService := mealplan.NewService(mealPlanRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Dish:       dish.NewHandler(dishService),
		Ingredient: ingredient.NewHandler(ingredientService),
		Match:      match.NewHandler(matchService),
		Selection:  selection.NewHandler(selectionService),
		Shopping:   shopping.NewHandler(shoppingService),
		MealPlan:   mealplan.NewHandler(mealPlanService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
