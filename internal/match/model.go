package match

import (
	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
)

// MatchType buckets a compatibility score.
type MatchType string

const (
	// Perfect means every ingredient of the dish is owned.
	Perfect MatchType = "perfect"
	// Near means at least 70% of the ingredients are owned.
	Near MatchType = "near"
	// Creative means between 30% and 70%.
	Creative MatchType = "creative"
)

// DishMatch is derived and ephemeral: recomputed on every request,
// never persisted.
type DishMatch struct {
	Dish                 dish.Dish               `json:"dish"`
	CompatibilityScore   float64                 `json:"compatibilityScore"`
	MatchType            MatchType               `json:"matchType"`
	AvailableIngredients []ingredient.Ingredient `json:"availableIngredients"`
	MissingIngredients   []ingredient.Ingredient `json:"missingIngredients"`
}
