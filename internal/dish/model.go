package dish

import "github.com/kamel73-web/KingMenu/internal/ingredient"

// Dish is an immutable catalog entity. Selections and meal plan
// entries reference it; nothing mutates it after load.
type Dish struct {
	ID           string                  `json:"id"`
	Title        string                  `json:"title"`
	ImageURL     string                  `json:"image"`
	Cuisine      string                  `json:"cuisine"`
	CookingTime  int                     `json:"cookingTime"`
	Rating       float64                 `json:"rating"`
	Difficulty   string                  `json:"difficulty"`
	Servings     int                     `json:"servings"`
	Calories     int                     `json:"calories"`
	Tags         []string                `json:"tags"`
	Ingredients  []ingredient.Ingredient `json:"ingredients"`
	Instructions []string                `json:"instructions"`
}
