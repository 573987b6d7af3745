package dish

import "github.com/kamel73-web/KingMenu/internal/ingredient"

// SeedCatalog returns the built-in English dish catalog.
func SeedCatalog() []Dish {
	return []Dish{
		{
			ID:          "1",
			Title:       "Spaghetti Carbonara",
			Cuisine:     "Italian",
			CookingTime: 25,
			Rating:      4.8,
			Difficulty:  "Medium",
			Servings:    4,
			Calories:    520,
			Tags:        []string{"pasta", "comfort food", "quick"},
			Ingredients: []ingredient.Ingredient{
				{ID: "1", Name: "Spaghetti", Amount: "400", Unit: "g", Category: "pasta"},
				{ID: "2", Name: "Eggs", Amount: "4", Unit: "pieces", Category: "dairy"},
				{ID: "3", Name: "Pancetta", Amount: "150", Unit: "g", Category: "meat"},
				{ID: "4", Name: "Parmesan cheese", Amount: "100", Unit: "g", Category: "dairy"},
				{ID: "5", Name: "Black pepper", Amount: "1", Unit: "tsp", Category: "spices"},
			},
			Instructions: []string{
				"Boil spaghetti in salted water until al dente",
				"Fry pancetta until crispy",
				"Whisk eggs with grated parmesan",
				"Toss hot pasta with pancetta, then with the egg mixture off the heat",
				"Season generously with black pepper",
			},
		},
		{
			ID:          "2",
			Title:       "Chicken Teriyaki Bowl",
			Cuisine:     "Asian",
			CookingTime: 30,
			Rating:      4.6,
			Difficulty:  "Easy",
			Servings:    2,
			Calories:    450,
			Tags:        []string{"healthy", "rice", "chicken"},
			Ingredients: []ingredient.Ingredient{
				{ID: "6", Name: "Chicken breast", Amount: "300", Unit: "g", Category: "meat"},
				{ID: "7", Name: "Rice", Amount: "200", Unit: "g", Category: "grains"},
				{ID: "8", Name: "Soy sauce", Amount: "3", Unit: "tbsp", Category: "condiments"},
				{ID: "9", Name: "Honey", Amount: "2", Unit: "tbsp", Category: "sweeteners"},
				{ID: "10", Name: "Broccoli", Amount: "200", Unit: "g", Category: "vegetables"},
			},
			Instructions: []string{
				"Cook rice according to package instructions",
				"Season and cook chicken breast",
				"Steam broccoli until tender",
				"Make teriyaki sauce with soy sauce and honey",
				"Serve chicken over rice with vegetables",
			},
		},
		{
			ID:          "3",
			Title:       "Mediterranean Quinoa Salad",
			Cuisine:     "Mediterranean",
			CookingTime: 20,
			Rating:      4.5,
			Difficulty:  "Easy",
			Servings:    4,
			Calories:    380,
			Tags:        []string{"vegetarian", "healthy", "salad"},
			Ingredients: []ingredient.Ingredient{
				{ID: "11", Name: "Quinoa", Amount: "200", Unit: "g", Category: "grains"},
				{ID: "12", Name: "Cherry tomatoes", Amount: "250", Unit: "g", Category: "vegetables"},
				{ID: "13", Name: "Cucumber", Amount: "1", Unit: "piece", Category: "vegetables"},
				{ID: "14", Name: "Feta cheese", Amount: "150", Unit: "g", Category: "dairy"},
				{ID: "15", Name: "Olive oil", Amount: "3", Unit: "tbsp", Category: "oils"},
			},
			Instructions: []string{
				"Rinse and cook quinoa, then let it cool",
				"Halve the cherry tomatoes and dice the cucumber",
				"Crumble the feta",
				"Toss everything with olive oil and season to taste",
			},
		},
		{
			ID:          "4",
			Title:       "Beef Tacos",
			Cuisine:     "Mexican",
			CookingTime: 25,
			Rating:      4.7,
			Difficulty:  "Easy",
			Servings:    4,
			Calories:    490,
			Tags:        []string{"mexican", "beef", "weeknight"},
			Ingredients: []ingredient.Ingredient{
				{ID: "16", Name: "Ground beef", Amount: "500", Unit: "g", Category: "meat"},
				{ID: "17", Name: "Taco shells", Amount: "8", Unit: "pieces", Category: "bread"},
				{ID: "18", Name: "Lettuce", Amount: "1", Unit: "head", Category: "vegetables"},
				{ID: "19", Name: "Tomatoes", Amount: "2", Unit: "pieces", Category: "vegetables"},
				{ID: "20", Name: "Cheddar cheese", Amount: "100", Unit: "g", Category: "dairy"},
			},
			Instructions: []string{
				"Brown the ground beef and season",
				"Warm the taco shells",
				"Shred the lettuce and dice the tomatoes",
				"Assemble tacos and top with grated cheddar",
			},
		},
		{
			ID:          "5",
			Title:       "Chicken Curry",
			Cuisine:     "Indian",
			CookingTime: 45,
			Rating:      4.9,
			Difficulty:  "Medium",
			Servings:    4,
			Calories:    560,
			Tags:        []string{"curry", "spicy", "chicken"},
			Ingredients: []ingredient.Ingredient{
				{ID: "21", Name: "Chicken thighs", Amount: "800", Unit: "g", Category: "meat"},
				{ID: "22", Name: "Coconut milk", Amount: "400", Unit: "ml", Category: "dairy"},
				{ID: "23", Name: "Onions", Amount: "2", Unit: "pieces", Category: "vegetables"},
				{ID: "24", Name: "Curry powder", Amount: "2", Unit: "tbsp", Category: "spices"},
				{ID: "25", Name: "Basmati rice", Amount: "300", Unit: "g", Category: "grains"},
			},
			Instructions: []string{
				"Sauté sliced onions until golden",
				"Add chicken and brown on all sides",
				"Stir in curry powder, then coconut milk",
				"Simmer until the chicken is cooked through",
				"Serve over basmati rice",
			},
		},
		{
			ID:          "6",
			Title:       "Caesar Salad",
			Cuisine:     "American",
			CookingTime: 15,
			Rating:      4.4,
			Difficulty:  "Easy",
			Servings:    2,
			Calories:    320,
			Tags:        []string{"salad", "quick", "classic"},
			Ingredients: []ingredient.Ingredient{
				{ID: "26", Name: "Romaine lettuce", Amount: "2", Unit: "heads", Category: "vegetables"},
				{ID: "27", Name: "Croutons", Amount: "100", Unit: "g", Category: "bread"},
				{ID: "28", Name: "Parmesan cheese", Amount: "50", Unit: "g", Category: "dairy"},
				{ID: "29", Name: "Caesar dressing", Amount: "4", Unit: "tbsp", Category: "condiments"},
				{ID: "30", Name: "Anchovies", Amount: "4", Unit: "pieces", Category: "seafood"},
			},
			Instructions: []string{
				"Chop the romaine",
				"Toss with dressing and croutons",
				"Top with shaved parmesan and anchovies",
			},
		},
	}
}
