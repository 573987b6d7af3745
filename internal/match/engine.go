package match

import (
	"sort"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
)

// Dishes below this compatibility are dropped entirely, not hidden.
const minScore = 30

// Dishes scores every catalog dish against the owned-ingredient set
// and returns the matches ranked by score descending. Ties keep
// catalog order. The key function decides ingredient identity.
func Dishes(
	owned []ingredient.OwnedIngredient,
	catalog []dish.Dish,
	key ingredient.KeyFunc,
) []DishMatch {

	if key == nil {
		key = ingredient.Key
	}

	ownedKeys := make(map[string]bool, len(owned))
	for _, o := range owned {
		if o.Name == "" {
			continue
		}
		ownedKeys[key(o.Name)] = true
	}

	matches := []DishMatch{}

	for _, d := range catalog {
		var available, missing []ingredient.Ingredient

		for _, ing := range d.Ingredients {
			// A blank name can never match; it counts as missing so the
			// result set still renders.
			if ing.Name != "" && ownedKeys[key(ing.Name)] {
				available = append(available, ing)
			} else {
				missing = append(missing, ing)
			}
		}

		score := 0.0
		if len(d.Ingredients) > 0 {
			score = float64(len(available)) / float64(len(d.Ingredients)) * 100
		}

		if score < minScore {
			continue
		}

		matches = append(matches, DishMatch{
			Dish:                 d,
			CompatibilityScore:   score,
			MatchType:            classify(score),
			AvailableIngredients: available,
			MissingIngredients:   missing,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})

	return matches
}

func classify(score float64) MatchType {
	switch {
	case score == 100:
		return Perfect
	case score >= 70:
		return Near
	default:
		return Creative
	}
}
