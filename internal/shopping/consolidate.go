package shopping

import (
	"strconv"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
)

// Consolidate merges the ingredient lists of the selected dishes into
// one deduplicated list, summing numeric amounts for ingredients that
// normalize to the same key. The first occurrence of a key seeds the
// entry's unit, category and dish provenance; no unit conversion is
// attempted, so mixed units sum as raw numbers with the first-seen
// unit retained. Output keeps first-occurrence order so regenerating
// after adding one dish does not reorder rows already on screen.
// Ownership flags come from ownedKeys, the per-user set the caller
// threads across regenerations.
func Consolidate(
	selected []dish.Dish,
	ownedKeys map[string]bool,
	key ingredient.KeyFunc,
) []ListEntry {

	if key == nil {
		key = ingredient.Key
	}

	entries := []ListEntry{}
	index := make(map[string]int)
	totals := make(map[string]float64)

	for _, d := range selected {
		for _, ing := range d.Ingredients {
			k := key(ing.Name)

			if i, seen := index[k]; seen {
				totals[k] += parseAmount(ing.Amount)
				entries[i].Amount = formatAmount(totals[k])
				continue
			}

			index[k] = len(entries)
			totals[k] = parseAmount(ing.Amount)
			entries = append(entries, ListEntry{
				ID:        ing.ID,
				Name:      ing.Name,
				Amount:    ing.Amount,
				Unit:      ing.Unit,
				Category:  ing.Category,
				IsOwned:   ownedKeys[k],
				DishID:    d.ID,
				DishTitle: d.Title,
			})
		}
	}

	return entries
}

// parseAmount treats non-numeric amounts as 0 so a "to taste" line
// never breaks consolidation.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
