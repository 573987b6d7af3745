package shopping

// ListEntry is one row of the consolidated shopping list: a dish
// ingredient augmented with ownership and provenance. One entry per
// distinct normalized ingredient name across the selected dishes.
type ListEntry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Unit      string `json:"unit"`
	Category  string `json:"category"`
	IsOwned   bool   `json:"isOwned"`
	DishID    string `json:"dishId"`
	DishTitle string `json:"dishTitle"`
}
