package ingredient

import "time"

// Ingredient is one line of a dish's ingredient list.
type Ingredient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Unit     string `json:"unit"`
	Category string `json:"category"`
}

// OwnedIngredient is a user-declared "I have this" record,
// independent of any dish.
type OwnedIngredient struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	Unit      string    `json:"unit"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
