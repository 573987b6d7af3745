package mealplan

import (
	"time"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

// MealType buckets multiple scheduled dishes on the same date.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// ValidMealType reports whether t is one of the four meal slots.
func ValidMealType(t MealType) bool {
	switch t {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// Entry is a dish scheduled into a dated meal slot. It is a value
// record with no internal states; updates always replace the whole
// record.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Date      string    `json:"date"` // YYYY-MM-DD, no time component
	MealType  MealType  `json:"mealType"`
	Dish      dish.Dish `json:"dish"` // snapshot at scheduling time
	Servings  int       `json:"servings"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CalendarDay is derived, never persisted.
type CalendarDay struct {
	Date           string  `json:"date"`
	Meals          []Entry `json:"meals"`
	IsToday        bool    `json:"isToday"`
	IsCurrentMonth bool    `json:"isCurrentMonth"`
}
