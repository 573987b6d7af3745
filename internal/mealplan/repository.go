package mealplan

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("meal plan entry not found")

// Repository defines the data-access contract for meal plan entries.
// The entry set only ever changes through these three mutations plus
// whole-set reads; there is no partial-field update.
type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	Replace(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
}
