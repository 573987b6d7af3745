package selection

import "context"

// Repository defines the data-access contract for a user's
// selected-dish set. Only dish ids are stored; the catalog owns
// the dish records.
type Repository interface {
	Add(ctx context.Context, userID, dishID string) error
	Remove(ctx context.Context, userID, dishID string) error
	Clear(ctx context.Context, userID string) error
	ListByUser(ctx context.Context, userID string) ([]string, error)
}
