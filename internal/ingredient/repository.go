package ingredient

import "context"

// Repository defines the data-access contract for owned ingredients.
// Service depends ONLY on this interface.
type Repository interface {
	Save(ctx context.Context, owned *OwnedIngredient) error
	ListByUser(ctx context.Context, userID string) ([]OwnedIngredient, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteAll(ctx context.Context, userID string) error
}
