package ingredient

import (
	"context"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	owned map[string][]OwnedIngredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		owned: make(map[string][]OwnedIngredient),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, o *OwnedIngredient) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	r.owned[o.UserID] = append(r.owned[o.UserID], *o)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]OwnedIngredient, error) {
	return r.owned[userID], nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, id string) error {
	list := r.owned[userID]
	kept := list[:0]
	for _, o := range list {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.owned[userID] = kept
	return nil
}

func (r *InMemoryRepository) DeleteAll(ctx context.Context, userID string) error {
	delete(r.owned, userID)
	return nil
}
