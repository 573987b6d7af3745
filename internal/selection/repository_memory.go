package selection

import "context"

type InMemoryRepository struct {
	// insertion order matters: the shopping list keeps first-occurrence
	// order across regenerations
	selected map[string][]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		selected: make(map[string][]string),
	}
}

func (r *InMemoryRepository) Add(ctx context.Context, userID, dishID string) error {
	for _, id := range r.selected[userID] {
		if id == dishID {
			return nil
		}
	}
	r.selected[userID] = append(r.selected[userID], dishID)
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, userID, dishID string) error {
	list := r.selected[userID]
	kept := list[:0]
	for _, id := range list {
		if id != dishID {
			kept = append(kept, id)
		}
	}
	r.selected[userID] = kept
	return nil
}

func (r *InMemoryRepository) Clear(ctx context.Context, userID string) error {
	delete(r.selected, userID)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]string, error) {
	return r.selected[userID], nil
}
