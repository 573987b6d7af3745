package shopping

import "context"

type InMemoryOwnedKeyRepository struct {
	keys map[string]map[string]bool
}

func NewInMemoryOwnedKeyRepository() *InMemoryOwnedKeyRepository {
	return &InMemoryOwnedKeyRepository{
		keys: make(map[string]map[string]bool),
	}
}

func (r *InMemoryOwnedKeyRepository) Set(ctx context.Context, userID, key string, owned bool) error {
	if r.keys[userID] == nil {
		r.keys[userID] = make(map[string]bool)
	}
	if owned {
		r.keys[userID][key] = true
	} else {
		delete(r.keys[userID], key)
	}
	return nil
}

func (r *InMemoryOwnedKeyRepository) ListByUser(ctx context.Context, userID string) (map[string]bool, error) {
	out := make(map[string]bool, len(r.keys[userID]))
	for k := range r.keys[userID] {
		out[k] = true
	}
	return out, nil
}
