package dish

import "context"

type InMemoryRepository struct {
	catalogs map[string][]Dish
}

// NewInMemoryRepository starts with the English seed catalog. Used by
// tests and local runs without a database.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		catalogs: map[string][]Dish{
			"en": SeedCatalog(),
		},
	}
}

func (r *InMemoryRepository) ListByLanguage(ctx context.Context, language string) ([]Dish, error) {
	return r.catalogs[language], nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, language, id string) (*Dish, error) {
	for _, d := range r.catalogs[language] {
		if d.ID == id {
			dish := d
			return &dish, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) SetImageURL(ctx context.Context, id, url string) error {
	found := false
	for lang, dishes := range r.catalogs {
		for i := range dishes {
			if dishes[i].ID == id {
				dishes[i].ImageURL = url
				found = true
			}
		}
		r.catalogs[lang] = dishes
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
