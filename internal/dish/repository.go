package dish

import "context"

// Repository defines the data-access contract for the dish catalog.
// The catalog is stored per display language; the data-access
// collaborator fetches rows for whichever language the UI runs in.
type Repository interface {
	ListByLanguage(ctx context.Context, language string) ([]Dish, error)
	GetByID(ctx context.Context, language, id string) (*Dish, error)
	SetImageURL(ctx context.Context, id, url string) error
}
