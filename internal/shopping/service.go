package shopping

import (
	"context"
	"errors"
	"strings"

	"github.com/kamel73-web/KingMenu/internal/ingredient"
	"github.com/kamel73-web/KingMenu/internal/selection"
)

type Service struct {
	selection *selection.Service
	ownedKeys OwnedKeyRepository
	key       ingredient.KeyFunc
}

func NewService(
	sel *selection.Service,
	ownedKeys OwnedKeyRepository,
	key ingredient.KeyFunc,
) *Service {
	if key == nil {
		key = ingredient.Key
	}
	return &Service{selection: sel, ownedKeys: ownedKeys, key: key}
}

// List consolidates the caller's current dish selection. The stored
// owned-key set is threaded in so ownership flags survive selection
// changes.
func (s *Service) List(ctx context.Context, userID, language string) ([]ListEntry, error) {
	dishes, err := s.selection.SelectedDishes(ctx, userID, language)
	if err != nil {
		return nil, err
	}

	owned, err := s.ownedKeys.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Consolidate(dishes, owned, s.key), nil
}

// ToggleOwned flips the ownership flag for an ingredient by display
// name. Idempotent per direction; it never touches consolidation math.
func (s *Service) ToggleOwned(ctx context.Context, userID, name string, owned bool) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("ingredient name is required")
	}
	return s.ownedKeys.Set(ctx, userID, s.key(name), owned)
}
