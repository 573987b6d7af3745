package match

import (
	"context"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
)

type Service struct {
	dishes     *dish.Service
	ingredient *ingredient.Service
	key        ingredient.KeyFunc
}

func NewService(
	dishes *dish.Service,
	ing *ingredient.Service,
	key ingredient.KeyFunc,
) *Service {
	if key == nil {
		key = ingredient.Key
	}
	return &Service{dishes: dishes, ingredient: ing, key: key}
}

// MatchInline scores the catalog against an owned-ingredient set
// supplied by the caller (the ingredient-selector flow).
func (s *Service) MatchInline(
	ctx context.Context,
	language string,
	owned []ingredient.OwnedIngredient,
) ([]DishMatch, error) {

	catalog, err := s.dishes.Catalog(ctx, language)
	if err != nil {
		return nil, err
	}
	return Dishes(owned, catalog, s.key), nil
}

// MatchStored scores the catalog against the caller's stored
// owned-ingredient records.
func (s *Service) MatchStored(
	ctx context.Context,
	language string,
	userID string,
) ([]DishMatch, error) {

	owned, err := s.ingredient.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.MatchInline(ctx, language, owned)
}
