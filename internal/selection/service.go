package selection

import (
	"context"
	"errors"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

type Service struct {
	repo   Repository
	dishes *dish.Service
}

func NewService(repo Repository, dishes *dish.Service) *Service {
	return &Service{repo: repo, dishes: dishes}
}

// --------------------------------------------------
// Select / deselect dishes
// --------------------------------------------------
func (s *Service) Select(ctx context.Context, userID, language, dishID string) error {
	if dishID == "" {
		return errors.New("dish id is required")
	}

	// the selection only ever references catalog dishes
	if _, err := s.dishes.Get(ctx, language, dishID); err != nil {
		return err
	}

	return s.repo.Add(ctx, userID, dishID)
}

func (s *Service) Deselect(ctx context.Context, userID, dishID string) error {
	return s.repo.Remove(ctx, userID, dishID)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.Clear(ctx, userID)
}

// SelectedDishes resolves the caller's selection against the catalog,
// keeping selection order. Ids whose dish has vanished from the
// catalog are skipped rather than failing the whole set.
func (s *Service) SelectedDishes(ctx context.Context, userID, language string) ([]dish.Dish, error) {
	ids, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dishes := []dish.Dish{}
	for _, id := range ids {
		d, err := s.dishes.Get(ctx, language, id)
		if err != nil {
			if errors.Is(err, dish.ErrNotFound) {
				continue
			}
			return nil, err
		}
		dishes = append(dishes, *d)
	}

	return dishes, nil
}
