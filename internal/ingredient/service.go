package ingredient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Declare an owned ingredient
// --------------------------------------------------
func (s *Service) Add(
	ctx context.Context,
	userID string,
	name string,
	quantity float64,
	unit string,
	category string,
) (*OwnedIngredient, error) {

	if strings.TrimSpace(name) == "" {
		return nil, errors.New("ingredient name is required")
	}

	owned := &OwnedIngredient{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     strings.TrimSpace(name),
		Quantity: quantity,
		Unit:     unit,
		Category: category,
	}

	if err := s.repo.Save(ctx, owned); err != nil {
		return nil, err
	}
	return owned, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]OwnedIngredient, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Remove(ctx context.Context, userID, id string) error {
	if id == "" {
		return errors.New("ingredient id is required")
	}
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Clear(ctx context.Context, userID string) error {
	return s.repo.DeleteAll(ctx, userID)
}
