package mealplan

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/kamel73-web/KingMenu/internal/dish"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validate(date string, mealType MealType, servings int) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !ValidMealType(mealType) {
		return errors.New("meal type must be breakfast, lunch, dinner or snack")
	}
	if servings < 1 {
		return errors.New("servings must be at least 1")
	}
	return nil
}

// --------------------------------------------------
// Schedule a dish (fresh id, append)
// --------------------------------------------------
func (s *Service) Schedule(
	ctx context.Context,
	userID string,
	date string,
	mealType MealType,
	d dish.Dish,
	servings int,
	notes string,
) (*Entry, error) {

	if err := validate(date, mealType, servings); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:       uuid.New().String(),
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		Dish:     d,
		Servings: servings,
		Notes:    notes,
	}

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// --------------------------------------------------
// Whole-record update (no partial-field mutation)
// --------------------------------------------------
func (s *Service) Update(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		return errors.New("entry id is required")
	}
	if err := validate(entry.Date, entry.MealType, entry.Servings); err != nil {
		return err
	}
	return s.repo.Replace(ctx, entry)
}

func (s *Service) Remove(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Entries(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// --------------------------------------------------
// Derived views
// --------------------------------------------------

// MonthGrid derives the 42-cell grid for the month containing anchor.
func (s *Service) MonthGrid(ctx context.Context, userID string, anchor time.Time) ([]CalendarDay, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(anchor, entries, time.Now()), nil
}

// Range derives per-date buckets over [start, end] for export.
func (s *Service) Range(ctx context.Context, userID string, start, end time.Time) (map[string][]Entry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return RangeGrouping(start, end, entries), nil
}
