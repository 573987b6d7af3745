package mealplan

import (
	"context"
	"time"
)

type InMemoryRepository struct {
	entries map[string][]Entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string][]Entry),
	}
}

func (r *InMemoryRepository) Save(ctx context.Context, entry *Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries[entry.UserID] = append(r.entries[entry.UserID], *entry)
	return nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, entry *Entry) error {
	list := r.entries[entry.UserID]
	for i, e := range list {
		if e.ID == entry.ID {
			entry.CreatedAt = e.CreatedAt
			list[i] = *entry
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, id string) error {
	list := r.entries[userID]
	for i, e := range list {
		if e.ID == id {
			r.entries[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	return r.entries[userID], nil
}
