package ingredient

import (
	"context"
	"testing"
)

func TestAdd_Success(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	owned, err := service.Add(context.Background(), "user-1", "  Rice ", 200, "g", "grains")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owned.ID == "" {
		t.Error("expected generated id")
	}
	if owned.Name != "Rice" {
		t.Errorf("expected trimmed name 'Rice', got '%s'", owned.Name)
	}
}

func TestAdd_BlankName(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.Add(context.Background(), "user-1", "   ", 1, "", ""); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestListRemoveClear(t *testing.T) {
	service := NewService(NewInMemoryRepository())
	ctx := context.Background()

	first, _ := service.Add(ctx, "user-1", "Rice", 200, "g", "grains")
	_, _ = service.Add(ctx, "user-1", "Soy sauce", 3, "tbsp", "condiments")
	_, _ = service.Add(ctx, "user-2", "Honey", 1, "jar", "sweeteners")

	owned, err := service.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected 2 ingredients, got %d", len(owned))
	}

	if err := service.Remove(ctx, "user-1", first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	owned, _ = service.List(ctx, "user-1")
	if len(owned) != 1 || owned[0].Name != "Soy sauce" {
		t.Errorf("expected only soy sauce to remain")
	}

	if err := service.Clear(ctx, "user-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	owned, _ = service.List(ctx, "user-1")
	if len(owned) != 0 {
		t.Errorf("expected empty list after clear, got %d", len(owned))
	}

	// other users are untouched
	other, _ := service.List(ctx, "user-2")
	if len(other) != 1 {
		t.Errorf("expected user-2 ingredients to survive, got %d", len(other))
	}
}
