package shopping

import (
	"context"
	"testing"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
	"github.com/kamel73-web/KingMenu/internal/selection"
)

func setupShoppingService() (*Service, *selection.Service) {
	dishService := dish.NewService(dish.NewInMemoryRepository(), nil)
	selectionService := selection.NewService(selection.NewInMemoryRepository(), dishService)
	shoppingService := NewService(selectionService, NewInMemoryOwnedKeyRepository(), ingredient.Key)
	return shoppingService, selectionService
}

func TestList_EmptySelection(t *testing.T) {
	service, _ := setupShoppingService()

	entries, err := service.List(context.Background(), "user-1", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(entries))
	}
}

func TestList_MergesAcrossSelectedDishes(t *testing.T) {
	service, selections := setupShoppingService()
	ctx := context.Background()

	// Carbonara and Caesar Salad both need parmesan
	_ = selections.Select(ctx, "user-1", "en", "1")
	_ = selections.Select(ctx, "user-1", "en", "6")

	entries, err := service.List(ctx, "user-1", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parmesan *ListEntry
	for i := range entries {
		if entries[i].Name == "Parmesan cheese" {
			parmesan = &entries[i]
		}
	}
	if parmesan == nil {
		t.Fatal("expected a parmesan entry")
	}
	if parmesan.Amount != "150" {
		t.Errorf("expected summed amount '150', got '%s'", parmesan.Amount)
	}
	// provenance points at the first contributing dish
	if parmesan.DishTitle != "Spaghetti Carbonara" {
		t.Errorf("expected provenance from Spaghetti Carbonara, got '%s'", parmesan.DishTitle)
	}
}

func TestToggleOwned_SurvivesRegeneration(t *testing.T) {
	service, selections := setupShoppingService()
	ctx := context.Background()

	_ = selections.Select(ctx, "user-1", "en", "2")

	if err := service.ToggleOwned(ctx, "user-1", "Soy Sauce", true); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}

	// regenerate after adding another dish: the flag must survive
	_ = selections.Select(ctx, "user-1", "en", "5")

	entries, err := service.List(ctx, "user-1", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range entries {
		if e.Name == "Soy sauce" && !e.IsOwned {
			t.Error("expected soy sauce ownership flag to survive regeneration")
		}
	}
}

func TestToggleOwned_Idempotent(t *testing.T) {
	service, _ := setupShoppingService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := service.ToggleOwned(ctx, "user-1", "Rice", true); err != nil {
			t.Fatalf("toggle %d failed: %v", i, err)
		}
	}
	if err := service.ToggleOwned(ctx, "user-1", "Rice", false); err != nil {
		t.Fatalf("untoggle failed: %v", err)
	}

	if err := service.ToggleOwned(ctx, "user-1", "  ", true); err == nil {
		t.Error("expected error for blank ingredient name")
	}
}
