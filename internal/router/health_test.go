package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
	"github.com/kamel73-web/KingMenu/internal/match"
	"github.com/kamel73-web/KingMenu/internal/mealplan"
	"github.com/kamel73-web/KingMenu/internal/selection"
	"github.com/kamel73-web/KingMenu/internal/shopping"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	dishService := dish.NewService(dish.NewInMemoryRepository(), nil)
	ingredientService := ingredient.NewService(ingredient.NewInMemoryRepository())
	matchService := match.NewService(dishService, ingredientService, ingredient.Key)
	selectionService := selection.NewService(selection.NewInMemoryRepository(), dishService)
	shoppingService := shopping.NewService(selectionService, shopping.NewInMemoryOwnedKeyRepository(), ingredient.Key)
	mealPlanService := mealplan.NewService(mealplan.NewInMemoryRepository())

	return NewRouter(Handlers{
		Dish:       dish.NewHandler(dishService),
		Ingredient: ingredient.NewHandler(ingredientService),
		Match:      match.NewHandler(matchService),
		Selection:  selection.NewHandler(selectionService),
		Shopping:   shopping.NewHandler(shoppingService),
		MealPlan:   mealplan.NewHandler(mealPlanService),
	})
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestDishCatalog_Public(t *testing.T) {
	r := setupTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/dishes?lang=en", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestProtectedRoutes_RequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := setupTestRouter()

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/ingredients"},
		{http.MethodGet, "/match"},
		{http.MethodGet, "/selection"},
		{http.MethodGet, "/shopping-list"},
		{http.MethodGet, "/meal-plans/calendar"},
	}

	for _, route := range protected {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", route.method, route.path, w.Code)
		}
	}
}
