package match

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
)

func setupMatchTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	dishService := dish.NewService(dish.NewInMemoryRepository(), nil)
	ingredientService := ingredient.NewService(ingredient.NewInMemoryRepository())
	service := NewService(dishService, ingredientService, ingredient.Key)
	handler := NewHandler(service)

	r.POST("/match", handler.MatchInline)

	return r
}

func TestMatchInline_Teriyaki(t *testing.T) {
	router := setupMatchTestRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"name": "Rice"},
			{"name": "Chicken breast"},
			{"name": "Soy sauce"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Matches []DishMatch `json:"matches"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if resp.Matches[0].Dish.Title != "Chicken Teriyaki Bowl" {
		t.Errorf("expected Chicken Teriyaki Bowl first, got '%s'", resp.Matches[0].Dish.Title)
	}
	if resp.Matches[0].CompatibilityScore != 60 {
		t.Errorf("expected score 60, got %v", resp.Matches[0].CompatibilityScore)
	}
}

func TestMatchInline_BadBody(t *testing.T) {
	router := setupMatchTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestMatchInline_NoIngredients(t *testing.T) {
	router := setupMatchTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/match", bytes.NewReader([]byte(`{"ingredients":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Matches []DishMatch `json:"matches"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Matches) != 0 {
		t.Errorf("expected empty result set, got %d matches", len(resp.Matches))
	}
}
