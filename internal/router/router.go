package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kamel73-web/KingMenu/internal/dish"
	"github.com/kamel73-web/KingMenu/internal/ingredient"
	"github.com/kamel73-web/KingMenu/internal/match"
	"github.com/kamel73-web/KingMenu/internal/mealplan"
	"github.com/kamel73-web/KingMenu/internal/middleware"
	"github.com/kamel73-web/KingMenu/internal/selection"
	"github.com/kamel73-web/KingMenu/internal/shopping"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Dish       *dish.Handler
	Ingredient *ingredient.Handler
	Match      *match.Handler
	Selection  *selection.Handler
	Shopping   *shopping.Handler
	MealPlan   *mealplan.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── CATALOG (public) ─────────────────────────
	dishes := r.Group("/dishes")
	{
		dishes.GET("", h.Dish.List)
		dishes.GET("/:id", h.Dish.Get)
	}

	// ───────────────────────── CATALOG (admin) ─────────────────────────
	admin := r.Group("/dishes")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole("ADMIN"),
	)
	{
		admin.POST("/:id/image", h.Dish.UploadImage)
	}

	// ───────────────────────── OWNED INGREDIENTS ─────────────────────────
	ingredients := r.Group("/ingredients")
	ingredients.Use(middleware.AuthMiddleware())
	{
		ingredients.GET("", h.Ingredient.List)
		ingredients.POST("", h.Ingredient.Add)
		ingredients.DELETE("", h.Ingredient.Clear)
		ingredients.DELETE("/:id", h.Ingredient.Remove)
	}

	// ───────────────────────── DISH MATCHING ─────────────────────────
	matchGroup := r.Group("/match")
	matchGroup.Use(middleware.AuthMiddleware())
	{
		matchGroup.POST("", h.Match.MatchInline)
		matchGroup.GET("", h.Match.MatchStored)
	}

	// ───────────────────────── SELECTION ─────────────────────────
	selectionGroup := r.Group("/selection")
	selectionGroup.Use(middleware.AuthMiddleware())
	{
		selectionGroup.GET("", h.Selection.List)
		selectionGroup.POST("", h.Selection.Select)
		selectionGroup.DELETE("", h.Selection.Clear)
		selectionGroup.DELETE("/:id", h.Selection.Deselect)
	}

	// ───────────────────────── SHOPPING LIST ─────────────────────────
	shoppingGroup := r.Group("/shopping-list")
	shoppingGroup.Use(middleware.AuthMiddleware())
	{
		shoppingGroup.GET("", h.Shopping.List)
		shoppingGroup.POST("/toggle", h.Shopping.ToggleOwned)
		shoppingGroup.GET("/export", h.Shopping.Export)
	}

	// ───────────────────────── MEAL PLANS ─────────────────────────
	mealPlans := r.Group("/meal-plans")
	mealPlans.Use(middleware.AuthMiddleware())
	{
		mealPlans.GET("", h.MealPlan.List)
		mealPlans.POST("", h.MealPlan.Schedule)
		mealPlans.PUT("/:id", h.MealPlan.Update)
		mealPlans.DELETE("/:id", h.MealPlan.Remove)
		mealPlans.GET("/calendar", h.MealPlan.Calendar)
		mealPlans.GET("/range", h.MealPlan.Range)
	}

	return r
}
