package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/recipeshelf/backend/internal/api"
	"github.com/recipeshelf/backend/internal/middleware"
	"github.com/recipeshelf/backend/internal/service"
)

// SetupRouter configures the application routes. The redis client is optional;
// without it the write endpoints run without rate limiting (used by the test
// suite).
func SetupRouter(
	recipeHandler *api.RecipeHandler,
	authHandler *api.AuthHandler,
	authService service.IAuthService,
	redisClient *redis.Client,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Public catalog routes
	v1.GET("/home", recipeHandler.Home)
	v1.GET("/categories", recipeHandler.ListCategories)
	v1.GET("/recipes", recipeHandler.ListRecipes)
	v1.GET("/recipes/:id", recipeHandler.GetRecipe)

	// Protected write routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	if redisClient != nil {
		limiter := middleware.NewRecipeWriteRateLimiter(redisClient)
		protected.Use(limiter.Middleware())
	}
	{
		protected.POST("/recipes", recipeHandler.CreateRecipe)
		protected.PUT("/recipes/:id", recipeHandler.UpdateRecipe)
		protected.DELETE("/recipes/:id", recipeHandler.DeleteRecipe)
		protected.POST("/recipes/:id/reviews", recipeHandler.CreateReview)
	}

	return router
}
