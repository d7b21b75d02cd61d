package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/types"
)

// ImageUploader uploads raw image bytes to blob storage and returns a stable
// public URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, destinationHint string) (string, error)
}

// IRecipeService defines the interface for recipe catalog operations.
type IRecipeService interface {
	CreateRecipe(ctx context.Context, params types.CreateRecipeParams) (uuid.UUID, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, params types.UpdateRecipeParams) error
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	GetRecipeDetails(ctx context.Context, id uuid.UUID) (*types.RecipeDetails, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	HomePage(ctx context.Context) (*types.HomePageData, error)
	SearchRecipes(ctx context.Context, filters types.SearchFilters, page int) (*types.RecipePage, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// IReviewService defines the interface for review operations.
type IReviewService interface {
	CreateReview(ctx context.Context, recipeID, userID uuid.UUID, rating int, comment string) error
	HasUserReviewed(ctx context.Context, recipeID, userID uuid.UUID) (bool, error)
}

// IAuthService defines the interface for authentication operations.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
