package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/repository"
	"github.com/recipeshelf/backend/internal/types"
)

const (
	homeLatestCount  = 3
	homePopularCount = 2
)

// RecipeService is the catalog façade: it orchestrates the aggregate
// repository, the listing queries and the image uploader behind one API
// consumed by the HTTP layer.
type RecipeService struct {
	db       *gorm.DB
	recipes  *repository.RecipeRepository
	listings *repository.ListingRepository
	uploader ImageUploader
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB, uploader ImageUploader) *RecipeService {
	return &RecipeService{
		db:       db,
		recipes:  repository.NewRecipeRepository(db),
		listings: repository.NewListingRepository(db),
		uploader: uploader,
	}
}

// CreateRecipe generates a fresh id, uploads the image (when bytes are
// supplied) and writes the aggregate in one transaction. The upload itself is
// not transactional; it runs first, so an upload failure aborts the call
// before anything is persisted and no header ever points at a missing image.
func (s *RecipeService) CreateRecipe(ctx context.Context, params types.CreateRecipeParams) (uuid.UUID, error) {
	id := uuid.New()

	imageURL := ""
	if len(params.Image) > 0 {
		url, err := s.uploader.Upload(ctx, params.Image, "recipe/"+id.String())
		if err != nil {
			return uuid.Nil, fmt.Errorf("upload recipe image: %w", err)
		}
		imageURL = url
	}

	recipe := models.Recipe{
		ID:          id,
		Title:       params.Title,
		Description: params.Description,
		CategoryID:  params.CategoryID,
		ImageURL:    imageURL,
		UserID:      params.UserID,
	}
	if err := s.recipes.Create(ctx, &recipe, params.Ingredients, params.Steps); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateRecipe re-uploads and overwrites the image URL only when new image
// bytes are present; otherwise the stored URL is left unchanged. Everything
// else is delegated to the repository's transactional update.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, params types.UpdateRecipeParams) error {
	if len(params.Image) > 0 {
		url, err := s.uploader.Upload(ctx, params.Image, "recipe/"+id.String())
		if err != nil {
			return fmt.Errorf("upload recipe image: %w", err)
		}
		params.ImageURL = &url
	}
	return s.recipes.Update(ctx, id, params)
}

// DeleteRecipe removes the aggregate. Deleting an unknown id is a no-op.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return s.recipes.Delete(ctx, id)
}

// GetRecipeDetails loads the full aggregate without touching the view count;
// the caller decides when a read counts as a view and calls IncrementViews.
func (s *RecipeService) GetRecipeDetails(ctx context.Context, id uuid.UUID) (*types.RecipeDetails, error) {
	return s.recipes.GetByID(ctx, id)
}

// IncrementViews atomically bumps the recipe's view count by one.
func (s *RecipeService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return s.recipes.IncrementViews(ctx, id)
}

// HomePage returns the landing-page feature lists: latest and most viewed.
func (s *RecipeService) HomePage(ctx context.Context) (*types.HomePageData, error) {
	latest, err := s.listings.Latest(ctx, homeLatestCount)
	if err != nil {
		return nil, err
	}
	popular, err := s.listings.MostViewed(ctx, homePopularCount)
	if err != nil {
		return nil, err
	}
	return &types.HomePageData{Latest: latest, Popular: popular}, nil
}

// SearchRecipes runs the filtered, rating-aggregated, paginated listing.
func (s *RecipeService) SearchRecipes(ctx context.Context, filters types.SearchFilters, page int) (*types.RecipePage, error) {
	return s.listings.Search(ctx, filters, page)
}

// ListCategories returns the category reference data for the filter form.
func (s *RecipeService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
