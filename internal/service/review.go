package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/types"
)

// ReviewService creates recipe reviews. Reviews are read back only in
// aggregate by the listing queries, so there is no update or delete here.
type ReviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview records a rating and comment for a recipe. One review per user
// per recipe.
func (s *ReviewService) CreateReview(ctx context.Context, recipeID, userID uuid.UUID, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5: %w", types.ErrInvalidInput)
	}

	var recipeCount int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&recipeCount).Error; err != nil {
		return fmt.Errorf("check recipe: %w", err)
	}
	if recipeCount == 0 {
		return fmt.Errorf("recipe %s: %w", recipeID, types.ErrNotFound)
	}

	reviewed, err := s.HasUserReviewed(ctx, recipeID, userID)
	if err != nil {
		return err
	}
	if reviewed {
		return fmt.Errorf("recipe %s: %w", recipeID, types.ErrAlreadyReviewed)
	}

	review := models.Review{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// HasUserReviewed reports whether the user already reviewed the recipe.
func (s *ReviewService) HasUserReviewed(ctx context.Context, recipeID, userID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check existing review: %w", err)
	}
	return count > 0, nil
}
