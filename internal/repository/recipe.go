package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/types"
)

// RecipeRepository owns the recipe aggregate: the header row plus its
// ingredient and step rows. Every mutation runs inside a single transaction so
// a partially written aggregate is never visible to readers — if any sub-step
// fails, the whole operation rolls back and the error propagates to the
// caller.
type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create inserts the header, then the ingredient rows, then the step rows, as
// one unit of work. Step numbers are assigned from the input order, 1-based.
func (r *RecipeRepository) Create(ctx context.Context, recipe *models.Recipe, ingredients []types.IngredientInput, steps []string) error {
	if recipe.Title == "" || recipe.CategoryID == 0 || recipe.UserID == uuid.Nil {
		return fmt.Errorf("recipe requires title, category and author: %w", types.ErrInvalidInput)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("check recipe id: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("recipe %s: %w", recipe.ID, types.ErrDuplicateID)
		}

		if err := tx.Create(recipe).Error; err != nil {
			return fmt.Errorf("insert recipe header: %w", err)
		}
		if err := insertIngredients(tx, recipe.ID, ingredients); err != nil {
			return err
		}
		return insertSteps(tx, recipe.ID, steps)
	})
}

// GetByID loads the full aggregate: header, ingredients in input order, steps
// by step number, reviews and the author. It is read-only; view counting is a
// separate explicit call (IncrementViews), never a side effect of a read.
func (r *RecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*types.RecipeDetails, error) {
	db := r.db.WithContext(ctx)

	var details types.RecipeDetails
	if err := db.First(&details.Recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe %s: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("load recipe header: %w", err)
	}

	if err := db.Where("recipe_id = ?", id).Order("id ASC").Find(&details.Ingredients).Error; err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}
	if err := db.Where("recipe_id = ?", id).Order("step_number ASC").Find(&details.Steps).Error; err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}
	if err := db.Where("recipe_id = ?", id).Order("created_at DESC").Find(&details.Reviews).Error; err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	if err := db.First(&details.Author, "id = ?", details.Recipe.UserID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("load author: %w", err)
	}

	return &details, nil
}

// Update applies a sparse header update and, when a child list is supplied,
// replaces the previous list wholesale. Delete-all-then-reinsert is
// deliberate: diff-based upserts would change the observable step numbering on
// ties, so the simple form is kept.
func (r *RecipeRepository) Update(ctx context.Context, id uuid.UUID, params types.UpdateRecipeParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("check recipe id: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("recipe %s: %w", id, types.ErrNotFound)
		}

		updates := map[string]interface{}{}
		if params.Title != nil {
			updates["title"] = *params.Title
		}
		if params.Description != nil {
			updates["description"] = *params.Description
		}
		if params.CategoryID != nil {
			updates["category_id"] = *params.CategoryID
		}
		if params.ImageURL != nil {
			updates["image_url"] = *params.ImageURL
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return fmt.Errorf("update recipe header: %w", err)
			}
		}

		if params.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return fmt.Errorf("clear ingredients: %w", err)
			}
			if err := insertIngredients(tx, id, params.Ingredients); err != nil {
				return err
			}
		}
		if params.Steps != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
				return fmt.Errorf("clear steps: %w", err)
			}
			if err := insertSteps(tx, id, params.Steps); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes ingredients, steps, reviews and the header as one unit of
// work. Deleting an id that does not exist is a no-op success, not an error —
// this mirrors the permissive delete semantics callers rely on.
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("delete ingredients: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Step{}).Error; err != nil {
			return fmt.Errorf("delete steps: %w", err)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Recipe{}).Error; err != nil {
			return fmt.Errorf("delete recipe header: %w", err)
		}
		return nil
	})
}

func insertIngredients(tx *gorm.DB, recipeID uuid.UUID, ingredients []types.IngredientInput) error {
	if len(ingredients) == 0 {
		return nil
	}
	rows := make([]models.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		rows[i] = models.Ingredient{
			RecipeID: recipeID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
		}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert ingredients: %w", err)
	}
	return nil
}

func insertSteps(tx *gorm.DB, recipeID uuid.UUID, steps []string) error {
	if len(steps) == 0 {
		return nil
	}
	rows := make([]models.Step, len(steps))
	for i, desc := range steps {
		rows[i] = models.Step{
			RecipeID:    recipeID,
			StepNumber:  i + 1,
			Description: desc,
		}
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert steps: %w", err)
	}
	return nil
}
