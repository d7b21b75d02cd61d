package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
	"github.com/recipeshelf/backend/internal/types"
)

// IncrementViews bumps a recipe's view count by exactly one with a single
// atomic UPDATE at the storage layer. Read-modify-write at the application
// level would lose updates under concurrent viewers, so it is never done here.
func (r *RecipeRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return fmt.Errorf("increment views: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("recipe %s: %w", id, types.ErrNotFound)
	}
	return nil
}
