package testhelpers

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipeshelf/backend/internal/models"
)

// CreateTestUser inserts a user with a unique email and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory inserts a category, reusing an existing one of the same
// name.
func CreateTestCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestRecipe inserts a bare recipe header owned by the given user.
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, categoryID uint, title string, createdAt time.Time) models.Recipe {
	t.Helper()
	recipe := models.Recipe{
		ID:         uuid.New(),
		Title:      title,
		CategoryID: categoryID,
		UserID:     userID,
		CreatedAt:  createdAt,
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}

// CreateTestReview inserts a review row directly, bypassing service checks.
func CreateTestReview(t *testing.T, db *gorm.DB, recipeID, userID uuid.UUID, rating int) models.Review {
	t.Helper()
	review := models.Review{
		ID:       uuid.New(),
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
	}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("failed to create test review: %v", err)
	}
	return review
}
